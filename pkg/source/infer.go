package source

import (
	"strings"

	"github.com/litetravel/notescope/pkg/domain"
)

// keyword sets for content type inference, checked in order of specificity
var (
	diningKeywords = []string{
		"美食", "餐厅", "饭店", "小吃", "菜", "火锅", "烧烤", "探店",
		"restaurant", "food", "dining", "cuisine", "eat",
	}
	hotelKeywords = []string{
		"酒店", "民宿", "客栈", "住宿", "青旅", "度假村",
		"hotel", "hostel", "resort", "stay", "accommodation",
	}
	commuteKeywords = []string{
		"交通", "地铁", "公交", "打车", "高铁", "航班", "机票", "自驾",
		"transport", "transit", "flight", "train", "metro",
	}
	attractionKeywords = []string{
		"景点", "景区", "攻略", "打卡", "游玩", "博物馆", "公园", "古镇",
		"attraction", "sightseeing", "museum", "itinerary", "scenic",
	}
)

// InferContentType guesses the content type of a note from its title, body
// and tags. It falls back to the general type when nothing matches.
func InferContentType(title, body string, tags []string) domain.ContentType {
	text := strings.ToLower(title + " " + body + " " + strings.Join(tags, " "))

	match := func(keywords []string) bool {
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				return true
			}
		}
		return false
	}

	switch {
	case match(diningKeywords):
		return domain.ContentDining
	case match(hotelKeywords):
		return domain.ContentHotel
	case match(commuteKeywords):
		return domain.ContentCommute
	case match(attractionKeywords):
		return domain.ContentAttraction
	default:
		return domain.ContentGeneral
	}
}

package source

import (
	"context"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/litetravel/notescope/pkg/domain"
	"github.com/litetravel/notescope/pkg/pipeline"
)

// MockSource serves a small fixed set of notes for development and demos.
// It implements pipeline.DataSource without touching the network.
type MockSource struct {
	notes []domain.Note
}

// NewMockSource creates a mock source with built-in demo notes
func NewMockSource() *MockSource {
	return &MockSource{notes: demoNotes()}
}

// SourceType returns the mock source identifier
func (s *MockSource) SourceType() domain.SourceType { return domain.SourceMock }

// FetchNotes returns demo notes matching the keyword and city filters,
// capped at the requested limit
func (s *MockSource) FetchNotes(_ context.Context, req pipeline.FetchRequest) ([]domain.Note, error) {
	var result []domain.Note
	for _, note := range s.notes {
		if req.City != "" && note.City != req.City {
			continue
		}
		if req.Keyword != "" && !matchesKeyword(note, req.Keyword) {
			continue
		}
		result = append(result, note)
		if req.Limit > 0 && len(result) >= req.Limit {
			break
		}
	}
	lgr.Printf("[DEBUG] mock source returned %d notes for keyword %q", len(result), req.Keyword)
	return result, nil
}

// FetchNoteDetail returns the demo note with the given id, nil when absent
func (s *MockSource) FetchNoteDetail(_ context.Context, id string) (*domain.Note, error) {
	for i := range s.notes {
		if s.notes[i].ID == id {
			note := s.notes[i]
			return &note, nil
		}
	}
	return nil, nil
}

func matchesKeyword(note domain.Note, keyword string) bool {
	kw := strings.ToLower(keyword)
	if strings.Contains(strings.ToLower(note.Title), kw) || strings.Contains(strings.ToLower(note.Content), kw) {
		return true
	}
	for _, tag := range note.Tags {
		if strings.Contains(strings.ToLower(tag), kw) {
			return true
		}
	}
	return false
}

func demoNotes() []domain.Note {
	now := time.Now()
	return []domain.Note{
		{
			ID:          "mock-001",
			Source:      domain.SourceMock,
			Title:       "杭州西湖两日游攻略",
			Content:     "第一天早上先去断桥残雪，人少景美。中午在楼外楼吃西湖醋鱼，味道正宗但价格偏高。下午坐船游湖，船票55元一位。第二天去灵隐寺和飞来峰，建议早点出发避开旅行团。整体体验很棒，推荐春秋两季来。",
			ContentType: domain.ContentAttraction,
			Tags:        []string{"杭州", "西湖", "攻略"},
			Location:    "西湖风景区",
			City:        "杭州",
			AuthorID:    "u1001",
			AuthorName:  "爱旅行的小周",
			Likes:       1280,
			Collects:    860,
			Comments:    152,
			PublishTime: now.Add(-72 * time.Hour).Format(time.RFC3339),
			CrawlTime:   now,
		},
		{
			ID:          "mock-002",
			Source:      domain.SourceMock,
			Title:       "成都这家火锅店真的绝了",
			Content:     "朋友推荐的老码头火锅，开在玉林路的巷子里。锅底是牛油九宫格，毛肚和鸭肠都很新鲜，黄喉脆嫩。人均90左右，性价比很高。周末去要排队一小时以上，建议工作日晚上去。服务态度也不错，会送酸梅汤。",
			ContentType: domain.ContentDining,
			Tags:        []string{"成都", "美食", "火锅", "探店"},
			Location:    "玉林路",
			City:        "成都",
			AuthorID:    "u1002",
			AuthorName:  "吃货阿May",
			Likes:       2340,
			Collects:    1510,
			Comments:    308,
			PublishTime: now.Add(-48 * time.Hour).Format(time.RFC3339),
			CrawlTime:   now,
		},
		{
			ID:          "mock-003",
			Source:      domain.SourceMock,
			Title:       "避雷！三亚某网红酒店真实体验",
			Content:     "被种草了很久的海景酒店，实际入住大失所望。照片里的无边泳池其实很小，下午三点就晒不到太阳。房间隔音差，空调有异味，前台态度冷淡。一晚1200的价格完全不值,隔壁老牌五星才1000出头。不推荐，大家谨慎选择。",
			ContentType: domain.ContentHotel,
			Tags:        []string{"三亚", "酒店", "避雷"},
			Location:    "海棠湾",
			City:        "三亚",
			AuthorID:    "u1003",
			AuthorName:  "旅途老炮",
			Likes:       5620,
			Collects:    2100,
			Comments:    874,
			PublishTime: now.Add(-24 * time.Hour).Format(time.RFC3339),
			CrawlTime:   now,
		},
	}
}

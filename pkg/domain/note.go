package domain

import "time"

// SourceType identifies the origin platform of a note
type SourceType string

// known origin platforms
const (
	SourceXiaohongshu SourceType = "xiaohongshu"
	SourceCtrip       SourceType = "ctrip"
	SourceMeituan     SourceType = "meituan"
	SourceAmap        SourceType = "amap"
	SourceFeed        SourceType = "feed"
	SourceMock        SourceType = "mock"
)

// ContentType classifies what a note is about
type ContentType string

// content categories, each mapped to a prompt template
const (
	ContentAttraction ContentType = "attraction"
	ContentDining     ContentType = "dining"
	ContentHotel      ContentType = "hotel"
	ContentCommute    ContentType = "commute"
	ContentGeneral    ContentType = "general"
)

// Note represents a single travel-related post normalized from any source.
// ID, Source and Title are mandatory, everything else may be empty.
type Note struct {
	ID          string      `json:"id"`
	Source      SourceType  `json:"source"`
	Title       string      `json:"title"`
	Content     string      `json:"content"`
	ContentType ContentType `json:"content_type"`
	Tags        []string    `json:"tags"`
	Location    string      `json:"location"`
	City        string      `json:"city"`

	AuthorID   string `json:"author_id,omitempty"`
	AuthorName string `json:"author_name,omitempty"`

	Likes    int `json:"likes"`
	Collects int `json:"collects"`
	Comments int `json:"comments"`

	Images   []string `json:"images,omitempty"`
	VideoURL string   `json:"video_url,omitempty"`

	PublishTime string         `json:"publish_time,omitempty"`
	CrawlTime   time.Time      `json:"crawl_time"`
	RawData     map[string]any `json:"raw_data,omitempty"`
}

// FullText returns title and body joined, the unit the cleaner and LLM see
func (n *Note) FullText() string {
	return n.Title + "\n\n" + n.Content
}

// EngagementScore weights collects and comments higher than plain likes
func (n *Note) EngagementScore() float64 {
	return float64(n.Likes) + 2*float64(n.Collects) + 1.5*float64(n.Comments)
}

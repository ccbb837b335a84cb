package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleaner_Clean(t *testing.T) {
	tests := []struct {
		name     string
		cfg      CleanerConfig
		input    string
		expected string
	}{
		{
			name:     "empty input",
			cfg:      CleanerConfig{RemoveEmoji: true, RemoveAds: true},
			input:    "",
			expected: "",
		},
		{
			name:     "plain text unchanged",
			cfg:      CleanerConfig{RemoveEmoji: true, RemoveAds: true},
			input:    "西湖很美，值得一去",
			expected: "西湖很美，值得一去",
		},
		{
			name:     "emoji removed",
			cfg:      CleanerConfig{RemoveEmoji: true},
			input:    "好吃😋推荐🔥",
			expected: "好吃推荐",
		},
		{
			name:     "emoji kept when disabled",
			cfg:      CleanerConfig{},
			input:    "好吃😋",
			expected: "好吃😋",
		},
		{
			name:     "ad tag removed",
			cfg:      CleanerConfig{RemoveAds: true},
			input:    "这家店真不错 #广告#",
			expected: "这家店真不错",
		},
		{
			name:     "mention removed",
			cfg:      CleanerConfig{RemoveAds: true},
			input:    "和 @小红薯12345 一起去的",
			expected: "和 一起去的",
		},
		{
			name:     "promo phrase removed to end of text",
			cfg:      CleanerConfig{RemoveAds: true},
			input:    "环境很好。点击链接领取五折券",
			expected: "环境很好。",
		},
		{
			name:     "english promo phrase removed",
			cfg:      CleanerConfig{RemoveAds: true},
			input:    "Amazing view. Click this link to book now",
			expected: "Amazing view.",
		},
		{
			name:     "emoji ad and mention combined",
			cfg:      CleanerConfig{RemoveEmoji: true, RemoveAds: true},
			input:    "Great trip! 😊 #广告# @someone click this link",
			expected: "Great trip!",
		},
		{
			name:     "hashtags kept by default",
			cfg:      CleanerConfig{RemoveEmoji: true, RemoveAds: true},
			input:    "#杭州旅行# 西湖一日游",
			expected: "#杭州旅行# 西湖一日游",
		},
		{
			name:     "hashtags removed when enabled",
			cfg:      CleanerConfig{RemoveHashtags: true},
			input:    "#杭州旅行# 西湖一日游 [偷笑R]",
			expected: "西湖一日游",
		},
		{
			name:     "whitespace collapsed",
			cfg:      CleanerConfig{},
			input:    "第一行\n\n  第二行\t第三行  ",
			expected: "第一行 第二行 第三行",
		},
		{
			name:     "everything stripped leaves empty",
			cfg:      CleanerConfig{RemoveEmoji: true, RemoveAds: true},
			input:    "😊 #广告# @someone",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCleaner(tt.cfg)
			assert.Equal(t, tt.expected, c.Clean(tt.input))
		})
	}
}

func TestDefaultCleaner(t *testing.T) {
	c := DefaultCleaner()
	assert.True(t, c.removeEmoji)
	assert.True(t, c.removeAds)
	assert.False(t, c.removeHashtags)
	assert.Equal(t, 10, c.minLength)
}

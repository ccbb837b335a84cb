package content

import (
	"regexp"
	"strings"

	"github.com/forPelevin/gomoji"
	"github.com/go-pkgz/lgr"
)

// adPatterns match hashtag-style ad tags, @-mentions and promo phrases,
// each applied independently and case-insensitively
var adPatterns = []*regexp.Regexp{
	regexp.MustCompile(`#广告#`),
	regexp.MustCompile(`#推广#`),
	regexp.MustCompile(`#合作#`),
	regexp.MustCompile(`@\S+\s*`),
	regexp.MustCompile(`点击链接.*`),
	regexp.MustCompile(`戳链接.*`),
	regexp.MustCompile(`复制.*口令.*`),
	regexp.MustCompile(`优惠券.*`),
	regexp.MustCompile(`领取.*福利.*`),
	regexp.MustCompile(`(?i)click\s+(this\s+|the\s+)?link.*`),
	regexp.MustCompile(`(?i)copy\s+(this\s+|the\s+)?code.*`),
	regexp.MustCompile(`(?i)claim\s+(your\s+|the\s+)?coupon.*`),
}

// hashtagPatterns match bracketed inline-emoji tokens and #topic# tags
var hashtagPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\[[^\[\]]*\]`),
	regexp.MustCompile(`#\S+#`),
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// CleanerConfig controls which cleanup steps run
type CleanerConfig struct {
	RemoveEmoji    bool
	RemoveAds      bool
	RemoveHashtags bool
	MinLength      int
}

// Cleaner strips noise from raw social-media text. Pure and deterministic,
// safe for concurrent use.
type Cleaner struct {
	removeEmoji    bool
	removeAds      bool
	removeHashtags bool
	minLength      int
}

// NewCleaner creates a cleaner with the given options
func NewCleaner(cfg CleanerConfig) *Cleaner {
	return &Cleaner{
		removeEmoji:    cfg.RemoveEmoji,
		removeAds:      cfg.RemoveAds,
		removeHashtags: cfg.RemoveHashtags,
		minLength:      cfg.MinLength,
	}
}

// DefaultCleaner creates a cleaner with emoji and ad removal on,
// hashtag removal off and a minimum length of 10
func DefaultCleaner() *Cleaner {
	return NewCleaner(CleanerConfig{RemoveEmoji: true, RemoveAds: true, MinLength: 10})
}

// Clean strips emoji, ad markers and optionally hashtag tokens from text,
// then collapses whitespace. Empty input returns empty; no step ever fails.
func (c *Cleaner) Clean(text string) string {
	if text == "" {
		return ""
	}

	result := text

	if c.removeEmoji {
		result = gomoji.RemoveEmojis(result)
	}

	if c.removeAds {
		for _, re := range adPatterns {
			result = re.ReplaceAllString(result, "")
		}
	}

	if c.removeHashtags {
		for _, re := range hashtagPatterns {
			result = re.ReplaceAllString(result, "")
		}
	}

	result = whitespaceRe.ReplaceAllString(result, " ")
	result = strings.TrimSpace(result)

	// short results are not blocked here, the pipeline decides what to do
	if c.minLength > 0 && len([]rune(result)) < c.minLength {
		lgr.Printf("[DEBUG] text too short after cleaning: %d chars", len([]rune(result)))
	}

	return result
}

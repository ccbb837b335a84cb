package content

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/litetravel/notescope/pkg/domain"
)

// well-known keys carried in the map when the response can't be decoded
const (
	KeyRawResponse = "raw_response"
	KeyParseError  = "parse_error"
)

// sentimentSynonyms maps model output to sentiment values, covering the
// English labels the prompts ask for and the Chinese terms models emit anyway
var sentimentSynonyms = map[string]domain.Sentiment{
	"positive": domain.SentimentPositive,
	"negative": domain.SentimentNegative,
	"neutral":  domain.SentimentNeutral,
	"mixed":    domain.SentimentMixed,
	"种草":       domain.SentimentPositive,
	"拔草":       domain.SentimentNegative,
	"中立":       domain.SentimentNeutral,
}

// intentSynonyms maps model output to intent values, bilingual like sentimentSynonyms
var intentSynonyms = map[string]domain.Intent{
	"recommend": domain.IntentRecommend,
	"warn":      domain.IntentWarn,
	"review":    domain.IntentReview,
	"question":  domain.IntentQuestion,
	"share":     domain.IntentShare,
	"种草":        domain.IntentRecommend,
	"拔草":        domain.IntentWarn,
	"评测":        domain.IntentReview,
	"提问":        domain.IntentQuestion,
	"分享":        domain.IntentShare,
}

// ResponseParser turns raw LLM output into a typed AnalysisResult. The model
// is not a trusted peer, so every field degrades to a default instead of
// failing the whole note.
type ResponseParser struct{}

// NewResponseParser creates a response parser
func NewResponseParser() *ResponseParser {
	return &ResponseParser{}
}

// ParseResponse extracts a JSON object from raw LLM output. It strips
// markdown code fences, tries a strict decode, then falls back to the
// substring between the outermost braces. When nothing decodes, the result
// carries the original text and the decode error under well-known keys
// instead of failing.
func (p *ResponseParser) ParseResponse(raw string) map[string]any {
	if raw == "" {
		return map[string]any{}
	}

	cleaned := strings.TrimSpace(raw)
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = cleaned[len("```json"):]
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = cleaned[len("```"):]
	}
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var data map[string]any
	err := json.Unmarshal([]byte(cleaned), &data)
	if err == nil {
		return data
	}
	lgr.Printf("[WARN] json decode failed: %v", err)

	// the model may have wrapped the object in prose, try the braced substring
	if start := strings.Index(cleaned, "{"); start != -1 {
		if end := strings.LastIndex(cleaned, "}"); end > start {
			var inner map[string]any
			if err2 := json.Unmarshal([]byte(cleaned[start:end+1]), &inner); err2 == nil {
				return inner
			}
		}
	}

	return map[string]any{KeyRawResponse: raw, KeyParseError: err.Error()}
}

// Parse maps a decoded response into an AnalysisResult with field-level
// clamping and defaulting. A map carrying a parse error yields a failed
// result with no further mapping.
func (p *ResponseParser) Parse(data map[string]any, noteID string, source domain.SourceType,
	modelUsed string, processingTime float64) domain.AnalysisResult {

	if perr, ok := data[KeyParseError]; ok {
		return domain.EmptyResult(noteID, source, asString(perr))
	}

	sentiment := domain.SentimentNeutral
	if s, ok := data["sentiment"].(string); ok {
		if mapped, found := sentimentSynonyms[strings.ToLower(s)]; found {
			sentiment = mapped
		}
	}

	intentRaw, ok := data["user_intent"]
	if !ok {
		intentRaw = data["intent"]
	}
	intent := domain.IntentShare
	if s, ok := intentRaw.(string); ok {
		if mapped, found := intentSynonyms[strings.ToLower(s)]; found {
			intent = mapped
		}
	}

	return domain.AnalysisResult{
		NoteID:          noteID,
		Source:          source,
		Sentiment:       sentiment,
		SentimentScore:  safeScore(data["sentiment_score"]),
		SentimentReason: asString(data["sentiment_reason"]),
		Keywords:        safeList(data["keywords"]),
		Summary:         truncate(asString(data["summary"]), 100),
		Intent:          intent,
		Places:          safeList(data["places"]),
		PriceInfo:       asString(data["price_info"]),
		Tips:            safeList(data["tips"]),
		QualityScore:    safeScore(data["quality_score"]),
		IsAd:            truthy(data["is_ad"]),
		ModelUsed:       modelUsed,
		ProcessingTime:  processingTime,
	}
}

// safeScore coerces a value to float64 clamped to [1,5], 3.0 on failure
func safeScore(v any) float64 {
	var f float64
	switch val := v.(type) {
	case float64:
		f = val
	case int:
		f = float64(val)
	case json.Number:
		parsed, err := val.Float64()
		if err != nil {
			return 3.0
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 3.0
		}
		f = parsed
	default:
		return 3.0
	}

	if f < 1.0 {
		return 1.0
	}
	if f > 5.0 {
		return 5.0
	}
	return f
}

// safeList accepts a list (stringified elementwise), a single string
// (wrapped) or anything else (empty list)
func safeList(v any) []string {
	switch val := v.(type) {
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			out = append(out, asString(item))
		}
		return out
	case []string:
		return val
	case string:
		if val == "" {
			return []string{}
		}
		return []string{val}
	default:
		return []string{}
	}
}

// asString stringifies a value, empty for nil
func asString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// truthy coerces a value to bool. Strings count as true unless empty or an
// explicit negative, numbers when non-zero.
func truthy(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case float64:
		return val != 0
	case int:
		return val != 0
	case string:
		s := strings.ToLower(strings.TrimSpace(val))
		return s != "" && s != "false" && s != "no" && s != "0"
	default:
		return false
	}
}

// truncate cuts a string to at most n characters, not bytes
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

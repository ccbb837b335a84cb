package domain

// Sentiment is the coarse emotional polarity of a note
type Sentiment string

// sentiment values
const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
	SentimentMixed    Sentiment = "mixed"
)

// Intent is the communicative purpose of a note
type Intent string

// intent values
const (
	IntentRecommend Intent = "recommend"
	IntentWarn      Intent = "warn"
	IntentReview    Intent = "review"
	IntentQuestion  Intent = "question"
	IntentShare     Intent = "share"
)

// AnalysisResult is the pipeline output for a single note. A result with
// non-empty Error is failed regardless of other fields, but every field still
// carries its default so the value serializes cleanly either way.
type AnalysisResult struct {
	NoteID string     `json:"note_id"`
	Source SourceType `json:"source"`

	Sentiment       Sentiment `json:"sentiment"`
	SentimentScore  float64   `json:"sentiment_score"`
	SentimentReason string    `json:"sentiment_reason"`

	Keywords  []string `json:"keywords"`
	Summary   string   `json:"summary"`
	Intent    Intent   `json:"user_intent"`
	Places    []string `json:"places"`
	PriceInfo string   `json:"price_info"`
	Tips      []string `json:"tips"`

	QualityScore float64 `json:"quality_score"`
	IsAd         bool    `json:"is_ad"`

	ModelUsed      string  `json:"model_used"`
	ProcessingTime float64 `json:"processing_time"` // seconds
	Error          string  `json:"error,omitempty"`
}

// Failed reports whether the result represents a processing failure
func (r *AnalysisResult) Failed() bool {
	return r.Error != ""
}

// EmptyResult builds a well-formed failed result from identity and error alone.
// Every failure path goes through here so callers never branch on whether a
// result was produced.
func EmptyResult(noteID string, source SourceType, errMsg string) AnalysisResult {
	if errMsg == "" {
		errMsg = "processing failed"
	}
	return AnalysisResult{
		NoteID:         noteID,
		Source:         source,
		Sentiment:      SentimentNeutral,
		SentimentScore: 3.0,
		Keywords:       []string{},
		Intent:         IntentShare,
		Places:         []string{},
		Tips:           []string{},
		QualityScore:   3.0,
		Error:          errMsg,
	}
}

// BatchResult aggregates per-note results for one batch run. Results order
// matches the input note order, TotalCount == len(Results) and
// SuccessCount+FailedCount == TotalCount.
type BatchResult struct {
	Results        []AnalysisResult `json:"results"`
	TotalCount     int              `json:"total_count"`
	SuccessCount   int              `json:"success_count"`
	FailedCount    int              `json:"failed_count"`
	ProcessingTime float64          `json:"processing_time"` // seconds
}

package pipeline

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/litetravel/notescope/pkg/content"
	"github.com/litetravel/notescope/pkg/domain"
	"github.com/litetravel/notescope/pkg/llm"
	"github.com/litetravel/notescope/pkg/prompts"
)

//go:generate moq -out mocks/provider.go -pkg mocks -skip-ensure -fmt goimports . Provider
//go:generate moq -out mocks/prompts.go -pkg mocks -skip-ensure -fmt goimports . PromptManager
//go:generate moq -out mocks/cleaner.go -pkg mocks -skip-ensure -fmt goimports . Cleaner
//go:generate moq -out mocks/parser.go -pkg mocks -skip-ensure -fmt goimports . ResponseParser
//go:generate moq -out mocks/source.go -pkg mocks -skip-ensure -fmt goimports . DataSource

// Provider submits instruction pairs to a remote model. Implementations own
// their retry policy for transient failures.
type Provider interface {
	Name() string
	Model() string
	ChatCompletion(ctx context.Context, systemPrompt, userContent string, opts ...llm.CallOption) (string, error)
}

// PromptManager selects and renders prompt templates
type PromptManager interface {
	SelectTemplate(contentType domain.ContentType) string
	BuildPrompt(name string, note domain.Note) (systemPrompt, userPrompt string, err error)
}

// Cleaner strips noise from raw note text
type Cleaner interface {
	Clean(text string) string
}

// ResponseParser decodes raw model output and maps it to a typed result
type ResponseParser interface {
	ParseResponse(raw string) map[string]any
	Parse(data map[string]any, noteID string, source domain.SourceType, modelUsed string, processingTime float64) domain.AnalysisResult
}

// FetchRequest carries data source query parameters
type FetchRequest struct {
	Keyword string
	City    string
	Limit   int
	Extra   map[string]string // source-specific parameters, opaque to the pipeline
}

// DataSource supplies notes by keyword. Implementations log internal fetch
// failures and return an empty slice rather than an error.
type DataSource interface {
	SourceType() domain.SourceType
	FetchNotes(ctx context.Context, req FetchRequest) ([]domain.Note, error)
	FetchNoteDetail(ctx context.Context, id string) (*domain.Note, error)
}

// NoteHook transforms a note before processing
type NoteHook func(ctx context.Context, note domain.Note) (domain.Note, error)

// ResultHook transforms an analysis result after processing
type ResultHook func(ctx context.Context, result domain.AnalysisResult) (domain.AnalysisResult, error)

// Config holds pipeline dependencies and settings. Provider is required,
// everything else defaults when omitted.
type Config struct {
	Provider    Provider
	Prompts     PromptManager
	Cleaner     Cleaner
	Parser      ResponseParser
	Concurrency int
}

const defaultConcurrency = 3

// Pipeline composes cleaning, prompt rendering, LLM invocation and response
// parsing to process notes one at a time or in bounded-concurrency batches.
// Data sources are registered by an external caller and looked up by type.
type Pipeline struct {
	provider    Provider
	prompts     PromptManager
	cleaner     Cleaner
	parser      ResponseParser
	concurrency int

	mu        sync.RWMutex
	sources   map[domain.SourceType]DataSource
	preHooks  []NoteHook
	postHooks []ResultHook
}

// New creates a pipeline with the given configuration
func New(cfg Config) *Pipeline {
	if cfg.Prompts == nil {
		cfg.Prompts = prompts.NewManager()
	}
	if cfg.Cleaner == nil {
		cfg.Cleaner = content.DefaultCleaner()
	}
	if cfg.Parser == nil {
		cfg.Parser = content.NewResponseParser()
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = defaultConcurrency
	}

	p := &Pipeline{
		provider:    cfg.Provider,
		prompts:     cfg.Prompts,
		cleaner:     cfg.Cleaner,
		parser:      cfg.Parser,
		concurrency: cfg.Concurrency,
		sources:     make(map[domain.SourceType]DataSource),
	}

	if p.provider != nil {
		lgr.Printf("[INFO] pipeline initialized with llm provider %s (model %s), concurrency %d",
			p.provider.Name(), p.provider.Model(), p.concurrency)
	}
	return p
}

// RegisterSource adds a data source, replacing any previous one of the same type
func (p *Pipeline) RegisterSource(src DataSource) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sources[src.SourceType()] = src
	lgr.Printf("[INFO] registered data source: %s", src.SourceType())
}

// AddPreProcessHook appends a note transform applied before processing,
// in registration order
func (p *Pipeline) AddPreProcessHook(hook NoteHook) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.preHooks = append(p.preHooks, hook)
}

// AddPostProcessHook appends a result transform applied after processing,
// in registration order
func (p *Pipeline) AddPostProcessHook(hook ResultHook) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.postHooks = append(p.postHooks, hook)
}

// ProcessNote runs the full analysis for a single note. It never returns an
// error: every failure becomes a failed AnalysisResult carrying the failure
// message, so callers always get exactly one well-formed result per note.
// An empty templateName selects one by the note's content type.
func (p *Pipeline) ProcessNote(ctx context.Context, note domain.Note, templateName string) domain.AnalysisResult {
	start := time.Now()

	fail := func(err error) domain.AnalysisResult {
		lgr.Printf("[WARN] failed to process note %s: %v", note.ID, err)
		return domain.EmptyResult(note.ID, note.Source, err.Error())
	}

	// 1. pre-process hooks
	p.mu.RLock()
	preHooks := p.preHooks
	postHooks := p.postHooks
	p.mu.RUnlock()

	for _, hook := range preHooks {
		transformed, err := hook(ctx, note)
		if err != nil {
			return fail(fmt.Errorf("pre-process hook: %w", err))
		}
		note = transformed
	}

	// 2. clean text, an empty result means there is nothing to analyze
	cleaned := p.cleaner.Clean(note.FullText())
	if cleaned == "" {
		return fail(fmt.Errorf("Empty content after cleaning"))
	}

	// 3. resolve template
	if templateName == "" {
		templateName = p.prompts.SelectTemplate(note.ContentType)
	}

	// 4. render prompts
	systemPrompt, userPrompt, err := p.prompts.BuildPrompt(templateName, note)
	if err != nil {
		return fail(err)
	}

	// 5. call the LLM, the provider owns retries for transient failures
	lgr.Printf("[DEBUG] processing note %s with template %s", note.ID, templateName)
	response, err := p.provider.ChatCompletion(ctx, systemPrompt, userPrompt)
	if err != nil {
		return fail(err)
	}

	// 6. decode and map the response
	data := p.parser.ParseResponse(response)
	result := p.parser.Parse(data, note.ID, note.Source, p.provider.Model(), time.Since(start).Seconds())

	// 7. post-process hooks
	for _, hook := range postHooks {
		transformed, err := hook(ctx, result)
		if err != nil {
			return fail(fmt.Errorf("post-process hook: %w", err))
		}
		result = transformed
	}

	lgr.Printf("[INFO] processed note %s: sentiment=%s, intent=%s, time=%.2fs",
		note.ID, result.Sentiment, result.Intent, result.ProcessingTime)
	return result
}

// ProcessBatch processes every note concurrently, bounded by the configured
// concurrency. Each note is isolated: a failure becomes that note's failed
// result and never aborts siblings. Results preserve input order.
func (p *Pipeline) ProcessBatch(ctx context.Context, notes []domain.Note, templateName string) domain.BatchResult {
	start := time.Now()
	results := make([]domain.AnalysisResult, len(notes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for i, note := range notes {
		g.Go(func() error {
			results[i] = p.ProcessNote(gctx, note, templateName)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors, failures live in the results

	success, failed := 0, 0
	for i := range results {
		if results[i].Failed() {
			failed++
		} else {
			success++
		}
	}

	elapsed := time.Since(start).Seconds()
	lgr.Printf("[INFO] batch processing complete: %d success, %d failed, %.2fs total", success, failed, elapsed)

	return domain.BatchResult{
		Results:        results,
		TotalCount:     len(notes),
		SuccessCount:   success,
		FailedCount:    failed,
		ProcessingTime: elapsed,
	}
}

// FetchAndProcess looks up a registered data source, fetches notes by
// keyword and runs ProcessBatch on them. An unregistered source type is a
// caller mistake and comes back as an error, not a failed batch.
func (p *Pipeline) FetchAndProcess(ctx context.Context, sourceType domain.SourceType, keyword, city string, limit int, templateName string) (domain.BatchResult, error) {
	p.mu.RLock()
	src, ok := p.sources[sourceType]
	registered := make([]string, 0, len(p.sources))
	for st := range p.sources {
		registered = append(registered, string(st))
	}
	p.mu.RUnlock()
	sort.Strings(registered)

	if !ok {
		return domain.BatchResult{}, fmt.Errorf("data source %q not registered, available: [%s]",
			sourceType, strings.Join(registered, ", "))
	}

	lgr.Printf("[INFO] fetching notes from %s: keyword=%q city=%q limit=%d", sourceType, keyword, city, limit)
	notes, err := src.FetchNotes(ctx, FetchRequest{Keyword: keyword, City: city, Limit: limit})
	if err != nil {
		return domain.BatchResult{}, fmt.Errorf("fetch notes from %s: %w", sourceType, err)
	}

	if len(notes) == 0 {
		lgr.Printf("[WARN] no notes found for keyword: %s", keyword)
		return domain.BatchResult{Results: []domain.AnalysisResult{}}, nil
	}

	lgr.Printf("[INFO] fetched %d notes from %s", len(notes), sourceType)
	return p.ProcessBatch(ctx, notes, templateName), nil
}

package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/litetravel/notescope/pkg/config"
	"github.com/litetravel/notescope/pkg/content"
	"github.com/litetravel/notescope/pkg/domain"
	"github.com/litetravel/notescope/pkg/pipeline"
)

// FeedSource turns RSS/Atom travel feeds into notes. A feed failure is
// logged and skipped so one broken feed never sinks the whole fetch.
type FeedSource struct {
	feeds     []config.Feed
	client    *http.Client
	userAgent string
	sanitizer *bluemonday.Policy
	extractor *content.Extractor
}

// NewFeedSource creates a feed source over the configured feed list.
// The extractor is optional, without it FetchNoteDetail is unavailable.
func NewFeedSource(feeds []config.Feed, timeout time.Duration, userAgent string, extractor *content.Extractor) *FeedSource {
	return &FeedSource{
		feeds: feeds,
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
		sanitizer: bluemonday.StrictPolicy(),
		extractor: extractor,
	}
}

// SourceType returns the feed source identifier
func (s *FeedSource) SourceType() domain.SourceType { return domain.SourceFeed }

// FetchNotes fetches every configured feed, filters items by keyword and
// city and converts them to notes. Per-feed failures are logged and the
// remaining feeds are still tried.
func (s *FeedSource) FetchNotes(ctx context.Context, req pipeline.FetchRequest) ([]domain.Note, error) {
	var notes []domain.Note
	for _, feed := range s.feeds {
		if req.City != "" && feed.City != "" && feed.City != req.City {
			continue
		}

		parsed, err := s.parseFeed(ctx, feed.URL)
		if err != nil {
			lgr.Printf("[WARN] failed to fetch feed %s (%s): %v", feed.Name, feed.URL, err)
			continue
		}

		for _, item := range parsed.Items {
			note := s.itemToNote(feed, item)
			if req.Keyword != "" && !matchesKeyword(note, req.Keyword) {
				continue
			}
			notes = append(notes, note)
			if req.Limit > 0 && len(notes) >= req.Limit {
				return notes, nil
			}
		}
	}
	return notes, nil
}

// FetchNoteDetail extracts the full article text for a note whose id is the
// item link. Returns nil when extraction is not configured.
func (s *FeedSource) FetchNoteDetail(ctx context.Context, id string) (*domain.Note, error) {
	if s.extractor == nil {
		return nil, nil
	}
	text, err := s.extractor.Extract(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("extract note detail: %w", err)
	}
	note := domain.Note{
		ID:        id,
		Source:    domain.SourceFeed,
		Content:   text,
		CrawlTime: time.Now(),
	}
	note.ContentType = InferContentType(note.Title, note.Content, nil)
	return &note, nil
}

func (s *FeedSource) parseFeed(ctx context.Context, url string) (*gofeed.Feed, error) {
	body, err := s.fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer body.Close()

	parsed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}
	return parsed, nil
}

// fetch retrieves content from a URL
func (s *FeedSource) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", s.userAgent)

	// add browser-like headers
	addBrowserHeaders(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}

func (s *FeedSource) itemToNote(feed config.Feed, item *gofeed.Item) domain.Note {
	body := item.Content
	if body == "" {
		body = item.Description
	}
	body = strings.TrimSpace(s.sanitizer.Sanitize(body))

	note := domain.Note{
		ID:      itemGUID(item, feed.Name),
		Source:  domain.SourceFeed,
		Title:   strings.TrimSpace(item.Title),
		Content: body,
		City:    feed.City,
	}

	if item.Author != nil {
		note.AuthorName = item.Author.Name
	}
	if item.PublishedParsed != nil {
		note.PublishTime = item.PublishedParsed.Format(time.RFC3339)
	} else if item.UpdatedParsed != nil {
		note.PublishTime = item.UpdatedParsed.Format(time.RFC3339)
	}
	note.CrawlTime = time.Now()
	note.Tags = item.Categories
	note.ContentType = InferContentType(note.Title, note.Content, note.Tags)
	return note
}

func itemGUID(item *gofeed.Item, feedName string) string {
	switch {
	case item.GUID != "":
		return item.GUID
	case item.Link != "":
		return item.Link
	default:
		return fmt.Sprintf("%s-%s", feedName, item.Title)
	}
}

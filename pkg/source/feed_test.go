package source

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litetravel/notescope/pkg/config"
	"github.com/litetravel/notescope/pkg/domain"
	"github.com/litetravel/notescope/pkg/pipeline"
)

const testRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>杭州旅行笔记</title>
    <link>https://example.com</link>
    <item>
      <title>西湖景区徒步攻略</title>
      <link>https://example.com/posts/1</link>
      <guid>post-1</guid>
      <description>&lt;p&gt;从断桥出发，沿白堤走到&lt;b&gt;孤山&lt;/b&gt;，全程约两小时。&lt;/p&gt;</description>
      <category>徒步</category>
      <category>景点</category>
      <pubDate>Mon, 02 Jun 2025 10:00:00 +0000</pubDate>
    </item>
    <item>
      <title>灵隐寺旁的素食餐厅</title>
      <link>https://example.com/posts/2</link>
      <guid>post-2</guid>
      <description>素菜做得很精致，人均80元。</description>
      <category>美食</category>
    </item>
  </channel>
</rss>`

func newTestFeedSource(t *testing.T, handler http.HandlerFunc, city string) (*FeedSource, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	feeds := []config.Feed{{Name: "test-feed", URL: srv.URL, City: city}}
	return NewFeedSource(feeds, 5*time.Second, "Notescope/1.0", nil), srv
}

func TestFeedSource_FetchNotes(t *testing.T) {
	s, _ := newTestFeedSource(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		assert.NotEmpty(t, r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, testRSS)
	}, "杭州")

	notes, err := s.FetchNotes(context.Background(), pipeline.FetchRequest{})
	require.NoError(t, err)
	require.Len(t, notes, 2)

	first := notes[0]
	assert.Equal(t, "post-1", first.ID)
	assert.Equal(t, domain.SourceFeed, first.Source)
	assert.Equal(t, "西湖景区徒步攻略", first.Title)
	assert.Equal(t, "从断桥出发，沿白堤走到孤山，全程约两小时。", first.Content, "html tags should be stripped")
	assert.Equal(t, "杭州", first.City)
	assert.Equal(t, []string{"徒步", "景点"}, first.Tags)
	assert.Equal(t, domain.ContentAttraction, first.ContentType)
	assert.Equal(t, "2025-06-02T10:00:00Z", first.PublishTime)

	assert.Equal(t, domain.ContentDining, notes[1].ContentType)
}

func TestFeedSource_FetchNotes_KeywordAndLimit(t *testing.T) {
	s, _ := newTestFeedSource(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, testRSS)
	}, "")

	t.Run("keyword filter", func(t *testing.T) {
		notes, err := s.FetchNotes(context.Background(), pipeline.FetchRequest{Keyword: "素食"})
		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Equal(t, "post-2", notes[0].ID)
	})

	t.Run("limit short-circuits", func(t *testing.T) {
		notes, err := s.FetchNotes(context.Background(), pipeline.FetchRequest{Limit: 1})
		require.NoError(t, err)
		assert.Len(t, notes, 1)
	})
}

func TestFeedSource_FetchNotes_CityMismatchSkipsFeed(t *testing.T) {
	var called bool
	s, _ := newTestFeedSource(t, func(w http.ResponseWriter, _ *http.Request) {
		called = true
		fmt.Fprint(w, testRSS)
	}, "杭州")

	notes, err := s.FetchNotes(context.Background(), pipeline.FetchRequest{City: "成都"})
	require.NoError(t, err)
	assert.Empty(t, notes)
	assert.False(t, called, "feed for another city should not be fetched")
}

func TestFeedSource_FetchNotes_BrokenFeedSkipped(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"http error", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"not a feed", func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, "<html><body>not a feed</body></html>")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestFeedSource(t, tt.handler, "")
			notes, err := s.FetchNotes(context.Background(), pipeline.FetchRequest{})
			require.NoError(t, err, "a broken feed is logged, not surfaced")
			assert.Empty(t, notes)
		})
	}
}

func TestFeedSource_FetchNoteDetail_NoExtractor(t *testing.T) {
	s := NewFeedSource(nil, time.Second, "Notescope/1.0", nil)
	note, err := s.FetchNoteDetail(context.Background(), "https://example.com/posts/1")
	require.NoError(t, err)
	assert.Nil(t, note)
}

func TestFeedSource_SourceType(t *testing.T) {
	assert.Equal(t, domain.SourceFeed, NewFeedSource(nil, time.Second, "ua", nil).SourceType())
}

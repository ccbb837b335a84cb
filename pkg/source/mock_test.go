package source

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litetravel/notescope/pkg/domain"
	"github.com/litetravel/notescope/pkg/pipeline"
)

func TestMockSource_FetchNotes(t *testing.T) {
	s := NewMockSource()
	ctx := context.Background()

	t.Run("no filters returns all", func(t *testing.T) {
		notes, err := s.FetchNotes(ctx, pipeline.FetchRequest{})
		require.NoError(t, err)
		assert.Len(t, notes, 3)
		for _, note := range notes {
			_, perr := time.Parse(time.RFC3339, note.PublishTime)
			assert.NoError(t, perr, "demo note %s should carry an RFC3339 publish time", note.ID)
		}
	})

	t.Run("limit applied", func(t *testing.T) {
		notes, err := s.FetchNotes(ctx, pipeline.FetchRequest{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, notes, 2)
	})

	t.Run("keyword matches title", func(t *testing.T) {
		notes, err := s.FetchNotes(ctx, pipeline.FetchRequest{Keyword: "西湖"})
		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Equal(t, "mock-001", notes[0].ID)
	})

	t.Run("keyword matches tags", func(t *testing.T) {
		notes, err := s.FetchNotes(ctx, pipeline.FetchRequest{Keyword: "避雷"})
		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Equal(t, "mock-003", notes[0].ID)
	})

	t.Run("city filter", func(t *testing.T) {
		notes, err := s.FetchNotes(ctx, pipeline.FetchRequest{City: "成都"})
		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Equal(t, domain.ContentDining, notes[0].ContentType)
	})

	t.Run("no match returns empty", func(t *testing.T) {
		notes, err := s.FetchNotes(ctx, pipeline.FetchRequest{Keyword: "滑雪"})
		require.NoError(t, err)
		assert.Empty(t, notes)
	})
}

func TestMockSource_FetchNoteDetail(t *testing.T) {
	s := NewMockSource()

	note, err := s.FetchNoteDetail(context.Background(), "mock-002")
	require.NoError(t, err)
	require.NotNil(t, note)
	assert.Equal(t, "成都这家火锅店真的绝了", note.Title)

	note, err = s.FetchNoteDetail(context.Background(), "no-such-id")
	require.NoError(t, err)
	assert.Nil(t, note)
}

func TestMockSource_SourceType(t *testing.T) {
	assert.Equal(t, domain.SourceMock, NewMockSource().SourceType())
}

func TestInferContentType(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		body     string
		tags     []string
		expected domain.ContentType
	}{
		{"dining from title", "探店记录", "", nil, domain.ContentDining},
		{"dining from english", "Best restaurant in town", "", nil, domain.ContentDining},
		{"hotel from tags", "周末去哪", "", []string{"民宿"}, domain.ContentHotel},
		{"commute from body", "分享一下", "高铁二等座体验", nil, domain.ContentCommute},
		{"attraction from body", "假期记录", "故宫博物馆人太多了", nil, domain.ContentAttraction},
		{"dining wins over attraction", "景点旁边的美食", "", nil, domain.ContentDining},
		{"nothing matches", "随便写写", "今天天气不错", nil, domain.ContentGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, InferContentType(tt.title, tt.body, tt.tags))
		})
	}
}

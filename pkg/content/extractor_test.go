package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	tests := []struct {
		name        string
		htmlContent string
		wantContent string
		wantErr     bool
		statusCode  int
	}{
		{
			name: "successful extraction",
			htmlContent: `<!DOCTYPE html>
				<html>
				<head><title>西湖游记</title></head>
				<body>
					<article>
						<h1>西湖两日游记录</h1>
						<p>第一天早上从断桥出发，沿白堤一路走到孤山，湖面晨雾未散，游人不多。</p>
						<p>第二天去了灵隐寺和飞来峰，建议避开旅行团高峰。</p>
					</article>
				</body>
				</html>`,
			wantContent: "断桥",
			statusCode:  http.StatusOK,
		},
		{
			name:        "server error",
			htmlContent: "error",
			wantErr:     true,
			statusCode:  http.StatusInternalServerError,
		},
		{
			name:        "not found",
			htmlContent: "not found",
			wantErr:     true,
			statusCode:  http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				if tt.statusCode == http.StatusOK {
					w.Header().Set("Content-Type", "text/html")
				}
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.htmlContent))
			}))
			defer server.Close()

			extractor := NewExtractor(10*time.Second, "", 0)

			text, err := extractor.Extract(context.Background(), server.URL)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Contains(t, text, tt.wantContent)
		})
	}
}

func TestExtractor_Extract_InvalidURL(t *testing.T) {
	extractor := NewExtractor(time.Second, "", 0)

	_, err := extractor.Extract(context.Background(), "not-a-url")
	require.Error(t, err)

	_, err = extractor.Extract(context.Background(), "://bad")
	require.Error(t, err)
}

func TestExtractor_Extract_MinLength(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><article><p>too short</p></article></body></html>`))
	}))
	defer server.Close()

	extractor := NewExtractor(10*time.Second, "", 500)
	_, err := extractor.Extract(context.Background(), server.URL)
	require.Error(t, err, "a page below the length floor must be rejected")
}

func TestExtractor_Extract_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(2 * time.Second)
		_, _ = w.Write([]byte("<html><body>too late</body></html>"))
	}))
	defer server.Close()

	extractor := NewExtractor(100*time.Millisecond, "", 0)
	_, err := extractor.Extract(context.Background(), server.URL)
	require.Error(t, err)
}

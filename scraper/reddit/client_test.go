package reddit

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dealfinder/config"
	"dealfinder/models"
	"dealfinder/utils"

	"github.com/stretchr/testify/require"
)

const testFeed = `{"data":{"children":[{"data":{"title":"T1","url":"http://x","stickied":false}},{"data":{"title":"T2","url":"http://y","stickied":true}}]}}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*RedditClient, *bytes.Buffer) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	var logs bytes.Buffer
	cfg := config.Config{
		RedditURL:   srv.URL + "/r/deals/new.json",
		UserAgent:   "DealFinder/1.0",
		HTTPTimeout: 5 * time.Second,
	}
	return NewRedditClient(cfg, utils.NewLoggerWithWriter(&logs, "debug")), &logs
}

func TestCollectDropsStickied(t *testing.T) {
	var gotAgent, gotPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(testFeed))
	})

	deals := client.Collect(context.Background())

	require.Equal(t, []models.Deal{
		{Title: "T1", Price: "N/A", Link: "http://x", Source: models.SourceReddit},
	}, deals)
	require.Equal(t, "DealFinder/1.0", gotAgent)
	require.Equal(t, "/r/deals/new.json", gotPath)
	require.Equal(t, "Reddit", client.Name())
}

func TestCollectErrorStatus(t *testing.T) {
	client, logs := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(testFeed))
	})

	deals := client.Collect(context.Background())

	require.Empty(t, deals)
	require.Contains(t, logs.String(), "429")
}

func TestCollectBadBody(t *testing.T) {
	client, logs := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	})

	require.Empty(t, client.Collect(context.Background()))
	require.Contains(t, logs.String(), "failed to decode feed")
}

func TestCollectNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	var logs bytes.Buffer
	client := NewRedditClient(config.Config{RedditURL: url, HTTPTimeout: time.Second}, utils.NewLoggerWithWriter(&logs, "info"))

	require.Empty(t, client.Collect(context.Background()))
	require.Contains(t, logs.String(), "request failed")
}

func TestParseListing(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		expected []string
		wantErr  bool
	}{
		{
			name:     "mixed",
			body:     testFeed,
			expected: []string{"T1"},
		},
		{
			name:     "all stickied",
			body:     `{"data":{"children":[{"data":{"title":"A","url":"u","stickied":true}}]}}`,
			expected: []string{},
		},
		{
			name:     "missing children",
			body:     `{"data":{}}`,
			expected: []string{},
		},
		{
			name:     "order kept",
			body:     `{"data":{"children":[{"data":{"title":"A","url":"a"}},{"data":{"title":"B","url":"b"}}]}}`,
			expected: []string{"A", "B"},
		},
		{
			name:    "invalid",
			body:    `{"data":`,
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			deals, err := ParseListing([]byte(tc.body))
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			titles := []string{}
			for _, d := range deals {
				require.Equal(t, models.NoPrice, d.Price)
				titles = append(titles, d.Title)
			}
			require.Equal(t, tc.expected, titles)
		})
	}
}

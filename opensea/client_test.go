package opensea

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/H4estu/OpenSeer/config"
)

const eventsFixture = `{"asset_events": [{"created_date": "2021-10-05T01:00:00", "asset": {"collection": {"name": "Bored Apes"}}}]}`

func newTestClient(baseURL, apiKey string) *Client {
	cfg := config.OpenSeaConfig{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Timeout: 5 * time.Second,
	}
	return NewClient(cfg, zap.NewNop())
}

func TestRecentSalesRequestShape(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	var gotAPIKey string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		gotAPIKey = r.Header.Get("X-API-KEY")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(eventsFixture))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "test-key")
	raw, err := client.RecentSales(context.Background(), 7)
	if err != nil {
		t.Fatalf("RecentSales returned error: %v", err)
	}

	if gotPath != "/events" {
		t.Errorf("request path = %q, want /events", gotPath)
	}
	if got := gotQuery["event_type"]; len(got) != 1 || got[0] != "successful" {
		t.Errorf("event_type query = %v, want [successful]", got)
	}
	if got := gotQuery["limit"]; len(got) != 1 || got[0] != "7" {
		t.Errorf("limit query = %v, want [7]", got)
	}
	if gotAPIKey != "test-key" {
		t.Errorf("X-API-KEY = %q, want test-key", gotAPIKey)
	}
	if string(raw) != eventsFixture {
		t.Errorf("RecentSales body = %s, want fixture unchanged", raw)
	}
}

func TestRecentSalesOmitsMissingAPIKey(t *testing.T) {
	var sawHeader bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawHeader = r.Header["X-Api-Key"]
		w.Write([]byte(eventsFixture))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "")
	if _, err := client.RecentSales(context.Background(), 1); err != nil {
		t.Fatalf("RecentSales returned error: %v", err)
	}
	if sawHeader {
		t.Error("X-API-KEY header sent despite empty key")
	}
}

func TestRecentSalesRejectsBadResponses(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantMsg string
	}{
		{
			name: "non-200 status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"detail": "throttled"}`, http.StatusTooManyRequests)
			},
			wantMsg: "status 429",
		},
		{
			name:    "empty body",
			handler: func(w http.ResponseWriter, r *http.Request) {},
			wantMsg: "empty",
		},
		{
			name: "null body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("null"))
			},
			wantMsg: "null",
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"asset_events": [`))
			},
			wantMsg: "not valid JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := newTestClient(server.URL, "")
			raw, err := client.RecentSales(context.Background(), 5)
			if err == nil {
				t.Fatalf("RecentSales succeeded with %s, body %s", tt.name, raw)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %v, want it to mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestRecentSalesNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newTestClient(server.URL, "")
	if _, err := client.RecentSales(context.Background(), 5); err == nil {
		t.Fatal("RecentSales succeeded against a closed server")
	}
}

func TestRecentSalesHonorsContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
		w.Write([]byte(eventsFixture))
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	client := newTestClient(server.URL, "")
	if _, err := client.RecentSales(ctx, 5); err == nil {
		t.Fatal("RecentSales succeeded despite an expired context")
	}
}

package research

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
)

func TestCredibility(t *testing.T) {
	tests := []struct {
		url  string
		want float64
	}{
		{"https://www.example.edu/research/paper", 0.95},
		{"https://data.census.gov/stats", 0.95},
		{"https://www.forbes.com/article", 0.9},
		{"https://www.reuters.com/markets", 0.9},
		{"https://medium.com/@someone/post", 0.7},
		{"https://newsletter.substack.com/p/issue", 0.7},
		{"https://randomblog.net/post", 0.5},
		{"not a url", 0.5},
	}

	for _, tt := range tests {
		if got := Credibility(tt.url); got != tt.want {
			t.Errorf("Credibility(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}

func TestExtractStats(t *testing.T) {
	text := "Growth hit 45% last year, up from 12%. The market is worth $4,500.00 " +
		"and analysts expect 3 million users and 2 billion in revenue. Again, 45% was cited."

	stats := ExtractStats(text)

	want := map[string]bool{
		"45%": true, "12%": true, "$4,500.00": true,
		"3 million": true, "2 billion": true,
	}
	if len(stats) != len(want) {
		t.Fatalf("Expected %d stats, got %d: %v", len(want), len(stats), stats)
	}
	for _, s := range stats {
		if !want[s] {
			t.Errorf("Unexpected stat %q", s)
		}
	}
}

func TestExtractStatsCap(t *testing.T) {
	text := "1% 2% 3% 4% 5% 6% 7% $1 $2 $3 $4 $5 1 million 2 million 3 million 1 billion 2 billion"
	stats := ExtractStats(text)
	if len(stats) > 10 {
		t.Errorf("Expected at most 10 stats, got %d", len(stats))
	}
	// only the first five percentages should survive
	for _, s := range stats {
		if s == "6%" || s == "7%" {
			t.Errorf("Stat %q should have been dropped by the per-pattern cap", s)
		}
	}
}

func TestResearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Subscription-Token") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		resp := searchResponse{}
		resp.Web.Results = []searchResult{
			{
				Title:       "Market report",
				URL:         "https://www.bloomberg.com/report",
				Description: "The sector grew 23% to $1,200,000 in value.",
				Age:         "2 days ago",
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	collector := New(Config{APIKey: "test-key", Endpoint: server.URL}, zerolog.Nop())
	if collector == nil {
		t.Fatal("Expected collector, got nil")
	}

	res, err := collector.Research(context.Background(), "fintech", []string{"banking"})
	if err != nil {
		t.Fatalf("Research failed: %v", err)
	}
	if res == nil {
		t.Fatal("Expected research, got nil")
	}

	if res.Topic != "fintech" {
		t.Errorf("Expected topic fintech, got %s", res.Topic)
	}
	// three queries, one result each
	if len(res.Sources) != 3 {
		t.Errorf("Expected 3 sources, got %d", len(res.Sources))
	}
	if len(res.Sources) > 0 && res.Sources[0].Credibility != 0.9 {
		t.Errorf("Expected bloomberg credibility 0.9, got %v", res.Sources[0].Credibility)
	}

	found := map[string]bool{}
	for _, s := range res.KeyStats {
		found[s] = true
	}
	if !found["23%"] || !found["$1,200,000"] {
		t.Errorf("Expected extracted stats, got %v", res.KeyStats)
	}
	if res.ExpiresAt.Before(res.CreatedAt) {
		t.Error("Expected expiry after creation")
	}
}

func TestResearchSkipsFailedQueries(t *testing.T) {
	var calls int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt64(&calls, 1)
		if n == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		resp := searchResponse{}
		resp.Web.Results = []searchResult{
			{Title: "Result", URL: "https://example.com/a", Description: "Some text"},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	collector := New(Config{APIKey: "test-key", Endpoint: server.URL}, zerolog.Nop())

	res, err := collector.Research(context.Background(), "topic", nil)
	if err != nil {
		t.Fatalf("Research failed: %v", err)
	}
	// first query failed, the other two still produce sources
	if len(res.Sources) != 2 {
		t.Errorf("Expected 2 sources, got %d", len(res.Sources))
	}
}

func TestNilCollector(t *testing.T) {
	collector := New(Config{}, zerolog.Nop())
	if collector != nil {
		t.Fatal("Expected nil collector without API key")
	}

	res, err := collector.Research(context.Background(), "topic", nil)
	if err != nil {
		t.Fatalf("Nil collector should not error: %v", err)
	}
	if res != nil {
		t.Error("Nil collector should return no research")
	}
}

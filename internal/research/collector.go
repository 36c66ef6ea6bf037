package research

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/meagherphilip/blogsmith/internal/models"
)

const (
	maxQueries      = 3
	resultsPerQuery = 5
	maxSources      = 10
	maxStatsPerKind = 5
	maxStats        = 10
)

var statPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+%`),
	regexp.MustCompile(`\$[\d,]+(?:\.\d{2})?`),
	regexp.MustCompile(`(?i)\d+ million`),
	regexp.MustCompile(`(?i)\d+ billion`),
}

var highTrustDomains = []string{"reuters.com", "bloomberg.com", "forbes.com", "wsj.com", "nytimes.com"}
var mediumTrustDomains = []string{"medium.com", "substack.com", "linkedin.com"}

// Collector gathers web research for a topic. A nil *Collector means no
// search credential is configured; its Research method returns no research
// rather than an error.
type Collector struct {
	apiKey   string
	endpoint string
	client   *http.Client
	log      zerolog.Logger
}

// New creates a research collector. Returns nil when no API key is set so
// callers degrade to generating without research.
func New(cfg Config, log zerolog.Logger) *Collector {
	if cfg.APIKey == "" {
		log.Warn().Msg("No search API key configured, research disabled")
		return nil
	}
	return &Collector{
		apiKey:   cfg.APIKey,
		endpoint: cfg.Endpoint,
		client:   &http.Client{Timeout: 15 * time.Second},
		log:      log.With().Str("component", "research").Logger(),
	}
}

// Config holds collector settings
type Config struct {
	APIKey   string
	Endpoint string
}

type searchResponse struct {
	Web struct {
		Results []searchResult `json:"results"`
	} `json:"web"`
}

type searchResult struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Age         string `json:"age"`
}

// Research runs up to three searches for the topic and returns structured
// research. A nil collector returns (nil, nil): no research available.
func (c *Collector) Research(ctx context.Context, topic string, keywords []string) (*models.Research, error) {
	if c == nil {
		return nil, nil
	}

	queries := []string{
		topic,
		topic + " statistics 2024",
		topic + " trends",
	}
	if len(keywords) > 2 {
		keywords = keywords[:2]
	}
	queries = append(queries, keywords...)
	if len(queries) > maxQueries {
		queries = queries[:maxQueries]
	}

	var allResults []searchResult
	for _, query := range queries {
		results, err := c.search(ctx, query)
		if err != nil {
			// failed queries are skipped, not retried
			c.log.Warn().Err(err).Str("query", query).Msg("Search query failed")
			continue
		}
		allResults = append(allResults, results...)
	}

	sources := make(models.SourceList, 0, maxSources)
	for _, r := range allResults {
		if len(sources) >= maxSources {
			break
		}
		sources = append(sources, models.Source{
			Title:       r.Title,
			URL:         r.URL,
			Description: r.Description,
			Age:         r.Age,
			Credibility: Credibility(r.URL),
		})
	}

	var descriptions []string
	for _, r := range allResults {
		descriptions = append(descriptions, r.Description)
	}

	now := time.Now()
	return &models.Research{
		ID:        uuid.New().String(),
		Query:     topic,
		Topic:     topic,
		Sources:   sources,
		KeyStats:  ExtractStats(strings.Join(descriptions, " ")),
		CreatedAt: now,
		ExpiresAt: now.Add(models.ResearchTTL),
	}, nil
}

func (c *Collector) search(ctx context.Context, query string) ([]searchResult, error) {
	reqURL := fmt.Sprintf("%s?q=%s&count=%d", c.endpoint, url.QueryEscape(query), resultsPerQuery)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Subscription-Token", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search returned status %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body.Web.Results, nil
}

// Credibility assigns a static trust weight to a source by domain
func Credibility(rawURL string) float64 {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Hostname() == "" {
		return 0.5
	}
	domain := parsed.Hostname()

	if strings.HasSuffix(domain, ".edu") || strings.HasSuffix(domain, ".gov") {
		return 0.95
	}
	for _, d := range highTrustDomains {
		if strings.Contains(domain, d) {
			return 0.9
		}
	}
	for _, d := range mediumTrustDomains {
		if strings.Contains(domain, d) {
			return 0.7
		}
	}
	return 0.5
}

// ExtractStats pulls naive statistic patterns (percentages, dollar amounts,
// "N million", "N billion") out of text: first five matches per pattern,
// deduplicated, capped at ten total.
func ExtractStats(text string) models.StringList {
	stats := models.StringList{}
	seen := make(map[string]bool)

	for _, pattern := range statPatterns {
		matches := pattern.FindAllString(text, -1)
		if len(matches) > maxStatsPerKind {
			matches = matches[:maxStatsPerKind]
		}
		for _, m := range matches {
			if seen[m] {
				continue
			}
			seen[m] = true
			stats = append(stats, m)
		}
	}

	if len(stats) > maxStats {
		stats = stats[:maxStats]
	}
	return stats
}

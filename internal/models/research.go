package models

import (
	"time"
)

// ResearchTTL is how long stored research stays usable. Expiry is only
// filtered on read, never reaped.
const ResearchTTL = 30 * 24 * time.Hour

// Source is a single web-search result with a credibility weight
type Source struct {
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	Description string  `json:"description"`
	Age         string  `json:"age,omitempty"`
	Credibility float64 `json:"credibility"`
}

// Research holds collected web research for a topic
type Research struct {
	ID        string     `json:"id" db:"id"`
	Query     string     `json:"query" db:"query"`
	Topic     string     `json:"topic" db:"topic"`
	Sources   SourceList `json:"sources" db:"sources"`
	KeyStats  StringList `json:"key_stats" db:"key_stats"`
	Summary   string     `json:"summary" db:"summary"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	ExpiresAt time.Time  `json:"expires_at" db:"expires_at"`
}

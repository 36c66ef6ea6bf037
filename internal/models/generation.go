package models

import (
	"time"
)

// GenerationStatus represents the state of a generation job. Jobs move
// strictly forward through the pipeline states and terminate at either
// completed or failed.
type GenerationStatus string

const (
	GenerationStatusPending     GenerationStatus = "pending"
	GenerationStatusResearching GenerationStatus = "researching"
	GenerationStatusOutlining   GenerationStatus = "outlining"
	GenerationStatusWriting     GenerationStatus = "writing"
	GenerationStatusCompleted   GenerationStatus = "completed"
	GenerationStatusFailed      GenerationStatus = "failed"
)

// statusRank orders the pipeline states; terminals share the top rank.
var statusRank = map[GenerationStatus]int{
	GenerationStatusPending:     0,
	GenerationStatusResearching: 1,
	GenerationStatusOutlining:   2,
	GenerationStatusWriting:     3,
	GenerationStatusCompleted:   4,
	GenerationStatusFailed:      4,
}

// Terminal reports whether the status is a final state
func (s GenerationStatus) Terminal() bool {
	return s == GenerationStatusCompleted || s == GenerationStatusFailed
}

// Valid reports whether the status is one of the known states
func (s GenerationStatus) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// CanTransition reports whether moving from s to next is a legal forward
// transition. failed is reachable from any non-terminal state; terminal
// states never transition out.
func (s GenerationStatus) CanTransition(next GenerationStatus) bool {
	if s.Terminal() || !next.Valid() {
		return false
	}
	if next == GenerationStatusFailed {
		return true
	}
	return statusRank[next] > statusRank[s]
}

// Generation represents one run of the generation pipeline. The request
// parameters are persisted on the row so a worker can pick the job up
// after a restart.
type Generation struct {
	ID            string           `json:"id" db:"id"`
	BlogID        string           `json:"blog_id,omitempty" db:"blog_id"`
	ThemeID       string           `json:"theme_id,omitempty" db:"theme_id"`
	AuthorID      string           `json:"author_id,omitempty" db:"author_id"`
	Prompt        string           `json:"prompt" db:"prompt"`
	Model         string           `json:"model" db:"model"`
	Status        GenerationStatus `json:"status" db:"status"`
	Output        string           `json:"output,omitempty" db:"output"`
	Cost          float64          `json:"cost" db:"cost"`
	Error         string           `json:"error,omitempty" db:"error"`
	Keywords      StringList       `json:"keywords" db:"keywords"`
	Tone          string           `json:"tone" db:"tone"`
	Voice         string           `json:"voice" db:"voice"`
	TargetLength  int              `json:"target_length" db:"target_length"`
	IncludeImages bool             `json:"include_images" db:"include_images"`
	Research      bool             `json:"research" db:"research"`
	CreatedAt     time.Time        `json:"created_at" db:"created_at"`
	CompletedAt   *time.Time       `json:"completed_at,omitempty" db:"completed_at"`
}

// GenerationRequest is the POST /api/generate request body
type GenerationRequest struct {
	Topic         string   `json:"topic"`
	ThemeID       string   `json:"themeId,omitempty"`
	Keywords      []string `json:"keywords,omitempty"`
	Tone          string   `json:"tone,omitempty"`
	TargetLength  int      `json:"targetLength,omitempty"`
	IncludeImages bool     `json:"includeImages,omitempty"`
	ResearchTopic *bool    `json:"researchTopic,omitempty"`
	Voice         string   `json:"voice,omitempty"`
}

package models

import (
	"time"
)

// Theme groups articles under a shared topic, tone and audience. Themes are
// optional metadata; the generation pipeline does not read them.
type Theme struct {
	ID             string     `json:"id" db:"id"`
	Name           string     `json:"name" db:"name"`
	Slug           string     `json:"slug" db:"slug"`
	Keywords       StringList `json:"keywords" db:"keywords"`
	Tone           string     `json:"tone" db:"tone"`
	TargetAudience string     `json:"target_audience" db:"target_audience"`
	Settings       string     `json:"settings" db:"settings"`
	CreatedBy      string     `json:"created_by" db:"created_by"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
}

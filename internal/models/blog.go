package models

import (
	"time"
)

// BlogStatus represents the lifecycle state of a blog article
type BlogStatus string

const (
	BlogStatusGenerating BlogStatus = "generating"
	BlogStatusDraft      BlogStatus = "draft"
	BlogStatusPublished  BlogStatus = "published"
)

// Blog represents a generated article
type Blog struct {
	ID          string     `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Slug        string     `json:"slug" db:"slug"`
	Excerpt     string     `json:"excerpt" db:"excerpt"`
	Content     string     `json:"content" db:"content"`
	Status      BlogStatus `json:"status" db:"status"`
	AuthorID    string     `json:"author_id" db:"author_id"`
	ThemeID     string     `json:"theme_id,omitempty" db:"theme_id"`
	Keywords    StringList `json:"keywords" db:"keywords"`
	Images      StringList `json:"images" db:"images"`
	Sources     StringList `json:"sources" db:"sources"`
	WordCount   int        `json:"word_count" db:"word_count"`
	ReadingTime int        `json:"reading_time" db:"reading_time"`
	GeneratedBy string     `json:"generated_by,omitempty" db:"generated_by"`
	PublishedAt *time.Time `json:"published_at,omitempty" db:"published_at"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

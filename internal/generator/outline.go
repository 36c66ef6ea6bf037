package generator

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Outline is the structured plan the model returns for the article
type Outline struct {
	Title         string           `json:"title"`
	Slug          string           `json:"slug"`
	Excerpt       string           `json:"excerpt"`
	Sections      []OutlineSection `json:"sections"`
	KeyPoints     []string         `json:"keyPoints"`
	SourcesToCite []string         `json:"sources_to_cite"`
}

// OutlineSection is one planned H2 section
type OutlineSection struct {
	Heading     string   `json:"heading"`
	Subsections []string `json:"subsections"`
	WordCount   int      `json:"word_count"`
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// ParseOutline decodes the model's outline response. Models often wrap JSON
// in a markdown code fence; that is tolerated. Any other deviation from
// valid JSON is an error and fails the job.
func ParseOutline(response string) (*Outline, error) {
	raw := strings.TrimSpace(response)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var outline Outline
	if err := json.Unmarshal([]byte(raw), &outline); err != nil {
		return nil, fmt.Errorf("parse outline: %w", err)
	}

	if outline.Title == "" {
		return nil, fmt.Errorf("parse outline: missing title")
	}
	if len(outline.Sections) == 0 {
		return nil, fmt.Errorf("parse outline: no sections")
	}
	if !slugPattern.MatchString(outline.Slug) {
		outline.Slug = Slugify(outline.Title)
	}

	return &outline, nil
}

// Slugify turns a title into a url-friendly slug
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

package generator

import (
	"strings"
	"testing"
)

const validOutlineJSON = `{
  "title": "Understanding Index Funds",
  "slug": "understanding-index-funds",
  "excerpt": "Why passive investing wins.",
  "sections": [
    {"heading": "What Is an Index Fund", "subsections": ["Definition"], "word_count": 400},
    {"heading": "Fees Matter", "subsections": [], "word_count": 350}
  ],
  "keyPoints": ["low fees", "diversification"],
  "sources_to_cite": ["SPIVA report"]
}`

func TestParseOutline(t *testing.T) {
	outline, err := ParseOutline(validOutlineJSON)
	if err != nil {
		t.Fatalf("ParseOutline failed: %v", err)
	}
	if outline.Title != "Understanding Index Funds" {
		t.Errorf("Unexpected title: %s", outline.Title)
	}
	if outline.Slug != "understanding-index-funds" {
		t.Errorf("Unexpected slug: %s", outline.Slug)
	}
	if len(outline.Sections) != 2 {
		t.Errorf("Expected 2 sections, got %d", len(outline.Sections))
	}
	if outline.Sections[0].WordCount != 400 {
		t.Errorf("Expected word count 400, got %d", outline.Sections[0].WordCount)
	}
}

func TestParseOutlineCodeFence(t *testing.T) {
	fenced := "```json\n" + validOutlineJSON + "\n```"
	outline, err := ParseOutline(fenced)
	if err != nil {
		t.Fatalf("ParseOutline failed on fenced JSON: %v", err)
	}
	if len(outline.KeyPoints) != 2 {
		t.Errorf("Expected 2 key points, got %d", len(outline.KeyPoints))
	}
}

func TestParseOutlineInvalid(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"not json", "Sure! Here's an outline for you:"},
		{"missing title", `{"slug": "x", "sections": [{"heading": "A"}]}`},
		{"no sections", `{"title": "T", "slug": "t", "sections": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseOutline(tt.response); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestParseOutlineBadSlug(t *testing.T) {
	raw := `{"title": "My Great Post!", "slug": "My Great Post!", "sections": [{"heading": "A"}]}`
	outline, err := ParseOutline(raw)
	if err != nil {
		t.Fatalf("ParseOutline failed: %v", err)
	}
	if outline.Slug != "my-great-post" {
		t.Errorf("Expected slug derived from title, got %s", outline.Slug)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"  Spaces  Everywhere  ", "spaces-everywhere"},
		{"What's Up? 100% Real!", "what-s-up-100-real"},
		{"already-a-slug", "already-a-slug"},
	}

	for _, tt := range tests {
		if got := Slugify(tt.title); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestVoiceInstructionsFallback(t *testing.T) {
	if !strings.Contains(VoiceInstructions("skeptical"), "Healthy Skeptic") {
		t.Error("Expected skeptical voice block")
	}
	if !strings.Contains(VoiceInstructions("pirate"), "Expert Authority") {
		t.Error("Unknown voice should fall back to expert")
	}
	if !strings.Contains(VoiceInstructions(""), "Expert Authority") {
		t.Error("Empty voice should fall back to expert")
	}
}

func TestWordCount(t *testing.T) {
	if got := WordCount("one two  three\nfour"); got != 4 {
		t.Errorf("Expected 4 words, got %d", got)
	}
	if got := WordCount(""); got != 0 {
		t.Errorf("Expected 0 words, got %d", got)
	}
}

func TestReadingTime(t *testing.T) {
	tests := []struct {
		words int
		want  int
	}{
		{0, 0},
		{1, 1},
		{200, 1},
		{201, 2},
		{2000, 10},
	}
	for _, tt := range tests {
		if got := ReadingTime(tt.words); got != tt.want {
			t.Errorf("ReadingTime(%d) = %d, want %d", tt.words, got, tt.want)
		}
	}
}

func TestEstimateCost(t *testing.T) {
	// 1500 words: 4+3 calls, 2000 tokens, 2 * 0.003 * 7
	got := EstimateCost(1500)
	want := 0.042
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("EstimateCost(1500) = %v, want %v", got, want)
	}
	if EstimateCost(0) != 0 {
		t.Errorf("Expected zero cost for empty article")
	}
}

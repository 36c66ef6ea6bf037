package generator_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/meagherphilip/blogsmith/internal/generator"
	"github.com/meagherphilip/blogsmith/internal/mocks"
	"github.com/meagherphilip/blogsmith/internal/models"
)

const outlineResponse = `{
  "title": "The Future of Fintech",
  "slug": "the-future-of-fintech",
  "excerpt": "Where banking is heading next.",
  "sections": [
    {"heading": "Digital Banking", "subsections": ["Neobanks"], "word_count": 400},
    {"heading": "Payments", "subsections": [], "word_count": 350}
  ],
  "keyPoints": ["mobile first", "open banking"]
}`

func claimedGeneration() *models.Generation {
	return &models.Generation{
		ID:        "11111111-2222-3333-4444-555555555555",
		AuthorID:  "author-1",
		Prompt:    "fintech",
		Model:     "mock-model",
		Status:    models.GenerationStatusOutlining,
		Tone:      "professional",
		Voice:     "expert",
		CreatedAt: time.Now(),
	}
}

func TestPipelineRun(t *testing.T) {
	repos := mocks.NewRepositories()
	genRepo := repos.Generation.(*mocks.MockGenerationRepository)
	blogRepo := repos.Blog.(*mocks.MockBlogRepository)

	aiClient := mocks.NewMockAIClient(
		outlineResponse,
		"Digital banking section text with enough words to count.",
		"Payments section text, also with some words.",
		"Intro paragraph hooking the reader.",
		"Conclusion wrapping everything up.",
	)

	gen := claimedGeneration()
	genRepo.Seed(gen)

	pipeline := generator.New(repos, nil, aiClient, zerolog.Nop())
	pipeline.Run(context.Background(), gen)

	stored := genRepo.Generations[gen.ID]
	if stored.Status != models.GenerationStatusCompleted {
		t.Fatalf("Expected completed, got %s (error: %s)", stored.Status, stored.Error)
	}
	if stored.BlogID == "" {
		t.Fatal("Expected blog to be linked to the job")
	}
	if stored.Cost <= 0 {
		t.Error("Expected a positive cost estimate")
	}

	blog := blogRepo.Blogs[stored.BlogID]
	if blog == nil {
		t.Fatal("Expected blog row")
	}
	if blog.Status != models.BlogStatusDraft {
		t.Errorf("Expected draft blog, got %s", blog.Status)
	}
	if blog.Slug != "the-future-of-fintech" {
		t.Errorf("Unexpected slug: %s", blog.Slug)
	}
	if !strings.Contains(blog.Content, "## Digital Banking") {
		t.Error("Expected section heading in content")
	}
	if !strings.Contains(blog.Content, "## Conclusion") {
		t.Error("Expected conclusion heading in content")
	}
	if blog.WordCount <= 0 {
		t.Error("Expected a positive word count")
	}
	if blog.ReadingTime <= 0 {
		t.Error("Expected a positive reading time")
	}
	// no keywords on the request, topic stands in
	if len(blog.Keywords) != 1 || blog.Keywords[0] != "fintech" {
		t.Errorf("Expected topic as keyword, got %v", blog.Keywords)
	}

	// outline + 2 sections + intro + conclusion
	if len(aiClient.Prompts) != 5 {
		t.Errorf("Expected 5 model calls, got %d", len(aiClient.Prompts))
	}
}

func TestPipelineReusesStoredResearch(t *testing.T) {
	repos := mocks.NewRepositories()
	genRepo := repos.Generation.(*mocks.MockGenerationRepository)
	researchRepo := repos.Research.(*mocks.MockResearchRepository)

	researchRepo.ByTopic["fintech"] = &models.Research{
		ID:    "research-1",
		Topic: "fintech",
		Sources: models.SourceList{
			{Title: "Report", URL: "https://www.reuters.com/r", Credibility: 0.9},
		},
		KeyStats:  models.StringList{"42%"},
		ExpiresAt: time.Now().Add(time.Hour),
	}

	aiClient := mocks.NewMockAIClient(
		outlineResponse,
		"Section one.",
		"Section two.",
		"Intro.",
		"Conclusion.",
	)

	gen := claimedGeneration()
	gen.Status = models.GenerationStatusResearching
	gen.Research = true
	genRepo.Seed(gen)

	// nil collector: the only research available is the stored row
	pipeline := generator.New(repos, nil, aiClient, zerolog.Nop())
	pipeline.Run(context.Background(), gen)

	stored := genRepo.Generations[gen.ID]
	if stored.Status != models.GenerationStatusCompleted {
		t.Fatalf("Expected completed, got %s (error: %s)", stored.Status, stored.Error)
	}

	// section prompts carry the cached statistic
	foundStat := false
	for _, prompt := range aiClient.Prompts {
		if strings.Contains(prompt, "42%") {
			foundStat = true
		}
	}
	if !foundStat {
		t.Error("Expected stored research stats in prompts")
	}

	blogRepo := repos.Blog.(*mocks.MockBlogRepository)
	blog := blogRepo.Blogs[stored.BlogID]
	if blog == nil {
		t.Fatal("Expected blog row")
	}
	if len(blog.Sources) != 1 || blog.Sources[0] != "https://www.reuters.com/r" {
		t.Errorf("Expected cited source from research, got %v", blog.Sources)
	}
}

func TestPipelineRunBadOutline(t *testing.T) {
	repos := mocks.NewRepositories()
	genRepo := repos.Generation.(*mocks.MockGenerationRepository)
	blogRepo := repos.Blog.(*mocks.MockBlogRepository)

	aiClient := mocks.NewMockAIClient("Sure, here is your outline!")

	gen := claimedGeneration()
	genRepo.Seed(gen)

	pipeline := generator.New(repos, nil, aiClient, zerolog.Nop())
	pipeline.Run(context.Background(), gen)

	stored := genRepo.Generations[gen.ID]
	if stored.Status != models.GenerationStatusFailed {
		t.Fatalf("Expected failed, got %s", stored.Status)
	}
	if stored.Error == "" {
		t.Error("Expected error message on the job")
	}
	if len(blogRepo.Blogs) != 0 {
		t.Error("Expected no blog row for a failed outline")
	}
}

func TestPipelineSlugConflict(t *testing.T) {
	repos := mocks.NewRepositories()
	genRepo := repos.Generation.(*mocks.MockGenerationRepository)
	blogRepo := repos.Blog.(*mocks.MockBlogRepository)

	// occupy the outline's slug
	blogRepo.Create(context.Background(), &models.Blog{
		ID:   "existing",
		Slug: "the-future-of-fintech",
	})

	aiClient := mocks.NewMockAIClient(
		outlineResponse,
		"Section text.",
		"More section text.",
		"Intro.",
		"Conclusion.",
	)

	gen := claimedGeneration()
	genRepo.Seed(gen)

	pipeline := generator.New(repos, nil, aiClient, zerolog.Nop())
	pipeline.Run(context.Background(), gen)

	stored := genRepo.Generations[gen.ID]
	if stored.Status != models.GenerationStatusCompleted {
		t.Fatalf("Expected completed, got %s (error: %s)", stored.Status, stored.Error)
	}

	blog := blogRepo.Blogs[stored.BlogID]
	if blog == nil {
		t.Fatal("Expected blog row")
	}
	want := "the-future-of-fintech-11111111"
	if blog.Slug != want {
		t.Errorf("Expected suffixed slug %q, got %q", want, blog.Slug)
	}
}

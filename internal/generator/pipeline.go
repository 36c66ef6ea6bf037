package generator

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/meagherphilip/blogsmith/internal/ai"
	"github.com/meagherphilip/blogsmith/internal/models"
	"github.com/meagherphilip/blogsmith/internal/repository"
	"github.com/meagherphilip/blogsmith/internal/research"
)

// Pipeline runs one generation job end to end: research, outline, sections,
// intro, conclusion, final blog update. Status transitions are written to
// the job row between steps so pollers see forward progress.
type Pipeline struct {
	repos     *repository.Repositories
	collector *research.Collector
	ai        ai.Client
	log       zerolog.Logger
}

// New creates a pipeline. collector may be nil (research disabled).
func New(repos *repository.Repositories, collector *research.Collector, aiClient ai.Client, log zerolog.Logger) *Pipeline {
	return &Pipeline{
		repos:     repos,
		collector: collector,
		ai:        aiClient,
		log:       log.With().Str("component", "pipeline").Logger(),
	}
}

// Run executes a claimed job. gen.Status must already be the first working
// state (researching or outlining). Errors terminate the job as failed;
// whatever rows were written before the failure are left in place.
func (p *Pipeline) Run(ctx context.Context, gen *models.Generation) {
	start := time.Now()
	if err := p.run(ctx, gen); err != nil {
		p.log.Error().Err(err).Str("generation_id", gen.ID).Msg("Generation failed")
		if _, failErr := p.repos.Generation.Fail(ctx, gen.ID, err.Error()); failErr != nil {
			p.log.Error().Err(failErr).Str("generation_id", gen.ID).Msg("Failed to record job failure")
		}
		return
	}
	p.log.Info().
		Str("generation_id", gen.ID).
		Dur("duration", time.Since(start)).
		Msg("Generation completed")
}

func (p *Pipeline) run(ctx context.Context, gen *models.Generation) error {
	params := promptParams{
		Topic:        gen.Prompt,
		Keywords:     gen.Keywords,
		Tone:         gen.Tone,
		Voice:        gen.Voice,
		TargetLength: gen.TargetLength,
	}

	// Step 1: research, when the job was claimed into researching. Total
	// research failure degrades to no research, it never fails the job.
	var res *models.Research
	if gen.Status == models.GenerationStatusResearching {
		res = p.doResearch(ctx, gen)
		if _, err := p.repos.Generation.Transition(ctx, gen.ID,
			models.GenerationStatusResearching, models.GenerationStatusOutlining); err != nil {
			return fmt.Errorf("advance to outlining: %w", err)
		}
		gen.Status = models.GenerationStatusOutlining
	}

	// Step 2: outline
	raw, err := p.ai.Complete(ctx, outlinePrompt(params, res))
	if err != nil {
		return fmt.Errorf("outline: %w", err)
	}
	outline, err := ParseOutline(raw)
	if err != nil {
		return err
	}

	// Step 3: create the blog row right away so the draft is visible while
	// sections are still being written
	blog, err := p.createBlog(ctx, gen, outline)
	if err != nil {
		return err
	}

	if _, err := p.repos.Generation.Transition(ctx, gen.ID,
		models.GenerationStatusOutlining, models.GenerationStatusWriting); err != nil {
		return fmt.Errorf("advance to writing: %w", err)
	}

	// Step 4: one model call per section, sequentially
	var body strings.Builder
	var sourcesUsed []string
	for _, section := range outline.Sections {
		text, err := p.ai.Complete(ctx, sectionPrompt(params, section, res))
		if err != nil {
			return fmt.Errorf("section %q: %w", section.Heading, err)
		}
		body.WriteString(fmt.Sprintf("\n\n## %s\n\n%s", section.Heading, text))

		if res != nil {
			for i, s := range res.Sources {
				if i >= 2 {
					break
				}
				sourcesUsed = append(sourcesUsed, s.URL)
			}
		}
	}

	// Steps 5-6: intro and conclusion
	intro, err := p.ai.Complete(ctx, introPrompt(params, outline))
	if err != nil {
		return fmt.Errorf("introduction: %w", err)
	}
	conclusion, err := p.ai.Complete(ctx, conclusionPrompt(params, outline))
	if err != nil {
		return fmt.Errorf("conclusion: %w", err)
	}

	content := fmt.Sprintf("%s\n%s\n\n## Conclusion\n\n%s", intro, body.String(), conclusion)

	// Step 7: final blog update
	wordCount := WordCount(content)
	blog.Content = content
	blog.Status = models.BlogStatusDraft
	blog.WordCount = wordCount
	blog.ReadingTime = ReadingTime(wordCount)
	blog.Keywords = blogKeywords(gen)
	blog.Sources = dedupe(sourcesUsed)
	if err := p.repos.Blog.Update(ctx, blog); err != nil {
		return fmt.Errorf("update blog: %w", err)
	}

	// Step 8: close out the job
	ok, err := p.repos.Generation.Complete(ctx, gen.ID, blog.ID, EstimateCost(wordCount))
	if err != nil {
		return fmt.Errorf("complete job: %w", err)
	}
	if !ok {
		return fmt.Errorf("complete job: status was not writing")
	}

	p.log.Info().
		Str("generation_id", gen.ID).
		Str("blog_id", blog.ID).
		Int("word_count", wordCount).
		Msg("Blog written")
	return nil
}

// doResearch returns unexpired stored research for the topic, or collects
// and persists fresh research. Any failure is logged and swallowed; the
// pipeline continues without research.
func (p *Pipeline) doResearch(ctx context.Context, gen *models.Generation) *models.Research {
	if cached, err := p.repos.Research.GetByTopic(ctx, gen.Prompt); err != nil {
		p.log.Warn().Err(err).Str("generation_id", gen.ID).Msg("Research cache lookup failed")
	} else if cached != nil {
		p.log.Info().Str("generation_id", gen.ID).Str("topic", gen.Prompt).Msg("Reusing stored research")
		return cached
	}

	res, err := p.collector.Research(ctx, gen.Prompt, gen.Keywords)
	if err != nil {
		p.log.Warn().Err(err).Str("generation_id", gen.ID).Msg("Research failed, continuing without")
		return nil
	}
	if res == nil {
		return nil
	}
	if err := p.repos.Research.Create(ctx, res); err != nil {
		p.log.Warn().Err(err).Str("generation_id", gen.ID).Msg("Failed to persist research")
	}
	return res
}

func (p *Pipeline) createBlog(ctx context.Context, gen *models.Generation, outline *Outline) (*models.Blog, error) {
	slug := outline.Slug
	exists, err := p.repos.Blog.SlugExists(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("check slug: %w", err)
	}
	if exists {
		slug = fmt.Sprintf("%s-%s", slug, gen.ID[:8])
	}

	blog := &models.Blog{
		ID:          uuid.New().String(),
		Title:       outline.Title,
		Slug:        slug,
		Excerpt:     outline.Excerpt,
		Status:      models.BlogStatusGenerating,
		AuthorID:    gen.AuthorID,
		ThemeID:     gen.ThemeID,
		GeneratedBy: gen.ID,
		CreatedAt:   time.Now(),
	}
	if err := p.repos.Blog.Create(ctx, blog); err != nil {
		return nil, fmt.Errorf("create blog: %w", err)
	}
	if err := p.repos.Generation.SetBlogID(ctx, gen.ID, blog.ID); err != nil {
		return nil, fmt.Errorf("link blog to job: %w", err)
	}
	return blog, nil
}

func blogKeywords(gen *models.Generation) models.StringList {
	if len(gen.Keywords) > 0 {
		return models.StringList(gen.Keywords)
	}
	return models.StringList{gen.Prompt}
}

func dedupe(urls []string) models.StringList {
	seen := make(map[string]bool)
	out := models.StringList{}
	for _, u := range urls {
		if seen[u] {
			continue
		}
		seen[u] = true
		out = append(out, u)
	}
	return out
}

// WordCount counts whitespace-separated tokens
func WordCount(content string) int {
	return len(strings.Fields(content))
}

// ReadingTime is ceil(words/200) minutes
func ReadingTime(wordCount int) int {
	return int(math.Ceil(float64(wordCount) / 200))
}

// EstimateCost is the rough spend for a finished article: ~750 words per
// 1000 tokens at $0.003/1k tokens, multiplied by the number of API calls
// the pipeline made (outline + intro + conclusion + one per ~500 words).
func EstimateCost(wordCount int) float64 {
	apiCalls := 4 + int(math.Ceil(float64(wordCount)/500))
	tokens := float64(wordCount) / 750 * 1000
	return tokens / 1000 * 0.003 * float64(apiCalls)
}

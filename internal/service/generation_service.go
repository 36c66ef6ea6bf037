package service

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/meagherphilip/blogsmith/internal/config"
	"github.com/meagherphilip/blogsmith/internal/generator"
	"github.com/meagherphilip/blogsmith/internal/models"
	"github.com/meagherphilip/blogsmith/internal/repository"
)

// generationService is the concrete implementation of GenerationService.
// Jobs live in the generations table; the processor polls for pending rows
// so a restart picks up where the process left off instead of losing
// in-flight work.
type generationService struct {
	generations repository.GenerationRepository
	pipeline    *generator.Pipeline
	cfg         *config.GenerationConfig
	model       string
	log         zerolog.Logger
	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	running     bool
	mu          sync.Mutex
	// Semaphore: buffered channel to limit concurrent generations. Each job
	// holds a model connection for minutes, so the cap stays small.
	sem chan struct{}
}

func newGenerationService(generations repository.GenerationRepository, pipeline *generator.Pipeline, cfg *config.Config, model string, log zerolog.Logger) *generationService {
	maxWorkers := runtime.NumCPU()
	if maxWorkers > 4 {
		maxWorkers = 4
	}
	if maxWorkers < 2 {
		maxWorkers = 2
	}

	log.Info().Int("max_workers", maxWorkers).Msg("Initializing generation worker pool")

	return &generationService{
		generations: generations,
		pipeline:    pipeline,
		cfg:         &cfg.Generation,
		model:       model,
		log:         log.With().Str("service", "generation").Logger(),
		sem:         make(chan struct{}, maxWorkers),
	}
}

// CreateGeneration records a new pending job. The caller gets the row back
// immediately; the processor picks it up on its next tick.
func (s *generationService) CreateGeneration(ctx context.Context, req *models.GenerationRequest, authorID string) (*models.Generation, error) {
	tone := req.Tone
	if tone == "" {
		tone = s.cfg.DefaultTone
	}
	voice := req.Voice
	if voice == "" {
		voice = s.cfg.DefaultVoice
	}
	targetLength := req.TargetLength
	if targetLength <= 0 {
		targetLength = s.cfg.DefaultLength
	}
	// research defaults to on unless explicitly disabled
	doResearch := req.ResearchTopic == nil || *req.ResearchTopic

	gen := &models.Generation{
		ID:            uuid.New().String(),
		ThemeID:       req.ThemeID,
		AuthorID:      authorID,
		Prompt:        req.Topic,
		Model:         s.model,
		Status:        models.GenerationStatusPending,
		Keywords:      models.StringList(req.Keywords),
		Tone:          tone,
		Voice:         voice,
		TargetLength:  targetLength,
		IncludeImages: req.IncludeImages,
		Research:      doResearch,
		CreatedAt:     time.Now(),
	}

	if err := s.generations.Create(ctx, gen); err != nil {
		return nil, fmt.Errorf("create generation: %w", err)
	}

	s.log.Info().
		Str("generation_id", gen.ID).
		Str("topic", req.Topic).
		Bool("research", doResearch).
		Msg("Generation job created")

	return gen, nil
}

// GetGeneration retrieves a job by ID
func (s *generationService) GetGeneration(ctx context.Context, id string) (*models.Generation, error) {
	return s.generations.GetByID(ctx, id)
}

// CountByStatus returns job counts per state
func (s *generationService) CountByStatus(ctx context.Context) (map[models.GenerationStatus]int, error) {
	return s.generations.CountByStatus(ctx)
}

// StartProcessor starts the background job processor
func (s *generationService) StartProcessor(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.mu.Unlock()

	s.log.Info().Msg("Generation processor started")

	ticker := time.NewTicker(s.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			s.log.Info().Msg("Generation processor stopping")
			return
		case <-ticker.C:
			s.processPendingJobs()
		}
	}
}

// StopProcessor stops the background job processor and waits for in-flight
// generations to finish
func (s *generationService) StopProcessor() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.cancel()
	s.wg.Wait()
	s.running = false
	s.log.Info().Msg("Generation processor stopped")
}

func (s *generationService) processPendingJobs() {
	jobs, err := s.generations.GetPending(s.ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to get pending generations")
		return
	}

	for _, gen := range jobs {
		// Acquire a semaphore slot, blocking for backpressure
		select {
		case s.sem <- struct{}{}:
		case <-s.ctx.Done():
			return
		}

		// Claim atomically by moving the job into its first working state;
		// a job with research disabled skips straight to outlining
		first := models.GenerationStatusOutlining
		if gen.Research {
			first = models.GenerationStatusResearching
		}
		claimed, err := s.generations.Claim(s.ctx, gen.ID, first)
		if err != nil || !claimed {
			<-s.sem // another worker already took it
			continue
		}
		gen.Status = first

		s.wg.Add(1)
		go func(g *models.Generation) {
			defer s.wg.Done()
			defer func() { <-s.sem }()

			// Panic recovery keeps a bad job from taking the processor down
			defer func() {
				if r := recover(); r != nil {
					s.log.Error().
						Interface("panic", r).
						Str("generation_id", g.ID).
						Msg("Generation panicked - recovered")
					s.generations.Fail(s.ctx, g.ID, fmt.Sprintf("panic: %v", r))
				}
			}()

			s.log.Info().Str("generation_id", g.ID).Str("topic", g.Prompt).Msg("Processing generation")
			s.pipeline.Run(s.ctx, g)
		}(gen)
	}
}

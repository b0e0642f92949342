package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mknhm1/itemproject/internal/domain"
	"github.com/mknhm1/itemproject/internal/service/gadget"
	"github.com/mknhm1/itemproject/pkg/ctxutil"
)

type postCreator interface {
	CreatePost(ctx context.Context, input gadget.CreatePostInput) (*domain.Post, error)
}

// Result holds the outcome of a seeding run.
type Result struct {
	Inserted int
	Skipped  int
	Errors   int
	Duration time.Duration
}

// Pipeline submits demo posts through the regular submission flow.
type Pipeline struct {
	log    *slog.Logger
	posts  postCreator
	dryRun bool
	result Result
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, posts postCreator, cfg Config) *Pipeline {
	return &Pipeline{
		log:    log.With("component", "seeder"),
		posts:  posts,
		dryRun: cfg.DryRun,
	}
}

// Result returns the counters of the last Run.
func (p *Pipeline) Result() Result {
	return p.result
}

// HasErrors reports whether any fixture failed.
func (p *Pipeline) HasErrors() bool {
	return p.result.Errors > 0
}

// Run submits every fixture in order. Invalid fixtures are counted and
// skipped; a cancelled context stops the run.
func (p *Pipeline) Run(ctx context.Context, fixtures *Fixtures) error {
	start := time.Now()
	p.result = Result{}

	for i, f := range fixtures.Posts {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("seeder: %w", err)
		}

		log := p.log.With(slog.Int("fixture", i), slog.String("title", f.Title))

		if f.Owner == uuid.Nil {
			p.result.Errors++
			log.Warn("fixture has no owner")
			continue
		}

		input := f.input()
		if p.dryRun {
			if err := input.Validate(); err != nil {
				p.result.Errors++
				log.Warn("invalid fixture", slog.String("error", err.Error()))
				continue
			}
			p.result.Skipped++
			continue
		}

		post, err := p.posts.CreatePost(ctxutil.WithUserID(ctx, f.Owner), input)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return fmt.Errorf("seeder: %w", err)
			}
			p.result.Errors++
			log.Warn("fixture rejected", slog.String("error", err.Error()))
			continue
		}
		p.result.Inserted++
		log.Debug("post seeded", slog.Int64("post_id", post.ID))
	}

	p.result.Duration = time.Since(start)
	p.log.Info("seeding completed",
		slog.Int("inserted", p.result.Inserted),
		slog.Int("skipped", p.result.Skipped),
		slog.Int("errors", p.result.Errors),
		slog.Duration("duration", p.result.Duration),
		slog.Bool("dry_run", p.dryRun),
	)
	return nil
}

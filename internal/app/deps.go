package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mknhm1/itemproject/internal/adapter/cache"
	"github.com/mknhm1/itemproject/internal/adapter/mailer"
	"github.com/mknhm1/itemproject/internal/config"
	"github.com/mknhm1/itemproject/internal/domain"
)

type postCache interface {
	Get(ctx context.Context, id int64) (*domain.Post, bool, error)
	Set(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id int64) error
	Ping(ctx context.Context) error
}

type mailSender interface {
	Send(ctx context.Context, msg domain.MailMessage) error
}

// openCache returns nil when no cache server is configured. An unreachable
// server is logged but not fatal: the service runs without the cache
// until it comes back.
func openCache(ctx context.Context, cfg config.RedisConfig, log *slog.Logger) (postCache, func()) {
	if !cfg.Enabled() {
		log.Info("post cache disabled")
		return nil, func() {}
	}

	client := cache.NewClient(cfg)
	pc := cache.NewPostCache(client, cfg.TTL)
	if err := pc.Ping(ctx); err != nil {
		log.Warn("post cache unreachable", slog.String("addr", cfg.Addr), slog.String("error", err.Error()))
	} else {
		log.Info("post cache connected", slog.String("addr", cfg.Addr), slog.Duration("ttl", cfg.TTL))
	}

	return pc, func() { _ = client.Close() }
}

func newMailer(cfg config.MailConfig, log *slog.Logger) (mailSender, error) {
	switch cfg.Backend {
	case config.MailBackendLog:
		log.Warn("contact mail is logged, not sent")
		return mailer.NewLog(log), nil
	case config.MailBackendSMTP:
		m, err := mailer.NewSMTP(cfg)
		if err != nil {
			return nil, fmt.Errorf("smtp mailer: %w", err)
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unknown mail backend %q", cfg.Backend)
	}
}

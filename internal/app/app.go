package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mknhm1/itemproject/internal/auth"
	"github.com/mknhm1/itemproject/internal/config"
	"github.com/mknhm1/itemproject/internal/service/contact"
	"github.com/mknhm1/itemproject/internal/service/gadget"
	"github.com/mknhm1/itemproject/internal/transport/middleware"
	"github.com/mknhm1/itemproject/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, opens the
// post store, cache and mail transport, and serves HTTP until ctx is
// cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("database_backend", cfg.Database.Backend),
		slog.String("mail_backend", cfg.Mail.Backend),
	)

	st, err := openStorage(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer st.close()

	pc, closeCache := openCache(ctx, cfg.Redis, logger)
	defer closeCache()

	mail, err := newMailer(cfg.Mail, logger)
	if err != nil {
		return err
	}

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := newHandler(cfg, logger, st, pc, mail, limiter)
	srv := newServer(cfg.Server, handler)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}

// newHandler wires services, handlers and the middleware chain.
// pc may be nil.
func newHandler(
	cfg *config.Config,
	logger *slog.Logger,
	st *storage,
	pc postCache,
	mail mailSender,
	limiter *middleware.RateLimiter,
) http.Handler {
	gadgetSvc := gadget.NewService(logger, st.posts, st.categories, pc, st.tx, cfg.Gadget.PageSize)
	contactSvc := contact.NewService(logger, mail, cfg.Mail.From, cfg.Mail.To)
	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	router := rest.NewRouter(rest.Handlers{
		Posts:   rest.NewPostHandler(gadgetSvc, logger),
		Contact: rest.NewContactHandler(contactSvc, logger),
		Health:  rest.NewHealthHandler(st.health, pc, BuildVersion()),
	}, limiter.Limit("contact", cfg.RateLimit.ContactPerMinute))

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.ClientIP(cfg.Server.TrustProxy),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwt),
	)(router)
}

func newServer(cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:           handler,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

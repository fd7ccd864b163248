package cmd

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"eventmanager/config"
	"eventmanager/internal/adapters/auth"
	"eventmanager/internal/adapters/email"
	delivery "eventmanager/internal/delivery/http"
	"eventmanager/internal/domain"
	"eventmanager/internal/metrics"
	"eventmanager/internal/notify"
	"eventmanager/internal/repository/postgres"
	"eventmanager/internal/services"
)

const startupTimeout = 10 * time.Second

func newServeCommand(opts *rootOptions) *cobra.Command {
	var (
		host string
		port int
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Start the HTTP server and begin accepting requests.

The server will:
- Connect to PostgreSQL and apply pending migrations when APP_DB_AUTO_MIGRATE is set
- Serve the JSON API under /api and the HTML pages under /
- Handle graceful shutdown on SIGINT/SIGTERM

Examples:
  # Start with configuration from the environment
  server serve

  # Start on a specific host and port with debug logging
  server serve --host 127.0.0.1 --port 9090 --log-level debug`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return fmt.Errorf("config error: %w", err)
			}
			if host != "" {
				cfg.Server.Host = host
			}
			if port != 0 {
				cfg.Server.Port = port
			}
			return runServer(cfg)
		},
	}
	cmd.Flags().StringVar(&host, "host", "", "server host address (default: 0.0.0.0)")
	cmd.Flags().IntVar(&port, "port", 0, "server port (default: 8080)")
	return cmd
}

func runServer(cfg *config.Config) error {
	logger := config.NewLogger(cfg.Environment, cfg.Log)
	logger.Info("starting event manager", "version", Version, "environment", cfg.Environment)

	if cfg.Database.AutoMigrate {
		if err := postgres.MigrateUp(cfg.Database.URL); err != nil {
			return err
		}
		logger.Info("migrations applied")
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	db, err := postgres.Open(ctx, cfg.Database.URL, postgres.PoolConfig{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	cancel()
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer db.Close()

	if err := metrics.RegisterDBStats(db); err != nil {
		logger.Warn("database metrics not registered", "error", err)
	}

	bus, err := newBus(cfg, logger)
	if err != nil {
		return err
	}

	var verifier domain.TokenVerifier
	if cfg.Auth.AuthEnabled() {
		verifier = auth.NewJWTVerifier(cfg.Auth.JWTSecret)
	} else {
		logger.Warn("APP_JWT_SECRET not set, API writes are unauthenticated")
	}

	opts := delivery.Options{
		Verifier:       verifier,
		CSRFKey:        []byte(cfg.Web.CSRFKey),
		SecureCookies:  cfg.Web.SecureCookies,
		CORSOrigins:    cfg.Web.CORSOrigins,
		RateLimitRPS:   cfg.Web.RateLimitRPS,
		RateLimitBurst: cfg.Web.RateLimitBurst,
	}
	if len(opts.CSRFKey) == 0 {
		logger.Warn("APP_CSRF_KEY not set, form pages are not CSRF protected")
	}
	mux := delivery.NewRouter(logger, newServices(db, bus, cfg.Server.RequestTimeout), db, opts)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           delivery.Chain(logger, mux, opts),
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	return gracefulShutdown(server, errCh, cfg.Server.ShutdownTimeout, logger)
}

// newBus subscribes the logging, metrics and email listeners.
func newBus(cfg *config.Config, logger *slog.Logger) (*notify.Bus, error) {
	bus := notify.NewBus()
	bus.SubscribeAll(notify.LogListener(logger))
	bus.SubscribeAll(notify.MetricsListener(metrics.NotificationsTotal))

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.SESRegion,
			AccessKeyID:        cfg.Email.SESAccessKeyID,
			SecretAccessKey:    cfg.Email.SESSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
		},
		ResendAPIKey: cfg.Email.ResendAPIKey,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("mailer: %w", err)
	}
	emails := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)
	listener := notify.EmailListener(emails, cfg.Email.OrganizerAddress, logger)
	bus.Subscribe(domain.TopicEventCreated, listener)
	bus.Subscribe(domain.TopicParticipantRegistered, listener)
	return bus, nil
}

func newServices(db *sql.DB, bus domain.Notifier, timeout time.Duration) delivery.Services {
	events := postgres.NewEventRepository(db)
	return delivery.Services{
		Events:       services.NewEventService(events, bus, timeout),
		Participants: services.NewParticipantService(postgres.NewParticipantRepository(db), events, bus, timeout),
		Speakers:     services.NewSpeakerService(postgres.NewSpeakerRepository(db), events, bus, timeout),
		Vendors:      services.NewVendorService(postgres.NewVendorRepository(db), events, bus, timeout),
		Feedback:     services.NewFeedbackService(postgres.NewFeedbackRepository(db), events, bus, timeout),
	}
}

func gracefulShutdown(server *http.Server, errCh <-chan error, timeout time.Duration, logger *slog.Logger) error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-stop:
	}
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
		return err
	}

	logger.Info("server stopped")
	return nil
}

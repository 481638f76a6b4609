package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hms/hms/internal/config"
	"github.com/hms/hms/internal/domain/billing"
	"github.com/hms/hms/internal/domain/catalog"
	"github.com/hms/hms/internal/domain/dashboard"
	"github.com/hms/hms/internal/domain/inventory"
	"github.com/hms/hms/internal/domain/lab"
	"github.com/hms/hms/internal/domain/patient"
	"github.com/hms/hms/internal/domain/pharmacy"
	"github.com/hms/hms/internal/domain/scheduling"
	"github.com/hms/hms/internal/domain/staff"
	"github.com/hms/hms/internal/domain/surgery"
	"github.com/hms/hms/internal/domain/ward"
	"github.com/hms/hms/internal/gateway"
	"github.com/hms/hms/internal/platform/auth"
	"github.com/hms/hms/internal/platform/db"
	"github.com/hms/hms/internal/platform/middleware"
	"github.com/hms/hms/internal/platform/outbox"
	"github.com/hms/hms/internal/platform/websocket"
)

func main() {
	root := &cobra.Command{
		Use:   "hms-server",
		Short: "Hospital management backend-for-frontend",
	}
	root.AddCommand(serveCmd(), migrateCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	if cfg.IsDev() {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
			With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	logger := newLogger(cfg)
	logger.Info().Str("env", cfg.Env).Str("port", cfg.Port).Msg("starting hms-server")

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	gw := gateway.New(cfg.GatewayBaseURL, cfg.GatewayAPIKey, cfg.GatewayTimeout(), logger)

	hub := websocket.NewHub(logger)

	// Outbox delivery loop for asynchronous gateway writes.
	outboxRepo := outbox.NewRepo(pool)
	dispatcher := outbox.NewDispatcher(outboxRepo, outbox.DispatcherConfig{
		PollInterval: cfg.OutboxPollInterval(),
		BatchSize:    outbox.DefaultDispatcherConfig().BatchSize,
		MaxAttempts:  cfg.OutboxMaxAttempts,
	}, logger)
	dispatcher.Register(billing.TopicPaymentNote, billing.NewPaymentNoteSink(gw))
	go dispatcher.Run(ctx)

	// Domain services, all backed by the entity gateway.
	patientSvc := patient.NewService(patient.NewRepo(gw), logger)
	schedulingSvc := scheduling.NewService(scheduling.NewRepo(gw), logger)
	billingSvc := billing.NewService(billing.NewRepo(gw), logger)
	billingSvc.SetNoteQueue(outboxRepo)
	wardSvc := ward.NewService(ward.NewRepo(gw), billingSvc, logger)
	surgerySvc := surgery.NewService(surgery.NewRepo(gw), logger)
	staffSvc := staff.NewService(staff.NewEmployeeRepo(gw), staff.NewDepartmentRepo(gw), logger)
	inventorySvc := inventory.NewService(inventory.NewRepo(gw), logger)
	catalogSvc := catalog.NewService(catalog.NewRepo(gw), logger)
	labSvc := lab.NewService(lab.NewRepo(gw), gw, logger)
	pharmacySvc := pharmacy.NewService(pharmacy.NewRepo(gw), logger)

	patientSvc.SetPublisher(hub)
	schedulingSvc.SetPublisher(hub)
	billingSvc.SetPublisher(hub)
	wardSvc.SetPublisher(hub)
	surgerySvc.SetPublisher(hub)
	staffSvc.SetPublisher(hub)
	inventorySvc.SetPublisher(hub)
	catalogSvc.SetPublisher(hub)
	labSvc.SetPublisher(hub)
	pharmacySvc.SetPublisher(hub)

	dashboardSvc := dashboard.NewService(
		patientSvc, schedulingSvc, wardSvc, billingSvc, surgerySvc,
		staffSvc, inventorySvc, catalogSvc, labSvc, pharmacySvc, logger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	if cfg.IsDev() {
		logger.Warn().Msg("dev auth enabled, all requests run as admin")
		e.Use(auth.DevAuthMiddleware())
	} else {
		e.Use(auth.JWTMiddleware(auth.JWTConfig{
			Issuer:   cfg.AuthIssuer,
			Audience: cfg.AuthAudience,
			JWKSURL:  cfg.AuthJWKSURL,
		}))
	}

	e.GET("/health", db.HealthHandler(pool))

	api := e.Group("/api/v1")
	api.Use(middleware.RateLimit(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}))

	websocket.NewHandler(hub).RegisterRoutes(api)

	patient.NewHandler(patientSvc).RegisterRoutes(api)
	scheduling.NewHandler(schedulingSvc).RegisterRoutes(api)
	ward.NewHandler(wardSvc).RegisterRoutes(api)
	billing.NewHandler(billingSvc).RegisterRoutes(api)
	surgery.NewHandler(surgerySvc).RegisterRoutes(api)
	staff.NewHandler(staffSvc).RegisterRoutes(api)
	inventory.NewHandler(inventorySvc).RegisterRoutes(api)
	catalog.NewHandler(catalogSvc).RegisterRoutes(api)
	lab.NewHandler(labSvc).RegisterRoutes(api)
	pharmacy.NewHandler(pharmacySvc).RegisterRoutes(api)
	dashboard.NewHandler(dashboardSvc).RegisterRoutes(api)

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	logger.Info().Str("addr", ":"+cfg.Port).Msg("listening")

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database migrations",
	}

	var dir string
	cmd.PersistentFlags().StringVar(&dir, "dir", "migrations", "migrations directory")

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(c *cobra.Command, args []string) error {
			return withMigrator(c.Context(), dir, func(ctx context.Context, m *db.Migrator) error {
				n, err := m.Up(ctx)
				if err != nil {
					return err
				}
				fmt.Printf("applied %d migration(s)\n", n)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(c *cobra.Command, args []string) error {
			return withMigrator(c.Context(), dir, func(ctx context.Context, m *db.Migrator) error {
				statuses, err := m.Status(ctx)
				if err != nil {
					return err
				}
				for _, s := range statuses {
					state := "pending"
					if s.Applied {
						state = "applied"
					}
					fmt.Printf("%03d %-40s %s\n", s.Version, s.Name, state)
				}
				return nil
			})
		},
	})

	return cmd
}

func withMigrator(ctx context.Context, dir string, fn func(context.Context, *db.Migrator) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()
	return fn(ctx, db.NewMigrator(pool, dir))
}

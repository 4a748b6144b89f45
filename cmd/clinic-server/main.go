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

	"github.com/opdclinic/opdclinic/internal/config"
	"github.com/opdclinic/opdclinic/internal/domain/booking"
	"github.com/opdclinic/opdclinic/internal/domain/patient"
	"github.com/opdclinic/opdclinic/internal/domain/portal"
	"github.com/opdclinic/opdclinic/internal/domain/prescription"
	"github.com/opdclinic/opdclinic/internal/domain/slots"
	"github.com/opdclinic/opdclinic/internal/domain/staff"
	"github.com/opdclinic/opdclinic/internal/platform/auth"
	"github.com/opdclinic/opdclinic/internal/platform/clock"
	"github.com/opdclinic/opdclinic/internal/platform/db"
	"github.com/opdclinic/opdclinic/internal/platform/middleware"
	"github.com/opdclinic/opdclinic/internal/platform/ws"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "clinic-server",
		Short: "Clinic appointment booking API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the clinic API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			count, err := db.NewMigrator(pool, dir).Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			statuses, err := db.NewMigrator(pool, dir).Status(ctx)
			if err != nil {
				return err
			}
			for _, st := range statuses {
				state := "pending"
				if st.Applied {
					state = fmt.Sprintf("applied at %s", st.AppliedAt.Format(time.RFC3339))
				}
				fmt.Printf("%03d %-40s %s\n", st.Version, st.Name, state)
			}
			return nil
		},
	}
	statusCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(statusCmd)

	return cmd
}

func newLogger(cfg *config.Config) zerolog.Logger {
	if cfg.IsDev() {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(cfg)

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	}))

	// Event fan-out: in-process hub, optionally bridged through Kafka so
	// every instance sees every booking.
	hub := ws.NewHub()
	var publisher ws.Publisher = hub
	var bridge *ws.Bridge
	if cfg.KafkaEnabled() {
		bridge = ws.NewBridge(cfg.KafkaBrokers, cfg.KafkaTopic, hub, logger)
		publisher = bridge
		defer bridge.Close()
	}

	jwtSecret := []byte(cfg.JWTSecret)

	portalSvc := portal.NewService(portal.NewSettingRepoPG(pool))
	staffSvc := staff.NewService(staff.NewRepoPG(pool))
	slotSvc := slots.NewService(slots.NewRepoPG(pool))
	bookingSvc := booking.NewService(booking.NewRepoPG(pool), portalSvc, clock.System{}, publisher, logger)
	patientSvc := patient.NewService(patient.NewRepoPG(pool))
	prescriptionSvc := prescription.NewService(prescription.NewRepoPG(pool), bookingSvc, logger)

	admin := e.Group("/admin", auth.Middleware(jwtSecret))

	portal.NewHandler(portalSvc).RegisterRoutes(e, admin)
	staff.NewHandler(staffSvc, jwtSecret, cfg.AdminSecret).RegisterRoutes(e, admin)
	slots.NewHandler(slotSvc).RegisterRoutes(e, admin)
	booking.NewHandler(bookingSvc, logger).RegisterRoutes(e, admin)
	patient.NewHandler(patientSvc).RegisterRoutes(e, admin)
	prescription.NewHandler(prescriptionSvc).RegisterRoutes(e, admin)
	ws.NewHandler(hub).RegisterRoutes(e)

	e.GET("/health", db.HealthHandler(pool))

	serverCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if bridge != nil {
		go bridge.Run(serverCtx)
	}

	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server listening")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-serverCtx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

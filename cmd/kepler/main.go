package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	httpadapter "kepler/internal/adapters/http"
	pg "kepler/internal/adapters/postgres"
	"kepler/internal/catalogs"
	"kepler/internal/config"
	"kepler/internal/services/assessments"
	"kepler/internal/services/rankings"
	"kepler/internal/workers/rescore"
	"kepler/migrations"
)

func main() {
	root := &cobra.Command{
		Use:          "kepler",
		Short:        "Space-sector regulatory compliance service",
		SilenceUsage: true,
	}
	root.AddCommand(serveCmd(), migrateCmd(), catalogsCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.LogLevel, err)
	}
	var zcfg zap.Config
	if cfg.Env == "development" {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and rescore workers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			set, err := catalogs.Load()
			if err != nil {
				return fmt.Errorf("load catalogs: %w", err)
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			db, err := pg.Connect(ctx, cfg.DatabaseURL)
			if err != nil {
				return fmt.Errorf("db connect: %w", err)
			}
			defer db.Close()

			assessor := assessments.New(db, db, db, set, log)
			ranker := rankings.New(catalogs.Jurisdictions(), log)

			srv := httpadapter.New(assessor, ranker, log)
			r := chi.NewRouter()
			r.Mount("/", srv.Routes())

			if cfg.RescoreWorkers > 0 {
				rescore.Run(ctx, db, rescore.AssessorProcessor{Assessor: assessor},
					cfg.RescoreWorkers, 500*time.Millisecond, log)
				log.Info("rescore workers started", zap.Int("count", cfg.RescoreWorkers))
			}

			httpSrv := &http.Server{
				Addr:              cfg.ListenAddr,
				Handler:           r,
				ReadHeaderTimeout: 10 * time.Second,
			}
			errCh := make(chan error, 1)
			go func() { errCh <- httpSrv.ListenAndServe() }()
			log.Info("listening", zap.String("addr", cfg.ListenAddr))

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			select {
			case sig := <-sigCh:
				log.Info("shutting down", zap.String("signal", sig.String()))
				cancel()
				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer shutdownCancel()
				return httpSrv.Shutdown(shutdownCtx)
			case err := <-errCh:
				return fmt.Errorf("server error: %w", err)
			}
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			db, err := sql.Open("pgx", cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer db.Close()

			goose.SetBaseFS(migrations.FS)
			if err := goose.SetDialect("postgres"); err != nil {
				return err
			}
			if err := goose.UpContext(cmd.Context(), db, "."); err != nil {
				return fmt.Errorf("migrate up: %w", err)
			}
			fmt.Println("migrations applied")
			return nil
		},
	}
}

func catalogsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalogs",
		Short: "Inspect the built-in requirement catalogs",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate catalog data and print a summary",
		RunE: func(_ *cobra.Command, _ []string) error {
			set, err := catalogs.Load()
			if err != nil {
				return err
			}
			total := len(set.EUSpaceAct.Requirements) + len(set.NIS2.Requirements)
			for _, c := range set.National {
				total += len(c.Requirements)
			}
			fmt.Printf("catalogs ok: %d requirements across %d frameworks, %d cross-references\n",
				total, 2+len(set.National), len(set.CrossReferences))
			return nil
		},
	})
	return cmd
}

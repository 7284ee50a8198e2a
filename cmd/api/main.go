package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"galleryhub/cmd/app"
	"galleryhub/internal/config"
	"galleryhub/internal/database"
	handlers "galleryhub/internal/handler"
	"galleryhub/internal/middleware"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "galleryhub",
		Short:        "Community gallery backend",
		SilenceUsage: true,
	}
	root.AddCommand(serveCmd(), migrateCmd())
	return root
}

func serveCmd() *cobra.Command {
	var skipMigrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig()
			log, err := app.NewLogger(cfg.Log)
			if err != nil {
				return err
			}
			defer log.Sync()

			db, services, err := app.App(cfg, log)
			if err != nil {
				log.Error("startup failed", zap.Error(err))
				return err
			}
			defer db.CloseDB()

			if !skipMigrate {
				if err := db.Migrate(database.Up); err != nil {
					log.Error("migration failed", zap.Error(err))
					return err
				}
			}

			handler := handlers.NewHandlers(services, cfg, log)
			router := mux.NewRouter()
			handler.RegisterRoutes(router, middleware.NewAuthenticator(services.Auth, cfg.AuthHeader, log))

			handlerChain := middleware.Chain(
				router,
				middleware.LoggingMiddleware(log),
				middleware.CORSMiddleware(cfg.AuthHeader),
			)

			server := &http.Server{
				Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
				Handler:           handlerChain,
				ReadHeaderTimeout: 10 * time.Second,
			}

			return run(cmd.Context(), server, log)
		},
	}
	cmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "do not apply migrations on startup")
	return cmd
}

// run serves until SIGINT or SIGTERM, then drains in-flight requests.
func run(ctx context.Context, server *http.Server, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server started", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Apply or roll back the database schema",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(database.Up), string(database.Down)},
		RunE: func(cmd *cobra.Command, args []string) error {
			direction, err := database.ParseDirection(args[0])
			if err != nil {
				return err
			}

			cfg := config.LoadConfig()
			log, err := app.NewLogger(cfg.Log)
			if err != nil {
				return err
			}
			defer log.Sync()

			db, err := database.ConnectDB(cfg, log)
			if err != nil {
				return err
			}
			defer db.CloseDB()

			return db.Migrate(direction)
		},
	}
}

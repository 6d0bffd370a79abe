package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/museo/internal/config"
	"github.com/Vovarama1992/museo/internal/delivery"
	"github.com/Vovarama1992/museo/internal/domain"
	"github.com/Vovarama1992/museo/internal/infra"
	"github.com/Vovarama1992/museo/internal/ports"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "museo",
		Short: "🌊 Museo Virtual del Agua: API server and client",
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the museum HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().String("api", "http://localhost:3000", "museum API base URL for client commands")
	rootCmd.AddCommand(serveCmd)
	addClientCommands(rootCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		color.New(color.FgRed).Fprintf(os.Stderr, "❌ Error: %v\n", err)
		os.Exit(1)
	}
}

func serve(ctx context.Context) error {
	// LOGGER
	zcore, _ := zap.NewProduction()
	defer zcore.Sync()
	zl := logger.NewZapLogger(zcore.Sugar())

	// ENV
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// DATASET
	var source ports.DatasetSource
	if cfg.DatabaseURL != "" {
		pool, err := infra.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer pool.Close()
		source = infra.NewPostgresDataset(pool)
	} else {
		source = infra.NewJSONDataset(cfg.DataDir)
	}

	snap, err := source.Load(ctx)
	if err != nil {
		return err
	}

	// SERVICES
	museum := domain.NewMuseumService(snap)
	animals := infra.NewAnimalsGateway(cfg.Animals.BaseURL, cfg.Animals.APIKey, zl)
	plants := infra.NewTrefleGateway(cfg.Trefle.BaseURL, cfg.Trefle.APIKey, zl)

	// HANDLERS
	hMuseum := delivery.NewMuseumHandler(museum, zl)
	hExternal := delivery.NewExternalHandler(animals, plants)

	// ROUTER
	r := delivery.NewRouter(cfg.CORSOrigins, hMuseum, hExternal)

	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "server started",
		Fields: map[string]any{
			"port":        cfg.Port,
			"rooms":       len(snap.Rooms),
			"exhibits":    len(snap.Exhibits),
			"content":     len(snap.Content),
			"animals_key": cfg.Animals.APIKey != "",
			"trefle_key":  cfg.Trefle.APIKey != "",
		},
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zl.Log(logger.LogEntry{
			Level:   "error",
			Message: "server crashed",
			Error:   err,
		})
		return err
	}

	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "server stopped",
	})
	return nil
}

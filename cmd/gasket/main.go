package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"gasket-service/internal/common/config"
	"gasket-service/internal/common/logging"
	"gasket-service/internal/common/middleware"
	"gasket-service/internal/gasket/drawing"
	"gasket-service/internal/gasket/handlers"
	"gasket-service/internal/gasket/repository"
	"gasket-service/internal/gasket/service"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// ============================================================
// Gasket Service
// ============================================================

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gasket",
		Short:         "Gasket drawing generator",
		Long:          "Строит DXF чертёж прокладки-стадиона с кольцом отверстий.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newServeCmd(), newDrawCmd())
	return rootCmd
}

func newServeCmd() *cobra.Command {
	var openapiPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(openapiPath)
		},
	}
	cmd.Flags().StringVar(&openapiPath, "openapi", "docs/gasket.openapi.yaml", "path to OpenAPI document")
	return cmd
}

func serve(openapiPath string) error {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	unit, err := drawing.ParseUnit(cfg.Unit)
	if err != nil {
		log.Error().Err(err).Msg("bad DXF_UNIT")
		return err
	}

	db, err := repository.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Error().Err(err).Str("path", cfg.DBPath).Msg("open database")
		return err
	}
	defer db.Close()

	repo := repository.New(db)
	if err := repo.Init(context.Background()); err != nil {
		log.Error().Err(err).Msg("init database")
		return err
	}

	storage := service.NewFileStorage(cfg.OutputDir)
	h := handlers.NewGasketHandler(repo, storage, unit)

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Gasket Service",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.Logger())
	app.Use(middleware.CORS())

	handlers.Register(app, h, db, cfg.APIKey, openapiPath)

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info().
		Str("addr", addr).
		Str("env", cfg.Environment).
		Str("unit", string(unit)).
		Str("output", storage.Root()).
		Bool("api_key", cfg.APIKey != "").
		Msg("starting gasket service")

	if err := app.Listen(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		return err
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"strings"

	handlers_fiber "barbershop-catalog/internal/transport/http/server/handlers-fiber"
	"barbershop-catalog/internal/usecase"

	"barbershop-catalog/config"
	"barbershop-catalog/internal/dataset"
	"barbershop-catalog/internal/repository"
	"barbershop-catalog/internal/transport/http/middleware"
	"barbershop-catalog/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(ctx context.Context) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ds, err := dataset.Load(cfg.Catalog.DatasetPath)
	if err != nil {
		log.Errorw("dataset load error", "error", err, "path", cfg.Catalog.DatasetPath)
		return err
	}

	repo, err := repository.New(ctx, cfg.Catalog.Backend, log, cfg, ds)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return err
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		_ = repo.OnStop(context.Background())
		return err
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	uc := usecase.New(log, repo, cfg.HTTP.RequestTimeout)

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	serv.Use(middleware.RequestLogger(log))
	serv.Use(recover.New())
	serv.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowMethods: strings.Join([]string{fiber.MethodGet, fiber.MethodPost, fiber.MethodOptions}, ","),
		AllowHeaders: "Origin,Content-Type,Accept",
		MaxAge:       86400,
	}))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	h := handlers_fiber.NewHandler(log, uc)
	handlers_fiber.RegisterHandlers(serv, h)

	listenErr := make(chan error, 1)
	go func() {
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			listenErr <- err
		}
	}()

	select {
	case err := <-listenErr:
		log.Errorw("failed to start server", "error", err)
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
		log.Infow("server stopped")
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
	return nil
}

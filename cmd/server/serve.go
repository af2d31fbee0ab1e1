package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/urfave/cli/v2"

	"commentgate/internal/adapters/github"
	"commentgate/internal/adapters/oauth"
	"commentgate/internal/adapters/stripe"
	"commentgate/internal/adapters/web"
	"commentgate/internal/config"
	"commentgate/internal/domain"
	"commentgate/internal/usecases"
	"commentgate/pkg/log"
	"commentgate/pkg/log/transporters"
)

const shutdownTimeout = 10 * time.Second

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "Start the HTTP API",
		Action: runServe,
	}
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	if err := config.LoadEnvFile(c.String("env-file")); err != nil {
		return nil, err
	}
	return config.Load(c.String("config"))
}

func newLogger(cfg config.ServerConfig) *log.Logger {
	// Unknown names parse as Info.
	level, _ := log.ParseLevel(cfg.LogLevel)
	if cfg.LogFormat == "console" {
		return log.New(level, transporters.NewConsole())
	}
	return log.New(level, transporters.NewStdout())
}

func runServe(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	logger := newLogger(cfg.Server)
	log.SetDefault(logger)
	defer logger.Close()

	site, err := config.LoadSite(cfg.Server.SiteConfig)
	if err != nil {
		return fmt.Errorf("load site file: %w", err)
	}
	defer site.Close()

	for _, p := range config.Validate(cfg, site) {
		if p.Fatal {
			log.GlobalError("configuration problem", "problem", p.Message)
		} else {
			log.GlobalWarn("configuration problem", "problem", p.Message)
		}
	}

	// Adapters
	clients := github.NewClientFactory(github.WithEndpoint(cfg.GitHub.GraphQLURL))
	provider := oauth.NewProvider(cfg.GitHub.ClientID, cfg.GitHub.ClientSecret)
	processor := stripe.NewProcessor(cfg.Stripe.SecretKey)

	// Use cases
	identity := usecases.NewIdentityResolver(domain.Credential(cfg.GitHub.Token))
	directory := usecases.NewThreadDirectory(clients, site)

	handlers := web.NewHandlers(web.HandlersConfig{
		ListComments:   usecases.NewListCommentsUseCase(site, directory, identity),
		PostComment:    usecases.NewPostCommentUseCase(site, usecases.NewAbuseGuard(), identity, directory, clients),
		Auth:           usecases.NewAuthUseCase(provider, clients),
		Donations:      usecases.NewDonationsUseCase(processor, site.Donations),
		PathPrefix:     site.PathPrefix,
		Production:     cfg.Server.Production,
		RequestTimeout: cfg.Server.RequestTimeout,
	})

	app := fiber.New(fiber.Config{
		AppName:               "commentgate",
		DisableStartupMessage: true,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(web.RequestIDConfig()))
	app.Use(web.RequestIDToContextMiddleware())
	app.Use(web.RequestLoggerMiddleware())

	web.SetupRoutes(app, handlers, web.RoutesConfig{CORSOrigins: cfg.CORSOriginList()})

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.GlobalInfo("server starting", "addr", cfg.Server.Addr, "production", cfg.Server.Production)
		errCh <- app.Listen(cfg.Server.Addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen %s: %w", cfg.Server.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	log.GlobalInfo("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"
	"github.com/urfave/cli/v2"

	_ "github.com/FahadIshaq/scanback/docs"
	"github.com/FahadIshaq/scanback/internal/api"
	"github.com/FahadIshaq/scanback/internal/client"
	"github.com/FahadIshaq/scanback/internal/config"
	"github.com/FahadIshaq/scanback/internal/handler"
	"github.com/FahadIshaq/scanback/internal/logger"
	"github.com/FahadIshaq/scanback/internal/middleware"
	"github.com/FahadIshaq/scanback/internal/static"
	"github.com/FahadIshaq/scanback/internal/template"
	"github.com/FahadIshaq/scanback/internal/track"
)

//	@title			ScanBack API
//	@version		1.0
//	@description	JSON API for scanning and activating ScanBack tags.
//	@BasePath		/

func main() {
	app := &cli.App{
		Name:  "scanback",
		Usage: "Web frontend for scanning and activating ScanBack tags",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   config.DefaultPort,
				Usage:   "HTTP server port",
				EnvVars: []string{"PORT"},
			},
			&cli.StringFlag{
				Name:    "api-url",
				Aliases: []string{"a"},
				Value:   config.DefaultAPIBaseURL,
				Usage:   "ScanBack backend API base URL",
				EnvVars: []string{"API_URL"},
			},
			&cli.IntFlag{
				Name:    "rate-limit",
				Aliases: []string{"r"},
				Value:   config.DefaultRateLimit,
				Usage:   "Requests per minute per IP",
				EnvVars: []string{"RATE_LIMIT"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to TOML config file",
				EnvVars: []string{"CONFIG_FILE"},
			},
		},
		Before: func(c *cli.Context) error {
			logger.Setup(logger.ParseLevel(c.String("log-level")))
			return nil
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	port := c.String("port")
	apiURL := c.String("api-url")
	rateLimit := c.Int("rate-limit")

	file, err := config.LoadFile(c.String("config"))
	if err != nil {
		return err
	}
	// Flags and environment win; the file fills in what they left at defaults.
	if !c.IsSet("port") && file.Port != "" {
		port = file.Port
	}
	if !c.IsSet("api-url") && file.APIURL != "" {
		apiURL = file.APIURL
	}
	if !c.IsSet("rate-limit") && file.RateLimit > 0 {
		rateLimit = file.RateLimit
	}
	if !c.IsSet("log-level") && file.LogLevel != "" {
		logger.Setup(logger.ParseLevel(file.LogLevel))
	}

	if _, err := strconv.Atoi(port); err != nil {
		return fmt.Errorf("invalid port %q: %w", port, err)
	}

	backend, err := client.New(apiURL)
	if err != nil {
		return fmt.Errorf("failed to create backend client: %w", err)
	}

	tracker, err := track.New(backend)
	if err != nil {
		return fmt.Errorf("failed to create scan tracker: %w", err)
	}
	defer tracker.Close()

	tmpl, err := template.New()
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	web, err := handler.New(backend, tracker, tmpl)
	if err != nil {
		return fmt.Errorf("failed to create web handler: %w", err)
	}

	jsonAPI, err := api.New(backend, tracker)
	if err != nil {
		return fmt.Errorf("failed to create API handler: %w", err)
	}

	mux := http.NewServeMux()
	web.RegisterRoutes(mux)
	jsonAPI.RegisterRoutes(mux)
	mux.Handle("GET /favicon.svg", static.Handler())
	mux.Handle("GET /style.css", static.Handler())
	mux.Handle("GET /robots.txt", static.Handler())
	mux.Handle("GET /swagger/", httpSwagger.Handler())

	limiter, err := middleware.NewLimiter(rateLimit, []string{"/favicon.svg", "/style.css"})
	if err != nil {
		return fmt.Errorf("failed to create rate limiter: %w", err)
	}
	defer limiter.Close()

	chain := middleware.RequestID(middleware.CacheControl(limiter.Middleware(mux)))

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      chain,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("starting server", "server_addr", "http://localhost:"+port, "api_url", apiURL)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-done:
		slog.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

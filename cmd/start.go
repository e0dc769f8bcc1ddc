package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wordle-web/core/loader"
	"wordle-web/core/logger"
	"wordle-web/core/middleware/rayid"
	"wordle-web/feature/manifest"
	"wordle-web/feature/shell"
	"wordle-web/web"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "wordle-web/docs/swagger"
)

// @title Wordle Web API
// @version 1.0
// @description View navigation endpoints for the Wordle Web app.
// @host localhost:8080
// @BasePath /wordle-web

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the Wordle Web server",
	Long:  `Builds the route table, starts the HTTP server and serves views until interrupted.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Configuration and logger
		cfg, logg, err := loadRuntime()
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 2. Route table (fatal when misconfigured)
		nav, err := newNavigator(cfg, logg)
		if err != nil {
			logg.Fatal("Invalid route table", zap.Error(err))
		}

		// 3. Features
		mgr := loader.NewManager(logg)

		mf, err := manifest.NewFeature(cfg.App, cfg.Server.BasePath, web.Dist())
		if err != nil {
			logg.Fatal("Failed to create manifest feature", zap.Error(err))
		}
		sh, err := shell.NewFeature(nav, web.ShellTemplate, shell.Options{
			App:        cfg.App.Name,
			BasePath:   cfg.Server.BasePath,
			ThemeColor: cfg.App.ThemeColor,
			ApiKey:     cfg.Server.ApiKey,
			Protected:  cfg.Server.Protected(),
		}, logg)
		if err != nil {
			logg.Fatal("Failed to create shell feature", zap.Error(err))
		}

		// The shell owns a catch-all route, so it goes last.
		mgr.Register(mf)
		mgr.Register(sh)

		// 4. Fiber app
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			CaseSensitive:         true,
			StrictRouting:         true,
		})

		// RayID first so every log line can be correlated.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			start := time.Now()
			err := c.Next()
			fields := []zap.Field{
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Int("status", c.Response().StatusCode()),
				zap.Duration("took", time.Since(start)),
			}
			if err != nil {
				l.Error("Request error", append(fields, zap.Error(err))...)
				return err
			}
			l.Info("Request", fields...)
			return nil
		})

		app.Get("/swagger/*", swagger.HandlerDefault)

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 5. Serve
		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.String("base_path", cfg.Server.BasePath))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 6. Graceful shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}

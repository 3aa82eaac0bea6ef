package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"ilcquote/collections"
	"ilcquote/config"
	"ilcquote/handlers"
	"ilcquote/services"
)

// configPathEnv overrides the config file location. It sits outside the ILC_
// prefix so it is not read back as a config key.
const configPathEnv = "ILCQUOTE_CONFIG"

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	cfgPath := os.Getenv(configPathEnv)
	if cfgPath == "" {
		cfgPath = config.DefaultPath
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.String("path", cfgPath), zap.Error(err))
	}

	app := pocketbase.New()

	app.RootCmd.AddCommand(newQuoteCmd(cfg, logger))
	app.RootCmd.AddCommand(newConfigCmd(cfgPath))

	// Create the showcase collection and seed cards on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		if err := collections.Setup(app, logger); err != nil {
			return err
		}
		if err := collections.Seed(app, logger); err != nil {
			logger.Warn("seed data failed", zap.Error(err))
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve static files from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// Theme preference for every page
		se.Router.BindFunc(handlers.ThemeMiddleware(cfg))
		se.Router.POST("/theme/toggle", handlers.HandleThemeToggle(cfg, logger))

		// ── Showcase pages ───────────────────────────────────────
		se.Router.GET("/{$}", handlers.HandleHome(app, logger))
		se.Router.GET("/services", handlers.HandleCardList(app, logger, services.CardService))
		se.Router.GET("/projects", handlers.HandleCardList(app, logger, services.CardProject))
		se.Router.GET("/cards/{id}/modal", handlers.HandleCardModal(app, logger))

		// ── Quote calculator ─────────────────────────────────────
		se.Router.GET("/quote", handlers.HandleQuotePage(logger))
		se.Router.POST("/quote/estimate", handlers.HandleQuoteEstimate(logger))
		se.Router.POST("/quote/export/pdf", handlers.HandleQuoteExportPDF(cfg, logger))
		se.Router.POST("/quote/export/xlsx", handlers.HandleQuoteExportExcel(cfg, logger))
		se.Router.GET("/quote/print", handlers.HandleQuotePrint(cfg, logger))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		logger.Fatal("app stopped", zap.Error(err))
	}
}

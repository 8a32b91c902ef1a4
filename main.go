package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/swaggo/swag"

	"tripx/config"
	"tripx/db"
	_ "tripx/docs"
	"tripx/handlers"
	"tripx/logger"
	"tripx/scheduler"
	"tripx/services"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(cfg); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	logger.Info("Logger initialized", "level", cfg.Log.Level, "format", cfg.Log.Format, "output", cfg.Log.Output)

	if cfg.Catalog.Source == "mysql" {
		if err := db.InitMySQLWithConfig(cfg); err != nil {
			logger.Error("MySQL init failed", "error", err)
			os.Exit(1)
		}
		logger.Info("MySQL connected",
			"max_open_conns", cfg.DB.MaxOpenConns,
			"max_idle_conns", cfg.DB.MaxIdleConns,
			"conn_max_lifetime", cfg.DB.ConnMaxLifetime)
	}

	// Catalog load is the build phase of the lifecycle; a failure here is
	// a startup failure.
	if err := services.LoadCatalog(cfg); err != nil {
		logger.Error("Catalog load failed", "error", err)
		os.Exit(1)
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	handlers.RegisterRoutes(r, cfg)

	scheduler.Start(cfg)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", serverAddr)
	logger.Info("Swagger docs available", "url", fmt.Sprintf("http://%s/swagger/index.html", serverAddr))
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", cfg.Server.Port), r))
}

// Command bootstrap performs first-run database initialization: creates the
// SQLite store files from the schema scripts and upgrades the seed
// placeholder password hashes. Safe to run repeatedly.
package main

import (
	"flag"
	"log"

	"github.com/denwadesk/denwa-backend/internal/config"
	"github.com/denwadesk/denwa-backend/internal/database"
	"github.com/denwadesk/denwa-backend/pkg/logger"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "config file path")
	scriptsDir := flag.String("scripts", "internal/database/scripts", "schema scripts directory")
	flag.Parse()

	config.LoadDotEnv()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger.InitStructured(cfg.Env)

	if err := database.Bootstrap(cfg.Database, *scriptsDir); err != nil {
		log.Fatalf("Bootstrap failed: %v", err)
	}

	logger.GetLogger().Info().
		Str("backend", cfg.Database.Type).
		Msg("bootstrap complete")
}

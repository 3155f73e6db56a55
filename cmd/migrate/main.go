package main

import (
	"Yatube/internal/api/config"
	"Yatube/internal/pkg/database"
	"Yatube/internal/pkg/logger"
	"errors"
	"flag"
	"fmt"
	log "log/slog"
	"os"

	"github.com/golang-migrate/migrate/v4"
)

// 用法: migrate [up|down|version]，down 默认回滚一步
func main() {
	steps := flag.Int("steps", 1, "number of migrations to roll back with down")
	flag.Parse()

	if err := config.LoadConfig(); err != nil {
		log.Error("Fatal error: failed to load configuration", "err", err)
		os.Exit(1)
	}
	logger.InitLogger(config.Cfg.Log)

	cmd := flag.Arg(0)
	if cmd == "" {
		cmd = "up"
	}
	if err := run(cmd, *steps); err != nil {
		log.Error("migration failed", "cmd", cmd, "err", err)
		os.Exit(1)
	}
}

func run(cmd string, steps int) error {
	sqlDB, err := database.OpenForMigration(config.Cfg.DB.DSN)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()

	if cmd == "up" {
		return database.MigrateUp(sqlDB)
	}

	m, err := database.NewMigrator(sqlDB)
	if err != nil {
		return err
	}

	switch cmd {
	case "down":
		if err = m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
	case "version":
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}
	log.Info("Database migration version", "version", version, "dirty", dirty)
	return nil
}

package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	log "log/slog"

	driver "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Source 返回内嵌的迁移脚本
func Source() (source.Driver, error) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to load migrations: %w", err)
	}
	return src, nil
}

// NewMigrator 基于已有连接创建 migrate 实例，DSN 需要开启 multiStatements
func NewMigrator(db *sql.DB) (*migrate.Migrate, error) {
	src, err := Source()
	if err != nil {
		return nil, err
	}

	dbDriver, err := mysql.WithInstance(db, &mysql.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "mysql", dbDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrator: %w", err)
	}
	return m, nil
}

// MigrationDSN 在业务 DSN 上开启 multiStatements，迁移脚本一个文件包含多条语句
func MigrationDSN(dsn string) (string, error) {
	cfg, err := driver.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("invalid database dsn: %w", err)
	}
	cfg.MultiStatements = true
	cfg.ParseTime = true
	return cfg.FormatDSN(), nil
}

// OpenForMigration 打开一个仅用于迁移的连接
func OpenForMigration(dsn string) (*sql.DB, error) {
	migrationDSN, err := MigrationDSN(dsn)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("mysql", migrationDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open migration connection: %w", err)
	}
	return db, nil
}

// MigrateUp 执行所有未应用的迁移
func MigrateUp(db *sql.DB) error {
	m, err := NewMigrator(db)
	if err != nil {
		return err
	}

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up failed: %w", err)
	}

	version, dirty, _ := m.Version()
	log.Info("Database migrated", "version", version, "dirty", dirty)
	return nil
}

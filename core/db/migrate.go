package db

import (
	"context"
	"embed"
	"fmt"
	"io"
	"log/slog"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

type MigrateCommand string

const (
	MigrateUp     MigrateCommand = "up"
	MigrateDown   MigrateCommand = "down"
	MigrateStatus MigrateCommand = "status"
)

// Migrate runs the embedded goose migrations against the pool.
func (db *DB) Migrate(ctx context.Context, cmd MigrateCommand, out io.Writer) error {
	sqlDB := stdlib.OpenDBFromPool(db.pool)
	defer sqlDB.Close()

	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}

	switch cmd {
	case MigrateUp:
		if err := goose.UpContext(ctx, sqlDB, "migrations"); err != nil {
			return fmt.Errorf("migrating up: %w", err)
		}
	case MigrateDown:
		if err := goose.DownContext(ctx, sqlDB, "migrations"); err != nil {
			return fmt.Errorf("migrating down: %w", err)
		}
	case MigrateStatus:
		// goose prints status through its logger
		goose.SetLogger(&writerLogger{out: out})
		if err := goose.StatusContext(ctx, sqlDB, "migrations"); err != nil {
			return fmt.Errorf("migration status: %w", err)
		}
	default:
		return fmt.Errorf("unknown migrate command %q", cmd)
	}

	version, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}
	slog.InfoContext(ctx, "migrations applied", "command", string(cmd), "version", version)
	return nil
}

type writerLogger struct {
	out io.Writer
}

func (l *writerLogger) Fatalf(format string, v ...interface{}) {
	fmt.Fprintf(l.out, format+"\n", v...)
}

func (l *writerLogger) Printf(format string, v ...interface{}) {
	fmt.Fprintf(l.out, format+"\n", v...)
}

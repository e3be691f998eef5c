package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"sync"

	"pr-activity-service/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// Диалекты goose
const (
	DialectSQLite   = "sqlite3"
	DialectPostgres = "postgres"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var EmbedMigrations embed.FS

// goose хранит диалект и FS глобально
var migrateMu sync.Mutex

// Open открывает хранилище кэша согласно CACHE_DRIVER и возвращает диалект для миграций.
func Open(cfg config.Config) (*sql.DB, string, error) {
	switch cfg.CacheDriver {
	case config.DriverPostgres:
		db, err := NewPostgresDB(cfg.PostgresDSN())
		return db, DialectPostgres, err
	default:
		db, err := NewSQLiteDB(cfg.DatabasePath)
		return db, DialectSQLite, err
	}
}

func NewPostgresDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// NewSQLiteDB открывает файл SQLite с включенными внешними ключами и WAL.
func NewSQLiteDB(file string) (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_time_format=sqlite",
		file,
	)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// Один писатель
	db.SetMaxOpenConns(1)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// MigrateDB применяет встроенные миграции для диалекта. Повторный вызов ничего не меняет.
func MigrateDB(ctx context.Context, db *sql.DB, dialect string) error {
	migrateMu.Lock()
	defer migrateMu.Unlock()

	dir := "migrations/sqlite"
	if dialect == DialectPostgres {
		dir = "migrations/postgres"
	}

	goose.SetBaseFS(EmbedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, db, dir); err != nil {
		return err
	}

	return nil
}

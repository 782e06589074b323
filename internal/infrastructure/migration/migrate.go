package migration

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/golang-migrate/migrate/v4"
	// Blank import required for PostgreSQL driver registration for migrations
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"pingate/internal/config"
	"pingate/migrations"
)

// Migrator - та часть migrate.Migrate, которую мы вызываем
type Migrator interface {
	Up() error
	Close() (error, error)
}

// MigrationEngine собирает мигратор из источника и строки подключения.
// В тестах подменяется, чтобы не ходить в БД.
type MigrationEngine func(src source.Driver, databaseURL string) (Migrator, error)

type Migration struct {
	cfg    config.Storage
	engine MigrationEngine
}

func NewMigration(conf config.Storage, engine MigrationEngine) *Migration {
	if engine == nil {
		engine = DefaultEngine
	}
	return &Migration{
		cfg:    conf,
		engine: engine,
	}
}

func DefaultEngine(src source.Driver, databaseURL string) (Migrator, error) {
	return migrate.NewWithSourceInstance("iofs", src, databaseURL)
}

// Up накатывает миграции. Без MIGRATIONS_PATH используются вшитые
// миграции kv_store, иначе файлы из указанной директории.
func (mg *Migration) Up() (err error) {
	src, err := mg.source()
	if err != nil {
		return fmt.Errorf("migration source: %w", err)
	}

	m, err := mg.engine(src, mg.cfg.DatabaseURI)
	if err != nil {
		return err
	}
	defer func() {
		serr, dberr := m.Close()
		err = errors.Join(err, serr, dberr)
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up: %w", err)
	}
	return nil
}

func (mg *Migration) source() (source.Driver, error) {
	var fsys fs.FS = migrations.FS
	if mg.cfg.Migrations != "" {
		fsys = os.DirFS(mg.cfg.Migrations)
	}
	return iofs.New(fsys, ".")
}

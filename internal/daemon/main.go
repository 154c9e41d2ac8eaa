// Package daemon wires the database, session storage and web service together.
package daemon

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	sessionmysql "github.com/gofiber/storage/mysql/v2"
	sessionpostgres "github.com/gofiber/storage/postgres/v3"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/sitesettings/sitesettings/internal/config"
	"github.com/sitesettings/sitesettings/internal/db/dsn"
	"github.com/sitesettings/sitesettings/internal/db/migrations"
	gormadapter "github.com/sitesettings/sitesettings/internal/logger/adapter/gorm"
	"github.com/sitesettings/sitesettings/internal/upload"
	"github.com/sitesettings/sitesettings/internal/web"
	"github.com/sitesettings/sitesettings/internal/web/session"
)

// ErrConfigNil is returned when no configuration is passed to New.
var ErrConfigNil = errors.New("config is nil")

// Daemon represents the main application daemon.
type Daemon struct {
	cfg            *config.Config
	db             *gorm.DB
	sessionStorage fiber.Storage
	webService     *web.Service
}

// Start starts the web service and blocks until it has been shut down.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	addr := fmt.Sprintf(":%d", d.cfg.Webserver.Port)
	log.Info().Str("addr", addr).Str("url", d.cfg.Webserver.URL).Msg("starting web service")

	err := d.webService.Start(addr)

	if d.sessionStorage != nil {
		if cErr := d.sessionStorage.Close(); cErr != nil {
			log.Error().Err(cErr).Msg("closing session storage failed")
		}
	}

	return err
}

// Connect opens the configured database without touching its schema.
// The parent directory of a sqlite database file is created when missing.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := dsn.Dialector(cfg)
	if err != nil {
		return nil, err
	}

	if err = ensureSQLiteDir(cfg.DB); err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormadapter.New(nil, gormlogger.Warn),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}

	return db, nil
}

// Open connects to the configured database and applies all pending migrations.
func Open(cfg *config.Config) (*gorm.DB, error) {
	db, err := Connect(cfg)
	if err != nil {
		return nil, err
	}

	if err = migrations.Migrate(db); err != nil {
		return nil, errors.Wrap(err, "failed to migrate database")
	}

	return db, nil
}

// Rollback reverts the most recently applied migration without applying pending ones first.
func Rollback(cfg *config.Config) error {
	db, err := Connect(cfg)
	if err != nil {
		return err
	}

	if err = migrations.RollbackLast(db); err != nil {
		return errors.Wrap(err, "failed to roll back migration")
	}

	return nil
}

func ensureSQLiteDir(db config.DB) error {
	if db.Engine != config.EngineSQLite || db.Name == "" ||
		db.Name == ":memory:" || strings.HasPrefix(db.Name, "file:") {
		return nil
	}

	dir := filepath.Dir(db.Name)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return errors.Wrapf(err, "failed to create database directory %s", dir)
	}

	return nil
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	db, err := Open(cfg)
	if err != nil {
		return nil, err
	}

	if err = seed(cfg, db); err != nil {
		return nil, err
	}

	storage := newSessionStorage(cfg)
	session.Init(storage)

	files, err := upload.NewLocal(cfg.Upload)
	if err != nil {
		return nil, err
	}

	webService, err := web.New(cfg, db, files)
	if err != nil {
		return nil, err
	}

	return &Daemon{
		cfg:            cfg,
		db:             db,
		sessionStorage: storage,
		webService:     webService,
	}, nil
}

// newSessionStorage returns the session storage for the configured engine.
// A nil storage makes the session store fall back to process memory.
func newSessionStorage(cfg *config.Config) fiber.Storage {
	switch cfg.DB.Engine {
	case config.EngineMySQL:
		return sessionmysql.New(sessionmysql.Config{
			ConnectionURI: dsn.Create(cfg),
			Table:         cfg.Webserver.Session.Table,
		})
	case config.EnginePostgres:
		return sessionpostgres.New(sessionpostgres.Config{
			ConnectionURI: dsn.Create(cfg),
			Table:         cfg.Webserver.Session.Table,
		})
	default:
		return nil
	}
}

package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hance08/tailorbook/internal/config"
	"github.com/hance08/tailorbook/internal/logger"
	"github.com/hance08/tailorbook/internal/service"
	"github.com/hance08/tailorbook/internal/store"
)

type App struct {
	Service *service.Service
	Store   store.Repository
	Logger  *zap.Logger
	Paths   Paths
}

// Paths are the resolved on-disk locations the app uses.
type Paths struct {
	AppDir string
	DB     string
	Log    string
}

// NewApp initialize config, logger, database and services, then return App entity
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	paths, err := ResolvePaths(cfg)
	if err != nil {
		return nil, nil, err
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, nil, err
	}

	l, err := logger.New(config.LogConfig{Level: cfg.Log.Level, Path: paths.Log}, paths.Log)
	if err != nil {
		return nil, nil, err
	}

	dbStore, err := store.NewStore(paths.DB, migrationFS,
		store.WithLocation(loc),
		store.WithLogger(l.Named("store")))
	if err != nil {
		_ = l.Sync()
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	now := func() time.Time { return time.Now().In(loc) }
	svc := service.NewService(dbStore, cfg, l, now)

	l.Debug("app started",
		zap.String("db", paths.DB),
		zap.String("timezone", loc.String()))

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			l.Error("failed to close database", zap.Error(err))
		}
		_ = l.Sync()
	}

	return &App{
		Service: svc,
		Store:   dbStore,
		Logger:  l,
		Paths:   paths,
	}, cleanup, nil
}

// ResolvePaths fills the default database and log locations under the app
// data directory and expands a leading "~".
func ResolvePaths(cfg *config.Config) (Paths, error) {
	appDir, err := AppDataDir()
	if err != nil {
		return Paths{}, err
	}

	paths := Paths{
		AppDir: appDir,
		DB:     filepath.Join(appDir, "tailorbook.db"),
		Log:    filepath.Join(appDir, "tailorbook.log"),
	}

	if cfg.Database.Path != "" {
		if paths.DB, err = ExpandPath(cfg.Database.Path); err != nil {
			return Paths{}, err
		}
	}
	if cfg.Log.Path != "" {
		if paths.Log, err = ExpandPath(cfg.Log.Path); err != nil {
			return Paths{}, err
		}
	}

	return paths, nil
}

func AppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".tailorbook"), nil
	}

	return filepath.Join(configDir, "tailorbook"), nil
}

func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}

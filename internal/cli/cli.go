// Package cli implements the aiarchitect command-line interface.
//
// This package provides commands for generating parametric residential
// designs, producing floor plans, validating design inputs, serving the
// HTTP API, and managing stored designs. The CLI is built using cobra
// and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - design: Generate a complete architectural design from plot parameters
//   - plan: Generate 2D floor plan layouts for a design
//   - validate: Check plot parameters for feasibility without generating
//   - serve: Run the HTTP API server
//   - store: List, show, and delete persisted designs
//   - cache: Manage the generation cache
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ramisn26/AI-Architect/internal/config"
	"github.com/ramisn26/AI-Architect/pkg/buildinfo"
	"github.com/ramisn26/AI-Architect/pkg/cache"
	"github.com/ramisn26/AI-Architect/pkg/designer"
	"github.com/ramisn26/AI-Architect/pkg/errors"
	"github.com/ramisn26/AI-Architect/pkg/store"
)

// appName is the application name used for directories and display.
const appName = "aiarchitect"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	cfg        *config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "AI-Architect generates parametric residential building designs",
		Long:         `AI-Architect is a CLI tool for generating complete residential building designs from plot parameters: regulatory calculations, room allocations, 2D floor plan layouts, and cost estimates.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ~/.config/aiarchitect/config.toml)")

	root.AddCommand(c.designCommand())
	root.AddCommand(c.planCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.storeCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// config loads the configuration file once and memoizes it.
func (c *CLI) config() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	path := c.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	c.cfg = cfg
	return cfg, nil
}

// newDesigner builds a Designer wired to the configured store.
func (c *CLI) newDesigner(ctx context.Context) (*designer.Designer, store.Store, error) {
	cfg, err := c.config()
	if err != nil {
		return nil, nil, err
	}
	st, err := openStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	des := designer.New(
		designer.WithLogger(c.Logger),
		designer.WithStore(st),
		designer.WithCostRates(cfg.Rates()),
	)
	return des, st, nil
}

// openStore creates the design store named by the configuration.
func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.Store.Backend {
	case "memory":
		return store.NewMemory(), nil
	case "file", "":
		return store.NewFile(cfg.Store.Path)
	case "sqlite":
		return store.OpenSQLite(cfg.Store.Path)
	case "mongo":
		return store.NewMongo(ctx, cfg.Store.URI, cfg.Store.Database)
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"unknown store backend %q (want memory, file, sqlite, or mongo)", cfg.Store.Backend)
	}
}

// openCache creates the generation cache named by the configuration.
func openCache(ctx context.Context, cfg *config.Config) (cache.Cache, error) {
	switch cfg.Cache.Backend {
	case "none", "":
		return cache.NewNullCache(), nil
	case "file":
		dir := cfg.Cache.Dir
		if dir == "" {
			var err error
			dir, err = cacheDir()
			if err != nil {
				return nil, err
			}
		}
		return cache.NewFileCache(dir)
	case "redis":
		return cache.NewRedisCache(ctx, cfg.Cache.Addr)
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"unknown cache backend %q (want none, file, or redis)", cfg.Cache.Backend)
	}
}

// cacheDir returns the cache directory using XDG standard (~/.cache/aiarchitect/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

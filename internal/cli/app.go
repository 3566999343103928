package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/chartwise/internal/catalog"
	"github.com/alexanderramin/chartwise/internal/config"
	"github.com/alexanderramin/chartwise/internal/db"
	"github.com/alexanderramin/chartwise/internal/qa"
	"github.com/alexanderramin/chartwise/internal/repository"
)

// App holds the configuration and shared services used by CLI commands.
// The catalog and engine are resolved on first use, after flags are parsed.
type App struct {
	Config   config.Config
	Observer qa.Observer

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool

	// Stdin feeds huh forms outside the shell; nil means os.Stdin.
	Stdin io.Reader

	catalog   *catalog.Catalog
	engine    *qa.Engine
	store     *sql.DB
	storePath string
}

// NewApp creates an App for the given configuration.
func NewApp(cfg config.Config) *App {
	return &App{Config: cfg}
}

// Catalog returns the active catalog. A YAML file takes precedence over
// the SQLite store, which takes precedence over the built-in catalog.
func (a *App) Catalog(ctx context.Context) (*catalog.Catalog, error) {
	if a.catalog != nil {
		return a.catalog, nil
	}

	switch {
	case a.Config.CatalogPath != "":
		c, err := catalog.LoadFile(a.Config.CatalogPath)
		if err != nil {
			return nil, err
		}
		a.catalog = c

	case a.Config.DBPath != "":
		store, err := a.Store()
		if err != nil {
			return nil, err
		}
		c, err := store.LoadOrSeed(ctx, catalog.Default())
		if err != nil {
			return nil, err
		}
		a.catalog = c

	default:
		a.catalog = catalog.Default()
	}
	return a.catalog, nil
}

// Engine returns a Q&A engine over the active catalog.
func (a *App) Engine(ctx context.Context) (*qa.Engine, error) {
	if a.engine != nil {
		return a.engine, nil
	}
	c, err := a.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	a.engine = qa.NewEngine(c, qa.WithObserver(observerFor(a)))
	return a.engine, nil
}

// Store opens the configured catalog store, or the default one under the
// user's home directory.
func (a *App) Store() (*repository.CatalogStore, error) {
	if a.store == nil {
		path, err := a.Config.StorePath()
		if err != nil {
			return nil, fmt.Errorf("resolving store path: %w", err)
		}
		database, err := db.OpenDB(path)
		if err != nil {
			return nil, err
		}
		a.store = database
		a.storePath = path
	}
	return repository.NewCatalogStore(a.store), nil
}

// StorePath returns the path of the open catalog store, or "" before
// Store has been called.
func (a *App) StorePath() string {
	return a.storePath
}

// Close releases the catalog store, if one was opened.
func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	err := a.store.Close()
	a.store = nil
	a.storePath = ""
	return err
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) stdin() io.Reader {
	if a.Stdin != nil {
		return a.Stdin
	}
	return os.Stdin
}

// resetCatalog drops the cached catalog so the next command reloads it.
func (a *App) resetCatalog() {
	a.catalog = nil
	a.engine = nil
}

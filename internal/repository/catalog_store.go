package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/chartwise/internal/catalog"
	"github.com/alexanderramin/chartwise/internal/db"
)

const (
	metaSource     = "source"
	metaImportedAt = "imported_at"
)

// SourceBuiltin marks a store seeded from the built-in catalog.
const SourceBuiltin = "builtin"

// StoreInfo summarizes what the catalog store currently holds.
type StoreInfo struct {
	Charts     int
	Rules      int
	Source     string
	ImportedAt *time.Time
}

// CatalogStore persists a whole catalog and rebuilds immutable Catalog
// values from it.
type CatalogStore struct {
	db  *sql.DB
	uow db.UnitOfWork
}

// NewCatalogStore creates a CatalogStore over an opened database.
func NewCatalogStore(database *sql.DB) *CatalogStore {
	return &CatalogStore{db: database, uow: db.NewSQLiteUnitOfWork(database)}
}

// Save replaces the stored catalog with c in a single transaction.
func (s *CatalogStore) Save(ctx context.Context, c *catalog.Catalog, source string) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := NewSQLiteChartRepo(tx)
		if err := repo.DeleteAll(ctx); err != nil {
			return err
		}
		for i, ch := range c.All() {
			if err := repo.InsertChart(ctx, i, ch); err != nil {
				return err
			}
		}
		for i, rule := range c.Rules() {
			if err := repo.InsertRule(ctx, i, rule); err != nil {
				return err
			}
		}
		if err := repo.SetMeta(ctx, metaSource, source); err != nil {
			return err
		}
		return repo.SetMeta(ctx, metaImportedAt, nowUTC())
	})
}

// Load builds a validated Catalog from the stored rows.
func (s *CatalogStore) Load(ctx context.Context) (*catalog.Catalog, error) {
	repo := NewSQLiteChartRepo(s.db)
	charts, err := repo.ListCharts(ctx)
	if err != nil {
		return nil, err
	}
	rules, err := repo.ListRules(ctx)
	if err != nil {
		return nil, err
	}
	c, err := catalog.New(charts, rules)
	if err != nil {
		return nil, fmt.Errorf("loading stored catalog: %w", err)
	}
	return c, nil
}

// LoadOrSeed loads the stored catalog, first saving seed when the store is
// empty.
func (s *CatalogStore) LoadOrSeed(ctx context.Context, seed *catalog.Catalog) (*catalog.Catalog, error) {
	n, err := NewSQLiteChartRepo(s.db).CountCharts(ctx)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		if err := s.Save(ctx, seed, SourceBuiltin); err != nil {
			return nil, fmt.Errorf("seeding catalog store: %w", err)
		}
	}
	return s.Load(ctx)
}

// Info reports counts and provenance of the stored catalog.
func (s *CatalogStore) Info(ctx context.Context) (StoreInfo, error) {
	repo := NewSQLiteChartRepo(s.db)

	var info StoreInfo
	var err error
	if info.Charts, err = repo.CountCharts(ctx); err != nil {
		return StoreInfo{}, err
	}
	if info.Rules, err = repo.CountRules(ctx); err != nil {
		return StoreInfo{}, err
	}

	if src, ok, err := repo.GetMeta(ctx, metaSource); err != nil {
		return StoreInfo{}, err
	} else if ok {
		info.Source = src
	}
	if ts, ok, err := repo.GetMeta(ctx, metaImportedAt); err != nil {
		return StoreInfo{}, err
	} else if ok {
		if t, perr := time.Parse(time.RFC3339, ts); perr == nil {
			info.ImportedAt = &t
		}
	}
	return info, nil
}

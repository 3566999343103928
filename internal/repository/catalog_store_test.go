package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/chartwise/internal/catalog"
	"github.com/alexanderramin/chartwise/internal/domain"
	"github.com/alexanderramin/chartwise/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogStore_LoadOrSeedUsesBuiltinOnce(t *testing.T) {
	ctx := context.Background()
	store := NewCatalogStore(testutil.NewTestDB(t))

	c, err := store.LoadOrSeed(ctx, catalog.Default())
	require.NoError(t, err)
	assert.Equal(t, catalog.Default().All(), c.All())
	assert.Equal(t, catalog.Default().Rules(), c.Rules())

	info, err := store.Info(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, info.Charts)
	assert.Equal(t, 5, info.Rules)
	assert.Equal(t, SourceBuiltin, info.Source)
	require.NotNil(t, info.ImportedAt)

	// A second call with a different seed keeps the stored catalog.
	other := testutil.NewTestCatalog(t, testutil.NewTestChart("area_chart"))
	again, err := store.LoadOrSeed(ctx, other)
	require.NoError(t, err)
	assert.Equal(t, 8, again.Len())
}

func TestCatalogStore_SaveReplacesContents(t *testing.T) {
	ctx := context.Background()
	store := NewCatalogStore(testutil.NewTestDB(t))
	require.NoError(t, store.Save(ctx, catalog.Default(), SourceBuiltin))

	replacement := testutil.NewTestCatalog(t,
		testutil.NewTestChart("area_chart", testutil.WithCategory(domain.CategoryTrend)),
		testutil.NewTestChart("donut_chart", testutil.WithCategory(domain.CategoryComposition)),
	)
	require.NoError(t, store.Save(ctx, replacement, "custom.yaml"))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	ids := make([]string, 0, loaded.Len())
	for _, ch := range loaded.All() {
		ids = append(ids, ch.ID)
	}
	assert.Equal(t, []string{"bar_chart", "area_chart", "donut_chart"}, ids)
	assert.Empty(t, loaded.Rules())

	info, err := store.Info(ctx)
	require.NoError(t, err)
	assert.Equal(t, "custom.yaml", info.Source)
	assert.Equal(t, 0, info.Rules)
}

func TestCatalogStore_LoadEmptyStoreFailsValidation(t *testing.T) {
	store := NewCatalogStore(testutil.NewTestDB(t))

	_, err := store.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrInvalidCatalog)
}

func TestCatalogStore_InfoOnEmptyStore(t *testing.T) {
	store := NewCatalogStore(testutil.NewTestDB(t))

	info, err := store.Info(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StoreInfo{}, info)
}

package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ag-topup/internal/catalog"
	"ag-topup/internal/models"
)

func TestGetByIDReturnsEveryPackage(t *testing.T) {
	store := catalog.Default()

	for _, pkg := range store.GetAll() {
		found, ok := store.GetByID(pkg.ID)
		require.True(t, ok, "package %s should be resolvable by id", pkg.ID)
		assert.Equal(t, pkg, found)
	}
}

func TestGetByIDUnknown(t *testing.T) {
	store := catalog.Default()

	_, ok := store.GetByID("does-not-exist")
	assert.False(t, ok)
}

func TestGetByCategoryPartitionsCatalog(t *testing.T) {
	store := catalog.Default()

	categories := map[string]bool{}
	for _, pkg := range store.GetAll() {
		categories[pkg.CategoryID] = true
	}

	total := 0
	for categoryID := range categories {
		matches := store.GetByCategory(categoryID)
		for _, pkg := range matches {
			assert.Equal(t, categoryID, pkg.CategoryID)
		}
		total += len(matches)
	}

	assert.Equal(t, len(store.GetAll()), total,
		"union of categories should cover the whole catalog")
}

func TestGetByCategoryUnknownIsEmptyNotNil(t *testing.T) {
	store := catalog.Default()

	matches := store.GetByCategory("no-such-category")
	assert.NotNil(t, matches)
	assert.Empty(t, matches)
}

func TestGetDiamondPackages(t *testing.T) {
	store := catalog.Default()

	diamonds := store.GetDiamondPackages()
	require.NotEmpty(t, diamonds)
	for _, pkg := range diamonds {
		assert.Greater(t, pkg.Diamonds, 0)
	}
}

func TestGetSubscriptionPackages(t *testing.T) {
	store := catalog.Default()

	subs := store.GetSubscriptionPackages()
	require.Len(t, subs, 2)
	for _, pkg := range subs {
		assert.Equal(t, models.CategorySubscription, pkg.CategoryID)
		assert.Zero(t, pkg.Diamonds)
	}
}

func TestDefinitionOrderPreserved(t *testing.T) {
	store := catalog.Default()

	all := store.GetAll()
	require.Equal(t, len(catalog.Packages), len(all))
	for i, pkg := range catalog.Packages {
		assert.Equal(t, pkg.ID, all[i].ID)
	}
}

func TestNewStoreRejectsDuplicateIDs(t *testing.T) {
	_, err := catalog.NewStore([]models.Package{
		{ID: "dup", Price: 10},
		{ID: "dup", Price: 20},
	})
	assert.Error(t, err)
}

func TestNewStoreRejectsNegativePrice(t *testing.T) {
	_, err := catalog.NewStore([]models.Package{
		{ID: "neg", Price: -1},
	})
	assert.Error(t, err)
}

func TestExportItems(t *testing.T) {
	store := catalog.Default()

	items := store.ExportItems()
	require.Equal(t, len(store.GetAll()), len(items))

	byLabel := map[string]models.ExportItem{}
	for _, item := range items {
		byLabel[item.Label] = item
	}

	starter := byLabel["25 Diamond"]
	assert.Equal(t, "diamond", starter.Type)
	assert.Equal(t, 23, starter.Price)
	assert.Equal(t, 25, starter.Diamonds)

	weekly := byLabel["Weekly"]
	assert.Equal(t, "subscription", weekly.Type)
	assert.Equal(t, 155, weekly.Price)
}

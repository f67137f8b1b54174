package catalog

import (
	"fmt"

	"ag-topup/internal/models"
)

// Store is the immutable in-memory catalog. It is built once at startup and
// only read afterwards, which makes it safe for concurrent use without
// locking.
type Store struct {
	packages []models.Package
	byID     map[string]models.Package
}

// NewStore builds a Store from a package table. Duplicate ids are a
// configuration bug and rejected outright.
func NewStore(packages []models.Package) (*Store, error) {
	byID := make(map[string]models.Package, len(packages))
	for _, pkg := range packages {
		if pkg.ID == "" {
			return nil, fmt.Errorf("package with empty id in catalog table")
		}
		if _, exists := byID[pkg.ID]; exists {
			return nil, fmt.Errorf("duplicate package id %q in catalog table", pkg.ID)
		}
		if pkg.Price < 0 {
			return nil, fmt.Errorf("package %q has negative price %d", pkg.ID, pkg.Price)
		}
		byID[pkg.ID] = pkg
	}

	store := &Store{
		packages: make([]models.Package, len(packages)),
		byID:     byID,
	}
	copy(store.packages, packages)
	return store, nil
}

// Default returns a Store over the standard price table. The table is
// compile-time constant, so a construction error here is a programmer error.
func Default() *Store {
	store, err := NewStore(Packages)
	if err != nil {
		panic(err)
	}
	return store
}

// GetAll returns the full catalog in definition order.
func (s *Store) GetAll() []models.Package {
	out := make([]models.Package, len(s.packages))
	copy(out, s.packages)
	return out
}

// GetByID returns the package with the given id, or false when unknown.
func (s *Store) GetByID(id string) (models.Package, bool) {
	pkg, ok := s.byID[id]
	return pkg, ok
}

// GetByCategory returns all packages in the category, preserving definition
// order. An unknown category yields an empty slice, not an error.
func (s *Store) GetByCategory(categoryID string) []models.Package {
	out := []models.Package{}
	for _, pkg := range s.packages {
		if pkg.CategoryID == categoryID {
			out = append(out, pkg)
		}
	}
	return out
}

// GetDiamondPackages returns every package that grants diamonds, combos
// included.
func (s *Store) GetDiamondPackages() []models.Package {
	out := []models.Package{}
	for _, pkg := range s.packages {
		if pkg.IsDiamond() {
			out = append(out, pkg)
		}
	}
	return out
}

// GetSubscriptionPackages returns the subscription plans.
func (s *Store) GetSubscriptionPackages() []models.Package {
	return s.GetByCategory(models.CategorySubscription)
}

// GetComboPackages returns the combo offers.
func (s *Store) GetComboPackages() []models.Package {
	return s.GetByCategory(models.CategoryCombo)
}

// ExportItems returns the flat integration view of the catalog.
func (s *Store) ExportItems() []models.ExportItem {
	items := make([]models.ExportItem, 0, len(s.packages))
	for _, pkg := range s.packages {
		typ := "subscription"
		if pkg.IsDiamond() {
			typ = "diamond"
		}
		items = append(items, models.ExportItem{
			Type:        typ,
			Label:       pkg.NameEn,
			Price:       pkg.Price,
			Diamonds:    pkg.Diamonds,
			Description: pkg.Description,
		})
	}
	return items
}

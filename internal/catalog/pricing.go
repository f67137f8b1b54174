package catalog

import (
	"math"
)

// ComboValidation is the result of checking a claimed combo price against the
// catalog. ExpectedPrice is the authoritative sale price; DiscountPercent is
// the display value and must never authorize anything on its own.
type ComboValidation struct {
	Valid           bool `json:"valid"`
	ExpectedPrice   int  `json:"expectedPrice"`
	DiscountPercent int  `json:"discountPercent"`
}

// ValidatePricing reports whether packageID exists and its catalog price
// equals claimedPrice. Unknown package and price mismatch are deliberately
// indistinguishable: either way the submission is not to be trusted.
func (s *Store) ValidatePricing(packageID string, claimedPrice int) bool {
	pkg, ok := s.GetByID(packageID)
	if !ok {
		return false
	}
	return pkg.Price == claimedPrice
}

// ValidateComboPricing recomputes a combo's expected price and discount from
// the catalog alone. When the combo lists constituent packages, the reference
// (pre-discount) price is recomputed as the sum of the constituents' list
// prices rather than read from the combo row; a stored OriginalPrice that
// disagrees with that sum invalidates the combo. No external price feed is
// ever consulted.
func (s *Store) ValidateComboPricing(packageID string, claimedPrice int) ComboValidation {
	pkg, ok := s.GetByID(packageID)
	if !ok || !pkg.IsCombo() {
		return ComboValidation{}
	}

	reference := pkg.OriginalPrice
	if len(pkg.ComboOf) > 0 {
		sum := 0
		for _, constituentID := range pkg.ComboOf {
			constituent, found := s.GetByID(constituentID)
			if !found {
				return ComboValidation{}
			}
			sum += constituent.Price
		}
		if pkg.OriginalPrice != 0 && pkg.OriginalPrice != sum {
			return ComboValidation{}
		}
		reference = sum
	}

	if reference <= 0 || pkg.Price >= reference {
		// Discount math is only meaningful when price < originalPrice.
		return ComboValidation{}
	}

	return ComboValidation{
		Valid:           claimedPrice == pkg.Price,
		ExpectedPrice:   pkg.Price,
		DiscountPercent: DiscountPercent(pkg.Price, reference),
	}
}

// DiscountPercent computes the informational percentage-off shown next to
// discounted packages: round((originalPrice - price) / originalPrice * 100).
func DiscountPercent(price, originalPrice int) int {
	if originalPrice <= 0 {
		return 0
	}
	return int(math.Round(float64(originalPrice-price) / float64(originalPrice) * 100))
}

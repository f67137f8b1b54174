package models

// Category ids used by the catalog. "weekly-monthly" is the combo category;
// combo packages carry OriginalPrice and optionally the constituent package ids.
const (
	CategoryDiamond      = "diamond"
	CategorySubscription = "subscription"
	CategoryCombo        = "weekly-monthly"
)

// Package is a purchasable catalog item. The set is defined at process start
// and never mutated afterwards. Price is the authoritative sale amount in
// whole Taka.
type Package struct {
	ID            string   `json:"id"`
	CategoryID    string   `json:"categoryId"`
	Name          string   `json:"name"`
	NameEn        string   `json:"nameEn"`
	Diamonds      int      `json:"diamonds,omitempty"`
	Price         int      `json:"price"`
	OriginalPrice int      `json:"originalPrice,omitempty"`
	Badge         string   `json:"badge,omitempty"`
	BadgeColor    string   `json:"badgeColor,omitempty"`
	Description   string   `json:"description,omitempty"`
	Validity      string   `json:"validity,omitempty"`
	ComboOf       []string `json:"comboOf,omitempty"`
}

// IsDiamond reports whether the package grants diamonds (subscription plans
// and passes do not).
func (p Package) IsDiamond() bool {
	return p.Diamonds > 0
}

// IsCombo reports whether the package belongs to the combo category.
func (p Package) IsCombo() bool {
	return p.CategoryID == CategoryCombo
}

// ExportItem is the flat shape served on /api/packages/json for external
// integrations.
type ExportItem struct {
	Type        string `json:"type"`
	Label       string `json:"label"`
	Price       int    `json:"price"`
	Diamonds    int    `json:"diamonds,omitempty"`
	Description string `json:"description,omitempty"`
}

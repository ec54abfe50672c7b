package domain

import "github.com/shopspring/decimal"

type StoreKind string

const (
	// StoreShop checkouts collect a delivery address.
	StoreShop StoreKind = "shop"
	// StoreSalon checkouts collect a preferred appointment date and time.
	StoreSalon StoreKind = "salon"
)

// AddOn is the optional extra service: a flat surcharge limited to a closed
// set of categories.
type AddOn struct {
	Label      string
	Amount     decimal.Decimal
	Categories []string
}

func (a AddOn) AppliesTo(category string) bool {
	for _, c := range a.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Store is the per-deployment profile: which storefront variant runs, where
// order messages go, and how prices are displayed.
type Store struct {
	Kind     StoreKind
	Name     string
	Currency string // price prefix, e.g. "R"
	AddOn    AddOn
}

// FormatPrice renders a currency-prefixed amount with exactly two decimals,
// standard rounding. Totals are summed exactly and formatted once, here.
func (s Store) FormatPrice(v decimal.Decimal) string {
	return s.Currency + v.StringFixed(2)
}

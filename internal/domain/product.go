package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PricingKind string

const (
	PricingFlat     PricingKind = "flat"
	PricingByOption PricingKind = "by_option"
	PricingByMatrix PricingKind = "by_matrix"
)

// Pricing is a tagged variant: Kind selects which table is authoritative.
// Base is always defined and is the fallback when the table has no entry for
// the selection.
type Pricing struct {
	Kind     PricingKind                           `json:"kind"`
	Base     decimal.Decimal                       `json:"base"`
	ByOption map[string]decimal.Decimal            `json:"byOption,omitempty"`
	ByMatrix map[string]map[string]decimal.Decimal `json:"byMatrix,omitempty"`
}

// UnitPrice resolves the pre-surcharge price for a selection. First match
// wins: matrix pair, then single-axis entry, then Base.
func (pr Pricing) UnitPrice(sel Selection) decimal.Decimal {
	switch pr.Kind {
	case PricingByMatrix:
		if sel.Primary != "" && sel.Secondary != "" {
			if row, ok := pr.ByMatrix[sel.Primary]; ok {
				if v, ok := row[sel.Secondary]; ok {
					return v
				}
			}
		}
	case PricingByOption:
		if sel.Secondary != "" {
			if v, ok := pr.ByOption[sel.Secondary]; ok {
				return v
			}
		}
	}
	return pr.Base
}

type Product struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Slug             string    `gorm:"uniqueIndex;size:140"`
	Name             string    `gorm:"size:180"`
	Category         string    `gorm:"size:100;index"`
	ShortDesc        string    `gorm:"type:text"`
	Featured         bool      `gorm:"default:false;index"`
	PrimaryLabel     string    `gorm:"size:60"`
	SecondaryLabel   string    `gorm:"size:60"`
	PrimaryOptions   []string  `gorm:"type:jsonb;serializer:json"`
	SecondaryOptions []string  `gorm:"type:jsonb;serializer:json"`
	Pricing          Pricing   `gorm:"type:jsonb;serializer:json"`
	Images           []Image
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type Image struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;index"`
	URL       string    `gorm:"size:255"`
	Alt       string    `gorm:"size:140"`
	CreatedAt time.Time
}

// Selection is the shopper's pick on each option axis. An empty label means
// no explicit pick was made for that axis.
type Selection struct {
	Primary   string `json:"primary,omitempty"`
	Secondary string `json:"secondary,omitempty"`
}

// DefaultSelection is the first label of each non-empty axis. The UI
// preselects it; it is never substituted for a missing pick on a required
// axis, which stays a validation error.
func (p *Product) DefaultSelection() Selection {
	var sel Selection
	if len(p.PrimaryOptions) > 0 {
		sel.Primary = p.PrimaryOptions[0]
	}
	if len(p.SecondaryOptions) > 0 {
		sel.Secondary = p.SecondaryOptions[0]
	}
	return sel
}

func (p *Product) RequiresPrimary() bool   { return len(p.PrimaryOptions) > 0 }
func (p *Product) RequiresSecondary() bool { return len(p.SecondaryOptions) > 0 }

// ResolvePrice computes the unit price to charge for a product and selection,
// including the add-on surcharge when the product's category is eligible and
// the add-on was requested. Pure function; always returns a defined price.
func ResolvePrice(p *Product, sel Selection, addOn bool, extra AddOn) decimal.Decimal {
	price := p.Pricing.UnitPrice(sel)
	if addOn && extra.AppliesTo(p.Category) {
		price = price.Add(extra.Amount)
	}
	return price
}

type ProductFilter struct {
	Category string
	Featured bool
	Page     int
	PageSize int
}

type ProductRepo interface {
	List(ctx context.Context, f ProductFilter) ([]Product, int64, error)
	FindBySlug(ctx context.Context, slug string) (*Product, error)
	Save(ctx context.Context, p *Product) error
	DeleteBySlug(ctx context.Context, slug string) error
	DistinctCategories(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
}

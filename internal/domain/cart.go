package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLine captures the product by value at add time. Catalog edits after
// that do not touch existing lines; UnitPrice is frozen when the line is
// created and never recomputed.
type CartLine struct {
	ProductID      uuid.UUID       `json:"productId"`
	Slug           string          `json:"slug"`
	Name           string          `json:"name"`
	Image          string          `json:"image,omitempty"`
	Category       string          `json:"category"`
	PrimaryLabel   string          `json:"primaryLabel,omitempty"`
	SecondaryLabel string          `json:"secondaryLabel,omitempty"`
	Primary        string          `json:"primary,omitempty"`
	Secondary      string          `json:"secondary,omitempty"`
	AddOn          bool            `json:"addOn,omitempty"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	Qty            int             `json:"qty"`
}

func (l CartLine) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Qty)))
}

// Cart is an ordered sequence of lines. Adds always append; identical
// selections stay separate lines.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// Add validates that every non-empty axis has a pick, resolves the unit price
// and appends a quantity-1 line. The cart is left unchanged on error.
func (c *Cart) Add(p *Product, sel Selection, addOn bool, extra AddOn) error {
	if p.RequiresPrimary() && sel.Primary == "" {
		return &MissingSelectionError{Axis: p.PrimaryLabel}
	}
	if p.RequiresSecondary() && sel.Secondary == "" {
		return &MissingSelectionError{Axis: p.SecondaryLabel}
	}
	line := CartLine{
		ProductID:      p.ID,
		Slug:           p.Slug,
		Name:           p.Name,
		Category:       p.Category,
		PrimaryLabel:   p.PrimaryLabel,
		SecondaryLabel: p.SecondaryLabel,
		Primary:        sel.Primary,
		Secondary:      sel.Secondary,
		AddOn:          addOn && extra.AppliesTo(p.Category),
		UnitPrice:      ResolvePrice(p, sel, addOn, extra),
		Qty:            1,
	}
	if len(p.Images) > 0 {
		line.Image = p.Images[0].URL
	}
	c.Lines = append(c.Lines, line)
	return nil
}

func (c *Cart) Remove(i int) error {
	if i < 0 || i >= len(c.Lines) {
		return ErrNoSuchLine
	}
	c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	return nil
}

// SetQuantity rejects quantities below 1; the line keeps its current quantity
// rather than being clamped or removed.
func (c *Cart) SetQuantity(i, qty int) error {
	if i < 0 || i >= len(c.Lines) {
		return ErrNoSuchLine
	}
	if qty < 1 {
		return ErrInvalidQuantity
	}
	c.Lines[i].Qty = qty
	return nil
}

func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.Total())
	}
	return total
}

func (c *Cart) Len() int    { return len(c.Lines) }
func (c *Cart) Empty() bool { return len(c.Lines) == 0 }
func (c *Cart) Clear()      { c.Lines = nil }

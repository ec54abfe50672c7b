package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func matrixProduct() *Product {
	return &Product{
		ID:               uuid.New(),
		Slug:             "knotless-braids",
		Name:             "Knotless Braids",
		Category:         "braids",
		PrimaryLabel:     "Size",
		SecondaryLabel:   "Length/Style",
		PrimaryOptions:   []string{"Small", "Medium"},
		SecondaryOptions: []string{"Short", "Medium", "Long"},
		Pricing: Pricing{
			Kind: PricingByMatrix,
			Base: dec(250),
			ByMatrix: map[string]map[string]decimal.Decimal{
				"Small":  {"Short": dec(350), "Medium": dec(450), "Long": dec(500)},
				"Medium": {"Short": dec(250), "Medium": dec(350), "Long": dec(400)},
			},
		},
	}
}

func optionProduct() *Product {
	return &Product{
		ID:               uuid.New(),
		Slug:             "cornrows",
		Name:             "Cornrows",
		Category:         "cornrows",
		SecondaryLabel:   "Style",
		SecondaryOptions: []string{"Free hand", "Styled"},
		Pricing: Pricing{
			Kind:     PricingByOption,
			Base:     dec(100),
			ByOption: map[string]decimal.Decimal{"Free hand": dec(100), "Styled": dec(120)},
		},
	}
}

func flatProduct() *Product {
	return &Product{
		ID:       uuid.New(),
		Slug:     "wig-installation",
		Name:     "Wig Installation",
		Category: "service",
		Pricing:  Pricing{Kind: PricingFlat, Base: dec(150)},
	}
}

func hairWash() AddOn {
	return AddOn{Label: "Hair Wash", Amount: dec(50), Categories: []string{"braids", "cornrows"}}
}

func TestUnitPriceMatrix(t *testing.T) {
	p := matrixProduct()

	got := p.Pricing.UnitPrice(Selection{Primary: "Small", Secondary: "Medium"})
	assert.True(t, got.Equal(dec(450)), "got %s", got)

	// the table value wins regardless of Base
	got = p.Pricing.UnitPrice(Selection{Primary: "Medium", Secondary: "Long"})
	assert.True(t, got.Equal(dec(400)))
}

func TestUnitPriceMatrixFallsBackToBase(t *testing.T) {
	p := matrixProduct()

	cases := []Selection{
		{},                                // nothing chosen
		{Primary: "Small"},                // secondary missing
		{Secondary: "Long"},               // primary missing
		{Primary: "X", Secondary: "Long"}, // pair absent
	}
	for _, sel := range cases {
		got := p.Pricing.UnitPrice(sel)
		assert.True(t, got.Equal(dec(250)), "sel %+v got %s", sel, got)
	}
}

func TestUnitPriceByOption(t *testing.T) {
	p := optionProduct()

	got := p.Pricing.UnitPrice(Selection{Secondary: "Styled"})
	assert.True(t, got.Equal(dec(120)))

	// a primary pick is ignored when only a single-axis table exists
	got = p.Pricing.UnitPrice(Selection{Primary: "whatever", Secondary: "Styled"})
	assert.True(t, got.Equal(dec(120)))

	got = p.Pricing.UnitPrice(Selection{Secondary: "Unknown"})
	assert.True(t, got.Equal(dec(100)))
}

func TestUnitPriceFlat(t *testing.T) {
	p := flatProduct()
	got := p.Pricing.UnitPrice(Selection{Primary: "a", Secondary: "b"})
	assert.True(t, got.Equal(dec(150)))
}

func TestResolvePriceAddOn(t *testing.T) {
	extra := hairWash()

	// eligible category: surcharge is added on top of every resolution path
	p := matrixProduct()
	base := ResolvePrice(p, Selection{Primary: "Small", Secondary: "Medium"}, false, extra)
	withAddOn := ResolvePrice(p, Selection{Primary: "Small", Secondary: "Medium"}, true, extra)
	assert.True(t, withAddOn.Sub(base).Equal(dec(50)))

	flat := flatProduct() // category "service" is not eligible
	got := ResolvePrice(flat, Selection{}, true, extra)
	assert.True(t, got.Equal(dec(150)))
}

func TestResolvePriceAddOnOnBase(t *testing.T) {
	p := &Product{Category: "braids", Pricing: Pricing{Kind: PricingFlat, Base: dec(150)}}
	got := ResolvePrice(p, Selection{}, true, hairWash())
	assert.True(t, got.Equal(dec(200)), "got %s", got)
}

func TestDefaultSelection(t *testing.T) {
	p := matrixProduct()
	sel := p.DefaultSelection()
	assert.Equal(t, Selection{Primary: "Small", Secondary: "Short"}, sel)

	// no axes, no defaults
	assert.Equal(t, Selection{}, flatProduct().DefaultSelection())

	assert.True(t, p.RequiresPrimary())
	assert.True(t, p.RequiresSecondary())
	assert.False(t, flatProduct().RequiresPrimary())
}

package app

import (
	"github.com/shopspring/decimal"

	"github.com/laureta/storefront/internal/domain"
)

func dec(v string) decimal.Decimal {
	d, err := decimal.NewFromString(v)
	if err != nil {
		panic(err)
	}
	return d
}

func imgs(urls ...string) []domain.Image {
	out := make([]domain.Image, 0, len(urls))
	for _, u := range urls {
		out = append(out, domain.Image{URL: u})
	}
	return out
}

// shopCatalog is the diffuser storefront's starter catalog. Every product is
// flat priced; scent and size picks are recorded on the cart line but do not
// change the price.
func shopCatalog() []domain.Product {
	return []domain.Product{
		{
			Name:             "Lavender",
			Category:         "home",
			Featured:         true,
			ShortDesc:        "Transform your space into a tranquil sanctuary with our signature Lavender Dreams diffuser. Expertly crafted with pure essential oils.",
			PrimaryLabel:     "Scent",
			SecondaryLabel:   "Size",
			PrimaryOptions:   []string{"Lavender", "Vanilla"},
			SecondaryOptions: []string{"100ml", "200ml"},
			Pricing:          domain.Pricing{Kind: domain.PricingFlat, Base: dec("349.99")},
			Images:           imgs("/images/products/home-diffusers/lavender-dreams-1.jpg", "/images/products/home-diffusers/lavender-dreams-2.jpg"),
		},
		{
			Name:             "Ocean Breeze",
			Category:         "home",
			Featured:         true,
			ShortDesc:        "Bring the refreshing essence of coastal waves into your home with this crisp, clean fragrance.",
			PrimaryLabel:     "Scent",
			SecondaryLabel:   "Size",
			PrimaryOptions:   []string{"Sea Salt", "Ocean Mist", "Coastal Breeze"},
			SecondaryOptions: []string{"100ml", "200ml", "500ml"},
			Pricing:          domain.Pricing{Kind: domain.PricingFlat, Base: dec("349.99")},
			Images:           imgs("/images/products/home-diffusers/ocean-breeze-1.jpg"),
		},
		{
			Name:             "Vanilla Sunset",
			Category:         "home",
			ShortDesc:        "Indulge in the warm, comforting embrace of premium vanilla with hints of amber and sandalwood.",
			PrimaryLabel:     "Scent",
			SecondaryLabel:   "Size",
			PrimaryOptions:   []string{"Madagascar Vanilla", "Vanilla Amber", "Caramel Vanilla"},
			SecondaryOptions: []string{"100ml", "200ml", "500ml"},
			Pricing:          domain.Pricing{Kind: domain.PricingFlat, Base: dec("379.99")},
			Images:           imgs("/images/products/home-diffusers/vanilla-sunset-1.jpg"),
		},
		{
			Name:             "Fresh Citrus Drive",
			Category:         "car",
			Featured:         true,
			ShortDesc:        "Energize your daily commute with invigorating citrus notes that keep you alert and refreshed.",
			PrimaryLabel:     "Scent",
			SecondaryLabel:   "Size",
			PrimaryOptions:   []string{"Lemon Zest", "Orange Burst", "Grapefruit"},
			SecondaryOptions: []string{"50ml", "100ml"},
			Pricing:          domain.Pricing{Kind: domain.PricingFlat, Base: dec("199.99")},
			Images:           imgs("/images/products/car-diffusers/fresh-citrus-1.jpg"),
		},
		{
			Name:             "Cool Mint Journey",
			Category:         "car",
			ShortDesc:        "Experience crisp, cooling mint that eliminates odors and creates a fresh atmosphere.",
			PrimaryLabel:     "Scent",
			SecondaryLabel:   "Size",
			PrimaryOptions:   []string{"Peppermint", "Spearmint", "Eucalyptus Mint"},
			SecondaryOptions: []string{"50ml", "100ml"},
			Pricing:          domain.Pricing{Kind: domain.PricingFlat, Base: dec("199.99")},
			Images:           imgs("/images/products/car-diffusers/cool-mint-1.jpg"),
		},
		{
			Name:             "Cedar & Sage",
			Category:         "home",
			ShortDesc:        "Sophisticated woody notes blended with aromatic sage create an elegant, grounding atmosphere.",
			PrimaryLabel:     "Scent",
			SecondaryLabel:   "Size",
			PrimaryOptions:   []string{"Cedar", "White Sage", "Cedar Sage Blend"},
			SecondaryOptions: []string{"100ml", "200ml", "500ml"},
			Pricing:          domain.Pricing{Kind: domain.PricingFlat, Base: dec("399.99")},
			Images:           imgs("/images/products/home-diffusers/cedar-sage-1.jpg"),
		},
	}
}

// salonCatalog is the braiding salon's starter catalog. Braids are priced on
// a size-by-length matrix, cornrows on style alone, and the rest flat.
func salonCatalog() []domain.Product {
	return []domain.Product{
		{
			Name:             "Knotless Braids",
			Category:         "braids",
			Featured:         true,
			ShortDesc:        "Neat, lightweight knotless braids with a natural finish.",
			PrimaryLabel:     "Size",
			SecondaryLabel:   "Length",
			PrimaryOptions:   []string{"Small", "Medium"},
			SecondaryOptions: []string{"Short", "Medium", "Long"},
			Pricing: domain.Pricing{
				Kind: domain.PricingByMatrix,
				Base: dec("250"),
				ByMatrix: map[string]map[string]decimal.Decimal{
					"Small":  {"Short": dec("350"), "Medium": dec("450"), "Long": dec("500")},
					"Medium": {"Short": dec("250"), "Medium": dec("350"), "Long": dec("400")},
				},
			},
			Images: imgs("https://res.cloudinary.com/dorbolgjy/image/upload/v1767890462/unknown-34-652da0770bbac_vw5yo5.avif"),
		},
		{
			Name:             "Fulani Braids",
			Category:         "braids",
			Featured:         true,
			ShortDesc:        "Fulani braids with clean parts and beautiful detailing.",
			PrimaryLabel:     "Size",
			SecondaryLabel:   "Length",
			PrimaryOptions:   []string{"Small"},
			SecondaryOptions: []string{"Short", "Medium", "Long"},
			Pricing: domain.Pricing{
				Kind: domain.PricingByMatrix,
				Base: dec("350"),
				ByMatrix: map[string]map[string]decimal.Decimal{
					"Small": {"Short": dec("350"), "Medium": dec("350"), "Long": dec("400")},
				},
			},
			Images: imgs("https://res.cloudinary.com/dorbolgjy/image/upload/v1767890463/Fulani_braids_curls_2669576937402_yu6s0u.jpg"),
		},
		{
			Name:             "Straight Back / Up Braids",
			Category:         "braids",
			Featured:         true,
			ShortDesc:        "Straight-back or up-do braids: clean, protective, and stylish.",
			PrimaryLabel:     "Size",
			SecondaryLabel:   "Length",
			PrimaryOptions:   []string{"Small", "Medium"},
			SecondaryOptions: []string{"Short", "Medium", "Long"},
			Pricing: domain.Pricing{
				Kind: domain.PricingByMatrix,
				Base: dec("150"),
				ByMatrix: map[string]map[string]decimal.Decimal{
					"Small":  {"Short": dec("200"), "Medium": dec("200"), "Long": dec("250")},
					"Medium": {"Short": dec("150"), "Medium": dec("150"), "Long": dec("200")},
				},
			},
			Images: imgs("https://res.cloudinary.com/dorbolgjy/image/upload/v1767890462/Cornrow-Braid-Hairstyles_ucrhgd.jpg"),
		},
		{
			Name:             "Cornrows",
			Category:         "cornrows",
			ShortDesc:        "Classic cornrows: free hand or styled patterns.",
			SecondaryLabel:   "Style",
			SecondaryOptions: []string{"Free hand", "Styled"},
			Pricing: domain.Pricing{
				Kind: domain.PricingByOption,
				Base: dec("100"),
				ByOption: map[string]decimal.Decimal{
					"Free hand": dec("100"),
					"Styled":    dec("120"),
				},
			},
			Images: imgs("https://res.cloudinary.com/dorbolgjy/image/upload/v1767890462/gettyimages-992659140-1641498755_ec9hxm.avif"),
		},
		{
			Name:      "Curls (Add-on)",
			Category:  "addon",
			ShortDesc: "Curls add-on to finish your style.",
			Pricing:   domain.Pricing{Kind: domain.PricingFlat, Base: dec("50")},
			Images:    imgs("https://res.cloudinary.com/dorbolgjy/image/upload/v1767890463/Fulani_braids_curls_2669576937402_yu6s0u.jpg"),
		},
		{
			Name:      "Wig Installation",
			Category:  "service",
			ShortDesc: "Professional wig installation and styling.",
			Pricing:   domain.Pricing{Kind: domain.PricingFlat, Base: dec("150")},
			Images:    imgs("https://res.cloudinary.com/dorbolgjy/image/upload/v1768302901/79B4B8E1-ECF4-4AC5-8203-3A0812F6B78B_cavbso.webp"),
		},
		{
			Name:      "Gel on Nails",
			Category:  "service",
			ShortDesc: "Gel nail application for beautiful, long-lasting nails.",
			Pricing:   domain.Pricing{Kind: domain.PricingFlat, Base: dec("50")},
			Images:    imgs("https://res.cloudinary.com/dorbolgjy/image/upload/v1768302895/gelmanicure-07a728f93173488aac4d90206529ab87_tq5yqw.png"),
		},
	}
}

package app

import (
	"context"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"

	"github.com/laureta/storefront/internal/adapters/httpserver"
	"github.com/laureta/storefront/internal/adapters/messaging/whatsapp"
	"github.com/laureta/storefront/internal/adapters/repo/memory"
	"github.com/laureta/storefront/internal/adapters/repo/postgres"
	"github.com/laureta/storefront/internal/config"
	"github.com/laureta/storefront/internal/domain"
	"github.com/laureta/storefront/internal/usecase"
)

type App struct {
	DB          *gorm.DB
	Store       domain.Store
	Products    domain.ProductRepo
	CatalogUC   *usecase.CatalogUC
	CheckoutUC  *usecase.CheckoutUC
	OAuthConfig *oauth2.Config

	cfg *config.Config
}

// NewApp wires the storefront. db may be nil, in which case the catalog is
// held in memory and seeded on every start.
func NewApp(cfg *config.Config, db *gorm.DB) (*App, error) {
	store := domain.Store{
		Kind:     domain.StoreKind(cfg.Store.Kind),
		Name:     cfg.Store.Name,
		Currency: cfg.Store.Currency,
		AddOn: domain.AddOn{
			Label:      cfg.Store.AddOnLabel,
			Amount:     cfg.Store.AddOnAmount,
			Categories: cfg.Store.AddOnCategories,
		},
	}

	var products domain.ProductRepo
	if db != nil {
		products = postgres.NewProductRepo(db)
	} else {
		products = memory.NewProductRepo()
	}

	var oauthCfg *oauth2.Config
	if cfg.Google.ClientID != "" && cfg.Google.ClientSecret != "" {
		oauthCfg = &oauth2.Config{
			ClientID:     cfg.Google.ClientID,
			ClientSecret: cfg.Google.ClientSecret,
			RedirectURL:  cfg.BaseURL + "/auth/google/callback",
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		}
	}

	gateway := whatsapp.NewGateway(cfg.Store.WhatsApp)

	return &App{
		DB:          db,
		Store:       store,
		Products:    products,
		CatalogUC:   &usecase.CatalogUC{Products: products},
		CheckoutUC:  &usecase.CheckoutUC{Products: products, Store: store, Channel: gateway},
		OAuthConfig: oauthCfg,
		cfg:         cfg,
	}, nil
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(a.CatalogUC, a.CheckoutUC, a.Store, httpserver.Options{
		SessionKey:  a.cfg.SessionKey,
		AdminSecret: a.cfg.AdminSecret,
		AdminEmails: a.cfg.AdminEmails,
		OAuth:       a.OAuthConfig,
	})
}

// MigrateAndSeed creates the schema and, when the catalog is empty, loads the
// starter catalog for the configured store variant.
func (a *App) MigrateAndSeed() error {
	if a.DB != nil {
		if err := a.DB.AutoMigrate(&domain.Product{}, &domain.Image{}); err != nil {
			return err
		}
		_ = a.DB.Exec("CREATE INDEX IF NOT EXISTS idx_products_category ON products(category)").Error
		_ = a.DB.Exec("CREATE INDEX IF NOT EXISTS idx_products_featured ON products(featured)").Error
	}

	ctx := context.Background()
	n, err := a.Products.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	var seed []domain.Product
	switch a.Store.Kind {
	case domain.StoreSalon:
		seed = salonCatalog()
	default:
		seed = shopCatalog()
	}
	for i := range seed {
		if err := (&usecase.CatalogUC{Products: a.Products}).Create(ctx, &seed[i]); err != nil {
			return err
		}
	}
	return nil
}

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"

	"github.com/laureta/storefront/internal/domain"
	"github.com/laureta/storefront/internal/usecase"
)

type Server struct {
	mux      *http.ServeMux
	catalog  *usecase.CatalogUC
	checkout *usecase.CheckoutUC
	store    domain.Store
	oauthCfg *oauth2.Config

	sessionKey   []byte
	adminSecret  []byte
	adminAllowed map[string]struct{}
}

type Options struct {
	SessionKey  string
	AdminSecret string
	AdminEmails []string
	OAuth       *oauth2.Config
}

func New(catalog *usecase.CatalogUC, checkout *usecase.CheckoutUC, store domain.Store, opts Options) http.Handler {
	s := &Server{
		mux:      http.NewServeMux(),
		catalog:  catalog,
		checkout: checkout,
		store:    store,
		oauthCfg: opts.OAuth,
	}

	sessionKey := opts.SessionKey
	if sessionKey == "" {
		sessionKey = "dev-insecure"
	}
	s.sessionKey = []byte(sessionKey)

	adminSecret := opts.AdminSecret
	if adminSecret == "" {
		adminSecret = sessionKey
	}
	s.adminSecret = []byte(adminSecret)

	s.adminAllowed = map[string]struct{}{}
	for _, e := range opts.AdminEmails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			s.adminAllowed[e] = struct{}{}
		}
	}

	s.routes()
	return Chain(s.mux,
		RateLimit(120),
		Gzip,
		RequestID,
		Recovery,
		Logging,
	)
}

func (s *Server) routes() {
	s.mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, map[string]string{"status": "ok"})
	})

	s.mux.HandleFunc("/api/store", s.apiStore)
	s.mux.HandleFunc("/api/products", s.apiProducts)
	s.mux.HandleFunc("/api/products/", s.apiProductBySlug)
	s.mux.HandleFunc("/api/categories", s.apiCategories)

	s.mux.HandleFunc("/api/cart", s.apiCart)
	s.mux.HandleFunc("/api/cart/add", s.apiCartAdd)
	s.mux.HandleFunc("/api/cart/remove", s.apiCartRemove)
	s.mux.HandleFunc("/api/cart/quantity", s.apiCartQuantity)

	s.mux.HandleFunc("/api/checkout/begin", s.apiCheckoutBegin)
	s.mux.HandleFunc("/api/checkout/back", s.apiCheckoutBack)
	s.mux.HandleFunc("/api/checkout/submit", s.apiCheckoutSubmit)

	s.mux.HandleFunc("/auth/google/login", s.handleGoogleLogin)
	s.mux.HandleFunc("/auth/google/callback", s.handleGoogleCallback)
	s.mux.HandleFunc("/admin/logout", s.handleAdminLogout)

	s.mux.HandleFunc("/admin/export/xlsx", s.handleAdminExportXLSX)
	s.mux.HandleFunc("/admin/import/xlsx", s.handleAdminImportXLSX)
	s.mux.HandleFunc("/admin/products/", s.handleAdminProduct)
}

func (s *Server) apiStore(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, 200, map[string]any{
		"name":     s.store.Name,
		"kind":     s.store.Kind,
		"currency": s.store.Currency,
		"addOn": map[string]any{
			"label":      s.store.AddOn.Label,
			"amount":     s.store.AddOn.Amount,
			"categories": s.store.AddOn.Categories,
		},
	})
}

func (s *Server) apiProducts(w http.ResponseWriter, r *http.Request) {
	f := domain.ProductFilter{
		Category: r.URL.Query().Get("category"),
		Featured: r.URL.Query().Get("featured") == "true",
	}
	f.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	f.PageSize, _ = strconv.Atoi(r.URL.Query().Get("page_size"))

	list, total, err := s.catalog.List(r.Context(), f)
	if err != nil {
		log.Error().Err(err).Msg("list products")
		http.Error(w, "err", 500)
		return
	}
	views := make([]productView, 0, len(list))
	for i := range list {
		views = append(views, s.productToView(&list[i]))
	}
	writeJSON(w, 200, map[string]any{"items": views, "total": total})
}

func (s *Server) apiProductBySlug(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimPrefix(r.URL.Path, "/api/products/")
	if slug == "" || strings.Contains(slug, "/") {
		http.NotFound(w, r)
		return
	}
	p, err := s.catalog.GetBySlug(r.Context(), slug)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, 200, s.productToView(p))
}

func (s *Server) apiCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := s.catalog.Categories(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("categories")
		http.Error(w, "err", 500)
		return
	}
	writeJSON(w, 200, map[string]any{"categories": cats})
}

func (s *Server) apiCart(w http.ResponseWriter, r *http.Request) {
	sess := s.readSession(r)
	writeJSON(w, 200, s.cartView(sess))
}

func (s *Server) apiCartAdd(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	var req struct {
		Slug      string `json:"slug"`
		Primary   string `json:"primary"`
		Secondary string `json:"secondary"`
		AddOn     bool   `json:"addOn"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", 400)
		return
	}
	sess := s.readSession(r)
	sel := domain.Selection{Primary: strings.TrimSpace(req.Primary), Secondary: strings.TrimSpace(req.Secondary)}
	if err := s.checkout.AddLine(r.Context(), sess, req.Slug, sel, req.AddOn); err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeSession(w, sess)
	writeJSON(w, 200, s.cartView(sess))
}

func (s *Server) apiCartRemove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	var req struct {
		Index int `json:"index"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", 400)
		return
	}
	sess := s.readSession(r)
	if err := s.checkout.RemoveLine(sess, req.Index); err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeSession(w, sess)
	writeJSON(w, 200, s.cartView(sess))
}

func (s *Server) apiCartQuantity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	var req struct {
		Index int `json:"index"`
		Qty   int `json:"qty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", 400)
		return
	}
	sess := s.readSession(r)
	err := s.checkout.SetQuantity(sess, req.Index, req.Qty)
	if err != nil && !errors.Is(err, domain.ErrInvalidQuantity) {
		// quantities below 1 are a silent no-op; the cart comes back unchanged
		s.writeDomainError(w, err)
		return
	}
	s.writeSession(w, sess)
	writeJSON(w, 200, s.cartView(sess))
}

func (s *Server) apiCheckoutBegin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	sess := s.readSession(r)
	if err := s.checkout.Begin(sess); err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeSession(w, sess)
	writeJSON(w, 200, s.cartView(sess))
}

func (s *Server) apiCheckoutBack(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	sess := s.readSession(r)
	s.checkout.Back(sess)
	s.writeSession(w, sess)
	writeJSON(w, 200, s.cartView(sess))
}

func (s *Server) apiCheckoutSubmit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	var contact domain.CustomerContact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		http.Error(w, "bad json", 400)
		return
	}
	if contact.Method == "" {
		contact.Method = domain.ContactWhatsApp
	}
	if !contact.Method.Valid() {
		writeJSON(w, 422, map[string]string{"error": "unknown contact method"})
		return
	}
	sess := s.readSession(r)
	sub, err := s.checkout.Submit(sess, contact)
	if err != nil {
		// the session keeps whatever the shopper typed so far
		s.writeSession(w, sess)
		s.writeDomainError(w, err)
		return
	}
	s.writeSession(w, sess)
	writeJSON(w, 200, sub)
}

func (s *Server) handleAdminProduct(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	slug := strings.TrimPrefix(r.URL.Path, "/admin/products/")
	if slug == "" || strings.Contains(slug, "/") {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodDelete {
		http.Error(w, "method", 405)
		return
	}
	if err := s.catalog.DeleteBySlug(r.Context(), slug); err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, 200, map[string]string{"deleted": slug})
}

func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	var missingSel *domain.MissingSelectionError
	var missingContact *domain.MissingContactError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, 404, map[string]string{"error": "not found"})
	case errors.Is(err, domain.ErrNoSuchLine):
		writeJSON(w, 404, map[string]string{"error": err.Error()})
	case errors.As(err, &missingSel), errors.As(err, &missingContact),
		errors.Is(err, domain.ErrEmptyCart):
		writeJSON(w, 422, map[string]string{"error": err.Error()})
	case errors.Is(err, domain.ErrCheckoutInProgress):
		writeJSON(w, 409, map[string]string{"error": err.Error()})
	default:
		log.Error().Err(err).Msg("unhandled")
		writeJSON(w, 500, map[string]string{"error": "internal error"})
	}
}

type productView struct {
	Slug             string           `json:"slug"`
	Name             string           `json:"name"`
	Category         string           `json:"category"`
	ShortDesc        string           `json:"shortDesc,omitempty"`
	Featured         bool             `json:"featured,omitempty"`
	PrimaryLabel     string           `json:"primaryLabel,omitempty"`
	SecondaryLabel   string           `json:"secondaryLabel,omitempty"`
	PrimaryOptions   []string         `json:"primaryOptions,omitempty"`
	SecondaryOptions []string         `json:"secondaryOptions,omitempty"`
	DefaultSelection domain.Selection `json:"defaultSelection"`
	Price            string           `json:"price"`
	Images           []string         `json:"images,omitempty"`
	AddOnEligible    bool             `json:"addOnEligible"`
}

func (s *Server) productToView(p *domain.Product) productView {
	v := productView{
		Slug:             p.Slug,
		Name:             p.Name,
		Category:         p.Category,
		ShortDesc:        p.ShortDesc,
		Featured:         p.Featured,
		PrimaryLabel:     p.PrimaryLabel,
		SecondaryLabel:   p.SecondaryLabel,
		PrimaryOptions:   p.PrimaryOptions,
		SecondaryOptions: p.SecondaryOptions,
		DefaultSelection: p.DefaultSelection(),
		Price:            s.store.FormatPrice(p.Pricing.Base),
		AddOnEligible:    s.store.AddOn.AppliesTo(p.Category),
	}
	for _, img := range p.Images {
		v.Images = append(v.Images, img.URL)
	}
	return v
}

type lineView struct {
	Index     int    `json:"index"`
	Name      string `json:"name"`
	Image     string `json:"image,omitempty"`
	Primary   string `json:"primary,omitempty"`
	Secondary string `json:"secondary,omitempty"`
	AddOn     bool   `json:"addOn,omitempty"`
	Qty       int    `json:"qty"`
	UnitPrice string `json:"unitPrice"`
	LineTotal string `json:"lineTotal"`
}

func (s *Server) cartView(sess *domain.Session) map[string]any {
	lines := make([]lineView, 0, sess.Cart.Len())
	for i, l := range sess.Cart.Lines {
		lines = append(lines, lineView{
			Index:     i,
			Name:      l.Name,
			Image:     l.Image,
			Primary:   l.Primary,
			Secondary: l.Secondary,
			AddOn:     l.AddOn,
			Qty:       l.Qty,
			UnitPrice: s.store.FormatPrice(l.UnitPrice),
			LineTotal: s.store.FormatPrice(l.Total()),
		})
	}
	return map[string]any{
		"state": sess.State,
		"lines": lines,
		"count": sess.Cart.Len(),
		"total": s.store.FormatPrice(sess.Cart.Total()),
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

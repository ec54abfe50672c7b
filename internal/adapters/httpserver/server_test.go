package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laureta/storefront/internal/adapters/messaging/whatsapp"
	"github.com/laureta/storefront/internal/adapters/repo/memory"
	"github.com/laureta/storefront/internal/domain"
	"github.com/laureta/storefront/internal/usecase"
)

func testServer(t *testing.T) http.Handler {
	t.Helper()
	repo := memory.NewProductRepo()
	store := domain.Store{
		Kind:     domain.StoreSalon,
		Name:     "Test Salon",
		Currency: "R",
		AddOn: domain.AddOn{
			Label:      "Curls Add-on",
			Amount:     decimal.NewFromInt(50),
			Categories: []string{"braids", "cornrows"},
		},
	}
	require.NoError(t, repo.Save(nil, &domain.Product{
		ID:               uuid.New(),
		Slug:             "knotless-braids",
		Name:             "Knotless Braids",
		Category:         "braids",
		PrimaryLabel:     "Length",
		SecondaryLabel:   "Size",
		PrimaryOptions:   []string{"Shoulder", "Waist"},
		SecondaryOptions: []string{"Small", "Medium"},
		Pricing: domain.Pricing{
			Kind: domain.PricingByMatrix,
			Base: decimal.NewFromInt(400),
			ByMatrix: map[string]map[string]decimal.Decimal{
				"Shoulder": {"Small": decimal.NewFromInt(450), "Medium": decimal.NewFromInt(400)},
				"Waist":    {"Small": decimal.NewFromInt(650), "Medium": decimal.NewFromInt(600)},
			},
		},
	}))
	require.NoError(t, repo.Save(nil, &domain.Product{
		ID:       uuid.New(),
		Slug:     "gel-on-nails",
		Name:     "Gel on Natural Nails",
		Category: "nails",
		Pricing:  domain.Pricing{Kind: domain.PricingFlat, Base: decimal.NewFromInt(50)},
	}))

	catalog := &usecase.CatalogUC{Products: repo}
	checkout := &usecase.CheckoutUC{Products: repo, Store: store, Channel: whatsapp.NewGateway("27 79 543 0029")}
	return New(catalog, checkout, store, Options{SessionKey: "test-key"})
}

// client carries the session cookie between requests the way a browser would.
type client struct {
	t       *testing.T
	h       http.Handler
	cookies []*http.Cookie
}

func (c *client) do(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	c.h.ServeHTTP(rec, req)
	if set := rec.Result().Cookies(); len(set) > 0 {
		byName := map[string]*http.Cookie{}
		for _, ck := range c.cookies {
			byName[ck.Name] = ck
		}
		for _, ck := range set {
			byName[ck.Name] = ck
		}
		c.cookies = c.cookies[:0]
		for _, ck := range byName {
			c.cookies = append(c.cookies, ck)
		}
	}
	return rec
}

func (c *client) cart(rec *httptest.ResponseRecorder) map[string]any {
	c.t.Helper()
	var v map[string]any
	require.NoError(c.t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestProductEndpoints(t *testing.T) {
	c := &client{t: t, h: testServer(t)}

	rec := c.do("GET", "/api/products", nil)
	require.Equal(t, 200, rec.Code)
	var list struct {
		Items []productView `json:"items"`
		Total int64         `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, int64(2), list.Total)

	rec = c.do("GET", "/api/products/knotless-braids", nil)
	require.Equal(t, 200, rec.Code)
	var p productView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "Knotless Braids", p.Name)
	assert.Equal(t, "Shoulder", p.DefaultSelection.Primary)
	assert.Equal(t, "Small", p.DefaultSelection.Secondary)
	assert.True(t, p.AddOnEligible)

	rec = c.do("GET", "/api/products/no-such-thing", nil)
	assert.Equal(t, 404, rec.Code)

	rec = c.do("GET", "/api/products?category=nails", nil)
	require.Equal(t, 200, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, int64(1), list.Total)
}

func TestCartFlow(t *testing.T) {
	c := &client{t: t, h: testServer(t)}

	rec := c.do("POST", "/api/cart/add", map[string]any{
		"slug": "knotless-braids", "primary": "Shoulder", "secondary": "Small", "addOn": true,
	})
	require.Equal(t, 200, rec.Code)
	cart := c.cart(rec)
	assert.EqualValues(t, 1, cart["count"])
	assert.Equal(t, "R500.00", cart["total"])

	// same item again appends a second line, it never merges
	rec = c.do("POST", "/api/cart/add", map[string]any{
		"slug": "knotless-braids", "primary": "Shoulder", "secondary": "Small", "addOn": true,
	})
	cart = c.cart(rec)
	assert.EqualValues(t, 2, cart["count"])

	rec = c.do("POST", "/api/cart/quantity", map[string]any{"index": 0, "qty": 3})
	cart = c.cart(rec)
	lines := cart["lines"].([]any)
	assert.EqualValues(t, 3, lines[0].(map[string]any)["qty"])

	rec = c.do("POST", "/api/cart/remove", map[string]any{"index": 1})
	require.Equal(t, 200, rec.Code)
	cart = c.cart(rec)
	assert.EqualValues(t, 1, cart["count"])
	assert.Equal(t, "R1500.00", cart["total"])
}

func TestCartAddMissingSelection(t *testing.T) {
	c := &client{t: t, h: testServer(t)}

	rec := c.do("POST", "/api/cart/add", map[string]any{"slug": "knotless-braids"})
	require.Equal(t, 422, rec.Code)
	var e map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	assert.Contains(t, e["error"], "length")
}

func TestQuantityBelowOneIsNoOp(t *testing.T) {
	c := &client{t: t, h: testServer(t)}

	c.do("POST", "/api/cart/add", map[string]any{"slug": "gel-on-nails"})
	rec := c.do("POST", "/api/cart/quantity", map[string]any{"index": 0, "qty": 0})
	require.Equal(t, 200, rec.Code)
	cart := c.cart(rec)
	lines := cart["lines"].([]any)
	assert.EqualValues(t, 1, lines[0].(map[string]any)["qty"])
}

func TestCheckoutFlow(t *testing.T) {
	c := &client{t: t, h: testServer(t)}

	rec := c.do("POST", "/api/checkout/begin", nil)
	assert.Equal(t, 422, rec.Code) // empty cart

	c.do("POST", "/api/cart/add", map[string]any{
		"slug": "knotless-braids", "primary": "Waist", "secondary": "Medium",
	})
	rec = c.do("POST", "/api/checkout/begin", nil)
	require.Equal(t, 200, rec.Code)

	// cart is locked while collecting contact details
	rec = c.do("POST", "/api/cart/remove", map[string]any{"index": 0})
	assert.Equal(t, 409, rec.Code)

	// incomplete contact reports the first missing field
	rec = c.do("POST", "/api/checkout/submit", map[string]any{"contactMethod": "whatsapp"})
	require.Equal(t, 422, rec.Code)
	var e map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	assert.Equal(t, "please enter your name", e["error"])

	rec = c.do("POST", "/api/checkout/submit", map[string]any{
		"name":          "Thandi M",
		"contactMethod": "whatsapp",
		"phone":         "082 123 4567",
		"preferredDate": "2026-09-12",
		"preferredTime": "09:00",
	})
	require.Equal(t, 200, rec.Code)
	var sub usecase.Submission
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sub))
	assert.Equal(t, "27795430029", sub.Recipient)
	assert.Contains(t, sub.Message, "*New Booking Request*")
	assert.Contains(t, sub.Message, "*Total: R600.00*")
	assert.Contains(t, sub.Link, "https://wa.me/27795430029?text=")

	// session resets after a submit
	rec = c.do("GET", "/api/cart", nil)
	cart := c.cart(rec)
	assert.EqualValues(t, 0, cart["count"])
	assert.Equal(t, string(domain.StateSubmitted), cart["state"])
}

func TestCheckoutBackUnlocksCart(t *testing.T) {
	c := &client{t: t, h: testServer(t)}

	c.do("POST", "/api/cart/add", map[string]any{"slug": "gel-on-nails"})
	require.Equal(t, 200, c.do("POST", "/api/checkout/begin", nil).Code)
	require.Equal(t, 200, c.do("POST", "/api/checkout/back", nil).Code)

	rec := c.do("POST", "/api/cart/remove", map[string]any{"index": 0})
	assert.Equal(t, 200, rec.Code)
}

func TestTamperedSessionCookieResets(t *testing.T) {
	c := &client{t: t, h: testServer(t)}

	c.do("POST", "/api/cart/add", map[string]any{"slug": "gel-on-nails"})
	for _, ck := range c.cookies {
		if ck.Name == sessionCookie {
			ck.Value = "forged." + ck.Value
		}
	}
	rec := c.do("GET", "/api/cart", nil)
	cart := c.cart(rec)
	assert.EqualValues(t, 0, cart["count"])
}

func TestAdminEndpointsRequireAuth(t *testing.T) {
	c := &client{t: t, h: testServer(t)}

	assert.Equal(t, 401, c.do("GET", "/admin/export/xlsx", nil).Code)
	assert.Equal(t, 401, c.do("POST", "/admin/import/xlsx", nil).Code)
}

package httpserver

import (
	"bytes"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/laureta/storefront/internal/domain"
	"github.com/laureta/storefront/internal/usecase"
)

// handleAdminExportXLSX writes the full price list, one row per
// product/selection combination so matrix pricing is laid out flat.
func (s *Server) handleAdminExportXLSX(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	list, _, err := s.catalog.List(r.Context(), domain.ProductFilter{PageSize: 1000})
	if err != nil {
		log.Error().Err(err).Msg("export list")
		http.Error(w, "err", 500)
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Prices"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		http.Error(w, "err", 500)
		return
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headers := []string{"Slug", "Name", "Category", "Option 1", "Option 2", "Price", "Featured"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	put := func(p *domain.Product, sel domain.Selection) {
		price := p.Pricing.UnitPrice(sel)
		vals := []any{p.Slug, p.Name, p.Category, sel.Primary, sel.Secondary, price.StringFixed(2), p.Featured}
		for i, v := range vals {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		row++
	}
	for i := range list {
		p := &list[i]
		switch {
		case len(p.PrimaryOptions) > 0 && len(p.SecondaryOptions) > 0:
			for _, a := range p.PrimaryOptions {
				for _, b := range p.SecondaryOptions {
					put(p, domain.Selection{Primary: a, Secondary: b})
				}
			}
		case len(p.SecondaryOptions) > 0:
			for _, b := range p.SecondaryOptions {
				put(p, domain.Selection{Secondary: b})
			}
		default:
			put(p, domain.Selection{})
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="price-list.xlsx"`)
	if err := f.Write(w); err != nil {
		log.Error().Err(err).Msg("export write")
	}
}

// handleAdminImportXLSX creates or updates flat-priced products from an
// uploaded sheet. Expected columns: Name, Category, Price, Featured.
// Rows with an empty name or an unparseable price are skipped.
func (s *Server) handleAdminImportXLSX(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, 10<<20)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "body", 400)
		return
	}
	created, updated, skipped := s.importFromXLSX(r, data)
	writeJSON(w, 200, map[string]int{"created": created, "updated": updated, "skipped": skipped})
}

func (s *Server) importFromXLSX(r *http.Request, data []byte) (int, int, int) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return 0, 0, 0
	}
	defer f.Close()

	created, updated, skipped := 0, 0, 0
	for _, sh := range f.GetSheetList() {
		rows, err := f.GetRows(sh)
		if err != nil || len(rows) == 0 {
			continue
		}
		for _, row := range rows {
			if len(row) == 0 {
				continue
			}
			name := strings.TrimSpace(row[0])
			if name == "" || strings.EqualFold(name, "Name") || strings.EqualFold(name, "Slug") {
				continue
			}
			category, priceStr, featuredStr := "", "", ""
			if len(row) > 1 {
				category = strings.ToLower(strings.TrimSpace(row[1]))
			}
			if len(row) > 2 {
				priceStr = strings.TrimSpace(row[2])
			}
			if len(row) > 3 {
				featuredStr = strings.TrimSpace(row[3])
			}
			price, err := decimal.NewFromString(strings.TrimLeft(priceStr, s.store.Currency+" "))
			if err != nil || price.IsNegative() {
				skipped++
				log.Debug().Str("name", name).Str("price", priceStr).Msg("import row skipped")
				continue
			}
			featured, _ := strconv.ParseBool(featuredStr)

			existing, err := s.catalog.GetBySlug(r.Context(), usecase.Slugify(name))
			if err == nil {
				existing.Category = category
				existing.Featured = featured
				existing.Pricing.Base = price
				if err := s.catalog.Save(r.Context(), existing); err != nil {
					skipped++
					continue
				}
				updated++
				continue
			}
			p := &domain.Product{
				Name:     name,
				Category: category,
				Featured: featured,
				Pricing:  domain.Pricing{Kind: domain.PricingFlat, Base: price},
			}
			if err := s.catalog.Create(r.Context(), p); err != nil {
				skipped++
				continue
			}
			created++
		}
	}
	log.Info().Int("created", created).Int("updated", updated).Int("skipped", skipped).Msg("xlsx import")
	return created, updated, skipped
}

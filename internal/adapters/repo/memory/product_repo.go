package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/laureta/storefront/internal/domain"
)

// ProductRepo keeps the catalog in process memory. Used when the service runs
// without a database and by tests.
type ProductRepo struct {
	mu     sync.RWMutex
	bySlug map[string]*domain.Product
	order  []string
}

func NewProductRepo() *ProductRepo {
	return &ProductRepo{bySlug: map[string]*domain.Product{}}
}

func (r *ProductRepo) Save(_ context.Context, p *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bySlug[p.Slug]; !ok {
		r.order = append(r.order, p.Slug)
	}
	cp := *p
	r.bySlug[p.Slug] = &cp
	return nil
}

func (r *ProductRepo) FindBySlug(_ context.Context, slug string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.bySlug[slug]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *ProductRepo) List(_ context.Context, f domain.ProductFilter) ([]domain.Product, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var all []domain.Product
	for _, slug := range r.order {
		p := r.bySlug[slug]
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Featured && !p.Featured {
			continue
		}
		all = append(all, *p)
	}
	total := int64(len(all))
	if f.PageSize > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		start := (page - 1) * f.PageSize
		if start >= len(all) {
			return []domain.Product{}, total, nil
		}
		end := start + f.PageSize
		if end > len(all) {
			end = len(all)
		}
		all = all[start:end]
	}
	return all, total, nil
}

func (r *ProductRepo) DeleteBySlug(_ context.Context, slug string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bySlug[slug]; !ok {
		return domain.ErrNotFound
	}
	delete(r.bySlug, slug)
	for i, s := range r.order {
		if s == slug {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *ProductRepo) DistinctCategories(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := map[string]struct{}{}
	var cats []string
	for _, p := range r.bySlug {
		if _, ok := seen[p.Category]; !ok && p.Category != "" {
			seen[p.Category] = struct{}{}
			cats = append(cats, p.Category)
		}
	}
	sort.Strings(cats)
	return cats, nil
}

func (r *ProductRepo) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.bySlug)), nil
}

package service

import (
	"sort"
	"time"

	"github.com/Abiral12/Stock-Management-system/internal/model"
	"github.com/Abiral12/Stock-Management-system/internal/repository"

	"github.com/google/uuid"
)

// memRepo is an in-memory stand-in for the product and sale repositories,
// mirroring their contracts (conditional stock decrement, weak product
// reference on sales, sparse ascending trend buckets).
type memRepo struct {
	products map[uuid.UUID]*model.Product
	order    []uuid.UUID // insertion order, for newest-first listings
	sales    []model.Sale
}

func newMemRepo() *memRepo {
	return &memRepo{products: make(map[uuid.UUID]*model.Product)}
}

func (m *memRepo) seed(p model.Product) *model.Product {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	cp := p
	m.products[cp.ID] = &cp
	m.order = append(m.order, cp.ID)
	return &cp
}

// --- ProductRepository ---

func (m *memRepo) Create(p *model.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.CreatedAt = time.Now()
	cp := *p
	m.products[p.ID] = &cp
	m.order = append(m.order, p.ID)
	return nil
}

func (m *memRepo) FindAll() ([]model.Product, error) {
	out := make([]model.Product, 0, len(m.order))
	for i := len(m.order) - 1; i >= 0; i-- {
		if p, ok := m.products[m.order[i]]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *memRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memRepo) FindBySKU(sku string) (*model.Product, error) {
	for _, p := range m.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, repository.ErrProductNotFound
}

func (m *memRepo) FindByCategory(category string) ([]model.Product, error) {
	var out []model.Product
	for i := len(m.order) - 1; i >= 0; i-- {
		if p, ok := m.products[m.order[i]]; ok && p.Category == category {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *memRepo) Search(query string) ([]model.Product, error) {
	return m.FindAll()
}

func (m *memRepo) Filter(f repository.ProductFilter) ([]model.Product, error) {
	all, _ := m.FindAll()
	var out []model.Product
	for _, p := range all {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Subcategory != "" && p.Subcategory != f.Subcategory {
			continue
		}
		if f.Size != "" && p.Size != f.Size {
			continue
		}
		if f.Color != "" && p.Color != f.Color {
			continue
		}
		out = append(out, p)
	}
	switch f.SortBy {
	case "price-high-low":
		sort.Slice(out, func(i, j int) bool { return out[i].SellingPrice > out[j].SellingPrice })
	case "price-low-high":
		sort.Slice(out, func(i, j int) bool { return out[i].SellingPrice < out[j].SellingPrice })
	case "stock-low-high":
		sort.Slice(out, func(i, j int) bool { return out[i].Quantity < out[j].Quantity })
	case "stock-high-low":
		sort.Slice(out, func(i, j int) bool { return out[i].Quantity > out[j].Quantity })
	}
	return out, nil
}

func (m *memRepo) Update(p *model.Product) error {
	if _, ok := m.products[p.ID]; !ok {
		return repository.ErrProductNotFound
	}
	cp := *p
	m.products[p.ID] = &cp
	return nil
}

func (m *memRepo) Delete(id uuid.UUID) error {
	if _, ok := m.products[id]; !ok {
		return repository.ErrProductNotFound
	}
	delete(m.products, id)
	return nil
}

func (m *memRepo) Stats(lowStockThreshold int) (*repository.ProductStats, error) {
	var stats repository.ProductStats
	for _, p := range m.products {
		stats.TotalProducts++
		if p.Quantity < lowStockThreshold {
			stats.LowStockCount++
		}
		stats.TotalValuation += float64(p.Quantity) * p.SellingPrice
		stats.TotalSold += int64(p.SoldCount)
	}
	return &stats, nil
}

func (m *memRepo) seedSale(date time.Time, qty int, price, cost float64) {
	m.sales = append(m.sales, model.Sale{
		ID:            uuid.New(),
		Date:          date,
		Quantity:      qty,
		Price:         price,
		PurchasePrice: cost,
	})
}

// --- SaleRepository ---

func (m *memRepo) RecordSale(productID uuid.UUID, qty int) (*model.Sale, *model.Product, error) {
	p, ok := m.products[productID]
	if !ok {
		return nil, nil, repository.ErrProductNotFound
	}
	if p.Quantity < qty {
		return nil, nil, repository.ErrInsufficientStock
	}

	p.Quantity -= qty
	p.SoldCount += qty

	sale := model.Sale{
		ID:            uuid.New(),
		ProductID:     p.ID,
		Date:          time.Now(),
		Quantity:      qty,
		Price:         p.SellingPrice,
		PurchasePrice: p.PurchasePrice,
	}
	m.sales = append(m.sales, sale)

	cp := *p
	return &sale, &cp, nil
}

func (m *memRepo) FindPage(page, limit int) ([]model.Sale, int64, error) {
	// Newest first, with the product resolved when it still exists.
	ordered := make([]model.Sale, len(m.sales))
	copy(ordered, m.sales)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Date.After(ordered[j].Date) })

	total := int64(len(ordered))
	start := (page - 1) * limit
	if start >= len(ordered) {
		return nil, total, nil
	}
	end := start + limit
	if end > len(ordered) {
		end = len(ordered)
	}

	pageSlice := ordered[start:end]
	for i := range pageSlice {
		if p, ok := m.products[pageSlice[i].ProductID]; ok {
			cp := *p
			pageSlice[i].Product = &cp
		}
	}
	return pageSlice, total, nil
}

func goLayout(bucketFormat string) string {
	switch bucketFormat {
	case "YYYY-MM":
		return "2006-01"
	case "YYYY":
		return "2006"
	default:
		return "2006-01-02"
	}
}

func (m *memRepo) Trends(bucketFormat string, start, end time.Time) ([]repository.TrendBucket, error) {
	layout := goLayout(bucketFormat)
	byKey := make(map[string]*repository.TrendBucket)
	for _, s := range m.sales {
		if s.Date.Before(start) || s.Date.After(end) {
			continue
		}
		key := s.Date.Format(layout)
		b, ok := byKey[key]
		if !ok {
			b = &repository.TrendBucket{Bucket: key}
			byKey[key] = b
		}
		b.TotalSold += s.Quantity
		b.TotalSales += float64(s.Quantity) * s.Price
		b.TotalCost += float64(s.Quantity) * s.PurchasePrice
	}

	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]repository.TrendBucket, 0, len(keys))
	for _, k := range keys {
		out = append(out, *byKey[k])
	}
	return out, nil
}

func (m *memRepo) RangeSummary(start, end time.Time) (*repository.PeriodSummary, error) {
	var summary repository.PeriodSummary
	for _, s := range m.sales {
		if s.Date.Before(start) || s.Date.After(end) {
			continue
		}
		summary.TotalSold += s.Quantity
		summary.TotalRevenue += float64(s.Quantity) * s.Price
		summary.TotalCost += float64(s.Quantity) * s.PurchasePrice
	}
	return &summary, nil
}

// --- collaborator fakes ---

type noopHub struct{}

func (noopHub) BroadcastEvent(payload interface{}) {}

type fakeQR struct{}

func (fakeQR) Generate(sku string) (string, error) {
	return "/qrcodes/" + sku + ".png", nil
}

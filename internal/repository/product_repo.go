package repository

import (
	"errors"

	"github.com/Abiral12/Stock-Management-system/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("not enough stock")
	ErrSaleNotFound      = errors.New("sale not found")
)

// ProductFilter narrows the product listing; zero-valued fields are ignored.
type ProductFilter struct {
	Category    string
	Subcategory string
	Size        string
	Color       string
	SortBy      string // recent | price-high-low | price-low-high | stock-low-high | stock-high-low
}

// ProductStats is the dashboard overview of the product store.
type ProductStats struct {
	TotalProducts  int64   `json:"totalProducts"`
	LowStockCount  int64   `json:"lowStockCount"`
	TotalValuation float64 `json:"totalValuation"`
	TotalSold      int64   `json:"totalSold"`
}

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindBySKU(sku string) (*model.Product, error)
	FindByCategory(category string) ([]model.Product, error)
	Search(query string) ([]model.Product, error)
	Filter(f ProductFilter) ([]model.Product, error)
	Update(product *model.Product) error
	Delete(id uuid.UUID) error
	Stats(lowStockThreshold int) (*ProductStats, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Order("created_at DESC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	return &product, err
}

func (r *productRepo) FindBySKU(sku string) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "sku = ?", sku).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	return &product, err
}

func (r *productRepo) FindByCategory(category string) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("category = ?", category).Order("created_at DESC").Find(&products).Error
	return products, err
}

// Search matches the query case-insensitively against sku, category,
// subcategory and color.
func (r *productRepo) Search(query string) ([]model.Product, error) {
	var products []model.Product
	pattern := "%" + query + "%"
	err := r.db.
		Where("sku ILIKE ? OR category ILIKE ? OR subcategory ILIKE ? OR color ILIKE ?",
			pattern, pattern, pattern, pattern).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

func (r *productRepo) Filter(f ProductFilter) ([]model.Product, error) {
	q := r.db.Model(&model.Product{})
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Subcategory != "" {
		q = q.Where("subcategory = ?", f.Subcategory)
	}
	if f.Size != "" {
		q = q.Where("size = ?", f.Size)
	}
	if f.Color != "" {
		q = q.Where("color = ?", f.Color)
	}

	switch f.SortBy {
	case "price-high-low":
		q = q.Order("selling_price DESC")
	case "price-low-high":
		q = q.Order("selling_price ASC")
	case "stock-low-high":
		q = q.Order("quantity ASC")
	case "stock-high-low":
		q = q.Order("quantity DESC")
	default: // "recent" and anything else
		q = q.Order("created_at DESC")
	}

	var products []model.Product
	err := q.Find(&products).Error
	return products, err
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) Delete(id uuid.UUID) error {
	res := r.db.Delete(&model.Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *productRepo) Stats(lowStockThreshold int) (*ProductStats, error) {
	var stats ProductStats

	if err := r.db.Model(&model.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Product{}).
		Where("quantity < ?", lowStockThreshold).
		Count(&stats.LowStockCount).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Product{}).
		Select("COALESCE(SUM(quantity * selling_price), 0)").
		Scan(&stats.TotalValuation).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Product{}).
		Select("COALESCE(SUM(sold_count), 0)").
		Scan(&stats.TotalSold).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}

package service

import (
	"fmt"

	"github.com/Abiral12/Stock-Management-system/internal/model"
	"github.com/Abiral12/Stock-Management-system/internal/repository"
	"github.com/Abiral12/Stock-Management-system/pkg/sku"
	"github.com/Abiral12/Stock-Management-system/pkg/validator"

	"github.com/google/uuid"
)

// ValidationError marks operator-correctable input problems so the handlers
// can answer with a 4xx instead of a 5xx.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// Broadcaster pushes live events to connected dashboard clients.
type Broadcaster interface {
	BroadcastEvent(payload interface{})
}

// QRGenerator renders the scannable label for a SKU and returns its public path.
type QRGenerator interface {
	Generate(sku string) (string, error)
}

// LowStockThreshold marks products that need restocking on the dashboard.
const LowStockThreshold = 10

// CreateProductRequest is the stock-in payload. Numeric fields are pointers
// so that an explicit zero is accepted while a missing field is rejected.
type CreateProductRequest struct {
	Category      string   `json:"category" validate:"required,oneof=clothing accessories"`
	Subcategory   string   `json:"subcategory" validate:"required"`
	Size          string   `json:"size"`
	Color         string   `json:"color"`
	Quantity      *int     `json:"quantity" validate:"required,gte=0"`
	PurchasePrice *float64 `json:"purchasePrice" validate:"required,gte=0"`
	SellingPrice  *float64 `json:"sellingPrice" validate:"required,gte=0"`
}

// UpdateProductRequest merges partially: only fields that are present in the
// payload change. Stock edits here are corrections; they never touch
// soldCount and never write a ledger entry. Sales go through the sale
// transaction only.
type UpdateProductRequest struct {
	Category      *string  `json:"category,omitempty" validate:"omitempty,oneof=clothing accessories"`
	Subcategory   *string  `json:"subcategory,omitempty"`
	Size          *string  `json:"size,omitempty"`
	Color         *string  `json:"color,omitempty"`
	Quantity      *int     `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	PurchasePrice *float64 `json:"purchasePrice,omitempty" validate:"omitempty,gte=0"`
	SellingPrice  *float64 `json:"sellingPrice,omitempty" validate:"omitempty,gte=0"`
}

type ProductService interface {
	Create(req *CreateProductRequest) (*model.Product, error)
	GetAll() ([]model.Product, error)
	GetByID(id uuid.UUID) (*model.Product, error)
	GetBySKU(sku string) (*model.Product, error)
	GetByCategory(category string) ([]model.Product, error)
	Search(query string) ([]model.Product, error)
	Filter(f repository.ProductFilter) ([]model.Product, error)
	Update(id uuid.UUID, req *UpdateProductRequest) (*model.Product, error)
	Delete(id uuid.UUID) error
	Stats() (*repository.ProductStats, error)
}

type productService struct {
	repo repository.ProductRepository
	qr   QRGenerator
	hub  Broadcaster
}

func NewProductService(repo repository.ProductRepository, qr QRGenerator, hub Broadcaster) ProductService {
	return &productService{repo: repo, qr: qr, hub: hub}
}

func (s *productService) Create(req *CreateProductRequest) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, ValidationError(fmt.Sprintf("Field '%s' failed on '%s'", first.FailedField, first.Tag))
	}
	if !model.ValidSubcategory(req.Category, req.Subcategory) {
		return nil, ValidationError(fmt.Sprintf("Invalid subcategory '%s' for category '%s'", req.Subcategory, req.Category))
	}

	// Size is mandatory for clothing and meaningless for accessories.
	size := req.Size
	skuSize := size
	if req.Category == model.CategoryClothing {
		if size == "" {
			return nil, ValidationError("Size is required for clothing items")
		}
		if !model.ValidSize(size) {
			return nil, ValidationError(fmt.Sprintf("Invalid size '%s'", size))
		}
	} else {
		size = ""
		skuSize = "UNI"
	}

	product := &model.Product{
		SKU:           sku.Generate(req.Category, skuSize),
		Category:      req.Category,
		Subcategory:   req.Subcategory,
		Size:          size,
		Color:         req.Color,
		Quantity:      *req.Quantity,
		PurchasePrice: *req.PurchasePrice,
		SellingPrice:  *req.SellingPrice,
		SoldCount:     0,
	}

	qrPath, err := s.qr.Generate(product.SKU)
	if err != nil {
		return nil, err
	}
	product.QRCode = qrPath

	if err := s.repo.Create(product); err != nil {
		return nil, err
	}

	go s.hub.BroadcastEvent(map[string]interface{}{
		"type":    "stock_update",
		"action":  "product_created",
		"product": product,
	})

	return product, nil
}

func (s *productService) GetAll() ([]model.Product, error) {
	return s.repo.FindAll()
}

func (s *productService) GetByID(id uuid.UUID) (*model.Product, error) {
	return s.repo.FindByID(id)
}

func (s *productService) GetBySKU(code string) (*model.Product, error) {
	return s.repo.FindBySKU(code)
}

func (s *productService) GetByCategory(category string) ([]model.Product, error) {
	return s.repo.FindByCategory(category)
}

func (s *productService) Search(query string) ([]model.Product, error) {
	if query == "" {
		return nil, ValidationError("Search query is required")
	}
	return s.repo.Search(query)
}

func (s *productService) Filter(f repository.ProductFilter) ([]model.Product, error) {
	return s.repo.Filter(f)
}

func (s *productService) Update(id uuid.UUID, req *UpdateProductRequest) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, ValidationError(fmt.Sprintf("Field '%s' failed on '%s'", first.FailedField, first.Tag))
	}

	product, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Subcategory != nil {
		product.Subcategory = *req.Subcategory
	}
	if !model.ValidSubcategory(product.Category, product.Subcategory) {
		return nil, ValidationError(fmt.Sprintf("Invalid subcategory '%s' for category '%s'", product.Subcategory, product.Category))
	}
	if req.Size != nil {
		if product.Category == model.CategoryClothing && !model.ValidSize(*req.Size) {
			return nil, ValidationError(fmt.Sprintf("Invalid size '%s'", *req.Size))
		}
		product.Size = *req.Size
	}
	if product.Category == model.CategoryAccessories {
		product.Size = ""
	}
	if req.Color != nil {
		product.Color = *req.Color
	}
	if req.Quantity != nil {
		product.Quantity = *req.Quantity
	}
	if req.PurchasePrice != nil {
		product.PurchasePrice = *req.PurchasePrice
	}
	if req.SellingPrice != nil {
		product.SellingPrice = *req.SellingPrice
	}

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}

	go s.hub.BroadcastEvent(map[string]interface{}{
		"type":    "stock_update",
		"action":  "product_updated",
		"product": product,
	})

	return product, nil
}

func (s *productService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	go s.hub.BroadcastEvent(map[string]interface{}{
		"type":      "stock_update",
		"action":    "product_deleted",
		"productId": id,
	})

	return nil
}

func (s *productService) Stats() (*repository.ProductStats, error) {
	return s.repo.Stats(LowStockThreshold)
}

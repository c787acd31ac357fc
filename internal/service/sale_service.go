package service

import (
	"fmt"
	"time"

	"github.com/Abiral12/Stock-Management-system/internal/model"
	"github.com/Abiral12/Stock-Management-system/internal/repository"
	"github.com/Abiral12/Stock-Management-system/pkg/validator"

	"github.com/google/uuid"
)

const (
	PeriodDaily   = "daily"
	PeriodMonthly = "monthly"
	PeriodYearly  = "yearly"

	DefaultHistoryLimit = 10
	MaxHistoryLimit     = 100
)

type CreateSaleRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"uuid_required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

// TrendPoint is one bucket of the sales trend with the profit figures
// derived from the aggregated sums.
type TrendPoint struct {
	repository.TrendBucket
	GrossProfit  float64 `json:"grossProfit"`
	ProfitMargin float64 `json:"profitMargin"`
}

type ComparisonResult struct {
	Period1 repository.PeriodSummary `json:"period1"`
	Period2 repository.PeriodSummary `json:"period2"`
}

type SalesPage struct {
	Sales      []model.Sale `json:"sales"`
	Page       int          `json:"page"`
	TotalPages int          `json:"totalPages"`
	TotalCount int64        `json:"totalCount"`
}

type SaleService interface {
	// CreateSale runs the sale transaction: stock check and decrement,
	// soldCount increment, and the ledger append with frozen unit prices.
	CreateSale(req *CreateSaleRequest) (*model.Sale, *model.Product, error)
	Trends(period string, start, end time.Time) ([]TrendPoint, error)
	Compare(p1Start, p1End, p2Start, p2End time.Time) (*ComparisonResult, error)
	History(page, limit int) (*SalesPage, error)
}

type saleService struct {
	saleRepo repository.SaleRepository
	hub      Broadcaster
}

func NewSaleService(saleRepo repository.SaleRepository, hub Broadcaster) SaleService {
	return &saleService{saleRepo: saleRepo, hub: hub}
}

func (s *saleService) CreateSale(req *CreateSaleRequest) (*model.Sale, *model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, nil, ValidationError(fmt.Sprintf("Field '%s' failed on '%s'", first.FailedField, first.Tag))
	}

	sale, product, err := s.saleRepo.RecordSale(req.ProductID, req.Quantity)
	if err != nil {
		return nil, nil, err
	}

	go s.hub.BroadcastEvent(map[string]interface{}{
		"type":   "stock_update",
		"action": "sale_created",
		"sale":   sale,
		"product": map[string]interface{}{
			"id":        product.ID,
			"sku":       product.SKU,
			"quantity":  product.Quantity,
			"soldCount": product.SoldCount,
		},
	})

	return sale, product, nil
}

// bucketFormat maps the trend period onto the postgres TO_CHAR format used
// as the grouping key. Unknown periods fall back to daily, as the dashboard
// always sends one of the three.
func bucketFormat(period string) string {
	switch period {
	case PeriodMonthly:
		return "YYYY-MM"
	case PeriodYearly:
		return "YYYY"
	default:
		return "YYYY-MM-DD"
	}
}

func (s *saleService) Trends(period string, start, end time.Time) ([]TrendPoint, error) {
	buckets, err := s.saleRepo.Trends(bucketFormat(period), start, end)
	if err != nil {
		return nil, err
	}

	points := make([]TrendPoint, 0, len(buckets))
	for _, b := range buckets {
		p := TrendPoint{TrendBucket: b}
		p.GrossProfit = b.TotalSales - b.TotalCost
		if b.TotalSales > 0 {
			p.ProfitMargin = p.GrossProfit / b.TotalSales * 100
		}
		points = append(points, p)
	}
	return points, nil
}

func (s *saleService) Compare(p1Start, p1End, p2Start, p2End time.Time) (*ComparisonResult, error) {
	period1, err := s.saleRepo.RangeSummary(p1Start, p1End)
	if err != nil {
		return nil, err
	}
	period2, err := s.saleRepo.RangeSummary(p2Start, p2End)
	if err != nil {
		return nil, err
	}
	return &ComparisonResult{Period1: *period1, Period2: *period2}, nil
}

func (s *saleService) History(page, limit int) (*SalesPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}

	sales, total, err := s.saleRepo.FindPage(page, limit)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &SalesPage{
		Sales:      sales,
		Page:       page,
		TotalPages: totalPages,
		TotalCount: total,
	}, nil
}

package repository

import (
	"errors"
	"time"

	"github.com/Abiral12/Stock-Management-system/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrendBucket is one time bucket of the sales trend aggregation as it comes
// back from the database. Profit figures are derived by the service.
type TrendBucket struct {
	Bucket     string  `json:"bucket"`
	TotalSold  int     `json:"totalSold"`
	TotalSales float64 `json:"totalSales"`
	TotalCost  float64 `json:"totalCost"`
}

// PeriodSummary is the whole-range rollup used by the comparison query.
// A range with no sales yields the zero value, never nil.
type PeriodSummary struct {
	TotalSold    int     `json:"totalSold"`
	TotalRevenue float64 `json:"totalRevenue"`
	TotalCost    float64 `json:"totalCost"`
}

type SaleRepository interface {
	// RecordSale performs the sale transaction: conditionally decrement the
	// product's stock, increment its sold count, and append the ledger entry
	// with the unit prices frozen at this moment. All inside one database
	// transaction. Returns ErrProductNotFound or ErrInsufficientStock before
	// anything is written.
	RecordSale(productID uuid.UUID, qty int) (*model.Sale, *model.Product, error)
	FindPage(page, limit int) ([]model.Sale, int64, error)
	Trends(bucketFormat string, start, end time.Time) ([]TrendBucket, error)
	RangeSummary(start, end time.Time) (*PeriodSummary, error)
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{db}
}

func (r *saleRepo) RecordSale(productID uuid.UUID, qty int) (*model.Sale, *model.Product, error) {
	var sale model.Sale
	var product model.Product

	err := r.db.Transaction(func(tx *gorm.DB) error {
		// Single conditional update: the decrement only happens when enough
		// stock is on hand, so two concurrent sales of the same product can
		// never both pass the check and oversell.
		res := tx.Model(&model.Product{}).
			Where("id = ? AND quantity >= ?", productID, qty).
			Updates(map[string]interface{}{
				"quantity":   gorm.Expr("quantity - ?", qty),
				"sold_count": gorm.Expr("sold_count + ?", qty),
			})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			// No row matched: either the product is gone or the stock is short.
			if err := tx.First(&model.Product{}, "id = ?", productID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrProductNotFound
				}
				return err
			}
			return ErrInsufficientStock
		}

		if err := tx.First(&product, "id = ?", productID).Error; err != nil {
			return err
		}

		// Freeze the unit prices as they stand right now; later price edits
		// must not rewrite sale history.
		sale = model.Sale{
			ProductID:     product.ID,
			Quantity:      qty,
			Price:         product.SellingPrice,
			PurchasePrice: product.PurchasePrice,
		}
		return tx.Create(&sale).Error
	})
	if err != nil {
		return nil, nil, err
	}

	return &sale, &product, nil
}

func (r *saleRepo) FindPage(page, limit int) ([]model.Sale, int64, error) {
	var total int64
	if err := r.db.Model(&model.Sale{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var sales []model.Sale
	err := r.db.Preload("Product").
		Order("date DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&sales).Error
	return sales, total, err
}

// Trends groups sales in the inclusive [start, end] range by the truncated
// date key. bucketFormat is a postgres TO_CHAR format (YYYY-MM-DD, YYYY-MM
// or YYYY). Buckets with no sales are simply absent from the result.
func (r *saleRepo) Trends(bucketFormat string, start, end time.Time) ([]TrendBucket, error) {
	var buckets []TrendBucket

	rows, err := r.db.Model(&model.Sale{}).
		Select(`
			TO_CHAR(date, ?) as bucket,
			COALESCE(SUM(quantity), 0) as total_sold,
			COALESCE(SUM(quantity * price), 0) as total_sales,
			COALESCE(SUM(quantity * purchase_price), 0) as total_cost
		`, bucketFormat).
		Where("date BETWEEN ? AND ?", start, end).
		Group("bucket").
		Order("bucket ASC").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var b TrendBucket
		if err := rows.Scan(&b.Bucket, &b.TotalSold, &b.TotalSales, &b.TotalCost); err != nil {
			return nil, err
		}
		buckets = append(buckets, b)
	}

	return buckets, rows.Err()
}

func (r *saleRepo) RangeSummary(start, end time.Time) (*PeriodSummary, error) {
	var summary PeriodSummary
	err := r.db.Model(&model.Sale{}).
		Select(`
			COALESCE(SUM(quantity), 0) as total_sold,
			COALESCE(SUM(quantity * price), 0) as total_revenue,
			COALESCE(SUM(quantity * purchase_price), 0) as total_cost
		`).
		Where("date BETWEEN ? AND ?", start, end).
		Scan(&summary).Error
	return &summary, err
}

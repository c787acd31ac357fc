package model

const (
	CategoryClothing    = "clothing"
	CategoryAccessories = "accessories"
)

// Subcategories allowed per category. Accessories never carry a size.
var (
	ClothingSubcategories    = []string{"t-shirt", "trousers", "shirts", "formal-pants", "jeans-pants"}
	AccessoriesSubcategories = []string{"belt", "purse", "wallet", "watch", "hat"}
	ClothingSizes            = []string{"XS", "S", "M", "L", "XL", "XXL"}
)

type Product struct {
	BaseModel
	SKU           string  `gorm:"type:varchar(50);uniqueIndex;not null" json:"sku"`
	Category      string  `gorm:"type:varchar(50);not null;index" json:"category"`
	Subcategory   string  `gorm:"type:varchar(50);not null" json:"subcategory"`
	Size          string  `gorm:"type:varchar(10)" json:"size,omitempty"`
	Color         string  `gorm:"type:varchar(50)" json:"color,omitempty"`
	Quantity      int     `gorm:"not null;default:0" json:"quantity"`       // never negative
	PurchasePrice float64 `gorm:"not null;default:0" json:"purchasePrice"`  // unit cost
	SellingPrice  float64 `gorm:"not null;default:0" json:"sellingPrice"`   // unit price
	SoldCount     int     `gorm:"not null;default:0" json:"soldCount"`      // only ever increases
	QRCode        string  `gorm:"type:varchar(255)" json:"qrCode,omitempty"` // public path of the label PNG
}

// ValidSubcategory reports whether sub is allowed for the product's category.
func ValidSubcategory(category, sub string) bool {
	var allowed []string
	switch category {
	case CategoryClothing:
		allowed = ClothingSubcategories
	case CategoryAccessories:
		allowed = AccessoriesSubcategories
	default:
		return false
	}
	for _, s := range allowed {
		if s == sub {
			return true
		}
	}
	return false
}

// ValidSize reports whether size is an allowed clothing size.
func ValidSize(size string) bool {
	for _, s := range ClothingSizes {
		if s == size {
			return true
		}
	}
	return false
}

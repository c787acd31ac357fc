package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sale is one entry of the append-only sale ledger. It is a historical
// fact: never updated, never deleted. Prices are frozen per unit at the
// moment of the sale, so later product price edits do not rewrite history.
type Sale struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	ProductID     uuid.UUID `gorm:"type:uuid;not null;index" json:"productId"` // weak reference, product may be deleted later
	Product       *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Date          time.Time `gorm:"not null;index" json:"date"`
	Quantity      int       `gorm:"not null" json:"quantity"`
	Price         float64   `gorm:"not null" json:"price"`         // unit selling price at sale time
	PurchasePrice float64   `gorm:"not null" json:"purchasePrice"` // unit cost at sale time
}

func (s *Sale) BeforeCreate(tx *gorm.DB) (err error) {
	s.ID = uuid.New()
	if s.Date.IsZero() {
		s.Date = time.Now()
	}
	return
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel handles the UUID primary key and the createdAt/lastUpdated
// timestamps shared by all records. Deletes are hard deletes, no archival.
type BaseModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
	LastUpdated time.Time `gorm:"autoUpdateTime" json:"lastUpdated"`
}

// Hook Before Create to generate the UUID automatically
func (base *BaseModel) BeforeCreate(tx *gorm.DB) (err error) {
	base.ID = uuid.New()
	return
}

package api

import (
	"time"

	"github.com/rs/xid"
	"gorm.io/gorm"
)

// Meta is base model definition, embedded in all kinds
type Meta struct {
	ID        string `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// BeforeCreate assigns an ID unless the caller already set one.
func (m *Meta) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = NewID()
	}
	return nil
}

// NewID ...
func NewID() string {
	return xid.New().String()
}

// PagingMeta ...
type PagingMeta struct {
	Page  int
	Size  int64
	Total int64
}

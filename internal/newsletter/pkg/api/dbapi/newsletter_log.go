package dbapi

import (
	"time"

	"gorm.io/gorm"

	"github.com/stackrox/newsletter-manager/pkg/api"
)

// NewsletterLog records one run of the mailing job. Rows are append-only.
type NewsletterLog struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	Status    bool      `json:"status" gorm:"index"`
}

// NewsletterLogList ...
type NewsletterLogList []*NewsletterLog

// BeforeCreate ...
func (l *NewsletterLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = api.NewID()
	}
	return nil
}

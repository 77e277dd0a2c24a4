package migrations

import (
	"time"

	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func addNewsletterLogs() *gormigrate.Migration {
	type NewsletterLog struct {
		ID        string    `gorm:"primaryKey"`
		CreatedAt time.Time `gorm:"index"`
		Status    bool      `gorm:"index"`
	}

	id := "202610010200"
	return &gormigrate.Migration{
		ID: id,
		Migrate: func(tx *gorm.DB) error {
			if err := tx.Migrator().CreateTable(&NewsletterLog{}); err != nil {
				return errors.Wrapf(err, "creating table newsletter_logs in migration %s", id)
			}
			return nil
		},
		Rollback: func(tx *gorm.DB) error {
			if err := tx.Migrator().DropTable(&NewsletterLog{}); err != nil {
				return errors.Wrapf(err, "dropping table newsletter_logs in migration %s", id)
			}
			return nil
		},
	}
}

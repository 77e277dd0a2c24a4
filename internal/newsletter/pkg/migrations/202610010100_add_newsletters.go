package migrations

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/stackrox/newsletter-manager/pkg/db"
)

func addNewsletters() *gormigrate.Migration {
	type User struct {
		db.Model
	}
	type Newsletter struct {
		db.Model
		OwnerID     string `gorm:"index;not null"`
		Owner       User   `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
		Subject     string
		Body        string
		SendTime    string
		Periodicity string
		Status      string `gorm:"index"`
		IsActive    bool
	}

	id := "202610010100"
	return &gormigrate.Migration{
		ID: id,
		Migrate: func(tx *gorm.DB) error {
			if err := tx.Migrator().CreateTable(&Newsletter{}); err != nil {
				return errors.Wrapf(err, "creating table newsletters in migration %s", id)
			}
			return nil
		},
		Rollback: func(tx *gorm.DB) error {
			if err := tx.Migrator().DropTable(&Newsletter{}); err != nil {
				return errors.Wrapf(err, "dropping table newsletters in migration %s", id)
			}
			return nil
		},
	}
}

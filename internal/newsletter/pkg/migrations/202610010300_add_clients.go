package migrations

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/stackrox/newsletter-manager/pkg/db"
)

func addClients() *gormigrate.Migration {
	type Client struct {
		db.Model
		Email   string
		Fio     string
		Comment string
	}

	id := "202610010300"
	return &gormigrate.Migration{
		ID: id,
		Migrate: func(tx *gorm.DB) error {
			if err := tx.Migrator().CreateTable(&Client{}); err != nil {
				return errors.Wrapf(err, "creating table clients in migration %s", id)
			}
			return nil
		},
		Rollback: func(tx *gorm.DB) error {
			if err := tx.Migrator().DropTable(&Client{}); err != nil {
				return errors.Wrapf(err, "dropping table clients in migration %s", id)
			}
			return nil
		},
	}
}

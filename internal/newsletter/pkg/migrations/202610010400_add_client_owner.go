package migrations

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/stackrox/newsletter-manager/pkg/db"
)

// Clients created before owners were tracked are handed to the earliest active superuser.
func addClientOwner() *gormigrate.Migration {
	type Client struct {
		db.Model
		Email   string
		Fio     string
		Comment string
		OwnerID string `gorm:"index"`
	}

	id := "202610010400"
	return &gormigrate.Migration{
		ID: id,
		Migrate: func(tx *gorm.DB) error {
			if err := tx.Migrator().AddColumn(&Client{}, "OwnerID"); err != nil {
				return errors.Wrapf(err, "adding column owner_id in migration %s", id)
			}
			if err := assignOwnerlessClients(tx); err != nil {
				return errors.Wrapf(err, "assigning clients without owner in migration %s", id)
			}
			if err := tx.Exec("ALTER TABLE clients ALTER COLUMN owner_id SET NOT NULL").Error; err != nil {
				return errors.Wrapf(err, "requiring owner_id in migration %s", id)
			}
			if err := tx.Exec("ALTER TABLE clients ADD CONSTRAINT fk_clients_owner FOREIGN KEY (owner_id) REFERENCES users(id) ON DELETE CASCADE").Error; err != nil {
				return errors.Wrapf(err, "adding owner foreign key in migration %s", id)
			}
			if err := tx.Migrator().CreateIndex(&Client{}, "OwnerID"); err != nil {
				return errors.Wrapf(err, "indexing owner_id in migration %s", id)
			}
			return nil
		},
		Rollback: func(tx *gorm.DB) error {
			if err := tx.Migrator().DropColumn(&Client{}, "OwnerID"); err != nil {
				return errors.Wrapf(err, "dropping column owner_id in migration %s", id)
			}
			return nil
		},
	}
}

func assignOwnerlessClients(tx *gorm.DB) error {
	var ownerless int64
	if err := tx.Raw("SELECT count(*) FROM clients WHERE owner_id IS NULL").Scan(&ownerless).Error; err != nil {
		return errors.Wrap(err, "counting clients without owner")
	}
	if ownerless == 0 {
		return nil
	}

	var ownerID string
	err := tx.Raw("SELECT id FROM users WHERE is_superuser AND is_active AND deleted_at IS NULL ORDER BY created_at LIMIT 1").
		Scan(&ownerID).Error
	if err != nil {
		return errors.Wrap(err, "looking up the earliest superuser")
	}
	if ownerID == "" {
		return errors.Errorf("%d clients have no owner and no active superuser exists to own them, create one with 'users create --superuser' and migrate again", ownerless)
	}

	if err := tx.Exec("UPDATE clients SET owner_id = ? WHERE owner_id IS NULL", ownerID).Error; err != nil {
		return errors.Wrapf(err, "assigning clients to user %s", ownerID)
	}
	return nil
}

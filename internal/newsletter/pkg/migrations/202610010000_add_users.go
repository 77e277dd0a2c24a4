package migrations

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/stackrox/newsletter-manager/pkg/db"
)

func addUsers() *gormigrate.Migration {
	type User struct {
		db.Model
		Username     string `gorm:"uniqueIndex;not null"`
		Email        string
		PasswordHash string
		IsActive     bool
		IsStaff      bool
		IsSuperuser  bool
	}
	type UserPermission struct {
		ID         uint   `gorm:"primaryKey"`
		UserID     string `gorm:"uniqueIndex:idx_user_permission;not null"`
		Permission string `gorm:"uniqueIndex:idx_user_permission;not null"`
		User       User   `gorm:"constraint:OnDelete:CASCADE"`
	}
	type UserGroup struct {
		ID        uint   `gorm:"primaryKey"`
		UserID    string `gorm:"uniqueIndex:idx_user_group;not null"`
		GroupName string `gorm:"uniqueIndex:idx_user_group;not null"`
		User      User   `gorm:"constraint:OnDelete:CASCADE"`
	}

	id := "202610010000"
	return &gormigrate.Migration{
		ID: id,
		Migrate: func(tx *gorm.DB) error {
			if err := tx.AutoMigrate(&User{}, &UserPermission{}, &UserGroup{}); err != nil {
				return errors.Wrapf(err, "creating user tables in migration %s", id)
			}
			return nil
		},
		Rollback: func(tx *gorm.DB) error {
			if err := tx.Migrator().DropTable(&UserGroup{}, &UserPermission{}, &User{}); err != nil {
				return errors.Wrapf(err, "dropping user tables in migration %s", id)
			}
			return nil
		},
	}
}

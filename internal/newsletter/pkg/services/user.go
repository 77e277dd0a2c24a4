package services

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/api/dbapi"
	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/config"
	"github.com/stackrox/newsletter-manager/pkg/auth"
	"github.com/stackrox/newsletter-manager/pkg/db"
	"github.com/stackrox/newsletter-manager/pkg/errors"
	"github.com/stackrox/newsletter-manager/pkg/shared"
)

// The principal cache is per process. Changes made by the users command reach a running server only
// once its entry expires, so userCacheExpiration bounds how long stale permissions and flags are honoured.
const (
	userCacheExpiration      = 5 * time.Second
	userCacheCleanupInterval = time.Minute
)

// UserService manages accounts and resolves authenticated principals.
//
//go:generate moq -out user_service_moq.go . UserService
type UserService interface {
	// GetByID returns the user with its permissions and groups. Results are cached for up to
	// userCacheExpiration and must not be modified, so permission, group and flag changes made by
	// another process take up to that long to apply.
	GetByID(ctx context.Context, id string) (*dbapi.User, *errors.ServiceError)
	GetByUsername(ctx context.Context, username string) (*dbapi.User, *errors.ServiceError)
	// Authenticate checks the password of an active user.
	Authenticate(ctx context.Context, username, password string) (*dbapi.User, *errors.ServiceError)
	Create(ctx context.Context, user *dbapi.User, password string) *errors.ServiceError
	GrantPermission(ctx context.Context, username, permission string) *errors.ServiceError
	RevokePermission(ctx context.Context, username, permission string) *errors.ServiceError
	AddToGroup(ctx context.Context, username, group string) *errors.ServiceError
	// CountUniqueEmails returns the number of distinct user emails.
	CountUniqueEmails(ctx context.Context) (int64, *errors.ServiceError)
	// HasPerm resolves perm for user against the configured permission groups.
	HasPerm(user *dbapi.User, perm string) bool
	PermissionGroups() dbapi.PermissionGroups
}

var _ UserService = &userService{}

type userService struct {
	connectionFactory *db.ConnectionFactory
	groupsConfig      *config.PermissionGroupsConfig
	cache             *cache.Cache
	loads             singleflight.Group
}

// NewUserService ...
func NewUserService(connectionFactory *db.ConnectionFactory, groupsConfig *config.PermissionGroupsConfig) UserService {
	return &userService{
		connectionFactory: connectionFactory,
		groupsConfig:      groupsConfig,
		cache:             cache.New(userCacheExpiration, userCacheCleanupInterval),
	}
}

func (s *userService) withAssociations(ctx context.Context) *gorm.DB {
	return db.Conn(ctx, s.connectionFactory).Preload("Permissions").Preload("Groups")
}

// GetByID ...
func (s *userService) GetByID(ctx context.Context, id string) (*dbapi.User, *errors.ServiceError) {
	if id == "" {
		return nil, errors.Validation("id is undefined")
	}
	if cached, ok := s.cache.Get(id); ok {
		return cached.(*dbapi.User), nil
	}

	loaded, err, _ := s.loads.Do(id, func() (interface{}, error) {
		var user dbapi.User
		if err := s.withAssociations(ctx).Where("id = ?", id).First(&user).Error; err != nil {
			return nil, shared.HandleGetError("user", "id", id, err)
		}
		s.cache.SetDefault(id, &user)
		return &user, nil
	})
	if err != nil {
		return nil, errors.ToServiceError(err)
	}
	return loaded.(*dbapi.User), nil
}

// GetByUsername ...
func (s *userService) GetByUsername(ctx context.Context, username string) (*dbapi.User, *errors.ServiceError) {
	if username == "" {
		return nil, errors.Validation("username is undefined")
	}
	var user dbapi.User
	if err := s.withAssociations(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, shared.HandleGetError("user", "username", username, err)
	}
	return &user, nil
}

// Authenticate ...
func (s *userService) Authenticate(ctx context.Context, username, password string) (*dbapi.User, *errors.ServiceError) {
	user, svcErr := s.GetByUsername(ctx, username)
	if svcErr != nil {
		if svcErr.Is404() {
			return nil, errors.InvalidPassword("")
		}
		return nil, svcErr
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, errors.InvalidPassword("")
	}
	if !user.IsActive {
		return nil, errors.Unauthenticated("user %q is inactive", username)
	}
	return user, nil
}

// Create ...
func (s *userService) Create(ctx context.Context, user *dbapi.User, password string) *errors.ServiceError {
	if user.Username == "" {
		return errors.MinimumFieldLengthNotReached("username is required")
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return errors.NewWithCause(errors.ErrorValidation, err, "invalid password")
	}
	user.PasswordHash = hash
	if err := db.Conn(ctx, s.connectionFactory).Create(user).Error; err != nil {
		return shared.HandleCreateError("user", err)
	}
	return nil
}

// GrantPermission ...
func (s *userService) GrantPermission(ctx context.Context, username, permission string) *errors.ServiceError {
	if !dbapi.IsValidPermission(permission) {
		return errors.Validation("permission %q must look like <app>.<codename>", permission)
	}
	user, svcErr := s.GetByUsername(ctx, username)
	if svcErr != nil {
		return svcErr
	}
	grant := &dbapi.UserPermission{UserID: user.ID, Permission: permission}
	err := db.Conn(ctx, s.connectionFactory).Clauses(clause.OnConflict{DoNothing: true}).Create(grant).Error
	if err != nil {
		return shared.HandleCreateError("user permission", err)
	}
	// only this process; other processes wait for the entry to expire
	s.cache.Delete(user.ID)
	return nil
}

// RevokePermission ...
func (s *userService) RevokePermission(ctx context.Context, username, permission string) *errors.ServiceError {
	user, svcErr := s.GetByUsername(ctx, username)
	if svcErr != nil {
		return svcErr
	}
	err := db.Conn(ctx, s.connectionFactory).
		Where("user_id = ? AND permission = ?", user.ID, permission).
		Delete(&dbapi.UserPermission{}).Error
	if err != nil {
		return shared.HandleDeleteError("user permission", "permission", permission, err)
	}
	s.cache.Delete(user.ID)
	return nil
}

// AddToGroup ...
func (s *userService) AddToGroup(ctx context.Context, username, group string) *errors.ServiceError {
	if _, ok := s.PermissionGroups()[group]; !ok {
		return errors.Validation("permission group %q is not configured", group)
	}
	user, svcErr := s.GetByUsername(ctx, username)
	if svcErr != nil {
		return svcErr
	}
	membership := &dbapi.UserGroup{UserID: user.ID, GroupName: group}
	err := db.Conn(ctx, s.connectionFactory).Clauses(clause.OnConflict{DoNothing: true}).Create(membership).Error
	if err != nil {
		return shared.HandleCreateError("user group", err)
	}
	s.cache.Delete(user.ID)
	return nil
}

// CountUniqueEmails ...
func (s *userService) CountUniqueEmails(ctx context.Context) (int64, *errors.ServiceError) {
	var count int64
	err := db.Conn(ctx, s.connectionFactory).Model(&dbapi.User{}).
		Distinct("email").
		Count(&count).Error
	if err != nil {
		return 0, errors.NewWithCause(errors.ErrorGeneral, err, "failed to count unique user emails")
	}
	return count, nil
}

// HasPerm ...
func (s *userService) HasPerm(user *dbapi.User, perm string) bool {
	return user.HasPerm(perm, s.PermissionGroups())
}

// PermissionGroups ...
func (s *userService) PermissionGroups() dbapi.PermissionGroups {
	if s.groupsConfig == nil {
		return nil
	}
	return s.groupsConfig.GetPermissionGroups()
}

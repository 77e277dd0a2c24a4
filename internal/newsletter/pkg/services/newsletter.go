// Package services implements the newsletter domain on top of the database.
// Every operation receives the authenticated user as an explicit parameter.
package services

import (
	"context"

	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/api/dbapi"
	"github.com/stackrox/newsletter-manager/pkg/api"
	"github.com/stackrox/newsletter-manager/pkg/db"
	"github.com/stackrox/newsletter-manager/pkg/errors"
	"github.com/stackrox/newsletter-manager/pkg/logger"
	coreServices "github.com/stackrox/newsletter-manager/pkg/services"
	"github.com/stackrox/newsletter-manager/pkg/shared"
)

// NewsletterStats are the mailing counters shown next to the newsletter list.
type NewsletterStats struct {
	// MailingCount is the number of newsletter logs.
	MailingCount int64
	// EnabledMailing is the number of newsletter logs with status true.
	EnabledMailing int64
	// UniqueUsers is the number of distinct user emails.
	UniqueUsers int64
}

// NewsletterService ...
//
//go:generate moq -out newsletter_service_moq.go . NewsletterService
type NewsletterService interface {
	// List returns every newsletter to staff users and only their own newsletters to anybody else.
	List(ctx context.Context, user *dbapi.User, listArgs *coreServices.ListArguments) (dbapi.NewsletterList, *api.PagingMeta, *errors.ServiceError)
	// Stats computes the mailing counters. They are never cached.
	Stats(ctx context.Context) (*NewsletterStats, *errors.ServiceError)
	Get(ctx context.Context, user *dbapi.User, id string) (*dbapi.Newsletter, *errors.ServiceError)
	// Form returns the update form of a newsletter, filtered for user.
	Form(ctx context.Context, user *dbapi.User, id string) (*NewsletterForm, *errors.ServiceError)
	Create(ctx context.Context, user *dbapi.User, newsletter *dbapi.Newsletter) *errors.ServiceError
	// Update binds changes through the update form of user. Changes to fields outside the form are dropped.
	Update(ctx context.Context, user *dbapi.User, id string, changes NewsletterChanges) (*dbapi.Newsletter, *errors.ServiceError)
	Delete(ctx context.Context, user *dbapi.User, id string) *errors.ServiceError
}

var _ NewsletterService = &newsletterService{}

type newsletterService struct {
	connectionFactory *db.ConnectionFactory
	logService        NewsletterLogService
	userService       UserService
}

// NewNewsletterService ...
func NewNewsletterService(connectionFactory *db.ConnectionFactory, logService NewsletterLogService, userService UserService) NewsletterService {
	return &newsletterService{
		connectionFactory: connectionFactory,
		logService:        logService,
		userService:       userService,
	}
}

// List ...
func (s *newsletterService) List(ctx context.Context, user *dbapi.User, listArgs *coreServices.ListArguments) (dbapi.NewsletterList, *api.PagingMeta, *errors.ServiceError) {
	if user == nil {
		return nil, nil, errors.Unauthenticated("user not authenticated")
	}
	var newsletters dbapi.NewsletterList
	pagingMeta := &api.PagingMeta{
		Page: listArgs.Page,
		Size: int64(listArgs.Size),
	}

	dbConn := db.Conn(ctx, s.connectionFactory).Model(&dbapi.Newsletter{})
	if !user.IsStaff {
		dbConn = dbConn.Where("owner_id = ?", user.ID)
	}

	if err := dbConn.Count(&pagingMeta.Total).Error; err != nil {
		return nil, nil, errors.NewWithCause(errors.ErrorGeneral, err, "failed to count newsletters")
	}

	dbConn = dbConn.Order("created_at DESC").Offset(listArgs.Offset()).Limit(listArgs.Size)
	if err := dbConn.Find(&newsletters).Error; err != nil {
		return nil, nil, errors.NewWithCause(errors.ErrorGeneral, err, "failed to list newsletters")
	}
	pagingMeta.Size = int64(len(newsletters))
	return newsletters, pagingMeta, nil
}

// Stats ...
func (s *newsletterService) Stats(ctx context.Context) (*NewsletterStats, *errors.ServiceError) {
	mailingCount, svcErr := s.logService.Count(ctx)
	if svcErr != nil {
		return nil, svcErr
	}
	enabledMailing, svcErr := s.logService.CountByStatus(ctx, true)
	if svcErr != nil {
		return nil, svcErr
	}
	uniqueUsers, svcErr := s.userService.CountUniqueEmails(ctx)
	if svcErr != nil {
		return nil, svcErr
	}
	return &NewsletterStats{
		MailingCount:   mailingCount,
		EnabledMailing: enabledMailing,
		UniqueUsers:    uniqueUsers,
	}, nil
}

// Get ...
func (s *newsletterService) Get(ctx context.Context, user *dbapi.User, id string) (*dbapi.Newsletter, *errors.ServiceError) {
	if id == "" {
		return nil, errors.Validation("id is undefined")
	}
	var newsletter dbapi.Newsletter
	if err := db.Conn(ctx, s.connectionFactory).Where("id = ?", id).First(&newsletter).Error; err != nil {
		return nil, shared.HandleGetError("newsletter", "id", id, err)
	}
	return CheckOwnerOrStaff(&newsletter, user)
}

// Form ...
func (s *newsletterService) Form(ctx context.Context, user *dbapi.User, id string) (*NewsletterForm, *errors.ServiceError) {
	newsletter, svcErr := s.Get(ctx, user, id)
	if svcErr != nil {
		return nil, svcErr
	}
	return NewNewsletterUpdateForm(newsletter, user, s.userService.PermissionGroups()), nil
}

// Create ...
func (s *newsletterService) Create(ctx context.Context, user *dbapi.User, newsletter *dbapi.Newsletter) *errors.ServiceError {
	if user == nil {
		return errors.Unauthenticated("user not authenticated")
	}
	newsletter.OwnerID = user.ID
	if newsletter.Status == "" {
		newsletter.Status = dbapi.NewsletterStatusCreated
	}
	if svcErr := ValidateNewsletter(newsletter); svcErr != nil {
		return svcErr
	}
	if err := db.Conn(ctx, s.connectionFactory).Create(newsletter).Error; err != nil {
		return shared.HandleCreateError("newsletter", err)
	}
	logger.NewUHCLogger(ctx).V(5).Infof("newsletter %q created", newsletter.ID)
	return nil
}

// Update ...
func (s *newsletterService) Update(ctx context.Context, user *dbapi.User, id string, changes NewsletterChanges) (*dbapi.Newsletter, *errors.ServiceError) {
	form, svcErr := s.Form(ctx, user, id)
	if svcErr != nil {
		return nil, svcErr
	}
	updated, fields, svcErr := form.Bind(changes)
	if svcErr != nil {
		return nil, svcErr
	}
	if len(fields) == 0 {
		return form.Instance(), nil
	}

	if err := db.Conn(ctx, s.connectionFactory).Model(updated).Select(fields).Updates(updated).Error; err != nil {
		return nil, shared.HandleUpdateError("newsletter", err)
	}
	logger.NewUHCLogger(ctx).V(5).Infof("newsletter %q updated fields %v", id, fields)
	return updated, nil
}

// Delete soft deletes the newsletter.
func (s *newsletterService) Delete(ctx context.Context, user *dbapi.User, id string) *errors.ServiceError {
	newsletter, svcErr := s.Get(ctx, user, id)
	if svcErr != nil {
		return svcErr
	}
	if err := db.Conn(ctx, s.connectionFactory).Delete(newsletter).Error; err != nil {
		return shared.HandleDeleteError("newsletter", "id", id, err)
	}
	return nil
}

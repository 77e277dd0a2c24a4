package services

import (
	"context"

	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/api/dbapi"
	"github.com/stackrox/newsletter-manager/pkg/api"
	"github.com/stackrox/newsletter-manager/pkg/db"
	"github.com/stackrox/newsletter-manager/pkg/errors"
	"github.com/stackrox/newsletter-manager/pkg/logger"
	"github.com/stackrox/newsletter-manager/pkg/metrics"
	coreServices "github.com/stackrox/newsletter-manager/pkg/services"
)

// NewsletterLogService appends and reads the mailing job logs.
//
//go:generate moq -out newsletter_log_service_moq.go . NewsletterLogService
type NewsletterLogService interface {
	// Record appends one log row. It never updates or deduplicates existing rows.
	Record(ctx context.Context, status bool) (*dbapi.NewsletterLog, *errors.ServiceError)
	List(ctx context.Context, listArgs *coreServices.ListArguments) (dbapi.NewsletterLogList, *api.PagingMeta, *errors.ServiceError)
	Count(ctx context.Context) (int64, *errors.ServiceError)
	CountByStatus(ctx context.Context, status bool) (int64, *errors.ServiceError)
}

var _ NewsletterLogService = &newsletterLogService{}

type newsletterLogService struct {
	connectionFactory *db.ConnectionFactory
}

// NewNewsletterLogService ...
func NewNewsletterLogService(connectionFactory *db.ConnectionFactory) NewsletterLogService {
	return &newsletterLogService{connectionFactory: connectionFactory}
}

// Record ...
func (s *newsletterLogService) Record(ctx context.Context, status bool) (*dbapi.NewsletterLog, *errors.ServiceError) {
	entry := &dbapi.NewsletterLog{Status: status}
	if err := db.Conn(ctx, s.connectionFactory).Create(entry).Error; err != nil {
		return nil, errors.NewWithCause(errors.ErrorGeneral, err, "failed to write newsletter log")
	}
	metrics.IncreaseNewsletterLogsWritten(status)
	logger.NewUHCLogger(ctx).V(5).Infof("newsletter log %q written with status %t", entry.ID, status)
	return entry, nil
}

// List returns a page of logs, newest first.
func (s *newsletterLogService) List(ctx context.Context, listArgs *coreServices.ListArguments) (dbapi.NewsletterLogList, *api.PagingMeta, *errors.ServiceError) {
	var logs dbapi.NewsletterLogList
	pagingMeta := &api.PagingMeta{
		Page: listArgs.Page,
		Size: int64(listArgs.Size),
	}

	dbConn := db.Conn(ctx, s.connectionFactory).Model(&dbapi.NewsletterLog{})
	if err := dbConn.Count(&pagingMeta.Total).Error; err != nil {
		return nil, nil, errors.NewWithCause(errors.ErrorGeneral, err, "failed to count newsletter logs")
	}

	dbConn = dbConn.Order("created_at DESC").Offset(listArgs.Offset()).Limit(listArgs.Size)
	if err := dbConn.Find(&logs).Error; err != nil {
		return nil, nil, errors.NewWithCause(errors.ErrorGeneral, err, "failed to list newsletter logs")
	}
	pagingMeta.Size = int64(len(logs))
	return logs, pagingMeta, nil
}

// Count returns the number of logs.
func (s *newsletterLogService) Count(ctx context.Context) (int64, *errors.ServiceError) {
	var count int64
	if err := db.Conn(ctx, s.connectionFactory).Model(&dbapi.NewsletterLog{}).Count(&count).Error; err != nil {
		return 0, errors.NewWithCause(errors.ErrorGeneral, err, "failed to count newsletter logs")
	}
	return count, nil
}

// CountByStatus returns the number of logs with the given status.
func (s *newsletterLogService) CountByStatus(ctx context.Context, status bool) (int64, *errors.ServiceError) {
	var count int64
	err := db.Conn(ctx, s.connectionFactory).Model(&dbapi.NewsletterLog{}).
		Where("status = ?", status).
		Count(&count).Error
	if err != nil {
		return 0, errors.NewWithCause(errors.ErrorGeneral, err, "failed to count newsletter logs with status %t", status)
	}
	return count, nil
}

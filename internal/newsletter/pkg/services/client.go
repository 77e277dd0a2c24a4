package services

import (
	"context"

	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/api/dbapi"
	"github.com/stackrox/newsletter-manager/pkg/db"
	"github.com/stackrox/newsletter-manager/pkg/errors"
	"github.com/stackrox/newsletter-manager/pkg/shared"
)

// ClientService ...
//
//go:generate moq -out client_service_moq.go . ClientService
type ClientService interface {
	// Create persists client as owned by user. Input is stored as submitted.
	Create(ctx context.Context, user *dbapi.User, client *dbapi.Client) *errors.ServiceError
}

var _ ClientService = &clientService{}

type clientService struct {
	connectionFactory *db.ConnectionFactory
}

// NewClientService ...
func NewClientService(connectionFactory *db.ConnectionFactory) ClientService {
	return &clientService{connectionFactory: connectionFactory}
}

// Create ...
func (s *clientService) Create(ctx context.Context, user *dbapi.User, client *dbapi.Client) *errors.ServiceError {
	if user == nil {
		return errors.Unauthenticated("user not authenticated")
	}
	client.OwnerID = user.ID
	if err := db.Conn(ctx, s.connectionFactory).Create(client).Error; err != nil {
		return shared.HandleCreateError("client", err)
	}
	return nil
}

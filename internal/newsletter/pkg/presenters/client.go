package presenters

import (
	"github.com/stackrox/newsletter-manager/internal/newsletter/constants"
	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/api/dbapi"
	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/api/public"
)

// ConvertClientRequest ...
func ConvertClientRequest(payload public.ClientRequestPayload) *dbapi.Client {
	return &dbapi.Client{
		Email:   payload.Email,
		Fio:     payload.Fio,
		Comment: payload.Comment,
	}
}

// PresentClient ...
func PresentClient(c *dbapi.Client) public.Client {
	createdAt := c.CreatedAt
	return public.Client{
		Object:    constants.KindClient,
		ID:        c.ID,
		Email:     c.Email,
		Fio:       c.Fio,
		Comment:   c.Comment,
		OwnerID:   c.OwnerID,
		CreatedAt: &createdAt,
	}
}

// PresentEmptyClient is the response of a client creation page that created nothing.
func PresentEmptyClient() public.Client {
	return public.Client{Object: constants.KindClient}
}

package dbapi

import (
	"github.com/stackrox/newsletter-manager/pkg/api"
)

// Client is a mailing recipient registered by a user.
type Client struct {
	api.Meta
	Email   string `json:"email"`
	Fio     string `json:"fio"`
	Comment string `json:"comment"`
	OwnerID string `json:"owner_id" gorm:"index;not null"`
}

// GetOwnerID ...
func (c *Client) GetOwnerID() string {
	return c.OwnerID
}

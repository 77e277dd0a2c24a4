package dbapi

import (
	"github.com/stackrox/newsletter-manager/pkg/api"
)

// Periodicity is how often a newsletter is sent.
type Periodicity string

// NewsletterStatus is the mailing status of a newsletter.
type NewsletterStatus string

// Supported periodicities.
const (
	PeriodicityDaily   Periodicity = "daily"
	PeriodicityWeekly  Periodicity = "weekly"
	PeriodicityMonthly Periodicity = "monthly"
)

// Supported newsletter statuses.
const (
	NewsletterStatusCreated   NewsletterStatus = "created"
	NewsletterStatusStarted   NewsletterStatus = "started"
	NewsletterStatusCompleted NewsletterStatus = "completed"
)

// ValidPeriodicities ...
var ValidPeriodicities = []string{string(PeriodicityDaily), string(PeriodicityWeekly), string(PeriodicityMonthly)}

// ValidNewsletterStatuses ...
var ValidNewsletterStatuses = []string{string(NewsletterStatusCreated), string(NewsletterStatusStarted), string(NewsletterStatusCompleted)}

// Newsletter ...
type Newsletter struct {
	api.Meta
	// OwnerID is the user that created the newsletter. It is set once at creation time.
	OwnerID string `json:"owner_id" gorm:"index;not null"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	// SendTime is the time of day the newsletter goes out, formatted HH:MM.
	SendTime    string           `json:"send_time"`
	Periodicity Periodicity      `json:"periodicity"`
	Status      NewsletterStatus `json:"status" gorm:"index"`
	IsActive    bool             `json:"is_active"`
}

// NewsletterList ...
type NewsletterList []*Newsletter

// GetOwnerID ...
func (n *Newsletter) GetOwnerID() string {
	return n.OwnerID
}

// Package public holds the JSON payloads of the newsletters_mgmt REST API.
package public

import "time"

// Newsletter ...
type Newsletter struct {
	Kind        string    `json:"kind"`
	ID          string    `json:"id"`
	Href        string    `json:"href"`
	OwnerID     string    `json:"owner_id"`
	Subject     string    `json:"subject"`
	Body        string    `json:"body"`
	SendTime    string    `json:"send_time"`
	Periodicity string    `json:"periodicity"`
	Status      string    `json:"status"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewsletterRequestPayload is the body of POST /newsletters.
type NewsletterRequestPayload struct {
	Subject     string `json:"subject"`
	Body        string `json:"body"`
	SendTime    string `json:"send_time"`
	Periodicity string `json:"periodicity"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

// NewsletterUpdateRequest is the body of PATCH /newsletters/{id}. Absent fields are left untouched.
type NewsletterUpdateRequest struct {
	Subject     *string `json:"subject,omitempty"`
	Body        *string `json:"body,omitempty"`
	SendTime    *string `json:"send_time,omitempty"`
	Periodicity *string `json:"periodicity,omitempty"`
	Status      *string `json:"status,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// NewsletterList is a page of newsletters together with the mailing counters.
type NewsletterList struct {
	Kind           string       `json:"kind"`
	Page           int32        `json:"page"`
	Size           int32        `json:"size"`
	Total          int32        `json:"total"`
	Items          []Newsletter `json:"items"`
	MailingCount   int64        `json:"mailing_count"`
	EnabledMailing int64        `json:"enabled_mailing"`
	UniqueUsers    int64        `json:"unique_users"`
}

// FormField is one editable field of a newsletter and its current value.
type FormField struct {
	Name  string      `json:"name"`
	Value interface{} `json:"value"`
}

// NewsletterForm lists the fields the requester may change on a newsletter.
type NewsletterForm struct {
	Kind         string      `json:"kind"`
	NewsletterID string      `json:"newsletter_id"`
	Fields       []FormField `json:"fields"`
}

// NewsletterLog ...
type NewsletterLog struct {
	Kind      string    `json:"kind"`
	ID        string    `json:"id"`
	Status    bool      `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// NewsletterLogList ...
type NewsletterLogList struct {
	Kind  string          `json:"kind"`
	Title string          `json:"title"`
	Page  int32           `json:"page"`
	Size  int32           `json:"size"`
	Total int32           `json:"total"`
	Items []NewsletterLog `json:"items"`
}

// Client ...
type Client struct {
	Object    string     `json:"object"`
	ID        string     `json:"id,omitempty"`
	Email     string     `json:"email,omitempty"`
	Fio       string     `json:"fio,omitempty"`
	Comment   string     `json:"comment,omitempty"`
	OwnerID   string     `json:"owner_id,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// ClientRequestPayload is the body of POST /clients, either JSON or form encoded.
type ClientRequestPayload struct {
	Email   string `json:"email"`
	Fio     string `json:"fio"`
	Comment string `json:"comment"`
}

// TokenRequest is the body of POST /auth/token.
type TokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse ...
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

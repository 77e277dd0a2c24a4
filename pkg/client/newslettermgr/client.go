// Package newslettermgr is a REST client of the newsletters_mgmt API.
package newslettermgr

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/resty.v1"

	"github.com/stackrox/newsletter-manager/internal/newsletter/constants"
	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/api/public"
	"github.com/stackrox/newsletter-manager/pkg/api"
	"github.com/stackrox/newsletter-manager/pkg/shared"
)

// Config ...
type Config struct {
	// Endpoint is the scheme, host and port of the server, e.g. http://localhost:8000.
	Endpoint string
	// Token is sent as bearer token. It may be empty for Login.
	Token string
	// CAFiles are trusted in addition to the system roots.
	CAFiles []string
	Debug   bool
}

// Client ...
type Client struct {
	rest *resty.Client
}

// APIError is returned for every non 2xx response.
type APIError struct {
	StatusCode int
	Body       api.Error
}

// Error ...
func (e *APIError) Error() string {
	if e.Body.Code == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("request failed with status %d: %s: %s", e.StatusCode, e.Body.Code, e.Body.Reason)
}

// NewClient ...
func NewClient(config Config) (*Client, error) {
	if config.Endpoint == "" {
		return nil, errors.New("endpoint is required")
	}
	tlsConfig, err := shared.TLSWithAdditionalCAs(config.CAFiles...)
	if err != nil {
		return nil, errors.Wrap(err, "configuring TLS")
	}
	rest := resty.New().
		SetHostURL(config.Endpoint + constants.BasePath).
		SetTLSClientConfig(tlsConfig).
		SetHeader("Accept", "application/json").
		SetDebug(config.Debug)
	if config.Token != "" {
		rest.SetAuthToken(config.Token)
	}
	return &Client{rest: rest}, nil
}

func (c *Client) request(ctx context.Context, result interface{}) *resty.Request {
	req := c.rest.R().
		SetContext(ctx).
		SetError(&api.Error{})
	if result != nil {
		req.SetResult(result)
	}
	return req
}

func checkResponse(resp *resty.Response, err error) error {
	if err != nil {
		return errors.Wrap(err, "sending request")
	}
	if !resp.IsError() {
		return nil
	}
	apiErr := &APIError{StatusCode: resp.StatusCode()}
	if body, ok := resp.Error().(*api.Error); ok && body != nil {
		apiErr.Body = *body
	}
	return apiErr
}

func pageParams(page, size int) map[string]string {
	return map[string]string{
		"page": strconv.Itoa(page),
		"size": strconv.Itoa(size),
	}
}

// Login exchanges a username and password for an access token.
func (c *Client) Login(ctx context.Context, username, password string) (*public.TokenResponse, error) {
	token := &public.TokenResponse{}
	resp, err := c.request(ctx, token).
		SetBody(public.TokenRequest{Username: username, Password: password}).
		Post("/auth/token")
	if err := checkResponse(resp, err); err != nil {
		return nil, err
	}
	return token, nil
}

// ListNewsletters ...
func (c *Client) ListNewsletters(ctx context.Context, page, size int) (*public.NewsletterList, error) {
	list := &public.NewsletterList{}
	resp, err := c.request(ctx, list).
		SetQueryParams(pageParams(page, size)).
		Get("/newsletters")
	if err := checkResponse(resp, err); err != nil {
		return nil, err
	}
	return list, nil
}

// GetNewsletter ...
func (c *Client) GetNewsletter(ctx context.Context, id string) (*public.Newsletter, error) {
	newsletter := &public.Newsletter{}
	resp, err := c.request(ctx, newsletter).
		SetPathParams(map[string]string{"id": id}).
		Get("/newsletters/{id}")
	if err := checkResponse(resp, err); err != nil {
		return nil, err
	}
	return newsletter, nil
}

// DeleteNewsletter ...
func (c *Client) DeleteNewsletter(ctx context.Context, id string) error {
	resp, err := c.request(ctx, nil).
		SetPathParams(map[string]string{"id": id}).
		Delete("/newsletters/{id}")
	return checkResponse(resp, err)
}

// ListNewsletterLogs ...
func (c *Client) ListNewsletterLogs(ctx context.Context, page, size int) (*public.NewsletterLogList, error) {
	list := &public.NewsletterLogList{}
	resp, err := c.request(ctx, list).
		SetQueryParams(pageParams(page, size)).
		Get("/newsletter_logs")
	if err := checkResponse(resp, err); err != nil {
		return nil, err
	}
	return list, nil
}

// CreateNewsletter ...
func (c *Client) CreateNewsletter(ctx context.Context, request public.NewsletterRequestPayload) (*public.Newsletter, error) {
	newsletter := &public.Newsletter{}
	resp, err := c.request(ctx, newsletter).
		SetBody(request).
		Post("/newsletters")
	if err := checkResponse(resp, err); err != nil {
		return nil, err
	}
	return newsletter, nil
}

// CreateClient registers a mailing recipient owned by the caller.
func (c *Client) CreateClient(ctx context.Context, request public.ClientRequestPayload) (*public.Client, error) {
	client := &public.Client{}
	resp, err := c.request(ctx, client).
		SetBody(request).
		Post("/clients")
	if err := checkResponse(resp, err); err != nil {
		return nil, err
	}
	return client, nil
}

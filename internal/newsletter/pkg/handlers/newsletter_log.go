package handlers

import (
	"net/http"

	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/presenters"
	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/services"
	"github.com/stackrox/newsletter-manager/pkg/errors"
	"github.com/stackrox/newsletter-manager/pkg/handlers"
)

type newsletterLogHandler struct {
	service services.NewsletterLogService
}

// NewNewsletterLogHandler ...
func NewNewsletterLogHandler(service services.NewsletterLogService) *newsletterLogHandler {
	return &newsletterLogHandler{
		service: service,
	}
}

// List renders the newsletter logs, newest first.
func (h newsletterLogHandler) List(w http.ResponseWriter, r *http.Request) {
	cfg := &handlers.HandlerConfig{
		Validate: []handlers.Validate{
			handlers.ValidateQueryInt(r, "page"),
			handlers.ValidateQueryInt(r, "size"),
		},
		Action: func() (interface{}, *errors.ServiceError) {
			listArgs, svcErr := listArguments(r)
			if svcErr != nil {
				return nil, svcErr
			}
			logs, paging, svcErr := h.service.List(r.Context(), listArgs)
			if svcErr != nil {
				return nil, svcErr
			}
			return presenters.PresentNewsletterLogList(logs, paging), nil
		},
	}
	handlers.HandleList(w, r, cfg)
}

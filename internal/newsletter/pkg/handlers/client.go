package handlers

import (
	"mime"
	"net/http"

	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/api/public"
	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/presenters"
	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/services"
	"github.com/stackrox/newsletter-manager/pkg/errors"
	"github.com/stackrox/newsletter-manager/pkg/handlers"
	"github.com/stackrox/newsletter-manager/pkg/shared"
)

type clientHandler struct {
	service services.ClientService
}

// NewClientHandler ...
func NewClientHandler(service services.ClientService) *clientHandler {
	return &clientHandler{
		service: service,
	}
}

func isFormEncoded(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return mediaType == "application/x-www-form-urlencoded" || mediaType == "multipart/form-data"
}

// Create persists one client owned by the principal. The body is either JSON or a submitted form.
func (h clientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload public.ClientRequestPayload
	cfg := &handlers.HandlerConfig{
		Action: func() (interface{}, *errors.ServiceError) {
			ctx := r.Context()
			client := presenters.ConvertClientRequest(payload)
			if err := h.service.Create(ctx, PrincipalFromContext(ctx), client); err != nil {
				return nil, err
			}
			return presenters.PresentClient(client), nil
		},
	}

	if isFormEncoded(r) {
		if err := r.ParseMultipartForm(1 << 20); err != nil && err != http.ErrNotMultipart {
			shared.HandleError(r, w, errors.MalformedRequest("Invalid form: %s", err))
			return
		}
		payload = public.ClientRequestPayload{
			Email:   r.PostFormValue("email"),
			Fio:     r.PostFormValue("fio"),
			Comment: r.PostFormValue("comment"),
		}
	} else {
		cfg.MarshalInto = &payload
	}
	handlers.Handle(w, r, cfg, http.StatusCreated)
}

// New renders an empty client. It never writes anything.
func (h clientHandler) New(w http.ResponseWriter, r *http.Request) {
	cfg := &handlers.HandlerConfig{
		Action: func() (interface{}, *errors.ServiceError) {
			return presenters.PresentEmptyClient(), nil
		},
	}
	handlers.HandleGet(w, r, cfg)
}

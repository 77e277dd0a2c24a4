package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/api/public"
	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/presenters"
	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/services"
	"github.com/stackrox/newsletter-manager/pkg/errors"
	"github.com/stackrox/newsletter-manager/pkg/handlers"
	coreServices "github.com/stackrox/newsletter-manager/pkg/services"
)

type newsletterHandler struct {
	service services.NewsletterService
}

// NewNewsletterHandler ...
func NewNewsletterHandler(service services.NewsletterService) *newsletterHandler {
	return &newsletterHandler{
		service: service,
	}
}

func listArguments(r *http.Request) (*coreServices.ListArguments, *errors.ServiceError) {
	listArgs := coreServices.NewListArguments(r.URL.Query())
	if err := listArgs.Validate(); err != nil {
		return nil, errors.NewWithCause(errors.ErrorMalformedRequest, err, "Unable to list: %s", err.Error())
	}
	return listArgs, nil
}

// List renders a page of newsletters visible to the principal together with the mailing counters.
func (h newsletterHandler) List(w http.ResponseWriter, r *http.Request) {
	cfg := &handlers.HandlerConfig{
		Validate: []handlers.Validate{
			handlers.ValidateQueryInt(r, "page"),
			handlers.ValidateQueryInt(r, "size"),
		},
		Action: func() (interface{}, *errors.ServiceError) {
			ctx := r.Context()
			listArgs, svcErr := listArguments(r)
			if svcErr != nil {
				return nil, svcErr
			}

			newsletters, paging, svcErr := h.service.List(ctx, PrincipalFromContext(ctx), listArgs)
			if svcErr != nil {
				return nil, svcErr
			}
			stats, svcErr := h.service.Stats(ctx)
			if svcErr != nil {
				return nil, svcErr
			}
			return presenters.PresentNewsletterList(newsletters, paging, stats), nil
		},
	}
	handlers.HandleList(w, r, cfg)
}

// Get ...
func (h newsletterHandler) Get(w http.ResponseWriter, r *http.Request) {
	cfg := &handlers.HandlerConfig{
		Validate: []handlers.Validate{
			handlers.ValidateRegex(r, "id", handlers.ValidIDRegexp),
		},
		Action: func() (interface{}, *errors.ServiceError) {
			ctx := r.Context()
			newsletter, err := h.service.Get(ctx, PrincipalFromContext(ctx), mux.Vars(r)["id"])
			if err != nil {
				return nil, err
			}
			return presenters.PresentNewsletter(newsletter), nil
		},
	}
	handlers.HandleGet(w, r, cfg)
}

// Form renders the fields the principal may change on a newsletter.
func (h newsletterHandler) Form(w http.ResponseWriter, r *http.Request) {
	cfg := &handlers.HandlerConfig{
		Validate: []handlers.Validate{
			handlers.ValidateRegex(r, "id", handlers.ValidIDRegexp),
		},
		Action: func() (interface{}, *errors.ServiceError) {
			ctx := r.Context()
			form, err := h.service.Form(ctx, PrincipalFromContext(ctx), mux.Vars(r)["id"])
			if err != nil {
				return nil, err
			}
			return presenters.PresentNewsletterForm(form), nil
		},
	}
	handlers.HandleGet(w, r, cfg)
}

// Create ...
func (h newsletterHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload public.NewsletterRequestPayload
	cfg := &handlers.HandlerConfig{
		MarshalInto: &payload,
		Validate: []handlers.Validate{
			handlers.ValidateLength(&payload.Subject, "subject", &handlers.MinRequiredFieldLength, &handlers.MaxSubjectLength),
			handlers.ValidateMinLength(&payload.Body, "body", handlers.MinRequiredFieldLength),
		},
		Action: func() (interface{}, *errors.ServiceError) {
			ctx := r.Context()
			newsletter := presenters.ConvertNewsletterRequest(payload)
			if err := h.service.Create(ctx, PrincipalFromContext(ctx), newsletter); err != nil {
				return nil, err
			}
			return presenters.PresentNewsletter(newsletter), nil
		},
	}
	handlers.Handle(w, r, cfg, http.StatusCreated)
}

// Update applies the fields of the request the principal's update form allows. Other fields are ignored.
func (h newsletterHandler) Update(w http.ResponseWriter, r *http.Request) {
	var payload public.NewsletterUpdateRequest
	cfg := &handlers.HandlerConfig{
		MarshalInto: &payload,
		Validate: []handlers.Validate{
			handlers.ValidateRegex(r, "id", handlers.ValidIDRegexp),
		},
		Action: func() (interface{}, *errors.ServiceError) {
			ctx := r.Context()
			updated, err := h.service.Update(ctx, PrincipalFromContext(ctx), mux.Vars(r)["id"],
				presenters.ConvertNewsletterUpdateRequest(payload))
			if err != nil {
				return nil, err
			}
			return presenters.PresentNewsletter(updated), nil
		},
	}
	handlers.Handle(w, r, cfg, http.StatusOK)
}

// Delete ...
func (h newsletterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	cfg := &handlers.HandlerConfig{
		Validate: []handlers.Validate{
			handlers.ValidateRegex(r, "id", handlers.ValidIDRegexp),
		},
		Action: func() (interface{}, *errors.ServiceError) {
			ctx := r.Context()
			return nil, h.service.Delete(ctx, PrincipalFromContext(ctx), mux.Vars(r)["id"])
		},
	}
	handlers.HandleDelete(w, r, cfg, http.StatusNoContent)
}

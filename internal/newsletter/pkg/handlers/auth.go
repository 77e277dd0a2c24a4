package handlers

import (
	"net/http"

	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/api/public"
	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/services"
	"github.com/stackrox/newsletter-manager/pkg/auth"
	"github.com/stackrox/newsletter-manager/pkg/errors"
	"github.com/stackrox/newsletter-manager/pkg/handlers"
)

const tokenType = "Bearer"

type tokenHandler struct {
	userService services.UserService
	issuer      *auth.TokenIssuer
}

// NewTokenHandler ...
func NewTokenHandler(userService services.UserService, issuer *auth.TokenIssuer) *tokenHandler {
	return &tokenHandler{
		userService: userService,
		issuer:      issuer,
	}
}

// Create exchanges a username and password for a signed access token.
func (h tokenHandler) Create(w http.ResponseWriter, r *http.Request) {
	var request public.TokenRequest
	cfg := &handlers.HandlerConfig{
		MarshalInto: &request,
		Validate: []handlers.Validate{
			handlers.ValidateMinLength(&request.Username, "username", handlers.MinRequiredFieldLength),
			handlers.ValidateMinLength(&request.Password, "password", handlers.MinRequiredFieldLength),
		},
		Action: func() (interface{}, *errors.ServiceError) {
			user, svcErr := h.userService.Authenticate(r.Context(), request.Username, request.Password)
			if svcErr != nil {
				return nil, svcErr
			}
			token, expiresAt, err := h.issuer.Issue(user.ID, user.Username)
			if err != nil {
				return nil, errors.NewWithCause(errors.ErrorGeneral, err, "Unable to issue access token")
			}
			return public.TokenResponse{
				AccessToken: token,
				TokenType:   tokenType,
				ExpiresAt:   expiresAt,
			}, nil
		},
	}
	handlers.Handle(w, r, cfg, http.StatusOK)
}

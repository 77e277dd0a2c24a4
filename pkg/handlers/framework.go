// Package handlers contains the small REST framework shared by every API handler.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/stackrox/newsletter-manager/pkg/errors"
	"github.com/stackrox/newsletter-manager/pkg/logger"
	"github.com/stackrox/newsletter-manager/pkg/shared"
)

// HandlerConfig defines the common things each REST controller must do.
// The corresponding handle() func runs the basic HandlerConfig.
// This is not meant to be an HTTP framework or anything larger than simple CRUD in handlers.
//
//	MarshalInto is a pointer to the object to hold the unmarshaled JSON.
//	Validate is a list of Validation function that run in order, returning fast on the first error.
//	Action is the specific logic a handler must take (e.g, find an object, save an object)
//	ErrorHandler is the way errors are returned to the client
type HandlerConfig struct {
	MarshalInto  interface{}
	Validate     []Validate
	Action       HTTPAction
	ErrorHandler ErrorHandlerFunc
}

// Validate ...
type Validate func() *errors.ServiceError

// ErrorHandlerFunc ...
type ErrorHandlerFunc func(r *http.Request, w http.ResponseWriter, err *errors.ServiceError)

// HTTPAction ...
type HTTPAction func() (interface{}, *errors.ServiceError)

func success(r *http.Request) {
	ctx := context.WithValue(r.Context(), logger.ActionResultKey, logger.ActionSuccess)
	ulog := logger.NewUHCLogger(ctx)
	ulog.Infof("operation ended successfully")
}

func errorHandler(r *http.Request, w http.ResponseWriter, cfg *HandlerConfig, err *errors.ServiceError) {
	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = shared.HandleError
	}
	ctx := context.WithValue(r.Context(), logger.ActionResultKey, logger.ActionFailed)
	r = r.WithContext(ctx)
	cfg.ErrorHandler(r, w, err)
}

func runValidations(r *http.Request, w http.ResponseWriter, cfg *HandlerConfig) bool {
	for _, v := range cfg.Validate {
		if err := v(); err != nil {
			errorHandler(r, w, cfg, err)
			return false
		}
	}
	return true
}

func runAction(r *http.Request, w http.ResponseWriter, cfg *HandlerConfig, httpStatus int) {
	result, serviceErr := cfg.Action()
	if serviceErr != nil {
		errorHandler(r, w, cfg, serviceErr)
		return
	}
	shared.WriteJSONResponse(w, httpStatus, result)
	success(r)
}

// Handle decodes the JSON body into MarshalInto, runs the validations and then the action.
func Handle(w http.ResponseWriter, r *http.Request, cfg *HandlerConfig, httpStatus int) {
	if cfg.MarshalInto != nil {
		err := json.NewDecoder(r.Body).Decode(&cfg.MarshalInto)
		if err != nil {
			errorHandler(r, w, cfg, errors.MalformedRequest("Invalid request format: %s", err))
			return
		}
	}

	if !runValidations(r, w, cfg) {
		return
	}
	runAction(r, w, cfg, httpStatus)
}

// HandleDelete ...
func HandleDelete(w http.ResponseWriter, r *http.Request, cfg *HandlerConfig, httpStatus int) {
	if !runValidations(r, w, cfg) {
		return
	}
	runAction(r, w, cfg, httpStatus)
}

// HandleGet ...
func HandleGet(w http.ResponseWriter, r *http.Request, cfg *HandlerConfig) {
	if !runValidations(r, w, cfg) {
		return
	}
	runAction(r, w, cfg, http.StatusOK)
}

// HandleList ...
func HandleList(w http.ResponseWriter, r *http.Request, cfg *HandlerConfig) {
	if !runValidations(r, w, cfg) {
		return
	}
	runAction(r, w, cfg, http.StatusOK)
}

package shared

import (
	"encoding/json"
	"net/http"

	"github.com/golang/glog"

	"github.com/stackrox/newsletter-manager/pkg/errors"
	"github.com/stackrox/newsletter-manager/pkg/logger"
)

// HandleError writes the error body of err. Server errors are logged at error level, client errors at info level.
func HandleError(r *http.Request, w http.ResponseWriter, err *errors.ServiceError) {
	ctx := r.Context()
	ulog := logger.NewUHCLogger(ctx)
	operationID := logger.GetOperationID(ctx)

	if err.HTTPCode >= http.StatusInternalServerError {
		ulog.Errorf("%s", err.Error())
	} else {
		ulog.Infof("%s", err.Error())
	}

	WriteJSONResponse(w, err.HTTPCode, err.AsOpenapiError(operationID, r.RequestURI))
}

// HandleGetError maps a lookup error to 404 when the entity is missing.
func HandleGetError(resourceType, field string, value interface{}, err error) *errors.ServiceError {
	if isRecordNotFound(err) {
		return errors.NotFound("%s with %s='%v' not found", resourceType, field, value)
	}
	return errors.NewWithCause(errors.ErrorGeneral, err, "Unable to find %s with %s='%v'", resourceType, field, value)
}

// HandleCreateError maps a unique constraint violation to 409.
func HandleCreateError(resourceType string, err error) *errors.ServiceError {
	if IsUniqueViolation(err) {
		return errors.Conflict("This %s already exists", resourceType)
	}
	return errors.NewWithCause(errors.ErrorGeneral, err, "Unable to create %s", resourceType)
}

// HandleUpdateError ...
func HandleUpdateError(resourceType string, err error) *errors.ServiceError {
	if IsUniqueViolation(err) {
		return errors.Conflict("Changes to %s conflict with existing records", resourceType)
	}
	return errors.NewWithCause(errors.ErrorGeneral, err, "Unable to update %s", resourceType)
}

// HandleDeleteError ...
func HandleDeleteError(resourceType string, field string, value interface{}, err error) *errors.ServiceError {
	return errors.NewWithCause(errors.ErrorGeneral, err, "Unable to delete %s with %s='%v'", resourceType, field, value)
}

// WriteJSONResponse ...
func WriteJSONResponse(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Vary", "Authorization")

	w.WriteHeader(code)

	if payload == nil || code == http.StatusNoContent {
		return
	}

	response, err := json.Marshal(payload)
	if err != nil {
		glog.Errorf("Failed to marshal response payload: %v", err)
		return
	}
	if _, err := w.Write(response); err != nil {
		glog.Errorf("Failed to write response: %v", err)
	}
}

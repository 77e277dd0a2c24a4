package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/golang/glog"
)

const (
	// ErrorCodeNotFound mirrors errors.ErrorNotFound without importing it.
	ErrorCodeNotFound = "NEWSLETTERS-MGMT-7"
	// ErrorCodeMethodNotAllowed mirrors errors.ErrorNotImplemented.
	ErrorCodeMethodNotAllowed = "NEWSLETTERS-MGMT-10"
	// ErrorCodeServiceUnavailable mirrors errors.ErrorGeneral.
	ErrorCodeServiceUnavailable = "NEWSLETTERS-MGMT-9"

	errorHREFBase = "/api/newsletters_mgmt/v1/errors/"
)

// Error represents an error reported by the API.
type Error struct {
	Kind        string  `json:"kind"`
	ID          string  `json:"id,omitempty"`
	HREF        *string `json:"href,omitempty"`
	Code        string  `json:"code,omitempty"`
	Reason      string  `json:"reason,omitempty"`
	OperationID string  `json:"operation_id,omitempty"`
}

// SendNotFound sends a 404 response with some details about the non existing resource.
func SendNotFound(w http.ResponseWriter, r *http.Request) {
	reason := fmt.Sprintf("The requested resource '%s' doesn't exist", r.URL.Path)
	sendError(w, r, http.StatusNotFound, "7", ErrorCodeNotFound, reason)
}

// SendMethodNotAllowed ...
func SendMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	reason := fmt.Sprintf("Method '%s' isn't supported for '%s'", r.Method, r.URL.Path)
	sendError(w, r, http.StatusMethodNotAllowed, "10", ErrorCodeMethodNotAllowed, reason)
}

// SendServiceUnavailable ...
func SendServiceUnavailable(w http.ResponseWriter, r *http.Request, reason string) {
	sendError(w, r, http.StatusServiceUnavailable, "9", ErrorCodeServiceUnavailable, reason)
}

func sendError(w http.ResponseWriter, r *http.Request, status int, id, code, reason string) {
	href := errorHREFBase + id
	body := Error{
		Kind:   "Error",
		ID:     id,
		HREF:   &href,
		Code:   code,
		Reason: reason,
	}
	data, err := json.Marshal(body)
	if err != nil {
		SendPanic(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		glog.Errorf("Can't send response body for request '%s'", r.URL.Path)
	}
}

// SendPanic sends a panic error response to the client, but it doesn't end the process.
func SendPanic(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_, err := w.Write(panicBody)
	if err != nil {
		glog.Errorf("Can't send panic response for request '%s': %s", r.URL.Path, err.Error())
	}
}

var panicBody = []byte(`{"kind":"Error","id":"9","href":"/api/newsletters_mgmt/v1/errors/9",` +
	`"code":"NEWSLETTERS-MGMT-9","reason":"An unexpected error happened, please check the log of the service for details"}`)

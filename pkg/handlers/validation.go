package handlers

import (
	"net/http"
	"regexp"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/stackrox/newsletter-manager/pkg/errors"
)

var (
	// MinRequiredFieldLength ...
	MinRequiredFieldLength = 1
	// MaxSubjectLength ...
	MaxSubjectLength = 255

	// ValidIDRegexp matches the xid based identifiers of every entity.
	ValidIDRegexp = regexp.MustCompile(`^[0-9a-v]{20}$`)
)

// ValidateMaxLength ...
func ValidateMaxLength(value *string, field string, maxVal *int) Validate {
	return func() *errors.ServiceError {
		if maxVal != nil && len(*value) > *maxVal {
			return errors.MaximumFieldLengthMissing("%s is not valid. Maximum length %d is required", field, *maxVal)
		}
		return nil
	}
}

// ValidateLength ...
func ValidateLength(value *string, field string, minVal *int, maxVal *int) Validate {
	min := 1
	if minVal != nil && *minVal > 1 {
		min = *minVal
	}
	maxCheck := ValidateMaxLength(value, field, maxVal)
	minCheck := ValidateMinLength(value, field, min)
	return func() *errors.ServiceError {
		if err := minCheck(); err != nil {
			return err
		}
		return maxCheck()
	}
}

// ValidateMinLength ...
func ValidateMinLength(value *string, field string, min int) Validate {
	return func() *errors.ServiceError {
		if value == nil || len(*value) < min {
			return errors.MinimumFieldLengthNotReached("%s is not valid. Minimum length %d is required.", field, min)
		}
		return nil
	}
}

// ValidateRegex checks the mux path variable field against regex.
func ValidateRegex(r *http.Request, field string, regex *regexp.Regexp) Validate {
	return func() *errors.ServiceError {
		value := mux.Vars(r)[field]
		if !regex.MatchString(value) {
			return errors.NotFound("%s %q does not match %s", field, value, regex.String())
		}
		return nil
	}
}

// ValidateQueryInt checks that the query parameter, when present, is a positive integer.
func ValidateQueryInt(r *http.Request, param string) Validate {
	return func() *errors.ServiceError {
		value := r.URL.Query().Get(param)
		if value == "" {
			return nil
		}
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return errors.BadRequest("%s must be a positive integer, got %q", param, value)
		}
		return nil
	}
}

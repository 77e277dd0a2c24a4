// Package services holds types shared by the service layers.
package services

import (
	"net/url"
	"strconv"

	"github.com/pkg/errors"
)

const (
	defaultPage = 1
	defaultSize = 100
	// 65500 is the maximum number of parameters that can be provided to a postgres WHERE IN clause
	// Use it as a sane max
	maxSize = 65500
)

// ListArguments are arguments relevant for listing objects.
// This struct is common to all service List funcs in this package
type ListArguments struct {
	Page int
	Size int
}

// NewListArguments - Create ListArguments from url query parameters with sane defaults
func NewListArguments(params url.Values) *ListArguments {
	listArgs := &ListArguments{
		Page: defaultPage,
		Size: defaultSize,
	}
	if v := params.Get("page"); v != "" {
		listArgs.Page, _ = strconv.Atoi(v)
	}
	if v := params.Get("size"); v != "" {
		listArgs.Size, _ = strconv.Atoi(v)
	}
	if listArgs.Size > maxSize || listArgs.Size < 0 {
		listArgs.Size = maxSize
	}

	return listArgs
}

// Validate ...
func (la *ListArguments) Validate() error {
	if la.Page < 1 {
		return errors.Errorf("page must be equal or greater than 1")
	}
	if la.Size < 1 {
		return errors.Errorf("size must be equal or greater than 1")
	}

	return nil
}

// Offset returns the number of rows skipped by the requested page.
func (la *ListArguments) Offset() int {
	return (la.Page - 1) * la.Size
}

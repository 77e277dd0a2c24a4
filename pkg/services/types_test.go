package services

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewListArguments(t *testing.T) {
	tests := map[string]struct {
		query       string
		page, size  int
		offset      int
		expectValid bool
	}{
		"defaults":      {query: "", page: 1, size: 100, offset: 0, expectValid: true},
		"explicit":      {query: "page=3&size=10", page: 3, size: 10, offset: 20, expectValid: true},
		"oversized":     {query: "size=100000", page: 1, size: 65500, offset: 0, expectValid: true},
		"negative size": {query: "size=-1", page: 1, size: 65500, offset: 0, expectValid: true},
		"zero size":     {query: "size=0", page: 1, size: 0, offset: 0, expectValid: false},
		"invalid page":  {query: "page=abc", page: 0, size: 100, offset: -100, expectValid: false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)
			args := NewListArguments(values)
			assert.Equal(t, tt.page, args.Page)
			assert.Equal(t, tt.size, args.Size)
			assert.Equal(t, tt.offset, args.Offset())
			assert.Equal(t, tt.expectValid, args.Validate() == nil)
		})
	}
}

//go:build tools

// Package tools pins the code generators and test runners used by the repo.
package tools

import (
	_ "github.com/matryer/moq"
	_ "gotest.tools/gotestsum"
)

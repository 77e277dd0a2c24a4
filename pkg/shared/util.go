// Package shared holds small helpers used by both binaries.
package shared

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Contains checks if slice of strings Contains given string
func Contains(s []string, str string) bool {
	for _, v := range s {
		if v == str {
			return true
		}
	}
	return false
}

// ReadFile reads a secret or configuration file relative to the project root.
// Relative paths are resolved against the working directory. An empty path returns an empty string.
func ReadFile(file string) (string, error) {
	if file == "" {
		return "", nil
	}

	absFilePath := file
	if !filepath.IsAbs(file) {
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "resolving working directory")
		}
		absFilePath = filepath.Join(wd, file)
	}

	buf, err := os.ReadFile(absFilePath)
	if err != nil {
		return "", errors.Wrapf(err, "reading file %q", absFilePath)
	}
	return strings.TrimSpace(string(buf)), nil
}

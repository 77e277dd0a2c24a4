// Package flags reads cobra flags that commands have already declared.
// Lookups of undeclared flags are programming errors and panic.
package flags

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// MustGetDefinedString returns a string flag and panics when it is empty.
func MustGetDefinedString(name string, fs *pflag.FlagSet) string {
	value := MustGetString(name, fs)
	if value == "" {
		panic(fmt.Sprintf("flag --%s must not be empty", name))
	}
	return value
}

// MustGetString ...
func MustGetString(name string, fs *pflag.FlagSet) string {
	value, err := fs.GetString(name)
	mustBeDeclared(name, err)
	return value
}

// MustGetBool ...
func MustGetBool(name string, fs *pflag.FlagSet) bool {
	value, err := fs.GetBool(name)
	mustBeDeclared(name, err)
	return value
}

// MustGetInt ...
func MustGetInt(name string, fs *pflag.FlagSet) int {
	value, err := fs.GetInt(name)
	mustBeDeclared(name, err)
	return value
}

// MarkFlagRequired panics if cmd does not declare the flag.
func MarkFlagRequired(name string, cmd *cobra.Command) {
	if err := cmd.MarkFlagRequired(name); err != nil {
		panic(err)
	}
}

func mustBeDeclared(name string, err error) {
	if err != nil {
		panic(fmt.Sprintf("reading flag --%s: %v", name, err))
	}
}

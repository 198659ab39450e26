package plugins

import (
	"errors"
	"fmt"
)

var (
	ErrPluginNotFound     = errors.New("plugin not found")
	ErrInvalidPackageJSON = errors.New("invalid package.json")
	ErrInvalidOption      = errors.New("invalid plugin option")
)

// OptionError names the plugin option that failed validation.
type OptionError struct {
	Option string
	Err    error
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("option %q: %v", e.Option, e.Err)
}

func (e *OptionError) Unwrap() []error {
	return []error{ErrInvalidOption, e.Err}
}

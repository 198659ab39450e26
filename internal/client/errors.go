package client

import "errors"

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrTooManyArgs    = errors.New("too many arguments")
	ErrNilServices    = errors.New("services are not set")
)

// IsUsageError reports whether err comes from a malformed command line
// rather than from running the command.
func IsUsageError(err error) bool {
	return errors.Is(err, ErrUnknownCommand) || errors.Is(err, ErrTooManyArgs)
}

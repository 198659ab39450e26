package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrNilLoader             = errors.New("build configuration loader is not set")
)

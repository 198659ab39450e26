// Package workers provides the background workers of the application and a
// Workers aggregate that runs several of them together.
package workers

import (
	"context"

	"github.com/MKhiriev/twconf/models"
)

// Worker is implemented by every background worker.
//
// Run blocks until ctx is cancelled or the worker fails.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// ConfigLoader loads a build configuration file.
type ConfigLoader interface {
	Load(ctx context.Context, path string) (models.ValidationReport, error)
}

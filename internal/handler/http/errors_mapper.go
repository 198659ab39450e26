package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/twconf/internal/app"
	"github.com/MKhiriev/twconf/internal/buildconfig"
	"github.com/MKhiriev/twconf/models"
)

type errorMapping struct {
	status int
	kind   models.ErrorKind
}

// errorStatusMap is ordered: the first matching sentinel wins.
var errorStatusMap = []struct {
	target error
	errorMapping
}{
	{ErrBodyTooLarge, errorMapping{http.StatusRequestEntityTooLarge, models.ErrorKindRequest}},
	{ErrDigestMismatch, errorMapping{http.StatusBadRequest, models.ErrorKindRequest}},
	{ErrReadingBody, errorMapping{http.StatusBadRequest, models.ErrorKindRequest}},
	{buildconfig.ErrUnsupportedFormat, errorMapping{http.StatusUnsupportedMediaType, models.ErrorKindParse}},
	{buildconfig.ErrConfigParse, errorMapping{http.StatusBadRequest, models.ErrorKindParse}},
	{buildconfig.ErrConfigValidation, errorMapping{http.StatusUnprocessableEntity, models.ErrorKindValidation}},
	{buildconfig.ErrPluginResolution, errorMapping{http.StatusUnprocessableEntity, models.ErrorKindPluginResolution}},
}

// errorResponse builds the status and wire body for err. Internal errors
// never leak their text.
func errorResponse(err error) (int, models.ErrorResponse) {
	status, kind := mapError(err)
	if kind == models.ErrorKindInternal {
		return status, models.ErrorResponse{Kind: kind, Message: app.MsgInternalServerError}
	}

	return status, models.ErrorResponse{
		Kind:    kind,
		Field:   buildconfig.FieldOf(err),
		Message: err.Error(),
	}
}

func mapError(err error) (int, models.ErrorKind) {
	for _, m := range errorStatusMap {
		if errors.Is(err, m.target) {
			return m.status, m.kind
		}
	}
	return http.StatusInternalServerError, models.ErrorKindInternal
}

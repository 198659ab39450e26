package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/twconf/internal/buildconfig"
	"github.com/MKhiriev/twconf/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError turns a non-2xx response into an error. Structured error
// bodies are mapped back to the loader's error types.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	var errResp models.ErrorResponse
	if json.Unmarshal(resp.Body(), &errResp) == nil && errResp.Kind != "" {
		remote := &RemoteError{Message: errResp.Message}

		switch errResp.Kind {
		case models.ErrorKindParse:
			return &buildconfig.ParseError{Field: errResp.Field, Err: remote}
		case models.ErrorKindValidation:
			return &buildconfig.ValidationError{Field: errResp.Field, Err: remote}
		case models.ErrorKindPluginResolution:
			return &buildconfig.PluginResolutionError{Field: errResp.Field, Err: remote}
		}
		body = errResp.Message
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusRequestEntityTooLarge:
		return fmt.Errorf("%w: %s", ErrPayloadTooLarge, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

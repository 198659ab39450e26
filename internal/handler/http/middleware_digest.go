package http

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/MKhiriev/twconf/internal/buildconfig"
	"github.com/MKhiriev/twconf/internal/logger"
)

// ContentDigestHeader carries the hex BLAKE2b-256 digest of a submitted
// document.
const ContentDigestHeader = "X-Content-Digest"

// withBodyLimit caps the size of the request body at cfg.MaxBodyBytes.
func (h *Handler) withBodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.cfg.MaxBodyBytes > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxBodyBytes)
		}
		next.ServeHTTP(w, r)
	})
}

// withContentDigest checks the optional X-Content-Digest header against the
// body and restores the body for the next handler.
func (h *Handler) withContentDigest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				log.Err(err).Int64("limit", tooLarge.Limit).Msg("request body is too large")
				h.writeError(w, r, ErrBodyTooLarge)
				return
			}
			log.Err(err).Msg("failed to read request body")
			h.writeError(w, r, errors.Join(ErrReadingBody, err))
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		expected := strings.ToLower(strings.TrimSpace(r.Header.Get(ContentDigestHeader)))
		if expected == "" {
			next.ServeHTTP(w, r)
			return
		}

		digest := buildconfig.Digest(body)
		if digest != expected {
			log.Error().
				Str("digest from request", expected).
				Str("body digest", digest).
				Msg("digests are not equal")
			h.writeError(w, r, ErrDigestMismatch)
			return
		}

		log.Debug().Str("digest", digest).Msg("content digest verified")
		next.ServeHTTP(w, r)
	})
}

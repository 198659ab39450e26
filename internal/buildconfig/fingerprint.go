package buildconfig

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/twconf/models"
	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a stable hex BLAKE2b-256 digest of the canonical JSON
// encoding of cfg. Structurally equal records share a fingerprint whatever
// format they were read from, as long as their values are equal.
func Fingerprint(cfg models.BuildConfiguration) (string, error) {
	normalize(&cfg)

	data, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("error encoding config for fingerprint: %w", err)
	}

	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// Digest returns the hex BLAKE2b-256 digest of raw input bytes.
func Digest(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

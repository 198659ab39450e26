package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo_TrimsLinkerValues(t *testing.T) {
	info := NewAppBuildInfo(" v0.3.0\n", "  ", "abc123")

	assert.Equal(t, "v0.3.0", info.BuildVersion())
	assert.Empty(t, info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
}

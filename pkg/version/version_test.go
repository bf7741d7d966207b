package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	info := Get()
	assert.NotEmpty(t, info.GitVersion)
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
}

func TestInfo_String(t *testing.T) {
	assert.Equal(t, "v1.0.0", Info{GitVersion: "v1.0.0"}.String())
	assert.Equal(t, "v1.0.0 (abc123)", Info{GitVersion: "v1.0.0", GitCommit: "abc123"}.String())
}

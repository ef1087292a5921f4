package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfoString(t *testing.T) {
	info := Info{Version: "v1.2.3", Commit: "abc123", Date: "2020-02-14"}
	assert.Equal(t, "v1.2.3 (commit: abc123, built: 2020-02-14)", info.String())
}

func TestGetReflectsLdflagVariables(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })

	Version = "v9.9.9"
	assert.Equal(t, "v9.9.9", Get().Version)
	assert.Equal(t, "v9.9.9", GetVersion())
	assert.False(t, IsDev())

	Version = "dev"
	assert.True(t, IsDev())
}

package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateString(t *testing.T) {
	want := []string{
		"START", "DIR_CREATED", "NPM_INIT", "SCRIPTS_INJECTED", "CONFIG_COPIED",
		"MOCKS_COPIED", "DEPS_INSTALLED", "SRC_COPIED", "DONE", "FAILED",
	}
	for i, name := range want {
		assert.Equal(t, name, State(i).String())
	}
	assert.Equal(t, "UNKNOWN", State(-1).String())
	assert.Equal(t, "UNKNOWN", State(len(want)).String())
}

func TestStateTerminal(t *testing.T) {
	assert.True(t, StateDone.Terminal())
	assert.True(t, StateFailed.Terminal())
	assert.False(t, StateStart.Terminal())
	assert.False(t, StateSrcCopied.Terminal())
}

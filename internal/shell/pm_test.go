package shell

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csja-dev/csja/pkg/models"
)

func TestCommandsFor(t *testing.T) {
	for _, pm := range models.ValidPackageManagers() {
		t.Run(string(pm), func(t *testing.T) {
			c, err := CommandsFor(pm)
			require.NoError(t, err)
			assert.Equal(t, string(pm), c.Binary)
			assert.NotEmpty(t, c.Init)
			assert.NotEmpty(t, c.InstallDev)
			assert.NotEmpty(t, c.Install)
		})
	}

	_, err := CommandsFor(models.PackageManager("bun"))
	assert.True(t, errors.Is(err, ErrUnsupportedPackageManager))
}

func TestInstallArgsDoNotAliasTable(t *testing.T) {
	c, err := CommandsFor(models.PackageManagerNPM)
	require.NoError(t, err)

	dev := c.InstallDevArgs([]string{"jest@25.1.0"})
	prod := c.InstallArgs([]string{"core-js@3.6.4"})

	assert.Equal(t, []string{"install", "--save-dev", "--save-exact", "jest@25.1.0"}, dev)
	assert.Equal(t, []string{"install", "--save", "--save-exact", "core-js@3.6.4"}, prod)

	again, _ := CommandsFor(models.PackageManagerNPM)
	assert.Equal(t, []string{"install", "--save-dev", "--save-exact"}, again.InstallDev)
}

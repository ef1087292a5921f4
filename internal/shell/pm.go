package shell

import (
	"github.com/cockroachdb/errors"

	"github.com/csja-dev/csja/pkg/models"
)

// ErrUnsupportedPackageManager is returned for a package manager without a command table.
var ErrUnsupportedPackageManager = errors.New("unsupported package manager")

// PackageManagerCommands holds the argument vectors of one package manager.
// Install arguments are followed by the name@version tokens.
type PackageManagerCommands struct {
	Binary     string
	Init       []string
	InstallDev []string
	Install    []string
}

// pmCommands pins exact versions on install so the manifest records the
// versions the templates were tested against.
var pmCommands = map[models.PackageManager]PackageManagerCommands{
	models.PackageManagerNPM: {
		Binary:     "npm",
		Init:       []string{"init", "--yes"},
		InstallDev: []string{"install", "--save-dev", "--save-exact"},
		Install:    []string{"install", "--save", "--save-exact"},
	},
	models.PackageManagerYarn: {
		Binary:     "yarn",
		Init:       []string{"init", "--yes"},
		InstallDev: []string{"add", "--dev", "--exact"},
		Install:    []string{"add", "--exact"},
	},
	models.PackageManagerPNPM: {
		Binary:     "pnpm",
		Init:       []string{"init"},
		InstallDev: []string{"add", "--save-dev", "--save-exact"},
		Install:    []string{"add", "--save-exact"},
	},
}

// CommandsFor returns the command table of pm.
func CommandsFor(pm models.PackageManager) (PackageManagerCommands, error) {
	c, ok := pmCommands[pm]
	if !ok {
		return PackageManagerCommands{}, errors.Wrapf(ErrUnsupportedPackageManager, "%q", pm)
	}
	return c, nil
}

// InstallDevArgs returns the full argument vector for installing dev dependencies.
func (c PackageManagerCommands) InstallDevArgs(tokens []string) []string {
	return append(append([]string{}, c.InstallDev...), tokens...)
}

// InstallArgs returns the full argument vector for installing runtime dependencies.
func (c PackageManagerCommands) InstallArgs(tokens []string) []string {
	return append(append([]string{}, c.Install...), tokens...)
}

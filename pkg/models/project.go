package models

import (
	"fmt"
	"strings"
)

// PackageManager is the tool that initializes the manifest and installs dependencies.
type PackageManager string

const (
	PackageManagerNPM  PackageManager = "npm"
	PackageManagerYarn PackageManager = "yarn"
	PackageManagerPNPM PackageManager = "pnpm"
)

// DefaultPackageManager is used when neither flags nor config choose one.
const DefaultPackageManager = PackageManagerNPM

// ValidPackageManagers returns all supported package managers.
func ValidPackageManagers() []PackageManager {
	return []PackageManager{PackageManagerNPM, PackageManagerYarn, PackageManagerPNPM}
}

// IsValid checks if the package manager is a supported value.
func (p PackageManager) IsValid() bool {
	switch p {
	case PackageManagerNPM, PackageManagerYarn, PackageManagerPNPM:
		return true
	}
	return false
}

// ParsePackageManager converts a user-provided value to a PackageManager.
// An empty string selects DefaultPackageManager.
func ParsePackageManager(s string) (PackageManager, error) {
	v := PackageManager(strings.ToLower(strings.TrimSpace(s)))
	if v == "" {
		return DefaultPackageManager, nil
	}
	if !v.IsValid() {
		return "", fmt.Errorf("%w %q: must be one of: npm, yarn, pnpm", ErrUnknownPackageManager, s)
	}
	return v, nil
}

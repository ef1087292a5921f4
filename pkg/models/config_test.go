package models_test

import (
	"errors"
	"testing"

	"github.com/csja-dev/csja/pkg/models"
)

// Characterization tests: capture the canonical values of the option enums.
// Catalog keys and config files depend on these strings.

func TestBundlerConstants(t *testing.T) {
	tests := []struct {
		name     string
		bundler  models.Bundler
		expected string
		key      string
	}{
		{"Webpack", models.BundlerWebpack, "Webpack", "webpack"},
		{"Rollup", models.BundlerRollup, "Rollup", "rollup"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if string(tt.bundler) != tt.expected {
				t.Errorf("got %q, want %q", tt.bundler, tt.expected)
			}
			if tt.bundler.Key() != tt.key {
				t.Errorf("Key() = %q, want %q", tt.bundler.Key(), tt.key)
			}
		})
	}
}

func TestParseBundler(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    models.Bundler
		wantErr bool
	}{
		{"canonical webpack", "Webpack", models.BundlerWebpack, false},
		{"lower case rollup", "rollup", models.BundlerRollup, false},
		{"upper case", "WEBPACK", models.BundlerWebpack, false},
		{"surrounding spaces", "  Rollup ", models.BundlerRollup, false},
		{"empty", "", "", true},
		{"unknown", "parcel", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := models.ParseBundler(tt.input)
			if tt.wantErr {
				if !errors.Is(err, models.ErrUnknownBundler) {
					t.Fatalf("ParseBundler(%q) error = %v, want ErrUnknownBundler", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseBundler(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseBundler(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFramework(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    models.Framework
		wantErr bool
	}{
		{"empty means none", "", models.FrameworkNone, false},
		{"none", "none", models.FrameworkNone, false},
		{"None capitalized", "None", models.FrameworkNone, false},
		{"svelte lower case", "svelte", models.FrameworkSvelte, false},
		{"react unsupported", "react", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := models.ParseFramework(tt.input)
			if tt.wantErr {
				if !errors.Is(err, models.ErrUnknownFramework) {
					t.Fatalf("ParseFramework(%q) error = %v, want ErrUnknownFramework", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFramework(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseFramework(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValid(t *testing.T) {
	if models.Bundler("webpack").IsValid() {
		t.Error("lower-case bundler literal should not be valid without ParseBundler")
	}
	if !models.FrameworkSvelte.IsValid() {
		t.Error("FrameworkSvelte should be valid")
	}
	if models.Framework("").IsValid() {
		t.Error("empty framework literal should not be valid")
	}
}

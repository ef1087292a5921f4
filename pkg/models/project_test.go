package models_test

import (
	"errors"
	"testing"

	"github.com/csja-dev/csja/pkg/models"
)

func TestParsePackageManager(t *testing.T) {
	tests := []struct {
		input   string
		want    models.PackageManager
		wantErr bool
	}{
		{"", models.PackageManagerNPM, false},
		{"npm", models.PackageManagerNPM, false},
		{"Yarn", models.PackageManagerYarn, false},
		{" pnpm ", models.PackageManagerPNPM, false},
		{"bun", "", true},
	}
	for _, tt := range tests {
		t.Run("input="+tt.input, func(t *testing.T) {
			got, err := models.ParsePackageManager(tt.input)
			if tt.wantErr {
				if !errors.Is(err, models.ErrUnknownPackageManager) {
					t.Fatalf("error = %v, want ErrUnknownPackageManager", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

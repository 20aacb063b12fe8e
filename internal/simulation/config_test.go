package simulation

import (
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected default config to be valid, got %v", err)
	}

	if cfg.Round.StartTime != 6.0 {
		t.Errorf("Expected start time 6.0, got %v", cfg.Round.StartTime)
	}
	if cfg.Branches.RollSides != 5 {
		t.Errorf("Expected 5 roll sides, got %d", cfg.Branches.RollSides)
	}
}

func TestBonus(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		score int
		want  float64
	}{
		{-1, 0.15},
		{0, 0.15},
		{1, 2.15},
		{2, 1.15},
		{3, 0.15},
		{10, 0.15},
		{1000, 0.15},
	}

	for _, tt := range tests {
		got := cfg.Bonus(tt.score)
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Fatalf("Bonus(%d) is not finite: %v", tt.score, got)
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Bonus(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestTimeBarWidthPerSecond(t *testing.T) {
	cfg := DefaultConfig()
	want := 400.0 / 6.0
	if got := cfg.TimeBarWidthPerSecond(); math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected %v px per second, got %v", want, got)
	}
}

func TestLoadConfigEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("Expected defaults for empty path, got %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadConfigMissingFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tunnig.json")
	cfg, err := LoadConfig(path)
	if err == nil {
		t.Fatalf("Expected an error for a missing file, got %+v", cfg)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected a not-exist error, got %v", err)
	}
	if !strings.Contains(err.Error(), "tunnig.json") {
		t.Errorf("Expected the path in the error, got %v", err)
	}
}

func TestValidateWrapsValidationErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Round.StartTime = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected an error")
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("Expected validator.ValidationErrors in the chain, got %T", err)
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("Expected *ValidationError, got %T", err)
	}
	if vErr.Field != "Config.Round.StartTime" || vErr.Tag != "gt" {
		t.Errorf("Unexpected field %q tag %q", vErr.Field, vErr.Tag)
	}
	if !strings.Contains(err.Error(), "StartTime") {
		t.Errorf("Expected the field in the message, got %v", err)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.json")
	data := `{"round": {"start_time": 10}, "branches": {"roll_sides": 8}}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Round.StartTime != 10 {
		t.Errorf("Expected start time 10, got %v", cfg.Round.StartTime)
	}
	if cfg.Branches.RollSides != 8 {
		t.Errorf("Expected roll sides 8, got %d", cfg.Branches.RollSides)
	}
	// Untouched values keep their defaults
	if cfg.Round.BonusFlat != 0.15 {
		t.Errorf("Expected bonus flat 0.15, got %v", cfg.Round.BonusFlat)
	}
	if cfg.Log.SpeedX != 5000 {
		t.Errorf("Expected log speed 5000, got %v", cfg.Log.SpeedX)
	}
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantErr string
	}{
		{"zero start time", `{"round": {"start_time": 0}}`, "StartTime"},
		{"negative bonus", `{"round": {"bonus_flat": -1}}`, "BonusFlat"},
		{"too few sides", `{"branches": {"roll_sides": 2}}`, "RollSides"},
		{"malformed", `{"round": `, "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tuning.json")
			if err := os.WriteFile(path, []byte(tt.json), 0o644); err != nil {
				t.Fatalf("Failed to write config: %v", err)
			}

			_, err := LoadConfig(path)
			if err == nil {
				t.Fatal("Expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error mentioning %q, got %v", tt.wantErr, err)
			}
		})
	}
}

// Package simulation provides the tuning constants for the chopping rules.
// The defaults reproduce the arcade original; a JSON file may override them.
package simulation

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// Config holds all simulation rules for a game
type Config struct {
	// Timer and scoring
	Round RoundConfig `json:"round"`

	// Branch growth
	Branches BranchConfig `json:"branches"`

	// Flying log thrown off on each chop
	Log LogConfig `json:"log"`

	// Time bar geometry
	TimeBar TimeBarConfig `json:"time_bar"`
}

// RoundConfig defines the timer and the time bonus earned per chop
type RoundConfig struct {
	StartTime      float64 `json:"start_time" validate:"gt=0"`       // Seconds on the clock when a round starts
	BonusNumerator int     `json:"bonus_numerator" validate:"gte=0"` // Integer-divided by the score (2 / score)
	BonusFlat      float64 `json:"bonus_flat" validate:"gte=0"`      // Added on every chop regardless of score
}

// BranchConfig defines how new branches are rolled
type BranchConfig struct {
	// RollSides is the range of the roll: 0 is left, 1 is right, the rest are empty.
	RollSides int `json:"roll_sides" validate:"gte=3"`
}

// LogConfig defines the velocity of the flying log in pixels per second
type LogConfig struct {
	SpeedX float64 `json:"speed_x" validate:"gt=0"`
	SpeedY float64 `json:"speed_y"`
}

// TimeBarConfig defines the size of the time bar in pixels
type TimeBarConfig struct {
	Width  float64 `json:"width" validate:"gt=0"`
	Height float64 `json:"height" validate:"gt=0"`
}

// DefaultConfig returns the tuning of the original game
func DefaultConfig() *Config {
	return &Config{
		Round: RoundConfig{
			StartTime:      6.0,
			BonusNumerator: 2,
			BonusFlat:      0.15,
		},
		Branches: BranchConfig{
			RollSides: 5,
		},
		Log: LogConfig{
			SpeedX: 5000,
			SpeedY: -1500,
		},
		TimeBar: TimeBarConfig{
			Width:  400,
			Height: 80,
		},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidationError names the first tuning value that failed validation. It
// unwraps to the validator.ValidationErrors it came from.
type ValidationError struct {
	Field string
	Tag   string
	Value any
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid simulation config: %s failed %q (value %v)", e.Field, e.Tag, e.Value)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks that the tuning values are usable
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return &ValidationError{
				Field: verrs[0].Namespace(),
				Tag:   verrs[0].Tag(),
				Value: verrs[0].Value(),
				Err:   err,
			}
		}
		return fmt.Errorf("invalid simulation config: %w", err)
	}
	return nil
}

// LoadConfig loads simulation config from a JSON file. An empty path means
// the defaults; a named file that does not exist is an error.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read simulation config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse simulation config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Bonus returns the seconds added to the clock for a chop that brought the
// score to the given value. The division is integer division, so the bonus
// shrinks to the flat part from the third chop on. Scores below one earn
// only the flat part.
func (c *Config) Bonus(score int) float64 {
	if score <= 0 {
		return c.Round.BonusFlat
	}
	return float64(c.Round.BonusNumerator/score) + c.Round.BonusFlat
}

// TimeBarWidthPerSecond returns how many pixels of time bar one second buys
func (c *Config) TimeBarWidthPerSecond() float64 {
	return c.TimeBar.Width / c.Round.StartTime
}

// Package config handles configuration loading and validation for dojo.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/dojo/internal/core/logging"
	"github.com/colonyops/dojo/internal/core/styles"
	"github.com/colonyops/dojo/internal/core/toast"
)

// Config holds the application configuration.
type Config struct {
	Toasts  ToastConfig   `yaml:"toasts"`
	TUI     TUIConfig     `yaml:"tui"`
	Profile ProfileConfig `yaml:"profile"`
	Trainer TrainerConfig `yaml:"trainer"`
	DataDir string        `yaml:"-"` // set by caller, not from config file
}

// ToastConfig controls the notification store and how long the TUI keeps a
// toast on screen before closing it.
type ToastConfig struct {
	Limit           int           `yaml:"limit"`            // max toasts held at once
	RemoveDelay     time.Duration `yaml:"remove_delay"`     // dismissed -> deleted
	DisplayDuration time.Duration `yaml:"display_duration"` // shown -> auto-dismissed
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme string `yaml:"theme"`
}

// ProfileConfig describes the user the sample data is tracked for.
type ProfileConfig struct {
	Name             string  `yaml:"name"`
	Age              int     `yaml:"age"`
	Height           float64 `yaml:"height"` // cm
	CurrentWeight    float64 `yaml:"current_weight"`
	TargetWeight     float64 `yaml:"target_weight"`
	FitnessGoal      string  `yaml:"fitness_goal"`
	ActivityLevel    string  `yaml:"activity_level"`
	DailyCalorieGoal int     `yaml:"daily_calorie_goal"`
}

// TrainerConfig configures the simulated trainer chat.
type TrainerConfig struct {
	ReplyDelay time.Duration `yaml:"reply_delay"`
}

// Supported profile enumerations.
var (
	FitnessGoals   = []string{"lose weight", "gain muscle", "improve health", "increase strength"}
	ActivityLevels = []string{"sedentary", "light", "moderate", "active", "very active"}
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Toasts: ToastConfig{
			Limit:           toast.DefaultLimit,
			RemoveDelay:     toast.DefaultRemoveDelay,
			DisplayDuration: 5 * time.Second,
		},
		TUI: TUIConfig{
			Theme: styles.DefaultTheme,
		},
		Profile: ProfileConfig{
			Name:             "Fitness Hero",
			Age:              28,
			Height:           175,
			CurrentWeight:    75.5,
			TargetWeight:     70,
			FitnessGoal:      "lose weight",
			ActivityLevel:    "moderate",
			DailyCalorieGoal: 2200,
		},
		Trainer: TrainerConfig{
			ReplyDelay: 1500 * time.Millisecond,
		},
	}
}

// Load reads configuration from the given path and validates it.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg, err := Read(configPath, dataDir)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Read is Load without validation. `dojo config validate` uses it so it can
// report on a config that Load would reject.
func Read(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Toasts.Limit == 0 {
		c.Toasts.Limit = defaults.Toasts.Limit
	}
	if c.Toasts.RemoveDelay == 0 {
		c.Toasts.RemoveDelay = defaults.Toasts.RemoveDelay
	}
	if c.Toasts.DisplayDuration == 0 {
		c.Toasts.DisplayDuration = defaults.Toasts.DisplayDuration
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if c.Profile.DailyCalorieGoal == 0 {
		c.Profile.DailyCalorieGoal = defaults.Profile.DailyCalorieGoal
	}
	if c.Trainer.ReplyDelay == 0 {
		c.Trainer.ReplyDelay = defaults.Trainer.ReplyDelay
	}
}

// ToastOptions converts the toast section into store options.
func (c *Config) ToastOptions() toast.Options {
	return toast.Options{
		Limit:       c.Toasts.Limit,
		RemoveDelay: c.Toasts.RemoveDelay,
		Logger:      logging.Component("toast"),
	}
}

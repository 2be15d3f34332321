package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/dojo/internal/core/styles"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	return criterio.ValidateStruct(
		c.validateToasts(),
		criterio.Run("tui.theme", c.TUI.Theme, knownTheme),
		c.validateProfile(),
		c.validateTrainer(),
	)
}

// ValidateDeep runs Validate and then checks file system state: the config
// file must be a regular file and the data directory must be a directory
// (or not exist yet).
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	p := c.Profile
	if p.FitnessGoal == "lose weight" && p.TargetWeight > 0 && p.TargetWeight >= p.CurrentWeight {
		warnings = append(warnings, ValidationWarning{
			Category: "Profile",
			Item:     "target_weight",
			Message:  "goal is to lose weight but target weight is not below current weight",
		})
	}

	return warnings
}

func (c *Config) validateToasts() error {
	var errs criterio.FieldErrorsBuilder
	if c.Toasts.Limit < 1 {
		errs = errs.Append("toasts.limit", fmt.Errorf("must be at least 1"))
	}
	if c.Toasts.RemoveDelay <= 0 {
		errs = errs.Append("toasts.remove_delay", fmt.Errorf("must be positive"))
	}
	if c.Toasts.DisplayDuration <= 0 {
		errs = errs.Append("toasts.display_duration", fmt.Errorf("must be positive"))
	}
	return errs.ToError()
}

func (c *Config) validateProfile() error {
	p := c.Profile
	var errs criterio.FieldErrorsBuilder

	if p.DailyCalorieGoal < 1 {
		errs = errs.Append("profile.daily_calorie_goal", fmt.Errorf("must be positive"))
	}
	if p.Age < 0 {
		errs = errs.Append("profile.age", fmt.Errorf("cannot be negative"))
	}
	if p.Height < 0 {
		errs = errs.Append("profile.height", fmt.Errorf("cannot be negative"))
	}
	if p.CurrentWeight < 0 {
		errs = errs.Append("profile.current_weight", fmt.Errorf("cannot be negative"))
	}
	if p.TargetWeight < 0 {
		errs = errs.Append("profile.target_weight", fmt.Errorf("cannot be negative"))
	}
	if p.FitnessGoal != "" && !slices.Contains(FitnessGoals, p.FitnessGoal) {
		errs = errs.Append("profile.fitness_goal", fmt.Errorf("unknown goal %q, expected one of %v", p.FitnessGoal, FitnessGoals))
	}
	if p.ActivityLevel != "" && !slices.Contains(ActivityLevels, p.ActivityLevel) {
		errs = errs.Append("profile.activity_level", fmt.Errorf("unknown level %q, expected one of %v", p.ActivityLevel, ActivityLevels))
	}

	return errs.ToError()
}

func (c *Config) validateTrainer() error {
	if c.Trainer.ReplyDelay < 0 {
		return criterio.NewFieldErrors("trainer.reply_delay", fmt.Errorf("cannot be negative"))
	}
	return nil
}

func knownTheme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q, available: %v", name, styles.ThemeNames())
	}
	return nil
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}

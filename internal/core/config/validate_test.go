package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a Config with all required fields set for testing.
func validConfig(t *testing.T) *Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.DataDir = t.TempDir()
	return &cfg
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig(t).Validate())
}

func TestValidate_EmptyDataDir(t *testing.T) {
	cfg := validConfig(t)
	cfg.DataDir = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data directory")
}

func TestValidate_ToastFields(t *testing.T) {
	cfg := validConfig(t)
	cfg.Toasts = ToastConfig{Limit: 0, RemoveDelay: -time.Second, DisplayDuration: 0}

	err := cfg.Validate()

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 3)
	assert.Equal(t, "toasts.limit", fieldErrs[0].Field)
	assert.Equal(t, "toasts.remove_delay", fieldErrs[1].Field)
	assert.Equal(t, "toasts.display_duration", fieldErrs[2].Field)
}

func TestValidate_UnknownTheme(t *testing.T) {
	cfg := validConfig(t)
	cfg.TUI.Theme = "neon"

	err := cfg.Validate()

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "tui.theme", fieldErrs[0].Field)
	assert.Contains(t, fieldErrs[0].Err.Error(), "unknown theme")
}

func TestValidate_Profile(t *testing.T) {
	tests := []struct {
		name  string
		mod   func(*ProfileConfig)
		field string
	}{
		{"calorie goal", func(p *ProfileConfig) { p.DailyCalorieGoal = 0 }, "profile.daily_calorie_goal"},
		{"negative age", func(p *ProfileConfig) { p.Age = -1 }, "profile.age"},
		{"negative weight", func(p *ProfileConfig) { p.CurrentWeight = -3 }, "profile.current_weight"},
		{"bad goal", func(p *ProfileConfig) { p.FitnessGoal = "get famous" }, "profile.fitness_goal"},
		{"bad activity", func(p *ProfileConfig) { p.ActivityLevel = "couch" }, "profile.activity_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mod(&cfg.Profile)

			err := cfg.Validate()

			var fieldErrs criterio.FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			require.Len(t, fieldErrs, 1)
			assert.Equal(t, tt.field, fieldErrs[0].Field)
		})
	}
}

func TestValidate_NegativeReplyDelay(t *testing.T) {
	cfg := validConfig(t)
	cfg.Trainer.ReplyDelay = -time.Second

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, cfg.Validate(), &fieldErrs)
	assert.Equal(t, "trainer.reply_delay", fieldErrs[0].Field)
}

func TestValidateDeep_ConfigIsDirectory(t *testing.T) {
	cfg := validConfig(t)

	err := cfg.ValidateDeep(t.TempDir())

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "config_file", fieldErrs[0].Field)
}

func TestValidateDeep_DataDirIsFile(t *testing.T) {
	cfg := validConfig(t)
	file := filepath.Join(t.TempDir(), "data")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	cfg.DataDir = file

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "data_dir", fieldErrs[0].Field)
}

func TestValidateDeep_MissingPathsAreFine(t *testing.T) {
	cfg := validConfig(t)
	cfg.DataDir = filepath.Join(t.TempDir(), "not-yet")

	assert.NoError(t, cfg.ValidateDeep(filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestWarnings(t *testing.T) {
	cfg := validConfig(t)
	assert.Empty(t, cfg.Warnings())

	// The removal delay only starts once a toast has closed, so a long
	// display duration is not a problem.
	cfg.Toasts.DisplayDuration = 2 * cfg.Toasts.RemoveDelay
	assert.Empty(t, cfg.Warnings())

	cfg.Profile.TargetWeight = 80

	warnings := cfg.Warnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, "target_weight", warnings[0].Item)
}

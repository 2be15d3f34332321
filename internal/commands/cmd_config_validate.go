package commands

import (
	"context"
	"errors"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/dojo/internal/core/config"
	"github.com/colonyops/dojo/internal/core/logging"
	"github.com/colonyops/dojo/internal/printer"
	"github.com/colonyops/dojo/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "dojo config validate [options]",
				Description: "Validates the configuration file, checking value ranges, profile enums, the theme name and file paths.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

// ValidationError is a single field failure.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationReport is the JSON schema of `dojo config validate --format json`.
type ValidationReport struct {
	Valid    bool                       `json:"valid"`
	Errors   []ValidationError          `json:"errors,omitempty"`
	Warnings []config.ValidationWarning `json:"warnings,omitempty"`
}

// NewValidationReport validates cfg against configPath.
func NewValidationReport(cfg *config.Config, configPath string) ValidationReport {
	report := ValidationReport{Warnings: cfg.Warnings()}

	err := cfg.ValidateDeep(configPath)
	if err == nil {
		report.Valid = true
		return report
	}

	var fieldErrs criterio.FieldErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			report.Errors = append(report.Errors, ValidationError{Field: fe.Field, Message: fe.Err.Error()})
		}
		return report
	}

	report.Errors = append(report.Errors, ValidationError{Message: err.Error()})
	return report
}

func (cmd *ConfigValidateCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithCommand(ctx, "config validate")

	report := NewValidationReport(cmd.flags.Config, cmd.flags.ConfigPath)
	logging.Component("cli").Debug().Ctx(ctx).
		Bool("valid", report.Valid).
		Int("errors", len(report.Errors)).
		Msg("config validated")

	if cmd.format == "json" {
		if err := iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, report); err != nil {
			return err
		}
		if !report.Valid {
			return cli.Exit("", 1)
		}
		return nil
	}

	return cmd.outputText(printer.Ctx(ctx), report)
}

func (cmd *ConfigValidateCmd) outputText(p *printer.Printer, report ValidationReport) error {
	for _, warn := range report.Warnings {
		p.Warnf("%s: %s", warn.Category, warn.Message)
		if warn.Item != "" {
			p.Printf("  Item: %s", warn.Item)
		}
	}

	for _, e := range report.Errors {
		if e.Field == "" {
			p.Errorf("%s", e.Message)
			continue
		}
		p.Errorf("%s: %s", e.Field, e.Message)
	}

	p.Printf("")
	if report.Valid {
		p.Successf("Configuration is valid")
		return nil
	}

	p.Errorf("%d error(s) found", len(report.Errors))
	return cli.Exit("", 1)
}

package commands

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/dojo/internal/core/logging"
	"github.com/colonyops/dojo/internal/tui"
)

type TuiCmd struct {
	flags *Flags
	build tui.BuildInfo
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags, build tui.BuildInfo) *TuiCmd {
	return &TuiCmd{
		flags: flags,
		build: build,
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(logging.WithCommand(ctx, "tui"), c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	m := tui.New(tui.Options{
		Journal: cmd.flags.Journal,
		Toaster: cmd.flags.Toaster,
		Config:  cmd.flags.Config,
		Build:   cmd.build,
	})
	defer m.Close()

	logging.Component("cli").Info().Ctx(ctx).Msg("starting tui")

	p := tea.NewProgram(m, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

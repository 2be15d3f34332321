package commands

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/dojo/internal/core/config"
	"github.com/colonyops/dojo/internal/core/toast"
	"github.com/colonyops/dojo/internal/fitness"
	"github.com/colonyops/dojo/internal/printer"
	"github.com/colonyops/dojo/pkg/tuitest"
)

var testNow = time.Date(2025, 4, 13, 10, 0, 0, 0, time.UTC)

func newTestFlags(t *testing.T) *Flags {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()

	clock := func() time.Time { return testNow }
	toaster := toast.New(cfg.ToastOptions())
	t.Cleanup(toaster.Store().Close)

	return &Flags{
		Config:  &cfg,
		Journal: fitness.NewJournal(fitness.SampleData(testNow, fitness.Profile(cfg.Profile)), clock),
		Toaster: toaster,
	}
}

type runResult struct {
	stdout string
	stderr string
	err    error
}

// runApp runs the dojo command tree with args. Printer output lands in
// stderr, command data in stdout.
func runApp(t *testing.T, flags *Flags, args ...string) runResult {
	t.Helper()

	var out, errOut bytes.Buffer
	app := &cli.Command{
		Name:           "dojo",
		Writer:         &out,
		ErrWriter:      &errOut,
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}

	logCmd := NewLogCmd(flags)
	logCmd.interactive = func() bool { return false }
	summaryCmd := NewSummaryCmd(flags)
	summaryCmd.now = func() time.Time { return testNow }

	app = summaryCmd.Register(app)
	app = logCmd.Register(app)
	app = NewConfigValidateCmd(flags).Register(app)

	ctx := printer.NewContext(context.Background(), printer.New(&errOut))
	err := app.Run(ctx, append([]string{"dojo"}, args...))

	return runResult{
		stdout: out.String(),
		stderr: tuitest.StripANSI(errOut.String()),
		err:    err,
	}
}

func requireExitCode(t *testing.T, err error, code int) {
	t.Helper()
	var exit cli.ExitCoder
	require.ErrorAs(t, err, &exit)
	require.Equal(t, code, exit.ExitCode())
}

package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/dojo/internal/core/logging"
	"github.com/colonyops/dojo/internal/fitness"
	"github.com/colonyops/dojo/internal/printer"
	"github.com/colonyops/dojo/pkg/iojson"
)

type SummaryCmd struct {
	flags *Flags
	now   func() time.Time

	// flags
	jsonOutput bool
}

// NewSummaryCmd creates a new summary command
func NewSummaryCmd(flags *Flags) *SummaryCmd {
	return &SummaryCmd{flags: flags, now: time.Now}
}

// Register adds the summary command to the application
func (cmd *SummaryCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "summary",
		Usage:     "Print today's dashboard metrics",
		UsageText: "dojo summary [--json]",
		Description: `Prints the same numbers as the dashboard tab: calories against the daily
goal, latest weigh-in and distance to target, workout totals, streak and
achievements.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

// SummaryOutput is the JSON schema of `dojo summary --json`.
type SummaryOutput struct {
	Date             string  `json:"date"`
	CaloriesConsumed int     `json:"calories_consumed"`
	CalorieGoal      int     `json:"calorie_goal"`
	CaloriesLeft     int     `json:"calories_remaining"`
	Weight           float64 `json:"weight"`
	WeightChange     float64 `json:"weight_change"`
	ToTarget         float64 `json:"to_target"`
	TotalWorkouts    int     `json:"total_workouts"`
	ActiveMinutes    int     `json:"active_minutes"`
	Streak           int     `json:"streak"`
	Achievements     string  `json:"achievements"`
}

func newSummaryOutput(s fitness.DashboardStats) SummaryOutput {
	return SummaryOutput{
		Date:             s.Today,
		CaloriesConsumed: s.Calories.Consumed,
		CalorieGoal:      s.Calories.Goal,
		CaloriesLeft:     s.Calories.Remaining,
		Weight:           s.Weight.Latest,
		WeightChange:     s.Weight.Change,
		ToTarget:         s.Weight.ToTarget,
		TotalWorkouts:    s.TotalWorkouts,
		ActiveMinutes:    s.ActiveMinutes,
		Streak:           s.Streak,
		Achievements:     fmt.Sprintf("%d/%d", s.Achievements.Unlocked, s.Achievements.Total()),
	}
}

func (cmd *SummaryCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithCommand(ctx, "summary")
	logging.Component("cli").Debug().Ctx(ctx).Msg("building summary")

	stats := fitness.Dashboard(cmd.flags.Journal.Snapshot(), cmd.now())
	out := newSummaryOutput(stats)

	if cmd.jsonOutput {
		return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, out)
	}

	p := printer.New(c.Root().Writer)
	p.Header(fmt.Sprintf("%s · %s", cmd.flags.Journal.Profile().Name, out.Date))
	p.Field("Calories", fmt.Sprintf("%d / %d kcal (%d left)", out.CaloriesConsumed, out.CalorieGoal, out.CaloriesLeft))
	p.Field("Weight", fmt.Sprintf("%.1f kg (%+.1f)", out.Weight, out.WeightChange))
	p.Field("To target", fmt.Sprintf("%.1f kg", out.ToTarget))
	p.Field("Workouts", fmt.Sprintf("%d (%d min)", out.TotalWorkouts, out.ActiveMinutes))
	p.Field("Streak", fmt.Sprintf("%d days", out.Streak))
	p.Field("Achievements", out.Achievements)
	return nil
}

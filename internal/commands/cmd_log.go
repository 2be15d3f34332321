package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/dojo/internal/core/logging"
	"github.com/colonyops/dojo/internal/core/styles"
	"github.com/colonyops/dojo/internal/core/toast"
	"github.com/colonyops/dojo/internal/core/validate"
	"github.com/colonyops/dojo/internal/fitness"
	"github.com/colonyops/dojo/internal/printer"
	"github.com/colonyops/dojo/pkg/iojson"
)

// errMissingInput is returned when required flags are absent and no
// terminal is available to prompt for them.
var errMissingInput = errors.New("missing required flags and stdin is not a terminal")

type LogCmd struct {
	flags *Flags
	fr    *iojson.FileReader[ImportInput]

	// interactive reports whether a huh form can be shown.
	interactive func() bool

	// calories flags
	food     string
	calories int
	meal     string
	protein  int
	carbs    int
	fat      int

	// weight flags
	weight float64
	notes  string

	date string
}

// NewLogCmd creates a new log command
func NewLogCmd(flags *Flags) *LogCmd {
	return &LogCmd{
		flags: flags,
		fr:    &iojson.FileReader[ImportInput]{},
		interactive: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
	}
}

// Register adds the log command to the application
func (cmd *LogCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "log",
		Usage: "Add entries to the food and weight journals",
		Commands: []*cli.Command{
			{
				Name:      "calories",
				Aliases:   []string{"food"},
				Usage:     "Log a food entry",
				UsageText: "dojo log calories --food <name> --calories <kcal> [options]",
				Description: `Adds a calorie entry for today (or --date).

When --food or --calories is omitted and stdin is a terminal, an interactive
form prompts for the entry.`,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "food", Aliases: []string{"f"}, Usage: "food name", Destination: &cmd.food},
					&cli.IntFlag{Name: "calories", Aliases: []string{"k"}, Usage: "energy in kcal", Destination: &cmd.calories},
					&cli.StringFlag{
						Name:        "meal",
						Aliases:     []string{"m"},
						Usage:       "meal type (breakfast, lunch, dinner, snack)",
						Value:       string(fitness.Breakfast),
						Destination: &cmd.meal,
					},
					&cli.IntFlag{Name: "protein", Usage: "protein in grams", Destination: &cmd.protein},
					&cli.IntFlag{Name: "carbs", Usage: "carbohydrates in grams", Destination: &cmd.carbs},
					&cli.IntFlag{Name: "fat", Usage: "fat in grams", Destination: &cmd.fat},
					cmd.dateFlag(),
				},
				Action: cmd.runCalories,
			},
			{
				Name:      "weight",
				Usage:     "Log a weigh-in",
				UsageText: "dojo log weight --weight <kg> [options]",
				Description: `Adds a weigh-in for today (or --date).

When --weight is omitted and stdin is a terminal, an interactive form prompts
for the entry.`,
				Flags: []cli.Flag{
					&cli.FloatFlag{Name: "weight", Aliases: []string{"w"}, Usage: "weight in kg", Destination: &cmd.weight},
					&cli.StringFlag{Name: "notes", Aliases: []string{"n"}, Usage: "free-form notes", Destination: &cmd.notes},
					cmd.dateFlag(),
				},
				Action: cmd.runWeight,
			},
			{
				Name:  "import",
				Usage: "Log several entries from JSON input",
				UsageText: `dojo log import [options]

Read from stdin:
  echo '{"calories":[{"food":"Banana","calories":105}]}' | dojo log import

Read from file:
  dojo log import -f entries.json`,
				Description: `Adds calorie and weight entries from a JSON document.

Entries are added in order. Processing stops after 3 failures and the
remaining entries are reported as skipped.

Input JSON schema:
  {
    "calories": [
      {"food": "Banana", "calories": 105, "meal": "snack", "date": "2025-04-13"}
    ],
    "weights": [
      {"weight": 74.8, "date": "2025-04-13", "notes": "after run"}
    ]
  }`,
				Flags:  []cli.Flag{cmd.fr.Flag()},
				Action: cmd.runImport,
			},
		},
	})

	return app
}

func (cmd *LogCmd) dateFlag() cli.Flag {
	return &cli.StringFlag{
		Name:        "date",
		Aliases:     []string{"d"},
		Usage:       "entry date as YYYY-MM-DD (defaults to today)",
		Destination: &cmd.date,
	}
}

func (cmd *LogCmd) runCalories(ctx context.Context, _ *cli.Command) error {
	ctx = logging.WithCommand(ctx, "log calories")

	if strings.TrimSpace(cmd.food) == "" || cmd.calories == 0 {
		if !cmd.interactive() {
			return fmt.Errorf("--food and --calories: %w", errMissingInput)
		}
		if err := cmd.calorieForm(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("form: %w", err)
		}
	}

	tp := NewToastPrinter(cmd.flags.Toaster, printer.Ctx(ctx))
	defer tp.Close()

	entry, err := cmd.flags.Journal.AddCalorieEntry(fitness.CalorieInput{
		Date:     cmd.date,
		FoodName: cmd.food,
		Calories: cmd.calories,
		MealType: fitness.MealType(cmd.meal),
		Protein:  cmd.protein,
		Carbs:    cmd.carbs,
		Fat:      cmd.fat,
	})
	if err != nil {
		return cmd.saveFailed(ctx, err)
	}

	ctx = logging.WithEntryID(ctx, entry.ID)
	logging.Component("cli").Info().Ctx(ctx).Int("calories", entry.Calories).Msg("calorie entry logged")

	cmd.flags.Toaster.Create(toast.Props{
		Title:       "Entry saved",
		Description: fmt.Sprintf("%s · %d kcal", entry.FoodName, entry.Calories),
		Level:       toast.LevelSuccess,
	})
	return nil
}

func (cmd *LogCmd) runWeight(ctx context.Context, _ *cli.Command) error {
	ctx = logging.WithCommand(ctx, "log weight")

	if cmd.weight == 0 {
		if !cmd.interactive() {
			return fmt.Errorf("--weight: %w", errMissingInput)
		}
		if err := cmd.weightForm(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("form: %w", err)
		}
	}

	tp := NewToastPrinter(cmd.flags.Toaster, printer.Ctx(ctx))
	defer tp.Close()

	entry, err := cmd.flags.Journal.AddWeightEntry(fitness.WeightInput{
		Date:   cmd.date,
		Weight: cmd.weight,
		Notes:  cmd.notes,
	})
	if err != nil {
		return cmd.saveFailed(ctx, err)
	}

	ctx = logging.WithEntryID(ctx, entry.ID)
	logging.Component("cli").Info().Ctx(ctx).Float64("weight", entry.Weight).Msg("weight logged")

	cmd.flags.Toaster.Create(toast.Props{
		Title:       "Weight logged",
		Description: fmt.Sprintf("%.1f kg on %s", entry.Weight, entry.Date),
		Level:       toast.LevelSuccess,
	})
	return nil
}

func (cmd *LogCmd) saveFailed(ctx context.Context, err error) error {
	logging.Component("cli").Warn().Ctx(ctx).Err(err).Msg("entry rejected")
	cmd.flags.Toaster.Create(toast.Props{
		Title:       "Could not save",
		Description: err.Error(),
		Level:       toast.LevelError,
	})
	return cli.Exit("", 1)
}

func (cmd *LogCmd) calorieForm() error {
	var (
		calories = optionalInt(cmd.calories)
		protein  = optionalInt(cmd.protein)
		carbs    = optionalInt(cmd.carbs)
		fat      = optionalInt(cmd.fat)
	)
	if cmd.meal == "" {
		cmd.meal = string(fitness.Breakfast)
	}

	meals := make([]huh.Option[string], 0, len(fitness.MealTypes))
	for _, m := range fitness.MealTypes {
		meals = append(meals, huh.NewOption(string(m), string(m)))
	}

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Food").Value(&cmd.food).Validate(validate.Required),
			huh.NewInput().Title("Calories").Value(&calories).Validate(validate.PositiveInt),
			huh.NewSelect[string]().Title("Meal").Options(meals...).Value(&cmd.meal),
		),
		huh.NewGroup(
			huh.NewInput().Title("Protein (g)").Value(&protein).Validate(validate.OptionalInt),
			huh.NewInput().Title("Carbs (g)").Value(&carbs).Validate(validate.OptionalInt),
			huh.NewInput().Title("Fat (g)").Value(&fat).Validate(validate.OptionalInt),
			huh.NewInput().Title("Date").Placeholder("today").Value(&cmd.date).Validate(validate.Date),
		),
	).WithTheme(styles.FormTheme()).Run()
	if err != nil {
		return err
	}

	cmd.calories = atoi(calories)
	cmd.protein = atoi(protein)
	cmd.carbs = atoi(carbs)
	cmd.fat = atoi(fat)
	return nil
}

func (cmd *LogCmd) weightForm() error {
	var weight string

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Weight (kg)").Value(&weight).Validate(validate.PositiveFloat),
			huh.NewInput().Title("Date").Placeholder("today").Value(&cmd.date).Validate(validate.Date),
			huh.NewText().Title("Notes").Value(&cmd.notes),
		),
	).WithTheme(styles.FormTheme()).Run()
	if err != nil {
		return err
	}

	cmd.weight, _ = strconv.ParseFloat(strings.TrimSpace(weight), 64)
	return nil
}

func optionalInt(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// atoi parses a value already accepted by a validator; empty means zero.
func atoi(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}

package commands

import (
	"context"
	"fmt"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/dojo/internal/core/logging"
	"github.com/colonyops/dojo/internal/core/toast"
	"github.com/colonyops/dojo/internal/core/validate"
	"github.com/colonyops/dojo/internal/fitness"
	"github.com/colonyops/dojo/internal/printer"
	"github.com/colonyops/dojo/pkg/iojson"
)

const (
	StatusLogged  = "logged"  // StatusLogged indicates the entry was added to the journal.
	StatusFailed  = "failed"  // StatusFailed indicates the journal rejected the entry.
	StatusSkipped = "skipped" // StatusSkipped indicates the entry was not attempted due to failure threshold.
	maxFailures   = 3         // maxFailures is the number of failures before stopping the import.
)

// ImportInput is the JSON input schema for `dojo log import`.
type ImportInput struct {
	Calories []ImportCalorie `json:"calories"`
	Weights  []ImportWeight  `json:"weights"`
}

// ImportCalorie is one food entry to import.
type ImportCalorie struct {
	Food     string `json:"food"`
	Calories int    `json:"calories"`
	Meal     string `json:"meal,omitempty"`
	Protein  int    `json:"protein,omitempty"`
	Carbs    int    `json:"carbs,omitempty"`
	Fat      int    `json:"fat,omitempty"`
	Date     string `json:"date,omitempty"`
}

// ImportWeight is one weigh-in to import.
type ImportWeight struct {
	Weight float64 `json:"weight"`
	Date   string  `json:"date,omitempty"`
	Notes  string  `json:"notes,omitempty"`
}

// Validate checks the document shape. Per-entry rules are left to the
// journal so a bad entry fails alone instead of rejecting the whole input.
func (in ImportInput) Validate() error {
	if len(in.Calories) == 0 && len(in.Weights) == 0 {
		return criterio.NewFieldErrors("calories", fmt.Errorf("no entries to import"))
	}

	var errs criterio.FieldErrorsBuilder
	for i, e := range in.Calories {
		if err := validate.Date(e.Date); err != nil {
			errs = errs.Append(fmt.Sprintf("calories[%d].date", i), err)
		}
	}
	for i, e := range in.Weights {
		if err := validate.Date(e.Date); err != nil {
			errs = errs.Append(fmt.Sprintf("weights[%d].date", i), err)
		}
	}
	return errs.ToError()
}

// ImportResult is the outcome for a single entry.
type ImportResult struct {
	Kind   string `json:"kind"`
	Index  int    `json:"index"`
	ID     string `json:"id,omitempty"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// ImportOutput is the JSON output schema.
type ImportOutput struct {
	Results []ImportResult `json:"results"`
}

// Count returns the number of results with status.
func (o ImportOutput) Count(status string) int {
	count := 0
	for _, r := range o.Results {
		if r.Status == status {
			count++
		}
	}
	return count
}

type importJob struct {
	kind  string
	index int
	add   func() (string, error)
}

func (cmd *LogCmd) runImport(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithCommand(ctx, "log import")
	logger := logging.Component("cli")
	w, ew := c.Root().Writer, c.Root().ErrWriter

	input, err := cmd.fr.Read()
	if err != nil {
		logger.Error().Ctx(ctx).Err(err).Msg("failed to read input")
		return iojson.WriteErrorTo(ew, fmt.Sprintf("read input: %s", err), nil)
	}

	if err := input.Validate(); err != nil {
		logger.Error().Ctx(ctx).Err(err).Msg("input validation failed")
		return iojson.WriteErrorTo(ew, fmt.Sprintf("invalid input: %s", err), nil)
	}

	tp := NewToastPrinter(cmd.flags.Toaster, printer.Ctx(ctx))
	defer tp.Close()

	output := cmd.importEntries(ctx, cmd.importJobs(input))

	logged := output.Count(StatusLogged)
	failed := output.Count(StatusFailed)
	logger.Info().Ctx(ctx).
		Int("total", len(output.Results)).
		Int("logged", logged).
		Int("failed", failed).
		Int("skipped", output.Count(StatusSkipped)).
		Msg("import complete")

	props := toast.Props{
		Title:       "Import complete",
		Description: fmt.Sprintf("%d of %d entries logged", logged, len(output.Results)),
		Level:       toast.LevelSuccess,
	}
	if failed > 0 {
		props.Title = "Import finished with errors"
		props.Level = toast.LevelWarning
	}
	cmd.flags.Toaster.Create(props)

	return iojson.WriteWith(w, ew, output)
}

func (cmd *LogCmd) importJobs(input ImportInput) []importJob {
	j := cmd.flags.Journal
	jobs := make([]importJob, 0, len(input.Calories)+len(input.Weights))

	for i, e := range input.Calories {
		jobs = append(jobs, importJob{kind: "calories", index: i, add: func() (string, error) {
			entry, err := j.AddCalorieEntry(fitness.CalorieInput{
				Date:     e.Date,
				FoodName: e.Food,
				Calories: e.Calories,
				MealType: fitness.MealType(e.Meal),
				Protein:  e.Protein,
				Carbs:    e.Carbs,
				Fat:      e.Fat,
			})
			return entry.ID, err
		}})
	}
	for i, e := range input.Weights {
		jobs = append(jobs, importJob{kind: "weights", index: i, add: func() (string, error) {
			entry, err := j.AddWeightEntry(fitness.WeightInput{Date: e.Date, Weight: e.Weight, Notes: e.Notes})
			return entry.ID, err
		}})
	}
	return jobs
}

func (cmd *LogCmd) importEntries(ctx context.Context, jobs []importJob) ImportOutput {
	logger := logging.Component("cli")
	output := ImportOutput{Results: make([]ImportResult, 0, len(jobs))}

	failures := 0
	for _, job := range jobs {
		result := ImportResult{Kind: job.kind, Index: job.index}

		if failures >= maxFailures {
			result.Status = StatusSkipped
			output.Results = append(output.Results, result)
			continue
		}

		id, err := job.add()
		if err != nil {
			failures++
			result.Status = StatusFailed
			result.Error = err.Error()
			logger.Warn().Ctx(ctx).Str("kind", job.kind).Int("index", job.index).Err(err).Msg("entry rejected")
		} else {
			result.Status = StatusLogged
			result.ID = id
		}
		output.Results = append(output.Results, result)
	}

	return output
}

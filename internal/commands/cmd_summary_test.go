package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/dojo/pkg/tuitest"
)

func TestSummary_JSON(t *testing.T) {
	flags := newTestFlags(t)

	res := runApp(t, flags, "summary", "--json")
	require.NoError(t, res.err)

	var out SummaryOutput
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &out))
	assert.Equal(t, "2025-04-13", out.Date)
	assert.Equal(t, 700, out.CaloriesConsumed)
	assert.Equal(t, 2200, out.CalorieGoal)
	assert.Equal(t, 1500, out.CaloriesLeft)
	assert.Equal(t, 2, out.TotalWorkouts)
}

func TestSummary_Text(t *testing.T) {
	flags := newTestFlags(t)

	res := runApp(t, flags, "summary")
	require.NoError(t, res.err)

	text := tuitest.StripANSI(res.stdout)
	assert.Contains(t, text, "Fitness Hero · 2025-04-13")
	assert.Contains(t, text, "700 / 2200 kcal (1500 left)")
}

func TestSummary_ReflectsLoggedEntries(t *testing.T) {
	flags := newTestFlags(t)

	require.NoError(t, runApp(t, flags, "log", "calories", "--food", "Banana", "--calories", "105").err)
	res := runApp(t, flags, "summary", "--json")
	require.NoError(t, res.err)

	var out SummaryOutput
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &out))
	assert.Equal(t, 805, out.CaloriesConsumed)
}

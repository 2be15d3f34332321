package tui

import (
	"math/rand/v2"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/dojo/internal/core/config"
	"github.com/colonyops/dojo/internal/core/toast"
	"github.com/colonyops/dojo/internal/fitness"
	"github.com/colonyops/dojo/internal/fitness/trainer"
	"github.com/colonyops/dojo/pkg/tuitest"
)

type testEnv struct {
	clock   *testClock
	toaster *toast.Toaster
	journal *fitness.Journal
	trainer *trainer.Trainer
	cfg     *config.Config
}

func newTestModel(t *testing.T) (Model, *testEnv) {
	t.Helper()

	clock := newTestClock()
	cfg := config.DefaultConfig()
	cfg.Toasts.Limit = 3

	env := &testEnv{
		clock:   clock,
		toaster: newTestToaster(t, cfg.Toasts.Limit),
		journal: fitness.NewJournal(fitness.SampleData(clock.Now(), fitness.Profile(cfg.Profile)), clock.Now),
		cfg:     &cfg,
	}
	env.trainer = trainer.New(trainer.Options{
		History: env.journal.Snapshot().Chat,
		Rand:    rand.New(rand.NewPCG(1, 2)),
		Now:     clock.Now,
	})

	m := New(Options{
		Journal: env.journal,
		Toaster: env.toaster,
		Trainer: env.trainer,
		Config:  env.cfg,
		Now:     clock.Now,
		Rand:    rand.New(rand.NewPCG(3, 4)),
	})
	t.Cleanup(m.Close)
	return m, env
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	return send(t, m, tuitest.Type(s)...)
}

func shiftTab() tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Code: tea.KeyTab, Mod: tea.ModShift})
}

func openTitles(tt *toast.Toaster) []string {
	var titles []string
	for _, e := range tt.State().Open() {
		titles = append(titles, e.Title)
	}
	return titles
}

func TestModel_TabNavigation(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Equal(t, TabDashboard, m.ActiveTab())

	m = send(t, m, tuitest.KeyTab())
	assert.Equal(t, TabCalories, m.ActiveTab())

	m = send(t, m, shiftTab(), shiftTab())
	assert.Equal(t, TabProgress, m.ActiveTab())

	m = send(t, m, tuitest.KeyPress('5'))
	assert.Equal(t, TabAchievements, m.ActiveTab())
	assert.Contains(t, tuitest.StripANSI(m.render()), "Consistent Hero")
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t)

	next, cmd := m.Update(tuitest.KeyPress('q'))
	require.NotNil(t, cmd)
	assert.Empty(t, next.(Model).render())
}

func TestModel_DashboardShowsProfile(t *testing.T) {
	m, _ := newTestModel(t)

	out := tuitest.StripANSI(m.render())
	assert.Contains(t, out, "Welcome back, Fitness Hero!")
	assert.Contains(t, out, "700 / 2200 kcal")
	assert.Contains(t, out, "Ninja Training")
}

func addBanana(t *testing.T, m Model) Model {
	t.Helper()
	m = send(t, m, tuitest.KeyPress('2'), tuitest.KeyPress('a'))
	require.Equal(t, stateForm, m.state)

	m = typeText(t, m, "Banana")
	m = send(t, m, tuitest.KeyEnter())
	m = typeText(t, m, "105")
	// meal, protein, carbs, fat, date, then submit
	for range 6 {
		m = send(t, m, tuitest.KeyEnter())
	}
	return m
}

func TestModel_AddCalorieEntryRaisesSuccessToast(t *testing.T) {
	m, env := newTestModel(t)

	m = addBanana(t, m)

	assert.Equal(t, stateNormal, m.state)
	entries := env.journal.Calories()
	require.Len(t, entries, 4)
	assert.Equal(t, "Banana", entries[0].FoodName)
	assert.Equal(t, 105, entries[0].Calories)
	assert.Equal(t, fitness.Breakfast, entries[0].MealType)
	assert.Equal(t, "2025-04-13", entries[0].Date)

	assert.Equal(t, []string{"Entry saved"}, openTitles(env.toaster))
	out := tuitest.StripANSI(m.render())
	assert.Contains(t, out, "Entry saved")
	assert.Contains(t, out, "[u] Undo")
}

func TestModel_UndoRemovesEntry(t *testing.T) {
	m, env := newTestModel(t)
	m = addBanana(t, m)

	m = send(t, m, tuitest.KeyPress('u'))

	assert.Len(t, env.journal.Calories(), 3)
	assert.Equal(t, []string{"Entry removed"}, openTitles(env.toaster))
	assert.Contains(t, tuitest.StripANSI(m.render()), "Banana was taken back out")

	m = send(t, m, tuitest.KeyPress('u'))
	assert.Len(t, env.journal.Calories(), 3, "nothing left to undo")
}

func TestModel_FormValidationRaisesErrorToast(t *testing.T) {
	m, env := newTestModel(t)
	m = send(t, m, tuitest.KeyPress('2'), tuitest.KeyPress('a'))

	// Skip every field without typing anything.
	for range 7 {
		m = send(t, m, tuitest.KeyEnter())
	}

	assert.Equal(t, stateForm, m.state, "form stays open")
	require.NotNil(t, m.formDialog.Err())
	assert.Contains(t, m.formDialog.Err().Error(), "Food is required")

	open := env.toaster.State().Open()
	require.Len(t, open, 1)
	assert.Equal(t, "Check the form", open[0].Title)
	assert.Equal(t, toast.LevelError, open[0].Level)
	assert.Len(t, env.journal.Calories(), 3)

	m = send(t, m, tuitest.KeyEsc())
	assert.Equal(t, stateNormal, m.state)
}

func TestModel_AddWeightEntry(t *testing.T) {
	m, env := newTestModel(t)
	m = send(t, m, tuitest.KeyPress('3'), tuitest.KeyPress('a'))

	m = typeText(t, m, "74.2")
	m = send(t, m, tuitest.KeyEnter(), tuitest.KeyEnter(), tuitest.KeyEnter())

	assert.Equal(t, stateNormal, m.state)
	weights := env.journal.Weights()
	assert.InDelta(t, 74.2, weights[0].Weight, 0.001)
	assert.Equal(t, []string{"Weight logged"}, openTitles(env.toaster))
}

func TestModel_ToastClosesAfterDisplayDuration(t *testing.T) {
	m, env := newTestModel(t)

	env.toaster.Successf("hello")
	m = send(t, m, toastsChangedMsg{})
	require.True(t, m.toastController.HasToasts())
	assert.True(t, m.toastController.Ticking())
	assert.Contains(t, tuitest.StripANSI(m.render()), "hello")

	env.clock.Advance(env.cfg.Toasts.DisplayDuration - time.Millisecond)
	m = send(t, m, toastTickMsg{})
	assert.True(t, m.toastController.HasToasts())

	env.clock.Advance(time.Millisecond)
	m = send(t, m, toastTickMsg{})

	assert.False(t, m.toastController.HasToasts())
	assert.False(t, m.toastController.Ticking())
	assert.NotContains(t, tuitest.StripANSI(m.render()), "hello")

	require.Len(t, env.toaster.State().Toasts, 1, "closed toast waits for the remove delay")
	assert.False(t, env.toaster.State().Toasts[0].Open)
}

func TestModel_DismissKeys(t *testing.T) {
	m, env := newTestModel(t)

	env.toaster.Infof("one")
	env.toaster.Infof("two")
	env.toaster.Infof("three")
	m = send(t, m, toastsChangedMsg{})
	require.Len(t, m.toastController.Toasts(), 3)

	m = send(t, m, tuitest.KeyPress('x'))
	assert.Equal(t, []string{"two", "one"}, openTitles(env.toaster))

	m = send(t, m, tuitest.KeyShift('x'))
	assert.Empty(t, openTitles(env.toaster))
	assert.False(t, m.toastController.HasToasts())
}

func TestModel_DeleteCalorieEntryWithConfirm(t *testing.T) {
	m, env := newTestModel(t)
	m = send(t, m, tuitest.KeyPress('2'), tuitest.KeyPress('d'))
	require.Equal(t, stateConfirming, m.state)
	assert.Contains(t, tuitest.StripANSI(m.render()), "Remove Miso Ramen")

	m = send(t, m, tuitest.KeyEsc())
	assert.Len(t, env.journal.Calories(), 3, "cancel keeps the entry")

	m = send(t, m, tuitest.KeyPress('d'), tuitest.KeyEnter())

	assert.Equal(t, stateNormal, m.state)
	entries := env.journal.Calories()
	require.Len(t, entries, 2)
	assert.Equal(t, "Grilled Chicken", entries[0].FoodName)
	assert.Equal(t, []string{"Entry deleted"}, openTitles(env.toaster))
}

func TestModel_CreateCustomWorkout(t *testing.T) {
	m, env := newTestModel(t)
	m = send(t, m, tuitest.KeyPress('4'), tuitest.KeyPress('n'))
	require.Equal(t, stateForm, m.state)

	m = typeText(t, m, "Leg Day")
	// category, difficulty, duration
	m = send(t, m, tuitest.KeyEnter(), tuitest.KeyEnter(), tuitest.KeyEnter(), tuitest.KeyEnter())
	m = typeText(t, m, "squats, Box Jumps")
	m = send(t, m, tuitest.KeyEnter(), tuitest.KeyEnter())

	require.Equal(t, stateNormal, m.state)
	workouts := env.journal.Workouts()
	w := workouts[len(workouts)-1]
	assert.Equal(t, "Leg Day", w.Name)
	assert.True(t, w.Custom)
	require.Len(t, w.Exercises, 2)
	assert.Equal(t, "ex2", w.Exercises[0].ID, "known exercises come from the library")
	assert.Equal(t, "Box Jumps", w.Exercises[1].Name)
	assert.Equal(t, len(workouts)-1, m.workoutCursor)
	assert.Equal(t, []string{"Workout created"}, openTitles(env.toaster))
}

func TestModel_TrackWorkout(t *testing.T) {
	m, env := newTestModel(t)
	m = send(t, m, tuitest.KeyPress('4'), tuitest.KeyEnter())
	require.Equal(t, stateTracking, m.state)
	assert.Contains(t, tuitest.StripANSI(m.render()), "00:00")

	m = send(t, m, tuitest.KeyEnter())
	assert.Equal(t, stateTracking, m.state, "nothing completed yet")
	assert.Equal(t, []string{"Nothing to log yet"}, openTitles(env.toaster))

	next, cmd := m.Update(tuitest.KeyPress('s'))
	m = next.(Model)
	require.NotNil(t, cmd, "starting schedules the timer")
	assert.True(t, m.tracker.Running())

	m = send(t, m, trackerTickMsg{}, trackerTickMsg{})
	assert.Equal(t, 2*time.Second, m.tracker.Elapsed())

	m = send(t, m, tuitest.KeySpace(), tuitest.KeyPress('4'), tuitest.KeyEnter())

	assert.Equal(t, stateNormal, m.state)
	logs := env.journal.WorkoutLogs()
	assert.Equal(t, "Ninja Training", logs[0].WorkoutName)
	assert.Equal(t, 4, logs[0].Rating)
	assert.Equal(t, 1, logs[0].Duration)
	assert.Contains(t, openTitles(env.toaster), "Workout completed!")
}

func TestModel_AbandonWorkout(t *testing.T) {
	m, env := newTestModel(t)
	m = send(t, m, tuitest.KeyPress('4'), tuitest.KeyEnter(), tuitest.KeyEsc())

	assert.Equal(t, stateNormal, m.state)
	assert.Nil(t, m.tracker)
	assert.Len(t, env.journal.WorkoutLogs(), 2)
	assert.Equal(t, []string{"Workout abandoned"}, openTitles(env.toaster))
}

func TestModel_TrainerChat(t *testing.T) {
	m, env := newTestModel(t)
	before := len(env.trainer.History())

	m = send(t, m, tuitest.KeyPress('6'), tuitest.KeyPress('i'))
	require.Equal(t, stateChatting, m.state)

	m = typeText(t, m, "How do I build muscle?")
	next, cmd := m.Update(tuitest.KeyEnter())
	m = next.(Model)
	require.NotNil(t, cmd, "reply is scheduled")

	history := env.trainer.History()
	require.Len(t, history, before+1)
	assert.Equal(t, fitness.SenderUser, history[len(history)-1].Sender)
	assert.Equal(t, "How do I build muscle?", history[len(history)-1].Text)
	assert.Equal(t, 1, m.pendingReplies)
	assert.Contains(t, tuitest.StripANSI(m.render()), "Coach is typing")

	m = send(t, m, trainerReplyMsg{})
	history = env.trainer.History()
	require.Len(t, history, before+2)
	assert.Equal(t, fitness.SenderBot, history[len(history)-1].Sender)
	assert.Contains(t, trainer.Responses, history[len(history)-1].Text)
	assert.Zero(t, m.pendingReplies)

	m = send(t, m, tuitest.KeyEsc())
	assert.Equal(t, stateNormal, m.state)
}

func TestModel_TrainerSuggestedQuestion(t *testing.T) {
	m, env := newTestModel(t)
	m = send(t, m, tuitest.KeyPress('6'), tuitest.KeyDown(), tuitest.KeyEnter())

	history := env.trainer.History()
	assert.Equal(t, trainer.SuggestedQuestions[1], history[len(history)-1].Text)
	assert.Equal(t, stateNormal, m.state)
}

func TestModel_TrainerIgnoresEmptyMessage(t *testing.T) {
	m, env := newTestModel(t)
	before := len(env.trainer.History())

	m = send(t, m, tuitest.KeyPress('6'), tuitest.KeyPress('i'))
	_, cmd := m.Update(tuitest.KeyEnter())

	assert.Nil(t, cmd)
	assert.Len(t, env.trainer.History(), before)
}

func TestModel_ProgressChartSwitching(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, tuitest.KeyPress('7'))
	assert.Equal(t, chartWeight, m.chart)
	assert.Len(t, m.series.Weight, progressDays)
	assert.Contains(t, tuitest.StripANSI(m.render()), "kg")

	m = send(t, m, tuitest.KeyPress('l'))
	assert.Equal(t, chartCalories, m.chart)
	assert.Contains(t, tuitest.StripANSI(m.render()), "kcal")

	m = send(t, m, tuitest.KeyPress('h'), tuitest.KeyPress('h'))
	assert.Equal(t, chartWorkouts, m.chart)
}

func TestModel_HelpToggle(t *testing.T) {
	m, _ := newTestModel(t)
	assert.False(t, m.help.ShowAll)

	m = send(t, m, tuitest.KeyPress('?'))
	assert.True(t, m.help.ShowAll)
	assert.Contains(t, tuitest.StripANSI(m.render()), "dismiss all")
}

func TestModel_AchievementFilterCycles(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, tuitest.KeyPress('5'))
	assert.Equal(t, filterAll, m.achievementFilter)

	m = send(t, m, tuitest.KeyPress('f'))
	assert.Equal(t, filterUnlocked, m.achievementFilter)
	out := tuitest.StripANSI(m.render())
	assert.Contains(t, out, "First Step")
	assert.NotContains(t, out, "Consistent Hero")

	m = send(t, m, tuitest.KeyPress('f'))
	assert.Equal(t, filterInProgress, m.achievementFilter)
	out = tuitest.StripANSI(m.render())
	assert.NotContains(t, out, "First Step")
	assert.Contains(t, out, "Consistent Hero")

	m = send(t, m, tuitest.KeyPress('f'))
	assert.Equal(t, filterAll, m.achievementFilter)
}

func TestRenderAchievementList_EmptyStates(t *testing.T) {
	locked := []fitness.Achievement{{Name: "Locked"}}
	unlocked := []fitness.Achievement{{Name: "Done", Unlocked: true}}

	out := tuitest.StripANSI(renderAchievementList(filterAchievements(locked, filterUnlocked), filterUnlocked))
	assert.Contains(t, out, "No achievements unlocked yet")

	out = tuitest.StripANSI(renderAchievementList(filterAchievements(unlocked, filterInProgress), filterInProgress))
	assert.Contains(t, out, "All achievements unlocked!")
}

func TestModel_TrackWorkoutWithNotes(t *testing.T) {
	m, env := newTestModel(t)
	m = send(t, m, tuitest.KeyPress('4'), tuitest.KeyEnter())
	require.Equal(t, stateTracking, m.state)
	assert.Equal(t, defaultRating, m.trackerRating)

	m = send(t, m, tuitest.KeyTab())
	require.True(t, m.trackerNotes.Focused())
	m = typeText(t, m, "felt strong")
	assert.False(t, m.tracker.Running(), "typing s in notes does not start the timer")

	m = send(t, m, tuitest.KeyEnter())
	require.False(t, m.trackerNotes.Focused())
	assert.Equal(t, stateTracking, m.state, "enter in notes does not finish")

	m = send(t, m, tuitest.KeySpace(), tuitest.KeyEnter())

	require.Equal(t, stateNormal, m.state)
	logs := env.journal.WorkoutLogs()
	assert.Equal(t, "felt strong", logs[0].Notes)
	assert.Equal(t, 5, logs[0].Rating)
}

func TestModel_EditCustomWorkout(t *testing.T) {
	m, env := newTestModel(t)
	created, err := env.journal.SaveWorkout(fitness.WorkoutInput{
		Name:      "Ronin Circuit",
		Exercises: []fitness.Exercise{fitness.NewExercise("Burpees")},
	})
	require.NoError(t, err)

	m = send(t, m, tuitest.KeyPress('4'), tuitest.KeyDown(), tuitest.KeyDown(), tuitest.KeyDown(), tuitest.KeyPress('e'))
	require.Equal(t, stateForm, m.state)
	require.Equal(t, created.ID, m.editingID)
	assert.Equal(t, "Edit Workout", m.formDialog.Title)

	m = typeText(t, m, " II")
	// category, difficulty, duration, exercises, description, then submit
	for range 6 {
		m = send(t, m, tuitest.KeyEnter())
	}

	require.Equal(t, stateNormal, m.state)
	assert.Empty(t, m.editingID)
	workouts := env.journal.Workouts()
	require.Len(t, workouts, 4)
	got := workouts[3]
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Ronin Circuit II", got.Name)
	require.Len(t, got.Exercises, 1)
	assert.Equal(t, created.Exercises[0].ID, got.Exercises[0].ID, "existing exercises keep their ids")
	assert.Equal(t, []string{"Workout updated"}, openTitles(env.toaster))
}

func TestModel_EditPresetWorkoutRefused(t *testing.T) {
	m, env := newTestModel(t)
	m = send(t, m, tuitest.KeyPress('4'), tuitest.KeyPress('e'))

	assert.Equal(t, stateNormal, m.state)
	assert.Equal(t, []string{"Preset workout"}, openTitles(env.toaster))
}

func TestModel_ParseExercisesSkipsRepeats(t *testing.T) {
	m, _ := newTestModel(t)

	got := m.parseExercises("Push-ups, push-ups, Box Jumps, box jumps", nil)

	require.Len(t, got, 2)
	assert.Equal(t, "Push-ups", got[0].Name)
	assert.Equal(t, "Box Jumps", got[1].Name)
}

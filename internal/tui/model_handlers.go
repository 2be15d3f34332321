package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/dojo/internal/core/toast"
	"github.com/colonyops/dojo/internal/fitness"
	"github.com/colonyops/dojo/internal/fitness/trainer"
)

// undoAction is attached to toasts whose change can be reverted with `u`.
type undoAction struct {
	Label   string
	EntryID string
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	m.chatInput.SetWidth(max(msg.Width-8, 20))
	m.chatView.SetWidth(max(msg.Width-4, 20))
	m.chatView.SetHeight(max(msg.Height-12, 3))
	m.markdown = newMarkdownRenderer(msg.Width - 8)
	m.refreshChat()
	return m, nil
}

// syncToasts pulls the latest store state into the controller and starts
// the expiry ticker when toasts become visible.
func (m *Model) syncToasts() tea.Cmd {
	state, ok := m.toastBridge.Drain()
	if !ok {
		return nil
	}
	m.toastController.Sync(state)
	if m.toastController.HasToasts() && !m.toastController.Ticking() {
		m.toastController.SetTicking(true)
		return scheduleToastTick()
	}
	return nil
}

func (m Model) handleToastsChanged() (tea.Model, tea.Cmd) {
	return m, tea.Batch(m.syncToasts(), m.toastBridge.WaitForSignal())
}

func (m Model) handleToastTick() (tea.Model, tea.Cmd) {
	m.toastController.Tick()
	m.syncToasts()

	if m.toastController.HasToasts() {
		return m, scheduleToastTick()
	}
	m.toastController.SetTicking(false)
	return m, nil
}

func (m Model) handleTrackerTick() (tea.Model, tea.Cmd) {
	if m.tracker == nil || !m.tracker.Running() {
		m.trackerTicking = false
		return m, nil
	}
	m.tracker.Tick(trackerTickInterval)
	return m, scheduleTrackerTick()
}

func (m Model) handleTrainerReply() (tea.Model, tea.Cmd) {
	m.trainer.Reply()
	m.pendingReplies = max(m.pendingReplies-1, 0)
	m.refreshChat()
	return m, nil
}

func (m Model) handleSpinnerTick(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	if m.pendingReplies == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

// handleFallthrough forwards non-key messages (cursor blinks and similar)
// to whichever input owns focus.
func (m Model) handleFallthrough(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state {
	case stateChatting:
		m.chatInput, cmd = m.chatInput.Update(msg)
	case stateForm:
		if m.formDialog != nil {
			m.formDialog, cmd = m.formDialog.Update(msg)
		}
	case stateTracking:
		if m.trackerNotes.Focused() {
			m.trackerNotes, cmd = m.trackerNotes.Update(msg)
		}
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()
	if keyStr == "ctrl+c" {
		return m.quit()
	}

	switch m.state {
	case stateForm:
		return m.handleFormKey(msg)
	case stateConfirming:
		return m.handleConfirmKey(keyStr)
	case stateTracking:
		return m.handleTrackerKey(msg, keyStr)
	case stateChatting:
		return m.handleChatKey(msg, keyStr)
	}

	return m.handleNormalKey(msg, keyStr)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

func (m Model) handleNormalKey(msg tea.KeyPressMsg, keyStr string) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.NextTab):
		m.activeTab = (m.activeTab + 1) % tabCount
		return m, nil
	case key.Matches(msg, m.keys.PrevTab):
		m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		return m, nil
	case key.Matches(msg, m.keys.Dismiss):
		m.toastController.Dismiss()
		return m, m.syncToasts()
	case key.Matches(msg, m.keys.DismissAll):
		m.toaster.DismissAll()
		return m, m.syncToasts()
	case key.Matches(msg, m.keys.Undo):
		return m.undo()
	}

	if len(keyStr) == 1 && keyStr[0] >= '1' && keyStr[0] < '1'+byte(tabCount) {
		m.activeTab = Tab(keyStr[0] - '1')
		return m, nil
	}

	switch m.activeTab {
	case TabCalories:
		return m.handleCaloriesKey(msg)
	case TabWeight:
		if key.Matches(msg, m.keys.Add) {
			return m.openWeightForm()
		}
	case TabWorkouts:
		return m.handleWorkoutsKey(msg)
	case TabAchievements:
		if key.Matches(msg, m.keys.Filter) {
			m.achievementFilter = (m.achievementFilter + 1) % filterCount
		}
	case TabTrainer:
		return m.handleTrainerKey(msg)
	case TabProgress:
		return m.handleProgressKey(keyStr)
	}
	return m, nil
}

func (m Model) handleCaloriesKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	entries := m.journal.Calories()
	switch {
	case key.Matches(msg, m.keys.Add):
		return m.openCalorieForm()
	case key.Matches(msg, m.keys.Up):
		m.calorieCursor = max(m.calorieCursor-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.calorieCursor = min(m.calorieCursor+1, max(len(entries)-1, 0))
	case key.Matches(msg, m.keys.Delete):
		if m.calorieCursor >= len(entries) {
			return m, nil
		}
		e := entries[m.calorieCursor]
		m.pendingDelete = e.ID
		m.modal = NewModal("Delete Entry", fmt.Sprintf("Remove %s (%d kcal) from %s?", e.FoodName, e.Calories, e.Date))
		m.state = stateConfirming
	}
	return m, nil
}

func (m Model) handleConfirmKey(keyStr string) (tea.Model, tea.Cmd) {
	switch keyStr {
	case "left", "right", "h", "l", "tab":
		m.modal.ToggleSelection()
	case "enter":
		m.state = stateNormal
		if !m.modal.ConfirmSelected() {
			m.pendingDelete = ""
			return m, nil
		}
		return m.deletePendingEntry()
	case "esc", "n":
		m.state = stateNormal
		m.pendingDelete = ""
	case "y":
		m.state = stateNormal
		return m.deletePendingEntry()
	}
	return m, nil
}

func (m Model) deletePendingEntry() (tea.Model, tea.Cmd) {
	id := m.pendingDelete
	m.pendingDelete = ""

	entry, err := m.journal.RemoveCalorieEntry(id)
	if err != nil {
		m.log.Error().Err(err).Str("id", id).Msg("delete calorie entry")
		m.toaster.Create(toast.Props{
			Title:       "Could not delete entry",
			Description: err.Error(),
			Level:       toast.LevelError,
		})
		return m, m.syncToasts()
	}

	m.calorieCursor = min(m.calorieCursor, max(len(m.journal.Calories())-1, 0))
	m.refreshSeries()
	m.toaster.Create(toast.Props{
		Title:       "Entry deleted",
		Description: fmt.Sprintf("%s removed from your food log.", entry.FoodName),
		Level:       toast.LevelSuccess,
	})
	return m, m.syncToasts()
}

// undo reverts the change attached to the newest undoable toast.
func (m Model) undo() (tea.Model, tea.Cmd) {
	for _, t := range m.toastController.Toasts() {
		action, ok := t.Action.(undoAction)
		if !ok {
			continue
		}

		t.SetOpen(false)
		entry, err := m.journal.RemoveCalorieEntry(action.EntryID)
		if err != nil {
			m.log.Warn().Err(err).Str("id", action.EntryID).Msg("undo calorie entry")
			m.toaster.Create(toast.Props{
				Title:       "Nothing to undo",
				Description: "That entry is already gone.",
				Level:       toast.LevelWarning,
			})
			return m, m.syncToasts()
		}

		m.calorieCursor = min(m.calorieCursor, max(len(m.journal.Calories())-1, 0))
		m.refreshSeries()
		m.toaster.Create(toast.Props{
			Title:       "Entry removed",
			Description: fmt.Sprintf("%s was taken back out of your log.", entry.FoodName),
		})
		return m, m.syncToasts()
	}
	return m, nil
}

func (m Model) handleWorkoutsKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	workouts := m.journal.Workouts()
	switch {
	case key.Matches(msg, m.keys.New):
		return m.openWorkoutForm()
	case key.Matches(msg, m.keys.Edit):
		if m.workoutCursor >= len(workouts) {
			return m, nil
		}
		w := workouts[m.workoutCursor]
		if !w.Custom {
			m.toaster.Create(toast.Props{
				Title:       "Preset workout",
				Description: "Only custom workouts can be edited.",
				Level:       toast.LevelWarning,
			})
			return m, m.syncToasts()
		}
		return m.openEditWorkoutForm(w)
	case key.Matches(msg, m.keys.Up):
		m.workoutCursor = max(m.workoutCursor-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.workoutCursor = min(m.workoutCursor+1, max(len(workouts)-1, 0))
	case key.Matches(msg, m.keys.Start):
		if m.workoutCursor >= len(workouts) {
			return m, nil
		}
		m.tracker = fitness.NewTracker(workouts[m.workoutCursor])
		m.trackerCursor = 0
		m.trackerRating = defaultRating
		m.trackerNotes.Reset()
		m.trackerNotes.Blur()
		m.state = stateTracking
	}
	return m, nil
}

func (m Model) handleTrackerKey(msg tea.KeyPressMsg, keyStr string) (tea.Model, tea.Cmd) {
	if m.trackerNotes.Focused() {
		switch keyStr {
		case "esc", "enter", "tab":
			m.trackerNotes.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.trackerNotes, cmd = m.trackerNotes.Update(msg)
		return m, cmd
	}

	count := len(m.tracker.Exercises())

	switch keyStr {
	case "tab":
		return m, m.trackerNotes.Focus()
	case "s":
		if m.tracker.Running() {
			m.tracker.Pause()
			return m, nil
		}
		m.tracker.Start()
		if !m.trackerTicking {
			m.trackerTicking = true
			return m, scheduleTrackerTick()
		}
	case "up", "k":
		m.trackerCursor = max(m.trackerCursor-1, 0)
	case "down", "j":
		m.trackerCursor = min(m.trackerCursor+1, max(count-1, 0))
	case "space":
		if err := m.tracker.Toggle(m.trackerCursor); err != nil {
			m.log.Warn().Err(err).Int("index", m.trackerCursor).Msg("toggle exercise")
		}
	case "1", "2", "3", "4", "5":
		m.trackerRating = int(keyStr[0] - '0')
	case "enter":
		return m.completeWorkout()
	case "esc":
		name := m.tracker.Workout().Name
		m.tracker.Pause()
		m.tracker = nil
		m.state = stateNormal
		m.toaster.Create(toast.Props{
			Title:       "Workout abandoned",
			Description: name + " was not logged.",
		})
		return m, m.syncToasts()
	}
	return m, nil
}

func (m Model) completeWorkout() (tea.Model, tea.Cmd) {
	entry, err := m.tracker.Complete(strings.TrimSpace(m.trackerNotes.Value()), m.trackerRating)
	if errors.Is(err, fitness.ErrNothingCompleted) {
		m.toaster.Create(toast.Props{
			Title:       "Nothing to log yet",
			Description: "Complete at least one exercise first.",
			Level:       toast.LevelWarning,
		})
		return m, m.syncToasts()
	}

	if err == nil {
		entry, err = m.journal.LogWorkout(entry)
	}
	if err != nil {
		m.log.Error().Err(err).Msg("log workout")
		m.toaster.Create(toast.Props{
			Title:       "Could not save workout",
			Description: err.Error(),
			Level:       toast.LevelError,
		})
		return m, m.syncToasts()
	}

	m.tracker = nil
	m.trackerNotes.Reset()
	m.state = stateNormal
	m.refreshSeries()
	m.toaster.Create(toast.Props{
		Title:       "Workout completed!",
		Description: fmt.Sprintf("%s logged: %d min.", entry.WorkoutName, entry.Duration),
		Level:       toast.LevelSuccess,
	})
	return m, m.syncToasts()
}

func (m Model) handleTrainerKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	n := len(trainer.SuggestedQuestions)
	switch {
	case key.Matches(msg, m.keys.Chat):
		m.state = stateChatting
		return m, m.chatInput.Focus()
	case key.Matches(msg, m.keys.Up):
		m.suggestion = (m.suggestion + n - 1) % n
	case key.Matches(msg, m.keys.Down):
		m.suggestion = (m.suggestion + 1) % n
	case key.Matches(msg, m.keys.Start):
		return m.sendChat(trainer.SuggestedQuestions[m.suggestion])
	case msg.String() == "pgup":
		m.chatView.ScrollUp(3)
	case msg.String() == "pgdown":
		m.chatView.ScrollDown(3)
	}
	return m, nil
}

func (m Model) handleChatKey(msg tea.KeyPressMsg, keyStr string) (tea.Model, tea.Cmd) {
	switch keyStr {
	case "esc":
		m.chatInput.Blur()
		m.state = stateNormal
		return m, nil
	case "enter":
		text := m.chatInput.Value()
		m.chatInput.SetValue("")
		return m.sendChat(text)
	}

	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}

// sendChat posts text to the trainer and schedules its reply after the
// configured delay.
func (m Model) sendChat(text string) (tea.Model, tea.Cmd) {
	if _, err := m.trainer.Send(text); err != nil {
		if !errors.Is(err, trainer.ErrEmptyMessage) {
			m.log.Error().Err(err).Msg("send chat message")
		}
		return m, nil
	}

	m.refreshChat()

	reply := tea.Tick(m.cfg.Trainer.ReplyDelay, func(time.Time) tea.Msg {
		return trainerReplyMsg{}
	})
	m.pendingReplies++
	if m.pendingReplies == 1 {
		return m, tea.Batch(reply, m.spinner.Tick)
	}
	return m, reply
}

func (m Model) handleProgressKey(keyStr string) (tea.Model, tea.Cmd) {
	switch keyStr {
	case "left", "h":
		m.chart = (m.chart + chartCount - 1) % chartCount
	case "right", "l":
		m.chart = (m.chart + 1) % chartCount
	}
	return m, nil
}

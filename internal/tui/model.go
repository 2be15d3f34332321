package tui

import (
	"math/rand/v2"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textinput"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog"

	"github.com/colonyops/dojo/internal/core/config"
	"github.com/colonyops/dojo/internal/core/logging"
	"github.com/colonyops/dojo/internal/core/styles"
	"github.com/colonyops/dojo/internal/core/toast"
	"github.com/colonyops/dojo/internal/fitness"
	"github.com/colonyops/dojo/internal/fitness/trainer"
	"github.com/colonyops/dojo/internal/tui/components/form"
)

// UIState represents the current state of the TUI.
type UIState int

const (
	stateNormal UIState = iota
	stateForm
	stateConfirming
	stateTracking
	stateChatting
)

type formKind int

const (
	formNone formKind = iota
	formCalorie
	formWeight
	formWorkout
)

// Options configures the TUI model. Nil fields get working defaults backed
// by sample data, which is what tests rely on.
type Options struct {
	Journal *fitness.Journal
	Toaster *toast.Toaster
	Trainer *trainer.Trainer
	Config  *config.Config
	Now     func() time.Time
	Rand    *rand.Rand
	Build   BuildInfo
}

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	journal *fitness.Journal
	toaster *toast.Toaster
	trainer *trainer.Trainer
	cfg     *config.Config
	now     func() time.Time
	rng     *rand.Rand
	log     zerolog.Logger
	build   BuildInfo

	width     int
	height    int
	activeTab Tab
	state     UIState
	quitting  bool

	keys keyMap
	help help.Model

	toastBridge     *ToastBridge
	toastController *ToastController
	toastView       *ToastView

	formDialog    *form.Dialog
	formKind      formKind
	modal         Modal
	pendingDelete string
	editingID     string

	calorieCursor     int
	workoutCursor     int
	achievementFilter int

	tracker        *fitness.Tracker
	trackerCursor  int
	trackerRating  int
	trackerTicking bool
	trackerNotes   textinput.Model

	chatInput      textinput.Model
	chatView       viewport.Model
	spinner        spinner.Model
	pendingReplies int
	suggestion     int

	chart  int
	series fitness.Series

	markdown *glamour.TermRenderer
}

type trackerTickMsg time.Time

type trainerReplyMsg struct{}

// New creates a new TUI model.
func New(opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Config == nil {
		cfg := config.DefaultConfig()
		opts.Config = &cfg
	}
	if opts.Rand == nil {
		seed := uint64(opts.Now().UnixNano())
		opts.Rand = rand.New(rand.NewPCG(seed, seed>>1))
	}
	if opts.Toaster == nil {
		opts.Toaster = toast.New(opts.Config.ToastOptions())
	}
	if opts.Journal == nil {
		profile := fitness.Profile(opts.Config.Profile)
		opts.Journal = fitness.NewJournal(fitness.SampleData(opts.Now(), profile), opts.Now)
	}
	if opts.Trainer == nil {
		opts.Trainer = trainer.New(trainer.Options{
			History: opts.Journal.Snapshot().Chat,
			Rand:    opts.Rand,
			Now:     opts.Now,
		})
	}

	ti := textinput.New()
	ti.Prompt = "› "
	ti.Placeholder = "Ask your trainer anything..."
	ti.SetWidth(defaultWidth - 8)
	tiStyles := textinput.DefaultStyles(true)
	tiStyles.Cursor.Color = styles.ColorPrimary
	tiStyles.Focused.Placeholder = styles.TextMutedStyle
	ti.SetStyles(tiStyles)

	notes := textinput.New()
	notes.Prompt = "Notes: "
	notes.Placeholder = "How did the workout feel?"
	notes.SetWidth(chartBarWidth + 10)
	notes.SetStyles(tiStyles)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.TextMutedStyle

	controller := NewToastController(opts.Config.Toasts.DisplayDuration, opts.Now)

	m := Model{
		journal:         opts.Journal,
		toaster:         opts.Toaster,
		trainer:         opts.Trainer,
		cfg:             opts.Config,
		now:             opts.Now,
		rng:             opts.Rand,
		log:             logging.Component("tui"),
		build:           opts.Build,
		keys:            defaultKeyMap(),
		help:            help.New(),
		toastBridge:     NewToastBridge(opts.Toaster),
		toastController: controller,
		toastView:       NewToastView(controller),
		chatInput:       ti,
		trackerNotes:    notes,
		chatView:        viewport.New(viewport.WithWidth(defaultWidth-4), viewport.WithHeight(defaultHeight-12)),
		spinner:         s,
	}
	m.markdown = newMarkdownRenderer(defaultWidth - 8)
	m.refreshSeries()
	m.refreshChat()
	return m
}

func newMarkdownRenderer(width int) *glamour.TermRenderer {
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(max(width, 20)),
	)
	if err != nil {
		return nil
	}
	return r
}

// Init starts listening for toast store updates.
func (m Model) Init() tea.Cmd {
	m.log.Debug().Msg("tui started")
	return m.toastBridge.WaitForSignal()
}

// Close releases the toast subscription.
func (m Model) Close() {
	m.toastBridge.Close()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	// Toasts
	case toastsChangedMsg:
		return m.handleToastsChanged()
	case toastTickMsg:
		return m.handleToastTick()

	// Workout tracking and trainer chat
	case trackerTickMsg:
		return m.handleTrackerTick()
	case trainerReplyMsg:
		return m.handleTrainerReply()
	case spinner.TickMsg:
		return m.handleSpinnerTick(msg)

	// Input
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	return m.handleFallthrough(msg)
}

// View renders the TUI.
func (m Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func (m Model) render() string {
	if m.quitting {
		return ""
	}

	w, h := m.width, m.height
	if w == 0 {
		w = defaultWidth
	}
	if h == 0 {
		h = defaultHeight
	}

	mainView := m.renderMain(w, h)

	content := mainView
	switch m.state {
	case stateForm:
		if m.formDialog != nil {
			content = overlayCenter(mainView, m.renderForm(), w, h)
		}
	case stateConfirming:
		content = m.modal.Overlay(mainView, w, h)
	case stateTracking:
		if m.tracker != nil {
			content = overlayCenter(mainView, m.renderTracker(), w, h)
		}
	}

	// Toasts sit above every other layer.
	if m.toastController.HasToasts() {
		content = m.toastView.Overlay(content, w, h)
	}
	return content
}

// ActiveTab returns the tab currently shown.
func (m Model) ActiveTab() Tab {
	return m.activeTab
}

func (m *Model) refreshSeries() {
	m.series = fitness.ProgressSeries(m.journal.Snapshot(), m.now(), progressDays, m.rng)
}

func scheduleTrackerTick() tea.Cmd {
	return tea.Tick(trackerTickInterval, func(t time.Time) tea.Msg {
		return trackerTickMsg(t)
	})
}

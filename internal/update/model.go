package update

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"go.uber.org/zap"

	"github.com/mdrakibgolder/AI-Enhanced-Productivity-Tools/internal/analytics"
	"github.com/mdrakibgolder/AI-Enhanced-Productivity-Tools/internal/enrich"
	"github.com/mdrakibgolder/AI-Enhanced-Productivity-Tools/internal/model"
	"github.com/mdrakibgolder/AI-Enhanced-Productivity-Tools/internal/pomodoro"
	"github.com/mdrakibgolder/AI-Enhanced-Productivity-Tools/internal/reminder"
	"github.com/mdrakibgolder/AI-Enhanced-Productivity-Tools/internal/storage"
)

type View string

const (
	ViewTasks     View = "Tasks"
	ViewPlan      View = "Plan"
	ViewFocus     View = "Focus"
	ViewDashboard View = "Dashboard"
	ViewInsights  View = "Insights"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Tasks     string
	Plan      string
	Focus     string
	Dashboard string
	Insights  string
	Help      string
	Quit      string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

// FocusState tracks the countdown for the pomodoro machine. TickSeq is
// bumped every time a new countdown starts; ticks carrying a stale
// sequence are ignored, so only one ticker drives the timer.
type FocusState struct {
	TaskID       string
	TaskTitle    string
	RemainingSec int
	Running      bool
	TickSeq      int
}

type Model struct {
	CurrentView    View
	SelectedTaskID string
	Tasks          []model.Task
	Sessions       []model.Session
	Cursor         int
	Capturing      bool

	Plan        enrich.PlanResult
	PlanLoading bool
	Suggestions enrich.SuggestionsResult
	Insights    []analytics.Insight
	Dashboard   analytics.Dashboard

	Focus   FocusState
	Machine *pomodoro.Machine

	Repo     storage.Repository
	Reminder *reminder.Engine
	Enricher *enrich.Enricher
	Log      *zap.Logger

	Palette     CommandPaletteState
	HelpVisible bool
	Status      StatusBar
	Keys        GlobalKeyMap
	Quitting    bool
	LastError   error

	rng *rand.Rand

	quickAddInput textinput.Model
	commandInput  textinput.Model
	planSpinner   spinner.Model
	focusProgress progress.Model
	helpModel     help.Model
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type DataLoadedMsg struct {
	Tasks    []model.Task
	Sessions []model.Session
}

type PlanReadyMsg struct {
	Result enrich.PlanResult
}

type SuggestionsReadyMsg struct {
	Result enrich.SuggestionsResult
}

type FocusTickMsg struct {
	Seq int
}

type DueAlertMsg struct {
	Alert reminder.DueAlert
}

func NewModel() Model {
	m := Model{
		CurrentView: ViewTasks,
		Machine:     pomodoro.NewMachine(pomodoro.DefaultSettings()),
		Log:         zap.NewNop(),
		Keys: GlobalKeyMap{
			Tasks:     "1",
			Plan:      "2",
			Focus:     "3",
			Dashboard: "4",
			Insights:  "5",
			Help:      "?",
			Quit:      "q",
		},
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	m.Focus.RemainingSec = m.Machine.PhaseMinutes() * 60
	m.initBubbleComponents()
	return m
}

// Deps carries the runtime collaborators. Any of them may be nil: a nil
// repo keeps tasks in memory only, a nil enricher keeps output
// rule-based.
type Deps struct {
	Repo     storage.Repository
	Reminder *reminder.Engine
	Enricher *enrich.Enricher
	Log      *zap.Logger
	Settings pomodoro.Settings
	Seed     int64
}

func NewModelWithDeps(deps Deps) Model {
	m := NewModel()
	m.Repo = deps.Repo
	m.Reminder = deps.Reminder
	m.Enricher = deps.Enricher
	if deps.Log != nil {
		m.Log = deps.Log
	}
	if deps.Settings != (pomodoro.Settings{}) {
		m.Machine = pomodoro.NewMachine(deps.Settings)
		m.Focus.RemainingSec = m.Machine.PhaseMinutes() * 60
	}
	if deps.Seed != 0 {
		m.rng = rand.New(rand.NewSource(deps.Seed))
	}
	return m
}

func (m *Model) initBubbleComponents() {
	quickAdd := textinput.New()
	quickAdd.Placeholder = "task title (pri:high cat:work due:today est:30)"
	quickAdd.CharLimit = 160
	m.quickAddInput = quickAdd

	command := textinput.New()
	command.Placeholder = "add | done | start | refresh | show"
	command.CharLimit = 160
	m.commandInput = command

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	m.planSpinner = spin

	m.focusProgress = progress.New(progress.WithDefaultGradient())
	m.helpModel = help.New()
}

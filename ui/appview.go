package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"transitionbutton/anim"
	"transitionbutton/button"
	"transitionbutton/config"
	"transitionbutton/geom"
	appmodel "transitionbutton/model"
)

type screen int

const (
	screenButton screen = iota
	screenHelp
	// shown after an expand completes, dismissed with back
	screenTransitioned
)

// rows taken by everything but the button area
const (
	headerRows = 1
	statusRows = 1
	logRows    = 6
	logChrome  = 2
	footerRows = 1
)

type AppView struct {
	// Reference to core data model
	dataModel *appmodel.Model

	button   *button.Model
	area     *button.FixedViewport // shared with the button as its viewport
	eventLog viewport.Model
	help     help.Model
	keys     keyMap

	// Window state
	width  int
	height int
	ready  bool
	screen screen

	helpRendered string
	status       string
	logSeen      int
}

func NewAppView(cfg *config.Config, version, license string) AppView {
	return newAppView(cfg, version, license, anim.DefaultTimingProfile())
}

func newAppView(cfg *config.Config, version, license string, profile anim.TimingProfile) AppView {
	dataModel := appmodel.NewModel(cfg, version, license)
	area := &button.FixedViewport{}
	bc := cfg.Button

	b := button.New(bc.Title, buttonFrame(bc, 0, 0),
		button.WithImage(bc.Icon),
		button.WithTimingProfile(profile),
		button.WithViewport(area),
		button.WithLogger(config.DebugLog),
		button.WithTransitionHook(dataModel.RecordTransition),
		button.WithCornerRadius(bc.CornerRadius),
		button.WithColors(lipgloss.Color(bc.ForegroundColor), lipgloss.Color(bc.BackgroundColor)),
		button.WithSpinnerColor(lipgloss.Color(bc.SpinnerColor)),
		button.WithDisabledBackgroundColor(lipgloss.Color(bc.DisabledColor)),
	)

	if config.DebugLog != nil {
		config.DebugLog.Printf("[AppView] button %d created (%dx%d cells, outcome %s)",
			b.ID(), bc.Width, bc.Height, cfg.Task.Outcome)
	}

	return AppView{
		dataModel: dataModel,
		button:    b,
		area:      area,
		eventLog:  viewport.New(0, logRows),
		help:      help.New(),
		keys:      newKeyMap(cfg.Keybindings),
	}
}

// buttonFrame centres the configured button in an area of cols x rows cells
func buttonFrame(bc config.ButtonConfig, cols, rows int) geom.Rect {
	x := max((cols-bc.Width)/2, 0)
	y := max((rows-bc.Height)/2, 0)
	return geom.Rect{
		X: float64(x),
		Y: float64(y * button.RowPoints),
		W: float64(bc.Width),
		H: float64(bc.Height * button.RowPoints),
	}
}

func (a AppView) buttonRows() int {
	return max(a.height-headerRows-statusRows-logRows-logChrome-footerRows, 1)
}

func (a *AppView) relayout() {
	rows := a.buttonRows()
	*a.area = button.CellViewport(a.width, rows)
	a.button.SetFrame(buttonFrame(a.dataModel.Config.Button, a.width, rows))

	a.eventLog.Width = max(a.width-2, 1)
	a.eventLog.Height = logRows
	a.help.Width = a.width

	if config.DebugLog != nil {
		config.DebugLog.Printf("[AppView] relayout %dx%d, button frame %+v", a.width, a.height, a.button.Frame())
	}
}

func (a AppView) Init() tea.Cmd {
	return a.button.Init()
}

// Package tui renders pipeline progress as an interactive terminal bar.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/wotr-save-editor/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/wotr-save-editor/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/wotr-save-editor/internal/adapters/driving/tui/styles"
)

const maxBarWidth = 60

// App is a progress display following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
//
// The producer sends messages.StageChanged values on the update stream and
// ends with messages.PipelineFinished. A closed stream also ends the display.
type App struct {
	title   string
	updates <-chan tea.Msg

	// cancel stops the pipeline when the user aborts.
	cancel func()

	styles *styles.Styles
	keys   *keymap.KeyMap
	bar    progress.Model

	percent  int
	stage    string
	finished bool
	canceled bool
	err      error
}

// NewApp creates a display titled title that reads updates.
func NewApp(title string, updates <-chan tea.Msg) (*App, error) {
	if updates == nil {
		return nil, ErrMissingUpdates
	}

	s := styles.DefaultStyles()
	bar := progress.New(
		progress.WithGradient(string(s.Theme().Primary), string(s.Theme().Secondary)),
		progress.WithWidth(maxBarWidth),
	)

	return &App{
		title:   title,
		updates: updates,
		styles:  s,
		keys:    keymap.DefaultKeyMap(),
		bar:     bar,
	}, nil
}

// WithCancel sets the function called when the user aborts.
func (a *App) WithCancel(cancel func()) *App {
	a.cancel = cancel
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.waitForUpdate()
}

func (a *App) waitForUpdate() tea.Cmd {
	updates := a.updates
	return func() tea.Msg {
		msg, ok := <-updates
		if !ok {
			return messages.PipelineFinished{}
		}
		return msg
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.bar.Width = min(max(msg.Width-4, 10), maxBarWidth)
		return a, nil

	case tea.KeyMsg:
		// The program quits as soon as the pipeline finishes, so keys only
		// arrive while it is running.
		if keymap.Matches(msg.String(), a.keys.Cancel) {
			a.canceled = true
			if a.cancel != nil {
				a.cancel()
			}
			return a, tea.Quit
		}
		return a, nil

	case messages.StageChanged:
		a.percent = min(max(msg.Percent, 0), 100)
		a.stage = msg.Description
		return a, a.waitForUpdate()

	case messages.PipelineFinished:
		a.finished = true
		a.err = msg.Err
		if msg.Err == nil {
			a.percent = 100
		}
		return a, tea.Quit
	}

	return a, nil
}

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render(a.title))
	b.WriteString("\n\n")
	b.WriteString(a.bar.ViewAs(float64(a.percent) / 100))
	b.WriteString("\n")

	switch {
	case a.canceled:
		b.WriteString(a.styles.Muted.Render("Cancelling..."))
	case a.finished && a.err != nil:
		b.WriteString(a.styles.Error.Render("Failed: " + a.err.Error()))
	case a.finished:
		b.WriteString(a.styles.Success.Render("Done"))
	default:
		b.WriteString(a.styles.Stage.Render(a.stage))
		b.WriteString("\n")
		b.WriteString(a.styles.Help.Render(a.helpLine()))
	}
	b.WriteString("\n")

	return b.String()
}

func (a *App) helpLine() string {
	parts := make([]string, 0, len(a.keys.ShortHelp()))
	for _, k := range a.keys.ShortHelp() {
		parts = append(parts, k.Help().Key+" "+k.Help().Desc)
	}
	return strings.Join(parts, " • ")
}

// Run starts the display and blocks until it exits.
func (a *App) Run(opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(a, opts...).Run()
	return err
}

// Percent returns the completion currently shown.
func (a *App) Percent() int {
	return a.percent
}

// Stage returns the current stage description.
func (a *App) Stage() string {
	return a.stage
}

// Finished reports whether the pipeline has ended.
func (a *App) Finished() bool {
	return a.finished
}

// Canceled reports whether the user aborted.
func (a *App) Canceled() bool {
	return a.canceled
}

// Err returns the pipeline error, if any.
func (a *App) Err() error {
	return a.err
}

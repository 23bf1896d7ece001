// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package stopwatchui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/stopwatch/lib/config"
	"github.com/bureau-foundation/stopwatch/lib/stopwatch"
	"github.com/bureau-foundation/stopwatch/lib/tui"
)

// Engine is the registry surface the viewer drives. *stopwatch.Registry
// implements it.
type Engine interface {
	Add(label string) bool
	RemoveSelected() bool
	SelectNext()
	SelectPrevious()
	SetSelectedLabel(label string)
	Snapshot() []stopwatch.Counter
	Selected() int
	Len() int
	Label(index int) string
}

// Mode identifies what keyboard input currently controls.
type Mode int

const (
	// ModeNormal routes keys to the shortcut bindings.
	ModeNormal Mode = iota
	// ModeLabel routes keys to the label input of the selected
	// stopwatch. Enter applies, escape cancels.
	ModeLabel
	// ModeConfirmQuit shows the quit prompt. Only y and n respond.
	ModeConfirmQuit
)

// refreshMsg triggers a snapshot and redraw. Each one schedules the
// next, so there is exactly one refresh chain per program.
type refreshMsg struct{}

// Options configures a Model. Zero values take the config defaults.
type Options struct {
	RefreshInterval time.Duration
	HideHelp        bool

	// Renderer carries the color profile. Nil uses the lipgloss
	// default renderer.
	Renderer *lipgloss.Renderer
}

// Model is the bubbletea model for the stopwatch viewer.
type Model struct {
	engine   Engine
	keys     KeyMap
	theme    tui.Theme
	renderer *lipgloss.Renderer

	snapshot        []stopwatch.Counter
	refreshInterval time.Duration
	showHelp        bool

	mode       Mode
	labelInput textinput.Model

	width  int
	height int
	ready  bool
}

// NewModel creates a viewer for engine and takes an initial snapshot.
func NewModel(engine Engine, options Options) Model {
	interval := options.RefreshInterval
	if interval == 0 {
		interval = config.Default().Display.RefreshInterval
	}
	interval = min(max(interval, config.MinRefreshInterval), config.MaxRefreshInterval)

	renderer := options.Renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}

	input := textinput.New()
	input.Prompt = "Label: "

	return Model{
		engine:          engine,
		keys:            DefaultKeyMap,
		theme:           tui.DefaultTheme,
		renderer:        renderer,
		snapshot:        engine.Snapshot(),
		refreshInterval: interval,
		showHelp:        !options.HideHelp,
		labelInput:      input,
	}
}

// Init implements tea.Model. Starts the refresh chain.
func (model Model) Init() tea.Cmd {
	return scheduleRefresh(model.refreshInterval)
}

func scheduleRefresh(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return refreshMsg{}
	})
}

// Mode returns the current input mode.
func (model Model) Mode() Mode {
	return model.mode
}

// RefreshInterval returns the current redraw interval.
func (model Model) RefreshInterval() time.Duration {
	return model.refreshInterval
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case refreshMsg:
		model.snapshot = model.engine.Snapshot()
		return model, scheduleRefresh(model.refreshInterval)

	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true

	case tea.KeyMsg:
		switch model.mode {
		case ModeConfirmQuit:
			return model.handleConfirmKeys(message)
		case ModeLabel:
			return model.handleLabelKeys(message)
		default:
			return model.handleNormalKeys(message)
		}
	}
	return model, nil
}

func (model Model) handleNormalKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		model.mode = ModeConfirmQuit

	case key.Matches(message, model.keys.Add):
		if model.engine.Add("") {
			model.snapshot = model.engine.Snapshot()
		}

	case key.Matches(message, model.keys.Remove):
		if model.engine.RemoveSelected() {
			model.snapshot = model.engine.Snapshot()
		}

	case key.Matches(message, model.keys.Next):
		model.engine.SelectNext()

	case key.Matches(message, model.keys.Previous):
		model.engine.SelectPrevious()

	case key.Matches(message, model.keys.Label):
		model.mode = ModeLabel
		model.labelInput.Reset()
		return model, model.labelInput.Focus()

	case key.Matches(message, model.keys.Help):
		model.showHelp = !model.showHelp

	case key.Matches(message, model.keys.Faster):
		model.refreshInterval = max(model.refreshInterval-config.RefreshIntervalStep, config.MinRefreshInterval)

	case key.Matches(message, model.keys.Slower):
		model.refreshInterval = min(model.refreshInterval+config.RefreshIntervalStep, config.MaxRefreshInterval)
	}
	return model, nil
}

func (model Model) handleLabelKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Submit):
		model.engine.SetSelectedLabel(model.labelInput.Value())
		model.exitLabelMode()
		return model, nil

	case key.Matches(message, model.keys.Cancel):
		model.exitLabelMode()
		return model, nil
	}

	var command tea.Cmd
	model.labelInput, command = model.labelInput.Update(message)
	return model, command
}

func (model *Model) exitLabelMode() {
	model.mode = ModeNormal
	model.labelInput.Blur()
	model.labelInput.Reset()
}

func (model Model) handleConfirmKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Confirm):
		return model, tea.Quit
	case key.Matches(message, model.keys.Deny):
		model.mode = ModeNormal
	}
	return model, nil
}

// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package stopwatchui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/stopwatch/lib/tui"
)

// Help panel geometry: anchored this far from the right and bottom
// edges, with a minimum size that still fits every shortcut line.
const (
	helpRightOffset  = 44
	helpBottomOffset = 13
	helpMinWidth     = 42
	helpMinHeight    = 12
)

// View implements tea.Model.
func (model Model) View() string {
	if !model.ready || model.width <= 0 || model.height <= 0 {
		return ""
	}

	view := model.renderGrid()
	if model.showHelp {
		view = model.spliceHelp(view)
	}
	if model.mode == ModeConfirmQuit {
		view = model.spliceConfirmation(view)
	}
	return view
}

// renderGrid draws one box per snapshot entry. Row heights split the
// screen evenly; column widths split each row evenly.
func (model Model) renderGrid() string {
	layout := Arrange(len(model.snapshot))
	if len(layout.Columns) == 0 {
		return tui.Blank(model.width, model.height)
	}

	occupant := make(map[Cell]int, len(layout.Cells))
	for index, cell := range layout.Cells {
		occupant[cell] = index
	}

	heights := split(model.height, len(layout.Columns))
	rows := make([]string, len(layout.Columns))
	for row, columns := range layout.Columns {
		widths := split(model.width, columns)
		cells := make([]string, columns)
		for column, width := range widths {
			index, ok := occupant[Cell{Row: row, Column: column}]
			if !ok {
				cells[column] = tui.Blank(width, heights[row])
				continue
			}
			cells[column] = model.renderTimer(index, width, heights[row])
		}
		rows[row] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (model Model) renderTimer(index, width, height int) string {
	selected := index == model.engine.Selected()

	var body string
	if selected && model.mode == ModeLabel {
		body = model.labelInput.View()
	} else {
		body = model.snapshot[index].String()
		if label := model.engine.Label(index); label != "" {
			body += "\n" + label
		}
	}

	border := model.theme.BorderColor
	if selected {
		border = model.theme.SelectedBorder
	}

	return tui.Box{
		Title:   fmt.Sprintf(" Timer %d ", index+1),
		Body:    body,
		Width:   width,
		Height:  height,
		Padding: 1,
		Align:   lipgloss.Center,
		Border:  border,
		Text:    model.theme.NormalText,
	}.Render(model.renderer)
}

// fps is the redraw rate shown in the help panel title.
func (model Model) fps() int64 {
	milliseconds := model.refreshInterval.Milliseconds()
	if milliseconds <= 0 {
		return 0
	}
	return 1000 / milliseconds
}

func (model Model) helpText() string {
	lines := []string{"Shortcuts:"}
	for _, binding := range model.keys.helpBindings() {
		help := binding.Help()
		lines = append(lines, fmt.Sprintf("  %-10s - %s", help.Key, help.Desc))
	}
	return strings.Join(lines, "\n")
}

func (model Model) spliceHelp(view string) string {
	x := max(model.width-helpRightOffset, 0)
	y := max(model.height-helpBottomOffset, 0)
	width := min(max(model.width/4, helpMinWidth), model.width-x)
	height := min(max(model.height/3, helpMinHeight), model.height-y)

	panel := tui.Box{
		Title:      "Help",
		RightTitle: fmt.Sprintf("FPS: %d", model.fps()),
		Body:       model.helpText(),
		Width:      width,
		Height:     height,
		Align:      lipgloss.Left,
		Border:     model.theme.HelpBorder,
		Text:       model.theme.HelpText,
	}.Render(model.renderer)
	return tui.SpliceOverlay(view, strings.Split(panel, "\n"), x, y)
}

func (model Model) spliceConfirmation(view string) string {
	width := model.width / 2
	height := max(model.height/4, 3)
	x := (model.width - width) / 2
	y := max((model.height-height)/2, 0)

	question := "Are you sure? " +
		model.renderer.NewStyle().Foreground(model.theme.Affirmative).Render("Y") +
		model.renderer.NewStyle().Foreground(model.theme.NormalText).Render("/") +
		model.renderer.NewStyle().Foreground(model.theme.Negative).Render("N")

	prompt := tui.Box{
		Title:  " Confirmation ",
		Body:   question,
		Width:  width,
		Height: height,
		Align:  lipgloss.Center,
		Border: model.theme.NormalText,
		Text:   model.theme.NormalText,
	}.Render(model.renderer)
	return tui.SpliceOverlay(view, strings.Split(prompt, "\n"), x, y)
}

// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Box is a bordered rectangle with an optional title embedded in the
// top border on each side. Render always produces exactly Height lines
// of exactly Width cells, truncating content that does not fit.
type Box struct {
	Title      string
	RightTitle string
	Body       string

	Width  int
	Height int

	// Padding is the number of blank cells between the border and the
	// body on every side.
	Padding int

	// Align positions body lines horizontally.
	Align lipgloss.Position

	Border lipgloss.Color
	Text   lipgloss.Color
}

// Render draws the box. Boxes smaller than 2x2 render as blank space.
func (b Box) Render(renderer *lipgloss.Renderer) string {
	if b.Width < 2 || b.Height < 2 {
		return Blank(max(b.Width, 0), max(b.Height, 0))
	}

	edges := lipgloss.NormalBorder()
	borderStyle := renderer.NewStyle().Foreground(b.Border)
	textStyle := renderer.NewStyle().Foreground(b.Text)
	innerWidth := b.Width - 2
	innerHeight := b.Height - 2

	lines := make([]string, 0, b.Height)
	lines = append(lines, borderStyle.Render(b.topEdge(edges, innerWidth)))

	contentWidth := max(innerWidth-2*b.Padding, 0)
	body := strings.Split(b.Body, "\n")
	if b.Body == "" {
		body = nil
	}
	side := borderStyle.Render(edges.Left)
	for row := range innerHeight {
		var content string
		bodyRow := row - b.Padding
		if bodyRow >= 0 && bodyRow < len(body) && row < innerHeight-b.Padding {
			text := ansi.Truncate(body[bodyRow], contentWidth, "…")
			content = lipgloss.PlaceHorizontal(contentWidth, b.Align, textStyle.Render(text))
		} else {
			content = strings.Repeat(" ", contentWidth)
		}
		leftPad := min(b.Padding, innerWidth)
		rightPad := innerWidth - contentWidth - leftPad
		lines = append(lines, side+strings.Repeat(" ", leftPad)+content+strings.Repeat(" ", rightPad)+side)
	}

	lines = append(lines, borderStyle.Render(edges.BottomLeft+strings.Repeat(edges.Bottom, innerWidth)+edges.BottomRight))
	return strings.Join(lines, "\n")
}

// topEdge builds the top border with the left title after the corner
// and the right title before the opposite corner. The left title is
// truncated to fit; the right title is dropped unless it fits whole.
func (b Box) topEdge(edges lipgloss.Border, innerWidth int) string {
	left := ansi.Truncate(b.Title, innerWidth, "")
	remaining := innerWidth - ansi.StringWidth(left)
	right := ""
	if b.RightTitle != "" && remaining > ansi.StringWidth(b.RightTitle) {
		right = b.RightTitle
	}
	fill := remaining - ansi.StringWidth(right)
	return edges.TopLeft + left + strings.Repeat(edges.Top, fill) + right + edges.TopRight
}

// Blank returns a width x height block of spaces.
func Blank(width, height int) string {
	if height == 0 {
		return ""
	}
	line := strings.Repeat(" ", width)
	lines := make([]string, height)
	for index := range lines {
		lines[index] = line
	}
	return strings.Join(lines, "\n")
}

// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// SpliceOverlay replaces a rectangular region of a rendered view with
// overlay content. The overlay lines are placed starting at (anchorX,
// anchorY) in screen cells. Truncation is ANSI-aware so styling on
// either side of the overlay survives. Lines falling outside the view
// are dropped.
func SpliceOverlay(view string, overlayLines []string, anchorX, anchorY int) string {
	if len(overlayLines) == 0 {
		return view
	}
	anchorX = max(anchorX, 0)

	viewLines := strings.Split(view, "\n")
	for index, overlayLine := range overlayLines {
		row := anchorY + index
		if row < 0 || row >= len(viewLines) {
			continue
		}

		viewLine := viewLines[row]
		viewWidth := ansi.StringWidth(viewLine)

		var line strings.Builder
		prefix := ansi.Truncate(viewLine, anchorX, "")
		line.WriteString(prefix)
		// Pad short lines so the overlay lands at its column.
		if gap := anchorX - ansi.StringWidth(prefix); gap > 0 {
			line.WriteString(strings.Repeat(" ", gap))
		}
		line.WriteString("\x1b[0m")
		line.WriteString(overlayLine)
		line.WriteString("\x1b[0m")

		if suffixStart := anchorX + ansi.StringWidth(overlayLine); suffixStart < viewWidth {
			line.WriteString(ansi.TruncateLeft(viewLine, suffixStart, ""))
		}
		viewLines[row] = line.String()
	}

	return strings.Join(viewLines, "\n")
}

// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package stopwatchui

// Cell is a grid position.
type Cell struct {
	Row    int
	Column int
}

// Layout places count stopwatches on a grid. Columns[r] is the number
// of columns in row r; Cells[i] is where stopwatch i is drawn. A row
// may hold fewer stopwatches than columns, leaving blank cells.
type Layout struct {
	Columns []int
	Cells   []Cell
}

// Arrange returns the grid for count stopwatches. One and two share a
// single row. Three and four use a 2x2 grid filled clockwise from the
// top left, so three leaves the bottom-left cell empty. Five through
// eight put the larger half on top: 3+2, 3+3, 4+3, 4+4. Larger counts
// continue in rows of four.
func Arrange(count int) Layout {
	switch {
	case count <= 0:
		return Layout{}
	case count <= 2:
		return rowMajor([]int{count}, count)
	case count == 3:
		return Layout{
			Columns: []int{2, 2},
			Cells:   []Cell{{0, 0}, {0, 1}, {1, 1}},
		}
	case count == 4:
		return Layout{
			Columns: []int{2, 2},
			Cells:   []Cell{{0, 0}, {0, 1}, {1, 1}, {1, 0}},
		}
	case count <= 8:
		top := (count + 1) / 2
		return rowMajor([]int{top, count - top}, count)
	default:
		var columns []int
		for remaining := count; remaining > 0; remaining -= 4 {
			columns = append(columns, min(remaining, 4))
		}
		return rowMajor(columns, count)
	}
}

func rowMajor(columns []int, count int) Layout {
	layout := Layout{Columns: columns, Cells: make([]Cell, 0, count)}
	for row, width := range columns {
		for column := range width {
			layout.Cells = append(layout.Cells, Cell{Row: row, Column: column})
		}
	}
	return layout
}

// split divides total into parts nearly equal sizes. The remainder
// goes to the last part, so the sizes always sum to total.
func split(total, parts int) []int {
	if parts <= 0 {
		return nil
	}
	sizes := make([]int, parts)
	base := total / parts
	for index := range sizes {
		sizes[index] = base
	}
	sizes[parts-1] += total - base*parts
	return sizes
}

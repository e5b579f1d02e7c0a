package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// overlayCenter draws the overlay block centered within the top height rows
// of the base view. Rows the overlay does not touch pass through unchanged.
func overlayCenter(base, overlay string, width, height int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	overlayWidth := 0
	for _, line := range overlayLines {
		if w := ansi.StringWidth(line); w > overlayWidth {
			overlayWidth = w
		}
	}
	col := (width - overlayWidth) / 2
	if col < 0 {
		col = 0
	}
	top := (height - len(overlayLines)) / 2
	if top < 0 {
		top = 0
	}

	for i, line := range overlayLines {
		row := top + i
		if row >= len(baseLines) || row >= height {
			break
		}
		baseLines[row] = spliceLine(baseLines[row], line, col, overlayWidth, width)
	}
	return strings.Join(baseLines, "\n")
}

// spliceLine overwrites cellWidth cells of row starting at col with line,
// keeping whatever styled base content sits either side. ansi-aware, so cut
// escape sequences never leak into the seams.
func spliceLine(row, line string, col, cellWidth, rowWidth int) string {
	row = padRight(row, rowWidth)

	before := ansi.Truncate(row, col, "")
	if pad := col - ansi.StringWidth(before); pad > 0 {
		before += strings.Repeat(" ", pad)
	}

	after := ansi.TruncateLeft(row, col+cellWidth, "")
	if gap := rowWidth - col - cellWidth - ansi.StringWidth(after); gap > 0 {
		after = strings.Repeat(" ", gap) + after
	}

	return before + padRight(line, cellWidth) + after
}

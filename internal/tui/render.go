package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/kanban/internal/board"
)

// ---------------------------------------------------------------------------
// Chrome
// ---------------------------------------------------------------------------

func renderHeader(st styles, themeName string, width int) string {
	name := st.headerApp.Render(appName)
	content := name + "  " + st.helpDesc.Render(themeName)
	if width <= 0 {
		return st.headerBar.Render(content)
	}
	return st.headerBar.Width(width).Render(content)
}

func (a App) renderFooter(bindings []Binding) string {
	space := a.st.helpDesc.Render(" ")
	sep := a.st.helpDesc.Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if len(b.Keys) == 0 {
			continue
		}
		parts = append(parts, a.st.helpKey.Render(b.Keys[0])+space+a.st.helpDesc.Render(b.Help))
	}
	content := strings.Join(parts, sep)

	if a.width == 0 {
		return a.st.footer.Render(content)
	}
	return a.st.footer.Width(a.width).Render(content)
}

func (a App) renderStatus(text string) string {
	flat := strings.ReplaceAll(text, "\n", " ")
	if a.width == 0 {
		return a.st.statusBar.Render(flat)
	}
	return a.st.statusBar.Width(a.width).Render(flat)
}

func (a App) placeWithFooter(body, statusLine, footer string) string {
	if a.height == 0 {
		return body + "\n\n" + statusLine + "\n" + footer
	}
	contentHeight := a.height - 2
	if contentHeight < 1 {
		contentHeight = 1
	}
	if lipgloss.Height(body) >= contentHeight {
		return body + "\n" + statusLine + "\n" + footer
	}
	main := lipgloss.Place(a.width, contentHeight, lipgloss.Left, lipgloss.Top, body)
	// Full-width lines prevent ghosting from previous frames.
	lines := strings.Split(main, "\n")
	for i, line := range lines {
		lines[i] = padRight(line, a.width)
	}
	main = strings.Join(lines, "\n")
	return main + "\n" + statusLine + "\n" + footer
}

// ---------------------------------------------------------------------------
// Board
// ---------------------------------------------------------------------------

// columnOuterWidth is the width handed to each column's box style.
func (a App) columnOuterWidth() int {
	if a.width == 0 {
		return 26
	}
	w := (a.width - 2) / 3
	if w < 20 {
		w = 20
	}
	return w
}

// visibleRows is how many task lines fit in a column.
func (a App) visibleRows() int {
	if a.height == 0 {
		return 10
	}
	frameV := a.st.columnBox.GetVerticalFrameSize()
	headerHeight := 1
	headerGap := 1
	columnChrome := 2 // title + separator
	scrollIndicator := 1
	available := a.height - 2 - headerHeight - headerGap - frameV - columnChrome - scrollIndicator
	if available < 3 {
		available = 3
	}
	if available > 20 {
		available = 20
	}
	return available
}

func (a App) boardView() string {
	outer := a.columnOuterWidth()
	views := make([]string, 0, len(a.board.Columns))
	for i := range a.board.Columns {
		views = append(views, a.renderColumn(i, outer))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, views...)
	if a.width == 0 {
		return row
	}
	return lipgloss.Place(a.width, lipgloss.Height(row), lipgloss.Center, lipgloss.Top, row)
}

func (a App) renderColumn(idx, outerWidth int) string {
	col := a.board.Columns[idx]
	active := idx == a.colCursor
	frameH := a.st.columnBox.GetHorizontalFrameSize()
	cw := outerWidth - frameH
	if cw < 10 {
		cw = 10
	}

	title := a.st.columnTitle.Render(col.Title) + " " + a.st.columnCount.Render(fmt.Sprintf("%d", len(col.Tasks)))
	separator := a.st.separator.Render(strings.Repeat("─", cw))
	lines := []string{padRight(title, cw), separator}

	visible := a.visibleRows()
	top := 0
	if idx < len(a.topIndexes) {
		top = a.topIndexes[idx]
	}
	end := top + visible
	if end > len(col.Tasks) {
		end = len(col.Tasks)
	}
	for j := top; j < end; j++ {
		lines = append(lines, a.renderTaskLine(col.Tasks[j], active && j == a.rowCursors[idx], cw))
	}
	for len(lines) < visible+2 {
		lines = append(lines, padRight("", cw))
	}
	if len(col.Tasks) > visible {
		start := top + 1
		lines = append(lines, a.st.scroll.Render(fmt.Sprintf("%d-%d/%d", start, end, len(col.Tasks))))
	} else {
		lines = append(lines, padRight("", cw))
	}

	box := a.st.columnBox
	if active {
		box = a.st.columnBoxActive
	}
	return box.Width(outerWidth - 2).Render(strings.Join(lines, "\n"))
}

func (a App) renderTaskLine(task board.Task, selected bool, width int) string {
	prefix := "  "
	style := a.st.task
	if selected {
		prefix = a.st.cursor.Render("> ")
		style = a.st.taskSelected
	}
	if a.query != "" && !taskMatches(task.Content, a.query) {
		style = a.st.taskDim
	}
	content := truncate(task.Content, width-2)
	return prefix + style.Render(padRight(content, width-2))
}

// ---------------------------------------------------------------------------
// Detail modal
// ---------------------------------------------------------------------------

func (a App) detailView() string {
	w := a.modalContentWidth()
	task, colID, ok := a.board.FindTask(a.detailID)
	if !ok {
		return a.st.modalTitle.Render("Task") + "\n\n" + "Task no longer exists."
	}

	if a.detail == detailEditing {
		buf := lipgloss.NewStyle().Width(w).Render(inputDisplay(a.editBuf, a.editCursor))
		return a.st.modalTitle.Render("Edit Task") + "\n\n" + buf
	}

	colTitle := colID
	if col, found := a.board.Column(colID); found {
		colTitle = col.Title
	}
	content := lipgloss.NewStyle().Width(w).Render(task.Content)
	meta := a.st.columnCount.Render("In " + colTitle)
	return a.st.modalTitle.Render("Task") + "\n\n" + content + "\n\n" + meta
}

func (a App) modalContentWidth() int {
	if a.width == 0 {
		return 44
	}
	w := a.width - 12
	if w > 48 {
		w = 48
	}
	if w < 20 {
		w = 20
	}
	return w
}

// composeModal draws the modal centered over the base view, leaving the
// status and footer rows visible underneath.
func (a App) composeModal(base, statusLine, footer, content string) string {
	baseView := a.placeWithFooter(base, statusLine, footer)
	if a.height == 0 || a.width == 0 {
		return baseView + "\n\n" + content
	}
	modalContent := lipgloss.NewStyle().Width(a.modalContentWidth()).Render(content)
	modal := a.st.modal.Render(modalContent)

	targetHeight := a.height - 2
	if targetHeight < 1 {
		targetHeight = 1
	}
	return overlayCenter(baseView, modal, a.width, targetHeight)
}

// ---------------------------------------------------------------------------
// Text helpers
// ---------------------------------------------------------------------------

// padRight pads s with spaces so its visual width equals width.
func padRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// truncate shortens s to the visual width, appending an ellipsis if needed.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

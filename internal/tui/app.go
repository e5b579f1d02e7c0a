// Package tui renders the board and turns key gestures into board
// transitions.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/kanban/internal/board"
	"github.com/jask/kanban/internal/theme"
)

const appName = "Kanban"

// ---------------------------------------------------------------------------
// Detail view state machine
// ---------------------------------------------------------------------------

// detailState tracks the task detail view: Closed -> Viewing on open,
// Viewing -> Editing on edit, Editing -> Viewing on save or cancel,
// Viewing -> Closed on close. Deleting the viewed task closes the view.
type detailState int

const (
	detailClosed detailState = iota
	detailViewing
	detailEditing
)

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

// App is the bubbletea model for the whole board.
type App struct {
	store  *board.Store
	themes *theme.Manager

	board board.Board
	pal   theme.Palette
	st    styles
	keys  *KeyRegistry

	// Board navigation: one row cursor and scroll offset per column.
	colCursor  int
	rowCursors []int
	topIndexes []int

	// Detail view.
	detail     detailState
	detailID   string
	editBuf    string
	editCursor int

	// Add-task input.
	addActive bool
	addBuf    string
	addCursor int

	// Fuzzy search. searchActive means the input has focus; the query stays
	// applied after confirm until cleared.
	searchActive bool
	query        string
	queryCursor  int

	// Theme picker.
	showThemes bool
	themeList  list.Model

	status string
	width  int
	height int
}

// New builds the app, rehydrating board and theme from durable storage.
func New(store *board.Store, themes *theme.Manager) App {
	b := store.Load()
	pal := themes.Load()
	return App{
		store:      store,
		themes:     themes,
		board:      b,
		pal:        pal,
		st:         newStyles(pal),
		keys:       NewKeyRegistry(),
		rowCursors: make([]int, len(b.Columns)),
		topIndexes: make([]int, len(b.Columns)),
		themeList:  newThemeList(pal.Name),
		status:     "Ready. a adds a task, enter opens it, H/L move it, t themes.",
	}
}

// Board returns the current board value.
func (a App) Board() board.Board {
	return a.board
}

func (a App) Init() tea.Cmd {
	return nil
}

// scope names the input context the next key press lands in. Modal scopes
// take priority over the board.
func (a App) scope() string {
	switch {
	case a.showThemes:
		return scopeThemePicker
	case a.addActive:
		return scopeAddInput
	case a.detail == detailEditing:
		return scopeDetailEdit
	case a.detail == detailViewing:
		return scopeDetailModal
	case a.searchActive:
		return scopeSearchInput
	default:
		return scopeBoard
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resizeThemeList()
		a.ensureCursors()
		return a, nil
	case tea.KeyMsg:
		switch a.scope() {
		case scopeThemePicker:
			return a.updateThemePicker(msg)
		case scopeAddInput:
			return a.updateAddInput(msg)
		case scopeDetailEdit:
			return a.updateDetailEdit(msg)
		case scopeDetailModal:
			return a.updateDetail(msg)
		case scopeSearchInput:
			return a.updateSearchInput(msg)
		default:
			return a.updateBoard(msg)
		}
	}
	return a, nil
}

func (a App) View() string {
	header := renderHeader(a.st, a.pal.Name, a.width)
	body := a.boardView()
	statusLine := a.renderStatus(a.statusText())
	footer := a.renderFooter(a.keys.Help(a.scope()))
	main := header + "\n\n" + body

	if a.showThemes {
		return a.composeModal(main, statusLine, footer, a.themePickerView())
	}
	if a.detail != detailClosed {
		return a.composeModal(main, statusLine, footer, a.detailView())
	}
	return a.placeWithFooter(main, statusLine, footer)
}

// ---------------------------------------------------------------------------
// Board mutation plumbing
// ---------------------------------------------------------------------------

// applyBoard installs the next board value and writes it through to durable
// storage. Persistence failures surface on the status bar only.
func (a *App) applyBoard(next board.Board) {
	a.board = next
	if err := a.store.Set(next); err != nil {
		a.status = fmt.Sprintf("Save failed: %v", err)
	}
	a.ensureCursors()
}

// deleteTask removes a task wherever it lives. Deleting the task currently
// open in the detail view closes the view, even when the task is already
// gone, so a stale modal can still be dismissed with the delete key.
func (a *App) deleteTask(id string) {
	if a.detailID == id {
		a.closeDetail()
	}
	if _, _, ok := a.board.FindTask(id); !ok {
		return
	}
	a.applyBoard(a.board.DeleteTask(id))
	a.status = "Task deleted."
}

func (a *App) closeDetail() {
	a.detail = detailClosed
	a.detailID = ""
	a.editBuf = ""
	a.editCursor = 0
}

// selectedTask returns the task under the board cursor.
func (a App) selectedTask() (board.Task, bool) {
	if a.colCursor < 0 || a.colCursor >= len(a.board.Columns) {
		return board.Task{}, false
	}
	col := a.board.Columns[a.colCursor]
	idx := a.rowCursors[a.colCursor]
	if idx < 0 || idx >= len(col.Tasks) {
		return board.Task{}, false
	}
	return col.Tasks[idx], true
}

// ensureCursors clamps all cursors against the current board and keeps each
// column's cursor inside its scroll window.
func (a *App) ensureCursors() {
	n := len(a.board.Columns)
	for len(a.rowCursors) < n {
		a.rowCursors = append(a.rowCursors, 0)
	}
	for len(a.topIndexes) < n {
		a.topIndexes = append(a.topIndexes, 0)
	}
	a.rowCursors = a.rowCursors[:n]
	a.topIndexes = a.topIndexes[:n]

	if a.colCursor < 0 {
		a.colCursor = 0
	}
	if a.colCursor >= n && n > 0 {
		a.colCursor = n - 1
	}

	visible := a.visibleRows()
	for i, col := range a.board.Columns {
		maxIdx := len(col.Tasks) - 1
		if a.rowCursors[i] > maxIdx {
			a.rowCursors[i] = maxIdx
		}
		if a.rowCursors[i] < 0 {
			a.rowCursors[i] = 0
		}
		if visible <= 0 {
			continue
		}
		if a.rowCursors[i] < a.topIndexes[i] {
			a.topIndexes[i] = a.rowCursors[i]
		} else if a.rowCursors[i] >= a.topIndexes[i]+visible {
			a.topIndexes[i] = a.rowCursors[i] - visible + 1
		}
		maxTop := len(col.Tasks) - visible
		if maxTop < 0 {
			maxTop = 0
		}
		if a.topIndexes[i] > maxTop {
			a.topIndexes[i] = maxTop
		}
		if a.topIndexes[i] < 0 {
			a.topIndexes[i] = 0
		}
	}
}

func (a App) statusText() string {
	switch {
	case a.addActive:
		return "Add task: " + inputDisplay(a.addBuf, a.addCursor)
	case a.searchActive:
		return "Search: " + inputDisplay(a.query, a.queryCursor)
	case a.query != "":
		matched, total := matchCount(a.board, a.query)
		return fmt.Sprintf("Search %q: %d of %d tasks match. esc clears.", a.query, matched, total)
	default:
		return a.status
	}
}

package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func (a App) updateAddInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case a.isAction(scopeAddInput, actionCancel, msg):
		a.addActive = false
		a.addBuf = ""
		a.addCursor = 0
		return a, nil
	case a.isAction(scopeAddInput, actionConfirm, msg):
		next, task, ok := a.board.AddTask(a.addBuf)
		a.addActive = false
		a.addBuf = ""
		a.addCursor = 0
		if !ok {
			// Blank input: drop it silently.
			return a, nil
		}
		a.applyBoard(next)
		a.selectTask(task.ID)
		a.status = fmt.Sprintf("Added %q.", task.Content)
		return a, nil
	case isBackspaceKey(msg):
		deleteRuneBeforeCursor(&a.addBuf, &a.addCursor)
		return a, nil
	case msg.String() == "left":
		moveInputCursor(a.addBuf, &a.addCursor, -1)
		return a, nil
	case msg.String() == "right":
		moveInputCursor(a.addBuf, &a.addCursor, 1)
		return a, nil
	default:
		insertPrintableAtCursor(&a.addBuf, &a.addCursor, msg)
		return a, nil
	}
}

func (a App) updateSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case a.isAction(scopeSearchInput, actionCancel, msg):
		a.searchActive = false
		a.query = ""
		a.queryCursor = 0
		return a, nil
	case a.isAction(scopeSearchInput, actionConfirm, msg):
		// Keep the query applied, return focus to the board.
		a.searchActive = false
		return a, nil
	case isBackspaceKey(msg):
		deleteRuneBeforeCursor(&a.query, &a.queryCursor)
		return a, nil
	case msg.String() == "left":
		moveInputCursor(a.query, &a.queryCursor, -1)
		return a, nil
	case msg.String() == "right":
		moveInputCursor(a.query, &a.queryCursor, 1)
		return a, nil
	default:
		insertPrintableAtCursor(&a.query, &a.queryCursor, msg)
		return a, nil
	}
}

// selectTask points the board cursor at the given task.
func (a *App) selectTask(id string) {
	_, colID, ok := a.board.FindTask(id)
	if !ok {
		return
	}
	for i, col := range a.board.Columns {
		if col.ID != colID {
			continue
		}
		a.colCursor = i
		for j, task := range col.Tasks {
			if task.ID == id {
				a.rowCursors[i] = j
				break
			}
		}
	}
	a.ensureCursors()
}

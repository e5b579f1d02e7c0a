package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func (a App) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case a.isAction(scopeBoard, actionQuit, msg):
		return a, tea.Quit
	case a.isAction(scopeBoard, actionLeft, msg):
		if a.colCursor > 0 {
			a.colCursor--
		}
		return a, nil
	case a.isAction(scopeBoard, actionRight, msg):
		if a.colCursor < len(a.board.Columns)-1 {
			a.colCursor++
		}
		return a, nil
	case a.isAction(scopeBoard, actionUp, msg):
		if a.rowCursors[a.colCursor] > 0 {
			a.rowCursors[a.colCursor]--
		}
		a.ensureCursors()
		return a, nil
	case a.isAction(scopeBoard, actionDown, msg):
		if a.colCursor < len(a.board.Columns) {
			col := a.board.Columns[a.colCursor]
			if a.rowCursors[a.colCursor] < len(col.Tasks)-1 {
				a.rowCursors[a.colCursor]++
			}
		}
		a.ensureCursors()
		return a, nil
	case a.isAction(scopeBoard, actionAdd, msg):
		a.addActive = true
		a.addBuf = ""
		a.addCursor = 0
		return a, nil
	case a.isAction(scopeBoard, actionOpen, msg):
		if task, ok := a.selectedTask(); ok {
			a.detail = detailViewing
			a.detailID = task.ID
		}
		return a, nil
	case a.isAction(scopeBoard, actionDelete, msg):
		if task, ok := a.selectedTask(); ok {
			a.deleteTask(task.ID)
		}
		return a, nil
	case a.isAction(scopeBoard, actionMoveLeft, msg):
		return a.moveSelected(-1), nil
	case a.isAction(scopeBoard, actionMoveRight, msg):
		return a.moveSelected(1), nil
	case a.isAction(scopeBoard, actionSearch, msg):
		a.searchActive = true
		a.queryCursor = clampInputCursor(a.query, len([]rune(a.query)))
		return a, nil
	case a.isAction(scopeBoard, actionThemes, msg):
		a.showThemes = true
		a.selectCurrentTheme()
		return a, nil
	case a.isAction(scopeBoard, actionClearSearch, msg):
		a.query = ""
		a.queryCursor = 0
		return a, nil
	}
	return a, nil
}

// moveSelected moves the task under the cursor one column left or right,
// appending it to the destination column's end. At the board's edge it is a
// no-op. The cursor follows the moved task.
func (a App) moveSelected(delta int) App {
	task, ok := a.selectedTask()
	if !ok {
		return a
	}
	destIdx := a.colCursor + delta
	if destIdx < 0 || destIdx >= len(a.board.Columns) {
		return a
	}
	dest := a.board.Columns[destIdx]
	a.applyBoard(a.board.MoveTask(task.ID, dest.ID))
	a.colCursor = destIdx
	a.rowCursors[destIdx] = len(a.board.Columns[destIdx].Tasks) - 1
	a.ensureCursors()
	a.status = fmt.Sprintf("Moved to %s.", dest.Title)
	return a
}

package tui

import tea "github.com/charmbracelet/bubbletea"

func (a App) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case a.isAction(scopeDetailModal, actionQuit, msg):
		return a, tea.Quit
	case a.isAction(scopeDetailModal, actionClose, msg):
		a.closeDetail()
		return a, nil
	case a.isAction(scopeDetailModal, actionEdit, msg):
		task, _, ok := a.board.FindTask(a.detailID)
		if !ok {
			a.closeDetail()
			return a, nil
		}
		a.detail = detailEditing
		a.editBuf = task.Content
		a.editCursor = len([]rune(a.editBuf))
		return a, nil
	case a.isAction(scopeDetailModal, actionDelete, msg):
		a.deleteTask(a.detailID)
		return a, nil
	}
	return a, nil
}

func (a App) updateDetailEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case a.isAction(scopeDetailEdit, actionCancel, msg):
		// Discard the buffer, back to viewing.
		a.detail = detailViewing
		a.editBuf = ""
		a.editCursor = 0
		return a, nil
	case a.isAction(scopeDetailEdit, actionSave, msg):
		next, ok := a.board.SetTaskContent(a.detailID, a.editBuf)
		if !ok {
			// Blank buffer or stale id: silent no-op.
			return a, nil
		}
		a.applyBoard(next)
		a.detail = detailViewing
		a.editBuf = ""
		a.editCursor = 0
		a.status = "Task updated."
		return a, nil
	case isBackspaceKey(msg):
		deleteRuneBeforeCursor(&a.editBuf, &a.editCursor)
		return a, nil
	case msg.String() == "left":
		moveInputCursor(a.editBuf, &a.editCursor, -1)
		return a, nil
	case msg.String() == "right":
		moveInputCursor(a.editBuf, &a.editCursor, 1)
		return a, nil
	default:
		insertPrintableAtCursor(&a.editBuf, &a.editCursor, msg)
		return a, nil
	}
}

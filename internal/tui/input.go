package tui

import tea "github.com/charmbracelet/bubbletea"

// ---------------------------------------------------------------------------
// Minimal single-line input buffer editing. Inputs here are short task text,
// so a hand-rolled buffer beats pulling focus management into every mode.
// ---------------------------------------------------------------------------

func isBackspaceKey(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyBackspace
}

func clampInputCursor(s string, cursor int) int {
	if cursor < 0 {
		return 0
	}
	if cursor > len([]rune(s)) {
		return len([]rune(s))
	}
	return cursor
}

func moveInputCursor(s string, cursor *int, delta int) {
	*cursor = clampInputCursor(s, *cursor+delta)
}

// deleteRuneBeforeCursor removes the rune before the cursor, reporting
// whether the buffer changed.
func deleteRuneBeforeCursor(s *string, cursor *int) bool {
	runes := []rune(*s)
	*cursor = clampInputCursor(*s, *cursor)
	if *cursor == 0 {
		return false
	}
	*s = string(runes[:*cursor-1]) + string(runes[*cursor:])
	*cursor--
	return true
}

// insertPrintableAtCursor inserts typed runes at the cursor, reporting
// whether the buffer changed. Named keys (tab, ctrl+x, ...) and alt-modified
// keys are ignored; only the runes themselves ever reach the buffer.
func insertPrintableAtCursor(s *string, cursor *int, msg tea.KeyMsg) bool {
	if (msg.Type != tea.KeyRunes && msg.Type != tea.KeySpace) || msg.Alt {
		return false
	}
	text := string(msg.Runes)
	if text == "" {
		if msg.Type != tea.KeySpace {
			return false
		}
		text = " "
	}
	runes := []rune(*s)
	*cursor = clampInputCursor(*s, *cursor)
	*s = string(runes[:*cursor]) + text + string(runes[*cursor:])
	*cursor += len([]rune(text))
	return true
}

// inputDisplay renders the buffer with a visible cursor mark.
func inputDisplay(s string, cursor int) string {
	runes := []rune(s)
	cursor = clampInputCursor(s, cursor)
	return string(runes[:cursor]) + "▏" + string(runes[cursor:])
}

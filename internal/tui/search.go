package tui

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/kanban/internal/board"
)

// taskMatches reports whether a task's content matches the search query.
// Substring matches win; otherwise a query within 40% edit distance of any
// word still matches, so near-miss typos find their task.
func taskMatches(content, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	content = strings.ToLower(content)
	if strings.Contains(content, query) {
		return true
	}
	for _, word := range strings.Fields(content) {
		dist := levenshtein.ComputeDistance(word, query)
		maxLen := len(word)
		if len(query) > maxLen {
			maxLen = len(query)
		}
		if maxLen > 0 && float64(dist)/float64(maxLen) < 0.4 {
			return true
		}
	}
	return false
}

// matchCount returns how many tasks match the query, and the total.
func matchCount(b board.Board, query string) (matched, total int) {
	for _, col := range b.Columns {
		for _, task := range col.Tasks {
			total++
			if taskMatches(task.Content, query) {
				matched++
			}
		}
	}
	return matched, total
}

// Package board holds the kanban board state and its transitions.
//
// A board is three fixed columns (todo, doing, done) of ordered tasks. Every
// transition is a pure function from the current board to a fully new board
// value; callers never observe shared slices between input and output.
package board

import (
	"strings"

	"github.com/google/uuid"
)

// Fixed column identifiers. Columns are never created, renamed, or removed.
const (
	ColumnTodo  = "todo"
	ColumnDoing = "doing"
	ColumnDone  = "done"
)

// Task is a unit of work. Content is non-blank free text.
type Task struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

// Column is a named bucket of tasks in insertion order.
type Column struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Tasks []Task `json:"tasks"`
}

// Board is the ordered set of the three columns.
type Board struct {
	Columns []Column
}

// New returns the default board: three empty columns.
func New() Board {
	return Board{Columns: []Column{
		{ID: ColumnTodo, Title: "Todo"},
		{ID: ColumnDoing, Title: "Doing"},
		{ID: ColumnDone, Title: "Done"},
	}}
}

// clone deep-copies the board so transitions can build new values without
// mutating their input.
func (b Board) clone() Board {
	cols := make([]Column, len(b.Columns))
	for i, col := range b.Columns {
		cols[i] = Column{ID: col.ID, Title: col.Title}
		if len(col.Tasks) > 0 {
			cols[i].Tasks = make([]Task, len(col.Tasks))
			copy(cols[i].Tasks, col.Tasks)
		}
	}
	return Board{Columns: cols}
}

// AddTask appends a task with the trimmed content to the todo column. Blank
// content is a no-op; ok reports whether a task was created.
func (b Board) AddTask(content string) (next Board, created Task, ok bool) {
	content = strings.TrimSpace(content)
	if content == "" {
		return b, Task{}, false
	}
	next = b.clone()
	created = Task{ID: uuid.NewString(), Content: content}
	for i := range next.Columns {
		if next.Columns[i].ID == ColumnTodo {
			next.Columns[i].Tasks = append(next.Columns[i].Tasks, created)
			return next, created, true
		}
	}
	return b, Task{}, false
}

// DeleteTask removes the task with the given id from whichever column holds
// it. Unknown ids are a no-op, so the operation is idempotent.
func (b Board) DeleteTask(id string) Board {
	next := b.clone()
	for i := range next.Columns {
		for j, task := range next.Columns[i].Tasks {
			if task.ID == id {
				next.Columns[i].Tasks = append(next.Columns[i].Tasks[:j], next.Columns[i].Tasks[j+1:]...)
				return next
			}
		}
	}
	return b
}

// SetTaskContent replaces a task's content with the trimmed text. Blank text
// or an unknown id is a no-op; ok reports whether the board changed.
func (b Board) SetTaskContent(id, content string) (Board, bool) {
	content = strings.TrimSpace(content)
	if content == "" {
		return b, false
	}
	next := b.clone()
	for i := range next.Columns {
		for j := range next.Columns[i].Tasks {
			if next.Columns[i].Tasks[j].ID == id {
				next.Columns[i].Tasks[j].Content = content
				return next, true
			}
		}
	}
	return b, false
}

// MoveTask removes the task from its current column and appends it to the end
// of the destination column. Moving within one column still sends the task to
// the end. Unknown task or destination ids are a no-op.
func (b Board) MoveTask(id, destColumnID string) Board {
	if _, ok := b.Column(destColumnID); !ok {
		return b
	}
	task, _, found := b.FindTask(id)
	if !found {
		return b
	}
	next := b.DeleteTask(id)
	for i := range next.Columns {
		if next.Columns[i].ID == destColumnID {
			next.Columns[i].Tasks = append(next.Columns[i].Tasks, task)
			break
		}
	}
	return next
}

// FindTask looks the task up across all columns, returning the task and the
// id of the column that owns it.
func (b Board) FindTask(id string) (Task, string, bool) {
	for _, col := range b.Columns {
		for _, task := range col.Tasks {
			if task.ID == id {
				return task, col.ID, true
			}
		}
	}
	return Task{}, "", false
}

// Column returns the column with the given id.
func (b Board) Column(id string) (Column, bool) {
	for _, col := range b.Columns {
		if col.ID == id {
			return col, true
		}
	}
	return Column{}, false
}

// TaskCount returns the total number of tasks across all columns.
func (b Board) TaskCount() int {
	n := 0
	for _, col := range b.Columns {
		n += len(col.Tasks)
	}
	return n
}

// Equal reports structural equality: same columns in the same order holding
// the same tasks in the same order.
func (b Board) Equal(o Board) bool {
	if len(b.Columns) != len(o.Columns) {
		return false
	}
	for i, col := range b.Columns {
		other := o.Columns[i]
		if col.ID != other.ID || col.Title != other.Title || len(col.Tasks) != len(other.Tasks) {
			return false
		}
		for j, task := range col.Tasks {
			if task != other.Tasks[j] {
				return false
			}
		}
	}
	return true
}

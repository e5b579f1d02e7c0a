package board

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// Test data helpers
// ---------------------------------------------------------------------------

// seedBoard builds a board with the given contents appended to todo.
func seedBoard(t *testing.T, contents ...string) Board {
	t.Helper()
	b := New()
	for _, c := range contents {
		var ok bool
		b, _, ok = b.AddTask(c)
		if !ok {
			t.Fatalf("AddTask(%q) refused", c)
		}
	}
	return b
}

func taskIDs(b Board) []string {
	var ids []string
	for _, col := range b.Columns {
		for _, task := range col.Tasks {
			ids = append(ids, task.ID)
		}
	}
	return ids
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestAddTaskAppendsToTodo(t *testing.T) {
	b := New()
	b, task, ok := b.AddTask("  write docs  ")
	if !ok {
		t.Fatal("expected task to be created")
	}
	if task.Content != "write docs" {
		t.Errorf("content = %q, want trimmed %q", task.Content, "write docs")
	}
	todo, _ := b.Column(ColumnTodo)
	if len(todo.Tasks) != 1 || todo.Tasks[0].ID != task.ID {
		t.Fatalf("todo = %+v, want the new task appended", todo.Tasks)
	}
	if doing, _ := b.Column(ColumnDoing); len(doing.Tasks) != 0 {
		t.Errorf("doing should stay empty, got %d tasks", len(doing.Tasks))
	}
}

func TestAddTaskBlankIsNoop(t *testing.T) {
	b := New()
	for _, input := range []string{"", "   ", "\t\n"} {
		next, _, ok := b.AddTask(input)
		if ok {
			t.Errorf("AddTask(%q) created a task, want no-op", input)
		}
		if !next.Equal(b) {
			t.Errorf("AddTask(%q) changed the board", input)
		}
	}
}

func TestAddTaskIDsAreUnique(t *testing.T) {
	b := New()
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		var task Task
		var ok bool
		b, task, ok = b.AddTask("task")
		if !ok {
			t.Fatal("AddTask refused")
		}
		if seen[task.ID] {
			t.Fatalf("duplicate id %q after %d creates", task.ID, i+1)
		}
		seen[task.ID] = true
	}
}

// ---------------------------------------------------------------------------
// Delete
// ---------------------------------------------------------------------------

func TestDeleteTaskRemovesFromOwningColumn(t *testing.T) {
	b := seedBoard(t, "one", "two", "three")
	id := taskIDs(b)[1]
	b = b.DeleteTask(id)
	if b.TaskCount() != 2 {
		t.Fatalf("count = %d, want 2", b.TaskCount())
	}
	if _, _, found := b.FindTask(id); found {
		t.Error("deleted task still present")
	}
	todo, _ := b.Column(ColumnTodo)
	if todo.Tasks[0].Content != "one" || todo.Tasks[1].Content != "three" {
		t.Errorf("remaining order = %v, want one,three", todo.Tasks)
	}
}

func TestDeleteTaskUnknownIDIsNoop(t *testing.T) {
	b := seedBoard(t, "one")
	next := b.DeleteTask("nope")
	if !next.Equal(b) {
		t.Error("deleting an unknown id changed the board")
	}
	// Idempotent: deleting twice equals deleting once.
	id := taskIDs(b)[0]
	once := b.DeleteTask(id)
	twice := once.DeleteTask(id)
	if !twice.Equal(once) {
		t.Error("second delete changed the board")
	}
}

// ---------------------------------------------------------------------------
// Edit
// ---------------------------------------------------------------------------

func TestSetTaskContentTrims(t *testing.T) {
	b := seedBoard(t, "draft")
	id := taskIDs(b)[0]
	next, ok := b.SetTaskContent(id, "  final  ")
	if !ok {
		t.Fatal("expected edit to apply")
	}
	task, _, _ := next.FindTask(id)
	if task.Content != "final" {
		t.Errorf("content = %q, want %q", task.Content, "final")
	}
	if task.ID != id {
		t.Errorf("id changed on edit: %q -> %q", id, task.ID)
	}
}

func TestSetTaskContentBlankIsNoop(t *testing.T) {
	b := seedBoard(t, "keep me")
	id := taskIDs(b)[0]
	next, ok := b.SetTaskContent(id, "   ")
	if ok {
		t.Error("blank edit reported a change")
	}
	if !next.Equal(b) {
		t.Error("blank edit changed the board")
	}
}

func TestSetTaskContentUnknownIDIsNoop(t *testing.T) {
	b := seedBoard(t, "keep me")
	next, ok := b.SetTaskContent("nope", "new content")
	if ok || !next.Equal(b) {
		t.Error("editing an unknown id changed the board")
	}
}

// ---------------------------------------------------------------------------
// Move
// ---------------------------------------------------------------------------

func TestMoveTaskConservesCount(t *testing.T) {
	b := seedBoard(t, "one", "two", "three")
	before := b.TaskCount()
	for _, id := range taskIDs(b) {
		for _, dest := range []string{ColumnDoing, ColumnDone, ColumnTodo} {
			b = b.MoveTask(id, dest)
			if b.TaskCount() != before {
				t.Fatalf("count = %d after move to %s, want %d", b.TaskCount(), dest, before)
			}
		}
	}
}

func TestMoveTaskAppendsToDestination(t *testing.T) {
	b := seedBoard(t, "one", "two")
	ids := taskIDs(b)
	b = b.MoveTask(ids[0], ColumnDoing)
	b = b.MoveTask(ids[1], ColumnDoing)
	doing, _ := b.Column(ColumnDoing)
	if len(doing.Tasks) != 2 {
		t.Fatalf("doing has %d tasks, want 2", len(doing.Tasks))
	}
	if doing.Tasks[0].ID != ids[0] || doing.Tasks[1].ID != ids[1] {
		t.Errorf("destination order = %v, want append order", doing.Tasks)
	}
	if todo, _ := b.Column(ColumnTodo); len(todo.Tasks) != 0 {
		t.Errorf("todo still holds %d tasks", len(todo.Tasks))
	}
}

func TestMoveTaskWithinColumnMovesToEnd(t *testing.T) {
	b := seedBoard(t, "one", "two", "three")
	first := taskIDs(b)[0]
	b = b.MoveTask(first, ColumnTodo)
	todo, _ := b.Column(ColumnTodo)
	if todo.Tasks[len(todo.Tasks)-1].ID != first {
		t.Errorf("task should end up last in its own column, got %v", todo.Tasks)
	}
	if b.TaskCount() != 3 {
		t.Errorf("count = %d, want 3", b.TaskCount())
	}
}

func TestMoveTaskUnknownTaskOrDestinationIsNoop(t *testing.T) {
	b := seedBoard(t, "one")
	id := taskIDs(b)[0]
	if next := b.MoveTask("nope", ColumnDoing); !next.Equal(b) {
		t.Error("moving an unknown task changed the board")
	}
	if next := b.MoveTask(id, "nowhere"); !next.Equal(b) {
		t.Error("moving to an unknown column changed the board")
	}
}

func TestTaskNeverAppearsInTwoColumns(t *testing.T) {
	b := seedBoard(t, "one", "two")
	id := taskIDs(b)[0]
	b = b.MoveTask(id, ColumnDone)
	count := 0
	for _, col := range b.Columns {
		for _, task := range col.Tasks {
			if task.ID == id {
				count++
			}
		}
	}
	if count != 1 {
		t.Fatalf("task appears in %d columns, want 1", count)
	}
}

// ---------------------------------------------------------------------------
// Value semantics
// ---------------------------------------------------------------------------

func TestTransitionsDoNotAliasInput(t *testing.T) {
	b := seedBoard(t, "one", "two")
	id := taskIDs(b)[0]

	next := b.DeleteTask(id)
	if b.TaskCount() != 2 {
		t.Fatal("DeleteTask mutated its input")
	}

	next, _ = b.SetTaskContent(taskIDs(b)[1], "changed")
	orig, _, _ := b.FindTask(taskIDs(b)[1])
	if orig.Content == "changed" {
		t.Fatal("SetTaskContent mutated its input")
	}

	next = b.MoveTask(id, ColumnDone)
	if _, colID, _ := b.FindTask(id); colID != ColumnTodo {
		t.Fatal("MoveTask mutated its input")
	}
	_ = next
}

func TestNewBoardShape(t *testing.T) {
	b := New()
	if len(b.Columns) != 3 {
		t.Fatalf("columns = %d, want 3", len(b.Columns))
	}
	want := []string{ColumnTodo, ColumnDoing, ColumnDone}
	for i, col := range b.Columns {
		if col.ID != want[i] {
			t.Errorf("column %d id = %q, want %q", i, col.ID, want[i])
		}
		if len(col.Tasks) != 0 {
			t.Errorf("column %q starts with %d tasks", col.ID, len(col.Tasks))
		}
		if strings.TrimSpace(col.Title) == "" {
			t.Errorf("column %q has no title", col.ID)
		}
	}
}

package tui

import (
	"strings"
	"testing"
)

func TestOverlayCenterPlacesBlockMidScreen(t *testing.T) {
	base := strings.TrimSuffix(strings.Repeat("..........\n", 5), "\n")
	out := overlayCenter(base, "XX\nYY", 10, 5)
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5", len(lines))
	}
	if lines[1] != "....XX...." {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != "....YY...." {
		t.Errorf("row 2 = %q", lines[2])
	}
	for _, i := range []int{0, 3, 4} {
		if lines[i] != ".........." {
			t.Errorf("row %d = %q, want untouched base", i, lines[i])
		}
	}
}

func TestOverlayCenterPadsRaggedOverlayLines(t *testing.T) {
	base := "aaaaaaaaaa\nbbbbbbbbbb\ncccccccccc"
	out := overlayCenter(base, "wide line\nw", 10, 3)
	lines := strings.Split(out, "\n")
	// The short overlay line is padded to the block width so base text never
	// shows through the middle of the modal.
	if lines[0] != "wide linea" {
		t.Errorf("row 0 = %q", lines[0])
	}
	if lines[1] != "w        b" {
		t.Errorf("row 1 = %q", lines[1])
	}
}

func TestOverlayCenterClampsOversizedBlock(t *testing.T) {
	base := "....\n...."
	out := overlayCenter(base, "123456", 4, 2)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], "123456") {
		t.Errorf("row 0 = %q, want overlay pinned to column 0", lines[0])
	}
}

func TestSpliceLineKeepsBaseEitherSide(t *testing.T) {
	got := spliceLine("0123456789", "AB", 4, 2, 10)
	if got != "0123AB6789" {
		t.Errorf("spliceLine = %q", got)
	}
}

func TestDetailModalOverlaysBoard(t *testing.T) {
	a, _ := newTestApp(t, "pinned task")
	a, _ = press(t, a, "enter")
	out := a.View()
	if !strings.Contains(out, "pinned task") {
		t.Fatal("modal content missing from composed view")
	}
	if !strings.Contains(out, "Todo") {
		t.Fatal("base board missing from composed view")
	}
}

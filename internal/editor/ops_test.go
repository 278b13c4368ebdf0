package editor

import "testing"

func TestInsertCharGrowsPastEndRow(t *testing.T) {
	s := newTestSession()
	if len(s.rows) != 0 {
		t.Fatal("expected empty buffer")
	}

	s.InsertChar('h')
	s.InsertChar('i')

	if len(s.rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(s.rows))
	}
	if got := string(s.rows[0].chars); got != "hi" {
		t.Errorf("rows[0] = %q, want %q", got, "hi")
	}
	if s.cx != 2 {
		t.Errorf("cx = %d, want 2", s.cx)
	}
}

func TestInsertNewlineSplitsRow(t *testing.T) {
	s := newTestSession()
	s.insertRow(0, []byte("helloworld"))
	s.cx, s.cy = 5, 0

	s.InsertNewline()

	if len(s.rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(s.rows))
	}
	if got := string(s.rows[0].chars); got != "hello" {
		t.Errorf("rows[0] = %q, want %q", got, "hello")
	}
	if got := string(s.rows[1].chars); got != "world" {
		t.Errorf("rows[1] = %q, want %q", got, "world")
	}
	if s.cx != 0 || s.cy != 1 {
		t.Errorf("cursor = (%d,%d), want (0,1)", s.cx, s.cy)
	}
}

func TestInsertNewlineAtColumnZero(t *testing.T) {
	s := newTestSession()
	s.insertRow(0, []byte("hello"))
	s.cx, s.cy = 0, 0

	s.InsertNewline()

	if len(s.rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(s.rows))
	}
	if got := string(s.rows[0].chars); got != "" {
		t.Errorf("rows[0] = %q, want empty", got)
	}
	if got := string(s.rows[1].chars); got != "hello" {
		t.Errorf("rows[1] = %q, want %q", got, "hello")
	}
	if s.cx != 0 || s.cy != 1 {
		t.Errorf("cursor = (%d,%d), want (0,1)", s.cx, s.cy)
	}
}

// Boundary: deleting backward at (0,0) is a no-op; dirty is unchanged.
func TestDeleteCharAtOriginNoOp(t *testing.T) {
	s := newTestSession()
	s.insertRow(0, []byte("hi"))
	s.cx, s.cy = 0, 0
	dirtyBefore := s.dirty

	s.DeleteChar()

	if got := string(s.rows[0].chars); got != "hi" {
		t.Errorf("rows[0] = %q, want unchanged %q", got, "hi")
	}
	if s.dirty != dirtyBefore {
		t.Errorf("dirty = %d, want unchanged %d", s.dirty, dirtyBefore)
	}
}

func TestDeleteCharJoinsRows(t *testing.T) {
	s := newTestSession()
	s.insertRow(0, []byte("hello"))
	s.insertRow(1, []byte("world"))
	s.cx, s.cy = 0, 1

	s.DeleteChar()

	if len(s.rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(s.rows))
	}
	if got := string(s.rows[0].chars); got != "helloworld" {
		t.Errorf("rows[0] = %q, want %q", got, "helloworld")
	}
	if s.cx != 5 || s.cy != 0 {
		t.Errorf("cursor = (%d,%d), want (5,0)", s.cx, s.cy)
	}
}

func TestMoveCursorWrapsAtRowBoundaries(t *testing.T) {
	s := newTestSession()
	s.insertRow(0, []byte("ab"))
	s.insertRow(1, []byte("cd"))
	s.cx, s.cy = 0, 1

	s.MoveCursor(keyArrowLeft)
	if s.cx != 2 || s.cy != 0 {
		t.Errorf("cursor = (%d,%d), want (2,0) after wrap-left", s.cx, s.cy)
	}

	s.MoveCursor(keyArrowRight)
	if s.cx != 0 || s.cy != 1 {
		t.Errorf("cursor = (%d,%d), want (0,1) after wrap-right", s.cx, s.cy)
	}
}

// PAGE_DOWN at end-of-buffer clamps cy to numrows. ProcessKeypress reads
// from the terminal, so this replays its keyPageDown branch: the jump to
// the bottom of the viewport, then screenRows MoveCursor(keyArrowDown).
func TestPageDownClampsAtEndOfBuffer(t *testing.T) {
	s := newTestSession()
	s.screenRows = 10
	s.insertRow(0, []byte("a"))
	s.insertRow(1, []byte("b"))
	s.cy = s.rowOffset + s.screenRows - 1
	if s.cy > len(s.rows) {
		s.cy = len(s.rows)
	}
	for i := 0; i < s.screenRows; i++ {
		s.MoveCursor(keyArrowDown)
	}

	if s.cy != len(s.rows) {
		t.Errorf("cy = %d, want clamped to %d", s.cy, len(s.rows))
	}
}

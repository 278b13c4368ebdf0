package editor

import (
	"os"
	"path/filepath"
	"testing"
)

// Round-trip: loading a file and saving it to a fresh path yields a
// byte-identical file when every original line ended in \n.
func TestOpenSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.c")
	want := "int main() {\n\treturn 0;\n}\n"
	if err := os.WriteFile(src, []byte(want), 0644); err != nil {
		t.Fatal(err)
	}

	s := newTestSession()
	if err := s.Open(src); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.dirty != 0 {
		t.Errorf("dirty = %d after Open, want 0", s.dirty)
	}

	dst := filepath.Join(dir, "out.c")
	s.filename = dst
	s.Save()

	if s.dirty != 0 {
		t.Errorf("dirty = %d after Save, want 0", s.dirty)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != want {
		t.Errorf("saved file = %q, want %q", got, want)
	}
}

// A file lacking a final newline gains one on save: an accepted
// asymmetry per spec §8.
func TestSaveAddsFinalNewline(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.txt")
	if err := os.WriteFile(src, []byte("hi\nworld"), 0644); err != nil {
		t.Fatal(err)
	}

	s := newTestSession()
	if err := s.Open(src); err != nil {
		t.Fatalf("Open: %v", err)
	}

	s.Save()

	got, err := os.ReadFile(src)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hi\nworld\n" {
		t.Errorf("saved file = %q, want trailing newline added", got)
	}
}

// Scenario 1: insert-and-save produces the expected byte count.
func TestInsertAndSave(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "foo.txt")

	s := newTestSession()
	for _, c := range "hi" {
		s.InsertChar(byte(c))
	}
	s.InsertNewline()
	for _, c := range "world" {
		s.InsertChar(byte(c))
	}

	s.filename = dst
	s.Save()

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	want := "hi\nworld\n"
	if string(got) != want {
		t.Errorf("saved file = %q, want %q", got, want)
	}
	if len(got) != 9 {
		t.Errorf("wrote %d bytes, want 9", len(got))
	}
}

func TestOpenEmptyFileYieldsZeroRows(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(src, nil, 0644); err != nil {
		t.Fatal(err)
	}

	s := newTestSession()
	if err := s.Open(src); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if len(s.rows) != 0 {
		t.Errorf("len(rows) = %d, want 0", len(s.rows))
	}
}

// SaveAtomic writes through a temp file and renames over the target,
// an existing file included, rather than truncating it in place.
func TestSaveAtomicReplacesExistingFile(t *testing.T) {
	orig := SaveMode
	SaveMode = SaveAtomic
	defer func() { SaveMode = orig }()

	dir := t.TempDir()
	dst := filepath.Join(dir, "out.txt")
	if err := os.WriteFile(dst, []byte("old contents that is longer"), 0644); err != nil {
		t.Fatal(err)
	}

	s := newTestSession()
	s.filename = dst
	s.insertRow(0, []byte("new"))
	s.Save()

	if s.dirty != 0 {
		t.Errorf("dirty = %d after Save, want 0", s.dirty)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "new\n" {
		t.Errorf("saved file = %q, want %q", got, "new\n")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("dir has %d entries after atomic save, want 1 (no leftover temp file)", len(entries))
	}
}

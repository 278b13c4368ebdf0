// Package editor implements a minimalist VT100/ANSI terminal text
// editor: an in-memory row store with tab-expanded rendering, an
// incremental syntax highlighter with cross-row comment propagation,
// a raw-mode terminal driver, and a double-buffered redraw pipeline.
package editor

import (
	"fmt"
	"os"
	"time"
)

const (
	editorVersion = "1.0.0"
	quitTimes     = 3
)

// Editor modes. modeEdit is normal editing; modeSearch is entered
// only while the incremental-search prompt owns the status bar.
const (
	modeEdit = iota
	modeSearch
)

// Session is the single owned value for one editing session: no
// package-level singleton, per the "Global singleton" design note.
type Session struct {
	term *terminal

	cx, cy    int
	rx        int
	rowOffset int
	colOffset int

	screenRows int
	screenCols int

	rows []row

	dirty    int
	filename string
	syn      *syntax

	statusMessage     string
	statusMessageTime time.Time

	mode      int
	quitTimes int
}

// New constructs a Session with its terminal driver wired up but raw
// mode not yet enabled.
func New() *Session {
	return &Session{
		term:      newTerminal(),
		mode:      modeEdit,
		quitTimes: quitTimes,
	}
}

// Start enables raw mode and queries the window size. Callers must
// defer Stop to guarantee the terminal is restored on every exit path.
func (s *Session) Start() error {
	if err := s.term.enableRawMode(); err != nil {
		return fmt.Errorf("enabling raw mode: %w", err)
	}
	rows, cols, err := s.term.windowSize()
	if err != nil {
		s.term.restore()
		return fmt.Errorf("getting window size: %w", err)
	}
	s.screenRows = rows - 2 // status bar + message bar
	s.screenCols = cols
	return nil
}

// Stop restores the terminal. Safe to call multiple times.
func (s *Session) Stop() {
	s.term.restore()
}

// die is used for fatal terminal/I-O layer errors: the editor's
// invariant that the screen reflects the buffer can't be preserved
// past this point, so it restores the terminal and exits.
func (s *Session) die(format string, args ...any) {
	s.Stop()
	os.Stdout.WriteString(clearScreen)
	os.Stdout.WriteString(cursorHome)
	fmt.Fprintf(os.Stderr, "goedit: "+format+"\n", args...)
	os.Exit(1)
}

// SetStatusMessage is the only channel for non-fatal, user-visible
// errors and confirmations.
func (s *Session) SetStatusMessage(format string, args ...any) {
	s.statusMessage = fmt.Sprintf(format, args...)
	s.statusMessageTime = time.Now()
}

// Redraw re-queries the terminal dimensions and repaints. This is the
// only resize handling the editor does: re-querying on demand rather
// than tracking SIGWINCH (resize-aware reflow is out of scope).
func (s *Session) Redraw() {
	rows, cols, err := s.term.windowSize()
	if err != nil {
		s.SetStatusMessage("%v", err)
		return
	}
	s.screenRows = rows - 2
	s.screenCols = cols
	s.RefreshScreen()
}

// Run opens filename (if non-empty) and runs the read-render loop
// until the user quits or a fatal error occurs.
func (s *Session) Run(filename string) {
	if filename != "" {
		if err := s.Open(filename); err != nil {
			s.die("%v", err)
		}
	}

	s.SetStatusMessage("HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find")

	for {
		s.RefreshScreen()
		s.ProcessKeypress()
	}
}

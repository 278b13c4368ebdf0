package editor

import "os"

// Prompt runs a modal line-input loop over the status bar. callback,
// if non-nil, is invoked after each accepted keystroke (including the
// terminating ESC or CR) so callers like incremental search can react
// per-keystroke. Returns the entered text, or "" on ESC; CR on an empty
// buffer keeps the prompt open.
func (s *Session) Prompt(format string, callback func(buf []byte, key int)) string {
	buf := make([]byte, 0, 128)

	for {
		s.SetStatusMessage(format, string(buf))
		s.RefreshScreen()

		key, err := s.term.readKey()
		if err != nil {
			s.SetStatusMessage("%v", err)
			continue
		}

		switch key {
		case keyDelete, keyBackspace, withControlKey('h'):
			if len(buf) != 0 {
				buf = buf[:len(buf)-1]
			}

		case '\x1b':
			s.SetStatusMessage("")
			if callback != nil {
				callback(buf, key)
			}
			return ""

		case '\r':
			if len(buf) != 0 {
				s.SetStatusMessage("")
				if callback != nil {
					callback(buf, key)
				}
				return string(buf)
			}

		default:
			if key < 128 && !isControl(byte(key)) {
				buf = append(buf, byte(key))
			}
		}

		if callback != nil {
			callback(buf, key)
		}
	}
}

// ProcessKeypress reads one key and dispatches it per the table in
// spec §4.10.
func (s *Session) ProcessKeypress() {
	key, err := s.term.readKey()
	if err != nil {
		s.SetStatusMessage("%v", err)
		return
	}

	switch key {
	case '\r':
		s.InsertNewline()

	case withControlKey('q'):
		if s.dirty > 0 && s.quitTimes > 0 {
			s.SetStatusMessage(
				"WARNING: File has unsaved changes. Press Ctrl-Q %d more times to quit.",
				s.quitTimes)
			s.quitTimes--
			return
		}
		s.Stop()
		os.Stdout.WriteString(clearScreen)
		os.Stdout.WriteString(cursorHome)
		os.Exit(0)

	case withControlKey('s'):
		s.Save()

	case withControlKey('f'):
		s.Find()

	case withControlKey('r'):
		s.Redraw()

	case keyHome:
		s.cx = 0

	case keyEnd:
		if s.cy < len(s.rows) {
			s.cx = len(s.rows[s.cy].chars)
		}

	case keyBackspace, withControlKey('h'):
		s.DeleteChar()

	case keyDelete:
		s.MoveCursor(keyArrowRight)
		s.DeleteChar()

	case keyPageUp:
		s.cy = s.rowOffset
		for i := 0; i < s.screenRows; i++ {
			s.MoveCursor(keyArrowUp)
		}

	case keyPageDown:
		s.cy = s.rowOffset + s.screenRows - 1
		if s.cy > len(s.rows) {
			s.cy = len(s.rows)
		}
		for i := 0; i < s.screenRows; i++ {
			s.MoveCursor(keyArrowDown)
		}

	case keyArrowLeft, keyArrowRight, keyArrowUp, keyArrowDown:
		s.MoveCursor(key)

	case withControlKey('l'), '\x1b':
		// no-op

	default:
		s.InsertChar(byte(key))
	}

	s.quitTimes = quitTimes
}

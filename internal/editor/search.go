package editor

import "bytes"

// findState holds the incremental-search callback's persistent state
// across keystrokes, per spec §4.9.
type findState struct {
	lastMatch   int
	direction   int
	savedHlLine int
	savedHl     []byte
}

// Find opens the search prompt, restoring the cursor on abort. s.mode
// is held at modeSearch for the prompt's duration so the status bar
// can tell the two apart.
func (s *Session) Find() {
	savedCx, savedCy := s.cx, s.cy
	savedColOffset, savedRowOffset := s.colOffset, s.rowOffset

	s.mode = modeSearch
	defer func() { s.mode = modeEdit }()

	fs := &findState{lastMatch: -1, direction: 1}
	query := s.Prompt("Search: %s (Use ESC/Arrows/Enter)", fs.callback(s))

	if query == "" {
		s.cx, s.cy = savedCx, savedCy
		s.colOffset, s.rowOffset = savedColOffset, savedRowOffset
	}
}

// callback returns the per-keystroke closure Prompt invokes. Restores
// any scratch Match highlighting from the previous step before acting
// on the new key.
func (fs *findState) callback(s *Session) func([]byte, int) {
	return func(query []byte, key int) {
		if fs.savedHl != nil {
			copy(s.rows[fs.savedHlLine].hl, fs.savedHl)
			fs.savedHl = nil
		}

		switch key {
		case '\r', '\x1b':
			fs.lastMatch = -1
			fs.direction = 1
			return
		case keyArrowRight, keyArrowDown:
			fs.direction = 1
		case keyArrowLeft, keyArrowUp:
			fs.direction = -1
		default:
			fs.lastMatch = -1
			fs.direction = 1
		}

		if fs.lastMatch == -1 {
			fs.direction = 1
		}
		current := fs.lastMatch

		for range s.rows {
			current += fs.direction
			switch {
			case current == -1:
				current = len(s.rows) - 1
			case current == len(s.rows):
				current = 0
			}

			r := &s.rows[current]
			match := bytes.Index(r.render, query)
			if match == -1 {
				continue
			}

			fs.lastMatch = current
			s.cy = current
			s.cx = r.rxToCx(match)
			s.rowOffset = len(s.rows)

			fs.savedHlLine = current
			fs.savedHl = append([]byte(nil), r.hl...)
			for k := match; k < match+len(query) && k < len(r.hl); k++ {
				r.hl[k] = hlMatch
			}
			break
		}
	}
}

package editor

// InsertChar inserts c at the cursor, growing the row store with an
// empty row first if the cursor sits on the implicit row past the end.
func (s *Session) InsertChar(c byte) {
	if s.cy == len(s.rows) {
		s.insertRow(len(s.rows), nil)
	}
	s.rows[s.cy].insertChar(s, s.cx, c)
	s.cx++
}

// InsertNewline splits the current row at the cursor, or inserts an
// empty row above it when the cursor is at column 0.
func (s *Session) InsertNewline() {
	if s.cx == 0 {
		s.insertRow(s.cy, nil)
	} else {
		r := &s.rows[s.cy]
		tail := append([]byte(nil), r.chars[s.cx:]...)
		s.insertRow(s.cy+1, tail)

		r = &s.rows[s.cy]
		r.chars = r.chars[:s.cx]
		r.update(s)
	}
	s.cy++
	s.cx = 0
}

// DeleteChar deletes the byte to the left of the cursor, joining the
// current row into the previous one at column 0. A no-op at (0,0) or
// past the last row.
func (s *Session) DeleteChar() {
	if s.cy == len(s.rows) {
		return
	}
	if s.cx == 0 && s.cy == 0 {
		return
	}

	r := &s.rows[s.cy]
	if s.cx > 0 {
		r.deleteChar(s, s.cx-1)
		s.cx--
		return
	}

	s.cx = len(s.rows[s.cy-1].chars)
	s.rows[s.cy-1].appendBytes(s, r.chars)
	s.deleteRow(s.cy)
	s.cy--
}

// MoveCursor moves the cursor for one of the arrow keys, wrapping at
// row boundaries and clamping cx to the landing row's length.
func (s *Session) MoveCursor(key int) {
	var r *row
	if s.cy < len(s.rows) {
		r = &s.rows[s.cy]
	}

	switch key {
	case keyArrowLeft:
		if s.cx != 0 {
			s.cx--
		} else if s.cy > 0 {
			s.cy--
			s.cx = len(s.rows[s.cy].chars)
		}
	case keyArrowRight:
		if r != nil && s.cx < len(r.chars) {
			s.cx++
		} else if r != nil && s.cx == len(r.chars) {
			s.cy++
			s.cx = 0
		}
	case keyArrowUp:
		if s.cy != 0 {
			s.cy--
		}
	case keyArrowDown:
		if s.cy < len(s.rows) {
			s.cy++
		}
	}

	rowlen := 0
	if s.cy < len(s.rows) {
		rowlen = len(s.rows[s.cy].chars)
	}
	if s.cx > rowlen {
		s.cx = rowlen
	}
}

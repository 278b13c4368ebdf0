package editor

// scroll enforces the viewport invariants from spec §4.5: cy stays
// within [rowOffset, rowOffset+screenRows), rx stays within
// [colOffset, colOffset+screenCols), recomputing rx from cx first
// since tabs mean the two diverge.
func (s *Session) scroll() {
	s.rx = 0
	if s.cy < len(s.rows) {
		s.rx = s.rows[s.cy].cxToRx(s.cx)
	}

	if s.cy < s.rowOffset {
		s.rowOffset = s.cy
	}
	if s.cy >= s.rowOffset+s.screenRows {
		s.rowOffset = s.cy - s.screenRows + 1
	}
	if s.rx < s.colOffset {
		s.colOffset = s.rx
	}
	if s.rx >= s.colOffset+s.screenCols {
		s.colOffset = s.rx - s.screenCols + 1
	}
}

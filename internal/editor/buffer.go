package editor

// appendBuffer assembles one output frame before a single write, so the
// whole frame reaches the terminal in one syscall and nothing tears.
type appendBuffer struct {
	buf []byte
}

func (a *appendBuffer) append(s []byte) {
	a.buf = append(a.buf, s...)
}

func (a *appendBuffer) appendString(s string) {
	a.buf = append(a.buf, s...)
}

// tabStop is the column width tabs expand to.
const tabStop = 8

// row is one logical line of the buffer: its raw bytes, its tab-expanded
// render, and the per-rendered-byte highlight tags.
type row struct {
	idx           int
	chars         []byte
	render        []byte
	hl            []byte
	hlOpenComment bool
}

// cxToRx converts a logical column to a rendered column by expanding
// the tabs that precede it.
func (r *row) cxToRx(cx int) int {
	rx := 0
	for j := 0; j < cx && j < len(r.chars); j++ {
		if r.chars[j] == '\t' {
			rx += tabStop - (rx % tabStop)
		} else {
			rx++
		}
	}
	return rx
}

// rxToCx is the inverse of cxToRx: the logical column whose rendered
// column is closest to rx without exceeding it.
func (r *row) rxToCx(rx int) int {
	curRx := 0
	cx := 0
	for ; cx < len(r.chars); cx++ {
		if r.chars[cx] == '\t' {
			curRx += tabStop - (curRx % tabStop)
		} else {
			curRx++
		}
		if curRx > rx {
			return cx
		}
	}
	return cx
}

// update rebuilds render from chars, expanding tabs to the next
// tabStop-multiple column, then refreshes the highlight tags.
func (r *row) update(s *Session) {
	tabs := 0
	for _, c := range r.chars {
		if c == '\t' {
			tabs++
		}
	}

	render := make([]byte, 0, len(r.chars)+tabs*(tabStop-1))
	for _, c := range r.chars {
		if c == '\t' {
			render = append(render, ' ')
			for len(render)%tabStop != 0 {
				render = append(render, ' ')
			}
		} else {
			render = append(render, c)
		}
	}
	r.render = render
	r.updateSyntax(s)
}

// insertRow inserts a new row at position at, shifting and
// renumbering subsequent rows. Out-of-range at is a no-op.
func (s *Session) insertRow(at int, chars []byte) {
	if at < 0 || at > len(s.rows) {
		return
	}
	nr := row{idx: at, chars: append([]byte(nil), chars...)}

	s.rows = append(s.rows, row{})
	copy(s.rows[at+1:], s.rows[at:])
	s.rows[at] = nr

	for j := at + 1; j < len(s.rows); j++ {
		s.rows[j].idx = j
	}

	s.rows[at].update(s)
	s.dirty++
}

// deleteRow removes the row at position at, shifting and renumbering
// subsequent rows. Out-of-range at is a no-op.
func (s *Session) deleteRow(at int) {
	if at < 0 || at >= len(s.rows) {
		return
	}
	s.rows = append(s.rows[:at], s.rows[at+1:]...)
	for j := at; j < len(s.rows); j++ {
		s.rows[j].idx = j
	}
	s.dirty++
}

// insertChar inserts byte c at logical column at, clamping at to
// [0, len(chars)].
func (r *row) insertChar(s *Session, at int, c byte) {
	if at < 0 {
		at = 0
	} else if at > len(r.chars) {
		at = len(r.chars)
	}
	r.chars = append(r.chars, 0)
	copy(r.chars[at+1:], r.chars[at:])
	r.chars[at] = c
	r.update(s)
	s.dirty++
}

// deleteChar removes the byte at logical column at. Out-of-range at is
// a no-op.
func (r *row) deleteChar(s *Session, at int) {
	if at < 0 || at >= len(r.chars) {
		return
	}
	r.chars = append(r.chars[:at], r.chars[at+1:]...)
	r.update(s)
	s.dirty++
}

// appendBytes appends b to the row's logical bytes.
func (r *row) appendBytes(s *Session, b []byte) {
	r.chars = append(r.chars, b...)
	r.update(s)
	s.dirty++
}

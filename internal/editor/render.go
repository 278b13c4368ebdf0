package editor

import (
	"fmt"
	"os"
	"time"
)

// RefreshScreen emits one frame: hide cursor, home cursor, rows,
// status bar, message bar, reposition cursor, show cursor, single
// write. Assembled in an appendBuffer so the whole frame reaches the
// terminal in one syscall.
func (s *Session) RefreshScreen() {
	s.scroll()

	var ab appendBuffer
	ab.appendString(cursorHide)
	ab.appendString(cursorHome)

	s.drawRows(&ab)
	s.drawStatusBar(&ab)
	s.drawMessageBar(&ab)

	ab.append(fmt.Appendf(nil, cursorPositionFormat, s.cy-s.rowOffset+1, s.rx-s.colOffset+1))
	ab.appendString(cursorShow)

	os.Stdout.Write(ab.buf)
}

func (s *Session) drawRows(ab *appendBuffer) {
	for y := 0; y < s.screenRows; y++ {
		filerow := y + s.rowOffset
		if filerow >= len(s.rows) {
			if len(s.rows) == 0 && y == s.screenRows/3 {
				s.drawWelcome(ab)
			} else {
				ab.appendString("~")
			}
		} else {
			s.drawTextRow(ab, &s.rows[filerow])
		}
		ab.appendString(clearLine)
		ab.appendString("\r\n")
	}
}

func (s *Session) drawWelcome(ab *appendBuffer) {
	welcome := fmt.Sprintf("goedit -- version %s", editorVersion)
	if len(welcome) > s.screenCols {
		welcome = welcome[:s.screenCols]
	}
	padding := (s.screenCols - len(welcome)) / 2
	if padding > 0 {
		ab.appendString("~")
		padding--
	}
	for ; padding > 0; padding-- {
		ab.appendString(" ")
	}
	ab.appendString(welcome)
}

func (s *Session) drawTextRow(ab *appendBuffer, r *row) {
	start := s.colOffset
	if start > len(r.render) {
		start = len(r.render)
	}
	end := start + s.screenCols
	if end > len(r.render) {
		end = len(r.render)
	}

	currentColor := -1
	for j := start; j < end; j++ {
		c := r.render[j]
		h := r.hl[j]

		if isControl(c) {
			sym := c + '@'
			if c == 127 {
				sym = '?'
			}
			ab.appendString(colorsInvert)
			ab.append([]byte{'^', sym})
			ab.appendString(colorsReset)
			if currentColor != -1 {
				ab.append(fmt.Appendf(nil, sgrFormat, currentColor))
			}
			continue
		}

		if h == hlNormal {
			if currentColor != colorDefault {
				ab.append(fmt.Appendf(nil, sgrFormat, colorDefault))
				currentColor = colorDefault
			}
			ab.append([]byte{c})
			continue
		}

		color := syntaxColor(h)
		if color != currentColor {
			ab.append(fmt.Appendf(nil, sgrFormat, color))
			currentColor = color
		}
		ab.append([]byte{c})
	}
	ab.append(fmt.Appendf(nil, sgrFormat, colorDefault))
}

func (s *Session) drawStatusBar(ab *appendBuffer) {
	ab.appendString(colorsInvert)

	filename := s.filename
	if filename == "" {
		filename = "[No Name]"
	}
	dirtyFlag := ""
	if s.dirty > 0 {
		dirtyFlag = " (modified)"
	}
	status := fmt.Sprintf("%.20s - %d lines%s", filename, len(s.rows), dirtyFlag)
	if len(status) > s.screenCols {
		status = status[:s.screenCols]
	}

	filetype := "no ft"
	if s.syn != nil {
		filetype = s.syn.filetype
	}
	modeTag := ""
	if s.mode == modeSearch {
		modeTag = " | search"
	}
	rstatus := fmt.Sprintf("%s | %d/%d%s", filetype, s.cy+1, len(s.rows), modeTag)

	ab.appendString(status)
	for l := len(status); l < s.screenCols; l++ {
		if s.screenCols-l == len(rstatus) {
			ab.appendString(rstatus)
			break
		}
		ab.appendString(" ")
	}

	ab.appendString(colorsReset)
	ab.appendString("\r\n")
}

func (s *Session) drawMessageBar(ab *appendBuffer) {
	ab.appendString(clearLine)
	msg := s.statusMessage
	if len(msg) > s.screenCols {
		msg = msg[:s.screenCols]
	}
	if time.Since(s.statusMessageTime) < 5*time.Second {
		ab.appendString(msg)
	}
}

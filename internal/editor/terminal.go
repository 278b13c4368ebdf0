package editor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// Logical keys returned by readKey for bytes that don't map to a
// printable character or a plain control code.
const (
	keyBackspace = 127
	keyArrowLeft = 1000 + iota
	keyArrowRight
	keyArrowUp
	keyArrowDown
	keyDelete
	keyHome
	keyEnd
	keyPageUp
	keyPageDown
)

// withControlKey converts a character to its Ctrl-modified equivalent.
func withControlKey(c byte) int {
	return int(c) & 0x1f
}

func isControl(c byte) bool {
	return c < 32 || c == 127
}

// terminal owns the raw-mode lifecycle for the controlling tty.
type terminal struct {
	fd       int
	orig     *unix.Termios
	inReader *bufio.Reader
}

func newTerminal() *terminal {
	fd := int(os.Stdin.Fd())
	return &terminal{fd: fd, inReader: bufio.NewReader(os.Stdin)}
}

// enableRawMode snapshots the current termios and installs the flags
// described in spec §4.1: no BRKINT/ICRNL/INPCK/ISTRIP/IXON, no OPOST,
// no ECHO/ICANON/IEXTEN/ISIG, CS8, VMIN=0 VTIME=1 (100ms idle read).
func (t *terminal) enableRawMode() error {
	orig, err := unix.IoctlGetTermios(t.fd, unix.TCGETS)
	if err != nil {
		return fmt.Errorf("get termios: %w", err)
	}
	t.orig = orig

	raw := *orig
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1

	if err := unix.IoctlSetTermios(t.fd, unix.TCSETS, &raw); err != nil {
		return fmt.Errorf("set termios: %w", err)
	}
	return nil
}

// restore reverts the terminal to the snapshot taken by enableRawMode.
// Safe to call more than once; a second call is a no-op.
func (t *terminal) restore() {
	if t.orig == nil {
		return
	}
	unix.IoctlSetTermios(t.fd, unix.TCSETS, t.orig)
	t.orig = nil
}

// readKey blocks (in 100ms slices) for one byte and decodes escape
// sequences into the logical key alphabet described in spec §4.1.
func (t *terminal) readKey() (int, error) {
	var b [1]byte
	for {
		n, err := os.Stdin.Read(b[:])
		if n == 1 {
			break
		}
		// With VMIN=0 an idle 100ms slice reads zero bytes, which
		// os.File.Read reports as io.EOF; keep waiting.
		if err != nil && err != io.EOF {
			return 0, fmt.Errorf("read key: %w", err)
		}
	}

	if b[0] != '\x1b' {
		return int(b[0]), nil
	}

	seq, err := t.readEscape()
	if err != nil {
		return '\x1b', nil
	}
	return seq, nil
}

// readEscape decodes the bytes following an ESC. Unknown sequences
// decode as literal ESC, handled by the caller.
func (t *terminal) readEscape() (int, error) {
	var s [2]byte
	if n, err := os.Stdin.Read(s[0:1]); n != 1 || err != nil {
		return 0, errors.New("no sequence")
	}
	if n, err := os.Stdin.Read(s[1:2]); n != 1 || err != nil {
		return 0, errors.New("no sequence")
	}

	switch s[0] {
	case '[':
		if s[1] >= '0' && s[1] <= '9' {
			var tail [1]byte
			if n, err := os.Stdin.Read(tail[:]); n != 1 || err != nil {
				return 0, errors.New("no sequence")
			}
			if tail[0] != '~' {
				return 0, errors.New("no sequence")
			}
			switch s[1] {
			case '1', '7':
				return keyHome, nil
			case '3':
				return keyDelete, nil
			case '4', '8':
				return keyEnd, nil
			case '5':
				return keyPageUp, nil
			case '6':
				return keyPageDown, nil
			}
			return 0, errors.New("no sequence")
		}
		switch s[1] {
		case 'A':
			return keyArrowUp, nil
		case 'B':
			return keyArrowDown, nil
		case 'C':
			return keyArrowRight, nil
		case 'D':
			return keyArrowLeft, nil
		case 'H':
			return keyHome, nil
		case 'F':
			return keyEnd, nil
		}
	case 'O':
		switch s[1] {
		case 'H':
			return keyHome, nil
		case 'F':
			return keyEnd, nil
		}
	}
	return 0, errors.New("no sequence")
}

// windowSize prefers the TIOCGWINSZ ioctl; if that fails or reports
// zero columns, it falls back to parking the cursor at the bottom-right
// corner and parsing the cursor-position report.
func (t *terminal) windowSize() (rows, cols int, err error) {
	ws, ioctlErr := unix.IoctlGetWinsize(t.fd, unix.TIOCGWINSZ)
	if ioctlErr == nil && ws.Col != 0 {
		return int(ws.Row), int(ws.Col), nil
	}

	if _, err := os.Stdout.WriteString(cursorBottomRight); err != nil {
		return 0, 0, err
	}
	return t.cursorPosition()
}

// cursorPosition sends the "report cursor position" escape and parses
// the "ESC [ rows ; cols R" reply.
func (t *terminal) cursorPosition() (rows, cols int, err error) {
	if _, err := os.Stdout.WriteString(cursorGetPosition); err != nil {
		return 0, 0, err
	}

	var buf [32]byte
	i := 0
	for i < len(buf)-1 {
		c, err := t.inReader.ReadByte()
		if err != nil {
			return 0, 0, fmt.Errorf("read cursor position: %w", err)
		}
		buf[i] = c
		if c == 'R' {
			i++
			break
		}
		i++
	}

	if i < 2 || buf[0] != '\x1b' || buf[1] != '[' {
		return 0, 0, errors.New("improper cursor position response")
	}
	if _, err := fmt.Sscanf(string(buf[2:i-1]), "%d;%d", &rows, &cols); err != nil {
		return 0, 0, fmt.Errorf("parse cursor position: %w", err)
	}
	return rows, cols, nil
}

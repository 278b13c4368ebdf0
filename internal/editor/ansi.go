package editor

// ANSI/VT100 escape sequences used by the renderer and terminal driver.
const (
	clearScreen = "\x1b[2J"
	clearLine   = "\x1b[K"
	cursorHome  = "\x1b[H"

	cursorHide = "\x1b[?25l"
	cursorShow = "\x1b[?25h"

	cursorBottomRight = "\x1b[999C\x1b[999B"
	cursorGetPosition = "\x1b[6n"

	cursorPositionFormat = "\x1b[%d;%dH"

	colorsReset  = "\x1b[m"
	colorsInvert = "\x1b[7m"

	sgrFormat = "\x1b[%dm"
)

// Foreground SGR codes per highlight class, per the color map in §4.6.
const (
	colorNumber   = 31
	colorKeyword2 = 32
	colorKeyword1 = 33
	colorMatch    = 34
	colorString   = 35
	colorComment  = 36
	colorDefault  = 39
)

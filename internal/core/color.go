package core

// Color is the foreground color of a screen cell. The zero value leaves the
// terminal's own foreground.
type Color uint8

const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
)

// ansiCodes holds the 256-color code for each named color.
var ansiCodes = [...]string{
	ColorBlack:   "0",
	ColorRed:     "1",
	ColorGreen:   "2",
	ColorYellow:  "3",
	ColorBlue:    "4",
	ColorMagenta: "5",
	ColorCyan:    "6",
	ColorWhite:   "7",
	ColorGray:    "245",
}

// ANSI returns the terminal color code for c, or "" for the default color
// and unknown values.
func (c Color) ANSI() string {
	if int(c) >= len(ansiCodes) {
		return ""
	}
	return ansiCodes[c]
}

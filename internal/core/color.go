package core

// Color is a foreground color for a screen cell.
type Color uint8

// Terminal colors. ColorDefault leaves the terminal's own foreground.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorGray
)

// Roles used by the playfield.
const (
	ColorShip    = ColorBrightGreen
	ColorInvader = ColorMagenta
	ColorBoss    = ColorBrightRed
	ColorBullet  = ColorBrightYellow
	ColorShield  = ColorCyan
	ColorHUD     = ColorBrightWhite
	ColorMuted   = ColorGray
	ColorAlert   = ColorBrightRed
)

var ansiCodes = [...]string{
	ColorDefault:      "",
	ColorRed:          "1",
	ColorGreen:        "2",
	ColorMagenta:      "5",
	ColorCyan:         "6",
	ColorWhite:        "7",
	ColorBrightRed:    "9",
	ColorBrightGreen:  "10",
	ColorBrightYellow: "11",
	ColorBrightWhite:  "15",
	ColorGray:         "245",
}

// ANSI returns the 256-color code of c, or "" for the default color and
// unknown values.
func (c Color) ANSI() string {
	if int(c) >= len(ansiCodes) {
		return ""
	}
	return ansiCodes[c]
}

package core

// Color identifies one of the standard ANSI terminal colors. The game
// writes colors into screen cells; the platform layer maps them onto
// actual terminal styles.
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
	ColorBrightBlack
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
)

// ParseColor maps a color name from a level file onto a Color.
func ParseColor(name string) (Color, bool) {
	switch name {
	case "black":
		return ColorBlack, true
	case "red":
		return ColorRed, true
	case "green":
		return ColorGreen, true
	case "yellow":
		return ColorYellow, true
	case "blue":
		return ColorBlue, true
	case "magenta":
		return ColorMagenta, true
	case "cyan":
		return ColorCyan, true
	case "white":
		return ColorWhite, true
	case "gray", "grey":
		return ColorBrightBlack, true
	case "brown":
		return ColorYellow, true
	case "orange":
		return ColorBrightRed, true
	default:
		return ColorDefault, false
	}
}

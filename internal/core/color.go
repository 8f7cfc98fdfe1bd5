package core

// Color is a terminal color understood by the platform renderer.
// It is either an ANSI 256-color index ("0".."255") or a "#rrggbb" hex string.
// The empty string means the terminal default.
type Color string

// Predefined colors for HUD and text elements.
const (
	ColorDefault     Color = ""
	ColorRed         Color = "1"
	ColorGreen       Color = "2"
	ColorYellow      Color = "3"
	ColorWhite       Color = "7"
	ColorBrightRed   Color = "9"
	ColorBrightGreen Color = "10"
	ColorBrightWhite Color = "15"
	ColorGray        Color = "245"
)

// Cell is a single character cell of a Screen.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

// blank is the value every cell holds after Clear.
var blank = Cell{Rune: ' '}

package draw

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorReset clears all colour attributes.
const ColorReset = "\033[0m"

// Palette colours as hex strings, shared with lipgloss styles.
const (
	HexPink   = "#FFC0CB"
	HexPurple = "#800080"
	HexGray   = "#808080"
	HexWhite  = "#FFFFFF"
)

// Color is a palette entry.
type Color struct {
	Hex string
	rgb colorful.Color
}

// MustColor parses a hex colour and panics if it is malformed.
// Only use with the constants above.
func MustColor(hex string) Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(fmt.Sprintf("draw: bad colour %q: %v", hex, err))
	}
	return Color{Hex: hex, rgb: c}
}

// Background returns the truecolor SGR sequence selecting c as background.
func (c Color) Background() string {
	r, g, b := c.rgb.RGB255()
	return fmt.Sprintf("\033[48;2;%d;%d;%dm", r, g, b)
}

// Foreground returns the truecolor SGR sequence selecting c as foreground.
func (c Color) Foreground() string {
	r, g, b := c.rgb.RGB255()
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", r, g, b)
}

// Palette colours.
var (
	Pink   = MustColor(HexPink)
	Purple = MustColor(HexPurple)
	Gray   = MustColor(HexGray)
	White  = MustColor(HexWhite)
)

package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockfall/core"
)

// Palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbWellEmpty  = tcell.NewRGBColor(40, 42, 58)    // Empty cell shade
	RgbBorder     = tcell.NewRGBColor(120, 124, 153) // Well frame
	RgbLabel      = tcell.NewRGBColor(180, 180, 180) // Panel labels
	RgbValue      = tcell.NewRGBColor(255, 255, 255) // Panel values
	RgbHelp       = tcell.NewRGBColor(110, 110, 110) // Key help
	RgbGameOver   = tcell.NewRGBColor(255, 80, 80)   // Game over banner
)

// flashBlend is how far a flashing row is pushed toward white
const flashBlend = 0.7

// toRGB converts any tcell color, including palette names, to explicit channels
func toRGB(c tcell.Color) core.RGB {
	r, g, b := c.RGB()
	if r < 0 {
		return core.RGBWhite
	}
	return core.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

func fromRGB(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// flashColor brightens a cell color for the lit phase of a row flash
func flashColor(c tcell.Color) tcell.Color {
	return fromRGB(toRGB(c).Blend(core.RGBWhite, flashBlend))
}

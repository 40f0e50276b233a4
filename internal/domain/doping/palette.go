package doping

import (
	"image/color"

	"github.com/okian/stride/internal/domain/model"
)

// Fixed colors with a stable color-to-meaning binding: the slate blue always
// means an unflagged performance, amber always means the RUS program window,
// red always means the GDR program window, whichever subset is present.
var (
	colorNone     = color.RGBA{R: 0x4e, G: 0x79, B: 0xa7, A: 0xff}
	colorProgramB = color.RGBA{R: 0xf2, G: 0x8e, B: 0x2b, A: 0xff}
	colorProgramA = color.RGBA{R: 0xe1, G: 0x57, B: 0x59, A: 0xff}
)

// Color returns the fixed color bound to a flag.
func Color(f model.Flag) color.Color {
	switch f {
	case model.ProgramB:
		return colorProgramB
	case model.ProgramA:
		return colorProgramA
	default:
		return colorNone
	}
}

// Palette maps the set of flags present in a chart onto an ordered color
// list. Slot 0 is always None's color; ProgramB and ProgramA follow in that
// fixed order when present. The result depends only on set membership, never
// on row order: one color when only None is present, two when one program
// window is, three when both are.
func Palette(present map[model.Flag]bool) []color.Color {
	palette := []color.Color{colorNone}
	for _, f := range []model.Flag{model.ProgramB, model.ProgramA} {
		if present[f] {
			palette = append(palette, Color(f))
		}
	}
	return palette
}

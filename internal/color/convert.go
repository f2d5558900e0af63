package color

import (
	stdcolor "image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA implements image/color.Color. Colors are always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.c[Red])
	r |= r << 8
	g = uint32(c.c[Green])
	g |= g << 8
	b = uint32(c.c[Blue])
	b |= b << 8
	return r, g, b, 0xffff
}

// FromStdColor converts any image/color.Color, dropping alpha after
// un-premultiplying the components. It reports false for a fully
// transparent input, which has no meaningful RGB value.
func FromStdColor(c stdcolor.Color) (Color, bool) {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return Color{}, false
	}
	return FromColorful(cf), true
}

// FromColorful converts a go-colorful color, clamping out-of-gamut
// components into range first.
func FromColorful(cf colorful.Color) Color {
	r, g, b := cf.Clamped().RGB255()
	return Color{c: [3]uint8{r, g, b}}
}

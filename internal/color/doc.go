// Package color provides an RGB color value type with contrast scoring.
//
// A Color holds three 8-bit channels. Colors are built from components,
// hex strings or CSS/X11 color names:
//
//	c := color.New(100, 100, 100)
//	navy, err := color.FromName("Navy")
//	teal, err := color.FromHex("#008080")
//
// Numeric inputs are never rejected. Components outside [0,255], whether
// passed to New or produced by Lighten and Darken, are clamped to the
// nearest bound. Only the string constructors fail, with ErrInvalidFormat
// or ErrUnknownColorName.
//
// # Value Semantics
//
// Color is immutable. Lighten, Darken and their per-channel variants
// return a new Color, so calls chain without aliasing:
//
//	hover := base.Lighten(10).DarkenChannels(5, color.Channels(color.Blue))
//
// # Contrast
//
// ContrastCoefficient scores a candidate against a reference color using
// four metrics, each compared to a fixed threshold:
//
//	metric                  threshold
//	channel difference      500
//	brightness difference   125
//	luminosity ratio        5
//	euclidean distance      250
//
// The score is i1 + i2 + i3*i4, where each i is 1 when its metric reaches
// the threshold. The luminosity and distance checks only count when both
// pass. ContrastingColor picks the first candidate with the highest score,
// which is the usual way to choose a text color for a background:
//
//	text := background.ContrastingColor() // black or white
//
// # Interop
//
// Color implements image/color.Color. FromStdColor converts any
// image/color.Color back, and FromColorful converts a go-colorful color.
package color

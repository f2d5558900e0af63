package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Errors returned by the string constructors. They are wrapped with the
// offending input, so compare with errors.Is.
var (
	ErrInvalidFormat    = errors.New("invalid color format")
	ErrUnknownColorName = errors.New("unknown color name")
)

// Channel identifies one of the three color components.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

// String returns the lowercase channel name.
func (ch Channel) String() string {
	switch ch {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("Channel(%d)", int(ch))
	}
}

// ParseChannel converts "red", "green" or "blue" (any case, also the
// single letters r, g, b) into a Channel.
func ParseChannel(s string) (Channel, error) {
	switch strings.ToLower(s) {
	case "red", "r":
		return Red, nil
	case "green", "g":
		return Green, nil
	case "blue", "b":
		return Blue, nil
	default:
		return 0, fmt.Errorf("unknown channel: %s", s)
	}
}

// ChannelSet is a set of channels selecting which components Lighten and
// Darken adjust.
type ChannelSet uint8

// AllChannels selects red, green and blue.
const AllChannels = ChannelSet(1<<Red | 1<<Green | 1<<Blue)

// Channels builds a set from the given channels.
func Channels(chs ...Channel) ChannelSet {
	var set ChannelSet
	for _, ch := range chs {
		if ch < Red || ch > Blue {
			continue
		}
		set |= 1 << ch
	}
	return set
}

// Has reports whether ch is in the set.
func (s ChannelSet) Has(ch Channel) bool {
	if ch < Red || ch > Blue {
		return false
	}
	return s&(1<<ch) != 0
}

// Color is an RGB color with 8-bit channels.
//
// The zero value is black. Color is a small value type: copy it freely,
// compare it with ==. Every method that changes a channel returns a new
// Color and leaves the receiver untouched.
type Color struct {
	c [3]uint8
}

// New builds a color from integer components. Components outside
// [0,255] are clamped to the nearest bound.
func New(r, g, b int) Color {
	return Color{c: [3]uint8{clamp(r), clamp(g), clamp(b)}}
}

// NewFloat builds a color from fractional components. Each component is
// truncated toward zero and then clamped into [0,255]; NaN becomes 0.
func NewFloat(r, g, b float64) Color {
	return Color{c: [3]uint8{clampFloat(r), clampFloat(g), clampFloat(b)}}
}

// FromHex parses a "#rrggbb" or "rrggbb" string. Hex digits may be upper
// or lower case. Anything else, including the three digit shorthand,
// fails with ErrInvalidFormat.
func FromHex(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("%w: %q is not 6 hex digits", ErrInvalidFormat, s)
	}

	var c Color
	for i := range c.c {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q is not 6 hex digits", ErrInvalidFormat, s)
		}
		c.c[i] = uint8(v)
	}
	return c, nil
}

// FromName looks up a named color such as "red" or "CornflowerBlue".
// The lookup ignores case.
func FromName(name string) (Color, error) {
	c, ok := Lookup(name)
	if !ok {
		return Color{}, fmt.Errorf("%w: %q", ErrUnknownColorName, name)
	}
	return c, nil
}

// Parse accepts either a color name or a hex string.
func Parse(s string) (Color, error) {
	if c, ok := Lookup(s); ok {
		return c, nil
	}
	c, err := FromHex(s)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q is neither a color name nor a hex color", ErrInvalidFormat, s)
	}
	return c, nil
}

// R returns the red component.
func (c Color) R() uint8 { return c.c[Red] }

// G returns the green component.
func (c Color) G() uint8 { return c.c[Green] }

// B returns the blue component.
func (c Color) B() uint8 { return c.c[Blue] }

// Channel returns the value of a single component, or 0 for a value that
// is not Red, Green or Blue.
func (c Color) Channel(ch Channel) uint8 {
	if ch < Red || ch > Blue {
		return 0
	}
	return c.c[ch]
}

// Hex formats the color as "#rrggbb" with lowercase digits.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.c[Red], c.c[Green], c.c[Blue])
}

// String implements fmt.Stringer using the hex form.
func (c Color) String() string {
	return c.Hex()
}

// Lighten raises every channel by percent of the full range.
func (c Color) Lighten(percent float64) Color {
	return c.adjust(percent, AllChannels)
}

// Darken lowers every channel by percent of the full range.
func (c Color) Darken(percent float64) Color {
	return c.adjust(-percent, AllChannels)
}

// LightenChannels raises only the channels in set.
func (c Color) LightenChannels(percent float64, set ChannelSet) Color {
	return c.adjust(percent, set)
}

// DarkenChannels lowers only the channels in set.
func (c Color) DarkenChannels(percent float64, set ChannelSet) Color {
	return c.adjust(-percent, set)
}

// adjust shifts the channels in set by percent*2.55, rounded to the nearest
// integer. Results are clamped; percent itself is not range checked.
func (c Color) adjust(percent float64, set ChannelSet) Color {
	if math.IsNaN(percent) {
		return c
	}
	// percent*255/100 avoids the rounding error of the literal 2.55.
	amount := math.Round(percent * 255 / 100)
	out := c
	for ch := Red; ch <= Blue; ch++ {
		if set.Has(ch) {
			out.c[ch] = clampFloat(float64(c.c[ch]) + amount)
		}
	}
	return out
}

func clamp(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func clampFloat(v float64) uint8 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}

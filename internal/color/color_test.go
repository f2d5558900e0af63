package color

import (
	"errors"
	"math"
	"sort"
	"testing"
)

func TestNew_Clamps(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b int
		want    [3]uint8
	}{
		{"in range", 10, 20, 30, [3]uint8{10, 20, 30}},
		{"bounds", 0, 255, 0, [3]uint8{0, 255, 0}},
		{"below zero", -1, -500, -255, [3]uint8{0, 0, 0}},
		{"above max", 256, 1000, 255, [3]uint8{255, 255, 255}},
		{"mixed", -10, 300, 128, [3]uint8{0, 255, 128}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.r, tt.g, tt.b)
			got := [3]uint8{c.R(), c.G(), c.B()}
			if got != tt.want {
				t.Errorf("New(%d,%d,%d): got %v, want %v", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestNewFloat_TruncatesAndClamps(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		want    Color
	}{
		{"truncate", 12.9, 0.99, 254.5, New(12, 0, 254)},
		{"negative fraction", -0.5, -1.5, 3, New(0, 0, 3)},
		{"above max", 255.7, 1e9, math.Inf(1), New(255, 255, 255)},
		{"nan", math.NaN(), 5, math.Inf(-1), New(0, 5, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewFloat(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("NewFloat(%v,%v,%v): got %v, want %v", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestChannel_Access(t *testing.T) {
	c := New(1, 2, 3)
	if c.Channel(Red) != 1 || c.Channel(Green) != 2 || c.Channel(Blue) != 3 {
		t.Errorf("Channel: got (%d,%d,%d), want (1,2,3)", c.Channel(Red), c.Channel(Green), c.Channel(Blue))
	}
	for _, ch := range []Channel{Channel(-1), Channel(3), Channel(5)} {
		if got := c.Channel(ch); got != 0 {
			t.Errorf("Channel(%d): got %d, want 0", int(ch), got)
		}
	}

	var zero Color
	if zero != New(0, 0, 0) {
		t.Errorf("zero value: got %v, want black", zero)
	}
}

func TestFromHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#FF0000", New(255, 0, 0)},
		{"00ff00", New(0, 255, 0)},
		{"#0000ff", New(0, 0, 255)},
		{"#6495ED", New(100, 149, 237)},
		{"aBcDeF", New(0xab, 0xcd, 0xef)},
		{"#000000", New(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := FromHex(tt.in)
			if err != nil {
				t.Fatalf("FromHex(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("FromHex(%q): got %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromHex_InvalidFormat(t *testing.T) {
	inputs := []string{
		"zzzzzz",
		"abc",
		"#abc",
		"",
		"#",
		"##ff0000",
		"ff00001",
		"#ff00",
		"+f0000",
		"ff 000",
		"0x1234",
		"#ff00gg",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := FromHex(in)
			if !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("FromHex(%q): got error %v, want ErrInvalidFormat", in, err)
			}
		})
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{New(255, 0, 0), "#ff0000"},
		{New(0, 0, 0), "#000000"},
		{New(1, 2, 3), "#010203"},
		{New(171, 205, 239), "#abcdef"},
	}

	for _, tt := range tests {
		if got := tt.c.Hex(); got != tt.want {
			t.Errorf("Hex: got %s, want %s", got, tt.want)
		}
		if got := tt.c.String(); got != tt.want {
			t.Errorf("String: got %s, want %s", got, tt.want)
		}
	}
}

func TestHex_RoundTrip(t *testing.T) {
	for v := 0; v <= 255; v++ {
		for _, c := range []Color{New(v, 0, 0), New(0, v, 0), New(0, 0, v), New(v, 255-v, v/2)} {
			got, err := FromHex(c.Hex())
			if err != nil {
				t.Fatalf("FromHex(%s) failed: %v", c.Hex(), err)
			}
			if got != c {
				t.Fatalf("round trip: got %v, want %v", got, c)
			}
		}
	}
}

func TestFromName(t *testing.T) {
	tests := []struct {
		name string
		want Color
	}{
		{"red", New(255, 0, 0)},
		{"RED", New(255, 0, 0)},
		{"CornflowerBlue", New(100, 149, 237)},
		{"grey", New(128, 128, 128)},
		{"gray", New(128, 128, 128)},
		{"rebeccapurple", New(102, 51, 153)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromName(tt.name)
			if err != nil {
				t.Fatalf("FromName(%q) failed: %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("FromName(%q): got %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestFromName_Unknown(t *testing.T) {
	for _, name := range []string{"notacolor", "", " red", "ff0000"} {
		_, err := FromName(name)
		if !errors.Is(err, ErrUnknownColorName) {
			t.Errorf("FromName(%q): got error %v, want ErrUnknownColorName", name, err)
		}
	}
}

func TestParse(t *testing.T) {
	navy, err := Parse("Navy")
	if err != nil {
		t.Fatalf("Parse(Navy) failed: %v", err)
	}
	hex, err := Parse("#000080")
	if err != nil {
		t.Fatalf("Parse(#000080) failed: %v", err)
	}
	if navy != hex || navy != New(0, 0, 128) {
		t.Errorf("Parse: got %v and %v, want #000080", navy, hex)
	}

	if c, err := Parse("BEIGE"); err != nil || c != New(245, 245, 220) {
		t.Errorf("Parse(BEIGE): got %v, %v", c, err)
	}

	if _, err := Parse("notacolor"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Parse(notacolor): got error %v, want ErrInvalidFormat", err)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 148 {
		t.Errorf("Names: got %d entries, want 148", len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Error("Names should be sorted")
	}
	if names[0] != "aliceblue" || names[len(names)-1] != "yellowgreen" {
		t.Errorf("Names: got first %s last %s", names[0], names[len(names)-1])
	}

	// The result is a copy.
	names[0] = "changed"
	if Names()[0] != "aliceblue" {
		t.Error("modifying Names result changed the table")
	}

	for _, name := range names[1:] {
		if _, ok := Lookup(name); !ok {
			t.Errorf("Lookup(%q) failed for listed name", name)
		}
	}
}

func TestParseChannel(t *testing.T) {
	tests := []struct {
		in   string
		want Channel
	}{
		{"red", Red}, {"R", Red}, {"Green", Green}, {"g", Green}, {"BLUE", Blue}, {"b", Blue},
	}
	for _, tt := range tests {
		got, err := ParseChannel(tt.in)
		if err != nil {
			t.Errorf("ParseChannel(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseChannel(%q): got %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseChannel("alpha"); err == nil {
		t.Error("ParseChannel(alpha) should fail")
	}
}

func TestChannelSet(t *testing.T) {
	set := Channels(Red, Blue)
	if !set.Has(Red) || set.Has(Green) || !set.Has(Blue) {
		t.Errorf("Channels(Red, Blue): got %03b", set)
	}
	if Channels(Red, Green, Blue) != AllChannels {
		t.Errorf("Channels(all): got %03b, want %03b", Channels(Red, Green, Blue), AllChannels)
	}
	if Channels(Channel(7), Channel(-1)) != 0 {
		t.Error("invalid channels should be ignored")
	}
	if AllChannels.Has(Channel(3)) {
		t.Error("Has should be false for an invalid channel")
	}
}

func TestLighten(t *testing.T) {
	tests := []struct {
		name    string
		c       Color
		percent float64
		want    Color
	}{
		{"ten percent", New(100, 100, 100), 10, New(126, 126, 126)},
		{"one percent rounds up", New(100, 100, 100), 1, New(103, 103, 103)},
		{"clamped", New(10, 200, 250), 50, New(138, 255, 255)},
		{"over hundred", New(10, 10, 10), 200, New(255, 255, 255)},
		{"negative darkens", New(100, 100, 100), -10, New(74, 74, 74)},
		{"zero", New(12, 34, 56), 0, New(12, 34, 56)},
		{"infinite", New(1, 2, 3), math.Inf(1), New(255, 255, 255)},
		{"nan", New(1, 2, 3), math.NaN(), New(1, 2, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Lighten(tt.percent); got != tt.want {
				t.Errorf("Lighten(%v): got %v, want %v", tt.percent, got, tt.want)
			}
		})
	}
}

func TestDarken(t *testing.T) {
	tests := []struct {
		name    string
		c       Color
		percent float64
		want    Color
	}{
		{"ten percent", New(100, 100, 100), 10, New(74, 74, 74)},
		{"black stays black", New(0, 0, 0), 50, New(0, 0, 0)},
		{"clamped", New(255, 100, 20), 50, New(127, 0, 0)},
		{"negative lightens", New(100, 100, 100), -10, New(126, 126, 126)},
		{"zero", New(12, 34, 56), 0, New(12, 34, 56)},
		{"infinite", New(1, 2, 3), math.Inf(1), New(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Darken(tt.percent); got != tt.want {
				t.Errorf("Darken(%v): got %v, want %v", tt.percent, got, tt.want)
			}
		})
	}
}

func TestAdjustChannels(t *testing.T) {
	base := New(100, 100, 100)

	if got := base.LightenChannels(10, Channels(Red)); got != New(126, 100, 100) {
		t.Errorf("LightenChannels(red): got %v", got)
	}
	if got := base.DarkenChannels(10, Channels(Green, Blue)); got != New(100, 74, 74) {
		t.Errorf("DarkenChannels(green, blue): got %v", got)
	}
	if got := base.LightenChannels(10, Channels()); got != base {
		t.Errorf("LightenChannels(empty): got %v, want unchanged", got)
	}
	if got := base.DarkenChannels(10, AllChannels); got != base.Darken(10) {
		t.Errorf("DarkenChannels(all): got %v, want %v", got, base.Darken(10))
	}
}

func TestAdjust_DoesNotAlias(t *testing.T) {
	base := New(100, 100, 100)
	shared := base

	lighter := base.Lighten(10)
	darker := base.Darken(10)

	if base != New(100, 100, 100) || shared != base {
		t.Errorf("receiver changed: got %v", base)
	}
	if lighter == darker {
		t.Error("Lighten and Darken results should differ")
	}

	chained := base.Lighten(10).DarkenChannels(10, Channels(Blue))
	if chained != New(126, 126, 100) {
		t.Errorf("chained: got %v, want #7e7e64", chained)
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{New(255, 0, 0), "red"},
		{New(128, 128, 128), "gray"},
		{New(0, 255, 255), "aqua"},
		{New(255, 0, 255), "fuchsia"},
		{New(1, 2, 3), ""},
	}

	for _, tt := range tests {
		if got := tt.c.Name(); got != tt.want {
			t.Errorf("Name(%v): got %q, want %q", tt.c, got, tt.want)
		}
	}
}

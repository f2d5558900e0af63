package color

import "math"

// Thresholds used by ContrastCoefficient. A metric counts toward the
// score once metric/threshold reaches 1.
const (
	MinDifference = 500
	MinBrightness = 125
	MinLuminosity = 5
	MinDistance   = 250
)

// DefaultCandidates returns the palette ContrastingColor uses when called
// without candidates: black, then white.
func DefaultCandidates() []Color {
	return []Color{New(0, 0, 0), New(255, 255, 255)}
}

// Metrics holds every contrast metric between two colors.
type Metrics struct {
	ChannelDifference    int     `json:"channel_difference"`
	BrightnessDifference float64 `json:"brightness_difference"`
	LuminosityRatio      float64 `json:"luminosity_ratio"`
	EuclideanDistance    float64 `json:"euclidean_distance"`
	Coefficient          int     `json:"coefficient"`
}

// Brightness returns (299r + 587g + 114b) / 1000, in [0,255].
func (c Color) Brightness() float64 {
	return (299*float64(c.c[Red]) + 587*float64(c.c[Green]) + 114*float64(c.c[Blue])) / 1000
}

// Luminosity returns the gamma 2.2 weighted relative luminosity, in [0,1].
//
// This is close to, but not the same as, the WCAG relative luminance: it
// uses a plain power curve instead of the piecewise sRGB transfer function.
func (c Color) Luminosity() float64 {
	return 0.2126*math.Pow(float64(c.c[Red])/255, 2.2) +
		0.7152*math.Pow(float64(c.c[Green])/255, 2.2) +
		0.0722*math.Pow(float64(c.c[Blue])/255, 2.2)
}

// ChannelDifference returns the sum of the absolute per-channel
// differences between c and o, in [0,765].
func (c Color) ChannelDifference(o Color) int {
	sum := 0
	for ch := Red; ch <= Blue; ch++ {
		a, b := int(c.c[ch]), int(o.c[ch])
		if a > b {
			sum += a - b
		} else {
			sum += b - a
		}
	}
	return sum
}

// BrightnessDifference returns |Brightness(c) - Brightness(o)|.
func (c Color) BrightnessDifference(o Color) float64 {
	return math.Abs(c.Brightness() - o.Brightness())
}

// LuminosityRatio returns (L1+0.05)/(L2+0.05) where L1 is the larger
// luminosity of the two colors. The result is always >= 1.
func (c Color) LuminosityRatio(o Color) float64 {
	l1, l2 := c.Luminosity(), o.Luminosity()
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// EuclideanDistance returns the distance between c and o treated as
// points in RGB space.
func (c Color) EuclideanDistance(o Color) float64 {
	var sum float64
	for ch := Red; ch <= Blue; ch++ {
		d := float64(c.c[ch]) - float64(o.c[ch])
		sum += d * d
	}
	return math.Sqrt(sum)
}

// ContrastCoefficient scores how well o contrasts with c, from 0 to 3.
//
// Channel difference and brightness difference each add one point. The
// luminosity ratio and Euclidean distance only add a point together: both
// thresholds must be met.
func (c Color) ContrastCoefficient(o Color) int {
	return c.Compare(o).Coefficient
}

// Compare computes every contrast metric between c and o.
func (c Color) Compare(o Color) Metrics {
	m := Metrics{
		ChannelDifference:    c.ChannelDifference(o),
		BrightnessDifference: c.BrightnessDifference(o),
		LuminosityRatio:      c.LuminosityRatio(o),
		EuclideanDistance:    c.EuclideanDistance(o),
	}
	m.Coefficient = indicator(float64(m.ChannelDifference)/MinDifference) +
		indicator(m.BrightnessDifference/MinBrightness) +
		indicator(m.LuminosityRatio/MinLuminosity)*indicator(m.EuclideanDistance/MinDistance)
	return m
}

// ContrastingColor returns the candidate that contrasts best with c.
//
// Candidates are scanned in order and a later one only wins with a
// strictly higher coefficient, so ties go to the earlier candidate. When
// nothing scores above 0 the first candidate is returned. Without
// candidates, DefaultCandidates is used.
func (c Color) ContrastingColor(candidates ...Color) Color {
	if len(candidates) == 0 {
		candidates = DefaultCandidates()
	}
	best, bestScore := candidates[0], 0
	for _, cand := range candidates {
		if score := c.ContrastCoefficient(cand); score > bestScore {
			best, bestScore = cand, score
		}
	}
	return best
}

func indicator(ratio float64) int {
	if ratio >= 1 {
		return 1
	}
	return 0
}

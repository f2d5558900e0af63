package swatch

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	stdcolor "image/color"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/color-tools-mcp/internal/color"
)

// MaxDimension bounds the width and height of any rendered image.
const MaxDimension = 4096

// Result contains the rendered image data.
type Result struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Render draws fg on bg.
//
// Parameters:
//   - bg: Color filling the whole canvas.
//   - fg: Color of the centered block, half the canvas width and a third
//     of its height.
//   - width, height: Canvas size in pixels, each in [1, MaxDimension].
//
// Returns an error if either dimension is out of range, either color is
// fully transparent, or encoding fails.
func Render(bg, fg stdcolor.Color, width, height int) (*Result, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	back, err := opaque("background", bg)
	if err != nil {
		return nil, err
	}
	front, err := opaque("foreground", fg)
	if err != nil {
		return nil, err
	}

	canvas := imaging.New(width, height, back)
	iw, ih := width/2, height/3
	if iw > 0 && ih > 0 {
		block := imaging.New(iw, ih, front)
		canvas = imaging.Paste(canvas, block, image.Pt((width-iw)/2, (height-ih)/2))
	}

	return encode(canvas)
}

// Strip draws one cell x cell square per color, left to right.
func Strip(colors []stdcolor.Color, cell int) (*Result, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("strip needs at least one color")
	}
	if len(colors) > MaxDimension {
		return nil, fmt.Errorf("strip of %d colors exceeds %d", len(colors), MaxDimension)
	}
	if err := checkSize(cell*len(colors), cell); err != nil {
		return nil, err
	}

	canvas := imaging.New(cell*len(colors), cell, stdcolor.Black)
	for i, c := range colors {
		fill, err := opaque(fmt.Sprintf("color %d", i), c)
		if err != nil {
			return nil, err
		}
		canvas = imaging.Paste(canvas, imaging.New(cell, cell, fill), image.Pt(i*cell, 0))
	}

	return encode(canvas)
}

// opaque drops the alpha of c. PNG swatches are always opaque, so a fully
// transparent input has nothing to show.
func opaque(what string, c stdcolor.Color) (color.Color, error) {
	if c == nil {
		return color.Color{}, fmt.Errorf("%s is missing", what)
	}
	rgb, ok := color.FromStdColor(c)
	if !ok {
		return color.Color{}, fmt.Errorf("%s is fully transparent", what)
	}
	return rgb, nil
}

func checkSize(width, height int) error {
	if width < 1 || height < 1 || width > MaxDimension || height > MaxDimension {
		return fmt.Errorf("swatch size %dx%d outside 1..%d", width, height, MaxDimension)
	}
	return nil
}

func encode(img image.Image) (*Result, error) {
	var buf bytes.Buffer
	if err := imgio.PNGEncoder()(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode swatch: %w", err)
	}

	return &Result{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

package easel

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// defaultFontSize is the text tool's point size when the host supplies
// no face.
const defaultFontSize = 14

// defaultFace builds a face from the embedded Go Regular font.
func defaultFace() (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    defaultFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return face, nil
}

// clippedSurface restricts writes to the text box so glyphs never spill
// outside the rectangle the user dragged.
type clippedSurface struct {
	*Surface
	clip image.Rectangle
}

func (cs *clippedSurface) Set(x, y int, c color.Color) {
	if !image.Pt(x, y).In(cs.clip) {
		return
	}
	cs.Surface.Set(x, y, c)
}

// drawText rasterizes committed text-tool content into the surface,
// clipped to the text box. Lines are split on '\n' (the text tool's
// Shift+Return inserts literal newlines).
func drawText(dst *Surface, content string, box image.Rectangle, c RGBA, face font.Face) {
	if face == nil || content == "" {
		return
	}
	box = box.Canon().Intersect(dst.Bounds())
	if box.Empty() {
		return
	}

	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil()
	if lineHeight < 1 {
		lineHeight = defaultFontSize
	}

	drawer := &font.Drawer{
		Dst:  &clippedSurface{Surface: dst, clip: box},
		Src:  image.NewUniform(c.Color()),
		Face: face,
	}

	y := box.Min.Y + metrics.Ascent.Ceil()
	for _, line := range strings.Split(content, "\n") {
		if y-metrics.Ascent.Ceil() >= box.Max.Y {
			break
		}
		drawer.Dot = fixed.P(box.Min.X, y)
		drawer.DrawString(line)
		y += lineHeight
	}
}

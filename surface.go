package easel

import (
	"image"
	"image/color"
	"image/png"
	"io"
)

// Surface owns a rectangular RGBA8 pixel buffer. It is the base raster
// every tool mutates and the payload of undo snapshots and floating
// selections.
//
// All pixel accessors are bounds-checked: out-of-range coordinates are a
// silent no-op (or return Transparent) so drag gestures that leave the
// canvas never crash. Operations that produce a different size always
// allocate a fresh buffer and copy bytes 1:1 with no resampling.
type Surface struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewSurface creates a new transparent surface with the given dimensions.
// Dimensions are clamped to a 1x1 minimum.
func NewSurface(width, height int) *Surface {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Surface{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// NewSurfaceFilled creates a new surface filled with a color.
func NewSurfaceFilled(width, height int, c RGBA) *Surface {
	s := NewSurface(width, height)
	s.Clear(c)
	return s
}

// Width returns the width of the surface.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the height of the surface.
func (s *Surface) Height() int {
	return s.height
}

// Size returns the surface dimensions as a point.
func (s *Surface) Size() image.Point {
	return image.Pt(s.width, s.height)
}

// Data returns the raw pixel data (RGBA format).
func (s *Surface) Data() []uint8 {
	return s.data
}

// SetPixel sets the color of a single pixel.
func (s *Surface) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	i := (y*s.width + x) * 4
	s.data[i+0], s.data[i+1], s.data[i+2], s.data[i+3] = c.bytes()
}

// GetPixel returns the color of a single pixel.
func (s *Surface) GetPixel(x, y int) RGBA {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Transparent
	}
	i := (y*s.width + x) * 4
	return RGBA{
		R: float64(s.data[i+0]) / 255,
		G: float64(s.data[i+1]) / 255,
		B: float64(s.data[i+2]) / 255,
		A: float64(s.data[i+3]) / 255,
	}
}

// pixelAt returns the raw RGBA8 tuple at (x, y). ok is false out of range.
func (s *Surface) pixelAt(x, y int) (r, g, b, a uint8, ok bool) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0, 0, 0, 0, false
	}
	i := (y*s.width + x) * 4
	return s.data[i], s.data[i+1], s.data[i+2], s.data[i+3], true
}

// Clear fills the entire surface with a color.
func (s *Surface) Clear(c RGBA) {
	r, g, b, a := c.bytes()
	for i := 0; i < len(s.data); i += 4 {
		s.data[i+0] = r
		s.data[i+1] = g
		s.data[i+2] = b
		s.data[i+3] = a
	}
}

// Clone returns a deep copy of the surface. The copy shares no memory
// with the original, so history snapshots and floating bitmaps never
// alias the live canvas.
func (s *Surface) Clone() *Surface {
	out := NewSurface(s.width, s.height)
	copy(out.data, s.data)
	return out
}

// CopyRegion returns a new surface holding the pixels of r, clipped to
// the surface bounds. Returns nil if the clipped region is empty.
func (s *Surface) CopyRegion(r image.Rectangle) *Surface {
	r = r.Intersect(s.Bounds())
	if r.Empty() {
		return nil
	}
	out := NewSurface(r.Dx(), r.Dy())
	for y := 0; y < r.Dy(); y++ {
		srcOff := ((r.Min.Y+y)*s.width + r.Min.X) * 4
		dstOff := y * r.Dx() * 4
		copy(out.data[dstOff:dstOff+r.Dx()*4], s.data[srcOff:srcOff+r.Dx()*4])
	}
	return out
}

// FillRect fills the rectangle r with a color, clipped to the surface.
func (s *Surface) FillRect(r image.Rectangle, c RGBA) {
	r = r.Intersect(s.Bounds())
	if r.Empty() {
		return
	}
	cr, cg, cb, ca := c.bytes()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := (y*s.width + r.Min.X) * 4
		for x := r.Min.X; x < r.Max.X; x++ {
			s.data[i+0] = cr
			s.data[i+1] = cg
			s.data[i+2] = cb
			s.data[i+3] = ca
			i += 4
		}
	}
}

// CompositeOver draws src onto the surface with its top-left corner at
// the given origin, using source-over blending. The operation is clipped
// to the destination bounds; fully opaque source pixels replace the
// destination bytes exactly.
func (s *Surface) CompositeOver(src *Surface, at image.Point) {
	if src == nil {
		return
	}
	dstRect := image.Rectangle{Min: at, Max: at.Add(src.Size())}.Intersect(s.Bounds())
	if dstRect.Empty() {
		return
	}
	for y := dstRect.Min.Y; y < dstRect.Max.Y; y++ {
		sy := y - at.Y
		di := (y*s.width + dstRect.Min.X) * 4
		si := (sy*src.width + (dstRect.Min.X - at.X)) * 4
		for x := dstRect.Min.X; x < dstRect.Max.X; x++ {
			sa := src.data[si+3]
			switch sa {
			case 255:
				s.data[di+0] = src.data[si+0]
				s.data[di+1] = src.data[si+1]
				s.data[di+2] = src.data[si+2]
				s.data[di+3] = 255
			case 0:
				// fully transparent source leaves the destination alone
			default:
				blendOver(s.data[di:di+4:di+4], src.data[si:si+4:si+4])
			}
			di += 4
			si += 4
		}
	}
}

// blendOver composites one straight-alpha RGBA8 pixel over another in place.
func blendOver(dst, src []uint8) {
	sa := uint32(src[3])
	da := uint32(dst[3])
	outA := sa + da*(255-sa)/255
	if outA == 0 {
		dst[0], dst[1], dst[2], dst[3] = 0, 0, 0, 0
		return
	}
	for i := 0; i < 3; i++ {
		sc := uint32(src[i])
		dc := uint32(dst[i])
		dst[i] = uint8((sc*sa + dc*da*(255-sa)/255) / outA)
	}
	dst[3] = uint8(outA)
}

// Anchor names the corner or edge of the existing content that stays
// fixed during an anchored canvas resize. Dragging a resize handle
// anchors the opposite corner/edge.
type Anchor int

// Anchor values. The name is the side of the old content that keeps its
// pixel coordinates in the new canvas.
const (
	AnchorTopLeft Anchor = iota
	AnchorTop
	AnchorTopRight
	AnchorLeft
	AnchorRight
	AnchorBottomLeft
	AnchorBottom
	AnchorBottomRight
)

// offset returns the top-left position of the old content inside the
// newly sized canvas.
func (a Anchor) offset(oldW, oldH, newW, newH int) image.Point {
	var dx, dy int
	switch a {
	case AnchorTopRight, AnchorRight, AnchorBottomRight:
		dx = newW - oldW
	}
	switch a {
	case AnchorBottomLeft, AnchorBottom, AnchorBottomRight:
		dy = newH - oldH
	}
	return image.Pt(dx, dy)
}

// ResizeAnchored returns a new surface of the given size. The surviving
// region of the old content is copied byte-for-byte at the position
// dictated by the anchor; newly exposed area is filled with bg. No
// resampling is performed.
func (s *Surface) ResizeAnchored(width, height int, anchor Anchor, bg RGBA) *Surface {
	out := NewSurfaceFilled(width, height, bg)
	out.CompositeOver(s, anchor.offset(s.width, s.height, out.width, out.height))
	return out
}

// ToImage converts the surface to an image.RGBA copy.
func (s *Surface) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	// The buffer holds straight alpha; image.RGBA wants premultiplied.
	// Route through the color model so encoders see correct values.
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			i := (y*s.width + x) * 4
			img.Set(x, y, color.NRGBA{
				R: s.data[i+0],
				G: s.data[i+1],
				B: s.data[i+2],
				A: s.data[i+3],
			})
		}
	}
	return img
}

// FromImage creates a surface from an image.
func FromImage(img image.Image) *Surface {
	bounds := img.Bounds()
	out := NewSurface(bounds.Dx(), bounds.Dy())
	for y := 0; y < out.height; y++ {
		for x := 0; x < out.width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			i := (y*out.width + x) * 4
			out.data[i+0] = c.R
			out.data[i+1] = c.G
			out.data[i+2] = c.B
			out.data[i+3] = c.A
		}
	}
	return out
}

// EncodePNG writes the surface as PNG to the given writer.
func (s *Surface) EncodePNG(w io.Writer) error {
	return png.Encode(w, s.ToImage())
}

// At implements the image.Image interface.
func (s *Surface) At(x, y int) color.Color {
	r, g, b, a, ok := s.pixelAt(x, y)
	if !ok {
		return color.NRGBA{}
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// Set implements the draw.Image interface, so font drawers and the
// x/image scalers can write into the surface directly.
func (s *Surface) Set(x, y int, c color.Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	i := (y*s.width + x) * 4
	s.data[i+0] = nrgba.R
	s.data[i+1] = nrgba.G
	s.data[i+2] = nrgba.B
	s.data[i+3] = nrgba.A
}

// Bounds implements the image.Image interface.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements the image.Image interface.
func (s *Surface) ColorModel() color.Model {
	return color.NRGBAModel
}

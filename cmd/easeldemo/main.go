// Command easeldemo drives the easel editing core through a scripted
// session and writes the resulting canvas as a PNG.
package main

import (
	"flag"
	"image"
	"log"
	"os"

	"github.com/easelkit/easel"
)

func main() {
	var (
		width  = flag.Int("width", 640, "canvas width")
		height = flag.Int("height", 480, "canvas height")
		output = flag.String("output", "demo.png", "output file")
	)
	flag.Parse()

	c := easel.NewController(*width, *height)
	c.SetViewSize(image.Pt(*width+200, *height+200))

	drawFreehand(c)
	drawShapes(c)
	fillRegions(c)
	moveSelection(c)

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	defer f.Close()
	if err := c.ExportPNG(f); err != nil {
		log.Fatalf("Failed to encode: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

// view converts canvas coordinates to view coordinates for the pointer
// event API, which speaks view space.
func view(c *easel.Controller, x, y int) image.Point {
	return c.Viewport().ToView(image.Pt(x, y))
}

func drawFreehand(c *easel.Controller) {
	c.SetActiveTool(easel.ToolBrush)
	c.SetToolSize(5)
	c.SetActiveColor(easel.RGB(0.8, 0.2, 0.2))

	// A rough zig-zag stroke.
	c.PointerDown(view(c, 40, 60), 0)
	for i := 1; i <= 10; i++ {
		y := 60
		if i%2 == 1 {
			y = 120
		}
		c.PointerDrag(view(c, 40+i*20, y), 0)
	}
	c.PointerUp(view(c, 240, 60), 0)
}

func drawShapes(c *easel.Controller) {
	c.SetActiveColor(easel.RGB(0.1, 0.3, 0.8))
	c.SetToolSize(3)

	c.SetActiveTool(easel.ToolRect)
	c.PointerDown(view(c, 300, 40), 0)
	c.PointerDrag(view(c, 440, 140), 0)
	c.PointerUp(view(c, 440, 140), 0)

	c.SetActiveTool(easel.ToolEllipse)
	c.SetActiveColor(easel.RGB(0.1, 0.6, 0.2))
	c.PointerDown(view(c, 320, 60), 0)
	c.PointerUp(view(c, 420, 120), 0)

	// Shift-constrained square.
	c.SetActiveTool(easel.ToolRoundRect)
	c.SetActiveColor(easel.RGB(0.9, 0.6, 0.1))
	c.PointerDown(view(c, 480, 40), 0)
	c.PointerDrag(view(c, 560, 150), easel.ModShift)
	c.PointerUp(view(c, 560, 150), easel.ModShift)
}

func fillRegions(c *easel.Controller) {
	c.SetActiveTool(easel.ToolFill)
	c.SetActiveColor(easel.RGB(0.95, 0.9, 0.4))
	// Inside the rectangle outline.
	c.PointerDown(view(c, 310, 50), 0)
	c.PointerUp(view(c, 310, 50), 0)
}

func moveSelection(c *easel.Controller) {
	c.SetActiveTool(easel.ToolSelect)
	c.PointerDown(view(c, 280, 20), 0)
	c.PointerDrag(view(c, 460, 160), 0)
	c.PointerUp(view(c, 460, 160), 0)

	// Drag the lifted region down-right and commit.
	c.PointerDown(view(c, 360, 90), 0)
	c.PointerDrag(view(c, 420, 250), 0)
	c.PointerUp(view(c, 420, 250), 0)
	c.KeyPress(easel.KeyReturn, 0)
}

// Package easel implements the editing core of a raster paint program.
//
// # Overview
//
// easel owns a mutable RGBA8 canvas and the state machines that edit it:
// a pointer-driven tool layer (pencil, brush, eraser, shapes, curve, fill,
// text, spray, eyedropper, select, zoom), a floating-selection lifecycle,
// a bounded undo/redo history, flood fill, canvas resize with pixel
// anchoring, and geometric transforms (flip, rotate, scale, shear).
//
// The package is UI-agnostic. A host application feeds it pointer and key
// events in view coordinates and receives repaint requests and status
// updates back through callbacks. File dialogs, toolbars, palettes and
// image encoding live entirely outside this package; they exchange raw
// RGBA buffers with the [Controller].
//
// # Quick Start
//
//	import "github.com/easelkit/easel"
//
//	ctl := easel.NewController(640, 480)
//	ctl.SetActiveTool(easel.ToolFill)
//	ctl.SetActiveColor(easel.Red)
//	ctl.PointerDown(image.Pt(10, 10), 0)
//	ctl.PointerUp(image.Pt(10, 10), 0)
//
//	img := ctl.ExportFlattened() // *image.RGBA for the host's encoder
//
// # Fidelity
//
// The canvas is edited at pixel-exact fidelity: crops, anchored resizes,
// flips and 90-degree rotations copy bytes without resampling. The one
// deliberate exception is percentage scaling (Stretch), which resamples
// with Catmull-Rom interpolation.
//
// # Coordinate System
//
// Origin (0,0) at the top-left, X increases right, Y increases down.
// Pointer events arrive in view space and are mapped to canvas pixels by
// the [Viewport] (gutter offset plus zoom factor) before any tool sees
// them.
//
// # Concurrency
//
// The editing core is single-threaded by design. All events and raster
// mutations must happen on the host's event loop; the spray tool is
// driven by a cooperative [Controller.SprayTick] call rather than its
// own timer goroutine.
package easel

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)

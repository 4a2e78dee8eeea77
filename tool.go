package easel

// Tool identifies the active drawing tool.
type Tool int

const (
	ToolPencil Tool = iota
	ToolBrush
	ToolEraser
	ToolLine
	ToolRect
	ToolRoundRect
	ToolEllipse
	ToolCurve
	ToolFill
	ToolText
	ToolSpray
	ToolEyedropper
	ToolSelect
	ToolZoom
)

// String returns the tool name.
func (t Tool) String() string {
	switch t {
	case ToolPencil:
		return "pencil"
	case ToolBrush:
		return "brush"
	case ToolEraser:
		return "eraser"
	case ToolLine:
		return "line"
	case ToolRect:
		return "rect"
	case ToolRoundRect:
		return "roundrect"
	case ToolEllipse:
		return "ellipse"
	case ToolCurve:
		return "curve"
	case ToolFill:
		return "fill"
	case ToolText:
		return "text"
	case ToolSpray:
		return "spray"
	case ToolEyedropper:
		return "eyedropper"
	case ToolSelect:
		return "select"
	case ToolZoom:
		return "zoom"
	default:
		return "unknown"
	}
}

// isShape reports whether the tool commits a drag as a shape outline.
func (t Tool) isShape() bool {
	switch t {
	case ToolLine, ToolRect, ToolRoundRect, ToolEllipse:
		return true
	}
	return false
}

// isFreehand reports whether the tool accumulates a dragged path.
func (t Tool) isFreehand() bool {
	switch t {
	case ToolPencil, ToolBrush, ToolEraser:
		return true
	}
	return false
}

// Modifier is a bitmask of modifier keys accompanying an event.
type Modifier int

const (
	// ModShift constrains drawing: 45-degree line snapping, square/circle
	// shape locking, aspect-locked selection rescale, and literal
	// newlines in the text tool.
	ModShift Modifier = 1 << iota
)

// Key identifies the keyboard events the core reacts to. Text entry
// itself happens in the host's transient text field; only editing
// commands reach the core.
type Key int

const (
	KeyReturn Key = iota
	KeyEscape
	KeyDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
)

package easel

import (
	"math/rand/v2"

	"golang.org/x/image/font"
)

// Option configures a Controller during creation.
// Use functional options to customize Controller behavior.
//
// Example:
//
//	// Default editor
//	ctl := easel.NewController(640, 480)
//
//	// Custom history depth and background
//	ctl := easel.NewController(640, 480,
//	    easel.WithHistoryDepth(20),
//	    easel.WithBackground(easel.Black))
type Option func(*controllerOptions)

// controllerOptions holds optional configuration for Controller creation.
type controllerOptions struct {
	config     Config
	background *RGBA
	face       font.Face
	statusFn   StatusFunc
	repaintFn  func()
	rng        *rand.Rand
}

// defaultControllerOptions returns the default controller options.
func defaultControllerOptions() controllerOptions {
	return controllerOptions{
		config: DefaultConfig(),
	}
}

// WithConfig applies a loaded Config (see LoadConfig). Zero-valued
// fields fall back to the defaults.
func WithConfig(cfg Config) Option {
	return func(o *controllerOptions) {
		o.config = cfg.withDefaults()
	}
}

// WithHistoryDepth overrides the undo stack depth.
func WithHistoryDepth(depth int) Option {
	return func(o *controllerOptions) {
		o.config.HistoryDepth = depth
	}
}

// WithBackground overrides the background color, taking precedence over
// the config's hex value.
func WithBackground(c RGBA) Option {
	return func(o *controllerOptions) {
		o.background = &c
	}
}

// WithFontFace sets the font face used by the text tool. Without it the
// embedded Go Regular face is used.
func WithFontFace(face font.Face) Option {
	return func(o *controllerOptions) {
		o.face = face
	}
}

// WithStatusFunc registers the status-bar listener notified of cursor
// position and selection size on every pointer move.
func WithStatusFunc(fn StatusFunc) Option {
	return func(o *controllerOptions) {
		o.statusFn = fn
	}
}

// WithRepaintFunc registers the callback invoked whenever the canvas or
// an overlay changed and the host should repaint.
func WithRepaintFunc(fn func()) Option {
	return func(o *controllerOptions) {
		o.repaintFn = fn
	}
}

// WithRandSource sets the random source used by the spray tool,
// primarily for deterministic tests.
func WithRandSource(src rand.Source) Option {
	return func(o *controllerOptions) {
		o.rng = rand.New(src)
	}
}

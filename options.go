package paint

// PainterOption configures a Painter during creation.
//
// Example:
//
//	// Blank 640x480 canvas, black solid fills
//	p := paint.NewPainter()
//
//	// Existing canvas, red fills, scanline strategy
//	p := paint.NewPainter(
//	    paint.WithCanvas(c),
//	    paint.WithColor(paint.Red),
//	    paint.WithStrategy(paint.StrategyScanline),
//	)
type PainterOption func(*painterOptions)

// painterOptions holds optional configuration for Painter creation.
type painterOptions struct {
	canvas    *Canvas
	color     Color
	pattern   *Pattern
	strategy  Strategy
	thickness int
}

// Default canvas size used when no canvas is supplied.
const (
	DefaultWidth  = 640
	DefaultHeight = 480
)

// defaultOptions returns the default painter options.
func defaultOptions() painterOptions {
	return painterOptions{
		color:     Black,
		strategy:  StrategyContour,
		thickness: 2,
	}
}

// WithCanvas makes the painter draw into c instead of a new blank canvas.
func WithCanvas(c *Canvas) PainterOption {
	return func(o *painterOptions) {
		o.canvas = c
	}
}

// WithColor sets the initial active color.
func WithColor(c Color) PainterOption {
	return func(o *painterOptions) {
		o.color = c
	}
}

// WithPattern sets the initial pattern and marks it loaded.
func WithPattern(p *Pattern) PainterOption {
	return func(o *painterOptions) {
		o.pattern = p
	}
}

// WithStrategy selects the algorithm used for solid fills.
func WithStrategy(s Strategy) PainterOption {
	return func(o *painterOptions) {
		o.strategy = s
	}
}

// WithThickness sets the initial stroke thickness reported to the UI.
func WithThickness(n int) PainterOption {
	return func(o *painterOptions) {
		o.thickness = n
	}
}

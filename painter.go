package paint

import (
	"fmt"
	"image"

	"github.com/gogpu/paint/internal/fill"
	"github.com/gogpu/paint/internal/grid"
	"github.com/gogpu/paint/internal/span"
)

// Span is a half-open row range [Left.X, Right.X) on row Left.Y.
type Span = span.Span

// Button identifies the pointer button of a seed request.
type Button int

// Pointer buttons.
const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonRight
	ButtonMiddle
)

// String returns the button name.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	default:
		return "none"
	}
}

// FillMode selects what a fill writes.
type FillMode int

// Fill modes.
const (
	// FillSolid writes the active color.
	FillSolid FillMode = iota
	// FillPattern tiles the loaded pattern anchored at the seed.
	FillPattern
)

// String returns the mode name.
func (m FillMode) String() string {
	if m == FillPattern {
		return "pattern"
	}
	return "solid"
}

// Strategy selects the algorithm that computes a solid fill region.
type Strategy int

const (
	// StrategyContour traces the region boundary and pairs its crossings
	// into spans.
	StrategyContour Strategy = iota
	// StrategyScanline floods the region row by row.
	StrategyScanline
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyContour:
		return "contour"
	case StrategyScanline:
		return "scanline"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy returns the strategy with the given name.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "contour":
		return StrategyContour, nil
	case "scanline":
		return StrategyScanline, nil
	}
	return 0, fmt.Errorf("paint: unknown strategy %q", name)
}

// Result describes a fill.
type Result struct {
	// Mode is the fill mode that produced the result.
	Mode FillMode

	// Spans lists the rows of the filled region.
	Spans []Span

	// Pixels is the number of pixels the fill covers.
	Pixels int

	// Bounds is the smallest rectangle containing the filled region.
	Bounds image.Rectangle

	// NoOp is set when the fill had nothing to do: the seed already has the
	// fill color, or the request was not a fill gesture.
	NoOp bool

	// Obstacles and Steps report contour strategy work: obstacle contours
	// traced and trace steps taken.
	Obstacles int
	Steps     int
}

// Painter holds the fill state the UI drives: the canvas, the active color,
// the pattern and the fill mode.
//
// A Painter is not safe for concurrent use.
type Painter struct {
	canvas        *Canvas
	color         Color
	pattern       *Pattern
	patternLoaded bool
	mode          FillMode
	strategy      Strategy
	thickness     int
}

// NewPainter creates a painter. Without WithCanvas it draws into a new
// white canvas of DefaultWidth × DefaultHeight.
func NewPainter(opts ...PainterOption) *Painter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.canvas == nil {
		o.canvas = NewCanvas(DefaultWidth, DefaultHeight)
	}
	return &Painter{
		canvas:        o.canvas,
		color:         o.color,
		pattern:       o.pattern,
		patternLoaded: o.pattern != nil,
		strategy:      o.strategy,
		thickness:     o.thickness,
	}
}

// Canvas returns the canvas the painter draws into.
func (p *Painter) Canvas() *Canvas { return p.canvas }

// Clear fills the whole canvas with white.
func (p *Painter) Clear() { p.canvas.Clear(White) }

// ActiveColor returns the color used by solid fills.
func (p *Painter) ActiveColor() Color { return p.color }

// SetActiveColor sets the color used by solid fills.
func (p *Painter) SetActiveColor(c Color) { p.color = c }

// Pattern returns the current pattern, or nil.
func (p *Painter) Pattern() *Pattern { return p.pattern }

// SetPattern replaces the pattern and marks it loaded. A nil pattern marks
// it not loaded.
func (p *Painter) SetPattern(pat *Pattern) {
	p.pattern = pat
	p.patternLoaded = pat != nil
}

// SetPatternLoaded sets whether the current pattern may be used.
func (p *Painter) SetPatternLoaded(loaded bool) { p.patternLoaded = loaded }

// PatternLoaded reports whether a pattern fill would find a pattern.
func (p *Painter) PatternLoaded() bool { return p.patternLoaded && p.pattern != nil }

// FillMode returns the mode used by Fill.
func (p *Painter) FillMode() FillMode { return p.mode }

// SetFillMode sets the mode used by Fill.
func (p *Painter) SetFillMode(m FillMode) { p.mode = m }

// Strategy returns the solid fill strategy.
func (p *Painter) Strategy() Strategy { return p.strategy }

// SetStrategy sets the solid fill strategy.
func (p *Painter) SetStrategy(s Strategy) { p.strategy = s }

// Thickness returns the pen width, in pixels, for outlines drawn around fills.
func (p *Painter) Thickness() int { return p.thickness }

// SetThickness sets the stroke thickness.
func (p *Painter) SetThickness(n int) { p.thickness = n }

// OnSeedRequested handles a pointer press at pt. The right button fills the
// region under pt in the given mode; other buttons belong to stroke drawing
// and yield a no-op result.
func (p *Painter) OnSeedRequested(pt image.Point, b Button, m FillMode) (Result, error) {
	if b != ButtonRight {
		return Result{Mode: m, NoOp: true}, nil
	}
	f, err := p.Prepare(pt, m)
	if err != nil {
		return Result{Mode: m}, err
	}
	return f.Commit()
}

// Fill fills the region under seed in the painter's fill mode.
func (p *Painter) Fill(seed image.Point) (Result, error) {
	f, err := p.Prepare(seed, p.mode)
	if err != nil {
		return Result{Mode: p.mode}, err
	}
	return f.Commit()
}

// FillColor fills the region under seed with the active color.
func (p *Painter) FillColor(seed image.Point) (Result, error) {
	f, err := p.Prepare(seed, FillSolid)
	if err != nil {
		return Result{}, err
	}
	return f.Commit()
}

// FillPattern fills the region under seed with the pattern anchored at seed.
func (p *Painter) FillPattern(seed image.Point) (Result, error) {
	f, err := p.Prepare(seed, FillPattern)
	if err != nil {
		return Result{Mode: FillPattern}, err
	}
	return f.Commit()
}

// Prepare computes the fill of the region under seed without writing to
// the canvas.
func (p *Painter) Prepare(seed image.Point, m FillMode) (*Fill, error) {
	c := p.canvas
	if !c.In(seed.X, seed.Y) {
		Logger().Warn("paint: seed outside canvas", "seed", seed, "bounds", c.Bounds())
		return nil, fmt.Errorf("%w: %v not in %v", ErrOutOfBounds, seed, c.Bounds())
	}
	f := &Fill{canvas: c, gen: c.gen, seed: seed, res: Result{Mode: m}}

	if m == FillPattern {
		if !p.PatternLoaded() {
			Logger().Warn("paint: pattern fill without a pattern", "seed", seed)
			return nil, ErrNoPattern
		}
		f.pattern = p.pattern
	} else {
		f.color = p.color.pixel()
	}

	g := c.snapshot()
	mask, _ := grid.NewMask(g, seed)
	if m == FillSolid && mask.Background() == f.color {
		f.res.NoOp = true
		return f, nil
	}

	var spans []Span
	if m == FillSolid && p.strategy == StrategyContour {
		sr, err := span.Resolve(mask, seed, span.Options{Logger: Logger()})
		if err != nil {
			return nil, fmt.Errorf("paint: fill at %v: %w", seed, err)
		}
		spans = sr.Spans
		f.res.Obstacles = sr.Obstacles
		f.res.Steps = sr.Steps
	} else {
		spans = fill.Scan(mask, seed)
	}

	f.res.Spans = spans
	f.res.Pixels = span.Area(spans)
	f.res.Bounds = span.Bounds(spans)
	return f, nil
}

// Fill is a computed fill that has not been written to its canvas yet.
type Fill struct {
	canvas  *Canvas
	gen     uint64
	seed    image.Point
	color   grid.Pixel
	pattern *Pattern
	res     Result
}

// Result returns the fill statistics as computed.
func (f *Fill) Result() Result { return f.res }

// Commit writes the fill to its canvas. It fails with ErrCanvasResized if
// the canvas was reallocated since the fill was prepared, and leaves the
// canvas untouched on any error.
func (f *Fill) Commit() (Result, error) {
	if f.res.NoOp {
		return f.res, nil
	}
	c := f.canvas
	if c.gen != f.gen {
		Logger().Warn("paint: fill dropped after resize", "seed", f.seed, "bounds", c.Bounds())
		return f.res, ErrCanvasResized
	}

	var (
		n   int
		err error
	)
	if f.pattern != nil {
		n, err = fill.PatternSpans(writer{c}, c.Bounds(), f.res.Spans, f.seed, f.pattern)
	} else {
		n, err = fill.Spans(writer{c}, c.Bounds(), f.res.Spans, f.color)
	}
	if err != nil {
		return f.res, fmt.Errorf("paint: fill at %v: %w", f.seed, err)
	}
	f.res.Pixels = n

	Logger().Debug("paint: fill committed",
		"mode", f.res.Mode,
		"seed", f.seed,
		"spans", len(f.res.Spans),
		"pixels", n,
		"obstacles", f.res.Obstacles)
	return f.res, nil
}

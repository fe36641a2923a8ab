// Package paint provides region fills for a raster canvas.
//
// # Overview
//
// A Painter owns a Canvas and the state a paint program's UI drives: the
// active color, an optional tiling pattern and the fill mode. A right-button
// seed request fills the 4-connected region of pixels that share the seed's
// color, either with the active color or with the pattern anchored at the
// seed.
//
// # Quick Start
//
//	import "github.com/gogpu/paint"
//
//	p := paint.NewPainter(paint.WithColor(paint.Red))
//	res, err := p.OnSeedRequested(image.Pt(10, 10), paint.ButtonRight, paint.FillSolid)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p.Canvas().SavePNG("out.png")
//
// # Strategies
//
// Solid fills default to StrategyContour: the region boundary is traced as
// a Moore-neighbour chain code, reduced to its row crossings, and the
// crossings are paired into spans. Obstacles inside the region are traced
// on demand when a row runs into them. StrategyScanline floods the region
// row by row instead. Both produce the same pixels. Pattern fills always use
// the scanline flood.
//
// # Errors
//
// A fill computes its complete span list before touching the canvas, so a
// failed fill never leaves the canvas partially written. Filling a region
// that already has the fill color is not an error; Result.NoOp is set.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Everything outside the canvas counts as border
package paint

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)

package span

import (
	"fmt"
	"image"

	"github.com/gogpu/paint/internal/contour"
	"github.com/gogpu/paint/internal/grid"
)

// Resolve computes the spans of the region containing the background pixel
// seed: it walks left to the first border pixel, traces the contour found
// there, reduces it and matches the crossings.
func Resolve(r grid.Region, seed image.Point, opts Options) (Result, error) {
	if r.Border(seed) {
		return Result{}, fmt.Errorf("%w: seed %v is not background", contour.ErrDegenerateSeed, seed)
	}
	start := seed
	for !r.Border(start.Sub(unitX)) {
		start = start.Sub(unitX)
	}

	c, err := contour.Trace(r, start.Sub(unitX), contour.East)
	if err != nil {
		return Result{}, err
	}
	xs := contour.Reduce(r, c)
	if opts.Logger != nil {
		opts.Logger.Debug("span: traced region",
			"seed", seed,
			"steps", c.Len(),
			"crossings", len(xs))
	}

	res, err := Match(r, xs, opts)
	res.Steps += c.Len()
	return res, err
}

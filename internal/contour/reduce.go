package contour

import (
	"cmp"
	"image"
	"slices"

	"github.com/gogpu/paint/internal/grid"
)

// Kind tells which end of a row run a crossing marks.
type Kind uint8

const (
	// Left marks the first background pixel of a run; the pixel to its
	// left is border.
	Left Kind = iota + 1

	// Right marks the border pixel immediately after a run.
	Right
)

// String returns "left" or "right".
func (k Kind) String() string {
	switch k {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Crossing is a point where a row enters or leaves the fill region.
type Crossing struct {
	Point image.Point
	Kind  Kind
}

// Class describes how a traced point sits relative to its neighbours in the
// trace.
type Class uint8

const (
	// Slope points share a row with at most one trace neighbour.
	Slope Class = iota

	// Extremum points lie strictly above or strictly below both trace
	// neighbours.
	Extremum

	// Flat points lie inside a horizontal run of the trace: both
	// neighbours are on the same row, one on each side.
	Flat
)

// Classify returns the class of p given the trace points before and after it.
func Classify(prev, p, next image.Point) Class {
	switch {
	case p.Y > prev.Y && p.Y > next.Y, p.Y < prev.Y && p.Y < next.Y:
		return Extremum
	case p.Y == prev.Y && p.Y == next.Y && prev != next:
		return Flat
	}
	return Slope
}

// Reduce collapses a contour to the sorted set of row crossings it bounds.
//
// Flat points are skipped: a pixel passed through horizontally has border on
// both sides of its row and borders the region only from above or below.
// For every other step the examined background neighbours are turned into
// Left and Right crossings, but only where the border pixel ending the run
// lies on c itself. A run that ends on another component belongs to that
// component's contour, which the matcher traces when it gets there. The
// result is ordered by descending y, then ascending x, without duplicates.
func Reduce(r grid.Region, c *Contour) []Crossing {
	steps := c.Steps
	n := len(steps)
	if n > 1 && steps[n-1].Point == steps[0].Point {
		n--
	}
	if n == 0 {
		return nil
	}

	on := make(map[image.Point]struct{}, n)
	for _, s := range steps[:n] {
		on[s.Point] = struct{}{}
	}
	traced := func(p image.Point) bool {
		_, ok := on[p]
		return ok
	}

	seen := make(map[Crossing]struct{})
	var out []Crossing
	push := func(x Crossing) {
		if _, ok := seen[x]; ok {
			return
		}
		seen[x] = struct{}{}
		out = append(out, x)
	}
	harvest := func(g image.Point) {
		if r.Border(g) {
			return
		}
		if w := g.Sub(image.Pt(1, 0)); r.Border(w) && traced(w) {
			push(Crossing{Point: g, Kind: Left})
		}
		if e := g.Add(image.Pt(1, 0)); r.Border(e) && traced(e) {
			push(Crossing{Point: e, Kind: Right})
		}
	}

	for i, s := range steps {
		j := i
		if j >= n {
			j = 0 // closing step
		}
		prev := steps[(j-1+n)%n].Point
		next := steps[(j+1)%n].Point
		if Classify(prev, s.Point, next) == Flat {
			continue
		}
		s.Examined(harvest)
	}

	SortCrossings(out)
	return out
}

// SortCrossings orders crossings by descending y, then ascending x.
func SortCrossings(xs []Crossing) {
	slices.SortFunc(xs, func(a, b Crossing) int {
		if c := cmp.Compare(b.Point.Y, a.Point.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.Point.X, b.Point.X)
	})
}

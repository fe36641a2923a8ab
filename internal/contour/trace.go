// Package contour traces the boundary of a fill region as a Moore-neighbour
// chain code and reduces it to the row crossings that bound horizontal spans.
//
// The tracer walks border pixels, keeping the fill region on one side. Every
// step records the neighbours it examined before it found the next border
// pixel; those examined neighbours are by construction background pixels of
// the region being traced, which is what Reduce relies on.
package contour

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/paint/internal/grid"
)

// ErrDegenerateSeed is returned when a trace cannot start from its seed or
// does not close.
var ErrDegenerateSeed = errors.New("contour: degenerate seed")

// Direction is a chain code indexing one of the 8 neighbours of a pixel.
//
//	3   2   1
//	4   -   0
//	5   6   7
type Direction uint8

// Chain codes.
const (
	East Direction = iota
	NorthEast
	North
	NorthWest
	West
	SouthWest
	South
	SouthEast
)

var offsets = [8]image.Point{
	{1, 0}, {1, -1}, {0, -1}, {-1, -1},
	{-1, 0}, {-1, 1}, {0, 1}, {1, 1},
}

// Offset returns the displacement to the neighbour in direction d.
func (d Direction) Offset() image.Point { return offsets[d&7] }

// Turn returns the direction n steps further along the ring.
func (d Direction) Turn(n int) Direction {
	return Direction(((int(d)+n)%8 + 8) % 8)
}

// Step is one move of a trace: the border pixel it starts from, the first
// neighbour it examined and how many background neighbours it passed before
// reaching the next border pixel. Scanned is 8 for an isolated pixel.
type Step struct {
	Point   image.Point
	From    Direction
	Scanned int
}

// Examined calls fn for every background neighbour the step passed.
func (s Step) Examined(fn func(image.Point)) {
	for i := 0; i < s.Scanned; i++ {
		fn(s.Point.Add(s.From.Turn(i).Offset()))
	}
}

// Next scans the neighbours of p starting at d and returns the first border
// neighbour q together with the direction to resume scanning from at q and
// the number of background neighbours passed. ok is false if p has no
// border neighbour.
func Next(r grid.Region, p image.Point, d Direction) (q image.Point, resume Direction, scanned int, ok bool) {
	for i := 0; i < 8; i++ {
		k := d.Turn(i)
		n := p.Add(k.Offset())
		if r.Border(n) {
			return n, k.Turn(6), i, true
		}
	}
	return p, d, 8, false
}

// Contour is a closed trace. For contours of more than one step the last
// step starts from the same point as the first.
type Contour struct {
	Steps []Step
}

// Len returns the number of steps.
func (c *Contour) Len() int { return len(c.Steps) }

// Points returns the traced border pixels in walk order.
func (c *Contour) Points() []image.Point {
	pts := make([]image.Point, len(c.Steps))
	for i, s := range c.Steps {
		pts[i] = s.Point
	}
	return pts
}

type state struct {
	p image.Point
	d Direction
}

// Trace walks the border around the background neighbour of seed in
// direction start. The walk stops when it re-enters its first successor
// state, so a seed touched from several sides is passed through rather than
// ending the trace early.
func Trace(r grid.Region, seed image.Point, start Direction) (*Contour, error) {
	if !r.Border(seed) {
		return nil, fmt.Errorf("%w: %v is not a border pixel", ErrDegenerateSeed, seed)
	}
	if r.Border(seed.Add(start.Offset())) {
		return nil, fmt.Errorf("%w: no background next to %v in direction %d", ErrDegenerateSeed, seed, start)
	}

	b := r.Bounds()
	limit := 8*(b.Dx()+2)*(b.Dy()+2) + 8

	q, d, n, ok := Next(r, seed, start)
	c := &Contour{Steps: []Step{{Point: seed, From: start, Scanned: n}}}
	if !ok {
		return c, nil
	}

	first := state{q, d}
	cur := first
	for len(c.Steps) <= limit {
		nq, nd, n, _ := Next(r, cur.p, cur.d)
		c.Steps = append(c.Steps, Step{Point: cur.p, From: cur.d, Scanned: n})
		next := state{nq, nd}
		if next == first {
			return c, nil
		}
		cur = next
	}
	return nil, fmt.Errorf("%w: trace from %v did not close within %d steps", ErrDegenerateSeed, seed, limit)
}

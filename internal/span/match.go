package span

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/gogpu/paint/internal/contour"
	"github.com/gogpu/paint/internal/grid"
)

// Options configures Match and Resolve.
type Options struct {
	// Logger receives per-fill statistics at debug level. Nil disables
	// logging.
	Logger *slog.Logger
}

// Result is the outcome of matching one region.
type Result struct {
	// Spans lists the matched spans in the order they were resolved.
	Spans []Span

	// Crossings counts every crossing that entered the pool, including
	// those contributed by obstacles.
	Crossings int

	// Obstacles counts the obstacle contours traced while matching.
	Obstacles int

	// Steps counts the trace steps of the outer and all obstacle contours.
	Steps int
}

type matcher struct {
	r     grid.Region
	pool  map[image.Point]contour.Kind
	done  map[image.Point]struct{}
	order []contour.Crossing
	head  int
	res   Result
}

// Match pairs the crossings of a traced region into spans. Crossings whose
// partner is missing trigger a trace of the obstacle that partner lies on.
func Match(r grid.Region, xs []contour.Crossing, opts Options) (Result, error) {
	m := &matcher{
		r:    r,
		pool: make(map[image.Point]contour.Kind, len(xs)),
		done: make(map[image.Point]struct{}, len(xs)),
	}
	m.push(xs)

	for {
		p, ok := m.next()
		if !ok {
			break
		}
		s, partner := m.run(p)
		if s.Empty() {
			m.consume(p.Point)
			continue
		}
		if m.has(partner) || m.consumed(partner.Point) {
			m.emit(s)
			continue
		}
		if err := m.obstacle(partner); err != nil {
			return m.res, err
		}
		if m.has(p) {
			// The obstacle trace did not yield the partner. The walk
			// already proved s lies inside the region.
			m.emit(s)
		}
	}

	if opts.Logger != nil {
		opts.Logger.Debug("span: matched",
			"crossings", m.res.Crossings,
			"obstacles", m.res.Obstacles,
			"spans", len(m.res.Spans))
	}
	return m.res, nil
}

// push adds crossings that are neither pooled nor consumed and re-sorts the
// remaining work.
func (m *matcher) push(xs []contour.Crossing) {
	rest := m.order[m.head:]
	order := make([]contour.Crossing, 0, len(rest)+len(xs))
	for _, x := range rest {
		if m.has(x) {
			order = append(order, x)
		}
	}
	for _, x := range xs {
		if m.has(x) || m.consumed(x.Point) {
			continue
		}
		m.pool[x.Point] = x.Kind
		order = append(order, x)
		m.res.Crossings++
	}
	contour.SortCrossings(order)
	m.order = order
	m.head = 0
}

// next returns the leftmost unmatched crossing of the highest row.
func (m *matcher) next() (contour.Crossing, bool) {
	for m.head < len(m.order) {
		x := m.order[m.head]
		if m.has(x) {
			return x, true
		}
		m.head++
	}
	return contour.Crossing{}, false
}

func (m *matcher) has(x contour.Crossing) bool {
	k, ok := m.pool[x.Point]
	return ok && k == x.Kind
}

func (m *matcher) consumed(p image.Point) bool {
	_, ok := m.done[p]
	return ok
}

func (m *matcher) consume(p image.Point) {
	delete(m.pool, p)
	m.done[p] = struct{}{}
}

// run walks x to the other end of its row run.
func (m *matcher) run(x contour.Crossing) (Span, contour.Crossing) {
	if x.Kind == contour.Left {
		s := Span{Left: x.Point, Right: RightEnd(m.r, x.Point)}
		return s, contour.Crossing{Point: s.Right, Kind: contour.Right}
	}
	s := Span{Left: LeftEnd(m.r, x.Point), Right: x.Point}
	return s, contour.Crossing{Point: s.Left, Kind: contour.Left}
}

func (m *matcher) emit(s Span) {
	if !m.consumed(s.Left) {
		m.res.Spans = append(m.res.Spans, s)
	}
	m.consume(s.Left)
	m.consume(s.Right)
}

// obstacle traces the contour through the unmatched crossing x, pairs its
// crossings with the pool first and with each other second, and folds the
// rest back into the pool.
func (m *matcher) obstacle(x contour.Crossing) error {
	seed, dir := x.Point, contour.West
	if x.Kind == contour.Left {
		seed, dir = x.Point.Sub(unitX), contour.East
	}
	c, err := contour.Trace(m.r, seed, dir)
	if err != nil {
		return fmt.Errorf("span: obstacle at %v: %w", seed, err)
	}
	m.res.Obstacles++
	m.res.Steps += c.Len()

	var list []contour.Crossing
	own := make(map[image.Point]contour.Kind)
	for _, y := range contour.Reduce(m.r, c) {
		if m.has(y) || m.consumed(y.Point) {
			continue
		}
		own[y.Point] = y.Kind
		list = append(list, y)
	}

	for _, y := range list {
		if k, ok := own[y.Point]; !ok || k != y.Kind {
			continue
		}
		s, partner := m.run(y)
		switch {
		case s.Empty():
			delete(own, y.Point)
			m.consume(y.Point)
		case m.has(partner):
			delete(own, y.Point)
			m.emit(s)
		case own[partner.Point] == partner.Kind:
			delete(own, y.Point)
			delete(own, partner.Point)
			m.emit(s)
		}
	}

	rest := list[:0]
	for _, y := range list {
		if k, ok := own[y.Point]; ok && k == y.Kind {
			rest = append(rest, y)
		}
	}
	m.push(rest)
	return nil
}

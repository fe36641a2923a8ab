// Package fill commits resolved spans to a pixel destination and provides the
// scanline sampler used for pattern fills.
package fill

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/paint/internal/grid"
	"github.com/gogpu/paint/internal/span"
)

// ErrSpanOutOfBounds is returned when a span leaves the destination bounds.
// Nothing is written in that case.
var ErrSpanOutOfBounds = errors.New("fill: span out of bounds")

// Writer receives committed pixels.
type Writer interface {
	Set(x, y int, v grid.Pixel)
}

// Check verifies that every span lies inside bounds.
func Check(bounds image.Rectangle, spans []span.Span) error {
	for _, s := range spans {
		if s.Empty() {
			continue
		}
		if s.Left.Y != s.Right.Y ||
			s.Left.Y < bounds.Min.Y || s.Left.Y >= bounds.Max.Y ||
			s.Left.X < bounds.Min.X || s.Right.X > bounds.Max.X {
			return fmt.Errorf("%w: %v in %v", ErrSpanOutOfBounds, s, bounds)
		}
	}
	return nil
}

// Spans writes v to every pixel of every span and returns the number of
// pixels written. All spans are checked before the first write.
func Spans(dst Writer, bounds image.Rectangle, spans []span.Span, v grid.Pixel) (int, error) {
	if err := Check(bounds, spans); err != nil {
		return 0, err
	}
	n := 0
	for _, s := range spans {
		y := s.Left.Y
		for x := s.Left.X; x < s.Right.X; x++ {
			dst.Set(x, y, v)
			n++
		}
	}
	return n, nil
}

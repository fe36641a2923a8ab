package fill

import (
	"image"

	"github.com/gogpu/paint/internal/grid"
	"github.com/gogpu/paint/internal/span"
)

// Sampler is a tiling source image.
type Sampler interface {
	Size() (width, height int)
	At(x, y int) grid.Pixel
}

// wrap returns v mod n in [0, n).
func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// PatternSpans writes the pattern color of every span pixel, tiling the
// pattern so that its origin lands on anchor. It returns the number of pixels
// written. All spans are checked before the first write.
func PatternSpans(dst Writer, bounds image.Rectangle, spans []span.Span, anchor image.Point, pat Sampler) (int, error) {
	if err := Check(bounds, spans); err != nil {
		return 0, err
	}
	pw, ph := pat.Size()
	if pw <= 0 || ph <= 0 {
		return 0, nil
	}
	n := 0
	for _, s := range spans {
		y := s.Left.Y
		py := wrap(y-anchor.Y, ph)
		for x := s.Left.X; x < s.Right.X; x++ {
			dst.Set(x, y, pat.At(wrap(x-anchor.X, pw), py))
			n++
		}
	}
	return n, nil
}

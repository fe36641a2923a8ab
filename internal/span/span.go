// Package span pairs row crossings into horizontal fill spans.
//
// The matcher keeps a pool of unmatched crossings. Each crossing is walked to
// the other end of its row run; when that end is not in the pool it lies on
// an obstacle nobody has traced yet, so the obstacle is traced, matched
// against the pool and folded back into it. The pool is an explicit
// worklist, so nested obstacles never recurse.
package span

import (
	"fmt"
	"image"
)

// Span is a half-open row range [Left.X, Right.X) on row Left.Y. Left is the
// first background pixel of the run, Right the border pixel after it.
type Span struct {
	Left  image.Point
	Right image.Point
}

// Len returns the number of pixels covered by s.
func (s Span) Len() int {
	if s.Right.X <= s.Left.X {
		return 0
	}
	return s.Right.X - s.Left.X
}

// Empty reports whether s covers no pixel.
func (s Span) Empty() bool { return s.Len() == 0 }

// String returns a compact description of s.
func (s Span) String() string {
	return fmt.Sprintf("y=%d [%d,%d)", s.Left.Y, s.Left.X, s.Right.X)
}

// Bounds returns the smallest rectangle containing every span.
func Bounds(spans []Span) image.Rectangle {
	var r image.Rectangle
	for _, s := range spans {
		if s.Empty() {
			continue
		}
		r = r.Union(image.Rect(s.Left.X, s.Left.Y, s.Right.X, s.Left.Y+1))
	}
	return r
}

// Area returns the total number of pixels covered by spans.
func Area(spans []Span) int {
	n := 0
	for _, s := range spans {
		n += s.Len()
	}
	return n
}

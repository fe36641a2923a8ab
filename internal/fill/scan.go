package fill

import (
	"image"

	"github.com/gogpu/paint/internal/grid"
	"github.com/gogpu/paint/internal/span"
)

// Scan returns the row runs of the 4-connected background region containing
// seed using a scanline flood fill. Seeds are kept on an explicit stack and
// visited pixels in a bitmap, so the result does not depend on what is later
// written into the region.
func Scan(r grid.Region, seed image.Point) []span.Span {
	if r.Border(seed) {
		return nil
	}
	b := r.Bounds()
	w := b.Dx()
	visited := make([]uint64, (w*b.Dy()+63)/64)
	index := func(p image.Point) int { return (p.Y-b.Min.Y)*w + (p.X - b.Min.X) }
	seen := func(p image.Point) bool {
		i := index(p)
		return visited[i>>6]&(1<<(uint(i)&63)) != 0
	}
	mark := func(p image.Point) {
		i := index(p)
		visited[i>>6] |= 1 << (uint(i) & 63)
	}
	open := func(p image.Point) bool { return !r.Border(p) && !seen(p) }

	var runs []span.Span
	stack := []image.Point{seed}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !open(p) {
			continue
		}

		left := p
		for open(left.Sub(image.Pt(1, 0))) {
			left.X--
		}
		right := p
		for open(right) {
			mark(right)
			right.X++
		}
		for q := left; q.X < p.X; q.X++ {
			mark(q)
		}
		runs = append(runs, span.Span{Left: left, Right: right})

		for _, dy := range [2]int{-1, 1} {
			inRun := false
			for x := left.X; x < right.X; x++ {
				q := image.Pt(x, p.Y+dy)
				if open(q) {
					if !inRun {
						stack = append(stack, q)
						inRun = true
					}
				} else {
					inRun = false
				}
			}
		}
	}
	return runs
}

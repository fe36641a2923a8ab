package imageio

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Scale enlarges img by an integer factor with nearest-neighbour sampling, so
// every source pixel becomes a factor × factor block and no new colors are
// introduced. Factors below 2 return a copy of img.
func Scale(img image.Image, factor int) *image.NRGBA {
	if factor < 2 {
		return ToNRGBA(img)
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

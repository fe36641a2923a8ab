package paint

import (
	"errors"

	"github.com/gogpu/paint/internal/contour"
	"github.com/gogpu/paint/internal/fill"
)

// Fill errors.
var (
	// ErrNoPattern is returned by a pattern fill when no pattern is loaded.
	ErrNoPattern = errors.New("paint: no pattern loaded")

	// ErrOutOfBounds is returned when a seed lies outside the canvas.
	ErrOutOfBounds = errors.New("paint: seed out of bounds")

	// ErrCanvasResized is returned when the canvas was reallocated while a
	// fill was being computed. The fill is discarded.
	ErrCanvasResized = errors.New("paint: canvas resized during fill")

	// ErrDegenerateSeed is returned when the region boundary cannot be
	// traced from the seed.
	ErrDegenerateSeed = contour.ErrDegenerateSeed

	// ErrSpanOutOfBounds is returned when a computed span leaves the
	// canvas. The canvas is left untouched.
	ErrSpanOutOfBounds = fill.ErrSpanOutOfBounds
)

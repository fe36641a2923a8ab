// Command paintfill fills a region of an image and saves the result.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/paint"
)

func main() {
	var (
		input        = flag.String("in", "", "input image (png, jpeg, bmp, tiff, webp); blank canvas if empty")
		width        = flag.Int("width", paint.DefaultWidth, "blank canvas width")
		height       = flag.Int("height", paint.DefaultHeight, "blank canvas height")
		demo         = flag.Bool("demo", false, "draw a demo scene with nested obstacles before filling")
		thickness    = flag.Int("thickness", 2, "outline width of the demo scene")
		seedFlag     = flag.String("seed", "1,1", "seed pixel as x,y")
		colorFlag    = flag.String("color", "#FF0000", "fill color as #RRGGBB or #RRGGBBAA")
		patternPath  = flag.String("pattern", "", "pattern image; enables pattern fill")
		patternScale = flag.Int("pattern-scale", 1, "integer pattern enlargement")
		strategyFlag = flag.String("strategy", "contour", "solid fill strategy: contour or scanline")
		output       = flag.String("out", "fill.png", "output PNG file")
		verbose      = flag.Bool("v", false, "log fill statistics")
	)
	flag.Parse()

	if *verbose {
		paint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	seed, err := parsePoint(*seedFlag)
	if err != nil {
		log.Fatalf("Invalid -seed: %v", err)
	}
	col, err := paint.ParseHex(*colorFlag)
	if err != nil {
		log.Fatalf("Invalid -color: %v", err)
	}
	strategy, err := paint.ParseStrategy(*strategyFlag)
	if err != nil {
		log.Fatalf("Invalid -strategy: %v", err)
	}

	canvas := paint.NewCanvas(*width, *height)
	if *input != "" {
		canvas, err = paint.LoadCanvas(*input)
		if err != nil {
			log.Fatalf("Failed to load canvas: %v", err)
		}
	}
	p := paint.NewPainter(
		paint.WithCanvas(canvas),
		paint.WithColor(col),
		paint.WithStrategy(strategy),
	)
	p.SetThickness(*thickness)
	if *demo {
		drawDemo(canvas, p.Thickness())
	}

	mode := paint.FillSolid
	if *patternPath != "" {
		pat, err := paint.LoadPattern(*patternPath)
		if err != nil {
			log.Fatalf("Failed to load pattern: %v", err)
		}
		p.SetPattern(pat.Scale(*patternScale))
		mode = paint.FillPattern
	}

	res, err := p.OnSeedRequested(seed, paint.ButtonRight, mode)
	switch {
	case errors.Is(err, paint.ErrOutOfBounds):
		log.Fatalf("Seed %v is outside the %dx%d canvas", seed, canvas.Width(), canvas.Height())
	case err != nil:
		log.Fatalf("Fill failed: %v", err)
	}

	if err := canvas.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	report(res, *output)
}

func report(res paint.Result, output string) {
	pr := message.NewPrinter(language.English)
	if res.NoOp {
		pr.Printf("Nothing to fill; saved %s\n", output)
		return
	}
	pr.Printf("Filled %d pixels in %d spans (%s), bounds %v\n",
		res.Pixels, len(res.Spans), res.Mode, res.Bounds)
	if res.Steps > 0 {
		pr.Printf("Traced %d contour steps, %d obstacles\n", res.Steps, res.Obstacles)
	}
	pr.Printf("Saved %s\n", output)
}

func parsePoint(s string) (image.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return image.Point{}, fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return image.Point{}, err
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return image.Point{}, err
	}
	return image.Pt(x, y), nil
}

// drawDemo outlines nested frames with obstacles of different shapes so the
// contour strategy has something to resolve. Frames are drawn pen pixels wide.
func drawDemo(c *paint.Canvas, pen int) {
	w, h := c.Width(), c.Height()
	frame(c, image.Rect(w/10, h/10, w-w/10, h-h/10), pen, paint.Black)
	frame(c, image.Rect(w/4, h/4, w/2, h/2), pen, paint.Blue)
	block(c, image.Rect(w/2+w/20, h/4, w/2+w/8, h/4+h/8), paint.Green)
	block(c, image.Rect(w/2+w/6, h/4, w/2+w/5, h/4+h/16), paint.Green)
	for i := 0; i < 5; i++ {
		c.SetPixel(w/3+3*i, h/2+h/6, paint.Magenta)
	}
	for x := w / 5; x < w-w/5; x++ {
		c.SetPixel(x, h-h/4+(x%7)-3, paint.Black)
	}
}

func frame(c *paint.Canvas, r image.Rectangle, pen int, col paint.Color) {
	pen = max(pen, 1)
	for i := 0; i < pen && r.Dx() > 0 && r.Dy() > 0; i++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c.SetPixel(x, r.Min.Y, col)
			c.SetPixel(x, r.Max.Y-1, col)
		}
		for y := r.Min.Y; y < r.Max.Y; y++ {
			c.SetPixel(r.Min.X, y, col)
			c.SetPixel(r.Max.X-1, y, col)
		}
		r = r.Inset(1)
	}
}

func block(c *paint.Canvas, r image.Rectangle, col paint.Color) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c.SetPixel(x, y, col)
		}
	}
}

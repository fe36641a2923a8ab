package contour

import (
	"errors"
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/paint/internal/grid"
)

// parse builds a mask from rows of '.' (background) and '#' (border).
func parse(rows ...string) grid.Mask {
	g := grid.New(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, ch := range row {
			if ch == '#' {
				g.Set(x, y, 1)
			}
		}
	}
	m := grid.Mask{}
	for y, row := range rows {
		for x, ch := range row {
			if ch == '.' {
				m, _ = grid.NewMask(g, image.Pt(x, y))
				return m
			}
		}
	}
	return m
}

var square = []string{
	"..........",
	"..........",
	"..######..",
	"..#....#..",
	"..#....#..",
	"..#....#..",
	"..#....#..",
	"..######..",
	"..........",
	"..........",
}

func TestDirection(t *testing.T) {
	tests := []struct {
		d    Direction
		want image.Point
	}{
		{East, image.Pt(1, 0)},
		{NorthEast, image.Pt(1, -1)},
		{North, image.Pt(0, -1)},
		{NorthWest, image.Pt(-1, -1)},
		{West, image.Pt(-1, 0)},
		{SouthWest, image.Pt(-1, 1)},
		{South, image.Pt(0, 1)},
		{SouthEast, image.Pt(1, 1)},
	}
	for _, tt := range tests {
		if got := tt.d.Offset(); got != tt.want {
			t.Errorf("Direction(%d).Offset() = %v, want %v", tt.d, got, tt.want)
		}
	}
	if got := North.Turn(6); got != East {
		t.Errorf("North.Turn(6) = %d, want East", got)
	}
	if got := East.Turn(-1); got != SouthEast {
		t.Errorf("East.Turn(-1) = %d, want SouthEast", got)
	}
}

func TestNext(t *testing.T) {
	m := parse(square...)
	tests := []struct {
		name        string
		p           image.Point
		d           Direction
		wantQ       image.Point
		wantResume  Direction
		wantScanned int
	}{
		{"axis move", image.Pt(2, 4), East, image.Pt(2, 3), East, 2},
		{"diagonal move", image.Pt(2, 3), East, image.Pt(3, 2), SouthEast, 1},
		{"corner", image.Pt(6, 2), South, image.Pt(7, 3), SouthWest, 1},
		{"immediate", image.Pt(3, 2), East, image.Pt(4, 2), South, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, resume, scanned, ok := Next(m, tt.p, tt.d)
			if !ok {
				t.Fatal("Next() found no border neighbour")
			}
			if q != tt.wantQ || resume != tt.wantResume || scanned != tt.wantScanned {
				t.Errorf("Next(%v, %d) = (%v, %d, %d), want (%v, %d, %d)",
					tt.p, tt.d, q, resume, scanned, tt.wantQ, tt.wantResume, tt.wantScanned)
			}
		})
	}
}

func TestNextIsolated(t *testing.T) {
	m := parse(
		"...",
		".#.",
		"...",
	)
	_, _, scanned, ok := Next(m, image.Pt(1, 1), West)
	if ok || scanned != 8 {
		t.Errorf("Next() on isolated pixel = (scanned %d, ok %v), want (8, false)", scanned, ok)
	}
}

func TestTraceSquare(t *testing.T) {
	m := parse(square...)
	c, err := Trace(m, image.Pt(2, 4), East)
	if err != nil {
		t.Fatalf("Trace() = %v", err)
	}
	want := []image.Point{
		{2, 4}, {2, 3}, {3, 2}, {4, 2}, {5, 2}, {6, 2},
		{7, 3}, {7, 4}, {7, 5}, {7, 6},
		{6, 7}, {5, 7}, {4, 7}, {3, 7},
		{2, 6}, {2, 5}, {2, 4},
	}
	if diff := cmp.Diff(want, c.Points()); diff != "" {
		t.Errorf("Trace() points mismatch (-want +got):\n%s", diff)
	}
	if c.Len() != len(want) {
		t.Errorf("Len() = %d, want %d", c.Len(), len(want))
	}
}

func TestTraceExaminesOnlyBackground(t *testing.T) {
	m := parse(
		"........",
		".##..#..",
		".#...##.",
		".####...",
		"......#.",
	)
	c, err := Trace(m, image.Pt(0, 0).Sub(image.Pt(1, 0)), East)
	if err != nil {
		t.Fatalf("Trace() = %v", err)
	}
	for i, s := range c.Steps {
		if !m.Border(s.Point) {
			t.Errorf("step %d at %v is not a border pixel", i, s.Point)
		}
		s.Examined(func(p image.Point) {
			if m.Border(p) {
				t.Errorf("step %d examined border pixel %v", i, p)
			}
		})
	}
	if last, first := c.Steps[c.Len()-1].Point, c.Steps[0].Point; last != first {
		t.Errorf("contour closes at %v, want %v", last, first)
	}
}

func TestTraceIsolated(t *testing.T) {
	m := parse(
		"...",
		".#.",
		"...",
	)
	c, err := Trace(m, image.Pt(1, 1), West)
	if err != nil {
		t.Fatalf("Trace() = %v", err)
	}
	if c.Len() != 1 || c.Steps[0].Scanned != 8 {
		t.Errorf("isolated contour = %+v, want one step scanning 8 neighbours", c.Steps)
	}
}

func TestTraceDegenerate(t *testing.T) {
	m := parse(square...)
	tests := []struct {
		name string
		seed image.Point
		dir  Direction
	}{
		{"seed is background", image.Pt(4, 4), East},
		{"start faces border", image.Pt(2, 4), North},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Trace(m, tt.seed, tt.dir)
			if !errors.Is(err, ErrDegenerateSeed) {
				t.Errorf("Trace() = %v, want ErrDegenerateSeed", err)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name          string
		prev, p, next image.Point
		want          Class
	}{
		{"top extremum", image.Pt(0, 1), image.Pt(1, 0), image.Pt(2, 1), Extremum},
		{"bottom extremum", image.Pt(0, 0), image.Pt(1, 1), image.Pt(2, 0), Extremum},
		{"flat", image.Pt(0, 0), image.Pt(1, 0), image.Pt(2, 0), Flat},
		{"flat reversed", image.Pt(2, 0), image.Pt(1, 0), image.Pt(0, 0), Flat},
		{"slope", image.Pt(0, 0), image.Pt(1, 1), image.Pt(2, 2), Slope},
		{"corner", image.Pt(0, 0), image.Pt(1, 0), image.Pt(1, 1), Slope},
		{"spike", image.Pt(0, 0), image.Pt(1, 0), image.Pt(0, 0), Slope},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.prev, tt.p, tt.next); got != tt.want {
				t.Errorf("Classify() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestReduceSquare(t *testing.T) {
	m := parse(square...)
	c, err := Trace(m, image.Pt(2, 4), East)
	if err != nil {
		t.Fatalf("Trace() = %v", err)
	}
	var want []Crossing
	for y := 6; y >= 3; y-- {
		want = append(want,
			Crossing{Point: image.Pt(3, y), Kind: Left},
			Crossing{Point: image.Pt(7, y), Kind: Right})
	}
	if diff := cmp.Diff(want, Reduce(m, c)); diff != "" {
		t.Errorf("Reduce() mismatch (-want +got):\n%s", diff)
	}
}

func TestReduceFrame(t *testing.T) {
	m := parse(
		"...",
		"...",
	)
	c, err := Trace(m, image.Pt(-1, 0), East)
	if err != nil {
		t.Fatalf("Trace() = %v", err)
	}
	want := []Crossing{
		{Point: image.Pt(0, 1), Kind: Left},
		{Point: image.Pt(3, 1), Kind: Right},
		{Point: image.Pt(0, 0), Kind: Left},
		{Point: image.Pt(3, 0), Kind: Right},
	}
	if diff := cmp.Diff(want, Reduce(m, c)); diff != "" {
		t.Errorf("Reduce() mismatch (-want +got):\n%s", diff)
	}
}

func TestReduceIsolated(t *testing.T) {
	m := parse(
		".....",
		".....",
		"..#..",
		".....",
		".....",
	)
	c, err := Trace(m, image.Pt(2, 2), West)
	if err != nil {
		t.Fatalf("Trace() = %v", err)
	}
	want := []Crossing{
		{Point: image.Pt(2, 2), Kind: Right},
		{Point: image.Pt(3, 2), Kind: Left},
	}
	if diff := cmp.Diff(want, Reduce(m, c)); diff != "" {
		t.Errorf("Reduce() mismatch (-want +got):\n%s", diff)
	}
}

func TestSortCrossings(t *testing.T) {
	xs := []Crossing{
		{Point: image.Pt(5, 1), Kind: Left},
		{Point: image.Pt(2, 3), Kind: Right},
		{Point: image.Pt(1, 1), Kind: Right},
		{Point: image.Pt(0, 3), Kind: Left},
	}
	SortCrossings(xs)
	want := []Crossing{
		{Point: image.Pt(0, 3), Kind: Left},
		{Point: image.Pt(2, 3), Kind: Right},
		{Point: image.Pt(1, 1), Kind: Right},
		{Point: image.Pt(5, 1), Kind: Left},
	}
	if diff := cmp.Diff(want, xs); diff != "" {
		t.Errorf("SortCrossings() mismatch (-want +got):\n%s", diff)
	}
}

func TestKindString(t *testing.T) {
	if Left.String() != "left" || Right.String() != "right" || Kind(0).String() != "unknown" {
		t.Error("unexpected Kind names")
	}
}

func TestReduceIgnoresUntracedComponents(t *testing.T) {
	m := parse(
		".............",
		"#............",
		"..#......#...",
		"...........#.",
		".............",
	)
	c, err := Trace(m, image.Pt(-1, 0), East)
	if err != nil {
		t.Fatalf("Trace() = %v", err)
	}
	on := make(map[image.Point]bool)
	for _, p := range c.Points() {
		on[p] = true
	}
	if !on[image.Pt(0, 1)] {
		t.Fatal("outer trace should pass (0,1), which touches the canvas edge")
	}
	xs := Reduce(m, c)
	for _, x := range xs {
		end := x.Point
		if x.Kind == Left {
			end = end.Sub(image.Pt(1, 0))
		}
		if !on[end] {
			t.Errorf("crossing %v %v ends on %v, which is not on the contour", x.Kind, x.Point, end)
		}
	}
	if !containsCrossing(xs, Crossing{Point: image.Pt(1, 1), Kind: Left}) {
		t.Error("missing Left crossing right of (0,1)")
	}
}

func containsCrossing(xs []Crossing, want Crossing) bool {
	for _, x := range xs {
		if x == want {
			return true
		}
	}
	return false
}

package grid

import (
	"image"
	"testing"
)

func TestPackUnpack(t *testing.T) {
	p := Pack(0x12, 0x34, 0x56, 0x78)
	if p != 0x12345678 {
		t.Fatalf("Pack() = %#x, want 0x12345678", uint32(p))
	}
	r, g, b, a := p.Unpack()
	if r != 0x12 || g != 0x34 || b != 0x56 || a != 0x78 {
		t.Errorf("Unpack() = (%#x, %#x, %#x, %#x)", r, g, b, a)
	}
}

func TestFromRGBA(t *testing.T) {
	data := []uint8{
		1, 2, 3, 4, 5, 6, 7, 8,
		9, 10, 11, 12, 13, 14, 15, 16,
	}
	g := FromRGBA(data, 2, 2)
	tests := []struct {
		x, y int
		want Pixel
	}{
		{0, 0, Pack(1, 2, 3, 4)},
		{1, 0, Pack(5, 6, 7, 8)},
		{0, 1, Pack(9, 10, 11, 12)},
		{1, 1, Pack(13, 14, 15, 16)},
		{2, 0, 0},
		{-1, 1, 0},
	}
	for _, tt := range tests {
		if got := g.At(tt.x, tt.y); got != tt.want {
			t.Errorf("At(%d, %d) = %#x, want %#x", tt.x, tt.y, uint32(got), uint32(tt.want))
		}
	}
}

func TestFromRGBAShortBuffer(t *testing.T) {
	g := FromRGBA([]uint8{1, 2, 3, 4}, 2, 1)
	if g.At(0, 0) != Pack(1, 2, 3, 4) || g.At(1, 0) != 0 {
		t.Error("short buffer should fill the missing pixels with zero")
	}
}

func TestSetCloneFill(t *testing.T) {
	g := New(3, 2)
	g.Set(1, 1, 7)
	g.Set(5, 5, 9) // ignored

	c := g.Clone()
	g.Fill(3)
	if c.At(1, 1) != 7 || c.At(0, 0) != 0 {
		t.Error("Clone() should not share pixels with the original")
	}
	if g.At(2, 1) != 3 {
		t.Errorf("Fill() did not set every pixel")
	}
	if g.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Errorf("Bounds() = %v", g.Bounds())
	}
}

func TestNewNegative(t *testing.T) {
	g := New(-1, 4)
	if g.Width() != 0 || g.Height() != 4 || !g.Bounds().Empty() {
		t.Errorf("New(-1, 4) = %dx%d", g.Width(), g.Height())
	}
}

func TestMask(t *testing.T) {
	g := New(4, 4)
	g.Fill(1)
	g.Set(2, 2, 5)

	m, ok := NewMask(g, image.Pt(0, 0))
	if !ok {
		t.Fatal("NewMask() inside the grid reported false")
	}
	if m.Background() != 1 {
		t.Errorf("Background() = %d, want 1", m.Background())
	}
	tests := []struct {
		p    image.Point
		want bool
	}{
		{image.Pt(0, 0), false},
		{image.Pt(2, 2), true},
		{image.Pt(-1, 0), true},
		{image.Pt(0, 4), true},
		{image.Pt(3, 3), false},
	}
	for _, tt := range tests {
		if got := m.Border(tt.p); got != tt.want {
			t.Errorf("Border(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
	if m.Bounds() != g.Bounds() {
		t.Errorf("Bounds() = %v, want %v", m.Bounds(), g.Bounds())
	}

	if _, ok := NewMask(g, image.Pt(4, 0)); ok {
		t.Error("NewMask() outside the grid reported true")
	}
}

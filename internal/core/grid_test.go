package core

import (
	"slices"
	"testing"
)

func TestWrap(t *testing.T) {
	g := NewByteGrid(4, 3)
	tests := []struct {
		name         string
		x, y         int
		wantX, wantY int
	}{
		{"inside", 1, 2, 1, 2},
		{"left edge", -1, 0, 3, 0},
		{"top edge", 0, -1, 0, 2},
		{"right edge", 4, 1, 0, 1},
		{"bottom edge", 2, 3, 2, 0},
		{"corner", -1, -1, 3, 2},
		{"far negative", -9, -7, 3, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := g.Wrap(tt.x, tt.y)
			if x != tt.wantX || y != tt.wantY {
				t.Fatalf("Wrap(%d,%d) = (%d,%d), want (%d,%d)", tt.x, tt.y, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestSetAtWraps(t *testing.T) {
	g := NewByteGrid(3, 3)
	g.Set(-1, -1, 2)
	if got := g.At(2, 2); got != 2 {
		t.Fatalf("At(2,2) = %d, want 2", got)
	}
	if got := g.Cells()[g.Index(2, 2)]; got != 2 {
		t.Fatalf("backing cell = %d, want 2", got)
	}
}

func TestFillAndCopy(t *testing.T) {
	a := NewByteGrid(2, 2)
	a.Fill(1)
	if !slices.Equal(a.Cells(), []uint8{1, 1, 1, 1}) {
		t.Fatalf("Fill produced %v", a.Cells())
	}
	b := NewByteGrid(2, 2)
	if !b.CopyFrom(a) {
		t.Fatal("CopyFrom rejected equal sized grid")
	}
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("CopyFrom did not copy cells")
	}
	if NewByteGrid(3, 2).CopyFrom(a) {
		t.Fatal("CopyFrom accepted mismatched grid")
	}
	a.Clear()
	if !slices.Equal(a.Cells(), []uint8{0, 0, 0, 0}) {
		t.Fatalf("Clear produced %v", a.Cells())
	}
}

func TestNewByteGridClampsDimensions(t *testing.T) {
	g := NewByteGrid(0, -4)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d", g.W, g.H)
	}
}

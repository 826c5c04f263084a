package asciiart

import (
	"image/color"
	"testing"

	"github.com/wbrown/asciiart/imageutil"
)

func TestSampleNeighborhoodOrder(t *testing.T) {
	// Encode coordinates in the color so each sample identifies its source.
	img := imageutil.NewImage(3, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 1, A: 255})
		}
	}

	n := SampleNeighborhood(img, 1, 1)
	// Row 0 is y+1 (below), row 2 is y-1 (above).
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			want := Pixel{R: uint8(col), G: uint8(2 - row), B: 1, A: 255}
			if n[row][col] != want {
				t.Errorf("n[%d][%d] = %v, want %v", row, col, n[row][col], want)
			}
		}
	}
	if n.Center() != (Pixel{R: 1, G: 1, B: 1, A: 255}) {
		t.Errorf("Center = %v", n.Center())
	}
}

func TestSampleNeighborhoodBorders(t *testing.T) {
	img := imageutil.CreateSolidImage(2, 2, imageutil.RGB{R: 9, G: 9, B: 9})
	solid := Pixel{R: 9, G: 9, B: 9, A: 255}

	tests := []struct {
		name string
		x, y int
		want Neighborhood
	}{
		{"top-left", 0, 0, Neighborhood{
			{Transparent, solid, solid},
			{Transparent, solid, solid},
			{Transparent, Transparent, Transparent},
		}},
		{"bottom-right", 1, 1, Neighborhood{
			{Transparent, Transparent, Transparent},
			{solid, solid, Transparent},
			{solid, solid, Transparent},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SampleNeighborhood(img, tt.x, tt.y); got != tt.want {
				t.Errorf("SampleNeighborhood(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestSampleNeighborhoodSinglePixel(t *testing.T) {
	img := imageutil.CreateSolidImage(1, 1, imageutil.RGB{R: 1})
	n := SampleNeighborhood(img, 0, 0)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if row == 1 && col == 1 {
				continue
			}
			if n[row][col] != Transparent {
				t.Errorf("n[%d][%d] = %v, want Transparent", row, col, n[row][col])
			}
		}
	}
}

func TestDistanceSquared(t *testing.T) {
	a := Pixel{R: 10, G: 20, B: 30, A: 255}
	tests := []struct {
		b    Pixel
		want int
	}{
		{a, 0},
		{Pixel{R: 11, G: 20, B: 30, A: 255}, 1},
		{Pixel{R: 13, G: 24, B: 30, A: 255}, 25},
		{Pixel{R: 10, G: 20, B: 30, A: 250}, 25},
		{Transparent, 100 + 400 + 900 + 255*255},
	}
	for _, tt := range tests {
		if got := a.DistanceSquared(tt.b); got != tt.want {
			t.Errorf("DistanceSquared(%v, %v) = %d, want %d", a, tt.b, got, tt.want)
		}
		if got := tt.b.DistanceSquared(a); got != tt.want {
			t.Errorf("DistanceSquared is not symmetric for %v", tt.b)
		}
	}
}

func TestIsTransparent(t *testing.T) {
	// 63/255 = 0.247 is below the cutoff, 64/255 = 0.251 is not.
	tests := []struct {
		alpha uint8
		want  bool
	}{
		{0, true},
		{1, true},
		{63, true},
		{64, false},
		{128, false},
		{255, false},
	}
	for _, tt := range tests {
		p := Pixel{R: 200, G: 100, B: 50, A: tt.alpha}
		if got := p.IsTransparent(); got != tt.want {
			t.Errorf("alpha %d: IsTransparent = %v, want %v", tt.alpha, got, tt.want)
		}
	}
}

func TestClassifyThreshold(t *testing.T) {
	center := Pixel{R: 100, G: 100, B: 100, A: 255}
	var n Neighborhood
	for row := range n {
		for col := range n[row] {
			n[row][col] = center
		}
	}
	n[0][0] = Pixel{R: 107, G: 100, B: 100, A: 255} // 49: active
	n[0][2] = Pixel{R: 105, G: 105, B: 100, A: 255} // 50: inactive
	n[2][1] = Transparent                           // far: inactive

	want := ActivationGrid{
		{1, 1, 0},
		{1, 1, 1},
		{1, 0, 1},
	}
	if got := Classify(n, SimilarityThreshold); got != want {
		t.Errorf("Classify = %v, want %v", got, want)
	}
}

func TestClassifyCenterAlwaysActive(t *testing.T) {
	var n Neighborhood
	n[1][1] = Pixel{R: 1, G: 2, B: 3, A: 4}
	got := Classify(n, SimilarityThreshold)
	if got[1][1] != 1 {
		t.Error("Center cell should always be active")
	}
}

func TestQuadrantsIndex(t *testing.T) {
	tests := []struct {
		q    Quadrants
		want PatternIndex
	}{
		{Quadrants{}, 0},
		{Quadrants{BottomLeft: true}, 1},
		{Quadrants{BottomRight: true}, 2},
		{Quadrants{TopRight: true}, 4},
		{Quadrants{TopLeft: true}, 8},
		{Quadrants{TopLeft: true, TopRight: true}, 12},
		{Quadrants{TopLeft: true, BottomRight: true}, 10},
		{Quadrants{true, true, true, true}, 15},
	}
	for _, tt := range tests {
		if got := tt.q.Index(); got != tt.want {
			t.Errorf("%+v.Index() = %d, want %d", tt.q, got, tt.want)
		}
	}
}

func TestSubGrids(t *testing.T) {
	grid := ActivationGrid{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
	subs := SubGrids(grid)
	want := [4]Quadrants{
		{TopLeft: true, BottomRight: true}, // top-left
		{BottomLeft: true},                 // top-right
		{TopRight: true},                   // bottom-left
		{TopLeft: true, BottomRight: true}, // bottom-right
	}
	if subs != want {
		t.Errorf("SubGrids = %+v, want %+v", subs, want)
	}
}

func TestSelectPattern(t *testing.T) {
	tests := []struct {
		name string
		grid ActivationGrid
		want PatternIndex
	}{
		{
			name: "all active",
			grid: ActivationGrid{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}},
			want: 15,
		},
		{
			name: "only center",
			// Every sub-grid has count 1; bottom-right wins with its
			// top-left cell set.
			grid: ActivationGrid{{0, 0, 0}, {0, 1, 0}, {0, 0, 0}},
			want: 8,
		},
		{
			name: "unique maximum top-left",
			grid: ActivationGrid{{1, 1, 0}, {1, 1, 0}, {0, 0, 0}},
			want: 15,
		},
		{
			name: "top-left beats later sub-grids with fewer cells",
			grid: ActivationGrid{{1, 1, 0}, {0, 1, 0}, {0, 0, 0}},
			// top-left = {1,1,0,1} -> TL, TR, BR = 8|4|2
			want: 14,
		},
		{
			name: "tie between top-left and top-right goes to top-right",
			grid: ActivationGrid{{1, 0, 1}, {0, 1, 0}, {0, 0, 0}},
			// top-left {1,0 / 0,1} = 10, top-right {0,1 / 1,0} = 5
			want: 5,
		},
		{
			name: "tie between top-left and bottom-left goes to bottom-left",
			grid: ActivationGrid{{1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
			// top-left {1,0 / 1,1} = 8|2|1 = 11
			// bottom-left {1,1 / 0,1} = 8|4|2 = 14
			want: 14,
		},
		{
			name: "tie between bottom-left and bottom-right goes to bottom-right",
			grid: ActivationGrid{{0, 0, 0}, {1, 1, 1}, {1, 0, 1}},
			// bottom-left {1,1 / 1,0} = 8|4|1 = 13
			// bottom-right {1,1 / 0,1} = 8|4|2 = 14
			want: 14,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SelectPattern(tt.grid); got != tt.want {
				t.Errorf("SelectPattern(%v) = %d, want %d", tt.grid, got, tt.want)
			}
		})
	}
}

func TestSelectPatternLastWinsAllTies(t *testing.T) {
	// A vertical line through the center: every sub-grid holds two
	// cells. Top-left and bottom-left encode as 6, top-right and
	// bottom-right as 9; the last sub-grid must be chosen.
	grid := ActivationGrid{
		{0, 1, 0},
		{0, 1, 0},
		{0, 1, 0},
	}
	subs := SubGrids(grid)
	for i, q := range subs {
		if q.Count() != 2 {
			t.Fatalf("sub-grid %d has %d cells, want 2", i, q.Count())
		}
	}
	if got := SelectPattern(grid); got != 9 {
		t.Errorf("SelectPattern = %d, want 9", got)
	}

	// Horizontal line: top sub-grids encode as 3, bottom ones as 12.
	grid = ActivationGrid{
		{0, 0, 0},
		{1, 1, 1},
		{0, 0, 0},
	}
	if got := SelectPattern(grid); got != 12 {
		t.Errorf("SelectPattern = %d, want 12", got)
	}
}

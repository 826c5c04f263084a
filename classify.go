package asciiart

const (
	// SimilarityThreshold is the default squared RGBA distance below
	// which a neighbor counts as part of the center pixel's region.
	SimilarityThreshold = 50

	// AlphaCutoff is the normalized alpha below which a pixel is blank.
	AlphaCutoff = 0.25
)

// ActivationGrid marks, for each cell of a Neighborhood, whether that
// pixel is similar to the center (1) or not (0). It uses the same row
// order as Neighborhood.
type ActivationGrid [3][3]uint8

// Classify builds the activation grid of a neighborhood. A cell is
// active iff its squared distance to the center is strictly less than
// threshold. The center cell is always active for a positive threshold.
func Classify(n Neighborhood, threshold int) ActivationGrid {
	var grid ActivationGrid
	center := n.Center()
	for row := range n {
		for col, p := range n[row] {
			if p.DistanceSquared(center) < threshold {
				grid[row][col] = 1
			}
		}
	}
	return grid
}

// Quadrants represents the four cells of a 2x2 sub-grid. Each value is
// true when the cell is active.
type Quadrants struct {
	TopLeft     bool
	TopRight    bool
	BottomLeft  bool
	BottomRight bool
}

// Count returns the number of active cells.
func (q Quadrants) Count() int {
	n := 0
	for _, v := range [4]bool{q.TopLeft, q.TopRight, q.BottomLeft, q.BottomRight} {
		if v {
			n++
		}
	}
	return n
}

// Index encodes the sub-grid as a marching-squares pattern index.
//
//	bit 3: top-left
//	bit 2: top-right
//	bit 1: bottom-right
//	bit 0: bottom-left
func (q Quadrants) Index() PatternIndex {
	var idx PatternIndex
	if q.TopLeft {
		idx |= 1 << 3
	}
	if q.TopRight {
		idx |= 1 << 2
	}
	if q.BottomRight {
		idx |= 1 << 1
	}
	if q.BottomLeft {
		idx |= 1
	}
	return idx
}

// quadrantsAt reads the 2x2 sub-grid whose top-left cell is grid[row][col].
func quadrantsAt(grid ActivationGrid, row, col int) Quadrants {
	return Quadrants{
		TopLeft:     grid[row][col] != 0,
		TopRight:    grid[row][col+1] != 0,
		BottomLeft:  grid[row+1][col] != 0,
		BottomRight: grid[row+1][col+1] != 0,
	}
}

// SubGrids returns the four overlapping 2x2 sub-grids of grid in the
// order top-left, top-right, bottom-left, bottom-right.
func SubGrids(grid ActivationGrid) [4]Quadrants {
	return [4]Quadrants{
		quadrantsAt(grid, 0, 0),
		quadrantsAt(grid, 0, 1),
		quadrantsAt(grid, 1, 0),
		quadrantsAt(grid, 1, 1),
	}
}

// SelectPattern picks the sub-grid with the most active cells and returns
// its pattern index. When several sub-grids tie, the last one in
// SubGrids order wins; rendered output depends on this.
func SelectPattern(grid ActivationGrid) PatternIndex {
	subs := SubGrids(grid)
	best, bestCount := 0, -1
	for i, q := range subs {
		if c := q.Count(); c >= bestCount {
			best, bestCount = i, c
		}
	}
	return subs[best].Index()
}

package densitygrid

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// BlockSize is the edge of the square window summed into each cell.
const BlockSize = 3

// blockMask covers the three leftmost columns of a row.
const blockMask uint32 = 0xe0000000

// DensityGrid holds one set-pixel count per cell, row-major.
type DensityGrid struct {
	cols, rows int
	cells      []int
}

// Aggregate counts the set pixels of every 3x3 window whose top left corner
// lies inside the maxX by maxY area. Windows slide one pixel at a time, so
// the grid has exactly maxX columns and maxY rows; nothing is rounded to a
// multiple of 3. Rows below the canvas count as empty and columns past the
// right edge are masked away.
func Aggregate(c *Canvas, maxX, maxY int) *DensityGrid {
	if maxX < 0 || maxX > Width {
		panic(fmt.Sprintf("densitygrid: maxX %d must be in the range 0..%d", maxX, Width+1))
	}
	if maxY < 0 || maxY > Height {
		panic(fmt.Sprintf("densitygrid: maxY %d must be in the range 0..%d", maxY, Height+1))
	}
	g := &DensityGrid{
		cols:  maxX,
		rows:  maxY,
		cells: make([]int, maxX*maxY),
	}
	for y := 0; y < maxY; y++ {
		for x := 0; x < maxX; x++ {
			mask := blockMask >> uint(x)
			var v int
			for dy := 0; dy < BlockSize && y+dy < Height; dy++ {
				v += bits.OnesCount32(c.rows[y+dy] & mask)
			}
			g.cells[y*maxX+x] = v
		}
	}
	return g
}

func (g *DensityGrid) Cols() int { return g.cols }
func (g *DensityGrid) Rows() int { return g.rows }

// At returns the count for the window at column x, row y.
func (g *DensityGrid) At(x, y int) int {
	if x < 0 || x >= g.cols || y < 0 || y >= g.rows {
		panic(fmt.Sprintf("densitygrid: cell (%d, %d) outside %dx%d grid", x, y, g.cols, g.rows))
	}
	return g.cells[y*g.cols+x]
}

// String prints the counts row by row with no separators. Counts never
// exceed 9 so every cell is a single digit.
func (g *DensityGrid) String() string {
	var b strings.Builder
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			b.WriteString(strconv.Itoa(g.cells[y*g.cols+x]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

package densitygrid

import "math/bits"

// FindMaxUsed returns the extent of the set pixels, measured from the top
// left corner: maxX is one past the rightmost used column and maxY one past
// the bottom used row.
//
// An empty canvas returns (Width, 0).
func FindMaxUsed(c *Canvas) (maxX, maxY int) {
	var used uint32
	for i, row := range c.rows {
		used |= row
		if row != 0 {
			maxY = i + 1
		}
	}
	if used == 0 {
		return Width, 0
	}
	return Width - bits.TrailingZeros32(used), maxY
}

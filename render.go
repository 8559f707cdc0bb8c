package densitygrid

import (
	"fmt"
	"io"
)

// Result is what Render computed on the way to its output files.
type Result struct {
	Canvas     *Canvas
	MaxX, MaxY int
	Grid       *DensityGrid
}

// Render runs a profile end to end: draw the text, measure it, aggregate
// and export. If diag is not nil the canvas rows, the extent and the grid
// are written to it as the job progresses.
func Render(p Profile, diag io.Writer) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	opts := []Option{WithStyle(p.Style)}

	c := NewCanvas()
	c.PutString(p.Text, p.X, p.Y)
	maxX, maxY := FindMaxUsed(c)
	grid := Aggregate(c, maxX, maxY)

	if diag != nil {
		if err := c.Dump(diag, maxY); err != nil {
			return nil, err
		}
		if _, err := fmt.Fprintf(diag, "(%d, %d)\n%s", maxX, maxY, grid); err != nil {
			return nil, err
		}
	}

	if err := Export(grid, maxX, maxY, p.Output, opts...); err != nil {
		return nil, err
	}
	if p.PNG != "" {
		if err := ExportPNG(grid, maxX, maxY, p.PNG, opts...); err != nil {
			return nil, err
		}
	}
	if p.Bitmap != "" {
		if err := SaveBitmap(c, p.Bitmap, p.Scale, p.Invert); err != nil {
			return nil, err
		}
	}
	return &Result{Canvas: c, MaxX: maxX, MaxY: maxY, Grid: grid}, nil
}

package densitygrid

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	svg "github.com/ajstarks/svgo"
)

// Label is a number drawn at the anchor point X, Y of a cell.
type Label struct {
	X, Y int
	Text string
}

// Line is a grid separator from X1, Y1 to X2, Y2.
type Line struct {
	X1, Y1, X2, Y2 int
}

// Document collects everything that ends up in an exported SVG. Width and
// Height are the rendered size in px; ViewWidth and ViewHeight the
// coordinate space the primitives live in.
type Document struct {
	Width, Height         int
	ViewWidth, ViewHeight int
	Style                 Style
	Labels                []Label
	Lines                 []Line
}

// NewDocument lays out grid as a table of numbered cells. maxX and maxY must
// match the grid's dimensions.
func NewDocument(grid *DensityGrid, maxX, maxY int, opts ...Option) *Document {
	if grid.Cols() != maxX || grid.Rows() != maxY {
		panic(fmt.Sprintf("densitygrid: %dx%d grid exported as %dx%d", grid.Cols(), grid.Rows(), maxX, maxY))
	}
	s := newStyle(opts)
	vw, vh := maxX*s.Cell+1, maxY*s.Cell+1
	doc := &Document{
		Width:      vw * s.Scale,
		Height:     vh * s.Scale,
		ViewWidth:  vw,
		ViewHeight: vh,
		Style:      s,
		Labels:     make([]Label, 0, maxX*maxY),
		Lines:      make([]Line, 0, maxX+maxY+2),
	}
	for y := 0; y < maxY; y++ {
		for x := 0; x < maxX; x++ {
			doc.Labels = append(doc.Labels, Label{
				X:    x*s.Cell + s.LabelDX,
				Y:    y*s.Cell + s.LabelDY,
				Text: strconv.Itoa(grid.At(x, y)),
			})
		}
	}
	for i := 0; i <= maxY; i++ {
		doc.Lines = append(doc.Lines, Line{X1: 0, Y1: i * s.Cell, X2: vw, Y2: i * s.Cell})
	}
	for i := 0; i <= maxX; i++ {
		doc.Lines = append(doc.Lines, Line{X1: i * s.Cell, Y1: 0, X2: i * s.Cell, Y2: vh})
	}
	return doc
}

// WriteTo serializes the document as SVG. Nothing is written if the style
// does not validate.
func (doc *Document) WriteTo(w io.Writer) (int64, error) {
	if err := doc.Style.Validate(); err != nil {
		return 0, err
	}
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Startunit(doc.Width, doc.Height, "px",
		fmt.Sprintf(`viewBox="0 0 %d %d"`, doc.ViewWidth, doc.ViewHeight))

	s := doc.Style
	canvas.Group(
		attr("font-family", s.FontFamily),
		attr("font-size", strconv.Itoa(s.FontSize)),
		attr("text-anchor", s.TextAnchor),
	)
	for _, l := range doc.Labels {
		canvas.Text(l.X, l.Y, l.Text)
	}
	canvas.Gend()

	canvas.Group(
		attr("stroke-width", strconv.FormatFloat(s.StrokeWidth, 'g', -1, 64)),
		attr("stroke", s.StrokeColor),
	)
	for _, l := range doc.Lines {
		canvas.Line(l.X1, l.Y1, l.X2, l.Y2)
	}
	canvas.Gend()
	canvas.End()

	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

func attr(name, value string) string {
	return name + `="` + value + `"`
}

// Export writes the density grid as an SVG file at path. The file is
// written in full and closed before Export returns.
func Export(grid *DensityGrid, maxX, maxY int, path string, opts ...Option) error {
	doc := NewDocument(grid, maxX, maxY, opts...)
	if err := doc.Style.Validate(); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := doc.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("export %s: %w", path, err)
	}
	return f.Close()
}

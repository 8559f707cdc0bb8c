package densitygrid

import (
	"fmt"
	"image"
	"image/draw"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/nfnt/resize"
	"golang.org/x/image/bmp"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// RenderPNG rasterizes the same table Export writes as SVG, at viewBox
// resolution. Labels always use the 7x13 basic face; the style's font
// family and size only apply to SVG output.
func RenderPNG(grid *DensityGrid, maxX, maxY int, opts ...Option) (*image.RGBA, error) {
	doc := NewDocument(grid, maxX, maxY, opts...)
	s := doc.Style
	if err := s.Validate(); err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, doc.ViewWidth, doc.ViewHeight))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	gc := draw2dimg.NewGraphicContext(img)
	gc.SetStrokeColor(colornames.Map[s.StrokeColor])
	gc.SetLineWidth(s.StrokeWidth)
	for _, l := range doc.Lines {
		gc.BeginPath()
		// Centre the stroke on the pixel so a 1px line covers exactly one row or column.
		gc.MoveTo(float64(l.X1)+0.5, float64(l.Y1)+0.5)
		gc.LineTo(float64(l.X2)+0.5, float64(l.Y2)+0.5)
		gc.Stroke()
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: basicfont.Face7x13,
	}
	for _, l := range doc.Labels {
		adv := d.MeasureString(l.Text)
		x := fixed.I(l.X)
		switch s.TextAnchor {
		case "middle":
			x -= adv / 2
		case "end":
			x -= adv
		}
		d.Dot = fixed.Point26_6{X: x, Y: fixed.I(l.Y)}
		d.DrawString(l.Text)
	}
	return img, nil
}

// ExportPNG writes RenderPNG's output to path.
func ExportPNG(grid *DensityGrid, maxX, maxY int, path string, opts ...Option) error {
	img, err := RenderPNG(grid, maxX, maxY, opts...)
	if err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return draw2dimg.SaveToPngFile(path, img)
}

// ScaleBitmap enlarges the canvas by scale with hard pixel edges, black on
// white, or white on black when invert is set.
func ScaleBitmap(c *Canvas, scale int, invert bool) (image.Image, error) {
	if scale < 1 {
		return nil, fmt.Errorf("bitmap scale must be at least 1, got %d", scale)
	}
	var img image.Image = resize.Resize(uint(Width*scale), uint(Height*scale), c, resize.NearestNeighbor)
	if invert {
		img = imaging.Invert(img)
	}
	return img, nil
}

// SaveBitmap writes the raw canvas to path as PNG or BMP, picked by the
// file extension.
func SaveBitmap(c *Canvas, path string, scale int, invert bool) error {
	img, err := ScaleBitmap(c, scale, invert)
	if err != nil {
		return err
	}
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".png" && ext != ".bmp" {
		return fmt.Errorf("bitmap %s: unsupported format %q", path, ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if ext == ".bmp" {
		err = bmp.Encode(f, img)
	} else {
		err = imaging.Encode(f, img, imaging.PNG)
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("bitmap %s: %w", path, err)
	}
	return f.Close()
}

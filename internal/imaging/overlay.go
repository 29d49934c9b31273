package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/anthonynsimon/bild/clone"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/openchest/lungseg/internal/detection"
)

// DefaultHighlight is the stroke color used for contour overlays.
const DefaultHighlight = "#FF0000"

// RenderOverlay draws the given contours on an opaque black canvas of the
// stated dimensions. Each contour is stroked as a closed polyline two
// pixels wide using the hex highlight color. Contours are drawn in
// identifier order so overlapping strokes composite deterministically.
func RenderOverlay(contours detection.ContourMap, width, height int, highlight string) (*image.RGBA, error) {
	stroke, err := parseHighlight(highlight)
	if err != nil {
		return nil, err
	}
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	drawContours(canvas, contours, stroke)
	return canvas, nil
}

// RenderComposite strokes the contours over a copy of the source image,
// leaving the source untouched.
func RenderComposite(src image.Image, contours detection.ContourMap, highlight string) (*image.RGBA, error) {
	stroke, err := parseHighlight(highlight)
	if err != nil {
		return nil, err
	}
	canvas := clone.AsRGBA(src)
	drawContours(canvas, contours, stroke)
	return canvas, nil
}

func parseHighlight(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse highlight color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

func drawContours(canvas *image.RGBA, contours detection.ContourMap, stroke color.RGBA) {
	for _, id := range contours.IDs() {
		pts := contours[id]
		if len(pts) == 0 {
			continue
		}
		if len(pts) == 1 {
			stamp(canvas, pts[0].Col, pts[0].Row, stroke)
			continue
		}
		for i := range pts {
			a := pts[i]
			b := pts[(i+1)%len(pts)]
			drawSegment(canvas, a.Col, a.Row, b.Col, b.Row, stroke)
		}
	}
}

// drawSegment rasterizes one line with Bresenham stepping, stamping the
// brush at every step.
func drawSegment(canvas *image.RGBA, x0, y0, x1, y1 int, stroke color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		stamp(canvas, x0, y0, stroke)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// stamp paints a 2x2 brush footprint so strokes read as two pixels wide.
func stamp(canvas *image.RGBA, x, y int, stroke color.RGBA) {
	b := canvas.Bounds()
	for dy := 0; dy < 2; dy++ {
		for dx := 0; dx < 2; dx++ {
			px, py := x+dx, y+dy
			if px >= b.Min.X && px < b.Max.X && py >= b.Min.Y && py < b.Max.Y {
				canvas.SetRGBA(px, py, stroke)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/counter/pkg/layout"
)

const (
	pngMargin    = 8
	pngPadding   = 4
	pngSpacingPx = 6
)

var (
	pngBackground = color.White
	pngForeground = color.Black
	pngBorder     = color.Gray{Y: 0x60}
	pngDisabled   = color.Gray{Y: 0xa0}
)

// PNG rasterizes root with the 7x13 bitmap font.
func PNG(w io.Writer, root layout.RenderObject) error {
	img := Rasterize(root)
	return png.Encode(w, img)
}

// Rasterize draws root into a new RGBA image sized to fit its content.
func Rasterize(root layout.RenderObject) *image.RGBA {
	face := basicfont.Face7x13
	node := Snapshot(root)
	size := measure(face, node)
	img := image.NewRGBA(image.Rect(0, 0, size.X+2*pngMargin, size.Y+2*pngMargin))
	draw.Draw(img, img.Bounds(), image.NewUniform(pngBackground), image.Point{}, draw.Src)
	paint(img, face, node, image.Pt(pngMargin, pngMargin))
	return img
}

func measure(face *basicfont.Face, n *Node) image.Point {
	if n == nil {
		return image.Point{}
	}
	lineHeight := face.Metrics().Height.Ceil()
	switch n.Type {
	case "text":
		return image.Pt(textWidth(face, n.Text), lineHeight)
	case "button":
		return image.Pt(textWidth(face, n.Label)+2*pngPadding+2, lineHeight+2*pngPadding+2)
	default:
		horizontal := n.Direction == layout.AxisHorizontal.String()
		var size image.Point
		for i, c := range n.Children {
			cs := measure(face, c)
			gap := 0
			if i > 0 {
				gap = pngSpacingPx * max(n.Spacing, 1)
			}
			if horizontal {
				size.X += gap + cs.X
				size.Y = max(size.Y, cs.Y)
			} else {
				size.Y += gap + cs.Y
				size.X = max(size.X, cs.X)
			}
		}
		return size
	}
}

func paint(img *image.RGBA, face *basicfont.Face, n *Node, at image.Point) {
	if n == nil {
		return
	}
	switch n.Type {
	case "text":
		drawString(img, face, n.Text, at, pngForeground)
	case "button":
		size := measure(face, n)
		fg := color.Color(pngForeground)
		if n.Disabled {
			fg = pngDisabled
		}
		strokeRect(img, image.Rectangle{Min: at, Max: at.Add(size)}, pngBorder)
		drawString(img, face, n.Label, at.Add(image.Pt(pngPadding+1, pngPadding+1)), fg)
	default:
		horizontal := n.Direction == layout.AxisHorizontal.String()
		pos := at
		for _, c := range n.Children {
			cs := measure(face, c)
			paint(img, face, c, pos)
			gap := pngSpacingPx * max(n.Spacing, 1)
			if horizontal {
				pos.X += cs.X + gap
			} else {
				pos.Y += cs.Y + gap
			}
		}
	}
}

func textWidth(face *basicfont.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

func drawString(img *image.RGBA, face *basicfont.Face, s string, at image.Point, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(at.X, at.Y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}

func strokeRect(img *image.RGBA, r image.Rectangle, c color.Color) {
	for x := r.Min.X; x < r.Max.X; x++ {
		img.Set(x, r.Min.Y, c)
		img.Set(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.Set(r.Min.X, y, c)
		img.Set(r.Max.X-1, y, c)
	}
}

package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Low-level paint helpers over an RGBA canvas. All coordinates are device
// pixels; callers apply the logical→device scale.

func fillRect(img *image.RGBA, x, y, w, h int, col color.Color) {
	b := img.Bounds()
	x2 := min(x+w, b.Max.X)
	y2 := min(y+h, b.Max.Y)
	for py := max(y, b.Min.Y); py < y2; py++ {
		for px := max(x, b.Min.X); px < x2; px++ {
			img.Set(px, py, col)
		}
	}
}

func strokeRect(img *image.RGBA, x, y, w, h, thickness int, col color.Color) {
	fillRect(img, x, y, w, thickness, col)
	fillRect(img, x, y+h-thickness, w, thickness, col)
	fillRect(img, x, y, thickness, h, col)
	fillRect(img, x+w-thickness, y, thickness, h, col)
}

func fillCircle(img *image.RGBA, cx, cy, r int, col color.Color) {
	r2 := r * r
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r2 {
				img.Set(cx+dx, cy+dy, col)
			}
		}
	}
}

// strokeCircle paints a ring between radius r-thickness and r.
func strokeCircle(img *image.RGBA, cx, cy, r, thickness int, col color.Color) {
	outer := r * r
	in := r - thickness
	inner := in * in
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			d := dx*dx + dy*dy
			if d <= outer && d >= inner {
				img.Set(cx+dx, cy+dy, col)
			}
		}
	}
}

// radialTick paints a thick segment from radius r1 to r2 at the given angle.
func radialTick(img *image.RGBA, cx, cy int, r1, r2 float64, angle float64, thickness int, col color.Color) {
	sin, cos := math.Sincos(angle)
	for r := r1; r <= r2; r += 0.5 {
		x := cx + int(math.Round(cos*r))
		y := cy + int(math.Round(sin*r))
		fillRect(img, x-thickness/2, y-thickness/2, thickness, thickness, col)
	}
}

// dottedLine paints a horizontal dotted leader from x1 to x2.
func dottedLine(img *image.RGBA, x1, x2, y, dot, gap int, col color.Color) {
	for x := x1; x+dot <= x2; x += dot + gap {
		fillRect(img, x, y, dot, dot, col)
	}
}

// diamond paints the border glyph: a filled rhombus of the given half-size.
func diamond(img *image.RGBA, cx, cy, half int, col color.Color) {
	for dy := -half; dy <= half; dy++ {
		span := half - abs(dy)
		for dx := -span; dx <= span; dx++ {
			img.Set(cx+dx, cy+dy, col)
		}
	}
}

func drawText(img *image.RGBA, face font.Face, x, y int, col color.Color, s string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func textWidth(face font.Face, s string) int {
	d := &font.Drawer{Face: face}
	return d.MeasureString(s).Ceil()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

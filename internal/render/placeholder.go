package render

import (
	"image"
	"image/color"
	"math"
)

// placeholderScene paints the fixed sky/hill illustration used when no photo
// is supplied or the supplied one fails to decode. The scene is constant, so
// cards without photos stay pixel-identical across renders.
func placeholderScene(img *image.RGBA, x, y, w, h int) {
	skyTop := color.RGBA{R: 0xB8, G: 0xD4, B: 0xE8, A: 0xFF}
	skyBottom := color.RGBA{R: 0xF0, G: 0xE6, B: 0xC8, A: 0xFF}
	sun := color.RGBA{R: 0xF2, G: 0xC1, B: 0x4E, A: 0xFF}
	hillFar := color.RGBA{R: 0x5A, G: 0x7D, B: 0x4A, A: 0xFF}
	hillNear := color.RGBA{R: 0x3E, G: 0x5C, B: 0x33, A: 0xFF}

	// Vertical sky gradient over the top two thirds.
	skyH := h * 2 / 3
	for row := 0; row < skyH; row++ {
		t := float64(row) / float64(skyH)
		col := lerpRGBA(skyTop, skyBottom, t)
		fillRect(img, x, y+row, w, 1, col)
	}
	fillRect(img, x, y+skyH, w, h-skyH, skyBottom)

	fillCircle(img, x+w*3/4, y+h/4, w/9, sun)

	// Two overlapping hill arcs across the lower third.
	hillCrest := y + skyH
	for col := 0; col < w; col++ {
		t := float64(col) / float64(w)
		far := hillCrest + int(float64(h)/9*(1-math.Sin(t*math.Pi)))
		for row := far; row < y+h; row++ {
			img.Set(x+col, row, hillFar)
		}
		near := hillCrest + h/8 + int(float64(h)/7*(1-math.Sin((t*0.8+0.3)*math.Pi)))
		for row := near; row < y+h; row++ {
			img.Set(x+col, row, hillNear)
		}
	}
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: 0xFF}
}

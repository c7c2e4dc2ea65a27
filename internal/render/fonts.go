package render

import (
	"fmt"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts are embedded TTF data parsed once at startup, so every render uses
// the same glyphs and output is deterministic. There is no fallback-font
// window to wait out.
var (
	fontRegular = mustParseFont(goregular.TTF)
	fontBold    = mustParseFont(gobold.TTF)
	fontMono    = mustParseFont(gomono.TTF)
)

func mustParseFont(ttf []byte) *truetype.Font {
	f, err := freetype.ParseFont(ttf)
	if err != nil {
		panic(fmt.Sprintf("render: parse embedded font: %v", err))
	}
	return f
}

func newFace(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Package render draws the fan pass card bitmap. The card is a pure function
// of the record data and the locked flag: identical inputs always produce
// pixel-identical output, which is what lets the live preview and the final
// export share one code path.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"time"

	// Decoders for user photos. Decode failure is tolerated; the card falls
	// back to the placeholder scene.
	_ "image/gif"
	_ "image/jpeg"

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Logical card size; the bitmap is rendered at 2x pixel density.
const (
	CardWidth  = 1200
	CardHeight = 750
	cardScale  = 2
)

// CardData is the record subset the renderer needs. Category drives the
// title and status text through its own methods, keeping the single source
// of wording in the domain.
type CardData struct {
	ID         string
	Name       string
	Email      string
	Phone      string
	TitleLines [2]string
	Status     string
	YearJoined int
	CreatedAt  time.Time
	Photo      []byte
}

var (
	colBackground = color.RGBA{R: 0xF4, G: 0xED, B: 0xDC, A: 0xFF}
	colInk        = color.RGBA{R: 0x1C, G: 0x1A, B: 0x17, A: 0xFF}
	colAccent     = color.RGBA{R: 0xB3, G: 0x54, B: 0x1E, A: 0xFF}
	colFaint      = color.RGBA{R: 0x8A, G: 0x82, B: 0x74, A: 0xFF}
)

// Card paints the full pass card and returns the bitmap. When locked is
// true no personal values are drawn: no name, status or year values, no
// contact info, no creation date. Everything else is identical.
func Card(data CardData, locked bool) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, CardWidth*cardScale, CardHeight*cardScale))
	fillRect(img, 0, 0, CardWidth*cardScale, CardHeight*cardScale, colBackground)

	drawBorder(img)
	drawPhoto(img, data.Photo)
	drawTitle(img, data.TitleLines)
	drawFieldRows(img, data, locked)
	if !locked {
		drawContact(img, data)
	}
	drawSignature(img)
	drawStamp(img)
	drawMemberMark(img, data.ID)

	return img
}

// CardPNG renders the card and encodes it as PNG.
func CardPNG(data CardData, locked bool) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, Card(data, locked)); err != nil {
		return nil, fmt.Errorf("encode card: %w", err)
	}
	return buf.Bytes(), nil
}

// px converts a logical coordinate to device pixels.
func px(v int) int { return v * cardScale }

// drawBorder paints the repeated glyph motif along all four edges, with one
// highlighted glyph at the bottom centre.
func drawBorder(img *image.RGBA) {
	const (
		inset = 22
		step  = 40
		half  = 5
	)
	for x := inset; x <= CardWidth-inset; x += step {
		diamond(img, px(x), px(inset), px(half), colInk)
		diamond(img, px(x), px(CardHeight-inset), px(half), colInk)
	}
	for y := inset + step; y <= CardHeight-inset-step; y += step {
		diamond(img, px(inset), px(y), px(half), colInk)
		diamond(img, px(CardWidth-inset), px(y), px(half), colInk)
	}
	// Highlighted glyph, bottom centre.
	diamond(img, px(CardWidth/2), px(CardHeight-inset), px(half+4), colAccent)
}

// Photo frame geometry (logical).
const (
	photoX = 70
	photoY = 150
	photoW = 320
	photoH = 420
)

// drawPhoto fills the frame with the user photo using cover semantics
// (scale by the larger fit, centred crop). Any decode failure falls back to
// the placeholder scene; a broken photo never aborts the render.
func drawPhoto(img *image.RGBA, photo []byte) {
	fx, fy, fw, fh := px(photoX), px(photoY), px(photoW), px(photoH)

	painted := false
	if len(photo) > 0 {
		if src, _, err := image.Decode(bytes.NewReader(photo)); err == nil {
			coverDraw(img, image.Rect(fx, fy, fx+fw, fy+fh), src)
			painted = true
		}
	}
	if !painted {
		placeholderScene(img, fx, fy, fw, fh)
	}

	strokeRect(img, fx, fy, fw, fh, px(3), colInk)
}

// coverDraw scales src to fill dst completely, cropping the overflow evenly
// on both sides.
func coverDraw(img *image.RGBA, dst image.Rectangle, src image.Image) {
	sb := src.Bounds()
	iw, ih := sb.Dx(), sb.Dy()
	if iw == 0 || ih == 0 {
		return
	}
	scale := math.Max(
		float64(dst.Dx())/float64(iw),
		float64(dst.Dy())/float64(ih),
	)
	cropW := int(float64(dst.Dx()) / scale)
	cropH := int(float64(dst.Dy()) / scale)
	sx := sb.Min.X + (iw-cropW)/2
	sy := sb.Min.Y + (ih-cropH)/2
	crop := image.Rect(sx, sy, sx+cropW, sy+cropH)

	xdraw.ApproxBiLinear.Scale(img, dst, src, crop, xdraw.Src, nil)
}

func drawTitle(img *image.RGBA, lines [2]string) {
	face1 := newFace(fontBold, 46*cardScale)
	face2 := newFace(fontBold, 34*cardScale)
	drawText(img, face1, px(440), px(120), colInk, lines[0])
	drawText(img, face2, px(440), px(168), colAccent, lines[1])
}

// Field row geometry (logical).
const (
	rowX      = 440
	rowRight  = 1120
	rowStartY = 280
	rowGap    = 62
)

func drawFieldRows(img *image.RGBA, data CardData, locked bool) {
	labelFace := newFace(fontMono, 15*cardScale)
	valueFace := newFace(fontBold, 24*cardScale)

	rows := []struct {
		label string
		value string
	}{
		{"NAME", data.Name},
		{"YEAR JOINED", fmt.Sprintf("%d", data.YearJoined)},
		{"STATUS", data.Status},
	}

	for i, row := range rows {
		y := rowStartY + i*rowGap
		drawText(img, labelFace, px(rowX), px(y), colFaint, row.label)
		dottedLine(img, px(rowX), px(rowRight), px(y+14), px(2), px(6), colFaint)
		if !locked {
			drawText(img, valueFace, px(rowX), px(y+10), colInk, row.value)
		}
	}
}

// drawContact paints the masked contact block, only present when unlocked.
func drawContact(img *image.RGBA, data CardData) {
	face := newFace(fontMono, 16*cardScale)
	y := rowStartY + 3*rowGap + 24
	drawText(img, face, px(rowX), px(y), colInk, MaskEmail(data.Email))
	drawText(img, face, px(rowX), px(y+30), colInk, MaskPhone(data.Phone))
	drawText(img, face, px(rowX), px(y+60), colFaint, "ISSUED "+data.CreatedAt.Format("02 JAN 2006"))
}

func drawSignature(img *image.RGBA) {
	fillRect(img, px(rowX), px(620), px(260), px(2), colInk)
	face := newFace(fontRegular, 14*cardScale)
	drawText(img, face, px(rowX), px(644), colFaint, "KEEPER OF THE YARD")
}

// drawStamp paints the circular stamp motif: two concentric rings, twelve
// radial ticks, and a glyph at the centre.
func drawStamp(img *image.RGBA) {
	cx, cy := px(1010), px(600)
	strokeCircle(img, cx, cy, px(72), px(3), colAccent)
	strokeCircle(img, cx, cy, px(56), px(2), colAccent)
	for i := 0; i < 12; i++ {
		angle := float64(i) * math.Pi / 6
		radialTick(img, cx, cy, float64(px(58)), float64(px(70)), angle, px(2), colAccent)
	}
	face := newFace(fontBold, 48*cardScale)
	w := textWidth(face, "Y")
	drawText(img, face, cx-w/2, cy+px(17), colAccent, "Y")
}

// Member mark geometry (logical).
const (
	markX     = 70
	markY     = 596
	markCells = 11
	markCell  = 9
)

// drawMemberMark paints the decorative QR-like glyph: an 11x11 grid with
// three solid finder corners and the remaining cells driven by the
// deterministic pattern hasher, seeded by the pass id.
func drawMemberMark(img *image.RGBA, id string) {
	bits := PatternBits(id, markCells*markCells)

	for row := 0; row < markCells; row++ {
		for col := 0; col < markCells; col++ {
			on := bits[row*markCells+col]
			if markFinderCell(row, col) {
				on = true
			}
			if on {
				fillRect(img, px(markX+col*markCell), px(markY+row*markCell), px(markCell-1), px(markCell-1), colInk)
			}
		}
	}

	face := newFace(fontMono, 12*cardScale)
	drawText(img, face, px(markX), px(markY+markCells*markCell+18), colFaint, id)
}

// markFinderCell reports whether the cell belongs to one of the three 3x3
// finder corners (top-left, top-right, bottom-left).
func markFinderCell(row, col int) bool {
	top := row < 3
	bottom := row >= markCells-3
	left := col < 3
	right := col >= markCells-3
	return (top && left) || (top && right) || (bottom && left)
}

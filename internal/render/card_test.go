package render

import (
	"bytes"
	"image"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCardData() CardData {
	return CardData{
		ID:         "YARD-26-0A1B2C3D4E5F",
		Name:       "Ada Obi",
		Email:      "ada@example.com",
		Phone:      "+2348000000000",
		TitleLines: [2]string{"THE YARD", "ANGEL PASS"},
		Status:     "ANGEL OF THE YARD",
		YearJoined: 2026,
		CreatedAt:  time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC),
	}
}

func TestCard_Bounds(t *testing.T) {
	img := Card(testCardData(), false)
	b := img.Bounds()
	assert.Equal(t, CardWidth*cardScale, b.Dx())
	assert.Equal(t, CardHeight*cardScale, b.Dy())
}

func TestCard_Deterministic(t *testing.T) {
	// Live preview and export share this code path: identical input must
	// give pixel-identical output.
	data := testCardData()
	for _, locked := range []bool{true, false} {
		a := Card(data, locked)
		b := Card(data, locked)
		require.True(t, bytes.Equal(a.Pix, b.Pix), "locked=%v render not reproducible", locked)
	}
}

func TestCard_LockedHidesPersonalValues(t *testing.T) {
	// When locked, none of the personal values may reach the bitmap, so
	// two locked renders that differ only in those values must be
	// pixel-identical.
	a := testCardData()
	b := testCardData()
	b.Name = "Someone Else"
	b.Email = "other@example.net"
	b.Phone = "+4479000000000"
	b.CreatedAt = b.CreatedAt.AddDate(0, 2, 3)

	require.True(t, bytes.Equal(Card(a, true).Pix, Card(b, true).Pix))

	// The same two records render differently once unlocked.
	assert.False(t, bytes.Equal(Card(a, false).Pix, Card(b, false).Pix))
}

func TestCard_LockedAndUnlockedDiffer(t *testing.T) {
	data := testCardData()
	assert.False(t, bytes.Equal(Card(data, true).Pix, Card(data, false).Pix))
}

func TestCard_BadPhotoFallsBackToPlaceholder(t *testing.T) {
	broken := testCardData()
	broken.Photo = []byte("definitely not an image")

	plain := testCardData()

	// A decode failure must not abort the render, and the result must be
	// the same placeholder scene a photo-less card gets.
	require.True(t, bytes.Equal(Card(broken, false).Pix, Card(plain, false).Pix))
}

func TestCard_PhotoChangesFrame(t *testing.T) {
	withPhoto := testCardData()
	withPhoto.Photo = tinyPNG(t)

	assert.False(t, bytes.Equal(Card(withPhoto, false).Pix, Card(testCardData(), false).Pix))
}

func TestCard_MemberMarkFollowsID(t *testing.T) {
	a := testCardData()
	b := testCardData()
	b.ID = "YARD-26-FFFFFFFFFFFF"

	// Locked renders differ only through the id: member mark and id label.
	assert.False(t, bytes.Equal(Card(a, true).Pix, Card(b, true).Pix))
}

func TestCardPNG_RoundTrip(t *testing.T) {
	out, err := CardPNG(testCardData(), false)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, CardWidth*cardScale, img.Bounds().Dx())
	assert.Equal(t, CardHeight*cardScale, img.Bounds().Dy())
}

// tinyPNG returns a minimal valid PNG to exercise the photo path.
func tinyPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for i := range img.Pix {
		img.Pix[i] = byte(i * 31)
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

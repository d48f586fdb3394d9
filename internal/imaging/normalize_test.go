package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeDataURI(t *testing.T, dataURI string) image.Image {
	t.Helper()
	payload, ok := strings.CutPrefix(dataURI, "data:image/jpeg;base64,")
	require.True(t, ok, "unexpected data URI prefix: %.40s", dataURI)
	raw, err := base64.StdEncoding.DecodeString(payload)
	require.NoError(t, err)
	img, err := jpeg.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	return img
}

func TestNormalizeDownscalesToMaxWidth(t *testing.T) {
	out, err := Normalize(encodePNG(t, 1200, 900))
	require.NoError(t, err)

	img := decodeDataURI(t, out)
	assert.Equal(t, 600, img.Bounds().Dx())
	// round(900 * 600/1200)
	assert.Equal(t, 450, img.Bounds().Dy())
}

func TestNormalizeUpsamplesNarrowImages(t *testing.T) {
	out, err := Normalize(encodePNG(t, 300, 100))
	require.NoError(t, err)

	img := decodeDataURI(t, out)
	assert.Equal(t, 600, img.Bounds().Dx())
	// round(100 * 600/300)
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestNormalizeKeepsExactWidthUnchanged(t *testing.T) {
	out, err := Normalize(encodePNG(t, 600, 417))
	require.NoError(t, err)

	img := decodeDataURI(t, out)
	assert.Equal(t, 600, img.Bounds().Dx())
	assert.Equal(t, 417, img.Bounds().Dy())
}

func TestNormalizeRoundsHeight(t *testing.T) {
	// 600/700 * 333 = 285.43 -> 285
	out, err := Normalize(encodePNG(t, 700, 333))
	require.NoError(t, err)

	img := decodeDataURI(t, out)
	assert.Equal(t, 600, img.Bounds().Dx())
	assert.Equal(t, 285, img.Bounds().Dy())
}

func TestNormalizeRejectsUndecodableInput(t *testing.T) {
	_, err := Normalize([]byte("definitely not an image"))
	assert.Error(t, err)

	_, err = Normalize(nil)
	assert.Error(t, err)
}

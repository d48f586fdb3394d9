// Package imaging normalizes user-supplied photos into the embedded image
// strings stored on inventory records.
package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"math"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// MaxWidth is the fixed output width in pixels.
const MaxWidth = 600

// jpegQuality corresponds to the 0.7 quality factor of the stored format.
const jpegQuality = 70

// Normalize decodes fileBytes, scales the raster so its width is exactly
// MaxWidth (height scaled proportionally and rounded), and re-encodes it
// as a JPEG data URI. Sources narrower than MaxWidth are upsampled: the
// same formula applies unconditionally, which keeps the scaling
// branch-free. A decode failure is terminal; nothing is persisted in that
// case.
func Normalize(fileBytes []byte) (string, error) {
	src, _, err := image.Decode(bytes.NewReader(fileBytes))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := src.Bounds()
	scale := float64(MaxWidth) / float64(bounds.Dx())
	height := int(math.Round(float64(bounds.Dy()) * scale))

	dst := image.NewRGBA(image.Rect(0, 0, MaxWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

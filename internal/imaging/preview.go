package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// EncodePreview encodes an image as a base64 PNG for embedding in a JSON
// response. When rotate is true the image is first rotated 90 degrees
// counterclockwise, which presents axial slices in the conventional
// viewing orientation.
func EncodePreview(img image.Image, rotate bool) (string, error) {
	if rotate {
		img = imaging.Rotate90(img)
	}
	return EncodePNGBase64(img)
}

// EncodePNGBase64 returns the standard-alphabet base64 encoding of the
// image's PNG serialization.
func EncodePNGBase64(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode preview png: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

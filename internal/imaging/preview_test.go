package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func decodePreview(t *testing.T, s string) image.Image {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		t.Fatalf("base64 decode: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("png decode: %v", err)
	}
	return img
}

func grayAt(t *testing.T, img image.Image, x, y int) uint8 {
	t.Helper()
	return color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
}

func TestEncodePreview_RotatesCounterclockwise(t *testing.T) {
	img := createGray(t, 30, 20, 0)
	img.SetGray(29, 0, color.Gray{Y: 255})
	img.SetGray(0, 19, color.Gray{Y: 128})

	s, err := EncodePreview(img, true)
	if err != nil {
		t.Fatalf("EncodePreview() error = %v", err)
	}
	decoded := decodePreview(t, s)

	b := decoded.Bounds()
	if b.Dx() != 20 || b.Dy() != 30 {
		t.Fatalf("bounds = %dx%d, want 20x30 after rotation", b.Dx(), b.Dy())
	}
	// Top-right of the source lands top-left, bottom-left lands
	// bottom-right.
	if got := grayAt(t, decoded, 0, 0); got != 255 {
		t.Errorf("pixel (0,0) = %d, want 255", got)
	}
	if got := grayAt(t, decoded, 19, 29); got != 128 {
		t.Errorf("pixel (19,29) = %d, want 128", got)
	}
	if got := grayAt(t, decoded, 0, 29); got != 0 {
		t.Errorf("pixel (0,29) = %d, want 0", got)
	}
}

func TestEncodePreview_NoRotation(t *testing.T) {
	img := createGray(t, 30, 20, 0)
	img.SetGray(29, 0, color.Gray{Y: 255})

	s, err := EncodePreview(img, false)
	if err != nil {
		t.Fatalf("EncodePreview() error = %v", err)
	}
	decoded := decodePreview(t, s)

	b := decoded.Bounds()
	if b.Dx() != 30 || b.Dy() != 20 {
		t.Fatalf("bounds = %dx%d, want 30x20", b.Dx(), b.Dy())
	}
	if got := grayAt(t, decoded, 29, 0); got != 255 {
		t.Errorf("pixel (29,0) = %d, want 255", got)
	}
}

func TestEncodePNGBase64_RoundTrip(t *testing.T) {
	img := createGray(t, 3, 2, 0)
	for i := range img.Pix {
		img.Pix[i] = uint8(10 * (i + 1))
	}

	s, err := EncodePNGBase64(img)
	if err != nil {
		t.Fatalf("EncodePNGBase64() error = %v", err)
	}
	decoded := decodePreview(t, s)

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			want := img.GrayAt(x, y).Y
			if got := grayAt(t, decoded, x, y); got != want {
				t.Errorf("pixel (%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

func makePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeSize(t *testing.T, data []byte) (int, int) {
	t.Helper()
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	return cfg.Width, cfg.Height
}

func TestDownscale_ShrinksWideImage(t *testing.T) {
	src := makePNG(t, 400, 200)

	out, err := Downscale(src, 100)
	require.NoError(t, err)

	w, h := decodeSize(t, out)
	require.Equal(t, 100, w)
	require.Equal(t, 50, h)
}

func TestDownscale_KeepsSmallImageDimensions(t *testing.T) {
	src := makePNG(t, 80, 60)

	out, err := Downscale(src, 100)
	require.NoError(t, err)

	w, h := decodeSize(t, out)
	require.Equal(t, 80, w)
	require.Equal(t, 60, h)
}

func TestDownscale_RejectsGarbage(t *testing.T) {
	_, err := Downscale([]byte("definitely not an image"), 100)
	require.Error(t, err)
}

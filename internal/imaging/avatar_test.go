package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngOf(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, x%h, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func TestAvatar_ResizesToWebP(t *testing.T) {
	out, err := Avatar(pngOf(t, 1024, 600))
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 512, cfg.Width)
	assert.Equal(t, 300, cfg.Height)
}

func TestAvatar_KeepsSmallImages(t *testing.T) {
	out, err := Avatar(pngOf(t, 64, 128))
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Width)
	assert.Equal(t, 128, cfg.Height)
}

func TestAvatar_Rejects(t *testing.T) {
	_, err := Avatar(strings.NewReader("definitely not an image"))
	assert.ErrorIs(t, err, ErrUnsupportedImage)

	_, err = Avatar(bytes.NewReader(make([]byte, MaxAvatarBytes+1)))
	assert.ErrorIs(t, err, ErrImageTooLarge)
}

func TestFit_Portrait(t *testing.T) {
	got := Fit(image.NewRGBA(image.Rect(0, 0, 300, 1200)), 512)
	assert.Equal(t, 128, got.Bounds().Dx())
	assert.Equal(t, 512, got.Bounds().Dy())
}

package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

func TestImageProcessor_Normalize(t *testing.T) {
	p := NewImageProcessor(100)

	t.Run("small image untouched", func(t *testing.T) {
		data := encodePNG(t, 50, 40)
		out, err := p.Normalize(data, "png")
		require.NoError(t, err)
		assert.Equal(t, data, out)
	})

	t.Run("large image fit into box", func(t *testing.T) {
		out, err := p.Normalize(encodePNG(t, 400, 200), "png")
		require.NoError(t, err)

		cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, "png", format)
		assert.Equal(t, 100, cfg.Width)
		assert.Equal(t, 50, cfg.Height)
	})

	t.Run("gif skipped", func(t *testing.T) {
		data := []byte("GIF89a-not-really")
		out, err := p.Normalize(data, "gif")
		require.NoError(t, err)
		assert.Equal(t, data, out)
	})

	t.Run("garbage jpeg", func(t *testing.T) {
		_, err := p.Normalize([]byte("nope"), "jpeg")
		assert.Error(t, err)
	})
}

package imaging

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hiro-mackay/gc-profile/internal/domain/service"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestNormalize_DownscalesAndConvertsToJPEG(t *testing.T) {
	p := NewAvatarProcessor(64, 80)

	out, err := p.Normalize(encodePNG(t, 256, 128))
	require.NoError(t, err)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 64, cfg.Width)
	assert.Equal(t, 32, cfg.Height)
}

func TestNormalize_DoesNotUpscale(t *testing.T) {
	p := NewAvatarProcessor(512, 0)

	out, err := p.Normalize(encodePNG(t, 20, 30))
	require.NoError(t, err)

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Width)
	assert.Equal(t, 30, cfg.Height)
}

func TestNormalize_RejectsGarbage(t *testing.T) {
	_, err := NewAvatarProcessor(0, 0).Normalize([]byte("definitely not an image"))
	assert.ErrorIs(t, err, ErrUndecodableImage)
}

func TestFitWithin(t *testing.T) {
	tests := []struct {
		w, h, limit  int
		wantW, wantH int
	}{
		{100, 100, 512, 100, 100},
		{1024, 512, 512, 512, 256},
		{512, 1024, 512, 256, 512},
		{5000, 2, 512, 512, 1},
	}
	for _, tt := range tests {
		w, h := fitWithin(tt.w, tt.h, tt.limit)
		assert.Equal(t, tt.wantW, w)
		assert.Equal(t, tt.wantH, h)
	}
}

// withPNGDimensions はIHDRの幅と高さを書き換えたPNGを返します。画素データは元のままです。
func withPNGDimensions(t *testing.T, data []byte, w, h uint32) []byte {
	t.Helper()
	out := bytes.Clone(data)
	// 8バイトのシグネチャ、4バイトの長さ、"IHDR" の後に幅と高さが続く
	require.Equal(t, "IHDR", string(out[12:16]))
	binary.BigEndian.PutUint32(out[16:20], w)
	binary.BigEndian.PutUint32(out[20:24], h)
	binary.BigEndian.PutUint32(out[29:33], crc32.ChecksumIEEE(out[12:29]))
	return out
}

func TestNormalize_RejectsOversizedDimensions(t *testing.T) {
	data := withPNGDimensions(t, encodePNG(t, 1, 1), 12000, 12000)

	_, err := NewAvatarProcessor(0, 0).Normalize(data)
	assert.ErrorIs(t, err, service.ErrAvatarTooLarge)
}

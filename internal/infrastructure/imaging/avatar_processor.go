package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/Hiro-mackay/gc-profile/internal/domain/service"
)

const (
	DefaultMaxDimension = 512
	DefaultJPEGQuality  = 85

	// MaxSourcePixels は読み込みを許す元画像の画素数の上限です(16MP)
	MaxSourcePixels = 4096 * 4096
)

var (
	ErrUndecodableImage = errors.New("image could not be decoded")
)

// AvatarProcessor はアップロード画像を縮小してJPEGへ再エンコードします
type AvatarProcessor struct {
	maxDimension int
	quality      int
}

// NewAvatarProcessor は新しいAvatarProcessorを作成します
func NewAvatarProcessor(maxDimension, quality int) *AvatarProcessor {
	if maxDimension <= 0 {
		maxDimension = DefaultMaxDimension
	}
	if quality <= 0 || quality > 100 {
		quality = DefaultJPEGQuality
	}
	return &AvatarProcessor{maxDimension: maxDimension, quality: quality}
}

// Normalize はJPEG/PNG/WebPを読み込み、maxDimension四方に収まるよう縦横比を保って縮小し、
// JPEGとして返します。小さい画像は拡大しません。
func (p *AvatarProcessor) Normalize(data []byte) ([]byte, error) {
	// ヘッダーだけを読んで画素数を確認してから全体をデコードする
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUndecodableImage, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > MaxSourcePixels {
		return nil, fmt.Errorf("%w: %dx%d", service.ErrAvatarTooLarge, cfg.Width, cfg.Height)
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUndecodableImage, err)
	}

	bounds := src.Bounds()
	w, h := fitWithin(bounds.Dx(), bounds.Dy(), p.maxDimension)

	// JPEGは透過を持たないため白背景に合成する
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: p.quality}); err != nil {
		return nil, fmt.Errorf("failed to encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// fitWithin は縦横比を保ったままlimit四方に収まるサイズを返します
func fitWithin(w, h, limit int) (int, int) {
	if w <= limit && h <= limit {
		return w, h
	}
	if w >= h {
		return limit, max(h*limit/w, 1)
	}
	return max(w*limit/h, 1), limit
}

var _ service.AvatarProcessor = (*AvatarProcessor)(nil)

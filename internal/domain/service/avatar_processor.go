package service

import "errors"

// ErrAvatarTooLarge は画像の縦横サイズが上限を超えていることを示します
var ErrAvatarTooLarge = errors.New("image dimensions are too large")

// AvatarProcessor はアップロードされた画像をアバター用JPEGに変換します
type AvatarProcessor interface {
	// Normalize は縦横サイズが上限を超える画像をErrAvatarTooLargeで拒否します
	Normalize(data []byte) ([]byte, error)
}

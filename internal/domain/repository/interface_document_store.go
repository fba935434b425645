package repository

import (
	"context"
)

// DocumentStore GeoJSONドキュメントの読み書きを行うストア
// 読み込みで対象が存在しない場合は model.ErrInputNotFound、
// 書き込み失敗は model.ErrOutputUnwritable をラップして返す
type DocumentStore interface {
	Read(ctx context.Context, path string) ([]byte, error)
	Write(ctx context.Context, path string, data []byte) error
}

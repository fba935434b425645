package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"GridAgg-App/internal/domain/model"
	"GridAgg-App/internal/domain/repository"
)

// FileDocumentStore ローカルファイルシステム上のドキュメントストア
type FileDocumentStore struct{}

// NewFileDocumentStore 新しいFileDocumentStoreを作成
func NewFileDocumentStore() repository.DocumentStore {
	return &FileDocumentStore{}
}

func (s *FileDocumentStore) Read(ctx context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", model.ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", model.ErrInputUnreadable, err)
	}
	return data, nil
}

// Write 同じディレクトリの一時ファイルに書き出してからリネームする
// 失敗時に中途半端な出力を残さない
func (s *FileDocumentStore) Write(ctx context.Context, path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".gridagg-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrOutputUnwritable, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", model.ErrOutputUnwritable, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", model.ErrOutputUnwritable, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", model.ErrOutputUnwritable, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", model.ErrOutputUnwritable, err)
	}

	return nil
}

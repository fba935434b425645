package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	storage_go "github.com/supabase-community/storage-go"

	"GridAgg-App/internal/database"
	"GridAgg-App/internal/domain/model"
	"GridAgg-App/internal/domain/repository"
)

const geoJSONContentType = "application/geo+json"

// SupabaseDocumentStore Supabase Storage のバケットにドキュメントを保存するストア
type SupabaseDocumentStore struct {
	client *database.SupabaseClient
	bucket string
}

// NewSupabaseDocumentStore 新しいSupabaseDocumentStoreを作成
func NewSupabaseDocumentStore(client *database.SupabaseClient, bucket string) repository.DocumentStore {
	return &SupabaseDocumentStore{
		client: client,
		bucket: bucket,
	}
}

func (s *SupabaseDocumentStore) Read(ctx context.Context, path string) ([]byte, error) {
	data, err := s.client.GetClient().Storage.DownloadFile(s.bucket, path)
	if err != nil {
		if isStorageNotFound(err) {
			return nil, fmt.Errorf("%w: %s/%s", model.ErrInputNotFound, s.bucket, path)
		}
		return nil, fmt.Errorf("%w: %v", model.ErrInputUnreadable, err)
	}
	return data, nil
}

func (s *SupabaseDocumentStore) Write(ctx context.Context, path string, data []byte) error {
	contentType := geoJSONContentType
	upsert := true

	_, err := s.client.GetClient().Storage.UploadFile(s.bucket, path, bytes.NewReader(data), storage_go.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrOutputUnwritable, err)
	}
	return nil
}

// Storage API は404を statusCode 文字列やメッセージで返すことがある
func isStorageNotFound(err error) bool {
	var storageErr *storage_go.StorageError
	if !errors.As(err, &storageErr) {
		return false
	}
	return storageErr.Status == http.StatusNotFound ||
		strings.Contains(strings.ToLower(storageErr.Message), "not found")
}

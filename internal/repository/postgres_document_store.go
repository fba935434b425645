package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"GridAgg-App/internal/domain/model"
	"GridAgg-App/internal/domain/repository"
	"GridAgg-App/internal/infrastructure/database"
)

// undefined_table
const pqUndefinedTable pq.ErrorCode = "42P01"

const createDocumentsTableSQL = `
CREATE TABLE IF NOT EXISTS geo_documents (
	path       TEXT PRIMARY KEY,
	body       TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PostgresDocumentStore geo_documents テーブルにドキュメントを保存するストア
// path 列をキーとして本文をテキストで保持する
type PostgresDocumentStore struct {
	client *database.PostgreSQLClient
}

// NewPostgresDocumentStore 新しいPostgresDocumentStoreを作成
func NewPostgresDocumentStore(client *database.PostgreSQLClient) repository.DocumentStore {
	return &PostgresDocumentStore{
		client: client,
	}
}

// EnsureSchema geo_documents テーブルがなければ作成する
func (s *PostgresDocumentStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.client.DB.ExecContext(ctx, createDocumentsTableSQL); err != nil {
		return fmt.Errorf("geo_documents テーブルの作成に失敗: %w", err)
	}
	return nil
}

func (s *PostgresDocumentStore) Read(ctx context.Context, path string) ([]byte, error) {
	var body string
	err := s.client.DB.QueryRowContext(ctx,
		`SELECT body FROM geo_documents WHERE path = $1`, path,
	).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isUndefinedTable(err) {
			return nil, fmt.Errorf("%w: %s", model.ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", model.ErrInputUnreadable, err)
	}
	return []byte(body), nil
}

func (s *PostgresDocumentStore) Write(ctx context.Context, path string, data []byte) error {
	if err := s.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("%w: %v", model.ErrOutputUnwritable, err)
	}

	_, err := s.client.DB.ExecContext(ctx, `
		INSERT INTO geo_documents (path, body, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (path) DO UPDATE SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at`,
		path, string(data),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrOutputUnwritable, err)
	}
	return nil
}

func isUndefinedTable(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUndefinedTable
}

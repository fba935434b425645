package repository

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"GridAgg-App/internal/domain/model"
	"GridAgg-App/internal/domain/repository"
)

// geoDocument Firestoreに保存するドキュメント
// Firestoreのドキュメントサイズ上限（1MiB）を超える入力は書き込めない
type geoDocument struct {
	Path      string    `firestore:"path"`
	Body      string    `firestore:"body"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

// FirestoreDocumentStore Firestoreコレクションにドキュメントを保存するストア
type FirestoreDocumentStore struct {
	client     *firestore.Client
	collection string
}

// NewFirestoreDocumentStore 新しいFirestoreDocumentStoreを作成
func NewFirestoreDocumentStore(client *firestore.Client, collection string) repository.DocumentStore {
	return &FirestoreDocumentStore{
		client:     client,
		collection: collection,
	}
}

// documentID パスの "/" はドキュメントIDに使えないためエスケープする
func documentID(path string) string {
	return url.QueryEscape(path)
}

func (s *FirestoreDocumentStore) Read(ctx context.Context, path string) ([]byte, error) {
	snap, err := s.client.Collection(s.collection).Doc(documentID(path)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("%w: %s/%s", model.ErrInputNotFound, s.collection, path)
		}
		return nil, fmt.Errorf("%w: %v", model.ErrInputUnreadable, err)
	}

	var doc geoDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInputUnreadable, err)
	}
	return []byte(doc.Body), nil
}

func (s *FirestoreDocumentStore) Write(ctx context.Context, path string, data []byte) error {
	doc := geoDocument{
		Path:      path,
		Body:      string(data),
		UpdatedAt: time.Now(),
	}
	if _, err := s.client.Collection(s.collection).Doc(documentID(path)).Set(ctx, doc); err != nil {
		return fmt.Errorf("%w: %v", model.ErrOutputUnwritable, err)
	}
	return nil
}

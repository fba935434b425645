package repository

import (
	"context"
	"fmt"

	"GridAgg-App/internal/config"
	"GridAgg-App/internal/database"
	"GridAgg-App/internal/domain/repository"
	infraDB "GridAgg-App/internal/infrastructure/database"
	"GridAgg-App/internal/infrastructure/firestore"
)

// NewDocumentStore 設定に応じたドキュメントストアを作成する
// 戻り値の close は接続を持つストアの後始末に使う
func NewDocumentStore(ctx context.Context, cfg config.StoreConfig) (repository.DocumentStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Driver {
	case config.StoreDriverFile, "":
		return NewFileDocumentStore(), noop, nil

	case config.StoreDriverPostgres:
		client, err := infraDB.NewPostgreSQLClient(cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		return NewPostgresDocumentStore(client), client.Close, nil

	case config.StoreDriverSupabase:
		client, err := database.NewSupabaseClient(cfg.SupabaseURL, cfg.SupabaseKey)
		if err != nil {
			return nil, nil, err
		}
		if err := client.HealthCheck(); err != nil {
			return nil, nil, err
		}
		return NewSupabaseDocumentStore(client, cfg.SupabaseBucket), noop, nil

	case config.StoreDriverFirestore:
		client, err := firestore.NewFirestoreClient(ctx, cfg.FirestoreProject)
		if err != nil {
			return nil, nil, err
		}
		return NewFirestoreDocumentStore(client.GetClient(), cfg.FirestoreCollection), client.Close, nil

	default:
		return nil, nil, fmt.Errorf("不明なドキュメントストア: %q", cfg.Driver)
	}
}

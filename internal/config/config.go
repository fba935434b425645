package config

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"GridAgg-App/internal/domain/model"
)

// ドキュメントストアの種類
const (
	StoreDriverFile      = "file"
	StoreDriverPostgres  = "postgres"
	StoreDriverSupabase  = "supabase"
	StoreDriverFirestore = "firestore"
)

// Config アプリケーション設定
type Config struct {
	InputPath      string       `mapstructure:"input_path"`
	OutputPath     string       `mapstructure:"output_path"`
	CollectionName string       `mapstructure:"collection_name"`
	Log            LogConfig    `mapstructure:"log"`
	Store          StoreConfig  `mapstructure:"store"`
	Server         ServerConfig `mapstructure:"server"`
}

// LogConfig ログ設定
type LogConfig struct {
	Debug bool `mapstructure:"debug"`
}

// StoreConfig ドキュメントストア設定
type StoreConfig struct {
	Driver              string `mapstructure:"driver"`
	PostgresDSN         string `mapstructure:"postgres_dsn"`
	SupabaseURL         string `mapstructure:"supabase_url"`
	SupabaseKey         string `mapstructure:"supabase_key"`
	SupabaseBucket      string `mapstructure:"supabase_bucket"`
	FirestoreProject    string `mapstructure:"firestore_project"`
	FirestoreCollection string `mapstructure:"firestore_collection"`
}

// ServerConfig HTTPサーバー設定
type ServerConfig struct {
	Port    int    `mapstructure:"port"`
	GinMode string `mapstructure:"gin_mode"`
}

// Load .env・設定ファイル・環境変数（GRIDAGG_ プレフィックス）から設定を読み込む
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env がない環境（CI・コンテナ等）では環境変数のみを使う。警告は標準エラーへ
		log.Println("Warning: .env file not found, using system environment variables")
	}

	v := viper.New()
	v.SetConfigName("gridagg")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	return LoadWithViper(v)
}

// LoadWithViper 指定したviperインスタンスにデフォルト値と環境変数を設定して読み込む
func LoadWithViper(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	v.SetEnvPrefix("GRIDAGG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// 設定ファイルがなくてもデフォルト値で動作する
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("設定ファイルの読み込みに失敗: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("設定のアンマーシャルに失敗: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("input_path", model.DefaultInputPath)
	v.SetDefault("output_path", model.DefaultOutputPath)
	v.SetDefault("collection_name", model.DefaultCollectionName)
	v.SetDefault("log.debug", false)
	v.SetDefault("store.driver", StoreDriverFile)
	v.SetDefault("store.postgres_dsn", "")
	v.SetDefault("store.supabase_url", "")
	v.SetDefault("store.supabase_key", "")
	v.SetDefault("store.supabase_bucket", "geojson")
	v.SetDefault("store.firestore_project", "")
	v.SetDefault("store.firestore_collection", "geoDocuments")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.gin_mode", "release")
}

// Validate ストア種別ごとの必須設定を確認する
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("input_path が空です")
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output_path が空です")
	}

	switch c.Store.Driver {
	case StoreDriverFile:
	case StoreDriverPostgres:
		if c.Store.PostgresDSN == "" {
			return fmt.Errorf("store.driver=postgres には store.postgres_dsn が必要です")
		}
	case StoreDriverSupabase:
		if c.Store.SupabaseURL == "" || c.Store.SupabaseKey == "" {
			return fmt.Errorf("store.driver=supabase には store.supabase_url と store.supabase_key が必要です")
		}
	case StoreDriverFirestore:
		if c.Store.FirestoreProject == "" {
			return fmt.Errorf("store.driver=firestore には store.firestore_project が必要です")
		}
	default:
		return fmt.Errorf("不明な store.driver: %q", c.Store.Driver)
	}

	return nil
}

// GetServerAddr ":port" 形式のアドレスを返す
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

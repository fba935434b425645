// Package logger zapによる共通ロガー
package logger

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

var (
	mu         sync.Mutex
	baseLogger *zap.Logger
	sugared    *zap.SugaredLogger
)

// Init パッケージレベルのロガーを初期化する
// debug=true の場合は開発用設定（コンソール形式・Debugレベル）を使う
func Init(debug bool) error {
	var zapLogger *zap.Logger
	var err error

	if debug {
		zapLogger, err = zap.NewDevelopment(zap.AddCallerSkip(1))
	} else {
		zapLogger, err = zap.NewProduction(zap.AddCallerSkip(1))
	}
	if err != nil {
		return fmt.Errorf("zapロガーの初期化に失敗: %w", err)
	}

	SetLogger(zapLogger)
	return nil
}

// SetLogger 任意のzapロガーを差し込む（テストでは zap.NewNop を使う）
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	baseLogger = l
	sugared = l.Sugar()
}

// GetZapLogger ベースのzapロガーを取得（未初期化ならProduction設定で作成し、失敗時はNop）
func GetZapLogger() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	if baseLogger == nil {
		l, err := zap.NewProduction(zap.AddCallerSkip(1))
		if err != nil {
			l = zap.NewNop()
		}
		baseLogger = l
		sugared = baseLogger.Sugar()
	}
	return baseLogger
}

// GetSugaredLogger SugaredLoggerを取得
func GetSugaredLogger() *zap.SugaredLogger {
	GetZapLogger()
	mu.Lock()
	defer mu.Unlock()
	return sugared
}

// Sync バッファされたログを書き出す
func Sync() {
	mu.Lock()
	defer mu.Unlock()
	if sugared != nil {
		_ = sugared.Sync()
	}
}

// Debugw Debugレベルで構造化ログを出力
func Debugw(msg string, keysAndValues ...interface{}) {
	GetSugaredLogger().Debugw(msg, keysAndValues...)
}

// Infow Infoレベルで構造化ログを出力
func Infow(msg string, keysAndValues ...interface{}) {
	GetSugaredLogger().Infow(msg, keysAndValues...)
}

// Warnw Warnレベルで構造化ログを出力
func Warnw(msg string, keysAndValues ...interface{}) {
	GetSugaredLogger().Warnw(msg, keysAndValues...)
}

// Errorw Errorレベルで構造化ログを出力
func Errorw(msg string, keysAndValues ...interface{}) {
	GetSugaredLogger().Errorw(msg, keysAndValues...)
}

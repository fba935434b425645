package model

import "errors"

// パイプラインのエラー種別（errors.Is で判定する）
var (
	ErrInputNotFound      = errors.New("入力ドキュメントが見つかりません")
	ErrInputUnreadable    = errors.New("入力ドキュメントを解析できません")
	ErrMalformedFeature   = errors.New("フィーチャーのポリゴンが不正です")
	ErrDegenerateGridSpec = errors.New("セルサイズが0です（全境界ボックスが縮退）")
	ErrOutputUnwritable   = errors.New("出力先に書き込めません")
	ErrNoNumericValues    = errors.New("指定フィールドに数値がありません")
)

package model

import "fmt"

// ValueKind 属性値の種別
type ValueKind int

const (
	KindNull ValueKind = iota
	KindBool
	KindNumber
	KindString
	KindOther // オブジェクト・配列など
)

// Value GeoJSON properties の値を表すタグ付きユニオン
type Value struct {
	Kind ValueKind
	num  float64
	str  string
	b    bool
}

// NullValue null値を作成
func NullValue() Value { return Value{Kind: KindNull} }

// NumberValue 数値を作成
func NumberValue(n float64) Value { return Value{Kind: KindNumber, num: n} }

// StringValue 文字列を作成
func StringValue(s string) Value { return Value{Kind: KindString, str: s} }

// BoolValue 真偽値を作成
func BoolValue(b bool) Value { return Value{Kind: KindBool, b: b} }

// OtherValue 集約対象外の値（オブジェクト・配列）を作成
func OtherValue() Value { return Value{Kind: KindOther} }

// ValueOf encoding/json でデコードした値を Value に変換する
func ValueOf(raw interface{}) Value {
	switch v := raw.(type) {
	case nil:
		return NullValue()
	case bool:
		return BoolValue(v)
	case float64:
		return NumberValue(v)
	case string:
		return StringValue(v)
	default:
		return OtherValue()
	}
}

// IsNumeric 数値かどうか（真偽値は数値として扱わない）
func (v Value) IsNumeric() bool {
	return v.Kind == KindNumber
}

// Number 数値を取得（数値でない場合は ok=false）
func (v Value) Number() (float64, bool) {
	if v.Kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

func (v Value) String() string {
	switch v.Kind {
	case KindNull:
		return "null"
	case KindBool:
		return fmt.Sprintf("%t", v.b)
	case KindNumber:
		return fmt.Sprintf("%g", v.num)
	case KindString:
		return v.str
	default:
		return "<other>"
	}
}

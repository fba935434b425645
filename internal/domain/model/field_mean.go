package model

import (
	"bytes"
	"encoding/json"
)

// FieldMean 集約後の数値フィールドの平均値
// 整数値でも JSON では "25.0" のように小数部を付けて出力する
type FieldMean float64

// MarshalJSON 小数点または指数部を必ず含む数値表現を返す
func (m FieldMean) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(float64(m))
	if err != nil {
		return nil, err
	}
	if !bytes.ContainsAny(data, ".eE") {
		data = append(data, '.', '0')
	}
	return data, nil
}

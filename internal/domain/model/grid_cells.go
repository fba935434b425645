package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb"
)

// ParentCellKey 親セル（細セル2×2）のグリッド座標
type ParentCellKey struct {
	Col int `json:"parent_col"`
	Row int `json:"parent_row"`
}

// ZoneID "<col>_<row>" 形式のゾーンID
func (k ParentCellKey) ZoneID() string {
	return fmt.Sprintf("%d_%d", k.Col, k.Row)
}

// ParentGroup 同じ親セルに属するフィーチャー（出現順）
type ParentGroup struct {
	Key     ParentCellKey
	Members []Feature
}

// Property 出力プロパティの1エントリ
type Property struct {
	Key   string
	Value interface{}
}

// OrderedProperties キー順を保持する出力プロパティ
type OrderedProperties []Property

// Get キーに対応する値を取得
func (p OrderedProperties) Get(key string) (interface{}, bool) {
	for _, prop := range p {
		if prop.Key == key {
			return prop.Value, true
		}
	}
	return nil, false
}

// Keys キー一覧を挿入順で取得
func (p OrderedProperties) Keys() []string {
	keys := make([]string, 0, len(p))
	for _, prop := range p {
		keys = append(keys, prop.Key)
	}
	return keys
}

// MarshalJSON 挿入順のままJSONオブジェクトへ変換する
func (p OrderedProperties) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, prop := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalNoEscape(prop.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := marshalNoEscape(prop.Value)
		if err != nil {
			return nil, fmt.Errorf("プロパティ %q のJSONマーシャル失敗: %w", prop.Key, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshalNoEscape(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// OutputFeature 集約後の親セル
type OutputFeature struct {
	Properties OrderedProperties
	Geometry   orb.Polygon
}

// ZoneID 出力フィーチャーのゾーンID
func (f *OutputFeature) ZoneID() string {
	if v, ok := f.Properties.Get(PropZoneID); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// SourceCells 集約元セル数
func (f *OutputFeature) SourceCells() int {
	if v, ok := f.Properties.Get(PropSourceCells); ok {
		if n, ok := v.(int); ok {
			return n
		}
	}
	return 0
}

// AggregationResult パイプライン1回分の結果
type AggregationResult struct {
	Grid       GridSpec
	Features   []OutputFeature
	InputCount int
}

// RunSummary バッチ実行1回分の結果概要
type RunSummary struct {
	RunID      string   `json:"run_id"`
	InputPath  string   `json:"input_path"`
	OutputPath string   `json:"output_path"`
	InputCount int      `json:"input_count"`
	CellCount  int      `json:"cell_count"`
	Grid       GridSpec `json:"grid"`
}

// String 標準出力に表示する1行サマリー
func (s *RunSummary) String() string {
	return fmt.Sprintf("Generated %d cells -> %s", s.CellCount, s.OutputPath)
}

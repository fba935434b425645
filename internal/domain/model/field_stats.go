package model

// ClassColors 4階級の塗り分け色（低い順）
var ClassColors = [4]string{"#f7fbff", "#c6dbef", "#6baed6", "#2171b5"}

// ClassBreak 凡例の1階級。Upper が nil の場合は上限なし
type ClassBreak struct {
	Lower float64  `json:"lower"`
	Upper *float64 `json:"upper,omitempty"`
	Color string   `json:"color"`
}

// FieldStats 1フィールド分の分布（最小・最大・四分位）と凡例
type FieldStats struct {
	Field   string       `json:"field"`
	Count   int          `json:"count"`
	Min     float64      `json:"min"`
	Max     float64      `json:"max"`
	Q1      float64      `json:"q1"`
	Q2      float64      `json:"q2"`
	Q3      float64      `json:"q3"`
	Classes []ClassBreak `json:"classes"`
}

// ClassIndex 値が属する階級（0-3）。q1, q2, q3 を下限とする段階区分
func (s *FieldStats) ClassIndex(v float64) int {
	switch {
	case v >= s.Q3:
		return 3
	case v >= s.Q2:
		return 2
	case v >= s.Q1:
		return 1
	default:
		return 0
	}
}

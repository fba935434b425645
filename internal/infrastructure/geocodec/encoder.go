package geocodec

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb/geojson"

	"GridAgg-App/internal/domain/model"
)

// 出力のキー順: type, name, features
type outputCollectionDoc struct {
	Type     string             `json:"type"`
	Name     string             `json:"name"`
	Features []outputFeatureDoc `json:"features"`
}

type outputFeatureDoc struct {
	Type       string                  `json:"type"`
	Properties model.OrderedProperties `json:"properties"`
	Geometry   *geojson.Geometry       `json:"geometry"`
}

// EncodeFeatureCollection 集約結果をコンパクトなGeoJSONに変換する
// 非ASCII文字はエスケープせず、末尾に改行を付けない
func EncodeFeatureCollection(name string, features []model.OutputFeature) ([]byte, error) {
	doc := outputCollectionDoc{
		Type:     "FeatureCollection",
		Name:     name,
		Features: make([]outputFeatureDoc, 0, len(features)),
	}
	for _, f := range features {
		doc.Features = append(doc.Features, outputFeatureDoc{
			Type:       "Feature",
			Properties: f.Properties,
			Geometry:   geojson.NewGeometry(f.Geometry),
		})
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("FeatureCollectionのJSONマーシャル失敗: %w", err)
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

package geocodec

import (
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"GridAgg-App/internal/domain/model"
)

type featureCollectionDoc struct {
	Type     string            `json:"type"`
	Features []json.RawMessage `json:"features"`
}

// 入力フィーチャーは "type":"Feature" を省略していてもよい
type featureDoc struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   *geojson.Geometry      `json:"geometry"`
}

// DecodeFeatureCollection GeoJSON FeatureCollection を読み込み、フィーチャー一覧に変換する
func DecodeFeatureCollection(data []byte) ([]model.Feature, error) {
	var doc featureCollectionDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInputUnreadable, err)
	}
	if doc.Features == nil {
		return nil, fmt.Errorf("%w: features メンバーがありません", model.ErrInputUnreadable)
	}

	features := make([]model.Feature, 0, len(doc.Features))
	for i, raw := range doc.Features {
		feature, err := decodeFeature(raw)
		if err != nil {
			return nil, fmt.Errorf("フィーチャー #%d: %w", i, err)
		}
		features = append(features, feature)
	}

	return features, nil
}

func decodeFeature(raw json.RawMessage) (model.Feature, error) {
	var doc featureDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return model.Feature{}, fmt.Errorf("%w: %v", model.ErrMalformedFeature, err)
	}
	if doc.Type != "" && doc.Type != "Feature" {
		return model.Feature{}, fmt.Errorf("%w: type=%s", model.ErrMalformedFeature, doc.Type)
	}
	if doc.Geometry == nil || doc.Geometry.Coordinates == nil {
		return model.Feature{}, fmt.Errorf("%w: geometry がありません", model.ErrMalformedFeature)
	}

	polygon, ok := doc.Geometry.Coordinates.(orb.Polygon)
	if !ok {
		return model.Feature{}, fmt.Errorf("%w: Polygon ではありません (type=%s)", model.ErrMalformedFeature, doc.Geometry.Type)
	}

	props := make(map[string]model.Value, len(doc.Properties))
	for key, value := range doc.Properties {
		props[key] = model.ValueOf(value)
	}

	return model.Feature{
		Properties: props,
		Geometry:   polygon,
	}, nil
}

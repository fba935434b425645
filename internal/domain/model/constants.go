package model

// 出力プロパティのキー
const (
	PropZoneID      = "zone_id"
	PropSourceCells = "source_cells"
)

// 親セル1辺あたりの細セル数
const ParentCellSpan = 2

// DefaultCollectionName 出力FeatureCollectionの name メンバー
const DefaultCollectionName = "Index_5km"

// デフォルトの入出力パス
const (
	DefaultInputPath  = "data/Index.geojson"
	DefaultOutputPath = "data/Index_5km.geojson"
)

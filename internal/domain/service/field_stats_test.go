package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GridAgg-App/internal/domain/model"
)

func fieldFeatures(field string, values ...model.Value) []model.Feature {
	features := make([]model.Feature, 0, len(values))
	for _, v := range values {
		features = append(features, model.Feature{Properties: map[string]model.Value{field: v}})
	}
	return features
}

func TestComputeFieldStats(t *testing.T) {
	features := fieldFeatures("Index ZOZh",
		model.NumberValue(40),
		model.NumberValue(10),
		model.StringValue("n/a"),
		model.NumberValue(30),
		model.BoolValue(true),
		model.NullValue(),
		model.NumberValue(20),
	)
	features = append(features, model.Feature{Properties: map[string]model.Value{}})

	stats, err := ComputeFieldStats(features, "Index ZOZh")
	require.NoError(t, err)

	assert.Equal(t, "Index ZOZh", stats.Field)
	assert.Equal(t, 4, stats.Count)
	assert.Equal(t, 10.0, stats.Min)
	assert.Equal(t, 40.0, stats.Max)
	// sorted[floor(n*p)]: n=4 -> 添字 1, 2, 3
	assert.Equal(t, 20.0, stats.Q1)
	assert.Equal(t, 30.0, stats.Q2)
	assert.Equal(t, 40.0, stats.Q3)

	require.Len(t, stats.Classes, 4)
	assert.Equal(t, 10.0, stats.Classes[0].Lower)
	require.NotNil(t, stats.Classes[0].Upper)
	assert.Equal(t, 20.0, *stats.Classes[0].Upper)
	assert.Equal(t, 40.0, stats.Classes[3].Lower)
	assert.Nil(t, stats.Classes[3].Upper)
	for i, c := range stats.Classes {
		assert.Equal(t, model.ClassColors[i], c.Color)
	}
}

func TestComputeFieldStats_ClassIndex(t *testing.T) {
	features := fieldFeatures("norm_n",
		model.NumberValue(1), model.NumberValue(2), model.NumberValue(3),
		model.NumberValue(4), model.NumberValue(5), model.NumberValue(6),
		model.NumberValue(7), model.NumberValue(8),
	)

	stats, err := ComputeFieldStats(features, "norm_n")
	require.NoError(t, err)
	assert.Equal(t, 3.0, stats.Q1)
	assert.Equal(t, 5.0, stats.Q2)
	assert.Equal(t, 7.0, stats.Q3)

	assert.Equal(t, 0, stats.ClassIndex(2.99))
	assert.Equal(t, 1, stats.ClassIndex(3))
	assert.Equal(t, 2, stats.ClassIndex(6))
	assert.Equal(t, 3, stats.ClassIndex(8))
}

func TestComputeFieldStats_NoNumericValues(t *testing.T) {
	features := fieldFeatures("pop", model.StringValue("x"), model.NullValue())

	_, err := ComputeFieldStats(features, "pop")
	assert.True(t, errors.Is(err, model.ErrNoNumericValues))

	_, err = ComputeFieldStats(nil, "pop")
	assert.True(t, errors.Is(err, model.ErrNoNumericValues))
}

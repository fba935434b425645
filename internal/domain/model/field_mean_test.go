package model

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldMean_MarshalJSON(t *testing.T) {
	tests := []struct {
		in   FieldMean
		want string
	}{
		{25, "25.0"},
		{0, "0.0"},
		{-3, "-3.0"},
		{2.5, "2.5"},
		{0.1, "0.1"},
		{1e21, "1e+21"},
		{1.5e-7, "1.5e-7"},
	}

	for _, tt := range tests {
		data, err := json.Marshal(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, string(data))
	}
}

func TestFieldMean_MarshalJSON_NaN(t *testing.T) {
	_, err := json.Marshal(FieldMean(math.NaN()))
	assert.Error(t, err)
}

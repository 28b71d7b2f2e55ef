package jsonio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaede-rail/railtopo/jsonio"
	"github.com/kaede-rail/railtopo/pipeline"
)

func TestMarshalWireShape(t *testing.T) {
	records := []pipeline.NextStaInfo{
		{StationCode: 100, Left: nil, Right: []int{200}},
		{StationCode: 200, Left: []int{100}, Right: []int{300}},
	}

	data, err := jsonio.Marshal(records)
	require.NoError(t, err)

	expected := `[{"stationCode":100,"left":[],"right":[{"stationCode":200}]},` +
		`{"stationCode":200,"left":[{"stationCode":100}],"right":[{"stationCode":300}]}]`
	assert.JSONEq(t, expected, string(data))
}

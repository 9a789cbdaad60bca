package point

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func TestJSON_TwoD(t *testing.T) {
	data, err := JSON(New(1.4, 2.6, 3.5), true)
	require.NoError(t, err)
	assert.JSONEq(t, `{"x": 1, "y": 3}`, string(data))
}

func TestJSON_ThreeD(t *testing.T) {
	data, err := JSON(New(1.4, 2.6, 3.5), false)
	require.NoError(t, err)
	assert.JSONEq(t, `{"x": 1, "y": 3, "z": 4}`, string(data))
}

func TestJSON_Deterministic(t *testing.T) {
	p := New(1, 2, 3)
	first, err := JSON(p, false)
	require.NoError(t, err)
	second, err := JSON(p, false)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestYAML_TwoD(t *testing.T) {
	data, err := YAML(New(1.4, 2.6, 3.5), true)
	require.NoError(t, err)

	var got map[string]int
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, map[string]int{"x": 1, "y": 3}, got)
}

func TestYAML_ThreeD(t *testing.T) {
	data, err := YAML(New(1.4, 2.6, 3.5), false)
	require.NoError(t, err)

	var got map[string]int
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, map[string]int{"x": 1, "y": 3, "z": 4}, got)
}

func TestJSON_ForeignCoords(t *testing.T) {
	data, err := JSON(coordPair{x: 0.5, y: 1.5}, true)
	require.NoError(t, err)
	assert.JSONEq(t, `{"x": 1, "y": 2}`, string(data))
}

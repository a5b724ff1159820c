package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/mysterymachine/internal/rng"
)

func TestNamePoolNoRepeatsUntilRefill(t *testing.T) {
	pool := NewNamePool()
	src := rng.New(7)
	size := pool.Len()
	require.Equal(t, 28, size)

	seen := make(map[string]bool, size)
	for i := 0; i < size; i++ {
		name := pool.Take(src)
		assert.False(t, seen[name], "name %q returned twice", name)
		seen[name] = true
	}
	assert.Zero(t, pool.Len())

	pool.Take(src)
	assert.Equal(t, size-1, pool.Len(), "an empty pool refills from the roster")
}

func TestNamePoolJSON(t *testing.T) {
	pool := &NamePool{names: []string{"Dusk", "Luna"}}

	b, err := json.Marshal(pool)
	require.NoError(t, err)
	assert.JSONEq(t, `["Dusk","Luna"]`, string(b))

	var decoded NamePool
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, []string{"Dusk", "Luna"}, decoded.Remaining())
}

func TestNamePoolEmptyEncodesAsArray(t *testing.T) {
	b, err := json.Marshal(&NamePool{})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}

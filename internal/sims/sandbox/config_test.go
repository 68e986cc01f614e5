package sandbox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMapOverridesAndIgnoresGarbage(t *testing.T) {
	c := FromMap(map[string]string{
		"chunk_size": "8",
		"chunks_x":   "-3",
		"chunks_y":   "nope",
		"seed":       "99",
		"material":   "sand",
		"terrain":    "false",
		"spouts":     "4, 10:3, x:2, 12:0",
	})
	def := DefaultConfig()

	assert.Equal(t, 8, c.ChunkSize)
	assert.Equal(t, def.ChunksX, c.ChunksX)
	assert.Equal(t, def.ChunksY, c.ChunksY)
	assert.Equal(t, int64(99), c.Seed)
	assert.False(t, c.Terrain.Enabled)
	assert.Equal(t, []Spout{{X: 4, Every: 1}, {X: 10, Every: 3}, {X: 12, Every: 1}}, c.Spouts)
}

func TestFromMapNil(t *testing.T) {
	assert.Equal(t, DefaultConfig(), FromMap(nil))
}

func TestLoadFileLayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sand.yaml")
	data := []byte(`
chunk_size: 8
chunks_x: 3
seed: 5
terrain:
  enabled: false
spouts:
  - x: 2
    every: 4
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)

	def := DefaultConfig()
	assert.Equal(t, 8, c.ChunkSize)
	assert.Equal(t, 3, c.ChunksX)
	assert.Equal(t, def.ChunksY, c.ChunksY)
	assert.Equal(t, int64(5), c.Seed)
	assert.False(t, c.Terrain.Enabled)
	assert.Equal(t, def.Terrain.Scale, c.Terrain.Scale)
	assert.Equal(t, []Spout{{X: 2, Every: 4}}, c.Spouts)
}

func TestLoadFileEmptyPath(t *testing.T) {
	c, err := LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chunk_size: [1, 2"), 0o644))
	_, err = LoadFile(path)
	require.Error(t, err)
}

func TestApplyEnvOverridesFile(t *testing.T) {
	t.Setenv("SAND_CHUNK_SIZE", "32")
	t.Setenv("SAND_SEED", "11")
	t.Setenv("SAND_TERRAIN_AMPLITUDE", "0.5")

	c := DefaultConfig()
	c.ChunksX = 2
	require.NoError(t, ApplyEnv(&c))

	assert.Equal(t, 32, c.ChunkSize)
	assert.Equal(t, int64(11), c.Seed)
	assert.Equal(t, 0.5, c.Terrain.Amp)
	assert.Equal(t, 2, c.ChunksX, "unset variables keep the current value")
}

func TestApplyEnvRejectsBadValue(t *testing.T) {
	t.Setenv("SAND_CHUNKS_X", "many")
	c := DefaultConfig()
	require.Error(t, ApplyEnv(&c))
}

func TestRegion(t *testing.T) {
	c := DefaultConfig()
	c.ChunkSize = 4
	c.OriginX = -1
	c.ChunksX = 3
	c.ChunksY = 2
	r := c.Region()
	assert.Equal(t, -4, r.X)
	assert.Equal(t, 0, r.Y)
	assert.Equal(t, 12, r.W)
	assert.Equal(t, 8, r.H)
}

func TestLoadPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sand.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chunk_size: 8\nchunks_x: 3\nseed: 5\n"), 0o644))
	t.Setenv("SAND_CHUNKS_X", "5")
	t.Setenv("SAND_SEED", "6")

	c, err := Load(path, map[string]string{"seed": "7"})
	require.NoError(t, err)

	assert.Equal(t, 8, c.ChunkSize, "file over default")
	assert.Equal(t, 5, c.ChunksX, "env over file")
	assert.Equal(t, int64(7), c.Seed, "override over env")
}

func TestWithOverridesKeepsReceiver(t *testing.T) {
	base := DefaultConfig()
	base.ChunksX = 9
	c := base.WithOverrides(map[string]string{"chunks_y": "2"})
	assert.Equal(t, 9, c.ChunksX)
	assert.Equal(t, 2, c.ChunksY)
	assert.Equal(t, DefaultConfig().ChunksY, base.ChunksY)
}

func TestWithOverridesOrigin(t *testing.T) {
	c := FromMap(map[string]string{"origin_x": "-2", "origin_y": "-1", "chunk_size": "4"})
	assert.Equal(t, -2, c.OriginX)
	assert.Equal(t, -1, c.OriginY)
	r := c.Region()
	assert.Equal(t, -8, r.X)
	assert.Equal(t, -4, r.Y)

	c = FromMap(map[string]string{"origin_x": "west"})
	assert.Equal(t, 0, c.OriginX)
}

func TestParseOverride(t *testing.T) {
	key, value, err := ParseOverride(" seed = 4 ")
	require.NoError(t, err)
	assert.Equal(t, "seed", key)
	assert.Equal(t, "4", value)

	key, value, err = ParseOverride("material=")
	require.NoError(t, err)
	assert.Equal(t, "material", key)
	assert.Equal(t, "", value)

	for _, bad := range []string{"seed", "=3", " =x"} {
		_, _, err := ParseOverride(bad)
		assert.ErrorIs(t, err, ErrBadOverride, bad)
	}
}

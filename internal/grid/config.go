package grid

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig reports a grid that cannot be constructed.
var ErrInvalidConfig = errors.New("invalid grid config")

// MaxChunkSize bounds the side length of a chunk.
const MaxChunkSize = 1024

// Config describes the rectangular block of chunks allocated at construction.
type Config struct {
	ChunkSize int
	Origin    ChunkCoord
	ChunksX   int
	ChunksY   int
}

// DefaultConfig returns a 7x4 block of 16x16 chunks anchored at (0,0).
func DefaultConfig() Config {
	return Config{ChunkSize: 16, ChunksX: 7, ChunksY: 4}
}

// Validate reports the first problem with the config, wrapping ErrInvalidConfig.
func (c Config) Validate() error {
	if c.ChunkSize <= 0 || c.ChunkSize > MaxChunkSize {
		return fmt.Errorf("%w: chunk size %d outside (0, %d]", ErrInvalidConfig, c.ChunkSize, MaxChunkSize)
	}
	if c.ChunksX <= 0 || c.ChunksY <= 0 {
		return fmt.Errorf("%w: region %dx%d chunks is empty", ErrInvalidConfig, c.ChunksX, c.ChunksY)
	}
	return nil
}

// TileWidth returns the width of the allocated region in tiles.
func (c Config) TileWidth() int { return c.ChunksX * c.ChunkSize }

// TileHeight returns the height of the allocated region in tiles.
func (c Config) TileHeight() int { return c.ChunksY * c.ChunkSize }

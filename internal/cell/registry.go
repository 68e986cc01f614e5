package cell

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownMaterial is returned when spawning a material nobody registered.
var ErrUnknownMaterial = errors.New("unknown material")

// MaterialFactory builds the initial state for a freshly spawned live cell.
type MaterialFactory func(rng Source) LiveState

var materials = map[string]MaterialFactory{}

// RegisterMaterial adds a live-cell material under the provided name.
func RegisterMaterial(name string, f MaterialFactory) {
	if name == "" || f == nil {
		return
	}
	materials[name] = f
}

// NewLiveState builds a state for the named material.
func NewLiveState(name string, rng Source) (LiveState, error) {
	f, ok := materials[name]
	if !ok {
		return nil, fmt.Errorf("material %q: %w", name, ErrUnknownMaterial)
	}
	return f(rng), nil
}

// Materials returns the registered material names in sorted order.
func Materials() []string {
	names := make([]string, 0, len(materials))
	for name := range materials {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

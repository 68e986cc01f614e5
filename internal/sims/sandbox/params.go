package sandbox

import (
	"strconv"

	"chunkfall/internal/core"
)

// Parameters implements core.ParameterProvider.
func (w *World) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("chunk_size", "Chunk size", w.cfg.ChunkSize),
				intParam("chunks_x", "Chunks X", w.cfg.ChunksX),
				intParam("chunks_y", "Chunks Y", w.cfg.ChunksY),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Material",
			Params: []core.Parameter{
				{Key: "material", Label: "Material", Type: core.ParamTypeString, Value: w.cfg.Material},
				intParam("spouts", "Spouts", len(w.cfg.Spouts)),
				{
					Key:   "terrain_scale",
					Label: "Terrain scale",
					Type:  core.ParamTypeFloat,
					Value: strconv.FormatFloat(w.cfg.Terrain.Scale, 'g', 4, 64),
				},
			},
		},
		{
			Name: "Frame",
			Params: []core.Parameter{
				{Key: "frame", Label: "Frame", Type: core.ParamTypeInt, Value: strconv.FormatUint(w.frame, 10)},
				intParam("live", "Live cells", w.grid.LiveCount()),
				intParam("evaluated", "Evaluated", w.last.Evaluated),
				intParam("moved", "Moved", w.last.Moved),
				intParam("rejected", "Rejected", w.last.Rejected),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

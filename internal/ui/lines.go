package ui

import (
	"fmt"
	"strings"

	"chunkfall/internal/core"
)

// hudLines flattens a parameter snapshot into the text rows the HUD prints:
// a title, then one header per group followed by "label: value" rows.
func hudLines(title string, snap core.ParameterSnapshot) []string {
	lines := []string{title}
	for _, g := range snap.Groups {
		if len(g.Params) == 0 {
			continue
		}
		lines = append(lines, "", strings.ToUpper(g.Name))
		for _, p := range g.Params {
			v := p.Value
			if v == "" {
				v = "--"
			}
			lines = append(lines, fmt.Sprintf("%s: %s", p.Label, v))
		}
	}
	return lines
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Parameters"
	}
	return sim.Name() + " parameters"
}

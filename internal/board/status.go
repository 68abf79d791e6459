package board

import "lifeboard/internal/core"

// Status snapshots the controller for the HUD and diagnostics.
func (c *Controller) Status() core.ParameterSnapshot {
	grid := c.life.Grid()
	stats := c.Stats()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				core.Uint64Param("generation", "Generation", c.life.Generation()),
				core.IntParam("alive", "Alive", grid.Alive()),
				core.BoolParam("empty", "Empty", grid.IsEmpty()),
			},
		},
		{
			Name: "Debounce",
			Params: []core.Parameter{
				core.StringParam("invert", "Invert", c.invert.String()),
				core.StringParam("recovery", "Recovery", c.recovery.String()),
			},
		},
		{
			Name: "Actions",
			Params: []core.Parameter{
				core.Uint64Param("inversions", "Inversions", stats.Inversions),
				core.Uint64Param("randomized", "Randomized", stats.Randomized),
				core.Uint64Param("recoveries", "Recoveries", stats.Recoveries),
			},
		},
	}}
}

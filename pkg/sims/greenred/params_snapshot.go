package greenred

import (
	"fmt"

	"green-vs-red/pkg/core"
)

// Parameters reports the run configuration and progress.
func (e *Engine) Parameters() core.ParameterSnapshot {
	green := e.prev.Count(uint8(Green))
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "Grid",
				Params: []core.Parameter{
					core.IntParam("rows", "Rows", e.rows),
					core.IntParam("cols", "Cols", e.cols),
					core.IntParam("green", "Green cells", green),
				},
				Summary: fmt.Sprintf("%d of %d cells green", green, e.rows*e.cols),
			},
			{
				Name: "Target",
				Params: []core.Parameter{
					core.IntParam("target_row", "Target row", e.targetRow),
					core.IntParam("target_col", "Target col", e.targetCol),
				},
			},
			{
				Name: "Run",
				Params: []core.Parameter{
					core.IntParam("turns", "Turns", e.turns),
					core.IntParam("generation", "Generation", e.generation),
					core.IntParam("tally", "Green tally", e.tally),
				},
				Summary: fmt.Sprintf("green %d/%d", e.tally, e.generation),
			},
		},
	}
}

// ParameterControls lists the values adjustable while the sim is shown.
func (e *Engine) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "target_row", Label: "Target row", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: e.rows - 1, HasMin: true, HasMax: true},
		{Key: "target_col", Label: "Target col", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: e.cols - 1, HasMin: true, HasMax: true},
		{Key: "turns", Label: "Turns", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true},
	}
}

// SetIntParameter updates the target or turn count and restarts the run.
// Values that would fail construction are rejected.
func (e *Engine) SetIntParameter(key string, value int) bool {
	switch key {
	case "target_row":
		if checkTarget(e.rows, e.cols, value, e.targetCol) != nil {
			return false
		}
		e.targetRow = value
	case "target_col":
		if checkTarget(e.rows, e.cols, e.targetRow, value) != nil {
			return false
		}
		e.targetCol = value
	case "turns":
		if value < 0 {
			return false
		}
		e.turns = value
	default:
		return false
	}
	e.restart()
	return true
}

package ui

import (
	"image"

	"green-vs-red/pkg/core"
)

const (
	// PanelWidth is the default HUD width in pixels.
	PanelWidth = 220
	// MinPanelHeight is the smallest height the HUD needs to show every group.
	MinPanelHeight = 420
)

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	switch name := sim.Name(); name {
	case "greenred":
		return "Green vs. Red"
	default:
		return name
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

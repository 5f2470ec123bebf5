package ui

import (
	"image"
	"testing"

	"green-vs-red/pkg/core"
	"green-vs-red/pkg/sims/greenred"
)

func TestBuildTitle(t *testing.T) {
	if got := buildTitle(nil); got != "Controls" {
		t.Fatalf("buildTitle(nil) = %q", got)
	}
	e, err := greenred.NewWithConfig(greenred.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	var sim core.Sim = e
	if got := buildTitle(sim); got != "Green vs. Red" {
		t.Fatalf("buildTitle = %q", got)
	}
}

func TestPointInRectHalfOpen(t *testing.T) {
	r := image.Rect(10, 10, 20, 20)
	if !pointInRect(10, 10, r) {
		t.Fatal("min corner must be inside")
	}
	if pointInRect(20, 15, r) || pointInRect(15, 20, r) {
		t.Fatal("max edges must be outside")
	}
}

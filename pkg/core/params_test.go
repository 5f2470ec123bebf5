package core

import "testing"

func TestSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{IntParam("rows", "Rows", 3)}},
		{Name: "B", Params: []Parameter{IntParam("turns", "Turns", -2)}},
	}}
	p, ok := snap.Lookup("turns")
	if !ok || p.Value != "-2" || p.Type != ParamTypeInt || p.Label != "Turns" {
		t.Fatalf("Lookup(turns) = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("Lookup found a missing key")
	}
}

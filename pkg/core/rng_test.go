package core

import (
	"slices"
	"testing"
)

func TestBinaryRowsDeterministic(t *testing.T) {
	a := NewRNG(1337).BinaryRows(5, 7)
	b := NewRNG(1337).BinaryRows(5, 7)
	if len(a) != 5 {
		t.Fatalf("got %d rows", len(a))
	}
	for i := range a {
		if len(a[i]) != 7 {
			t.Fatalf("row %d has %d cells", i, len(a[i]))
		}
		if !slices.Equal(a[i], b[i]) {
			t.Fatalf("row %d differs for equal seeds", i)
		}
		for _, v := range a[i] {
			if v > 1 {
				t.Fatalf("non-binary value %d", v)
			}
		}
	}
}

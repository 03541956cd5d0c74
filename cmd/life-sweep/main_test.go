package main

import (
	"slices"
	"testing"
)

func TestParseFloats(t *testing.T) {
	got, err := parseFloats(" 0.1, 0.5,,1 ")
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, []float64{0.1, 0.5, 1}) {
		t.Fatalf("parseFloats=%v", got)
	}
	for _, bad := range []string{"", ",", "0.1,x"} {
		if _, err := parseFloats(bad); err == nil {
			t.Fatalf("parseFloats(%q) accepted bad input", bad)
		}
	}
}

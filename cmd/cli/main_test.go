package main

import (
	"testing"
)

func TestResolveRegionParsing(t *testing.T) {
	r, err := resolveRegion("10,20,300,200", 0)
	if err != nil {
		t.Fatalf("resolveRegion failed: %v", err)
	}
	if r.X != 10 || r.Y != 20 || r.Width != 300 || r.Height != 200 {
		t.Errorf("region = %+v, want {10 20 300 200}", r)
	}

	// Whitespace is tolerated
	if _, err := resolveRegion(" 0 , 0 , 10 , 10 ", 0); err != nil {
		t.Errorf("resolveRegion rejected padded input: %v", err)
	}
}

func TestResolveRegionRejectsMalformed(t *testing.T) {
	for _, spec := range []string{"1,2,3", "a,b,c,d", "0,0,0,10", "0,0,10,-1"} {
		if _, err := resolveRegion(spec, 0); err == nil {
			t.Errorf("resolveRegion accepted %q", spec)
		}
	}
}

func TestOutputPath(t *testing.T) {
	if got := outputPath("frame.png", 0, 1); got != "frame.png" {
		t.Errorf("single frame path = %q, want frame.png", got)
	}
	if got := outputPath("frame.png", 0, 3); got != "frame_001.png" {
		t.Errorf("multi frame path = %q, want frame_001.png", got)
	}
	if got := outputPath("frame.png", 2, 3); got != "frame_003.png" {
		t.Errorf("multi frame path = %q, want frame_003.png", got)
	}
}

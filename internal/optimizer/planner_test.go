package optimizer

import (
	"math"
	"testing"
)

func TestFitDimensions(t *testing.T) {
	cases := []struct {
		name                 string
		w, h, maxW, maxH     int
		wantW, wantH         int
	}{
		{"no constraints", 800, 600, 0, 0, 800, 600},
		{"width over limit", 2000, 1000, 1000, 0, 1000, 500},
		{"width at limit", 1000, 500, 1000, 0, 1000, 500},
		{"width under limit", 500, 500, 1000, 0, 500, 500},
		{"height over limit", 1000, 2000, 0, 1000, 500, 1000},
		{"height at limit", 640, 480, 0, 480, 640, 480},
		{"height under limit", 640, 480, 0, 600, 640, 480},
		{"floor rounding width", 3, 1000, 2, 0, 2, 666},
		{"floor rounding height", 1000, 3, 0, 2, 666, 2},
		{"scaled edge clamped to one", 10000, 10, 100, 0, 100, 1},
		{"portrait under width bound", 600, 1200, 1000, 0, 600, 1200},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gotW, gotH := FitDimensions(tc.w, tc.h, tc.maxW, tc.maxH)
			if gotW != tc.wantW || gotH != tc.wantH {
				t.Fatalf("FitDimensions(%d, %d, %d, %d) = %dx%d, want %dx%d",
					tc.w, tc.h, tc.maxW, tc.maxH, gotW, gotH, tc.wantW, tc.wantH)
			}
		})
	}
}

func TestFitDimensionsPreservesAspect(t *testing.T) {
	for w := 1100; w <= 4000; w += 137 {
		for _, h := range []int{400, 1080, 2500} {
			gotW, gotH := FitDimensions(w, h, 1000, 0)
			if gotW != 1000 {
				t.Fatalf("width not pinned to bound: %dx%d -> %dx%d", w, h, gotW, gotH)
			}
			want := float64(h) / float64(w)
			got := float64(gotH) / float64(gotW)
			// floor rounding can shave at most one pixel off the scaled edge
			if math.Abs(got-want) > 1.0/float64(gotW) {
				t.Fatalf("aspect drifted: %dx%d -> %dx%d (ratio %f, want %f)", w, h, gotW, gotH, got, want)
			}
		}
	}
}

// Package tracealign is a diagnostic adapted from the teacher's dtw
// package: it compares the UAS's flight profile against the ship's
// touchdown-point profile via Dynamic Time Warping, reporting how well
// the two trajectories' shapes line up in time regardless of the UAS's
// instantaneous speed. It is not part of the evaluation/segmentation
// core; internal/runner logs its result as an extra --debug diagnostic.
package tracealign

import (
	"math"

	"github.com/katalvlaran/tbt/dtw"
	"github.com/katalvlaran/tbt/trace"
)

// Profile reduces three position channels to one scalar per time step —
// the distance from the origin of the maneuver's geometric frame — so
// dtw.DTW (which aligns two 1-D series) can compare trajectory shapes
// instead of requiring point-for-point 3-D matching.
func Profile(tr *trace.Trace, xChan, yChan, zChan string) []float64 {
	out := make([]float64, tr.N())
	for t := 0; t < tr.N(); t++ {
		x, y, z := tr.Sample(xChan, t), tr.Sample(yChan, t), tr.Sample(zChan, t)
		out[t] = math.Sqrt(float64(x)*float64(x) + float64(y)*float64(y) + float64(z)*float64(z))
	}

	return out
}

// Distance computes the DTW distance between a and b under a Sakoe–Chiba
// window of width relative to the shorter profile (its length / 10, plus
// one), using TwoRows memory since only the distance is needed.
func Distance(a, b []float64) (float64, error) {
	window := len(a)
	if len(b) < window {
		window = len(b)
	}
	window = window/10 + 1

	opts := dtw.DefaultOptions()
	opts.Window = window

	dist, _, err := dtw.DTW(a, b, &opts)

	return dist, err
}

package shipdeck_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tbt/memo"
	"github.com/katalvlaran/tbt/shipdeck"
	"github.com/katalvlaran/tbt/stl"
	"github.com/katalvlaran/tbt/tbt"
	"github.com/katalvlaran/tbt/trace"
)

func constChannel(n int, v float32) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = v
	}

	return out
}

// A UAS hovering 20 units above the ship's origin, motionless and
// heading-aligned, lets the tree evaluate without panicking or producing
// NaN — the tree must bottom out cleanly regardless of which maneuver wins
// the outer Fallback. On this 20-sample trace the root is -Inf, since the
// maneuvers' time bounds reach past the end of the trace.
func TestBuildTree_EvaluatesWithoutNaN(t *testing.T) {
	const n = 20
	ch := shipdeck.DefaultChannels()
	channels := map[string][]float32{
		ch.UASX: constChannel(n, 0), ch.UASY: constChannel(n, 0), ch.UASZ: constChannel(n, 20),
		ch.UASU: constChannel(n, 0), ch.UASV: constChannel(n, 0), ch.UASW: constChannel(n, 0),
		ch.UASHeading: constChannel(n, 0),
		ch.ShipX:      constChannel(n, 0), ch.ShipY: constChannel(n, 0), ch.ShipZ: constChannel(n, 0),
		ch.ShipU: constChannel(n, 0), ch.ShipV: constChannel(n, 0), ch.ShipW: constChannel(n, 0),
		ch.ShipHeading: constChannel(n, 0),
	}
	tr, err := trace.New(channels)
	require.NoError(t, err)

	tbtB := tbt.NewBuilder()
	stlB := stl.NewBuilder()
	root := shipdeck.BuildTree(tbtB, stlB, ch, shipdeck.EventsPerSecond(0))

	treeTable := memo.NewTable(tbtB.Count(), tr.N())
	stlTable := memo.NewTable(stlB.Count(), tr.N())
	ev := tbt.NewEvaluator(stl.NewEvaluator())

	v := ev.Evaluate(root, tr, 0, tr.N()-1, false, treeTable, stlTable)
	assert.False(t, math.IsNaN(float64(v)))
}

func TestEventsPerSecond_NoSkipIsTwoHundred(t *testing.T) {
	assert.Equal(t, uint64(200), shipdeck.EventsPerSecond(0))
}

func TestEventsPerSecond_SkipScalesDown(t *testing.T) {
	assert.Equal(t, uint64(20), shipdeck.EventsPerSecond(10))
}

// Package runner wires the core packages (trace, stl, tbt, memo, segment)
// and the shipdeck worked example into the orchestration spec.md §2 and
// §6 describe: build tree, allocate tables, evaluate root, emit
// segmentation, optionally emit alternatives — all reported over stdout
// through internal/applog.
package runner

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/tbt/internal/applog"
	"github.com/katalvlaran/tbt/internal/config"
	"github.com/katalvlaran/tbt/internal/tracealign"
	"github.com/katalvlaran/tbt/memo"
	"github.com/katalvlaran/tbt/segment"
	"github.com/katalvlaran/tbt/shipdeck"
	"github.com/katalvlaran/tbt/stl"
	"github.com/katalvlaran/tbt/tbt"
	"github.com/katalvlaran/tbt/trace"
)

// progressInterval is spec.md §6's "every 10,000 cell-sets" cadence.
const progressInterval = 10000

// Run executes one end-to-end tbtctl invocation against settings,
// reporting its banner, progress, statistics, and segmentation listings
// through log.
func Run(settings config.Settings, log *applog.Logger) error {
	runID := uuid.NewString()

	tr, err := shipdeck.LoadTrace(settings.Logfile, 0)
	if err != nil {
		return fmt.Errorf("runner: loading trace: %w", err)
	}

	skip := 0
	if settings.Sampling {
		skip, _, _ = sampleSkip(tr)
		if skip != 0 {
			tr, err = shipdeck.LoadTrace(settings.Logfile, skip)
			if err != nil {
				return fmt.Errorf("runner: reloading subsampled trace: %w", err)
			}
		}
	}

	stlB := stl.NewBuilder()
	tbtB := tbt.NewBuilder()
	ch := shipdeck.DefaultChannels()
	root := shipdeck.BuildTree(tbtB, stlB, ch, shipdeck.EventsPerSecond(skip))

	log.Infow("starting evaluation",
		"run_id", runID,
		"logfile", settings.Logfile,
		"lazy", settings.Lazy,
		"sampling", settings.Sampling,
		"skip", skip,
		"trace_length", tr.N(),
		"tau", settings.Tau,
		"rho", settings.Rho,
		"amount", settings.Amount,
		"tree", tbt.PrettyPrint(root),
	)

	if settings.Debug {
		logTrajectoryAlignment(log, runID, tr, ch)
	}

	treeTable := memo.NewTable(tbtB.Count(), tr.N())
	stlTable := memo.NewTable(stlB.Count(), tr.N())

	stop := reportProgress(log, treeTable, runID, settings.Debug)
	defer stop()

	ev := tbt.NewEvaluator(stl.NewEvaluator())
	root0, horizon := 0, tr.N()-1
	v := ev.Evaluate(root, tr, root0, horizon, settings.Lazy, treeTable, stlTable)

	setCalls, totalCells := treeTable.Progress()
	log.Infow("evaluation complete",
		"run_id", runID,
		"root_robustness", v,
		"tree_cells_set", setCalls,
		"tree_cells_total", totalCells,
		"tree_lookup_hits", treeTable.LookupHits(),
		"stl_lookup_hits", stlTable.LookupHits(),
	)

	tables := &segment.Tables{Tree: treeTable, Stl: stlTable}
	seg := segment.NewSegmenter(stl.NewEvaluator())
	best := seg.Segment(root, tables, tr, root0, horizon, settings.Lazy)

	leaves := leafSet(root)
	printSegmentation(log, "optimal segmentation", best, leaves, settings.ChildrenOnly)

	if settings.Amount > 0 {
		alts := seg.Alternatives(best, root, tables, tr, settings.Tau, settings.Rho, settings.Amount)
		for i, alt := range alts {
			printSegmentation(log, fmt.Sprintf("alternative %d/%d", i+1, len(alts)), alt, leaves, settings.ChildrenOnly)
		}
	}

	return nil
}

// logTrajectoryAlignment reports, as a --debug diagnostic, how closely
// the UAS's flight profile tracks the ship's touchdown-point profile in
// shape (via DTW), independent of the UAS's instantaneous speed.
func logTrajectoryAlignment(log *applog.Logger, runID string, tr *trace.Trace, ch shipdeck.Channels) {
	uas := tracealign.Profile(tr, ch.UASX, ch.UASY, ch.UASZ)
	ship := tracealign.Profile(tr, ch.ShipX, ch.ShipY, ch.ShipZ)

	dist, err := tracealign.Distance(uas, ship)
	if err != nil {
		log.Debugw("trajectory alignment skipped", "run_id", runID, "error", err)

		return
	}

	log.Debugw("trajectory alignment", "run_id", runID, "dtw_distance", dist)
}

// sampleSkip builds one trace.AtomicSampler per STL atomic reachable from
// a throwaway shipdeck tree and runs the subsampling heuristic over it.
func sampleSkip(tr *trace.Trace) (skip int, posRange, negRange [2]float32) {
	stlB := stl.NewBuilder()
	tbtB := tbt.NewBuilder()
	ch := shipdeck.DefaultChannels()
	root := shipdeck.BuildTree(tbtB, stlB, ch, shipdeck.EventsPerSecond(0))

	var samplers []trace.AtomicSampler
	for _, leafFormula := range leafFormulas(root) {
		for _, a := range stl.Atomics(leafFormula) {
			a := a
			samplers = append(samplers, func(t int) float32 {
				samples := make([]float32, len(a.Names))
				for i, name := range a.Names {
					samples[i] = tr.Sample(name, t)
				}

				return a.F(samples)
			})
		}
	}

	return trace.GetBestNumberSkipped(tr, samplers)
}

// walkLeaves calls visit on every Leaf reachable from node, left to right.
func walkLeaves(node tbt.Node, visit func(tbt.Leaf)) {
	switch n := node.(type) {
	case tbt.Leaf:
		visit(n)
	case tbt.Sequence:
		walkLeaves(n.Left, visit)
		walkLeaves(n.Right, visit)
	case tbt.Fallback:
		for _, c := range n.Children {
			walkLeaves(c, visit)
		}
	case tbt.Parallel:
		for _, c := range n.Children {
			walkLeaves(c, visit)
		}
	case tbt.Timeout:
		walkLeaves(n.Child, visit)
	case tbt.Kleene:
		walkLeaves(n.Child, visit)
	}
}

func leafFormulas(node tbt.Node) []stl.Formula {
	var out []stl.Formula
	walkLeaves(node, func(l tbt.Leaf) { out = append(out, l.Formula) })

	return out
}

func leafSet(node tbt.Node) map[int]bool {
	out := make(map[int]bool)
	walkLeaves(node, func(l tbt.Leaf) { out[l.ID()] = true })

	return out
}

func printSegmentation(log *applog.Logger, label string, rows []segment.Row, leaves map[int]bool, childrenOnly bool) {
	log.Infow(label, "row_count", len(rows))
	for _, r := range rows {
		if childrenOnly && !leaves[r.NodeID] {
			continue
		}
		log.Infow("row", "node_id", r.NodeID, "lo", r.Lo, "hi", r.Hi, "v", r.V)
	}
}

// reportProgress polls table.Progress() on a ticker from a separate
// goroutine while Evaluate runs on the caller's, printing a line every
// progressInterval cell-sets. Evaluate itself never suspends or yields —
// it remains single-threaded cooperative computation, with only this
// goroutine observing it from outside. table's counters are atomic so
// that observation is race-free; it is still only an approximate,
// point-in-time progress count, since a cell-set on the evaluator's side
// can land between this goroutine's read and its next tick.
func reportProgress(log *applog.Logger, table *memo.Table, runID string, debug bool) (stop func()) {
	if !debug {
		return func() {}
	}

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(200 * time.Millisecond)
		defer ticker.Stop()
		last := 0
		for {
			select {
			case <-ticker.C:
				setCalls, total := table.Progress()
				if setCalls-last >= progressInterval {
					last = setCalls
					log.Infow("progress", "run_id", runID, "cells_set", setCalls, "cells_total", total)
				}
			case <-done:
				return
			}
		}
	}()

	return func() { close(done) }
}

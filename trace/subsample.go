package trace

import "math"

// AtomicSampler evaluates one atomic proposition's value at a single time
// point of a trace. GetBestNumberSkipped takes a slice of these rather
// than a typed formula tree so that package trace has no dependency on
// package stl (stl depends on trace for evaluation, not the reverse);
// callers build samplers by closing over an stl.Atomic's channel names
// and function together with the trace.
type AtomicSampler func(t int) float32

// GetBestNumberSkipped implements the subsampling heuristic
// ("get_best_number_skipped"), ported from
// original_source/src/csv_reader.rs::get_best_number_skipped.
//
// For every atomic and both signs (value >= 0 vs value < 0), it finds the
// shortest consecutive run of that sign over the raw trace; the smallest
// such run length across every atomic and sign, minus one, seeds a
// candidate skip count k, which is then decremented until 1/(0.005*k) is
// an integer (i.e. the subsampled frequency divides evenly), clamping at
// zero.
//
// A run that reaches the end of the trace counts as a run of its sign.
//
// posRange reports the [min,max] of every non-negative value the winning
// atomic produced from the start of the trace up to the end of its
// shortest positive streak; the interval is a running one and is not reset
// between streaks.
//
// This function preserves a bug from the original implementation
// (documented in DESIGN.md): negRange is assigned from the positive
// streak's running [min,max], not the negative streak's. Decision: keep
// it bug-for-bug, flagged as an open question to be reviewed rather than
// silently "fixed" by a reimplementation that no longer matches the
// original tool's behavior.
func GetBestNumberSkipped(tr *Trace, atomics []AtomicSampler) (skip int, posRange, negRange [2]float32) {
	globalStreakPos := int(math.MaxInt32)
	globalStreakNeg := int(math.MaxInt32)
	var globalPosDif, globalNegDif [2]float32

	for _, ap := range atomics {
		posStreak := int(math.MaxInt32)
		var posStreakDif [2]float32
		posInterval := [2]float32{float32(math.MaxFloat32), -float32(math.MaxFloat32)}
		posCount := 0

		negStreak := int(math.MaxInt32)
		var negStreakDif [2]float32
		negCount := 0

		for i := 0; i < tr.N(); i++ {
			v := ap(i)

			if v >= 0 {
				posCount++
				posInterval[0] = min32(posInterval[0], v)
				posInterval[1] = max32(posInterval[1], v)
			} else if posCount > 0 {
				if posCount < posStreak {
					posStreak = posCount
					posStreakDif = posInterval
				}
				posCount = 0
			}

			if v < 0 {
				negCount++
			} else if negCount > 0 {
				if negCount < negStreak {
					negStreak = negCount
					// Preserved from the original: this reads the positive
					// streak's interval, not a negative-value interval.
					negStreakDif = posInterval
				}
				negCount = 0
			}
		}
		if posCount > 0 && posCount < posStreak {
			posStreak = posCount
			posStreakDif = posInterval
		}
		if negCount > 0 && negCount < negStreak {
			negStreak = negCount
			negStreakDif = posInterval
		}

		if posStreak < globalStreakPos {
			globalStreakPos = posStreak
			globalPosDif = posStreakDif
		}
		if negStreak < globalStreakNeg {
			globalStreakNeg = negStreak
			globalNegDif = negStreakDif
		}
	}

	if globalStreakPos == math.MaxInt32 || globalStreakNeg == math.MaxInt32 {
		return 0, globalPosDif, globalNegDif
	}

	numberSkipped := globalStreakPos
	if globalStreakNeg < numberSkipped {
		numberSkipped = globalStreakNeg
	}
	numberSkipped--
	if numberSkipped < 0 {
		numberSkipped = 0
	}

	const frequency = 0.005
	for numberSkipped > 0 {
		newFreq := frequency * float64(numberSkipped)
		numberEvents := 1.0 / newFreq
		if numberEvents == math.Trunc(numberEvents) {
			break
		}
		numberSkipped--
	}

	return numberSkipped, globalPosDif, globalNegDif
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}

	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}

	return b
}

package shipdeck

import (
	"github.com/katalvlaran/tbt/stl"
	"github.com/katalvlaran/tbt/tbt"
)

// BuildTree assembles the ship-deck landing tree: a Fallback over the
// four landing maneuvers (lateral, straight, oblique, 45-degree), each
// trying to move into position, hold it for five seconds, then move to
// touchdown, followed in Sequence by a final descend-and-touchdown leaf.
// eventsPerSecond sizes the five-second hold window in trace steps.
func BuildTree(b *tbt.Builder, sb *stl.Builder, ch Channels, eventsPerSecond uint64) tbt.Node {
	lateral := buildManeuver(b, sb, ch, Lateral, eventsPerSecond, "lateral")
	straight := buildManeuver(b, sb, ch, Straight, eventsPerSecond, "straight")
	oblique := buildObliqueManeuver(b, sb, ch, Oblique, eventsPerSecond)
	deg45 := buildManeuver(b, sb, ch, Deg45, eventsPerSecond, "45deg")

	maneuvers := b.Fallback(lateral, straight, oblique, deg45)

	descend := b.Leaf(sb.Eventually(sb.AtomicProp(ch.touchdownOrder(), descendTouchdown)), "descend")

	return b.Sequence(maneuvers, descend)
}

// buildManeuver builds one of the three head-on maneuvers (lateral,
// straight, 45-degree), which differ only in their geometric constants.
func buildManeuver(b *tbt.Builder, sb *stl.Builder, ch Channels, m Maneuver, eventsPerSecond uint64, label string) tbt.Node {
	moveToPosition := b.Leaf(sb.Eventually(sb.AtomicProp(ch.positionOrder(), func(samples []float32) float32 {
		return inPosition(m, samples)
	})), "move_to_position_"+label)

	holdWindow := int(eventsPerSecond * 5)
	stayInPosition := b.Leaf(sb.GloballyInterval(0, holdWindow, sb.AtomicProp(ch.combinedOrder(), func(samples []float32) float32 {
		return combinedInPositionHeadingVelocity(m, samples)
	})), "stay_in_position")

	moveToTouchdownLeaf := b.Leaf(sb.Eventually(sb.AtomicProp(ch.combinedOrder(), func(samples []float32) float32 {
		return combinedMoveHeading(m.AboveTouchdown, samples)
	})), "move_to_touchdown")

	return b.Sequence(moveToPosition, b.Sequence(stayInPosition, moveToTouchdownLeaf))
}

// buildObliqueManeuver builds the oblique maneuver, whose hold and
// touchdown legs compare heading against the ship's heading offset by
// AngleOblique rather than head-on.
func buildObliqueManeuver(b *tbt.Builder, sb *stl.Builder, ch Channels, m ObliqueManeuver, eventsPerSecond uint64) tbt.Node {
	moveToPosition := b.Leaf(sb.Eventually(sb.AtomicProp(ch.positionOrder(), func(samples []float32) float32 {
		return inPosition(m.Maneuver, samples)
	})), "move_to_position_oblique")

	holdWindow := int(eventsPerSecond * 5)
	stayInPosition := b.Leaf(sb.GloballyInterval(0, holdWindow, sb.AtomicProp(ch.combinedOrder(), func(samples []float32) float32 {
		return combinedInPositionObliqueVelocity(m, samples)
	})), "stay_in_position")

	moveToTouchdownLeaf := b.Leaf(sb.Eventually(sb.AtomicProp(ch.combinedOrder(), func(samples []float32) float32 {
		return combinedMoveOblique(m.AboveTouchdown, m.AngleOblique, samples)
	})), "move_to_touchdown")

	return b.Sequence(moveToPosition, b.Sequence(stayInPosition, moveToTouchdownLeaf))
}

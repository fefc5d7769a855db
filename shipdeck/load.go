package shipdeck

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tbt/trace"
)

var csvColumns = []string{"xg", "yg", "zg", "ug", "vg", "wg", "psi"}

// EventsPerSecond derives the trace's sample rate from the skip factor
// LoadTrace was called with: the logger samples every 0.005s, so skipping
// rows multiplies the effective period by skip.
func EventsPerSecond(skip int) uint64 {
	frequency := float32(0.005)
	if skip != 0 {
		frequency = 0.005 * float32(skip)
	}

	return uint64(1.0 / frequency)
}

// LoadTrace reads dir+"SIMOUT_Ship.csv" and dir+"SIMOUT_UAS.csv", keeping
// every skip-th row (skip == 0 keeps all rows), and assembles the fourteen channels BuildTree
// reads from.
//
// The ship's raw ground-frame position is overwritten in place with the
// projected touchdown point 60 units behind the ship along its heading,
// 5 units above the deck — the frame every maneuver's geometry is defined
// relative to — so channel "ship_x"/"ship_y"/"ship_z" is the touchdown
// point, not the ship's own hull position; "ship_heading" remains the
// ship's raw heading. The UAS's z is sign-flipped to match the trace's
// down-positive ground frame.
func LoadTrace(dir string, skip int) (*trace.Trace, error) {
	ch := DefaultChannels()

	ship, _, err := trace.LoadCSV(dir+"SIMOUT_Ship.csv", csvColumns, skip)
	if err != nil {
		return nil, fmt.Errorf("shipdeck: loading ship trace: %w", err)
	}
	uas, _, err := trace.LoadCSV(dir+"SIMOUT_UAS.csv", csvColumns, skip)
	if err != nil {
		return nil, fmt.Errorf("shipdeck: loading UAS trace: %w", err)
	}

	shipX, shipY, shipZ, shipPsi := ship["xg"], ship["yg"], ship["zg"], ship["psi"]
	for i := range shipX {
		shipZ[i] = shipZ[i]*-1 + 5
		angle := float32(math.Pi) + shipPsi[i]
		shipX[i] += 60 * float32(math.Cos(float64(angle)))
		shipY[i] += 60 * float32(math.Sin(float64(angle)))
	}

	uasZ := uas["zg"]
	for i := range uasZ {
		uasZ[i] = -uasZ[i]
	}

	return trace.New(map[string][]float32{
		ch.ShipX: shipX, ch.ShipY: shipY, ch.ShipZ: shipZ,
		ch.ShipU: ship["ug"], ch.ShipV: ship["vg"], ch.ShipW: ship["wg"],
		ch.ShipHeading: shipPsi,
		ch.UASX:        uas["xg"], ch.UASY: uas["yg"], ch.UASZ: uasZ,
		ch.UASU: uas["ug"], ch.UASV: uas["vg"], ch.UASW: uas["wg"],
		ch.UASHeading: uas["psi"],
	})
}

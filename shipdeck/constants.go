package shipdeck

// Maneuver bundles the geometric constants that parameterize one landing
// approach's ideal UAS position relative to the ship: height above the
// deck, horizontal distance, approach angle measured from the ship's own
// heading, and the height to hold above the touchdown point before the
// final descent.
type Maneuver struct {
	HeightAboveShip float32
	DistanceToShip  float32
	AngleToShip     float32
	AboveTouchdown  float32
}

// ObliqueManeuver is a Maneuver approached at an additional angular offset
// from the ship's heading rather than head-on.
type ObliqueManeuver struct {
	Maneuver
	AngleOblique float32
}

// The four landing approaches, with the same geometric constants as the
// worked example this package is ported from.
var (
	Lateral  = Maneuver{HeightAboveShip: 20, DistanceToShip: 20, AngleToShip: 90, AboveTouchdown: 20}
	Straight = Maneuver{HeightAboveShip: 20, DistanceToShip: 20, AngleToShip: 180, AboveTouchdown: 20}
	Deg45    = Maneuver{HeightAboveShip: 20, DistanceToShip: 30, AngleToShip: 135, AboveTouchdown: 20}
	Oblique  = ObliqueManeuver{
		Maneuver:     Maneuver{HeightAboveShip: 20, DistanceToShip: 30, AngleToShip: 135, AboveTouchdown: 20},
		AngleOblique: 45,
	}
)

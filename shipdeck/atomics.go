package shipdeck

import "math"

// Slack margins, one per geometric or kinematic quantity an atomic
// proposition compares against a tolerance: positive when the UAS is
// within tolerance, negative (and growing more negative) as it drifts.
const (
	headingSlack   float32 = 1.0
	velocitySlack  float32 = 2.0
	positionSlack  float32 = 2.5
	touchdownSlack float32 = 1.0
	moveSlack      float32 = 2.5
)

func toDegrees(rad float32) float32 { return rad * (180 / math.Pi) }

func absf32(v float32) float32 {
	if v < 0 {
		return -v
	}

	return v
}

func sqDist3(ax, ay, az, bx, by, bz float32) float32 {
	dx, dy, dz := ax-bx, ay-by, az-bz

	return dx*dx + dy*dy + dz*dz
}

// headingAligned compares the UAS heading against the ship's, both in
// radians at samples[0] and samples[1].
func headingAligned(samples []float32) float32 {
	uasHeading, shipHeading := samples[0], samples[1]

	return headingSlack - absf32(toDegrees(uasHeading-shipHeading))
}

// headingObliqued compares the UAS heading against the ship's heading
// offset by obliqueAngle degrees, for an oblique (non-head-on) approach.
func headingObliqued(obliqueAngle float32, samples []float32) float32 {
	uasHeading, shipHeading := samples[0], samples[1]

	return headingSlack - absf32(absf32(toDegrees(uasHeading-shipHeading))-obliqueAngle)
}

// velocityAligned compares UAS and ship speed magnitudes; samples holds
// [uas_u, uas_v, uas_w, ship_u, ship_v, ship_w].
func velocityAligned(samples []float32) float32 {
	uasSpeed := float32(math.Sqrt(float64(samples[0]*samples[0] + samples[1]*samples[1] + samples[2]*samples[2])))
	shipSpeed := float32(math.Sqrt(float64(samples[3]*samples[3] + samples[4]*samples[4] + samples[5]*samples[5])))

	return velocitySlack - absf32(uasSpeed-shipSpeed)
}

// bestPosition computes the ideal UAS position for m, offset from the
// ship's position by m's distance and angle, rotated into the ship's own
// heading frame.
func bestPosition(m Maneuver, shipX, shipY, shipZ, shipHeading float32) (x, y, z float32) {
	angle := float32(float64(m.AngleToShip)*math.Pi/180) + shipHeading
	x = shipX + m.DistanceToShip*float32(math.Cos(float64(angle)))
	y = shipY + m.DistanceToShip*float32(math.Sin(float64(angle)))
	z = shipZ + m.HeightAboveShip

	return x, y, z
}

// inPosition scores how close the UAS is to m's ideal position; samples
// holds [uas_x,uas_y,uas_z,ship_x,ship_y,ship_z,ship_heading].
func inPosition(m Maneuver, samples []float32) float32 {
	bx, by, bz := bestPosition(m, samples[3], samples[4], samples[5], samples[6])

	return positionSlack - float32(math.Sqrt(float64(sqDist3(bx, by, bz, samples[0], samples[1], samples[2]))))
}

// descendTouchdown scores the UAS's distance to the ship's touchdown
// point; samples holds [uas_x,uas_y,uas_z,td_x,td_y,td_z].
func descendTouchdown(samples []float32) float32 {
	return touchdownSlack - float32(math.Sqrt(float64(sqDist3(samples[0], samples[1], samples[2], samples[3], samples[4], samples[5]))))
}

// moveToTouchdown scores the UAS's distance to the point heightAboveShip
// meters above the touchdown point; samples holds
// [uas_x,uas_y,uas_z,td_x,td_y,td_z].
func moveToTouchdown(heightAboveShip float32, samples []float32) float32 {
	aboveX, aboveY, aboveZ := samples[3], samples[4], samples[5]+heightAboveShip

	return moveSlack - float32(math.Sqrt(float64(sqDist3(aboveX, aboveY, aboveZ, samples[0], samples[1], samples[2]))))
}

func min3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}

	return m
}

// combinedInPositionHeadingVelocity is the conjunction of in-position,
// heading-aligned, and velocity-aligned, for the head-on approaches.
// samples holds [uas_x,uas_y,uas_z,uas_u,uas_v,uas_w,uas_heading,
// ship_x,ship_y,ship_z,ship_u,ship_v,ship_w,ship_heading].
func combinedInPositionHeadingVelocity(m Maneuver, samples []float32) float32 {
	pos := inPosition(m, []float32{samples[0], samples[1], samples[2], samples[7], samples[8], samples[9], samples[13]})
	heading := headingAligned([]float32{samples[6], samples[13]})
	velocity := velocityAligned([]float32{samples[3], samples[4], samples[5], samples[10], samples[11], samples[12]})

	return min3(pos, heading, velocity)
}

// combinedMoveHeading is the conjunction of move-to-touchdown and
// heading-aligned, for the head-on approaches. Same sample layout as
// combinedInPositionHeadingVelocity.
func combinedMoveHeading(heightAboveShip float32, samples []float32) float32 {
	move := moveToTouchdown(heightAboveShip, []float32{samples[0], samples[1], samples[2], samples[7], samples[8], samples[9]})
	heading := headingAligned([]float32{samples[6], samples[13]})

	return min2(move, heading)
}

// combinedInPositionObliqueVelocity is combinedInPositionHeadingVelocity's
// oblique counterpart: heading-obliqued replaces heading-aligned.
func combinedInPositionObliqueVelocity(m ObliqueManeuver, samples []float32) float32 {
	pos := inPosition(m.Maneuver, []float32{samples[0], samples[1], samples[2], samples[7], samples[8], samples[9], samples[13]})
	heading := headingObliqued(m.AngleOblique, []float32{samples[6], samples[13]})
	velocity := velocityAligned([]float32{samples[3], samples[4], samples[5], samples[10], samples[11], samples[12]})

	return min3(pos, heading, velocity)
}

// combinedMoveOblique is combinedMoveHeading's oblique counterpart:
// heading-obliqued replaces heading-aligned.
func combinedMoveOblique(heightAboveShip, obliqueAngle float32, samples []float32) float32 {
	move := moveToTouchdown(heightAboveShip, []float32{samples[0], samples[1], samples[2], samples[7], samples[8], samples[9]})
	heading := headingObliqued(obliqueAngle, []float32{samples[6], samples[13]})

	return min2(move, heading)
}

func min2(a, b float32) float32 {
	if a < b {
		return a
	}

	return b
}

package shipdeck

// Channels names the fourteen trace.Trace columns a landing tree reads
// from: the UAS's and ship's position, velocity, and heading.
type Channels struct {
	UASX, UASY, UASZ     string
	UASU, UASV, UASW     string
	UASHeading           string
	ShipX, ShipY, ShipZ  string
	ShipU, ShipV, ShipW  string
	ShipHeading          string
}

// DefaultChannels returns the channel names LoadTrace populates.
func DefaultChannels() Channels {
	return Channels{
		UASX: "uas_x", UASY: "uas_y", UASZ: "uas_z",
		UASU: "uas_u", UASV: "uas_v", UASW: "uas_w",
		UASHeading: "uas_heading",
		ShipX:      "ship_x", ShipY: "ship_y", ShipZ: "ship_z",
		ShipU: "ship_u", ShipV: "ship_v", ShipW: "ship_w",
		ShipHeading: "ship_heading",
	}
}

// combinedOrder is the 14-channel order every combined atomic's sample
// slice is built from: UAS position, velocity, heading, then the ship's.
func (c Channels) combinedOrder() []string {
	return []string{
		c.UASX, c.UASY, c.UASZ, c.UASU, c.UASV, c.UASW, c.UASHeading,
		c.ShipX, c.ShipY, c.ShipZ, c.ShipU, c.ShipV, c.ShipW, c.ShipHeading,
	}
}

func (c Channels) positionOrder() []string {
	return []string{c.UASX, c.UASY, c.UASZ, c.ShipX, c.ShipY, c.ShipZ, c.ShipHeading}
}

func (c Channels) touchdownOrder() []string {
	return []string{c.UASX, c.UASY, c.UASZ, c.ShipX, c.ShipY, c.ShipZ}
}

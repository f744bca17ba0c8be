package models

// Anchor is a catalogued reference station (beacon, cell tower, survey marker).
// Coordinates is nil until the anchor has been positioned or geocoded.
type Anchor struct {
	ID          string       // ID is the catalog key referenced by measurements.
	Name        string       // Name is a human readable label.
	Address     string       // Address is used to geocode anchors without coordinates.
	Coordinates *Coordinates // Coordinates of the anchor, if known.
}

// Measurement is one range reading towards the unknown point. Exactly one of
// AnchorID and Coordinates identifies where the reading was taken from.
type Measurement struct {
	AnchorID    string
	Coordinates *Coordinates
	Distance    float64 // Distance in the unit chosen by the caller.
}

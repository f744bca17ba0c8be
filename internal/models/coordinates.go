package models

// Coordinates represents a geographical point in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`  // Latitude of the point, positive north.
	Longitude float64 `json:"longitude"` // Longitude of the point, positive east.
}

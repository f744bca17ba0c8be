package service

import "errors"

var (
	// ErrInvalidMeasurementCount is returned when a request does not carry exactly three measurements.
	ErrInvalidMeasurementCount = errors.New("exactly three measurements are required")
	// ErrMeasurementSource is returned when a measurement names both or neither of an anchor and coordinates.
	ErrMeasurementSource = errors.New("measurement must reference either an anchor or coordinates")
	// ErrCatalogUnavailable is returned when anchors are referenced but no catalog is configured.
	ErrCatalogUnavailable = errors.New("anchor catalog is not configured")
	// ErrAnchorNotFound is returned for anchor IDs missing from the catalog.
	ErrAnchorNotFound = errors.New("anchor not found")
	// ErrAnchorUnresolved is returned when an anchor has no coordinates and cannot be geocoded.
	ErrAnchorUnresolved = errors.New("anchor position could not be resolved")
)

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/UnknownOlympus/locus/internal/geocoding"
	"github.com/UnknownOlympus/locus/internal/metrics"
	"github.com/UnknownOlympus/locus/internal/models"
	"github.com/UnknownOlympus/locus/internal/repository"
	"github.com/UnknownOlympus/locus/internal/trilateration"
)

// measurementCount is the number of ranges a spherical trilateration consumes.
const measurementCount = 3

// Locator turns three range measurements into a position. Anchors referenced
// by ID are looked up in the catalog and geocoded when they have no position.
// Results are returned to the caller and never stored.
type Locator struct {
	log      *slog.Logger         // Logger for logging service activities
	repo     repository.Interface // Anchor catalog, nil when not configured
	provider geocoding.Provider   // Geocoder for unpositioned anchors, nil when disabled
	metrics  *metrics.Metrics     // Metrics for tracking service outcomes
}

// NewLocator creates a Locator. repo and provider may be nil.
func NewLocator(
	log *slog.Logger,
	repo repository.Interface,
	provider geocoding.Provider,
	appMetrics *metrics.Metrics,
) *Locator {
	return &Locator{
		log:      log,
		repo:     repo,
		provider: provider,
		metrics:  appMetrics,
	}
}

// Locate resolves the measurements to reference points and intersects them.
// Distances are interpreted as miles when inMiles is set, kilometers otherwise.
func (l *Locator) Locate(
	ctx context.Context,
	measurements []models.Measurement,
	inMiles bool,
) (*models.Coordinates, error) {
	startTime := time.Now()
	coords, err := l.locate(ctx, measurements, inMiles)
	l.metrics.SolveSeconds.Observe(time.Since(startTime).Seconds())

	outcome := outcomeOf(err)
	l.metrics.SolvesTotal.WithLabelValues(outcome).Inc()

	if err != nil {
		l.log.WarnContext(ctx, "Failed to locate point", "outcome", outcome, "error", err)
		return nil, err
	}

	l.log.DebugContext(ctx, "Point located",
		"latitude", coords.Latitude, "longitude", coords.Longitude, "miles", inMiles)

	return coords, nil
}

func (l *Locator) locate(
	ctx context.Context,
	measurements []models.Measurement,
	inMiles bool,
) (*models.Coordinates, error) {
	if len(measurements) != measurementCount {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMeasurementCount, len(measurements))
	}

	positions, err := l.resolve(ctx, measurements)
	if err != nil {
		return nil, err
	}

	solver := trilateration.NewSolver()
	solver.SetUnitMiles(inMiles)
	for idx, m := range measurements {
		pos := positions[idx]
		if err = models.NewReferencePoint(pos.Latitude, pos.Longitude, m.Distance).Validate(); err != nil {
			return nil, fmt.Errorf("measurement %d: %w", idx+1, err)
		}
		if err = solver.SetPoint(idx+1, pos.Latitude, pos.Longitude, m.Distance); err != nil {
			return nil, err
		}
	}

	coords, ok, err := solver.Solve()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New("solver is missing reference points")
	}

	return &coords, nil
}

// resolve returns the anchor position of every measurement, in order.
func (l *Locator) resolve(ctx context.Context, measurements []models.Measurement) ([]models.Coordinates, error) {
	var ids []string
	seen := make(map[string]bool)
	for idx, m := range measurements {
		if (m.AnchorID == "") == (m.Coordinates == nil) {
			return nil, fmt.Errorf("%w: measurement %d", ErrMeasurementSource, idx+1)
		}
		if m.AnchorID != "" && !seen[m.AnchorID] {
			seen[m.AnchorID] = true
			ids = append(ids, m.AnchorID)
		}
	}

	catalog, err := l.fetchAnchors(ctx, ids)
	if err != nil {
		return nil, err
	}

	positions := make([]models.Coordinates, len(measurements))
	for idx, m := range measurements {
		if m.Coordinates != nil {
			positions[idx] = *m.Coordinates
			l.metrics.AnchorLookups.WithLabelValues(metrics.SourceInline).Inc()
			continue
		}

		anchor, ok := catalog[m.AnchorID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrAnchorNotFound, m.AnchorID)
		}
		if anchor.Coordinates == nil {
			coords, errGeo := l.geocodeAnchor(ctx, anchor)
			if errGeo != nil {
				return nil, errGeo
			}
			anchor.Coordinates = coords
			catalog[m.AnchorID] = anchor
		} else {
			l.metrics.AnchorLookups.WithLabelValues(metrics.SourceCatalog).Inc()
		}
		positions[idx] = *anchor.Coordinates
	}

	return positions, nil
}

func (l *Locator) fetchAnchors(ctx context.Context, ids []string) (map[string]models.Anchor, error) {
	catalog := make(map[string]models.Anchor, len(ids))
	if len(ids) == 0 {
		return catalog, nil
	}
	if l.repo == nil {
		return nil, ErrCatalogUnavailable
	}

	anchors, err := l.repo.FetchAnchors(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch anchors: %w", err)
	}
	for _, a := range anchors {
		catalog[a.ID] = a
	}

	return catalog, nil
}

// geocodeAnchor positions an anchor from its address and caches the result in
// the catalog. A failed cache write is logged and otherwise ignored.
func (l *Locator) geocodeAnchor(ctx context.Context, anchor models.Anchor) (*models.Coordinates, error) {
	if l.provider == nil {
		return nil, fmt.Errorf("%w: %s has no coordinates and geocoding is disabled", ErrAnchorUnresolved, anchor.ID)
	}
	if anchor.Address == "" {
		return nil, fmt.Errorf("%w: %s has neither coordinates nor address", ErrAnchorUnresolved, anchor.ID)
	}

	coords, err := l.provider.Geocode(ctx, anchor.Address)
	if err != nil {
		l.metrics.GeocoderErrors.Inc()
		return nil, fmt.Errorf("%w: %s: %w", ErrAnchorUnresolved, anchor.ID, err)
	}
	l.metrics.AnchorLookups.WithLabelValues(metrics.SourceGeocoder).Inc()
	l.log.InfoContext(ctx, "Anchor geocoded", "anchor", anchor.ID, "address", anchor.Address)

	if err = l.repo.UpdateAnchorCoordinates(ctx, anchor.ID, *coords); err != nil {
		l.log.ErrorContext(ctx, "Could not cache anchor coordinates", "anchor", anchor.ID, "error", err)
	}

	return coords, nil
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, trilateration.ErrNoIntersection):
		return metrics.OutcomeNoIntersection
	case errors.Is(err, trilateration.ErrDegenerateGeometry):
		return metrics.OutcomeDegenerate
	case IsInvalidInput(err):
		return metrics.OutcomeInvalidInput
	case errors.Is(err, ErrAnchorNotFound),
		errors.Is(err, ErrAnchorUnresolved),
		errors.Is(err, ErrCatalogUnavailable):
		return metrics.OutcomeAnchorError
	default:
		return metrics.OutcomeError
	}
}

// IsInvalidInput reports whether err was caused by a malformed request rather
// than by the geometry or the anchor catalog.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidMeasurementCount) ||
		errors.Is(err, ErrMeasurementSource) ||
		errors.Is(err, models.ErrLatitudeOutOfRange) ||
		errors.Is(err, models.ErrLongitudeOutOfRange) ||
		errors.Is(err, models.ErrInvalidRadius)
}

package trilateration

import (
	"fmt"

	"github.com/UnknownOlympus/locus/internal/models"
)

// Solver collects three reference points in stages and intersects them on
// demand. It is not safe for concurrent use; create one per computation.
type Solver struct {
	earthRadius float64
	inMiles     bool
	points      [3]*models.ReferencePoint
}

// NewSolver returns an empty solver working in kilometers on a sphere of EarthRadiusKm.
func NewSolver() *Solver {
	return &Solver{earthRadius: EarthRadiusKm}
}

// SetUnitMiles selects whether distances passed to SetPoint are in miles.
// Points stored earlier keep the unit that was active when they were set.
func (s *Solver) SetUnitMiles(inMiles bool) {
	s.inMiles = inMiles
}

// InMiles reports the current unit flag.
func (s *Solver) InMiles() bool {
	return s.inMiles
}

// EarthRadius returns the sphere radius in kilometers.
func (s *Solver) EarthRadius() float64 {
	return s.earthRadius
}

// SetPoint stores reference point index (1..3), converting distance to
// kilometers according to the current unit flag. An existing point is replaced.
func (s *Solver) SetPoint(index int, lat, lng, distance float64) error {
	if index < 1 || index > len(s.points) {
		return fmt.Errorf("%w: got %d", ErrInvalidPointIndex, index)
	}

	p := models.NewReferencePoint(lat, lng, ToKilometers(distance, s.inMiles))
	s.points[index-1] = &p

	return nil
}

// Point returns the stored reference point at index (1..3), radius in kilometers.
func (s *Solver) Point(index int) (models.ReferencePoint, bool) {
	if index < 1 || index > len(s.points) || s.points[index-1] == nil {
		return models.ReferencePoint{}, false
	}

	return *s.points[index-1], true
}

// Ready reports whether all three points have been set.
func (s *Solver) Ready() bool {
	for _, p := range s.points {
		if p == nil {
			return false
		}
	}

	return true
}

// Solve intersects the stored points. When any point is missing it returns
// ok == false and a nil error without computing anything.
func (s *Solver) Solve() (models.Coordinates, bool, error) {
	if !s.Ready() {
		return models.Coordinates{}, false, nil
	}

	coords, err := intersect(s.earthRadius, *s.points[0], *s.points[1], *s.points[2])
	if err != nil {
		return models.Coordinates{}, true, err
	}

	return coords, true, nil
}

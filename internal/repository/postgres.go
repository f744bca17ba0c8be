package repository

import (
	"context"
	"fmt"

	"github.com/UnknownOlympus/locus/internal/models"
)

// Migrate creates the anchors table when it does not exist yet.
func (r *Repository) Migrate(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS public.anchors (
			anchor_id   TEXT PRIMARY KEY,
			name        TEXT NOT NULL DEFAULT '',
			address     TEXT,
			latitude    DOUBLE PRECISION,
			longitude   DOUBLE PRECISION,
			geocoded_at TIMESTAMPTZ
		);
	`

	if _, err := r.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create anchors table: %w", err)
	}

	return nil
}

// FetchAnchors retrieves the catalog entries for the given anchor IDs.
// Unknown IDs are simply absent from the result; the order is not guaranteed.
// Anchors without both latitude and longitude are returned with nil Coordinates.
func (r *Repository) FetchAnchors(ctx context.Context, ids []string) ([]models.Anchor, error) {
	var anchors []models.Anchor
	query := `
		SELECT
			anchor_id,
			name,
			COALESCE(address, ''),
			latitude IS NOT NULL AND longitude IS NOT NULL,
			COALESCE(latitude, 0),
			COALESCE(longitude, 0)
		FROM public.anchors
		WHERE anchor_id = ANY($1);
	`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query anchors: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			anchor    models.Anchor
			hasCoords bool
			lat, lng  float64
		)
		if errScan := rows.Scan(&anchor.ID, &anchor.Name, &anchor.Address, &hasCoords, &lat, &lng); errScan != nil {
			return nil, fmt.Errorf("failed to scan anchor: %w", errScan)
		}
		if hasCoords {
			anchor.Coordinates = &models.Coordinates{Latitude: lat, Longitude: lng}
		}
		r.log.DebugContext(ctx, "Anchor loaded from catalog",
			"ID", anchor.ID, "positioned", hasCoords)
		anchors = append(anchors, anchor)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return anchors, nil
}

// UpdateAnchorCoordinates stores the geocoded position of an anchor so later
// lookups do not hit the geocoder again.
func (r *Repository) UpdateAnchorCoordinates(ctx context.Context, anchorID string, coords models.Coordinates) error {
	query := `
		UPDATE public.anchors
		SET
			latitude = $1,
			longitude = $2,
			geocoded_at = NOW()
		WHERE
			anchor_id = $3;
	`

	_, err := r.db.Exec(ctx, query, coords.Latitude, coords.Longitude, anchorID)
	if err != nil {
		return fmt.Errorf("failed to update anchor coordinates: %w", err)
	}

	return nil
}

package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"travel-booking/mapping"
	detailsModel "travel-booking/models/details"
)

// DetailsKind names the catalog whose extended fields are addressed
type DetailsKind string

const (
	AccommodationDetails DetailsKind = "accommodation"
	DestinationDetails   DetailsKind = "destination"
	ItineraryDetails     DetailsKind = "itinerary"
)

// Table is the details collection of the catalog
func (k DetailsKind) Table() string {
	return string(k) + "_details"
}

func (k DetailsKind) IsValid() bool {
	switch k {
	case AccommodationDetails, DestinationDetails, ItineraryDetails:
		return true
	default:
		return false
	}
}

// GetDetails loads the extended fields of one catalog entry
func (s *Storage) GetDetails(ctx context.Context, kind DetailsKind, parentID string) (map[string]interface{}, bool, error) {
	if !kind.IsValid() {
		return nil, false, fmt.Errorf("unknown details kind %q", kind)
	}
	var row detailsModel.Details
	if err := s.backend.Table(kind.Table()).First(ctx, parentID, &row); err != nil {
		if errors.Is(err, ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, opError("get", kind.Table(), err)
	}
	return mapping.DetailsFromStore(row), true, nil
}

// SaveDetails replaces the extended fields of a catalog entry, creating
// the document on first use.
func (s *Storage) SaveDetails(ctx context.Context, kind DetailsKind, parentID string, data map[string]interface{}) (map[string]interface{}, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("unknown details kind %q", kind)
	}
	table := kind.Table()
	row := mapping.DetailsToStore(parentID, data)

	err := s.backend.Transaction(ctx, func(b Backend) error {
		var existing detailsModel.Details
		err := b.Table(table).First(ctx, parentID, &existing)
		switch {
		case errors.Is(err, ErrNoRows):
			return b.Table(table).Insert(ctx, &row)
		case err != nil:
			return err
		}
		return b.Table(table).Update(ctx, parentID, map[string]interface{}{"data": row.Data, "updated_at": time.Now().UTC()}, &row)
	})
	if err != nil {
		return nil, opError("save", table, err)
	}
	return mapping.DetailsFromStore(row), nil
}

// DeleteDetails removes the extended fields of a catalog entry
func (s *Storage) DeleteDetails(ctx context.Context, kind DetailsKind, parentID string) (bool, error) {
	if !kind.IsValid() {
		return false, fmt.Errorf("unknown details kind %q", kind)
	}
	var model detailsModel.Details
	if err := s.backend.Table(kind.Table()).Delete(ctx, parentID, &model); err != nil {
		if errors.Is(err, ErrNoRows) {
			return false, nil
		}
		return false, opError("delete", kind.Table(), err)
	}
	return true, nil
}

package storage

import (
	"context"

	"travel-booking/mapping"
	itineraryModel "travel-booking/models/itinerary"
	itineraryTypes "travel-booking/types/itinerary"
)

var itineraries = collection[itineraryModel.Itinerary, itineraryTypes.Itinerary, itineraryTypes.Patch]{
	table:     itineraryModel.Itinerary{}.TableName(),
	fromStore: mapping.ItineraryFromStore,
	toStore:   mapping.ItineraryToStore,
	patch:     mapping.ItineraryPatchToStore,
}

var adminItineraries = itineraries.admin()

func (s *Storage) ListItineraries(ctx context.Context) ([]itineraryTypes.Itinerary, error) {
	return itineraries.list(ctx, s.backend)
}

func (s *Storage) GetItinerary(ctx context.Context, id string) (itineraryTypes.Itinerary, bool, error) {
	return itineraries.get(ctx, s.backend, id)
}

func (s *Storage) CreateItinerary(ctx context.Context, rec itineraryTypes.Itinerary) (itineraryTypes.Itinerary, error) {
	return itineraries.create(ctx, s.backend, rec)
}

func (s *Storage) UpdateItinerary(ctx context.Context, id string, p itineraryTypes.Patch) (itineraryTypes.Itinerary, bool, error) {
	return itineraries.update(ctx, s.backend, id, p)
}

func (s *Storage) DeleteItinerary(ctx context.Context, id string) (bool, error) {
	return itineraries.remove(ctx, s.backend, id)
}

func (s *Storage) ListAdminItineraries(ctx context.Context) ([]itineraryTypes.Itinerary, error) {
	return adminItineraries.list(ctx, s.backend)
}

func (s *Storage) GetAdminItinerary(ctx context.Context, id string) (itineraryTypes.Itinerary, bool, error) {
	return adminItineraries.get(ctx, s.backend, id)
}

func (s *Storage) CreateAdminItinerary(ctx context.Context, rec itineraryTypes.Itinerary) (itineraryTypes.Itinerary, error) {
	return adminItineraries.create(ctx, s.backend, rec)
}

func (s *Storage) UpdateAdminItinerary(ctx context.Context, id string, p itineraryTypes.Patch) (itineraryTypes.Itinerary, bool, error) {
	return adminItineraries.update(ctx, s.backend, id, p)
}

func (s *Storage) DeleteAdminItinerary(ctx context.Context, id string) (bool, error) {
	return adminItineraries.remove(ctx, s.backend, id)
}

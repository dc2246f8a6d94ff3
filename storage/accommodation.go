package storage

import (
	"context"

	"travel-booking/mapping"
	accommodationModel "travel-booking/models/accommodation"
	accommodationTypes "travel-booking/types/accommodation"
)

var accommodations = collection[accommodationModel.Accommodation, accommodationTypes.Accommodation, accommodationTypes.Patch]{
	table:     accommodationModel.Accommodation{}.TableName(),
	fromStore: mapping.AccommodationFromStore,
	toStore:   mapping.AccommodationToStore,
	patch:     mapping.AccommodationPatchToStore,
}

var adminAccommodations = accommodations.admin()

func (s *Storage) ListAccommodations(ctx context.Context) ([]accommodationTypes.Accommodation, error) {
	return accommodations.list(ctx, s.backend)
}

func (s *Storage) GetAccommodation(ctx context.Context, id string) (accommodationTypes.Accommodation, bool, error) {
	return accommodations.get(ctx, s.backend, id)
}

func (s *Storage) CreateAccommodation(ctx context.Context, a accommodationTypes.Accommodation) (accommodationTypes.Accommodation, error) {
	return accommodations.create(ctx, s.backend, a)
}

func (s *Storage) UpdateAccommodation(ctx context.Context, id string, p accommodationTypes.Patch) (accommodationTypes.Accommodation, bool, error) {
	return accommodations.update(ctx, s.backend, id, p)
}

func (s *Storage) DeleteAccommodation(ctx context.Context, id string) (bool, error) {
	return accommodations.remove(ctx, s.backend, id)
}

func (s *Storage) ListAdminAccommodations(ctx context.Context) ([]accommodationTypes.Accommodation, error) {
	return adminAccommodations.list(ctx, s.backend)
}

func (s *Storage) GetAdminAccommodation(ctx context.Context, id string) (accommodationTypes.Accommodation, bool, error) {
	return adminAccommodations.get(ctx, s.backend, id)
}

func (s *Storage) CreateAdminAccommodation(ctx context.Context, a accommodationTypes.Accommodation) (accommodationTypes.Accommodation, error) {
	return adminAccommodations.create(ctx, s.backend, a)
}

func (s *Storage) UpdateAdminAccommodation(ctx context.Context, id string, p accommodationTypes.Patch) (accommodationTypes.Accommodation, bool, error) {
	return adminAccommodations.update(ctx, s.backend, id, p)
}

func (s *Storage) DeleteAdminAccommodation(ctx context.Context, id string) (bool, error) {
	return adminAccommodations.remove(ctx, s.backend, id)
}

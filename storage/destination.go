package storage

import (
	"context"

	"travel-booking/mapping"
	destinationModel "travel-booking/models/destination"
	destinationTypes "travel-booking/types/destination"
)

var destinations = collection[destinationModel.Destination, destinationTypes.Destination, destinationTypes.Patch]{
	table:     destinationModel.Destination{}.TableName(),
	fromStore: mapping.DestinationFromStore,
	toStore:   mapping.DestinationToStore,
	patch:     mapping.DestinationPatchToStore,
}

var adminDestinations = destinations.admin()

func (s *Storage) ListDestinations(ctx context.Context) ([]destinationTypes.Destination, error) {
	return destinations.list(ctx, s.backend)
}

func (s *Storage) GetDestination(ctx context.Context, id string) (destinationTypes.Destination, bool, error) {
	return destinations.get(ctx, s.backend, id)
}

func (s *Storage) CreateDestination(ctx context.Context, rec destinationTypes.Destination) (destinationTypes.Destination, error) {
	return destinations.create(ctx, s.backend, rec)
}

func (s *Storage) UpdateDestination(ctx context.Context, id string, p destinationTypes.Patch) (destinationTypes.Destination, bool, error) {
	return destinations.update(ctx, s.backend, id, p)
}

func (s *Storage) DeleteDestination(ctx context.Context, id string) (bool, error) {
	return destinations.remove(ctx, s.backend, id)
}

func (s *Storage) ListAdminDestinations(ctx context.Context) ([]destinationTypes.Destination, error) {
	return adminDestinations.list(ctx, s.backend)
}

func (s *Storage) GetAdminDestination(ctx context.Context, id string) (destinationTypes.Destination, bool, error) {
	return adminDestinations.get(ctx, s.backend, id)
}

func (s *Storage) CreateAdminDestination(ctx context.Context, rec destinationTypes.Destination) (destinationTypes.Destination, error) {
	return adminDestinations.create(ctx, s.backend, rec)
}

func (s *Storage) UpdateAdminDestination(ctx context.Context, id string, p destinationTypes.Patch) (destinationTypes.Destination, bool, error) {
	return adminDestinations.update(ctx, s.backend, id, p)
}

func (s *Storage) DeleteAdminDestination(ctx context.Context, id string) (bool, error) {
	return adminDestinations.remove(ctx, s.backend, id)
}

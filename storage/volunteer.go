package storage

import (
	"context"

	"travel-booking/mapping"
	volunteerModel "travel-booking/models/volunteer"
	volunteerTypes "travel-booking/types/volunteer"
)

var volunteerApplications = collection[volunteerModel.Application, volunteerTypes.Application, volunteerTypes.Patch]{
	table:     volunteerModel.Application{}.TableName(),
	order:     OrderNewestFirst,
	fromStore: mapping.VolunteerApplicationFromStore,
	toStore:   mapping.VolunteerApplicationToStore,
	patch:     mapping.VolunteerApplicationPatchToStore,
}

func (s *Storage) ListVolunteerApplications(ctx context.Context) ([]volunteerTypes.Application, error) {
	return volunteerApplications.list(ctx, s.backend)
}

func (s *Storage) GetVolunteerApplication(ctx context.Context, id string) (volunteerTypes.Application, bool, error) {
	return volunteerApplications.get(ctx, s.backend, id)
}

func (s *Storage) CreateVolunteerApplication(ctx context.Context, rec volunteerTypes.Application) (volunteerTypes.Application, error) {
	return volunteerApplications.create(ctx, s.backend, rec)
}

func (s *Storage) UpdateVolunteerApplication(ctx context.Context, id string, p volunteerTypes.Patch) (volunteerTypes.Application, bool, error) {
	return volunteerApplications.update(ctx, s.backend, id, p)
}

func (s *Storage) DeleteVolunteerApplication(ctx context.Context, id string) (bool, error) {
	return volunteerApplications.remove(ctx, s.backend, id)
}

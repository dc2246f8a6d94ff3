package storage

import (
	"context"

	"travel-booking/mapping"
	bookingModel "travel-booking/models/booking"
	bookingTypes "travel-booking/types/booking"
)

var bookings = collection[bookingModel.Booking, bookingTypes.Booking, bookingTypes.Patch]{
	table:     bookingModel.Booking{}.TableName(),
	order:     OrderNewestFirst,
	fromStore: mapping.BookingFromStore,
	toStore:   mapping.BookingToStore,
	patch:     mapping.BookingPatchToStore,
}

func (s *Storage) ListBookings(ctx context.Context) ([]bookingTypes.Booking, error) {
	return bookings.list(ctx, s.backend)
}

func (s *Storage) GetBooking(ctx context.Context, id string) (bookingTypes.Booking, bool, error) {
	return bookings.get(ctx, s.backend, id)
}

func (s *Storage) CreateBooking(ctx context.Context, rec bookingTypes.Booking) (bookingTypes.Booking, error) {
	return bookings.create(ctx, s.backend, rec)
}

func (s *Storage) UpdateBooking(ctx context.Context, id string, p bookingTypes.Patch) (bookingTypes.Booking, bool, error) {
	return bookings.update(ctx, s.backend, id, p)
}

func (s *Storage) DeleteBooking(ctx context.Context, id string) (bool, error) {
	return bookings.remove(ctx, s.backend, id)
}

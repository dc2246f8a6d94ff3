package booking

import (
	"travel-booking/controllers/resource"
	"travel-booking/services/notify"
	"travel-booking/storage"
	bookingTypes "travel-booking/types/booking"
)

type Controller = resource.Controller[bookingTypes.Booking, bookingTypes.Patch]

// NewBookingController checks the stay dates and derives the number of
// days before a booking is stored or its dates are changed
func NewBookingController(s *storage.Storage, notifier *notify.Notifier) *Controller {
	return &Controller{
		Name: "Booking",
		Store: resource.Store[bookingTypes.Booking, bookingTypes.Patch]{
			List:   s.ListBookings,
			Get:    s.GetBooking,
			Create: s.CreateBooking,
			Update: s.UpdateBooking,
			Delete: s.DeleteBooking,
		},
		Prepare:       (*bookingTypes.Booking).Normalize,
		PrepareUpdate: bookingTypes.Booking.NormalizePatch,
		AfterCreate:   notifier.Booking,
	}
}

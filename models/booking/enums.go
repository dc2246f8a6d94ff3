package booking

// BookingType says which catalog a booking's ItemID points into
type BookingType string

const (
	BookingTypeAccommodation BookingType = "accommodation"
	BookingTypeItinerary     BookingType = "itinerary"
)

func (bt BookingType) String() string {
	return string(bt)
}

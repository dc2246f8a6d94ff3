package mapping

import (
	bookingModel "travel-booking/models/booking"
	bookingTypes "travel-booking/types/booking"
)

func BookingFromStore(row bookingModel.Booking) bookingTypes.Booking {
	return bookingTypes.Booking{
		ID:              row.ID,
		BookingType:     row.BookingType.String(),
		ItemID:          row.ItemID,
		ItemName:        row.ItemName,
		FullName:        row.FullName,
		Email:           row.Email,
		Phone:           row.Phone,
		CheckInDate:     row.CheckInDate,
		CheckOutDate:    row.CheckOutDate,
		NumberOfDays:    row.NumberOfDays,
		Adults:          row.Adults,
		Children:        row.Children,
		SpecialRequests: row.SpecialRequests,
		CreatedAt:       timePtr(row.CreatedAt),
	}
}

func BookingToStore(b bookingTypes.Booking) bookingModel.Booking {
	return bookingModel.Booking{
		BookingType:     bookingModel.BookingType(b.BookingType),
		ItemID:          b.ItemID,
		ItemName:        b.ItemName,
		FullName:        b.FullName,
		Email:           b.Email,
		Phone:           b.Phone,
		CheckInDate:     b.CheckInDate,
		CheckOutDate:    b.CheckOutDate,
		NumberOfDays:    b.NumberOfDays,
		Adults:          b.Adults,
		Children:        b.Children,
		SpecialRequests: b.SpecialRequests,
	}
}

func BookingPatchToStore(p bookingTypes.Patch) map[string]interface{} {
	c := columns{}
	c.set("booking_type", deref(p.BookingType), p.BookingType != nil)
	c.set("item_id", deref(p.ItemID), p.ItemID != nil)
	c.set("item_name", deref(p.ItemName), p.ItemName != nil)
	c.set("full_name", deref(p.FullName), p.FullName != nil)
	c.set("email", deref(p.Email), p.Email != nil)
	c.set("phone", deref(p.Phone), p.Phone != nil)
	c.set("check_in_date", deref(p.CheckInDate), p.CheckInDate != nil)
	c.set("check_out_date", deref(p.CheckOutDate), p.CheckOutDate != nil)
	c.set("number_of_days", deref(p.NumberOfDays), p.NumberOfDays != nil)
	c.set("adults", deref(p.Adults), p.Adults != nil)
	c.set("children", deref(p.Children), p.Children != nil)
	c.set("special_requests", deref(p.SpecialRequests), p.SpecialRequests != nil)
	return c
}

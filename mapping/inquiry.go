package mapping

import (
	inquiryModel "travel-booking/models/inquiry"
	inquiryTypes "travel-booking/types/inquiry"
)

func InquiryFromStore(row inquiryModel.Inquiry) inquiryTypes.Inquiry {
	return inquiryTypes.Inquiry{
		ID:            row.ID,
		FirstName:     row.FirstName,
		LastName:      row.LastName,
		Email:         row.Email,
		Phone:         row.Phone,
		ArrivalDate:   row.ArrivalDate,
		DepartureDate: row.DepartureDate,
		Adults:        row.Adults,
		Children:      row.Children,
		Message:       row.Message,
		CreatedAt:     timePtr(row.CreatedAt),
	}
}

func InquiryToStore(i inquiryTypes.Inquiry) inquiryModel.Inquiry {
	return inquiryModel.Inquiry{
		FirstName:     i.FirstName,
		LastName:      i.LastName,
		Email:         i.Email,
		Phone:         i.Phone,
		ArrivalDate:   i.ArrivalDate,
		DepartureDate: i.DepartureDate,
		Adults:        i.Adults,
		Children:      i.Children,
		Message:       i.Message,
	}
}

func InquiryPatchToStore(p inquiryTypes.Patch) map[string]interface{} {
	c := columns{}
	c.set("first_name", deref(p.FirstName), p.FirstName != nil)
	c.set("last_name", deref(p.LastName), p.LastName != nil)
	c.set("email", deref(p.Email), p.Email != nil)
	c.set("phone", deref(p.Phone), p.Phone != nil)
	c.set("arrival_date", deref(p.ArrivalDate), p.ArrivalDate != nil)
	c.set("departure_date", deref(p.DepartureDate), p.DepartureDate != nil)
	c.set("adults", deref(p.Adults), p.Adults != nil)
	c.set("children", deref(p.Children), p.Children != nil)
	c.set("message", deref(p.Message), p.Message != nil)
	return c
}

package mapping

import (
	volunteerModel "travel-booking/models/volunteer"
	volunteerTypes "travel-booking/types/volunteer"
)

func VolunteerApplicationFromStore(row volunteerModel.Application) volunteerTypes.Application {
	return volunteerTypes.Application{
		ID:                           row.ID,
		ProgramID:                    row.ProgramID,
		FirstName:                    row.FirstName,
		LastName:                     row.LastName,
		Email:                        row.Email,
		Phone:                        row.Phone,
		DateOfBirth:                  row.DateOfBirth,
		Nationality:                  row.Nationality,
		StartDate:                    row.StartDate,
		Duration:                     row.Duration,
		Excursions:                   fromArray(row.Excursions),
		EmergencyContactName:         row.EmergencyContactName,
		EmergencyContactPhone:        row.EmergencyContactPhone,
		EmergencyContactRelationship: row.EmergencyContactRelationship,
		Motivation:                   row.Motivation,
		CreatedAt:                    timePtr(row.CreatedAt),
	}
}

func VolunteerApplicationToStore(a volunteerTypes.Application) volunteerModel.Application {
	return volunteerModel.Application{
		ProgramID:                    a.ProgramID,
		FirstName:                    a.FirstName,
		LastName:                     a.LastName,
		Email:                        a.Email,
		Phone:                        a.Phone,
		DateOfBirth:                  a.DateOfBirth,
		Nationality:                  a.Nationality,
		StartDate:                    a.StartDate,
		Duration:                     a.Duration,
		Excursions:                   toArray(a.Excursions),
		EmergencyContactName:         a.EmergencyContactName,
		EmergencyContactPhone:        a.EmergencyContactPhone,
		EmergencyContactRelationship: a.EmergencyContactRelationship,
		Motivation:                   a.Motivation,
	}
}

func VolunteerApplicationPatchToStore(p volunteerTypes.Patch) map[string]interface{} {
	c := columns{}
	c.set("program_id", deref(p.ProgramID), p.ProgramID != nil)
	c.set("first_name", deref(p.FirstName), p.FirstName != nil)
	c.set("last_name", deref(p.LastName), p.LastName != nil)
	c.set("email", deref(p.Email), p.Email != nil)
	c.set("phone", deref(p.Phone), p.Phone != nil)
	c.set("date_of_birth", deref(p.DateOfBirth), p.DateOfBirth != nil)
	c.set("nationality", deref(p.Nationality), p.Nationality != nil)
	c.set("start_date", deref(p.StartDate), p.StartDate != nil)
	c.set("duration", deref(p.Duration), p.Duration != nil)
	c.set("emergency_contact_name", deref(p.EmergencyContactName), p.EmergencyContactName != nil)
	c.set("emergency_contact_phone", deref(p.EmergencyContactPhone), p.EmergencyContactPhone != nil)
	c.set("emergency_contact_relationship", deref(p.EmergencyContactRelationship), p.EmergencyContactRelationship != nil)
	c.set("motivation", deref(p.Motivation), p.Motivation != nil)
	if p.Excursions != nil {
		c["excursions"] = toArray(*p.Excursions)
	}
	return c
}

package mapping

import (
	accommodationModel "travel-booking/models/accommodation"
	accommodationTypes "travel-booking/types/accommodation"
)

// AccommodationFromStore maps an accommodations row to its API shape
func AccommodationFromStore(row accommodationModel.Accommodation) accommodationTypes.Accommodation {
	return accommodationTypes.Accommodation{
		ID:          row.ID,
		Name:        row.Name,
		Continental: row.Continental,
		Country:     row.Country,
		Destination: row.Destination,
		Category:    row.Category,
		Description: row.Description,
		Price:       row.Price,
		Rating:      row.Rating,
		ImageURL:    row.ImageURL,
		Features:    fromArray(row.Features),
		CreatedAt:   timePtr(row.CreatedAt),
	}
}

// AccommodationToStore maps an API record to a row. The id and creation
// time are left for the store to assign.
func AccommodationToStore(a accommodationTypes.Accommodation) accommodationModel.Accommodation {
	return accommodationModel.Accommodation{
		Name:        a.Name,
		Continental: a.Continental,
		Country:     a.Country,
		Destination: a.Destination,
		Category:    a.Category,
		Description: a.Description,
		Price:       a.Price,
		Rating:      a.Rating,
		ImageURL:    a.ImageURL,
		Features:    toArray(a.Features),
	}
}

// AccommodationPatchToStore returns only the columns the patch sets
func AccommodationPatchToStore(p accommodationTypes.Patch) map[string]interface{} {
	c := columns{}
	c.set("name", deref(p.Name), p.Name != nil)
	c.set("continental", deref(p.Continental), p.Continental != nil)
	c.set("country", deref(p.Country), p.Country != nil)
	c.set("destination", deref(p.Destination), p.Destination != nil)
	c.set("category", deref(p.Category), p.Category != nil)
	c.set("description", deref(p.Description), p.Description != nil)
	c.set("price", deref(p.Price), p.Price != nil)
	c.set("rating", deref(p.Rating), p.Rating != nil)
	c.set("image_url", deref(p.ImageURL), p.ImageURL != nil)
	if p.Features != nil {
		c["features"] = toArray(*p.Features)
	}
	return c
}

package mapping

import (
	itineraryModel "travel-booking/models/itinerary"
	itineraryTypes "travel-booking/types/itinerary"
)

func ItineraryFromStore(row itineraryModel.Itinerary) itineraryTypes.Itinerary {
	return itineraryTypes.Itinerary{
		ID:          row.ID,
		Name:        row.Name,
		Duration:    row.Duration,
		Price:       row.Price,
		Category:    row.Category,
		Description: row.Description,
		Highlights:  fromArray(row.Highlights),
		Includes:    fromArray(row.Includes),
		Difficulty:  row.Difficulty,
		GroupSize:   row.GroupSize,
		Rating:      row.Rating,
		ImageURL:    row.ImageURL,
		CreatedAt:   timePtr(row.CreatedAt),
	}
}

func ItineraryToStore(i itineraryTypes.Itinerary) itineraryModel.Itinerary {
	return itineraryModel.Itinerary{
		Name:        i.Name,
		Duration:    i.Duration,
		Price:       i.Price,
		Category:    i.Category,
		Description: i.Description,
		Highlights:  toArray(i.Highlights),
		Includes:    toArray(i.Includes),
		Difficulty:  i.Difficulty,
		GroupSize:   i.GroupSize,
		Rating:      i.Rating,
		ImageURL:    i.ImageURL,
	}
}

func ItineraryPatchToStore(p itineraryTypes.Patch) map[string]interface{} {
	c := columns{}
	c.set("name", deref(p.Name), p.Name != nil)
	c.set("duration", deref(p.Duration), p.Duration != nil)
	c.set("price", deref(p.Price), p.Price != nil)
	c.set("category", deref(p.Category), p.Category != nil)
	c.set("description", deref(p.Description), p.Description != nil)
	c.set("difficulty", deref(p.Difficulty), p.Difficulty != nil)
	c.set("group_size", deref(p.GroupSize), p.GroupSize != nil)
	c.set("rating", deref(p.Rating), p.Rating != nil)
	c.set("image_url", deref(p.ImageURL), p.ImageURL != nil)
	if p.Highlights != nil {
		c["highlights"] = toArray(*p.Highlights)
	}
	if p.Includes != nil {
		c["includes"] = toArray(*p.Includes)
	}
	return c
}

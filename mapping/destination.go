package mapping

import (
	destinationModel "travel-booking/models/destination"
	destinationTypes "travel-booking/types/destination"
)

func DestinationFromStore(row destinationModel.Destination) destinationTypes.Destination {
	return destinationTypes.Destination{
		ID:          row.ID,
		Name:        row.Name,
		Continental: row.Continental,
		Country:     row.Country,
		Region:      row.Region,
		Description: row.Description,
		Highlights:  fromArray(row.Highlights),
		BestTime:    row.BestTime,
		ImageURL:    row.ImageURL,
		CreatedAt:   timePtr(row.CreatedAt),
	}
}

func DestinationToStore(d destinationTypes.Destination) destinationModel.Destination {
	return destinationModel.Destination{
		Name:        d.Name,
		Continental: d.Continental,
		Country:     d.Country,
		Region:      d.Region,
		Description: d.Description,
		Highlights:  toArray(d.Highlights),
		BestTime:    d.BestTime,
		ImageURL:    d.ImageURL,
	}
}

func DestinationPatchToStore(p destinationTypes.Patch) map[string]interface{} {
	c := columns{}
	c.set("name", deref(p.Name), p.Name != nil)
	c.set("continental", deref(p.Continental), p.Continental != nil)
	c.set("country", deref(p.Country), p.Country != nil)
	c.set("region", deref(p.Region), p.Region != nil)
	c.set("description", deref(p.Description), p.Description != nil)
	c.set("best_time", deref(p.BestTime), p.BestTime != nil)
	c.set("image_url", deref(p.ImageURL), p.ImageURL != nil)
	if p.Highlights != nil {
		c["highlights"] = toArray(*p.Highlights)
	}
	return c
}

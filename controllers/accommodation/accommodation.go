package accommodation

import (
	"strings"

	"travel-booking/constants"
	"travel-booking/controllers/resource"
	"travel-booking/storage"
	accommodationTypes "travel-booking/types/accommodation"

	"github.com/gofiber/fiber/v2"
)

type Controller = resource.Controller[accommodationTypes.Accommodation, accommodationTypes.Patch]

// NewAccommodationController serves the public accommodations table
func NewAccommodationController(s *storage.Storage) *Controller {
	return &Controller{
		Name: "Accommodation",
		Store: resource.Store[accommodationTypes.Accommodation, accommodationTypes.Patch]{
			List:   s.ListAccommodations,
			Get:    s.GetAccommodation,
			Create: s.CreateAccommodation,
			Update: s.UpdateAccommodation,
			Delete: s.DeleteAccommodation,
		},
		Filter: filter,
	}
}

// NewAdminAccommodationController serves admin_accommodations
func NewAdminAccommodationController(s *storage.Storage) *Controller {
	return &Controller{
		Name: "Accommodation",
		Store: resource.Store[accommodationTypes.Accommodation, accommodationTypes.Patch]{
			List:   s.ListAdminAccommodations,
			Get:    s.GetAdminAccommodation,
			Create: s.CreateAdminAccommodation,
			Update: s.UpdateAdminAccommodation,
			Delete: s.DeleteAdminAccommodation,
		},
	}
}

// filter applies the continent -> country -> destination cascade and an
// optional category from the query string
func filter(c *fiber.Ctx, items []accommodationTypes.Accommodation) []accommodationTypes.Accommodation {
	continental, country, destination := c.Query("continental"), c.Query("country"), c.Query("destination")
	category := c.Query("category")
	if continental == "" && country == "" && destination == "" && category == "" {
		return items
	}

	out := make([]accommodationTypes.Accommodation, 0, len(items))
	for _, a := range items {
		if !constants.LocationMatch(a.Continental, a.Country, a.Destination, continental, country, destination) {
			continue
		}
		if category != "" && !strings.EqualFold(a.Category, category) {
			continue
		}
		out = append(out, a)
	}
	return out
}

package itinerary

import (
	"strings"

	"travel-booking/controllers/resource"
	"travel-booking/storage"
	itineraryTypes "travel-booking/types/itinerary"

	"github.com/gofiber/fiber/v2"
)

type Controller = resource.Controller[itineraryTypes.Itinerary, itineraryTypes.Patch]

func NewItineraryController(s *storage.Storage) *Controller {
	return &Controller{
		Name: "Itinerary",
		Store: resource.Store[itineraryTypes.Itinerary, itineraryTypes.Patch]{
			List:   s.ListItineraries,
			Get:    s.GetItinerary,
			Create: s.CreateItinerary,
			Update: s.UpdateItinerary,
			Delete: s.DeleteItinerary,
		},
		Filter: func(c *fiber.Ctx, items []itineraryTypes.Itinerary) []itineraryTypes.Itinerary {
			category := c.Query("category")
			if category == "" {
				return items
			}
			out := make([]itineraryTypes.Itinerary, 0, len(items))
			for _, it := range items {
				if strings.EqualFold(it.Category, category) {
					out = append(out, it)
				}
			}
			return out
		},
	}
}

func NewAdminItineraryController(s *storage.Storage) *Controller {
	return &Controller{
		Name: "Itinerary",
		Store: resource.Store[itineraryTypes.Itinerary, itineraryTypes.Patch]{
			List:   s.ListAdminItineraries,
			Get:    s.GetAdminItinerary,
			Create: s.CreateAdminItinerary,
			Update: s.UpdateAdminItinerary,
			Delete: s.DeleteAdminItinerary,
		},
	}
}

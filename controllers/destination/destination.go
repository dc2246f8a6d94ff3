package destination

import (
	"travel-booking/constants"
	"travel-booking/controllers/resource"
	"travel-booking/storage"
	destinationTypes "travel-booking/types/destination"

	"github.com/gofiber/fiber/v2"
)

type Controller = resource.Controller[destinationTypes.Destination, destinationTypes.Patch]

func NewDestinationController(s *storage.Storage) *Controller {
	return &Controller{
		Name: "Destination",
		Store: resource.Store[destinationTypes.Destination, destinationTypes.Patch]{
			List:   s.ListDestinations,
			Get:    s.GetDestination,
			Create: s.CreateDestination,
			Update: s.UpdateDestination,
			Delete: s.DeleteDestination,
		},
		Filter: func(c *fiber.Ctx, items []destinationTypes.Destination) []destinationTypes.Destination {
			continental, country := c.Query("continental"), c.Query("country")
			if continental == "" && country == "" {
				return items
			}
			out := make([]destinationTypes.Destination, 0, len(items))
			for _, d := range items {
				if constants.LocationMatch(d.Continental, d.Country, "", continental, country, "") {
					out = append(out, d)
				}
			}
			return out
		},
	}
}

func NewAdminDestinationController(s *storage.Storage) *Controller {
	return &Controller{
		Name: "Destination",
		Store: resource.Store[destinationTypes.Destination, destinationTypes.Patch]{
			List:   s.ListAdminDestinations,
			Get:    s.GetAdminDestination,
			Create: s.CreateAdminDestination,
			Update: s.UpdateAdminDestination,
			Delete: s.DeleteAdminDestination,
		},
	}
}

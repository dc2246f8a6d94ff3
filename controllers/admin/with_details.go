package admin

import (
	"context"

	"travel-booking/controllers/resource"
	"travel-booking/storage"
	"travel-booking/types"
	accommodationTypes "travel-booking/types/accommodation"
	destinationTypes "travel-booking/types/destination"
	itineraryTypes "travel-booking/types/itinerary"

	"github.com/gofiber/fiber/v2"
)

// WithDetails is an admin catalog record plus its details document
type WithDetails[T any] struct {
	Item    T                      `json:"item"`
	Details map[string]interface{} `json:"details"`
}

// WithDetailsController creates an admin catalog record and its details in
// one transaction, so neither is stored without the other.
type WithDetailsController[T any] struct {
	Name    string
	Storage *storage.Storage
	Kind    storage.DetailsKind
	Create  func(ctx context.Context, tx *storage.Storage, rec T) (T, error)
	ID      func(rec T) string
}

func (wc *WithDetailsController[T]) Store(c *fiber.Ctx) error {
	var req WithDetails[T]
	if err := c.BodyParser(&req); err != nil {
		return resource.BadRequest(c, "Invalid request body", nil)
	}
	if fieldErrs := resource.Validate(&req.Item); fieldErrs != nil {
		return resource.BadRequest(c, "Validation failed", fieldErrs)
	}
	if req.Details == nil {
		req.Details = map[string]interface{}{}
	}

	var resp WithDetails[T]
	err := wc.Storage.Transaction(c.UserContext(), func(tx *storage.Storage) error {
		created, err := wc.Create(c.UserContext(), tx, req.Item)
		if err != nil {
			return err
		}
		details, err := tx.SaveDetails(c.UserContext(), wc.Kind, wc.ID(created), req.Details)
		if err != nil {
			return err
		}
		resp = WithDetails[T]{Item: created, Details: details}
		return nil
	})
	if err != nil {
		return resource.InternalError(c, "Failed to create "+wc.Name+" with details", err)
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: wc.Name + " created successfully",
		Status:  fiber.StatusCreated,
		Data:    resp,
	})
}

func NewAccommodationWithDetails(s *storage.Storage) *WithDetailsController[accommodationTypes.Accommodation] {
	return &WithDetailsController[accommodationTypes.Accommodation]{
		Name:    "Accommodation",
		Storage: s,
		Kind:    storage.AccommodationDetails,
		Create: func(ctx context.Context, tx *storage.Storage, rec accommodationTypes.Accommodation) (accommodationTypes.Accommodation, error) {
			return tx.CreateAdminAccommodation(ctx, rec)
		},
		ID: func(rec accommodationTypes.Accommodation) string { return rec.ID },
	}
}

func NewDestinationWithDetails(s *storage.Storage) *WithDetailsController[destinationTypes.Destination] {
	return &WithDetailsController[destinationTypes.Destination]{
		Name:    "Destination",
		Storage: s,
		Kind:    storage.DestinationDetails,
		Create: func(ctx context.Context, tx *storage.Storage, rec destinationTypes.Destination) (destinationTypes.Destination, error) {
			return tx.CreateAdminDestination(ctx, rec)
		},
		ID: func(rec destinationTypes.Destination) string { return rec.ID },
	}
}

func NewItineraryWithDetails(s *storage.Storage) *WithDetailsController[itineraryTypes.Itinerary] {
	return &WithDetailsController[itineraryTypes.Itinerary]{
		Name:    "Itinerary",
		Storage: s,
		Kind:    storage.ItineraryDetails,
		Create: func(ctx context.Context, tx *storage.Storage, rec itineraryTypes.Itinerary) (itineraryTypes.Itinerary, error) {
			return tx.CreateAdminItinerary(ctx, rec)
		},
		ID: func(rec itineraryTypes.Itinerary) string { return rec.ID },
	}
}

package details

import (
	"strconv"

	"travel-booking/controllers/resource"
	"travel-booking/storage"
	"travel-booking/types"

	"github.com/gofiber/fiber/v2"
)

// maxIDLength matches the id column of the details tables
const maxIDLength = 36

// DetailsController serves the extended-field document of one catalog
type DetailsController struct {
	Storage *storage.Storage
	Kind    storage.DetailsKind
}

func NewDetailsController(s *storage.Storage, kind storage.DetailsKind) *DetailsController {
	return &DetailsController{Storage: s, Kind: kind}
}

func (dc *DetailsController) name() string {
	return string(dc.Kind) + " details"
}

func (dc *DetailsController) Show(c *fiber.Ctx) error {
	data, found, err := dc.Storage.GetDetails(c.UserContext(), dc.Kind, c.Params("id"))
	if err != nil {
		return resource.InternalError(c, "Failed to get "+dc.name(), err)
	}
	if !found {
		return resource.NotFound(c, dc.name())
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: dc.name() + " retrieved successfully",
		Status:  fiber.StatusOK,
		Data:    data,
	})
}

// Save replaces the whole document. The body is any JSON object.
func (dc *DetailsController) Save(c *fiber.Ctx) error {
	id := c.Params("id")
	if len(id) > maxIDLength {
		return resource.BadRequest(c, "Invalid id", []types.FieldError{{Field: "id", Rule: "max", Param: strconv.Itoa(maxIDLength)}})
	}

	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil || body == nil {
		return resource.BadRequest(c, "Request body must be a JSON object", nil)
	}

	saved, err := dc.Storage.SaveDetails(c.UserContext(), dc.Kind, id, body)
	if err != nil {
		return resource.InternalError(c, "Failed to save "+dc.name(), err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: dc.name() + " saved successfully",
		Status:  fiber.StatusOK,
		Data:    saved,
	})
}

func (dc *DetailsController) Destroy(c *fiber.Ctx) error {
	deleted, err := dc.Storage.DeleteDetails(c.UserContext(), dc.Kind, c.Params("id"))
	if err != nil {
		return resource.InternalError(c, "Failed to delete "+dc.name(), err)
	}
	if !deleted {
		return resource.NotFound(c, dc.name())
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: dc.name() + " deleted successfully",
		Status:  fiber.StatusOK,
	})
}

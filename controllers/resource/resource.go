// Package resource provides the CRUD handlers every entity route shares.
package resource

import (
	"context"
	"errors"

	"travel-booking/logger"
	"travel-booking/storage"
	"travel-booking/types"

	"github.com/gofiber/fiber/v2"
)

// Store is the set of storage calls behind one entity's routes
type Store[T any, P any] struct {
	List   func(ctx context.Context) ([]T, error)
	Get    func(ctx context.Context, id string) (T, bool, error)
	Create func(ctx context.Context, rec T) (T, error)
	Update func(ctx context.Context, id string, patch P) (T, bool, error)
	Delete func(ctx context.Context, id string) (bool, error)
}

// Controller serves list, show, create, update and delete for one entity.
// The optional hooks customise a step without replacing the handler.
type Controller[T any, P any] struct {
	Name  string
	Store Store[T, P]

	// Filter narrows the list using query parameters
	Filter func(c *fiber.Ctx, items []T) []T
	// Prepare runs after validation and before the record is created
	Prepare func(rec *T) error
	// PrepareUpdate checks a patch against the stored record before it is applied
	PrepareUpdate func(current T, patch *P) error
	// AfterCreate is told about each stored record
	AfterCreate func(rec T)
	// Present shapes a single record for Show
	Present func(rec T) (interface{}, error)
}

func (rc *Controller[T, P]) Index(c *fiber.Ctx) error {
	items, err := rc.Store.List(c.UserContext())
	if err != nil {
		return rc.storeFailure(c, "list", err)
	}
	if rc.Filter != nil {
		items = rc.Filter(c, items)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: rc.Name + " list retrieved successfully",
		Status:  fiber.StatusOK,
		Data:    items,
	})
}

func (rc *Controller[T, P]) Show(c *fiber.Ctx) error {
	item, found, err := rc.Store.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return rc.storeFailure(c, "get", err)
	}
	if !found {
		return NotFound(c, rc.Name)
	}

	var data interface{} = item
	if rc.Present != nil {
		if data, err = rc.Present(item); err != nil {
			return rc.storeFailure(c, "present", err)
		}
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: rc.Name + " retrieved successfully",
		Status:  fiber.StatusOK,
		Data:    data,
	})
}

func (rc *Controller[T, P]) Create(c *fiber.Ctx) error {
	var req T
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse "+rc.Name+" request body", err)
		return BadRequest(c, "Invalid request body", nil)
	}
	if fieldErrs := Validate(&req); fieldErrs != nil {
		return BadRequest(c, "Validation failed", fieldErrs)
	}
	if rc.Prepare != nil {
		if err := rc.Prepare(&req); err != nil {
			return BadRequest(c, err.Error(), nil)
		}
	}

	created, err := rc.Store.Create(c.UserContext(), req)
	if err != nil {
		return rc.storeFailure(c, "create", err)
	}
	if rc.AfterCreate != nil {
		rc.AfterCreate(created)
	}
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: rc.Name + " created successfully",
		Status:  fiber.StatusCreated,
		Data:    created,
	})
}

func (rc *Controller[T, P]) Update(c *fiber.Ctx) error {
	var patch P
	if err := c.BodyParser(&patch); err != nil {
		logger.Error("Failed to parse "+rc.Name+" update body", err)
		return BadRequest(c, "Invalid request body", nil)
	}
	if fieldErrs := Validate(&patch); fieldErrs != nil {
		return BadRequest(c, "Validation failed", fieldErrs)
	}
	if rc.PrepareUpdate != nil {
		current, found, err := rc.Store.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return rc.storeFailure(c, "get", err)
		}
		if !found {
			return NotFound(c, rc.Name)
		}
		if err := rc.PrepareUpdate(current, &patch); err != nil {
			return BadRequest(c, err.Error(), nil)
		}
	}

	updated, found, err := rc.Store.Update(c.UserContext(), c.Params("id"), patch)
	if err != nil {
		return rc.storeFailure(c, "update", err)
	}
	if !found {
		return NotFound(c, rc.Name)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: rc.Name + " updated successfully",
		Status:  fiber.StatusOK,
		Data:    updated,
	})
}

func (rc *Controller[T, P]) Destroy(c *fiber.Ctx) error {
	deleted, err := rc.Store.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return rc.storeFailure(c, "delete", err)
	}
	if !deleted {
		return NotFound(c, rc.Name)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: rc.Name + " deleted successfully",
		Status:  fiber.StatusOK,
	})
}

// storeFailure logs the store message and answers with a generic 500
func (rc *Controller[T, P]) storeFailure(c *fiber.Ctx, op string, err error) error {
	return InternalError(c, "Failed to "+op+" "+rc.Name, err)
}

func BadRequest(c *fiber.Ctx, message string, fieldErrs []types.FieldError) error {
	resp := types.ApiResponse{
		Message: message,
		Status:  fiber.StatusBadRequest,
	}
	if fieldErrs != nil {
		resp.Data = fieldErrs
	}
	return c.Status(fiber.StatusBadRequest).JSON(resp)
}

func NotFound(c *fiber.Ctx, name string) error {
	return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
		Message: name + " not found",
		Status:  fiber.StatusNotFound,
	})
}

func InternalError(c *fiber.Ctx, logMessage string, err error) error {
	var opErr *storage.OpError
	if errors.As(err, &opErr) {
		logMessage += " (" + opErr.Op + " on " + opErr.Table + ")"
	}
	logger.Error(logMessage, err)
	return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
		Message: "Internal server error",
		Status:  fiber.StatusInternalServerError,
	})
}

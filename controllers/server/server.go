package server

import (
	"time"

	"travel-booking/constants"
	"travel-booking/types"

	"github.com/gofiber/fiber/v2"
)

// ServerController answers the routes that do not touch storage
type ServerController struct {
	StartedAt time.Time
	Driver    string
}

func NewServerController(driver string) *ServerController {
	return &ServerController{StartedAt: time.Now(), Driver: driver}
}

func (sc *ServerController) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "OK",
		Status:  fiber.StatusOK,
		Data: fiber.Map{
			"storage": sc.Driver,
			"uptime":  time.Since(sc.StartedAt).Round(time.Second).String(),
		},
	})
}

// Locations returns the taxonomy that drives the cascading selects
func (sc *ServerController) Locations(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Locations retrieved successfully",
		Status:  fiber.StatusOK,
		Data:    constants.Locations,
	})
}

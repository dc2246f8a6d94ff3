package middleware

import (
	"time"

	"travel-booking/types"
	"travel-booking/utils"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger is where captured request logs are queued
type RequestLogger interface {
	Log(entry types.LogEntry)
}

// LogRequests records every request that passes through after the
// handler chain has run, including failed ones.
func LogRequests(sink RequestLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			// let the app error handler write the response first
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		entry := utils.CreateSanitizedLogEntry(c)
		entry.Duration = time.Since(start)
		sink.Log(entry)
		return nil
	}
}

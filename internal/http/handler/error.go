package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Malmeu/car-manager-server/internal/http/middleware"
)

// errorPayload is the body of every error response: the request id for
// correlation plus a machine-readable code and a safe message. Internal error
// details never reach the client.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(c *fiber.Ctx, status int, code, message string) error {
	rid, _ := c.Locals(middleware.RequestIDLocalKey).(string)
	return c.Status(status).JSON(errorPayload{
		RequestID: rid,
		Error:     errorEnvelope{Code: code, Message: message},
	})
}

// statusCodes maps statuses fiber raises on its own (routing, body limit,
// body parsing) to envelope codes. Anything unlisted is an internal error.
var statusCodes = map[int]errorEnvelope{
	fiber.StatusBadRequest:            {Code: "BAD_REQUEST", Message: "bad request"},
	fiber.StatusNotFound:              {Code: "NOT_FOUND", Message: "resource not found"},
	fiber.StatusMethodNotAllowed:      {Code: "METHOD_NOT_ALLOWED", Message: "method not allowed"},
	fiber.StatusRequestEntityTooLarge: {Code: "FILE_TOO_LARGE", Message: "uploaded file exceeds the size limit"},
}

// ErrorHandler is the app-wide fiber error handler. Oversized uploads are cut
// off by the body limit before any handler runs, so they surface here and get
// their own code, distinct from server-side storage failures.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		if env, ok := statusCodes[status]; ok {
			return writeError(c, status, env.Code, env.Message)
		}
		return writeError(c, status, "INTERNAL_ERROR", "internal server error")
	}
}

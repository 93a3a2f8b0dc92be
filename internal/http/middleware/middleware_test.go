package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequestIDApp() *fiber.App {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/echo", func(c *fiber.Ctx) error {
		rid, _ := c.Locals(RequestIDLocalKey).(string)
		return c.SendString(rid)
	})
	return app
}

func TestRequestID_Generated(t *testing.T) {
	app := newRequestIDApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/echo", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	header := resp.Header.Get(RequestIDHeader)
	assert.NotEmpty(t, header)

	// The handler must see the same id the response header carries.
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, header, string(body))
}

func TestRequestID_Propagated(t *testing.T) {
	app := newRequestIDApp()

	req := httptest.NewRequest("GET", "/echo", nil)
	req.Header.Set(RequestIDHeader, "caller-supplied-id")

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, "caller-supplied-id", resp.Header.Get(RequestIDHeader))
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "caller-supplied-id", string(body))
}

func TestLoggerWithWriter(t *testing.T) {
	var buf bytes.Buffer

	app := fiber.New()
	app.Use(RequestID())
	app.Use(LoggerWithWriter(&buf, time.UTC))
	app.Get("/vehicles", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusAccepted)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/vehicles", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.NotEmpty(t, entry["request_id"])
	assert.NotEmpty(t, entry["ts"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/vehicles", entry["path"])
	assert.Equal(t, float64(fiber.StatusAccepted), entry["status"])
	assert.NotNil(t, entry["latency"])
}

func TestNoop(t *testing.T) {
	app := fiber.New()
	app.Use(Noop())
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "pong", string(body))
}

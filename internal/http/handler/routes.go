package handler

import (
	"context"
	"errors"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/Malmeu/car-manager-server/internal/service"
	"github.com/Malmeu/car-manager-server/internal/storage"
)

// Pinger is the slice of *mongo.Client the health endpoint depends on.
type Pinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay thin; business logic lives in the injected services.
func RegisterRoutes(app *fiber.App, pinger Pinger, vehicles service.VehicleService, uploads service.UploadService, store storage.Storage) {
	app.Get("/health", HealthCheck(pinger))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")
	api.Post("/upload", UploadDocument(uploads))
	api.Get("/vehicles/:vehicleId", GetVehicle(vehicles))
	api.Post("/vehicles/:vehicleId/conditions", AddCondition(vehicles))
	api.Delete("/vehicles/:vehicleId/conditions/:conditionId", DeleteCondition(vehicles))

	// The local backend serves files straight off disk so byte-range
	// requests are honored; other backends stream through the storage client.
	if l, ok := store.(interface{ Root() string }); ok {
		app.Static("/documents", filepath.Join(l.Root(), "documents"), fiber.Static{
			ByteRange: true,
		})
	} else {
		app.Get("/documents/*", DownloadDocument(store))
	}
}

// HealthCheck verifies document store connectivity.
func HealthCheck(pinger Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := pinger.Ping(ctx, readpref.Primary()); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a simple liveness probe.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// UploadDocument accepts a multipart form with a binary "file" field plus the
// "vehicleId" and "type" text fields that decide the storage destination.
// Both text fields are required before the file is persisted anywhere.
func UploadDocument(uploads service.UploadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		vehicleID := c.FormValue("vehicleId")
		if vehicleID == "" {
			return writeError(c, fiber.StatusBadRequest, "VEHICLE_ID_REQUIRED", "vehicleId is required")
		}
		docType := c.FormValue("type")
		if docType == "" {
			return writeError(c, fiber.StatusBadRequest, "TYPE_REQUIRED", "type is required")
		}

		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}
		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		res, err := uploads.Upload(c.UserContext(), f, vehicleID, docType, fh.Filename, ct, fh.Size)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrVehicleIDRequired):
				return writeError(c, fiber.StatusBadRequest, "VEHICLE_ID_REQUIRED", "vehicleId is required")
			case errors.Is(err, service.ErrTypeRequired):
				return writeError(c, fiber.StatusBadRequest, "TYPE_REQUIRED", "type is required")
			case errors.Is(err, service.ErrInvalidFilename):
				return writeError(c, fiber.StatusBadRequest, "INVALID_FILENAME", "filename is invalid")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.JSON(fiber.Map{
			"message":  "file uploaded",
			"path":     res.Path,
			"document": res.Document,
		})
	}
}

// GetVehicle returns one vehicle flattened for client consumption.
func GetVehicle(vehicles service.VehicleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := vehicles.Get(c.UserContext(), c.Params("vehicleId"))
		if err != nil {
			if errors.Is(err, service.ErrVehicleNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "vehicle not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// AddCondition appends a caller-defined condition record to the vehicle.
func AddCondition(vehicles service.VehicleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var payload map[string]any
		if err := c.BodyParser(&payload); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a JSON object")
		}

		cond, err := vehicles.AddCondition(c.UserContext(), c.Params("vehicleId"), payload)
		if err != nil {
			if errors.Is(err, service.ErrVehicleNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "vehicle not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(cond)
	}
}

// DeleteCondition removes a condition by id. Deleting an id that does not
// exist is a silent success; only a missing vehicle is 404.
func DeleteCondition(vehicles service.VehicleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := vehicles.RemoveCondition(c.UserContext(), c.Params("vehicleId"), c.Params("conditionId"))
		if err != nil {
			if errors.Is(err, service.ErrVehicleNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "vehicle not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"message": "condition deleted"})
	}
}

// DownloadDocument streams a stored file through the storage client. Used for
// backends that have no local directory to mount.
func DownloadDocument(store storage.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := path.Join("documents", c.Params("*"))

		rc, info, err := store.Get(c.UserContext(), key)
		if err != nil {
			if isNotFound(err) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		if info.ContentType != "" {
			c.Set(fiber.HeaderContentType, info.ContentType)
		}
		// fasthttp closes the stream when it implements io.Closer.
		return c.SendStream(rc, int(info.Size))
	}
}

func isNotFound(err error) bool {
	if os.IsNotExist(err) {
		return true
	}
	var minioErr minio.ErrorResponse
	if errors.As(err, &minioErr) {
		return minioErr.Code == "NoSuchKey"
	}
	return false
}

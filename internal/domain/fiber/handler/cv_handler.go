package handler

import (
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/hemant-mistri/portfolio/internal/logger"
	"github.com/hemant-mistri/portfolio/internal/middleware"
	"github.com/hemant-mistri/portfolio/internal/textsource"
	"github.com/hemant-mistri/portfolio/internal/usecase"
	"github.com/hemant-mistri/portfolio/internal/util"
)

const maxUploadSize = 5 * 1024 * 1024

type CVHandler struct {
	uc *usecase.CVUsecase
}

func NewCVHandler(uc *usecase.CVUsecase) *CVHandler {
	return &CVHandler{uc: uc}
}

func (h *CVHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/cv/extract", middleware.RateLimiter(10, time.Minute), h.Extract)
}

// Extract reads the uploaded PDF in memory and returns its profile. The
// upload is never written to disk.
func (h *CVHandler) Extract(c *fiber.Ctx) error {
	data, uerr := readUpload(c, "file")
	if uerr != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    uerr.code,
			Message: uerr.message,
		}, uerr.err)
	}

	profile, err := h.uc.Extract(c.UserContext(), data)
	if err != nil {
		var decodeErr *textsource.DecodeError
		if errors.As(err, &decodeErr) {
			logger.Warn().Err(err).Msg("uploaded cv could not be decoded")
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnprocessableEntity,
				Message: "Could not read document",
			}, err)
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to extract profile",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Data: fiber.Map{"profile": profile},
	})
}

type uploadError struct {
	code    int
	message string
	err     error
}

func readUpload(c *fiber.Ctx, fieldName string) ([]byte, *uploadError) {
	file, err := c.FormFile(fieldName)
	if err != nil {
		return nil, &uploadError{code: fiber.StatusBadRequest, message: fieldName + " is required"}
	}

	if file.Size > maxUploadSize {
		return nil, &uploadError{code: fiber.StatusBadRequest, message: fieldName + " is too large (max 5MB)"}
	}

	if ext := strings.ToLower(filepath.Ext(file.Filename)); ext != ".pdf" {
		return nil, &uploadError{code: fiber.StatusBadRequest, message: "unsupported file type, expected .pdf"}
	}

	f, err := file.Open()
	if err != nil {
		return nil, &uploadError{code: fiber.StatusInternalServerError, message: "cannot open " + fieldName, err: err}
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, &uploadError{code: fiber.StatusInternalServerError, message: "cannot read " + fieldName, err: err}
	}
	return data, nil
}

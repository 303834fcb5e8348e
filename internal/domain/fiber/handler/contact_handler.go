package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/hemant-mistri/portfolio/internal/dto"
	"github.com/hemant-mistri/portfolio/internal/logger"
	"github.com/hemant-mistri/portfolio/internal/middleware"
	"github.com/hemant-mistri/portfolio/internal/model"
	"github.com/hemant-mistri/portfolio/internal/usecase"
	"github.com/hemant-mistri/portfolio/internal/util"
)

type ContactHandler struct {
	uc *usecase.ContactUsecase
}

func NewContactHandler(uc *usecase.ContactUsecase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

func (h *ContactHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/contact", middleware.RateLimiter(5, time.Minute), h.Submit)
	app.All("/api/contact", h.MethodNotAllowed)
}

func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var sub model.ContactSubmission
	if err := c.BodyParser(&sub); err != nil {
		// An unreadable body is treated as an empty submission.
		logger.Debug().Err(err).Str("content_type", c.Get(fiber.HeaderContentType)).Msg("contact body not parsed")
		sub = model.ContactSubmission{}
	}

	receipt, err := h.uc.Submit(c.UserContext(), sub)
	if err != nil {
		return h.submitError(c, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Email sent successfully",
		Data:    fiber.Map{"messageId": receipt.MessageID},
	})
}

func (h *ContactHandler) submitError(c *fiber.Ctx, err error) error {
	var (
		validationErr *usecase.ValidationError
		configErr     *usecase.ConfigurationError
		deliveryErr   *usecase.DeliveryError
	)
	switch {
	case errors.As(err, &validationErr):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Missing required fields",
			Details: dto.MissingFieldsDTO{Missing: validationErr.Missing},
		})
	case errors.As(err, &configErr):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Email service not configured",
		})
	case errors.As(err, &deliveryErr):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to send email",
			Debug:   deliveryErr.Debug(),
		}, err)
	default:
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to send email",
		}, err)
	}
}

func (h *ContactHandler) MethodNotAllowed(c *fiber.Ctx) error {
	c.Set(fiber.HeaderAllow, fiber.MethodPost)
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    fiber.StatusMethodNotAllowed,
		Message: "Method not allowed",
	})
}

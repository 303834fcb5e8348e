package util

import (
	"runtime/debug"

	"github.com/gofiber/fiber/v2"

	"github.com/hemant-mistri/portfolio/internal/config"
)

type SuccessResponseFormat struct {
	Code    int
	Message string
	Data    fiber.Map
}

type ErrorResponseFormat struct {
	Code    int
	Message string
	Details any
	Debug   any
	Trace   string
}

type OrderedErrorResponse struct {
	OK      bool   `json:"ok"`
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
	Debug   any    `json:"debug,omitempty"`
	Trace   string `json:"trace,omitempty"`
}

// SuccessResponse writes {ok: true, message?, ...data} with params.Code (200 by default).
func SuccessResponse(c *fiber.Ctx, params SuccessResponseFormat) error {
	body := fiber.Map{"ok": true}
	for k, v := range params.Data {
		body[k] = v
	}
	if params.Message != "" {
		body["message"] = params.Message
	}

	code := params.Code
	if code == 0 {
		code = fiber.StatusOK
	}
	return c.Status(code).JSON(body)
}

// ErrorResponse writes {ok: false, error, details?, debug?}. Outside production
// the first error's text and a stack trace are attached as well.
func ErrorResponse(c *fiber.Ctx, params ErrorResponseFormat, errs ...error) error {
	response := OrderedErrorResponse{
		OK:      false,
		Error:   params.Message,
		Details: params.Details,
		Debug:   params.Debug,
	}
	if !config.LoadAppConfig().IsProduction() {
		if len(errs) > 0 && errs[0] != nil {
			if response.Debug == nil {
				response.Debug = fiber.Map{"message": errs[0].Error()}
			}
			response.Trace = string(debug.Stack())
		}
		if params.Trace != "" {
			response.Trace = params.Trace
		}
	}

	errorCode := params.Code
	if params.Code == 0 {
		errorCode = fiber.StatusInternalServerError
	}
	return c.Status(errorCode).JSON(response)
}

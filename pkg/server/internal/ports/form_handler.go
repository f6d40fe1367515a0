package ports

import (
	"github.com/4chain-ag/go-hit-simulator/pkg/server/internal/app"
	"github.com/gofiber/fiber/v2"
)

// FormHandler serves the standard and alternate form matching endpoints.
type FormHandler struct {
	service *app.FormService
}

// HandleStandard answers POST /api/v1/forms/standard with the standard form for the requested spend.
func (h *FormHandler) HandleStandard(c *fiber.Ctx) error {
	return h.handle(c, h.service.StandardForm)
}

// HandleAlternate answers POST /api/v1/forms/alternate with the alternate form for the requested spend.
func (h *FormHandler) HandleAlternate(c *fiber.Ctx) error {
	return h.handle(c, h.service.AlternateForm)
}

func (h *FormHandler) handle(c *fiber.Ctx, match func([]int64, int64) (*app.FormDTO, error)) error {
	var body FormRequest
	if err := c.BodyParser(&body); err != nil {
		return NewRequestBodyParserError(err)
	}

	dto, err := match(body.Values, body.Spend)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(NewFormSuccessResponse(dto))
}

// NewFormHandler constructs a FormHandler around the given matcher.
// Panics if the matcher is nil.
func NewFormHandler(matcher app.FormMatcher) *FormHandler {
	if matcher == nil {
		panic("form matcher cannot be nil")
	}
	return &FormHandler{service: app.NewFormService(matcher)}
}

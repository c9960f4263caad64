package controller

import (
	"ayat-reflection-be/internal/dto"
	"ayat-reflection-be/internal/pkg/serverutils"
	"ayat-reflection-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAnalyticsController interface {
	RegisterRoutes(r fiber.Router)
	LogEvent(ctx *fiber.Ctx) error
}

type analyticsController struct {
	analyticsService service.IAnalyticsService
}

func NewAnalyticsController(analyticsService service.IAnalyticsService) IAnalyticsController {
	return &analyticsController{
		analyticsService: analyticsService,
	}
}

func (c *analyticsController) RegisterRoutes(r fiber.Router) {
	r.Post("log-event", c.LogEvent)
}

func (c *analyticsController) LogEvent(ctx *fiber.Ctx) error {
	var req dto.LogEventRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.analyticsService.LogEvent(&req); err != nil {
		return err
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

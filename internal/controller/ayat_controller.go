package controller

import (
	"ayat-reflection-be/internal/dto"
	"ayat-reflection-be/internal/pkg/serverutils"
	"ayat-reflection-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAyatController interface {
	RegisterRoutes(r fiber.Router)
	GetAyat(ctx *fiber.Ctx) error
}

type ayatController struct {
	ayatService service.IAyatService
}

func NewAyatController(ayatService service.IAyatService) IAyatController {
	return &ayatController{
		ayatService: ayatService,
	}
}

func (c *ayatController) RegisterRoutes(r fiber.Router) {
	r.Post("get-ayat", c.GetAyat)
}

func (c *ayatController) GetAyat(ctx *fiber.Ctx) error {
	var req dto.GetAyatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	identity := serverutils.ClientIdentity(ctx)

	res, fromCache, err := c.ayatService.GetAyat(ctx.Context(), identity, &req)
	if err != nil {
		return err
	}

	if fromCache {
		ctx.Set("X-Cache", "HIT")
	}
	return ctx.JSON(res)
}

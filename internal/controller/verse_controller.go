package controller

import (
	"fmt"
	"time"

	"ayat-reflection-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IVerseController interface {
	RegisterRoutes(r fiber.Router)
	VerseOfDay(ctx *fiber.Ctx) error
}

type verseController struct {
	verseOfDayService service.IVerseOfDayService
}

func NewVerseController(verseOfDayService service.IVerseOfDayService) IVerseController {
	return &verseController{
		verseOfDayService: verseOfDayService,
	}
}

func (c *verseController) RegisterRoutes(r fiber.Router) {
	r.Get("verse-of-day", c.VerseOfDay)
}

func (c *verseController) VerseOfDay(ctx *fiber.Ctx) error {
	now := time.Now()

	res, err := c.verseOfDayService.GetVerseOfDay(now)
	if err != nil {
		return err
	}

	// The verse rotates at UTC midnight; let clients and CDNs cache
	// exactly until then.
	remaining := service.SecondsUntilNextUTCDay(now)
	ctx.Set(fiber.HeaderCacheControl,
		fmt.Sprintf("public, max-age=%d, s-maxage=%d, stale-while-revalidate=60", remaining, remaining))

	return ctx.JSON(res)
}

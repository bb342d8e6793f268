package controller

import (
	"faq-knowledge-be/internal/pkg/serverutils"
	"faq-knowledge-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICleanupController interface {
	RegisterRoutes(r fiber.Router)
	Run(ctx *fiber.Ctx) error
	LastRun(ctx *fiber.Ctx) error
}

type cleanupController struct {
	cleanupService service.ICleanupService
}

func NewCleanupController(cleanupService service.ICleanupService) ICleanupController {
	return &cleanupController{
		cleanupService: cleanupService,
	}
}

func (c *cleanupController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/cleanup/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("run", c.Run)
	h.Get("last-run", c.LastRun)
}

func (c *cleanupController) Run(ctx *fiber.Ctx) error {
	res, err := c.cleanupService.Run(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success run duplicate cleanup", res))
}

func (c *cleanupController) LastRun(ctx *fiber.Ctx) error {
	res, err := c.cleanupService.LastRun(ctx.Context())
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "No cleanup run recorded yet")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show last cleanup run", res))
}

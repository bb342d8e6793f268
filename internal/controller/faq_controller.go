package controller

import (
	"faq-knowledge-be/internal/dto"
	"faq-knowledge-be/internal/pkg/serverutils"
	"faq-knowledge-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFAQController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
}

type faqController struct {
	faqService service.IFAQService
}

func NewFAQController(faqService service.IFAQService) IFAQController {
	return &faqController{
		faqService: faqService,
	}
}

func (c *faqController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/faq/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
}

func (c *faqController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateFAQRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.faqService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	if res.RoutedToReview {
		return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse("Candidate routed to duplicate review", res))
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create FAQ", res))
}

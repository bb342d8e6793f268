package controller

import (
	"faq-knowledge-be/internal/dto"
	"faq-knowledge-be/internal/pkg/serverutils"
	"faq-knowledge-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDuplicateReviewController interface {
	RegisterRoutes(r fiber.Router)
	Update(ctx *fiber.Ctx) error
	Pending(ctx *fiber.Ctx) error
}

type duplicateReviewController struct {
	duplicateReviewService service.IDuplicateReviewService
}

func NewDuplicateReviewController(duplicateReviewService service.IDuplicateReviewService) IDuplicateReviewController {
	return &duplicateReviewController{
		duplicateReviewService: duplicateReviewService,
	}
}

func (c *duplicateReviewController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/duplicate/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Put("candidate", c.Update)
	h.Get("candidates/pending", c.Pending)
}

func (c *duplicateReviewController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateDuplicateCandidateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.duplicateReviewService.UpdateCandidate(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update duplicate candidate", res))
}

func (c *duplicateReviewController) Pending(ctx *fiber.Ctx) error {
	res, err := c.duplicateReviewService.PendingCandidates(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list pending duplicate candidates", res))
}

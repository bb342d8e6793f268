package controller

import (
	"faq-knowledge-be/internal/dto"
	"faq-knowledge-be/internal/pkg/serverutils"
	"faq-knowledge-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPIIReviewController interface {
	RegisterRoutes(r fiber.Router)
	Update(ctx *fiber.Ctx) error
	BulkUpdate(ctx *fiber.Ctx) error
	Pending(ctx *fiber.Ctx) error
}

type piiReviewController struct {
	piiReviewService service.IPIIReviewService
}

func NewPIIReviewController(piiReviewService service.IPIIReviewService) IPIIReviewController {
	return &piiReviewController{
		piiReviewService: piiReviewService,
	}
}

func (c *piiReviewController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/pii/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Put("detection", c.Update)
	h.Post("detections/bulk", c.BulkUpdate)
	h.Get("detections/pending", c.Pending)
}

func (c *piiReviewController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdatePIIDetectionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.piiReviewService.UpdateDetection(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success update PII detection", nil))
}

func (c *piiReviewController) BulkUpdate(ctx *fiber.Ctx) error {
	var req dto.BulkUpdatePIIDetectionsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.piiReviewService.BulkUpdateDetections(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success bulk update PII detections", res))
}

func (c *piiReviewController) Pending(ctx *fiber.Ctx) error {
	res, err := c.piiReviewService.PendingDetections(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list pending PII detections", res))
}

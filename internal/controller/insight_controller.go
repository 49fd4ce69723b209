package controller

import (
	"zorva-be/internal/dto"
	"zorva-be/internal/pkg/serverutils"
	"zorva-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IInsightController interface {
	RegisterRoutes(r fiber.Router)
	Save(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	ListQuick(ctx *fiber.Ctx) error
	PromoteQuick(ctx *fiber.Ctx) error
	ListSaved(ctx *fiber.Ctx) error
}

type insightController struct {
	insightService service.IInsightService
}

func NewInsightController(insightService service.IInsightService) IInsightController {
	return &insightController{
		insightService: insightService,
	}
}

func (c *insightController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/insight/v1")
	h.Post("/save", c.Save)
	h.Post("/list", c.List)
	h.Post("/quick/list", c.ListQuick)
	h.Post("/quick/promote", c.PromoteQuick)
	h.Post("/saved/list", c.ListSaved)
	h.Delete("/", c.Delete)
}

func (c *insightController) Save(ctx *fiber.Ctx) error {
	var req dto.SaveInsightRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.insightService.SaveInsight(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success save insight", res))
}

func (c *insightController) Delete(ctx *fiber.Ctx) error {
	var req dto.DeleteInsightRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.insightService.DeleteInsight(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete insight", nil))
}

func (c *insightController) List(ctx *fiber.Ctx) error {
	var req dto.ListInsightsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.insightService.ListInsights(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list insights", res))
}

func (c *insightController) ListQuick(ctx *fiber.Ctx) error {
	var req dto.ListQuickInsightsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.insightService.ListQuickInsights(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list quick insights", res))
}

func (c *insightController) PromoteQuick(ctx *fiber.Ctx) error {
	var req dto.PromoteQuickInsightRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.insightService.PromoteQuickInsight(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success promote quick insight", res))
}

func (c *insightController) ListSaved(ctx *fiber.Ctx) error {
	var req dto.ListSavedResponsesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.insightService.ListSavedResponses(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list saved responses", res))
}

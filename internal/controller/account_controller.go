package controller

import (
	"zorva-be/internal/dto"
	"zorva-be/internal/pkg/serverutils"
	"zorva-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAccountController interface {
	RegisterRoutes(r fiber.Router)
	AddAccount(ctx *fiber.Ctx) error
	GetAccount(ctx *fiber.Ctx) error
}

type accountController struct {
	accountService service.IAccountService
}

func NewAccountController(accountService service.IAccountService) IAccountController {
	return &accountController{
		accountService: accountService,
	}
}

func (c *accountController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/account/v1")
	h.Post("/add", c.AddAccount)
	h.Post("/get", c.GetAccount)
}

func (c *accountController) AddAccount(ctx *fiber.Ctx) error {
	var req dto.AddAccountRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.accountService.AddAccount(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success add account", res))
}

func (c *accountController) GetAccount(ctx *fiber.Ctx) error {
	var req dto.GetAccountRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.accountService.GetAccount(ctx.Context(), req.ExternalUid)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get account", res))
}

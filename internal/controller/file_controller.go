package controller

import (
	"zorva-be/internal/dto"
	"zorva-be/internal/pkg/serverutils"
	"zorva-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFileController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	GetById(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type fileController struct {
	fileService service.IFileService
}

func NewFileController(fileService service.IFileService) IFileController {
	return &fileController{
		fileService: fileService,
	}
}

func (c *fileController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/files/v1")
	h.Post("/upload", c.Upload)
	h.Post("/list", c.List)
	h.Post("/get-by-id", c.GetById)
	h.Delete("/", c.Delete)
}

func (c *fileController) Upload(ctx *fiber.Ctx) error {
	externalUid := ctx.FormValue("external_uid")
	if externalUid == "" {
		return serverutils.NewValidationError("external_uid is required")
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		return serverutils.NewValidationError("multipart form required")
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		return serverutils.NewValidationError("no files supplied")
	}

	files := make([]*service.UploadInput, 0, len(headers))
	for _, fh := range headers {
		input, err := service.ReadMultipartFile(fh)
		if err != nil {
			return err
		}
		files = append(files, input)
	}

	res, err := c.fileService.UploadFiles(ctx.Context(), externalUid, files)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success upload files", res))
}

func (c *fileController) List(ctx *fiber.Ctx) error {
	var req dto.ListFilesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.fileService.ListFiles(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list files", res))
}

func (c *fileController) GetById(ctx *fiber.Ctx) error {
	var req dto.GetFilesByIdRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.fileService.GetFilesById(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get files", res))
}

func (c *fileController) Delete(ctx *fiber.Ctx) error {
	var req dto.DeleteFileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.fileService.DeleteFile(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete file", nil))
}

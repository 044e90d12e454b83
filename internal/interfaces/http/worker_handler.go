package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/prevenapp/inspecciones-api/internal/application/dto"
	"github.com/prevenapp/inspecciones-api/internal/application/usecase"
)

// WorkerHandler maneja las peticiones HTTP para el recurso Worker.
type WorkerHandler struct {
	uc *usecase.WorkerUseCase
}

// NewWorkerHandler construye el handler inyectando el caso de uso.
func NewWorkerHandler(uc *usecase.WorkerUseCase) *WorkerHandler {
	return &WorkerHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar trabajador
// @Tags         workers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateWorkerRequest  true  "Datos del trabajador"
// @Success      201   {object}  dto.WorkerResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/workers [post]
func (h *WorkerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWorkerRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Name == "" || in.Email == "" {
		return badRequest(c, "VALIDATION", "name y email son requeridos")
	}
	out, err := h.uc.Create(c.Context(), GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener trabajador por ID
// @Tags         workers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del trabajador"
// @Success      200  {object}  dto.WorkerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/workers/{id} [get]
func (h *WorkerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar trabajadores con búsqueda
// @Tags         workers
// @Produce      json
// @Security     BearerAuth
// @Param        search  query  string  false  "Busca por nombre o email (insensible a acentos)"
// @Param        page    query  int     false  "Página"  default(1)
// @Param        limit   query  int     false  "Límite"  default(10)
// @Success      200     {object}  dto.WorkerListResponse
// @Router       /api/v1/workers [get]
func (h *WorkerHandler) List(c *fiber.Ctx) error {
	in := dto.WorkerListRequest{
		PageRequest: dto.PageRequest{
			Page:  c.QueryInt("page", 1),
			Limit: c.QueryInt("limit", 10),
		},
		Search: c.Query("search"),
	}
	out, err := h.uc.List(c.Context(), GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar trabajador
// @Tags         workers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID del trabajador"
// @Param        body  body  dto.UpdateWorkerRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.WorkerResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/workers/{id} [patch]
func (h *WorkerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateWorkerRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Context(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar trabajador
// @Tags         workers
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del trabajador"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/workers/{id} [delete]
func (h *WorkerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetActor(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/prevenapp/inspecciones-api/internal/application/dto"
	"github.com/prevenapp/inspecciones-api/internal/application/inspection"
)

// InspectionHandler maneja las peticiones HTTP para inspecciones, incluidas
// las fotos, la finalización y la descarga del informe PDF.
type InspectionHandler struct {
	uc    *inspection.UseCase
	pdfUC *inspection.PDFUseCase
}

// NewInspectionHandler construye el handler inyectando los casos de uso.
func NewInspectionHandler(uc *inspection.UseCase, pdfUC *inspection.PDFUseCase) *InspectionHandler {
	return &InspectionHandler{uc: uc, pdfUC: pdfUC}
}

// Create godoc
// @Summary      Iniciar inspección (borrador)
// @Description  Toma una copia independiente del checklist de la plantilla;
// @Description  ediciones posteriores de la plantilla no afectan la inspección.
// @Tags         inspections
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateInspectionRequest  true  "Empresa, trabajador y plantilla"
// @Success      201   {object}  dto.InspectionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/inspections [post]
func (h *InspectionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInspectionRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.CompanyID == "" || in.WorkerID == "" || in.TemplateID == "" {
		return badRequest(c, "VALIDATION", "companyId, workerId y templateId son requeridos")
	}
	out, err := h.uc.Create(c.Context(), GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener inspección con detalle
// @Tags         inspections
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la inspección"
// @Success      200  {object}  dto.InspectionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/inspections/{id} [get]
func (h *InspectionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar inspecciones
// @Tags         inspections
// @Produce      json
// @Security     BearerAuth
// @Param        page   query  int  false  "Página"  default(1)
// @Param        limit  query  int  false  "Límite"  default(10)
// @Success      200    {object}  dto.InspectionListResponse
// @Router       /api/v1/inspections [get]
func (h *InspectionHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Page:  c.QueryInt("page", 1),
		Limit: c.QueryInt("limit", 10),
	}
	out, err := h.uc.List(c.Context(), GetActor(c), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar inspección en borrador
// @Description  Acepta respuestas y valores de cabecera; el puntaje siempre lo
// @Description  recalcula el servidor. Status COMPLETED junto con signature
// @Description  cierra y firma la inspección.
// @Tags         inspections
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID de la inspección"
// @Param        body  body  dto.UpdateInspectionRequest  true  "Respuestas y valores"
// @Success      200   {object}  dto.InspectionResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/inspections/{id} [patch]
func (h *InspectionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInspectionRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Context(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddPhoto godoc
// @Summary      Adjuntar evidencia fotográfica
// @Tags         inspections
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID de la inspección"
// @Param        body  body  dto.AddPhotoRequest  true  "Foto (data URL)"
// @Success      200   {object}  dto.InspectionResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/inspections/{id}/photos [post]
func (h *InspectionHandler) AddPhoto(c *fiber.Ctx) error {
	var in dto.AddPhotoRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.ID == "" || in.URL == "" {
		return badRequest(c, "VALIDATION", "id y url son requeridos")
	}
	out, err := h.uc.AddPhoto(c.Context(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RemovePhoto godoc
// @Summary      Quitar evidencia fotográfica
// @Tags         inspections
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  string  true  "ID de la inspección"
// @Param        photoId  path  string  true  "ID de la foto"
// @Success      200      {object}  dto.InspectionResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Router       /api/v1/inspections/{id}/photos/{photoId} [delete]
func (h *InspectionHandler) RemovePhoto(c *fiber.Ctx) error {
	out, err := h.uc.RemovePhoto(c.Context(), GetActor(c), c.Params("id"), c.Params("photoId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Finalize godoc
// @Summary      Cerrar y firmar inspección
// @Description  Tras la firma la inspección queda inmutable.
// @Tags         inspections
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID de la inspección"
// @Param        body  body  dto.FinalizeInspectionRequest  true  "Firma (data URL)"
// @Success      200   {object}  dto.InspectionResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/inspections/{id}/finalize [post]
func (h *InspectionHandler) Finalize(c *fiber.Ctx) error {
	var in dto.FinalizeInspectionRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Finalize(c.Context(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DownloadPDF godoc
// @Summary      Descargar informe PDF
// @Description  Solo disponible para inspecciones COMPLETED.
// @Tags         inspections
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la inspección"
// @Success      200  {file}  binary
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/inspections/{id}/pdf [get]
func (h *InspectionHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdfUC.DownloadReport(c.Context(), GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

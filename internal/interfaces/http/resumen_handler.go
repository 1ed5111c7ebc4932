package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/application/usecase"
)

const msgResumenNotFound = "Resumen no encontrado"

// ResumenHandler maneja las peticiones HTTP para resúmenes de ventas.
type ResumenHandler struct {
	uc *usecase.ResumenUseCase
}

// NewResumenHandler construye el handler.
func NewResumenHandler(uc *usecase.ResumenUseCase) *ResumenHandler {
	return &ResumenHandler{uc: uc}
}

// Create godoc
// @Summary      Guardar resumen con sus detalles
// @Tags         resumenes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ResumenRequest  true  "Resumen y detalles"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /resumenes [post]
func (h *ResumenHandler) Create(c *fiber.Ctx) error {
	var in dto.ResumenRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err, msgResumenNotFound)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err, msgResumenNotFound)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar resúmenes
// @Tags         resumenes
// @Produce      json
// @Success      200  {array}  dto.ResumenResponse
// @Router       /resumenes [get]
func (h *ResumenHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err, "")
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener resumen por ID
// @Tags         resumenes
// @Produce      json
// @Param        id   path  int  true  "ID del resumen"
// @Success      200  {object}  dto.ResumenResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /resumenes/{id} [get]
func (h *ResumenHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err, msgResumenNotFound)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Descargar resumen en PDF
// @Tags         resumenes
// @Produce      application/pdf
// @Param        id   path  int  true  "ID del resumen"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /resumenes/{id}/pdf [get]
func (h *ResumenHandler) PDF(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	doc, err := h.uc.PDF(c.UserContext(), id)
	if err != nil {
		return writeError(c, err, msgResumenNotFound)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="resumen-%d.pdf"`, id))
	return c.Send(doc)
}

// Update godoc
// @Summary      Reemplazar resumen y sus detalles
// @Tags         resumenes
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del resumen"
// @Param        body  body  dto.ResumenRequest  true  "Resumen y nuevos detalles"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /resumenes/{id} [put]
func (h *ResumenHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.ResumenRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err, msgResumenNotFound)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err, msgResumenNotFound)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar resumen
// @Tags         resumenes
// @Produce      json
// @Param        id   path  int  true  "ID del resumen"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /resumenes/{id} [delete]
func (h *ResumenHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.Delete(c.UserContext(), id)
	if err != nil {
		return writeError(c, err, msgResumenNotFound)
	}
	return c.JSON(out)
}

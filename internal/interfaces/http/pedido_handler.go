package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/application/usecase"
)

const msgPedidoNotFound = "Pedido no encontrado"

// PedidoHandler maneja las peticiones HTTP para pedidos.
type PedidoHandler struct {
	uc *usecase.PedidoUseCase
}

// NewPedidoHandler construye el handler.
func NewPedidoHandler(uc *usecase.PedidoUseCase) *PedidoHandler {
	return &PedidoHandler{uc: uc}
}

// Create godoc
// @Summary      Crear pedido
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PedidoRequest  true  "Datos del pedido"
// @Success      201   {object}  dto.PedidoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /pedidos [post]
func (h *PedidoHandler) Create(c *fiber.Ctx) error {
	var in dto.PedidoRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err, msgPedidoNotFound)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err, msgPedidoNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar pedidos
// @Tags         pedidos
// @Produce      json
// @Param        skip   query  int  false  "Registros a saltar"  default(0)
// @Param        limit  query  int  false  "Máximo de registros" default(100)
// @Success      200    {array}   dto.PedidoResponse
// @Router       /pedidos [get]
func (h *PedidoHandler) List(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return writeError(c, err, "")
	}
	out, err := h.uc.List(c.UserContext(), page)
	if err != nil {
		return writeError(c, err, "")
	}
	return c.JSON(out)
}

// Totals godoc
// @Summary      Totales de pedidos por estado
// @Tags         pedidos
// @Produce      json
// @Success      200  {object}  dto.TotalesResponse
// @Router       /pedidos/totales [get]
func (h *PedidoHandler) Totals(c *fiber.Ctx) error {
	out, err := h.uc.Totals(c.UserContext())
	if err != nil {
		return writeError(c, err, "")
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener pedido por ID
// @Tags         pedidos
// @Produce      json
// @Param        id   path  int  true  "ID del pedido"
// @Success      200  {object}  dto.PedidoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /pedidos/{id} [get]
func (h *PedidoHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err, msgPedidoNotFound)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Reemplazar pedido
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del pedido"
// @Param        body  body  dto.PedidoRequest  true  "Todos los campos del pedido"
// @Success      200   {object}  dto.PedidoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /pedidos/{id} [put]
func (h *PedidoHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.PedidoRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err, msgPedidoNotFound)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err, msgPedidoNotFound)
	}
	return c.JSON(out)
}

// Patch godoc
// @Summary      Actualizar parcialmente un pedido
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del pedido"
// @Param        body  body  dto.PatchPedidoRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.PedidoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /pedidos/{id} [patch]
func (h *PedidoHandler) Patch(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.PatchPedidoRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err, msgPedidoNotFound)
	}
	out, err := h.uc.Patch(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err, msgPedidoNotFound)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar pedido
// @Tags         pedidos
// @Param        id   path  int  true  "ID del pedido"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /pedidos/{id} [delete]
func (h *PedidoHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err, msgPedidoNotFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

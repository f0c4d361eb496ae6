package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Jeremytpk/storall/internal/application/cart"
	"github.com/Jeremytpk/storall/internal/application/dto"
	"github.com/Jeremytpk/storall/internal/domain"
)

// PickingHandler maneja la preparación del carrito por el picker: marcar
// líneas como encontradas y cerrar el carrito en un pedido.
type PickingHandler struct {
	uc *cart.CartUseCase
}

// NewPickingHandler construye el handler de picking.
func NewPickingHandler(uc *cart.CartUseCase) *PickingHandler {
	return &PickingHandler{uc: uc}
}

// MarkFound godoc
// @Summary      Marcar una línea como encontrada
// @Description  Requiere confirm=true en el cuerpo como salvaguarda contra
// @Description  toques accidentales.
// @Tags         picking
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        clientId  path  string  true  "client id"
// @Param        lineId    path  string  true  "line id"
// @Param        body      body  dto.FoundToggleRequest  true  "confirm"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/picking/{clientId}/lines/{lineId}/found [post]
func (h *PickingHandler) MarkFound(c *fiber.Ctx) error {
	return h.toggleFound(c, true)
}

// UnmarkFound godoc
// @Summary      Desmarcar una línea encontrada
// @Tags         picking
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        clientId  path  string  true  "client id"
// @Param        lineId    path  string  true  "line id"
// @Param        body      body  dto.FoundToggleRequest  true  "confirm"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/picking/{clientId}/lines/{lineId}/found [delete]
func (h *PickingHandler) UnmarkFound(c *fiber.Ctx) error {
	return h.toggleFound(c, false)
}

func (h *PickingHandler) toggleFound(c *fiber.Ctx, found bool) error {
	var in dto.FoundToggleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	err := h.uc.SetFound(c.Context(), c.Params("clientId"), c.Params("lineId"), found, in.Confirm)
	if err != nil {
		if errors.Is(err, domain.ErrConfirmationRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CONFIRM_REQUIRED", Message: "confirm debe ser true"})
		}
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la línea no pertenece a ese carrito"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la línea no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ConfirmAll godoc
// @Summary      Cerrar el carrito en un pedido
// @Description  Todas las líneas deben estar marcadas como encontradas; el
// @Description  pedido se crea y el carrito se vacía en la misma transacción.
// @Tags         picking
// @Produce      json
// @Security     BearerAuth
// @Param        clientId  path  string  true  "client id"
// @Success      201   {object}  dto.OrderResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/picking/{clientId}/confirm [post]
func (h *PickingHandler) ConfirmAll(c *fiber.Ctx) error {
	order, err := h.uc.ConfirmAll(c.Context(), c.Params("clientId"), GetUsername(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el carrito está vacío"})
		}
		if errors.Is(err, domain.ErrIncompleteConfirmation) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INCOMPLETE", Message: "quedan líneas sin marcar como encontradas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

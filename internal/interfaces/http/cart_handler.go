package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Jeremytpk/storall/internal/application/cart"
	"github.com/Jeremytpk/storall/internal/application/dto"
	"github.com/Jeremytpk/storall/internal/domain"
)

// CartHandler maneja la sesión de compra y las líneas del carrito.
type CartHandler struct {
	uc *cart.CartUseCase
}

// NewCartHandler construye el handler de carrito.
func NewCartHandler(uc *cart.CartUseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// requireOwnCart verifica que el clientId de la ruta es el de la cuenta
// autenticada: un token de cliente solo opera sobre su propio carrito.
func requireOwnCart(c *fiber.Ctx) error {
	if c.Params("clientId") != GetUsername(c) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el carrito no pertenece a esta cuenta"})
	}
	return nil
}

// StartBuying godoc
// @Summary      Iniciar sesión de compra
// @Description  Devuelve el client_id bajo el cual se agrupan las líneas del
// @Description  carrito; coincide con el ID de la cuenta autenticada.
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      201   {object}  dto.StartBuyingResponse
// @Router       /api/cart/session [post]
func (h *CartHandler) StartBuying(c *fiber.Ctx) error {
	out, err := h.uc.StartBuying(c.Context(), GetUsername(c))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "cuenta no resuelta en el token"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CancelBuying godoc
// @Summary      Anular la compra y vaciar el carrito
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Param        clientId  path  string  true  "client id de la sesión de compra"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/cart/session/{clientId} [delete]
func (h *CartHandler) CancelBuying(c *fiber.Ctx) error {
	if err := requireOwnCart(c); err != nil {
		return err
	}
	if err := h.uc.CancelBuying(c.Context(), c.Params("clientId")); err != nil {
		if errors.Is(err, domain.ErrBuyingNotStarted) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BUYING_NOT_STARTED", Message: "no hay sesión de compra activa"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddLine godoc
// @Summary      Añadir un producto al carrito (o fusionar cantidades)
// @Description  Si ya existe una línea para el mismo producto las cantidades
// @Description  se suman; la selección de talla y color debe estar completa.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        clientId  path  string  true  "client id"
// @Param        body      body  dto.AddCartLineRequest  true  "product_id, size, color, quantity"
// @Success      201   {object}  dto.CartLineResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cart/{clientId}/lines [post]
func (h *CartHandler) AddLine(c *fiber.Ctx) error {
	if err := requireOwnCart(c); err != nil {
		return err
	}
	var in dto.AddCartLineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	line, err := h.uc.AddOrMerge(c.Context(), c.Params("clientId"), in)
	if err != nil {
		if errors.Is(err, domain.ErrBuyingNotStarted) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BUYING_NOT_STARTED", Message: "inicia la sesión de compra antes de añadir productos"})
		}
		if errors.Is(err, domain.ErrSelectionIncomplete) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "SELECTION_INCOMPLETE", Message: "selecciona talla y color antes de añadir"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el producto no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(line)
}

// List godoc
// @Summary      Líneas del carrito con el avance de preparación
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Param        clientId  path  string  true  "client id"
// @Success      200   {object}  dto.CartResponse
// @Router       /api/cart/{clientId} [get]
func (h *CartHandler) List(c *fiber.Ctx) error {
	if err := requireOwnCart(c); err != nil {
		return err
	}
	out, err := h.uc.List(c.Context(), c.Params("clientId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// RemoveLine godoc
// @Summary      Quitar un producto del carrito
// @Description  Idempotente: quitar un producto que no está no es un error.
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Param        clientId   path  string  true  "client id"
// @Param        productId  path  string  true  "product id"
// @Success      204
// @Router       /api/cart/{clientId}/lines/{productId} [delete]
func (h *CartHandler) RemoveLine(c *fiber.Ctx) error {
	if err := requireOwnCart(c); err != nil {
		return err
	}
	if err := h.uc.Remove(c.Context(), c.Params("clientId"), c.Params("productId")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

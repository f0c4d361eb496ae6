package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Jeremytpk/storall/internal/application/dto"
	"github.com/Jeremytpk/storall/internal/application/receipt"
	"github.com/Jeremytpk/storall/internal/application/usecase"
	"github.com/Jeremytpk/storall/internal/domain"
)

// OrderHandler maneja pedidos, cobros, comprobantes y rupturas de stock.
type OrderHandler struct {
	orderUC   *usecase.OrderUseCase
	receiptUC *receipt.ReceiptUseCase
}

// NewOrderHandler construye el handler de pedidos.
func NewOrderHandler(orderUC *usecase.OrderUseCase, receiptUC *receipt.ReceiptUseCase) *OrderHandler {
	return &OrderHandler{orderUC: orderUC, receiptUC: receiptUC}
}

// List godoc
// @Summary      Pedidos de la tienda del manager
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "máx 100"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200   {array}  dto.OrderResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	session := GetSession(c)
	orders, err := h.orderUC.ListByStore(c.Context(), session.StoreID, page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(orders)
}

// GetByID godoc
// @Summary      Detalle de un pedido
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "order id"
// @Success      200   {object}  dto.OrderResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	order, err := h.orderUC.GetByID(c.Context(), GetSession(c), c.Params("id"))
	if err != nil {
		return h.orderError(c, err)
	}
	return c.JSON(order)
}

// ConfirmPayment godoc
// @Summary      Confirmar el cobro de un pedido (manager)
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "order id"
// @Success      200   {object}  dto.OrderResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/confirm-payment [post]
func (h *OrderHandler) ConfirmPayment(c *fiber.Ctx) error {
	order, err := h.orderUC.ConfirmPayment(c.Context(), GetSession(c), c.Params("id"))
	if err != nil {
		return h.orderError(c, err)
	}
	return c.JSON(order)
}

// DownloadReceipt godoc
// @Summary      Descargar el comprobante del pedido en PDF
// @Tags         orders
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id  path  string  true  "order id"
// @Success      200   {file}  binary
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/receipt.pdf [get]
func (h *OrderHandler) DownloadReceipt(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.receiptUC.DownloadOrderReceipt(c.Context(), GetSession(c), c.Params("id"))
	if err != nil {
		return h.orderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// ReportOutOfStock godoc
// @Summary      Reportar un producto agotado (picker)
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ReportOutOfStockRequest  true  "product_id, note"
// @Success      201
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/out-of-stock [post]
func (h *OrderHandler) ReportOutOfStock(c *fiber.Ctx) error {
	var in dto.ReportOutOfStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}
	if err := h.orderUC.ReportOutOfStock(c.Context(), GetSession(c), in); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusCreated)
}

// OutOfStockCount godoc
// @Summary      Conteo de agotados de la tienda del manager
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  dto.OutOfStockCountResponse
// @Router       /api/out-of-stock/count [get]
func (h *OrderHandler) OutOfStockCount(c *fiber.Ctx) error {
	session := GetSession(c)
	out, err := h.orderUC.OutOfStockCount(c.Context(), session.StoreID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

func (h *OrderHandler) orderError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el pedido no existe"})
	}
	if errors.Is(err, domain.ErrForbidden) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el pedido no pertenece a tu tienda"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Jeremytpk/storall/internal/application/dto"
	"github.com/Jeremytpk/storall/internal/application/staff"
	"github.com/Jeremytpk/storall/internal/application/usecase"
	"github.com/Jeremytpk/storall/internal/domain"
	"github.com/Jeremytpk/storall/internal/domain/entity"
)

// StoreHandler maneja tiendas y su staff.
type StoreHandler struct {
	storeUC *usecase.StoreUseCase
	staffUC *staff.StaffUseCase
}

// NewStoreHandler construye el handler de tiendas.
func NewStoreHandler(storeUC *usecase.StoreUseCase, staffUC *staff.StaffUseCase) *StoreHandler {
	return &StoreHandler{storeUC: storeUC, staffUC: staffUC}
}

// Create godoc
// @Summary      Crear tienda
// @Tags         stores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateStoreRequest  true  "name, address"
// @Success      201   {object}  dto.StoreResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stores [post]
func (h *StoreHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStoreRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	store, err := h.storeUC.Create(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(store)
}

// List godoc
// @Summary      Listar tiendas activas (?all=1 incluye inactivas, solo admin)
// @Tags         stores
// @Produce      json
// @Success      200   {array}  dto.StoreResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/stores [get]
func (h *StoreHandler) List(c *fiber.Ctx) error {
	activeOnly := c.Query("all") != "1"
	if !activeOnly {
		// El listado completo incluye tiendas inactivas: solo el admin.
		session := GetSession(c)
		if !session.IsAuthenticated {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "el listado completo requiere autenticación"})
		}
		if session.Role != entity.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el listado completo es solo para admin"})
		}
	}
	stores, err := h.storeUC.List(c.Context(), activeOnly)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(stores)
}

// GetByID godoc
// @Summary      Detalle de una tienda
// @Tags         stores
// @Produce      json
// @Param        id  path  string  true  "store id"
// @Success      200   {object}  dto.StoreResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stores/{id} [get]
func (h *StoreHandler) GetByID(c *fiber.Ctx) error {
	store, err := h.storeUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la tienda no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(store)
}

// ListStaff godoc
// @Summary      Staff completo de una tienda
// @Tags         stores
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "store id"
// @Success      200   {object}  dto.StoreStaffResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stores/{id}/staff [get]
func (h *StoreHandler) ListStaff(c *fiber.Ctx) error {
	out, err := h.staffUC.List(c.Context(), c.Params("id"))
	if err != nil {
		return h.staffError(c, err)
	}
	return c.JSON(out)
}

// AddStaff godoc
// @Summary      Añadir manager o picker a una tienda
// @Description  El username se genera a partir del nombre y la credencial
// @Description  arranca con el passcode inicial compartido.
// @Tags         stores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "store id"
// @Param        body  body  dto.AddStaffRequest  true  "name, role"
// @Success      201   {object}  dto.StaffMemberResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stores/{id}/staff [post]
func (h *StoreHandler) AddStaff(c *fiber.Ctx) error {
	var in dto.AddStaffRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Role == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y role son requeridos"})
	}
	member, err := h.staffUC.Add(c.Context(), c.Params("id"), in)
	if err != nil {
		return h.staffError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(member)
}

// RenameStaff godoc
// @Summary      Renombrar un miembro del staff (regenera el username)
// @Tags         stores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path   string  true  "store id"
// @Param        pid   path   string  true  "principal id"
// @Param        role  query  string  true  "manager|picker"
// @Param        body  body   dto.RenameStaffRequest  true  "name"
// @Success      200   {object}  dto.StaffMemberResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stores/{id}/staff/{pid} [put]
func (h *StoreHandler) RenameStaff(c *fiber.Ctx) error {
	var in dto.RenameStaffRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	member, err := h.staffUC.Rename(c.Context(), c.Params("id"), c.Query("role"), c.Params("pid"), in)
	if err != nil {
		return h.staffError(c, err)
	}
	return c.JSON(member)
}

// ResetStaffPasscode godoc
// @Summary      Restablecer el passcode de un miembro al inicial
// @Tags         stores
// @Produce      json
// @Security     BearerAuth
// @Param        id    path   string  true  "store id"
// @Param        pid   path   string  true  "principal id"
// @Param        role  query  string  true  "manager|picker"
// @Success      200   {object}  dto.StaffMemberResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stores/{id}/staff/{pid}/reset-passcode [post]
func (h *StoreHandler) ResetStaffPasscode(c *fiber.Ctx) error {
	member, err := h.staffUC.ResetPasscode(c.Context(), c.Params("id"), c.Query("role"), c.Params("pid"))
	if err != nil {
		return h.staffError(c, err)
	}
	return c.JSON(member)
}

// RemoveStaff godoc
// @Summary      Eliminar un miembro del staff
// @Tags         stores
// @Produce      json
// @Security     BearerAuth
// @Param        id    path   string  true  "store id"
// @Param        pid   path   string  true  "principal id"
// @Param        role  query  string  true  "manager|picker"
// @Success      204
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stores/{id}/staff/{pid} [delete]
func (h *StoreHandler) RemoveStaff(c *fiber.Ctx) error {
	if err := h.staffUC.Remove(c.Context(), c.Params("id"), c.Query("role"), c.Params("pid")); err != nil {
		return h.staffError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *StoreHandler) staffError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tienda o miembro no encontrado"})
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
	"github.com/jhoicas/stock-alerts-api/internal/application/usecase"
	"github.com/jhoicas/stock-alerts-api/internal/domain"
)

// SupplierHandler maneja las peticiones HTTP para Supplier y el vínculo
// producto-proveedor.
type SupplierHandler struct {
	uc *usecase.SupplierUseCase
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// Create godoc
// @Summary      Crear proveedor
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        companyID  path  string  true  "ID de la empresa"
// @Param        body       body  dto.CreateSupplierRequest  true  "Datos del proveedor"
// @Success      201  {object}  dto.SupplierResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyID}/suppliers [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	companyID := c.Params("companyID")
	var in dto.CreateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Create(companyID, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener proveedor por ID
// @Tags         suppliers
// @Produce      json
// @Param        id   path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.SupplierResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [get]
func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proveedor no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar proveedores de la empresa
// @Tags         suppliers
// @Produce      json
// @Param        companyID  path   string  true   "ID de la empresa"
// @Param        limit      query  int     false  "Límite"  default(20)
// @Param        offset     query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.SupplierListResponse
// @Router       /api/companies/{companyID}/suppliers [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	companyID := c.Params("companyID")
	limit, offset := pageParams(c)
	out, err := h.uc.List(companyID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SetPrimary godoc
// @Summary      Marcar proveedor primario de un producto
// @Description  Degrada cualquier primario anterior del producto en la misma
//               transacción: a lo sumo un primario por producto.
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.SetPrimarySupplierRequest  true  "Proveedor a marcar"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/primary-supplier [put]
func (h *SupplierHandler) SetPrimary(c *fiber.Ctx) error {
	productID := c.Params("id")
	var in dto.SetPrimarySupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.SupplierID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "supplier_id es requerido"})
	}
	if err := h.uc.SetPrimary(c.Context(), productID, in.SupplierID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto o proveedor no encontrado"})
		}
		if errors.Is(err, domain.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "producto y proveedor pertenecen a empresas distintas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListLinks godoc
// @Summary      Listar vínculos proveedor de un producto
// @Tags         suppliers
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {array}  dto.ProductSupplierLinkResponse
// @Router       /api/products/{id}/suppliers [get]
func (h *SupplierHandler) ListLinks(c *fiber.Ctx) error {
	productID := c.Params("id")
	out, err := h.uc.ListLinksByProduct(c.Context(), productID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

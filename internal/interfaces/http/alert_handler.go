package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
	"github.com/jhoicas/stock-alerts-api/internal/domain"
)

// AlertGenerator contrato del caso de uso de alertas que consume el handler.
type AlertGenerator interface {
	GenerateLowStockAlerts(ctx context.Context, companyID string) (*dto.LowStockAlertReportDTO, error)
	GenerateLowStockPDF(ctx context.Context, companyID string) ([]byte, error)
}

// AlertHandler maneja los endpoints del reporte de stock bajo.
type AlertHandler struct {
	uc AlertGenerator
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc AlertGenerator) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// GetLowStock godoc
// @Summary      Reporte de alertas de stock bajo
// @Description  Productos de la empresa con stock bajo su umbral, demanda reciente,
//               proyección de quiebre y proveedor primario. Solo lectura.
// @Tags         alerts
// @Produce      json
// @Param        companyID  path  string  true  "ID de la empresa (UUID)"
// @Success      200  {object}  dto.LowStockAlertReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyID}/alerts/low-stock [get]
func (h *AlertHandler) GetLowStock(c *fiber.Ctx) error {
	companyID := c.Params("companyID")

	report, err := h.uc.GenerateLowStockAlerts(c.Context(), companyID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "INVALID_COMPANY_ID", Message: "company_id debe ser un UUID",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(report)
}

// GetLowStockPDF godoc
// @Summary      Reporte de alertas de stock bajo en PDF
// @Tags         alerts
// @Produce      application/pdf
// @Param        companyID  path  string  true  "ID de la empresa (UUID)"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyID}/alerts/low-stock/pdf [get]
func (h *AlertHandler) GetLowStockPDF(c *fiber.Ctx) error {
	companyID := c.Params("companyID")

	pdfBytes, err := h.uc.GenerateLowStockPDF(c.Context(), companyID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "INVALID_COMPANY_ID", Message: "company_id debe ser un UUID",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="alertas-stock-bajo.pdf"`)
	return c.Send(pdfBytes)
}

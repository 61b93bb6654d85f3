// Package alerts contiene el caso de uso del reporte de alertas de stock bajo:
// productos cuyo stock en bodega cayó bajo su umbral, con demanda reciente
// demostrable, proyección de quiebre y proveedor primario adjunto.
package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
	"github.com/jhoicas/stock-alerts-api/internal/domain"
	"github.com/jhoicas/stock-alerts-api/internal/domain/alert"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

// LowStockAlertUseCase genera el reporte de stock bajo para una empresa.
//
// Operación de solo lectura, sin estado ni efectos secundarios: cada llamada
// calcula el reporte desde cero contra el snapshot que entregue la DB. Puede
// invocarse concurrentemente para distintas empresas sin coordinación.
type LowStockAlertUseCase struct {
	alertRepo    repository.AlertRepository
	pdfGen       ReportPDFGenerator // opcional; nil si no se expone exportación PDF
	lookbackDays int
	now          func() time.Time // inyectable para tests
}

// NewLowStockAlertUseCase construye el caso de uso. lookbackDays <= 0 aplica
// la ventana por defecto; now nil usa time.Now.
func NewLowStockAlertUseCase(
	alertRepo repository.AlertRepository,
	pdfGen ReportPDFGenerator,
	lookbackDays int,
	now func() time.Time,
) *LowStockAlertUseCase {
	if lookbackDays <= 0 {
		lookbackDays = alert.DefaultLookbackDays
	}
	if now == nil {
		now = time.Now
	}
	return &LowStockAlertUseCase{
		alertRepo:    alertRepo,
		pdfGen:       pdfGen,
		lookbackDays: lookbackDays,
		now:          now,
	}
}

// GenerateLowStockAlerts devuelve las alertas de stock bajo de la empresa.
//
// Reglas:
//   - companyID vacío o no-UUID falla rápido con domain.ErrInvalidInput,
//     antes de tocar la DB.
//   - Empresa inexistente o sin filas candidatas devuelve lista vacía, no error.
//   - Proveedor primario ausente y velocidad cero son estados de negocio
//     normales (campos null), nunca errores.
func (uc *LowStockAlertUseCase) GenerateLowStockAlerts(
	ctx context.Context,
	companyID string,
) (*dto.LowStockAlertReportDTO, error) {
	if err := validateCompanyID(companyID); err != nil {
		return nil, err
	}

	generatedAt := uc.now()
	since := generatedAt.AddDate(0, 0, -uc.lookbackDays)

	rows, err := uc.alertRepo.GetLowStockRows(ctx, companyID, since)
	if err != nil {
		return nil, fmt.Errorf("alertas de stock bajo: %w", err)
	}

	items := make([]dto.LowStockAlertDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, toAlertDTO(row, uc.lookbackDays))
	}

	return &dto.LowStockAlertReportDTO{
		CompanyID:    companyID,
		GeneratedAt:  generatedAt,
		LookbackDays: uc.lookbackDays,
		Items:        items,
	}, nil
}

// GenerateLowStockPDF genera el reporte y lo renderiza como PDF.
func (uc *LowStockAlertUseCase) GenerateLowStockPDF(
	ctx context.Context,
	companyID string,
) ([]byte, error) {
	if uc.pdfGen == nil {
		return nil, fmt.Errorf("alertas de stock bajo: %w", domain.ErrConflict)
	}
	report, err := uc.GenerateLowStockAlerts(ctx, companyID)
	if err != nil {
		return nil, err
	}
	pdf, err := uc.pdfGen.GenerateLowStockPDF(ctx, report)
	if err != nil {
		return nil, fmt.Errorf("alertas de stock bajo: render PDF: %w", err)
	}
	return pdf, nil
}

// validateCompanyID falla rápido ante un identificador inutilizable.
func validateCompanyID(companyID string) error {
	if companyID == "" {
		return fmt.Errorf("company_id requerido: %w", domain.ErrInvalidInput)
	}
	if err := uuid.Validate(companyID); err != nil {
		return fmt.Errorf("company_id no es un UUID: %w", domain.ErrInvalidInput)
	}
	return nil
}

// toAlertDTO transforma la fila aplanada del join en la alerta anidada.
// Etapa de mapeo pura, separada de la consulta: testeable con filas sintéticas.
func toAlertDTO(row repository.LowStockRow, lookbackDays int) dto.LowStockAlertDTO {
	item := dto.LowStockAlertDTO{
		ProductID:         row.ProductID,
		ProductName:       row.ProductName,
		SKU:               row.SKU,
		WarehouseID:       row.WarehouseID,
		WarehouseName:     row.WarehouseName,
		CurrentStock:      row.Quantity,
		Threshold:         row.Threshold,
		AvgDailySales:     alert.AvgDailySales(row.RecentSalesTotal, lookbackDays).Round(2),
		DaysUntilStockout: alert.DaysUntilStockout(row.Quantity, row.RecentSalesTotal, lookbackDays),
	}

	// El proveedor primario es opcional: su ausencia es un estado esperado.
	if row.SupplierID != nil {
		item.Supplier = &dto.AlertSupplierDTO{
			ID: *row.SupplierID,
		}
		if row.SupplierName != nil {
			item.Supplier.Name = *row.SupplierName
		}
		if row.SupplierEmail != nil {
			item.Supplier.ContactEmail = *row.SupplierEmail
		}
	}
	return item
}

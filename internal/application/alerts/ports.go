package alerts

import (
	"context"

	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
)

// ReportPDFGenerator renderiza el reporte de stock bajo como PDF (puerto de salida).
type ReportPDFGenerator interface {
	GenerateLowStockPDF(ctx context.Context, report *dto.LowStockAlertReportDTO) ([]byte, error)
}

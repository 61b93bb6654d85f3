package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
	"github.com/jhoicas/stock-alerts-api/internal/domain"
	apphttp "github.com/jhoicas/stock-alerts-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testCompanyID = "00000000-0000-0000-0000-000000000002"
)

// fakeAlertGenerator implementa apphttp.AlertGenerator con respuestas fijas.
type fakeAlertGenerator struct {
	report *dto.LowStockAlertReportDTO
	pdf    []byte
	err    error

	gotCompanyID string
}

func (f *fakeAlertGenerator) GenerateLowStockAlerts(_ context.Context, companyID string) (*dto.LowStockAlertReportDTO, error) {
	f.gotCompanyID = companyID
	if f.err != nil {
		return nil, f.err
	}
	return f.report, nil
}

func (f *fakeAlertGenerator) GenerateLowStockPDF(_ context.Context, companyID string) ([]byte, error) {
	f.gotCompanyID = companyID
	if f.err != nil {
		return nil, f.err
	}
	return f.pdf, nil
}

// buildAlertApp construye una aplicación Fiber con solo las rutas de alertas.
func buildAlertApp(gen apphttp.AlertGenerator) *fiber.App {
	app := fiber.New()
	h := apphttp.NewAlertHandler(gen)
	app.Get("/api/companies/:companyID/alerts/low-stock", h.GetLowStock)
	app.Get("/api/companies/:companyID/alerts/low-stock/pdf", h.GetLowStockPDF)
	return app
}

func getLowStock(t *testing.T, app *fiber.App, companyID string) *http.Response {
	t.Helper()
	url := fmt.Sprintf("/api/companies/%s/alerts/low-stock", companyID)
	req := httptest.NewRequest(http.MethodGet, url, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func sampleReport() *dto.LowStockAlertReportDTO {
	days := int64(2)
	return &dto.LowStockAlertReportDTO{
		CompanyID:    testCompanyID,
		GeneratedAt:  time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
		LookbackDays: 30,
		Items: []dto.LowStockAlertDTO{
			{
				ProductID:         "00000000-0000-0000-0000-0000000000aa",
				ProductName:       "Tornillo 1/4",
				SKU:               "TOR-014",
				WarehouseID:       "00000000-0000-0000-0000-0000000000bb",
				WarehouseName:     "Bodega Central",
				CurrentStock:      3,
				Threshold:         10,
				AvgDailySales:     decimal.NewFromInt(2),
				DaysUntilStockout: &days,
				Supplier: &dto.AlertSupplierDTO{
					ID:           "00000000-0000-0000-0000-0000000000cc",
					Name:         "Ferretería Norte",
					ContactEmail: "ventas@ferrenorte.co",
				},
			},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GET /alerts/low-stock
// ──────────────────────────────────────────────────────────────────────────────

// Caso feliz: el reporte se serializa con el contrato JSON completo.
func TestGetLowStock_ReporteOK(t *testing.T) {
	fake := &fakeAlertGenerator{report: sampleReport()}
	app := buildAlertApp(fake)

	resp := getLowStock(t, app, testCompanyID)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, testCompanyID, fake.gotCompanyID, "el handler debe pasar el companyID del path al caso de uso")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, testCompanyID, got["company_id"])
	assert.EqualValues(t, 30, got["lookback_days"])

	items, ok := got["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, "TOR-014", item["sku"])
	assert.EqualValues(t, 3, item["current_stock"])
	assert.EqualValues(t, 2, item["days_until_stockout"])
	supplier := item["supplier"].(map[string]any)
	assert.Equal(t, "Ferretería Norte", supplier["name"])
}

// Sin velocidad de venta y sin proveedor primario: los campos deben ser null
// explícito, nunca omitidos.
func TestGetLowStock_NullsExplicitos(t *testing.T) {
	report := sampleReport()
	report.Items[0].DaysUntilStockout = nil
	report.Items[0].Supplier = nil
	fake := &fakeAlertGenerator{report: report}
	app := buildAlertApp(fake)

	resp := getLowStock(t, app, testCompanyID)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var got struct {
		Items []map[string]any `json:"items"`
	}
	require.NoError(t, json.Unmarshal(body, &got))
	require.Len(t, got.Items, 1)

	v, present := got.Items[0]["days_until_stockout"]
	assert.True(t, present, "days_until_stockout debe estar presente")
	assert.Nil(t, v)
	v, present = got.Items[0]["supplier"]
	assert.True(t, present, "supplier debe estar presente")
	assert.Nil(t, v)
}

// Empresa sin alertas: lista vacía con 200, no 404.
func TestGetLowStock_ListaVacia(t *testing.T) {
	fake := &fakeAlertGenerator{report: &dto.LowStockAlertReportDTO{
		CompanyID:    testCompanyID,
		LookbackDays: 30,
		Items:        []dto.LowStockAlertDTO{},
	}}
	app := buildAlertApp(fake)

	resp := getLowStock(t, app, testCompanyID)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"items":[]`, "items debe ser un arreglo vacío, no null")
}

// companyID inválido: el caso de uso devuelve ErrInvalidInput y el handler
// responde 400 con código estable.
func TestGetLowStock_CompanyIDInvalido(t *testing.T) {
	fake := &fakeAlertGenerator{err: fmt.Errorf("company_id %q: %w", "no-es-uuid", domain.ErrInvalidInput)}
	app := buildAlertApp(fake)

	resp := getLowStock(t, app, "no-es-uuid")
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var got dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "INVALID_COMPANY_ID", got.Code)
}

// Error de infraestructura: 500, sin reintentos ni enmascaramiento.
func TestGetLowStock_ErrorInterno(t *testing.T) {
	fake := &fakeAlertGenerator{err: fmt.Errorf("conexión rechazada")}
	app := buildAlertApp(fake)

	resp := getLowStock(t, app, testCompanyID)
	defer resp.Body.Close()
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var got dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "INTERNAL", got.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GET /alerts/low-stock/pdf
// ──────────────────────────────────────────────────────────────────────────────

func TestGetLowStockPDF_DescargaOK(t *testing.T) {
	fake := &fakeAlertGenerator{pdf: []byte("%PDF-1.7 contenido")}
	app := buildAlertApp(fake)

	url := fmt.Sprintf("/api/companies/%s/alerts/low-stock/pdf", testCompanyID)
	req := httptest.NewRequest(http.MethodGet, url, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "alertas-stock-bajo.pdf")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, len(body) > 0, "el PDF no debe venir vacío")
}

func TestGetLowStockPDF_CompanyIDInvalido(t *testing.T) {
	fake := &fakeAlertGenerator{err: fmt.Errorf("company_id vacío: %w", domain.ErrInvalidInput)}
	app := buildAlertApp(fake)

	url := fmt.Sprintf("/api/companies/%s/alerts/low-stock/pdf", "x")
	req := httptest.NewRequest(http.MethodGet, url, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

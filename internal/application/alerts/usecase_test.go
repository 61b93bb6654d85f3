package alerts_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-alerts-api/internal/application/alerts"
	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
	"github.com/jhoicas/stock-alerts-api/internal/domain"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testCompanyID   = "00000000-0000-0000-0000-000000000001"
	testWarehouseID = "00000000-0000-0000-0000-000000000010"
	testProductID   = "00000000-0000-0000-0000-000000000020"
	testSupplierID  = "00000000-0000-0000-0000-000000000030"
)

// testNow reloj fijo inyectado: los tests no dependen de la hora real.
var testNow = time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

// fakeAlertRepo implementación en memoria del puerto AlertRepository.
// Registra los argumentos recibidos para verificar el contrato de la consulta.
type fakeAlertRepo struct {
	rows  []repository.LowStockRow
	err   error
	calls int

	gotCompanyID string
	gotSince     time.Time
}

func (f *fakeAlertRepo) GetLowStockRows(_ context.Context, companyID string, since time.Time) ([]repository.LowStockRow, error) {
	f.calls++
	f.gotCompanyID = companyID
	f.gotSince = since
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func strPtr(s string) *string { return &s }

// referenceRow fila del escenario de referencia: stock=3, umbral=10,
// 60 unidades vendidas en la ventana, proveedor primario presente.
func referenceRow() repository.LowStockRow {
	return repository.LowStockRow{
		ProductID:        testProductID,
		ProductName:      "Café Molido 500g",
		SKU:              "CAF-500",
		WarehouseID:      testWarehouseID,
		WarehouseName:    "Bodega Norte",
		Quantity:         3,
		Threshold:        10,
		RecentSalesTotal: 60,
		SupplierID:       strPtr(testSupplierID),
		SupplierName:     strPtr("Distribuciones Andinas"),
		SupplierEmail:    strPtr("ventas@andinas.co"),
	}
}

func newUseCase(repo *fakeAlertRepo) *alerts.LowStockAlertUseCase {
	return alerts.NewLowStockAlertUseCase(repo, nil, 30, fixedClock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenarios del reporte
// ──────────────────────────────────────────────────────────────────────────────

// Escenario de referencia: una bodega con un producto bajo umbral y demanda
// reciente. round(3 / (60/30)) = round(1.5) = 2 días hasta el quiebre.
func TestGenerateLowStockAlerts_EscenarioReferencia(t *testing.T) {
	repo := &fakeAlertRepo{rows: []repository.LowStockRow{referenceRow()}}
	uc := newUseCase(repo)

	report, err := uc.GenerateLowStockAlerts(context.Background(), testCompanyID)
	require.NoError(t, err)
	require.Len(t, report.Items, 1)

	item := report.Items[0]
	assert.Equal(t, testProductID, item.ProductID)
	assert.Equal(t, "Café Molido 500g", item.ProductName)
	assert.Equal(t, "CAF-500", item.SKU)
	assert.Equal(t, testWarehouseID, item.WarehouseID)
	assert.Equal(t, "Bodega Norte", item.WarehouseName)
	assert.Equal(t, int64(3), item.CurrentStock)
	assert.Equal(t, int64(10), item.Threshold)

	require.NotNil(t, item.DaysUntilStockout, "con ventas recientes la proyección debe existir")
	assert.Equal(t, int64(2), *item.DaysUntilStockout, "round(3/(60/30)) debe ser 2")

	assert.True(t, item.AvgDailySales.Equal(decimal.NewFromInt(2)),
		"60 unidades en 30 días son 2 unidades/día")

	require.NotNil(t, item.Supplier)
	assert.Equal(t, testSupplierID, item.Supplier.ID)
	assert.Equal(t, "Distribuciones Andinas", item.Supplier.Name)
	assert.Equal(t, "ventas@andinas.co", item.Supplier.ContactEmail)

	assert.Equal(t, testNow, report.GeneratedAt)
	assert.Equal(t, 30, report.LookbackDays)
	assert.Equal(t, testCompanyID, report.CompanyID)
}

// El inicio de la ventana debe ser exactamente now − 30 días y viajar como
// argumento al repositorio (parámetro enlazado, nunca interpolado).
func TestGenerateLowStockAlerts_VentanaDeLookback(t *testing.T) {
	repo := &fakeAlertRepo{}
	uc := newUseCase(repo)

	_, err := uc.GenerateLowStockAlerts(context.Background(), testCompanyID)
	require.NoError(t, err)

	assert.Equal(t, testCompanyID, repo.gotCompanyID)
	assert.Equal(t, testNow.AddDate(0, 0, -30), repo.gotSince,
		"el inicio de la ventana debe ser now − 30 días")
}

// Ventana configurable: con 7 días el inicio y la velocidad cambian.
func TestGenerateLowStockAlerts_VentanaConfigurable(t *testing.T) {
	row := referenceRow()
	row.RecentSalesTotal = 14 // 14 unidades en 7 días = 2/día
	repo := &fakeAlertRepo{rows: []repository.LowStockRow{row}}
	uc := alerts.NewLowStockAlertUseCase(repo, nil, 7, fixedClock)

	report, err := uc.GenerateLowStockAlerts(context.Background(), testCompanyID)
	require.NoError(t, err)

	assert.Equal(t, testNow.AddDate(0, 0, -7), repo.gotSince)
	require.Len(t, report.Items, 1)
	require.NotNil(t, report.Items[0].DaysUntilStockout)
	assert.Equal(t, int64(2), *report.Items[0].DaysUntilStockout, "round(3/2) = 2")
	assert.Equal(t, 7, report.LookbackDays)
}

// Sin proveedor primario la alerta sale igual, con supplier en null.
func TestGenerateLowStockAlerts_SinProveedorPrimario(t *testing.T) {
	row := referenceRow()
	row.SupplierID = nil
	row.SupplierName = nil
	row.SupplierEmail = nil
	repo := &fakeAlertRepo{rows: []repository.LowStockRow{row}}
	uc := newUseCase(repo)

	report, err := uc.GenerateLowStockAlerts(context.Background(), testCompanyID)
	require.NoError(t, err)
	require.Len(t, report.Items, 1)
	assert.Nil(t, report.Items[0].Supplier,
		"sin vínculo primario el proveedor debe ser null, nunca un error")
}

// Guardia defensiva: si una fila llegara con 0 ventas (el filtro EXISTS lo
// impide en la práctica), la proyección debe ser null, no una división por cero.
func TestGenerateLowStockAlerts_VelocidadCeroProyeccionNula(t *testing.T) {
	row := referenceRow()
	row.RecentSalesTotal = 0
	repo := &fakeAlertRepo{rows: []repository.LowStockRow{row}}
	uc := newUseCase(repo)

	report, err := uc.GenerateLowStockAlerts(context.Background(), testCompanyID)
	require.NoError(t, err)
	require.Len(t, report.Items, 1)
	assert.Nil(t, report.Items[0].DaysUntilStockout)
	assert.True(t, report.Items[0].AvgDailySales.IsZero())
}

// Empresa sin filas candidatas (o inexistente): lista vacía, no error ni nil.
func TestGenerateLowStockAlerts_EmpresaSinAlertas(t *testing.T) {
	repo := &fakeAlertRepo{}
	uc := newUseCase(repo)

	report, err := uc.GenerateLowStockAlerts(context.Background(), testCompanyID)
	require.NoError(t, err)
	require.NotNil(t, report.Items)
	assert.Empty(t, report.Items)
}

// Idempotencia: dos llamadas con reloj fijo y datos sin cambios producen
// exactamente el mismo reporte.
func TestGenerateLowStockAlerts_Idempotente(t *testing.T) {
	repo := &fakeAlertRepo{rows: []repository.LowStockRow{referenceRow()}}
	uc := newUseCase(repo)

	r1, err1 := uc.GenerateLowStockAlerts(context.Background(), testCompanyID)
	r2, err2 := uc.GenerateLowStockAlerts(context.Background(), testCompanyID)

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, r1, r2)
	assert.Equal(t, 2, repo.calls)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación de entrada y propagación de errores
// ──────────────────────────────────────────────────────────────────────────────

// company_id vacío o no-UUID debe fallar rápido, sin tocar el repositorio.
func TestGenerateLowStockAlerts_CompanyIDInvalido(t *testing.T) {
	cases := []struct {
		name      string
		companyID string
	}{
		{"vacío", ""},
		{"no es UUID", "empresa-123"},
		{"UUID truncado", "00000000-0000-0000-0000"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeAlertRepo{}
			uc := newUseCase(repo)

			_, err := uc.GenerateLowStockAlerts(context.Background(), tc.companyID)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Zero(t, repo.calls, "la validación debe ocurrir antes de consultar la DB")
		})
	}
}

// Los fallos de acceso a datos se propagan envueltos, sin reintentos.
func TestGenerateLowStockAlerts_ErrorDeDatosSePropaga(t *testing.T) {
	dbErr := errors.New("connection refused")
	repo := &fakeAlertRepo{err: dbErr}
	uc := newUseCase(repo)

	_, err := uc.GenerateLowStockAlerts(context.Background(), testCompanyID)
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.Equal(t, 1, repo.calls, "no debe haber reintentos internos")
}

// ──────────────────────────────────────────────────────────────────────────────
// Forma JSON del contrato de salida
// ──────────────────────────────────────────────────────────────────────────────

// Los campos ausentes deben serializarse como null explícito (no omitirse):
// days_until_stockout y supplier forman parte del contrato.
func TestGenerateLowStockAlerts_JSONConNullsExplicitos(t *testing.T) {
	row := referenceRow()
	row.RecentSalesTotal = 0
	row.SupplierID = nil
	row.SupplierName = nil
	row.SupplierEmail = nil
	repo := &fakeAlertRepo{rows: []repository.LowStockRow{row}}
	uc := newUseCase(repo)

	report, err := uc.GenerateLowStockAlerts(context.Background(), testCompanyID)
	require.NoError(t, err)

	raw, err := json.Marshal(report.Items[0])
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	for _, key := range []string{
		"product_id", "product_name", "sku", "warehouse_id", "warehouse_name",
		"current_stock", "threshold", "days_until_stockout", "supplier",
	} {
		_, ok := decoded[key]
		assert.True(t, ok, "el JSON debe incluir la clave %q", key)
	}
	assert.Nil(t, decoded["days_until_stockout"])
	assert.Nil(t, decoded["supplier"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Exportación PDF
// ──────────────────────────────────────────────────────────────────────────────

type fakePDFGen struct {
	gotReport *dto.LowStockAlertReportDTO
	out       []byte
	err       error
}

func (f *fakePDFGen) GenerateLowStockPDF(_ context.Context, report *dto.LowStockAlertReportDTO) ([]byte, error) {
	f.gotReport = report
	return f.out, f.err
}

func TestGenerateLowStockPDF_RenderizaElReporte(t *testing.T) {
	repo := &fakeAlertRepo{rows: []repository.LowStockRow{referenceRow()}}
	gen := &fakePDFGen{out: []byte("%PDF-1.7")}
	uc := alerts.NewLowStockAlertUseCase(repo, gen, 30, fixedClock)

	pdf, err := uc.GenerateLowStockPDF(context.Background(), testCompanyID)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.7"), pdf)

	require.NotNil(t, gen.gotReport)
	assert.Len(t, gen.gotReport.Items, 1)
	assert.Equal(t, testCompanyID, gen.gotReport.CompanyID)
}

func TestGenerateLowStockPDF_ValidaCompanyIDAntesDeRenderizar(t *testing.T) {
	repo := &fakeAlertRepo{}
	gen := &fakePDFGen{}
	uc := alerts.NewLowStockAlertUseCase(repo, gen, 30, fixedClock)

	_, err := uc.GenerateLowStockPDF(context.Background(), "no-uuid")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, gen.gotReport)
}

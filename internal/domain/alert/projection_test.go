package alert_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-alerts-api/internal/domain/alert"
)

// TestAvgDailySales_VentanaDe30Dias verifica la velocidad de venta básica:
// 60 unidades en 30 días = 2 unidades/día.
func TestAvgDailySales_VentanaDe30Dias(t *testing.T) {
	avg := alert.AvgDailySales(60, 30)
	assert.True(t, avg.Equal(decimal.NewFromInt(2)),
		"60 unidades en 30 días deben dar 2 unidades/día, se obtuvo %s", avg)
}

// TestAvgDailySales_SinVentas verifica que sin ventas la velocidad es cero.
func TestAvgDailySales_SinVentas(t *testing.T) {
	avg := alert.AvgDailySales(0, 30)
	assert.True(t, avg.IsZero(), "sin ventas la velocidad debe ser 0")
}

// TestAvgDailySales_VentanaInvalidaUsaDefault protege contra windowDays <= 0:
// se usa la ventana por defecto de 30 días en lugar de dividir por cero.
func TestAvgDailySales_VentanaInvalidaUsaDefault(t *testing.T) {
	avg := alert.AvgDailySales(60, 0)
	assert.True(t, avg.Equal(decimal.NewFromInt(2)),
		"con ventana inválida debe usarse la ventana por defecto (30 días)")
}

// TestDaysUntilStockout_EscenarioReferencia cubre el caso de referencia del
// reporte: stock=3, 60 unidades vendidas en 30 días (2/día).
// round(3 / 2) = round(1.5) = 2 días (redondeo al entero más cercano).
func TestDaysUntilStockout_EscenarioReferencia(t *testing.T) {
	days := alert.DaysUntilStockout(3, 60, 30)
	require.NotNil(t, days)
	assert.Equal(t, int64(2), *days, "round(3/(60/30)) debe ser 2")
}

// TestDaysUntilStockout_SinVentasEsNil verifica que velocidad cero produce
// proyección ausente (nil), nunca error ni división por cero.
func TestDaysUntilStockout_SinVentasEsNil(t *testing.T) {
	assert.Nil(t, alert.DaysUntilStockout(5, 0, 30))
	assert.Nil(t, alert.DaysUntilStockout(5, -1, 30))
}

// TestDaysUntilStockout_Redondeos verifica el redondeo al entero más cercano
// en ambos sentidos.
func TestDaysUntilStockout_Redondeos(t *testing.T) {
	cases := []struct {
		name     string
		stock    int64
		sold     int64
		expected int64
	}{
		{"exacto", 10, 60, 5},            // 10 / 2 = 5
		{"redondea hacia arriba", 3, 60, 2}, // 1.5 -> 2
		{"redondea hacia abajo", 4, 90, 1},  // 4/3 = 1.33 -> 1
		{"venta lenta", 7, 3, 70},           // 7 / 0.1 = 70
		{"stock agotándose hoy", 1, 300, 0}, // 1/10 = 0.1 -> 0
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			days := alert.DaysUntilStockout(tc.stock, tc.sold, 30)
			require.NotNil(t, days)
			assert.Equal(t, tc.expected, *days)
		})
	}
}

// TestDaysUntilStockout_Determinista verifica que el mismo input produce
// siempre la misma proyección (cálculo puro, sin estado).
func TestDaysUntilStockout_Determinista(t *testing.T) {
	d1 := alert.DaysUntilStockout(13, 47, 30)
	d2 := alert.DaysUntilStockout(13, 47, 30)
	require.NotNil(t, d1)
	require.NotNil(t, d2)
	assert.Equal(t, *d1, *d2)
}

// Package alert contiene la aritmética pura del reporte de stock bajo:
// velocidad de venta y proyección de quiebre de stock. Sin acceso a datos.
package alert

import "github.com/shopspring/decimal"

// DefaultLookbackDays ventana por defecto de ventas recientes, en días.
const DefaultLookbackDays = 30

// AvgDailySales calcula la velocidad de venta: unidades vendidas por día
// dentro de la ventana. recentSalesTotal es la suma de cantidades vendidas
// en la ventana (0 si no hubo ventas); windowDays es la longitud de la
// ventana en días, no el número de eventos de venta.
func AvgDailySales(recentSalesTotal int64, windowDays int) decimal.Decimal {
	if windowDays <= 0 {
		windowDays = DefaultLookbackDays
	}
	return decimal.NewFromInt(recentSalesTotal).Div(decimal.NewFromInt(int64(windowDays)))
}

// DaysUntilStockout proyecta los días hasta agotar el stock a la velocidad
// de venta actual: round(currentStock / avgDailySales) al entero más cercano.
//
// Devuelve nil cuando recentSalesTotal es 0: el filtro de demanda reciente
// garantiza al menos una venta, pero la proyección se protege igualmente y
// representa "sin velocidad" como valor ausente, nunca como error.
func DaysUntilStockout(currentStock, recentSalesTotal int64, windowDays int) *int64 {
	if recentSalesTotal <= 0 {
		return nil
	}
	avg := AvgDailySales(recentSalesTotal, windowDays)
	days := decimal.NewFromInt(currentStock).Div(avg).Round(0).IntPart()
	return &days
}

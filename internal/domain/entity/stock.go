package entity

import "time"

// Stock representa el stock actual de un producto en una bodega.
// Este servicio solo lo lee; las mutaciones ocurren en el sistema de inventario.
type Stock struct {
	ProductID   string
	WarehouseID string
	Quantity    int64 // unidades en mano, siempre >= 0
	UpdatedAt   time.Time
}

package entity

import "time"

// Company representa una organización/tenant del sistema. Es la frontera de
// alcance de los datos: una empresa solo ve sus propias bodegas y productos.
type Company struct {
	ID        string
	Name      string
	Email     string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}

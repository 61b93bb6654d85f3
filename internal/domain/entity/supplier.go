package entity

import "time"

// Supplier representa un proveedor de productos de la empresa.
type Supplier struct {
	ID           string
	CompanyID    string
	Name         string
	ContactEmail string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProductSupplierLink relaciona un producto con un proveedor (muchos a muchos).
// A lo sumo un link por producto debería tener IsPrimary = true; el proveedor
// primario es la fuente preferida para reposición.
type ProductSupplierLink struct {
	ProductID  string
	SupplierID string
	IsPrimary  bool
	CreatedAt  time.Time
}

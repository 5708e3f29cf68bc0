package entity

import "time"

// CategoryUncategorized categoría asignada a los placeholders creados por
// operaciones de stock contra un SKU que aún no existe en el catálogo.
const CategoryUncategorized = "Uncategorized"

// Product representa un producto del catálogo. El SKU es la clave única;
// el stock se lleva como entero con signo por nombre de ubicación (las
// ubicaciones son texto libre, no hay registro de ubicaciones válidas).
type Product struct {
	SKU       string         `json:"sku"`
	Name      string         `json:"name"`
	Category  string         `json:"category"`
	UOM       string         `json:"uom"` // unidad de medida, ej. "pcs"
	Locations map[string]int `json:"locations"`
	CreatedAt time.Time      `json:"created"`
}

// NewPlaceholder crea el registro mínimo para un SKU desconocido referenciado
// por una recepción, entrega, transferencia o ajuste.
func NewPlaceholder(sku string, locations map[string]int, now time.Time) *Product {
	return &Product{
		SKU:       sku,
		Name:      sku,
		Category:  CategoryUncategorized,
		UOM:       "pcs",
		Locations: locations,
		CreatedAt: now,
	}
}

// QuantityAt devuelve el stock en la ubicación (0 si no existe la clave).
func (p *Product) QuantityAt(location string) int {
	if p.Locations == nil {
		return 0
	}
	return p.Locations[location]
}

// SetQuantity fija el stock de la ubicación al valor dado.
func (p *Product) SetQuantity(location string, qty int) {
	if p.Locations == nil {
		p.Locations = make(map[string]int)
	}
	p.Locations[location] = qty
}

// TotalQuantity suma el stock de todas las ubicaciones.
func (p *Product) TotalQuantity() int {
	total := 0
	for _, q := range p.Locations {
		total += q
	}
	return total
}

package repository

import "github.com/jhoicas/inventario-lite/internal/domain/entity"

// ProductRepository define el puerto de persistencia para el catálogo (DIP).
type ProductRepository interface {
	List() ([]entity.Product, error)
	// FindBySKU busca por SKU exacto; (nil, nil) si no existe.
	FindBySKU(sku string) (*entity.Product, error)
	// Mutate ejecuta fn sobre el catálogo completo bajo el lock de la
	// colección y persiste el resultado con un único save. Si fn devuelve
	// error no se escribe nada (las operaciones multi-línea son todo-o-nada).
	Mutate(fn func(products []entity.Product) ([]entity.Product, error)) error
}

package jsonstore

import (
	"github.com/rs/zerolog"

	"github.com/jhoicas/inventario-lite/internal/domain/entity"
	"github.com/jhoicas/inventario-lite/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre products.json.
type ProductRepo struct {
	col *Collection[entity.Product]
}

// NewProductRepository construye el adaptador de persistencia para el catálogo.
func NewProductRepository(dataDir string, log zerolog.Logger) (*ProductRepo, error) {
	col, err := NewCollection[entity.Product](dataDir, "products", log)
	if err != nil {
		return nil, err
	}
	return &ProductRepo{col: col}, nil
}

// List devuelve el catálogo en orden de inserción.
func (r *ProductRepo) List() ([]entity.Product, error) {
	return r.col.Load()
}

// FindBySKU busca por SKU exacto; (nil, nil) si no existe.
func (r *ProductRepo) FindBySKU(sku string) (*entity.Product, error) {
	products, err := r.col.Load()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].SKU == sku {
			p := products[i]
			return &p, nil
		}
	}
	return nil, nil
}

// Mutate ejecuta fn sobre el catálogo bajo el lock de la colección y
// persiste el resultado con un único save.
func (r *ProductRepo) Mutate(fn func(products []entity.Product) ([]entity.Product, error)) error {
	return r.col.Update(fn)
}

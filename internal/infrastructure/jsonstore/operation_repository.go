package jsonstore

import (
	"github.com/rs/zerolog"

	"github.com/jhoicas/inventario-lite/internal/domain/entity"
	"github.com/jhoicas/inventario-lite/internal/domain/repository"
)

var _ repository.OperationRepository = (*OperationRepo)(nil)

// OperationRepo implementación del puerto OperationRepository sobre ops.json.
// Las entradas son inmutables: solo se agrega al final.
type OperationRepo struct {
	col *Collection[entity.Operation]
}

// NewOperationRepository construye el adaptador del ledger.
func NewOperationRepository(dataDir string, log zerolog.Logger) (*OperationRepo, error) {
	col, err := NewCollection[entity.Operation](dataDir, "ops", log)
	if err != nil {
		return nil, err
	}
	return &OperationRepo{col: col}, nil
}

// Append agrega una entrada al final del ledger.
func (r *OperationRepo) Append(op *entity.Operation) error {
	return r.col.Update(func(ops []entity.Operation) ([]entity.Operation, error) {
		return append(ops, *op), nil
	})
}

// List devuelve todas las entradas en orden de append.
func (r *OperationRepo) List() ([]entity.Operation, error) {
	return r.col.Load()
}

package repository

import "github.com/jhoicas/inventario-lite/internal/domain/entity"

// OperationRepository define el puerto del ledger append-only.
type OperationRepository interface {
	// Append agrega una entrada al final del ledger; solo falla por storage.
	Append(op *entity.Operation) error
	// List devuelve todas las entradas en orden de append.
	List() ([]entity.Operation, error)
}

// Package analytics contiene los casos de uso de reporte: historial del
// ledger y KPIs del dashboard.
package analytics

import (
	"time"

	"github.com/jhoicas/inventario-lite/internal/application/dto"
	"github.com/jhoicas/inventario-lite/internal/domain/entity"
	"github.com/jhoicas/inventario-lite/internal/domain/repository"
)

const (
	lowStockThreshold = 5              // suma de stock en todas las ubicaciones ≤ 5
	recentWindow      = 24 * time.Hour // ventana de los contadores de actividad reciente
)

// DashboardUseCase responde el historial y el resumen del dashboard.
type DashboardUseCase struct {
	products repository.ProductRepository
	ops      repository.OperationRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(products repository.ProductRepository, ops repository.OperationRepository) *DashboardUseCase {
	return &DashboardUseCase{products: products, ops: ops}
}

// History devuelve todas las entradas del ledger en orden de append, sin filtrar.
func (uc *DashboardUseCase) History() ([]dto.OperationDTO, error) {
	ops, err := uc.ops.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.OperationDTO, 0, len(ops))
	for _, op := range ops {
		out = append(out, toOperationDTO(op))
	}
	return out, nil
}

// Summary calcula los KPIs del dashboard:
//   - total de productos del catálogo
//   - low stock: productos cuya suma en todas las ubicaciones es ≤ 5
//     (incluye ≤ 0; cada producto cuenta una sola vez)
//   - recepciones y entregas de las últimas 24 h (volumen reciente; no es un
//     estado abierto/cerrado, aunque el cliente los muestre como "pending")
func (uc *DashboardUseCase) Summary() (*dto.DashboardSummary, error) {
	products, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	ops, err := uc.ops.List()
	if err != nil {
		return nil, err
	}

	summary := &dto.DashboardSummary{TotalProducts: len(products)}
	for _, p := range products {
		if p.TotalQuantity() <= lowStockThreshold {
			summary.LowStock++
		}
	}

	cut := time.Now().Add(-recentWindow)
	for _, op := range ops {
		if !op.CreatedAt.After(cut) {
			continue
		}
		switch op.Type {
		case entity.OpReceipt:
			summary.RecentReceipts++
		case entity.OpDelivery:
			summary.RecentDeliveries++
		}
	}
	return summary, nil
}

func toOperationDTO(op entity.Operation) dto.OperationDTO {
	var meta []dto.LineDTO
	for _, ln := range op.Lines {
		meta = append(meta, dto.LineDTO{SKU: ln.SKU, Qty: ln.Qty})
	}
	return dto.OperationDTO{
		ID:      op.ID,
		Type:    op.Type,
		Details: op.Details,
		By:      op.By,
		Time:    op.CreatedAt,
		Meta:    meta,
	}
}

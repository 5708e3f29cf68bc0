// Package inventory contiene los casos de uso del catálogo y de las cuatro
// operaciones de stock (recepción, entrega, transferencia y ajuste). Toda
// operación que mueve stock deja una entrada en el ledger.
package inventory

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-lite/internal/application/dto"
	"github.com/jhoicas/inventario-lite/internal/domain"
	"github.com/jhoicas/inventario-lite/internal/domain/entity"
	"github.com/jhoicas/inventario-lite/internal/domain/repository"
)

// defaultLocation ubicación usada cuando el cliente no manda una.
const defaultLocation = "Default"

// InventoryUseCase casos de uso del catálogo y las operaciones de stock.
//
// Política de SKU desconocido: entrega, transferencia y ajuste contra un SKU
// que no existe crean un placeholder con categoría "Uncategorized" (política
// upsert-or-create explícita, no un efecto incidental).
//
// Política de cantidades negativas: uniforme — entregas y orígenes de
// transferencia nunca dejan stock negativo (clamp a 0), también en el camino
// de creación de placeholder. El ajuste por conteo fija cualquier entero
// porque es un conteo autoritativo.
type InventoryUseCase struct {
	products repository.ProductRepository
	ops      repository.OperationRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(products repository.ProductRepository, ops repository.OperationRepository) *InventoryUseCase {
	return &InventoryUseCase{products: products, ops: ops}
}

// UpsertProduct crea o actualiza un producto por SKU. Si el SKU existe
// actualiza los campos descriptivos y, solo si initial > 0, suma a la
// ubicación (no sobreescribe). Si es nuevo lo crea con la cantidad inicial
// (cero permitido) y, si initial > 0, registra una recepción en el ledger.
// Devuelve true si el producto fue creado.
func (uc *InventoryUseCase) UpsertProduct(actor string, in dto.CreateProductRequest) (bool, error) {
	if in.Name == "" || in.SKU == "" {
		return false, domain.ErrValidation
	}
	if in.UOM == "" {
		in.UOM = "pcs"
	}
	if in.Location == "" {
		in.Location = defaultLocation
	}
	created := false
	err := uc.products.Mutate(func(products []entity.Product) ([]entity.Product, error) {
		for i := range products {
			if products[i].SKU == in.SKU {
				products[i].Name = in.Name
				products[i].Category = in.Category
				products[i].UOM = in.UOM
				if in.Initial > 0 {
					products[i].SetQuantity(in.Location, products[i].QuantityAt(in.Location)+in.Initial)
				}
				return products, nil
			}
		}
		created = true
		return append(products, entity.Product{
			SKU:       in.SKU,
			Name:      in.Name,
			Category:  in.Category,
			UOM:       in.UOM,
			Locations: map[string]int{in.Location: in.Initial},
			CreatedAt: time.Now(),
		}), nil
	})
	if err != nil {
		return false, err
	}
	if created && in.Initial > 0 {
		details := fmt.Sprintf("Initial stock %d @ %s for %s", in.Initial, in.Location, in.SKU)
		if err := uc.appendOp(entity.OpReceipt, details, actor, nil); err != nil {
			return created, err
		}
	}
	return created, nil
}

// SearchProducts filtra por substring case-insensitive sobre nombre o SKU.
// Query vacía devuelve el catálogo completo en orden de inserción.
func (uc *InventoryUseCase) SearchProducts(q string) ([]dto.ProductDTO, error) {
	products, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	q = strings.ToLower(strings.TrimSpace(q))
	out := make([]dto.ProductDTO, 0, len(products))
	for _, p := range products {
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.SKU), q) {
			continue
		}
		out = append(out, toProductDTO(p))
	}
	return out, nil
}

// CreateReceipt suma las cantidades de cada línea en la ubicación. Las líneas
// se validan todas antes de aplicar nada y la mutación se persiste con un
// único save: la recepción es todo-o-nada.
func (uc *InventoryUseCase) CreateReceipt(actor string, in dto.CreateReceiptRequest) error {
	if err := validateLines(in.Lines); err != nil {
		return err
	}
	if in.Location == "" {
		in.Location = defaultLocation
	}
	err := uc.products.Mutate(func(products []entity.Product) ([]entity.Product, error) {
		for _, ln := range in.Lines {
			products = applyDelta(products, ln.SKU, in.Location, ln.Qty, false)
		}
		return products, nil
	})
	if err != nil {
		return err
	}
	details := fmt.Sprintf("Receipt from %s to %s lines: %d", in.Supplier, in.Location, len(in.Lines))
	return uc.appendOp(entity.OpReceipt, details, actor, toOperationLines(in.Lines))
}

// CreateDelivery descuenta las cantidades de cada línea con clamp a 0.
// Mismas garantías todo-o-nada que la recepción.
func (uc *InventoryUseCase) CreateDelivery(actor string, in dto.CreateDeliveryRequest) error {
	if err := validateLines(in.Lines); err != nil {
		return err
	}
	if in.Location == "" {
		in.Location = defaultLocation
	}
	err := uc.products.Mutate(func(products []entity.Product) ([]entity.Product, error) {
		for _, ln := range in.Lines {
			products = applyDelta(products, ln.SKU, in.Location, -ln.Qty, true)
		}
		return products, nil
	})
	if err != nil {
		return err
	}
	details := fmt.Sprintf("Delivery to %s from %s lines: %d", in.Customer, in.Location, len(in.Lines))
	return uc.appendOp(entity.OpDelivery, details, actor, toOperationLines(in.Lines))
}

// CreateTransfer mueve qty del origen al destino. El origen se recorta a 0:
// si el stock previo era menor que qty la cantidad total del SKU no se
// conserva (el faltante se destruye, comportamiento documentado).
func (uc *InventoryUseCase) CreateTransfer(actor string, in dto.CreateTransferRequest) error {
	if in.SKU == "" || in.From == "" || in.To == "" || in.Qty <= 0 {
		return domain.ErrValidation
	}
	err := uc.products.Mutate(func(products []entity.Product) ([]entity.Product, error) {
		for i := range products {
			if products[i].SKU == in.SKU {
				products[i].SetQuantity(in.From, clampZero(products[i].QuantityAt(in.From)-in.Qty))
				products[i].SetQuantity(in.To, products[i].QuantityAt(in.To)+in.Qty)
				return products, nil
			}
		}
		// SKU desconocido: placeholder con origen en 0 (clamp uniforme) y destino con qty
		return append(products, *entity.NewPlaceholder(in.SKU, map[string]int{in.From: 0, in.To: in.Qty}, time.Now())), nil
	})
	if err != nil {
		return err
	}
	details := fmt.Sprintf("Transfer %d of %s from %s to %s", in.Qty, in.SKU, in.From, in.To)
	return uc.appendOp(entity.OpTransfer, details, actor, nil)
}

// CreateAdjustment fija el stock de la ubicación al conteo físico (cualquier
// entero, incluido negativo: el conteo es autoritativo).
func (uc *InventoryUseCase) CreateAdjustment(actor string, in dto.CreateAdjustmentRequest) error {
	if in.SKU == "" {
		return domain.ErrValidation
	}
	loc := in.ResolveLocation()
	count := in.ResolveCount()
	reason := in.Reason
	if reason == "" {
		reason = "adjustment"
	}
	err := uc.products.Mutate(func(products []entity.Product) ([]entity.Product, error) {
		for i := range products {
			if products[i].SKU == in.SKU {
				products[i].SetQuantity(loc, count)
				return products, nil
			}
		}
		return append(products, *entity.NewPlaceholder(in.SKU, map[string]int{loc: count}, time.Now())), nil
	})
	if err != nil {
		return err
	}
	details := fmt.Sprintf("Adjustment for %s at %s to %d (reason: %s)", in.SKU, loc, count, reason)
	return uc.appendOp(entity.OpAdjustment, details, actor, nil)
}

// appendOp registra una entrada del ledger. El append no es atómico con la
// escritura del catálogo: el orden total del ledger es el orden de append.
func (uc *InventoryUseCase) appendOp(opType, details, actor string, lines []entity.OperationLine) error {
	return uc.ops.Append(&entity.Operation{
		ID:        uuid.New().String(),
		Type:      opType,
		Details:   details,
		By:        actor,
		CreatedAt: time.Now(),
		Lines:     lines,
	})
}

// applyDelta aplica delta al stock del SKU en location; crea el placeholder
// si el SKU no existe. Con clamp el resultado nunca baja de 0.
func applyDelta(products []entity.Product, sku, location string, delta int, clamp bool) []entity.Product {
	for i := range products {
		if products[i].SKU == sku {
			q := products[i].QuantityAt(location) + delta
			if clamp {
				q = clampZero(q)
			}
			products[i].SetQuantity(location, q)
			return products
		}
	}
	q := delta
	if clamp {
		q = clampZero(q)
	}
	return append(products, *entity.NewPlaceholder(sku, map[string]int{location: q}, time.Now()))
}

func validateLines(lines []dto.LineDTO) error {
	if len(lines) == 0 {
		return domain.ErrValidation
	}
	for _, ln := range lines {
		if ln.SKU == "" || ln.Qty <= 0 {
			return domain.ErrValidation
		}
	}
	return nil
}

func clampZero(q int) int {
	if q < 0 {
		return 0
	}
	return q
}

func toOperationLines(lines []dto.LineDTO) []entity.OperationLine {
	out := make([]entity.OperationLine, 0, len(lines))
	for _, ln := range lines {
		out = append(out, entity.OperationLine{SKU: ln.SKU, Qty: ln.Qty})
	}
	return out
}

func toProductDTO(p entity.Product) dto.ProductDTO {
	return dto.ProductDTO{
		SKU:       p.SKU,
		Name:      p.Name,
		Category:  p.Category,
		UOM:       p.UOM,
		Locations: p.Locations,
		CreatedAt: p.CreatedAt,
	}
}

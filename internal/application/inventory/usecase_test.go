package inventory_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-lite/internal/application/dto"
	"github.com/jhoicas/inventario-lite/internal/application/inventory"
	"github.com/jhoicas/inventario-lite/internal/domain"
	"github.com/jhoicas/inventario-lite/internal/domain/entity"
	"github.com/jhoicas/inventario-lite/internal/infrastructure/jsonstore"
)

const actor = "ana@example.com"

func newTestInventory(t *testing.T) (*inventory.InventoryUseCase, *jsonstore.ProductRepo, *jsonstore.OperationRepo) {
	t.Helper()
	dir := t.TempDir()
	products, err := jsonstore.NewProductRepository(dir, zerolog.Nop())
	require.NoError(t, err)
	ops, err := jsonstore.NewOperationRepository(dir, zerolog.Nop())
	require.NoError(t, err)
	return inventory.NewInventoryUseCase(products, ops), products, ops
}

func mustQuantity(t *testing.T, repo *jsonstore.ProductRepo, sku, location string) int {
	t.Helper()
	p, err := repo.FindBySKU(sku)
	require.NoError(t, err)
	require.NotNil(t, p, "el SKU %s debe existir", sku)
	return p.QuantityAt(location)
}

// ── Upsert de productos ──────────────────────────────────────────────────────

// SKU nuevo con initial > 0: crea el producto y deja una recepción en el ledger.
func TestUpsertProduct_Nuevo_CreaYRegistraRecepcion(t *testing.T) {
	uc, products, ops := newTestInventory(t)

	created, err := uc.UpsertProduct(actor, dto.CreateProductRequest{
		Name: "Tornillo", SKU: "A1", Category: "Ferretería", UOM: "pcs",
		Initial: 10, Location: "WH1",
	})
	require.NoError(t, err)
	assert.True(t, created)

	p, err := products.FindBySKU("A1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, map[string]int{"WH1": 10}, p.Locations)

	entradas, err := ops.List()
	require.NoError(t, err)
	require.Len(t, entradas, 1)
	assert.Equal(t, entity.OpReceipt, entradas[0].Type)
	assert.Equal(t, actor, entradas[0].By)
	assert.Contains(t, entradas[0].Details, "Initial stock 10 @ WH1 for A1")
}

// SKU nuevo con initial = 0: crea el producto sin entrada de ledger.
func TestUpsertProduct_InicialCero_SinRecepcion(t *testing.T) {
	uc, products, ops := newTestInventory(t)

	created, err := uc.UpsertProduct(actor, dto.CreateProductRequest{
		Name: "Tuerca", SKU: "B2", Location: "WH1",
	})
	require.NoError(t, err)
	assert.True(t, created)

	assert.Equal(t, 0, mustQuantity(t, products, "B2", "WH1"))

	entradas, err := ops.List()
	require.NoError(t, err)
	assert.Empty(t, entradas, "initial = 0 no registra recepción")
}

// SKU existente: actualiza campos descriptivos y suma (no sobreescribe) solo si initial > 0.
func TestUpsertProduct_Existente_ActualizaYSuma(t *testing.T) {
	uc, products, _ := newTestInventory(t)
	_, err := uc.UpsertProduct(actor, dto.CreateProductRequest{
		Name: "Tornillo", SKU: "A1", Initial: 10, Location: "WH1",
	})
	require.NoError(t, err)

	created, err := uc.UpsertProduct(actor, dto.CreateProductRequest{
		Name: "Tornillo M4", SKU: "A1", Category: "Fijaciones", UOM: "caja",
		Initial: 5, Location: "WH1",
	})
	require.NoError(t, err)
	assert.False(t, created)

	p, err := products.FindBySKU("A1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Tornillo M4", p.Name)
	assert.Equal(t, "Fijaciones", p.Category)
	assert.Equal(t, "caja", p.UOM)
	assert.Equal(t, 15, p.QuantityAt("WH1"), "initial se suma, no sobreescribe")

	// initial = 0 no toca cantidades
	_, err = uc.UpsertProduct(actor, dto.CreateProductRequest{Name: "Tornillo M4", SKU: "A1"})
	require.NoError(t, err)
	assert.Equal(t, 15, mustQuantity(t, products, "A1", "WH1"))
}

func TestUpsertProduct_SinNombreOSKU_Falla(t *testing.T) {
	uc, _, _ := newTestInventory(t)

	_, err := uc.UpsertProduct(actor, dto.CreateProductRequest{SKU: "A1"})
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = uc.UpsertProduct(actor, dto.CreateProductRequest{Name: "Tornillo"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ── Búsqueda ─────────────────────────────────────────────────────────────────

func TestSearchProducts_SubstringCaseInsensitive(t *testing.T) {
	uc, _, _ := newTestInventory(t)
	for _, in := range []dto.CreateProductRequest{
		{Name: "Tornillo", SKU: "A1"},
		{Name: "Tuerca", SKU: "B2"},
		{Name: "arandela A1 especial", SKU: "C3"},
	} {
		_, err := uc.UpsertProduct(actor, in)
		require.NoError(t, err)
	}

	// match por SKU, sin distinguir mayúsculas
	res, err := uc.SearchProducts("a1")
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "A1", res[0].SKU)
	assert.Equal(t, "C3", res[1].SKU, "también matchea por nombre y conserva el orden de inserción")

	// query vacía devuelve el catálogo completo
	res, err = uc.SearchProducts("")
	require.NoError(t, err)
	assert.Len(t, res, 3)

	// sin coincidencias
	res, err = uc.SearchProducts("zzz")
	require.NoError(t, err)
	assert.Empty(t, res)
}

// ── Recepciones ──────────────────────────────────────────────────────────────

// Toda recepción de q en L suma q al stock previo y deja una entrada receipt.
func TestCreateReceipt_SumaYRegistra(t *testing.T) {
	uc, products, ops := newTestInventory(t)
	_, err := uc.UpsertProduct(actor, dto.CreateProductRequest{
		Name: "Tornillo", SKU: "A1", Initial: 3, Location: "WH1",
	})
	require.NoError(t, err)

	err = uc.CreateReceipt(actor, dto.CreateReceiptRequest{
		Supplier: "ACME", Location: "WH1",
		Lines: []dto.LineDTO{{SKU: "A1", Qty: 7}, {SKU: "B2", Qty: 4}},
	})
	require.NoError(t, err)

	assert.Equal(t, 10, mustQuantity(t, products, "A1", "WH1"))
	// SKU desconocido: placeholder Uncategorized con el nombre igual al SKU
	p, err := products.FindBySKU("B2")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, entity.CategoryUncategorized, p.Category)
	assert.Equal(t, "B2", p.Name)
	assert.Equal(t, 4, p.QuantityAt("WH1"))

	entradas, err := ops.List()
	require.NoError(t, err)
	require.Len(t, entradas, 2) // recepción inicial + esta
	ultima := entradas[len(entradas)-1]
	assert.Equal(t, entity.OpReceipt, ultima.Type)
	assert.Contains(t, ultima.Details, "Receipt from ACME to WH1 lines: 2")
	assert.Equal(t, []entity.OperationLine{{SKU: "A1", Qty: 7}, {SKU: "B2", Qty: 4}}, ultima.Lines)
}

// Las líneas se validan antes de aplicar nada: una línea mala no aplica las buenas.
func TestCreateReceipt_LineaInvalida_TodoONada(t *testing.T) {
	uc, products, ops := newTestInventory(t)
	_, err := uc.UpsertProduct(actor, dto.CreateProductRequest{
		Name: "Tornillo", SKU: "A1", Initial: 3, Location: "WH1",
	})
	require.NoError(t, err)

	err = uc.CreateReceipt(actor, dto.CreateReceiptRequest{
		Supplier: "ACME", Location: "WH1",
		Lines: []dto.LineDTO{{SKU: "A1", Qty: 7}, {SKU: "", Qty: 4}},
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	assert.Equal(t, 3, mustQuantity(t, products, "A1", "WH1"), "nada se aplica si una línea es inválida")
	entradas, err := ops.List()
	require.NoError(t, err)
	assert.Len(t, entradas, 1, "no se agrega entrada al ledger")
}

func TestCreateReceipt_SinLineas_Falla(t *testing.T) {
	uc, _, _ := newTestInventory(t)
	err := uc.CreateReceipt(actor, dto.CreateReceiptRequest{Supplier: "ACME"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ── Entregas ─────────────────────────────────────────────────────────────────

// Toda entrega de q en L deja max(0, previo - q).
func TestCreateDelivery_DescuentaConClamp(t *testing.T) {
	uc, products, ops := newTestInventory(t)
	_, err := uc.UpsertProduct(actor, dto.CreateProductRequest{
		Name: "Tornillo", SKU: "A1", Initial: 10, Location: "WH1",
	})
	require.NoError(t, err)

	err = uc.CreateDelivery(actor, dto.CreateDeliveryRequest{
		Customer: "Cliente", Location: "WH1",
		Lines: []dto.LineDTO{{SKU: "A1", Qty: 4}},
	})
	require.NoError(t, err)
	assert.Equal(t, 6, mustQuantity(t, products, "A1", "WH1"))

	// sobre-entrega: queda en 0, nunca negativo
	err = uc.CreateDelivery(actor, dto.CreateDeliveryRequest{
		Customer: "Cliente", Location: "WH1",
		Lines: []dto.LineDTO{{SKU: "A1", Qty: 100}},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, mustQuantity(t, products, "A1", "WH1"))

	entradas, err := ops.List()
	require.NoError(t, err)
	ultima := entradas[len(entradas)-1]
	assert.Equal(t, entity.OpDelivery, ultima.Type)
	assert.Contains(t, ultima.Details, "Delivery to Cliente from WH1 lines: 1")
}

// Entrega contra SKU desconocido: placeholder con clamp uniforme (queda en 0).
func TestCreateDelivery_SKUDesconocido_PlaceholderEnCero(t *testing.T) {
	uc, products, _ := newTestInventory(t)

	err := uc.CreateDelivery(actor, dto.CreateDeliveryRequest{
		Customer: "Cliente", Location: "WH1",
		Lines: []dto.LineDTO{{SKU: "X9", Qty: 5}},
	})
	require.NoError(t, err)

	p, err := products.FindBySKU("X9")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, entity.CategoryUncategorized, p.Category)
	assert.Equal(t, 0, p.QuantityAt("WH1"), "la política de clamp es uniforme: el placeholder no queda negativo")
}

// Escenario completo: crear A1 con initial=10 en WH1 y entregar 15.
func TestEscenario_CrearYSobreEntregar(t *testing.T) {
	uc, products, ops := newTestInventory(t)

	created, err := uc.UpsertProduct(actor, dto.CreateProductRequest{
		Name: "Tornillo", SKU: "A1", Initial: 10, Location: "WH1",
	})
	require.NoError(t, err)
	require.True(t, created)

	catalogo, err := products.List()
	require.NoError(t, err)
	require.Len(t, catalogo, 1)
	assert.Equal(t, map[string]int{"WH1": 10}, catalogo[0].Locations)

	entradas, err := ops.List()
	require.NoError(t, err)
	require.Len(t, entradas, 1)
	assert.Equal(t, entity.OpReceipt, entradas[0].Type)

	err = uc.CreateDelivery(actor, dto.CreateDeliveryRequest{
		Customer: "Cliente", Location: "WH1",
		Lines: []dto.LineDTO{{SKU: "A1", Qty: 15}},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, mustQuantity(t, products, "A1", "WH1"), "la sobre-entrega queda en 0, no en -5")
	entradas, err = ops.List()
	require.NoError(t, err)
	require.Len(t, entradas, 2)
	assert.Equal(t, entity.OpDelivery, entradas[1].Type)
}

// ── Transferencias ───────────────────────────────────────────────────────────

// Con stock suficiente en el origen la cantidad total del SKU se conserva.
func TestCreateTransfer_ConStockSuficiente_Conserva(t *testing.T) {
	uc, products, ops := newTestInventory(t)
	_, err := uc.UpsertProduct(actor, dto.CreateProductRequest{
		Name: "Tornillo", SKU: "A1", Initial: 10, Location: "WH1",
	})
	require.NoError(t, err)

	err = uc.CreateTransfer(actor, dto.CreateTransferRequest{SKU: "A1", From: "WH1", To: "WH2", Qty: 4})
	require.NoError(t, err)

	p, err := products.FindBySKU("A1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 6, p.QuantityAt("WH1"))
	assert.Equal(t, 4, p.QuantityAt("WH2"))
	assert.Equal(t, 10, p.TotalQuantity())

	entradas, err := ops.List()
	require.NoError(t, err)
	ultima := entradas[len(entradas)-1]
	assert.Equal(t, entity.OpTransfer, ultima.Type)
	assert.Contains(t, ultima.Details, "Transfer 4 of A1 from WH1 to WH2")
}

// Con stock insuficiente el origen se recorta a 0 y se destruye cantidad
// (comportamiento documentado, no un bug).
func TestCreateTransfer_StockInsuficiente_DestruyeCantidad(t *testing.T) {
	uc, products, _ := newTestInventory(t)
	_, err := uc.UpsertProduct(actor, dto.CreateProductRequest{
		Name: "Tornillo", SKU: "A1", Initial: 3, Location: "WH1",
	})
	require.NoError(t, err)

	err = uc.CreateTransfer(actor, dto.CreateTransferRequest{SKU: "A1", From: "WH1", To: "WH2", Qty: 5})
	require.NoError(t, err)

	p, err := products.FindBySKU("A1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 0, p.QuantityAt("WH1"))
	assert.Equal(t, 5, p.QuantityAt("WH2"))
	assert.Equal(t, 5, p.TotalQuantity(), "3 previos + 5 recibidos - 3 destruidos por el clamp")
}

func TestCreateTransfer_SKUDesconocido_Placeholder(t *testing.T) {
	uc, products, _ := newTestInventory(t)

	err := uc.CreateTransfer(actor, dto.CreateTransferRequest{SKU: "X9", From: "WH1", To: "WH2", Qty: 5})
	require.NoError(t, err)

	p, err := products.FindBySKU("X9")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 0, p.QuantityAt("WH1"), "clamp uniforme también en el placeholder")
	assert.Equal(t, 5, p.QuantityAt("WH2"))
}

func TestCreateTransfer_CamposFaltantes_Falla(t *testing.T) {
	uc, _, _ := newTestInventory(t)

	casos := []dto.CreateTransferRequest{
		{From: "WH1", To: "WH2", Qty: 5},
		{SKU: "A1", To: "WH2", Qty: 5},
		{SKU: "A1", From: "WH1", Qty: 5},
		{SKU: "A1", From: "WH1", To: "WH2"},
		{SKU: "A1", From: "WH1", To: "WH2", Qty: -2},
	}
	for _, in := range casos {
		assert.ErrorIs(t, uc.CreateTransfer(actor, in), domain.ErrValidation)
	}
}

// ── Ajustes ──────────────────────────────────────────────────────────────────

// El ajuste fija la ubicación al conteo físico, sin importar el valor previo.
func TestCreateAdjustment_FijaConteo(t *testing.T) {
	uc, products, ops := newTestInventory(t)
	_, err := uc.UpsertProduct(actor, dto.CreateProductRequest{
		Name: "Tornillo", SKU: "A1", Initial: 10, Location: "WH1",
	})
	require.NoError(t, err)

	conteo := 3
	err = uc.CreateAdjustment(actor, dto.CreateAdjustmentRequest{
		SKU: "A1", Loc: "WH1", Count: &conteo, Reason: "conteo físico",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, mustQuantity(t, products, "A1", "WH1"))

	entradas, err := ops.List()
	require.NoError(t, err)
	ultima := entradas[len(entradas)-1]
	assert.Equal(t, entity.OpAdjustment, ultima.Type)
	assert.Contains(t, ultima.Details, "Adjustment for A1 at WH1 to 3 (reason: conteo físico)")
}

// El cliente histórico manda location/counted en vez de loc/count; se aceptan.
func TestCreateAdjustment_AliasDeCampos(t *testing.T) {
	uc, products, _ := newTestInventory(t)

	conteo := 7
	err := uc.CreateAdjustment(actor, dto.CreateAdjustmentRequest{
		SKU: "A1", Location: "WH2", Counted: &conteo,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, mustQuantity(t, products, "A1", "WH2"))
}

func TestCreateAdjustment_Defaults(t *testing.T) {
	uc, products, ops := newTestInventory(t)

	// sin loc ni count: ubicación Default, conteo 0, razón "adjustment"
	err := uc.CreateAdjustment(actor, dto.CreateAdjustmentRequest{SKU: "A1"})
	require.NoError(t, err)
	assert.Equal(t, 0, mustQuantity(t, products, "A1", "Default"))

	entradas, err := ops.List()
	require.NoError(t, err)
	assert.Contains(t, entradas[len(entradas)-1].Details, "(reason: adjustment)")
}

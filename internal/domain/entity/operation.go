package entity

import "time"

// Tipos de operación registrables en el ledger.
const (
	OpReceipt    = "receipt"
	OpDelivery   = "delivery"
	OpTransfer   = "transfer"
	OpAdjustment = "adjustment"
)

// OperationLine una línea {sku, qty} de una recepción o entrega.
type OperationLine struct {
	SKU string `json:"sku"`
	Qty int    `json:"qty"`
}

// Operation es una entrada inmutable del ledger de inventario.
// El orden total es el orden de append en la colección.
type Operation struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"` // receipt, delivery, transfer, adjustment
	Details   string          `json:"details"`
	By        string          `json:"by"` // email del usuario que ejecutó la operación
	CreatedAt time.Time       `json:"time"`
	Lines     []OperationLine `json:"meta,omitempty"`
}

package dto

// LineDTO una línea {sku, qty} de recepción o entrega.
type LineDTO struct {
	SKU string `json:"sku"`
	Qty int    `json:"qty"`
}

// CreateReceiptRequest payload de la acción create_receipt.
type CreateReceiptRequest struct {
	Supplier string    `json:"supplier"`
	Location string    `json:"location"`
	Lines    []LineDTO `json:"lines"`
}

// CreateDeliveryRequest payload de la acción create_delivery.
type CreateDeliveryRequest struct {
	Customer string    `json:"customer"`
	Location string    `json:"location"`
	Lines    []LineDTO `json:"lines"`
}

// CreateTransferRequest payload de la acción create_transfer.
type CreateTransferRequest struct {
	SKU  string `json:"sku"`
	From string `json:"from"`
	To   string `json:"to"`
	Qty  int    `json:"qty"`
}

// CreateAdjustmentRequest payload de la acción create_adjustment.
// El cliente histórico manda loc o location y count o counted; se aceptan ambos.
type CreateAdjustmentRequest struct {
	SKU      string `json:"sku"`
	Loc      string `json:"loc"`
	Location string `json:"location"`
	Count    *int   `json:"count"`
	Counted  *int   `json:"counted"`
	Reason   string `json:"reason"`
}

// ResolveLocation devuelve loc, o location, o "Default".
func (r CreateAdjustmentRequest) ResolveLocation() string {
	if r.Loc != "" {
		return r.Loc
	}
	if r.Location != "" {
		return r.Location
	}
	return "Default"
}

// ResolveCount devuelve count, o counted, o 0.
func (r CreateAdjustmentRequest) ResolveCount() int {
	if r.Count != nil {
		return *r.Count
	}
	if r.Counted != nil {
		return *r.Counted
	}
	return 0
}

package dto

import "time"

// DashboardSummary KPIs del dashboard. Los contadores "pending" son en
// realidad volumen reciente (operaciones de las últimas 24 h); las claves
// JSON conservan los nombres históricos por compatibilidad con el cliente.
type DashboardSummary struct {
	TotalProducts    int `json:"total_products"`
	LowStock         int `json:"low_stock"`
	RecentReceipts   int `json:"pending_receipts"`
	RecentDeliveries int `json:"pending_deliveries"`
}

// DashboardResponse respuesta de get_dashboard (contadores planos junto a success/message).
type DashboardResponse struct {
	Result
	DashboardSummary
}

// OperationDTO una entrada del ledger en respuestas de historial.
type OperationDTO struct {
	ID      string    `json:"id"`
	Type    string    `json:"type"`
	Details string    `json:"details"`
	By      string    `json:"by"`
	Time    time.Time `json:"time"`
	Meta    []LineDTO `json:"meta,omitempty"`
}

// HistoryResponse respuesta de get_history.
type HistoryResponse struct {
	Result
	Data []OperationDTO `json:"data"`
}

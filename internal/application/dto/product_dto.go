package dto

import "time"

// CreateProductRequest payload de la acción create_product (upsert por SKU).
type CreateProductRequest struct {
	Name     string `json:"name"`
	SKU      string `json:"sku"`
	Category string `json:"category"`
	UOM      string `json:"uom"`
	Initial  int    `json:"initial"`
	Location string `json:"location"`
}

// ListProductsRequest payload de la acción list_products.
type ListProductsRequest struct {
	Q string `json:"q"`
}

// ProductDTO representación de un producto en respuestas.
type ProductDTO struct {
	SKU       string         `json:"sku"`
	Name      string         `json:"name"`
	Category  string         `json:"category"`
	UOM       string         `json:"uom"`
	Locations map[string]int `json:"locations"`
	CreatedAt time.Time      `json:"created"`
}

// ProductListResponse respuesta de list_products.
type ProductListResponse struct {
	Result
	Data []ProductDTO `json:"data"`
}

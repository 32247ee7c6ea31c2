package dto

import "github.com/shopspring/decimal"

// CreateMaterialRequest body para POST /api/materials.
type CreateMaterialRequest struct {
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Spec      string          `json:"spec,omitempty"`
	Category  string          `json:"category,omitempty"`
	Unit      string          `json:"unit,omitempty"`
	SafeStock decimal.Decimal `json:"safeStock,omitempty"`
	Desc      string          `json:"desc,omitempty"`
}

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Spec        string `json:"spec,omitempty"`
	Type        string `json:"type,omitempty"`
	ProcessCode string `json:"processCode,omitempty"`
	CrimpCode   string `json:"crimpCode,omitempty"`
	Description string `json:"description,omitempty"`
}

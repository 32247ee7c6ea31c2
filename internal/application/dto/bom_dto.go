package dto

import "github.com/shopspring/decimal"

// CreateBOMItemRequest body para POST /api/bom.
type CreateBOMItemRequest struct {
	ProductCode  string          `json:"productCode"`
	ProductName  string          `json:"productName,omitempty"`
	MaterialCode string          `json:"materialCode"`
	MaterialName string          `json:"materialName,omitempty"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit,omitempty"`
	ProcessCode  string          `json:"processCode"`
	CrimpCode    string          `json:"crimpCode,omitempty"`
}

// ImportBOMRequest body para POST /api/bom/import: filas crudas de una hoja
// de cálculo, tal como las emite el cliente.
type ImportBOMRequest struct {
	Rows []ImportBOMRow `json:"rows"`
}

// ImportBOMRow una fila cruda de la hoja. Todos los campos llegan como
// texto; la normalización ocurre en el importador.
type ImportBOMRow struct {
	ProductCode string `json:"productCode"`
	ProductName string `json:"productName"`
	ItemCode    string `json:"itemCode"`
	ItemName    string `json:"itemName"`
	Quantity    string `json:"quantity"`
	Unit        string `json:"unit"`
	ProcessCode string `json:"processCode"`
	CrimpCode   string `json:"crimpCode"`
}

// ImportBOMResponse resumen de la importación.
type ImportBOMResponse struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

package entity

import "github.com/shopspring/decimal"

// BOMItem es una fila de la lista de materiales aplanada de un producto.
// Level se deriva del processCode (bom.DetermineLevel) al insertar; CrimpCode
// solo tiene sentido cuando el proceso rector es el de corte y crimpado
// automático (CA).
type BOMItem struct {
	ID           int             `json:"id"`
	ProductCode  string          `json:"productCode"`
	ProductName  string          `json:"productName,omitempty"`
	MaterialCode string          `json:"materialCode"`
	MaterialName string          `json:"materialName"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
	ProcessCode  string          `json:"processCode"`
	Level        int             `json:"level"`
	CrimpCode    string          `json:"crimpCode,omitempty"`
	RegDate      string          `json:"regDate"`
}

// BOMGroup, LevelGroup y CrimpGroup son vistas transitorias del árbol
// producto → nivel → grupo de crimpado; se recomputan cuando cambia la
// colección BOM y nunca se persisten.
type BOMGroup struct {
	ProductCode string       `json:"productCode"`
	ProductName string       `json:"productName,omitempty"`
	LevelGroups []LevelGroup `json:"levelGroups"`
	TotalItems  int          `json:"totalItems"`
}

// LevelGroup agrupa los materiales de un producto en un nivel BOM (1..4).
// CrimpGroups solo se emite para el nivel 4.
type LevelGroup struct {
	Level       int          `json:"level"`
	ProcessCode string       `json:"processCode"`
	ProcessName string       `json:"processName"`
	Items       []BOMItem    `json:"items"`
	CrimpGroups []CrimpGroup `json:"crimpGroups,omitempty"`
}

// CrimpGroup agrupa los materiales de nivel 4 por código de crimpado.
type CrimpGroup struct {
	CrimpCode string    `json:"crimpCode"`
	Items     []BOMItem `json:"items"`
}

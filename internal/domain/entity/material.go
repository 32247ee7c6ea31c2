package entity

import "github.com/shopspring/decimal"

// Material es un registro maestro de materia prima. El ledger de stock no
// valida su existencia; las colecciones maestras son independientes entre sí.
type Material struct {
	ID        int             `json:"id"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Spec      string          `json:"spec,omitempty"`
	Category  string          `json:"category,omitempty"`
	Unit      string          `json:"unit"`
	SafeStock decimal.Decimal `json:"safeStock"`
	Desc      string          `json:"desc,omitempty"`
	RegDate   string          `json:"regDate"`
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockLot representa una recepción de material en un proceso productivo,
// identificada por (processCode, lotNumber). Las recepciones repetidas del
// mismo LOT en el mismo proceso se acumulan sobre el mismo registro.
//
// ProcessCode vacío identifica registros legados creados por la ruta de
// recepción sin proceso; conviven en la misma colección pero son registros
// independientes de los LOTs con proceso, incluso con el mismo lotNumber.
type StockLot struct {
	ID           string          `json:"id"`
	ProcessCode  string          `json:"processCode,omitempty"`
	MaterialID   int             `json:"materialId"`
	MaterialCode string          `json:"materialCode"`
	MaterialName string          `json:"materialName,omitempty"`
	LotNumber    string          `json:"lotNumber"`    // único por processCode, comparación exacta
	Quantity     decimal.Decimal `json:"quantity"`     // total recibido acumulado, nunca decrece
	UsedQty      decimal.Decimal `json:"usedQty"`      // total consumido acumulado, nunca decrece
	AvailableQty decimal.Decimal `json:"availableQty"` // derivado: Quantity - UsedQty, recalculado en cada mutación
	ReceivedAt   time.Time       `json:"receivedAt"`   // clave de ordenación FIFO
}

// Recompute recalcula la cantidad disponible a partir de los acumulados.
// Debe invocarse tras toda mutación de Quantity o UsedQty.
func (s *StockLot) Recompute() {
	s.AvailableQty = s.Quantity.Sub(s.UsedQty)
}

// IsExhausted indica si el LOT fue consumido por completo. Un LOT registrado
// con cantidad 0 y nunca usado NO está agotado: se exige UsedQty > 0.
func (s *StockLot) IsExhausted() bool {
	return s.AvailableQty.IsZero() && s.UsedQty.IsPositive()
}

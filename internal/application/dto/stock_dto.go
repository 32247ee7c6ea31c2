package dto

import (
	"github.com/shopspring/decimal"

	"github.com/ksyee/vietnam-mes-simple/internal/application/stock"
	"github.com/ksyee/vietnam-mes-simple/internal/domain/entity"
)

// RegisterStockRequest body para POST /api/stocks/process. Los campos
// siguen los nombres que emite el escáner de planta.
type RegisterStockRequest struct {
	ProcessCode  string          `json:"processCode"`
	MaterialID   int             `json:"materialId,omitempty"`
	MaterialCode string          `json:"materialCode"`
	MaterialName string          `json:"materialName,omitempty"`
	LotNumber    string          `json:"lotNumber"`
	Quantity     decimal.Decimal `json:"quantity"`
}

// RegisterStockResponse respuesta del registro de un escaneo.
type RegisterStockResponse struct {
	IsNewEntry bool            `json:"isNewEntry"`
	Stock      entity.StockLot `json:"stock"`
	Message    string          `json:"message"`
}

// ConsumeStockRequest body para POST /api/stocks/process/consume.
type ConsumeStockRequest struct {
	ProcessCode string          `json:"processCode"`
	MaterialID  int             `json:"materialId"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// ConsumeStockResponse auditoría del consumo FIFO.
type ConsumeStockResponse struct {
	DeductedQty decimal.Decimal  `json:"deductedQty"`
	Lots        []stock.LotUsage `json:"lots"`
}

// StockStatusResponse estado de un LOT ante un nuevo escaneo.
type StockStatusResponse struct {
	Exists       bool            `json:"exists"`
	AvailableQty decimal.Decimal `json:"availableQty"`
	UsedQty      decimal.Decimal `json:"usedQty"`
	IsExhausted  bool            `json:"isExhausted"`
	CanRegister  bool            `json:"canRegister"`
	Message      string          `json:"message,omitempty"`
}

// AvailableQtyResponse disponible agregado de un material en un proceso.
type AvailableQtyResponse struct {
	ProcessCode  string          `json:"processCode"`
	MaterialID   int             `json:"materialId"`
	AvailableQty decimal.Decimal `json:"availableQty"`
}

func ToConsumeStockResponse(res *stock.ConsumeResult) *ConsumeStockResponse {
	if res == nil {
		return nil
	}
	return &ConsumeStockResponse{DeductedQty: res.DeductedQty, Lots: res.Lots}
}

func ToStockStatusResponse(res *stock.StatusResult) *StockStatusResponse {
	if res == nil {
		return nil
	}
	out := &StockStatusResponse{
		Exists:       res.Exists,
		AvailableQty: res.AvailableQty,
		UsedQty:      res.UsedQty,
		IsExhausted:  res.IsExhausted,
		CanRegister:  res.CanRegister,
	}
	if res.IsExhausted {
		out.Message = MsgLotExhausted
	}
	return out
}

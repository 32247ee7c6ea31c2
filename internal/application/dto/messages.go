package dto

import (
	"errors"

	"github.com/ksyee/vietnam-mes-simple/internal/domain"
)

// Mensajes para los operadores de planta (terminal en coreano).
const (
	MsgLotExhausted    = "이미 사용이 완료된 바코드입니다."
	MsgProcessRequired = "공정 코드를 입력해주세요."
	MsgLotRequired     = "LOT 번호를 입력해주세요."
	MsgInvalidQuantity = "수량은 0 이상이어야 합니다."
	MsgStockRegistered = "자재가 등록되었습니다."
	MsgStockMerged     = "기존 LOT에 수량이 추가되었습니다."
)

// OperatorMessage traduce un error de dominio al texto que ve el operador.
// Errores fuera del catálogo devuelven el mensaje del propio error.
func OperatorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrLotExhausted):
		return MsgLotExhausted
	case errors.Is(err, domain.ErrProcessRequired):
		return MsgProcessRequired
	case errors.Is(err, domain.ErrLotRequired):
		return MsgLotRequired
	case errors.Is(err, domain.ErrInvalidQuantity):
		return MsgInvalidQuantity
	default:
		return err.Error()
	}
}

package domain

import "errors"

// Errores de dominio (sin dependencias externas). La capa HTTP traduce estos
// valores a mensajes para el operador; la lógica de negocio compara siempre
// con errors.Is, nunca con el texto del mensaje.
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrProcessRequired = errors.New("código de proceso requerido")
	ErrLotRequired     = errors.New("número de LOT requerido")
	ErrInvalidQuantity = errors.New("cantidad inválida")
	ErrLotExhausted    = errors.New("el LOT ya fue consumido por completo")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrStorage         = errors.New("fallo del almacenamiento")
)

package dto

// ErrorResponse cuerpo de error HTTP. Message lleva el texto para el
// operador de planta (en coreano cuando aplica); Code es estable para los
// clientes programáticos.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CountResponse respuesta genérica para operaciones en lote.
type CountResponse struct {
	Count int `json:"count"`
}

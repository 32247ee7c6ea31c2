package entity

// Tipos de producto.
const (
	ProductTypeFinished = "FINISHED" // 완제품
	ProductTypeSemi     = "SEMI"     // 반제품
)

// Product es un registro maestro de producto (completo o semielaborado).
type Product struct {
	ID          int    `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Spec        string `json:"spec,omitempty"`
	Type        string `json:"type"`
	ProcessCode string `json:"processCode,omitempty"`
	CrimpCode   string `json:"crimpCode,omitempty"`
	Description string `json:"description,omitempty"`
	RegDate     string `json:"regDate"`
}

// Line es una línea de producción asociada a un proceso (dato maestro fijo).
type Line struct {
	ID          int    `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	ProcessCode string `json:"processCode"`
	IsActive    bool   `json:"isActive"`
}

package masterdata

import (
	"context"
	"strings"

	"github.com/ksyee/vietnam-mes-simple/internal/domain/entity"
)

// defaultLines es el dato maestro fijo de líneas por proceso de la planta.
var defaultLines = []entity.Line{
	// CA - 자동절단압착
	{ID: 1, Code: "CA-01", Name: "CA 1호기", ProcessCode: "CA", IsActive: true},
	{ID: 2, Code: "CA-02", Name: "CA 2호기", ProcessCode: "CA", IsActive: true},
	{ID: 3, Code: "CA-03", Name: "CA 3호기", ProcessCode: "CA", IsActive: true},
	// MC - 수동압착
	{ID: 4, Code: "MC-01", Name: "MC 1호기", ProcessCode: "MC", IsActive: true},
	{ID: 5, Code: "MC-02", Name: "MC 2호기", ProcessCode: "MC", IsActive: true},
	// MS - 중간탈피
	{ID: 6, Code: "MS-01", Name: "MS 1호기", ProcessCode: "MS", IsActive: true},
	// SB - 서브조립
	{ID: 7, Code: "SB-01", Name: "SB 1호기", ProcessCode: "SB", IsActive: true},
	{ID: 8, Code: "SB-02", Name: "SB 2호기", ProcessCode: "SB", IsActive: true},
	// PA - 제품조립
	{ID: 9, Code: "PA-01", Name: "PA 1호기", ProcessCode: "PA", IsActive: true},
	{ID: 10, Code: "PA-02", Name: "PA 2호기", ProcessCode: "PA", IsActive: true},
	{ID: 11, Code: "PA-03", Name: "PA 3호기", ProcessCode: "PA", IsActive: true},
	// CI - 회로검사
	{ID: 12, Code: "CI-01", Name: "CI 1호기", ProcessCode: "CI", IsActive: true},
	{ID: 13, Code: "CI-02", Name: "CI 2호기", ProcessCode: "CI", IsActive: true},
	// VI - 육안검사
	{ID: 14, Code: "VI-01", Name: "VI 1호기", ProcessCode: "VI", IsActive: true},
	{ID: 15, Code: "VI-02", Name: "VI 2호기", ProcessCode: "VI", IsActive: true},
	// HS - 열수축
	{ID: 16, Code: "HS-01", Name: "HS 1호기", ProcessCode: "HS", IsActive: true},
	// CQ - 압착검사
	{ID: 17, Code: "CQ-01", Name: "CQ 1호기", ProcessCode: "CQ", IsActive: true},
	// SP - 제품조립제공부품
	{ID: 18, Code: "SP-01", Name: "SP 1호기", ProcessCode: "SP", IsActive: true},
}

// Lines expone las líneas de producción de la planta (dato maestro fijo,
// de solo lectura).
type Lines struct {
	lines []entity.Line
}

// NewLines construye el catálogo con las líneas por defecto.
func NewLines() *Lines {
	return &Lines{lines: defaultLines}
}

// List devuelve todas las líneas.
func (c *Lines) List(_ context.Context) []entity.Line {
	out := make([]entity.Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// ListByProcess devuelve las líneas de un proceso, sin distinguir
// mayúsculas en el código.
func (c *Lines) ListByProcess(_ context.Context, processCode string) []entity.Line {
	code := strings.ToUpper(processCode)
	out := make([]entity.Line, 0)
	for _, line := range c.lines {
		if line.ProcessCode == code {
			out = append(out, line)
		}
	}
	return out
}

// Active devuelve solo las líneas activas.
func (c *Lines) Active(_ context.Context) []entity.Line {
	out := make([]entity.Line, 0, len(c.lines))
	for _, line := range c.lines {
		if line.IsActive {
			out = append(out, line)
		}
	}
	return out
}

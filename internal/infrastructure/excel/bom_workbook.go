// Package excel lee hojas BOM y genera libros de reporte de stock con
// excelize. No toca el dominio: entrega filas crudas y recibe datos ya
// calculados.
package excel

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/ksyee/vietnam-mes-simple/internal/application/importer"
)

// Orden de columnas esperado en la hoja BOM. La fila 1 es cabecera.
//
//	A productCode  B productName  C itemCode  D itemName
//	E quantity     F unit         G processCode  H crimpCode
const bomColumns = 8

// ReadBOMRows abre el libro y devuelve las filas de la primera hoja como
// filas crudas, sin normalizar. Filas sin código de producto ni de material
// se descartan aquí mismo; el resto de la validación es del importador.
func ReadBOMRows(r io.Reader) ([]importer.RawBOMRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("excel: no se pudo abrir el libro: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("excel: no se pudo leer la hoja %q: %w", sheet, err)
	}

	var out []importer.RawBOMRow
	if len(rows) < 2 {
		return out, nil
	}

	for _, row := range rows[1:] { // saltar cabecera
		cells := make([]string, bomColumns)
		copy(cells, row)
		if cells[0] == "" && cells[2] == "" {
			continue
		}
		out = append(out, importer.RawBOMRow{
			ProductCode: cells[0],
			ProductName: cells[1],
			ItemCode:    cells[2],
			ItemName:    cells[3],
			Quantity:    cells[4],
			Unit:        cells[5],
			ProcessCode: cells[6],
			CrimpCode:   cells[7],
		})
	}
	return out, nil
}

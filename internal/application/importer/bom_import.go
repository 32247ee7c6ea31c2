// Package importer normaliza filas crudas de hojas BOM y las vuelca en las
// colecciones de datos maestros.
package importer

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ksyee/vietnam-mes-simple/internal/application/masterdata"
	"github.com/ksyee/vietnam-mes-simple/internal/domain"
	"github.com/ksyee/vietnam-mes-simple/internal/domain/bom"
	"github.com/ksyee/vietnam-mes-simple/internal/domain/entity"
)

// RawBOMRow es una fila tal como llega de la hoja de cálculo, antes de
// cualquier normalización.
type RawBOMRow struct {
	ProductCode string
	ProductName string
	ItemCode    string
	ItemName    string
	Quantity    string
	Unit        string
	ProcessCode string
	CrimpCode   string
}

// Result resume una importación.
type Result struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// BOMImporter convierte filas crudas en registros BOM persistidos.
type BOMImporter struct {
	items *masterdata.BOMItems
}

func NewBOMImporter(items *masterdata.BOMItems) *BOMImporter {
	return &BOMImporter{items: items}
}

// Import normaliza cada fila y registra las válidas en un solo lote. Las
// filas sin código de producto o de material se saltan y quedan anotadas en
// el resultado; una hoja con filas malas no aborta la importación completa.
func (i *BOMImporter) Import(ctx context.Context, rows []RawBOMRow) (*Result, error) {
	res := &Result{}
	items := make([]entity.BOMItem, 0, len(rows))

	for idx, row := range rows {
		item, err := Normalize(row)
		if err != nil {
			res.Skipped++
			res.Errors = append(res.Errors, fmt.Sprintf("fila %d: %v", idx+1, err))
			continue
		}
		items = append(items, item)
	}

	if len(items) > 0 {
		count, err := i.items.AddMany(ctx, items)
		if err != nil {
			return nil, err
		}
		res.Imported = count
	}
	return res, nil
}

// Normalize aplica las reglas de saneamiento de una fila BOM:
// processCode en mayúsculas, cantidad 1 si falta o no parsea, unidad "EA"
// por defecto y crimpCode solo para el proceso CA.
func Normalize(row RawBOMRow) (entity.BOMItem, error) {
	productCode := strings.TrimSpace(row.ProductCode)
	itemCode := strings.TrimSpace(row.ItemCode)
	if productCode == "" || itemCode == "" {
		return entity.BOMItem{}, fmt.Errorf("%w: falta código de producto o de material", domain.ErrInvalidInput)
	}

	processCode := strings.ToUpper(strings.TrimSpace(row.ProcessCode))

	qty := decimal.NewFromInt(1)
	if raw := strings.TrimSpace(row.Quantity); raw != "" {
		if parsed, err := decimal.NewFromString(raw); err == nil && parsed.IsPositive() {
			qty = parsed
		}
	}

	unit := strings.TrimSpace(row.Unit)
	if unit == "" {
		unit = "EA"
	}

	crimpCode := ""
	if processCode == bom.ProcessAutoCrimp {
		crimpCode = strings.TrimSpace(row.CrimpCode)
	}

	return entity.BOMItem{
		ProductCode:  productCode,
		ProductName:  strings.TrimSpace(row.ProductName),
		MaterialCode: itemCode,
		MaterialName: strings.TrimSpace(row.ItemName),
		Quantity:     qty,
		Unit:         unit,
		ProcessCode:  processCode,
		CrimpCode:    crimpCode,
	}, nil
}

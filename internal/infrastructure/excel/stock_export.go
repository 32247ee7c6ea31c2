package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ksyee/vietnam-mes-simple/internal/application/stock"
	"github.com/ksyee/vietnam-mes-simple/internal/domain/entity"
)

var stockExportHeaders = []string{
	"공정", "자재코드", "자재명", "LOT 번호", "입고수량", "사용수량", "가용수량", "입고일시",
}

// BuildStockWorkbook arma el libro de exportación de stock de un proceso:
// una fila por LOT más una fila de totales al final.
func BuildStockWorkbook(processCode string, lots []entity.StockLot, summary *stock.Summary) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Stock"
	if processCode != "" {
		sheet = processCode
	}
	f.SetSheetName("Sheet1", sheet)

	boldStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo de cabecera: %w", err)
	}

	for i, h := range stockExportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, boldStyle)
	}

	for idx, lot := range lots {
		row := idx + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), lot.ProcessCode)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), lot.MaterialCode)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), lot.MaterialName)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), lot.LotNumber)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), lot.Quantity.String())
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), lot.UsedQty.String())
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), lot.AvailableQty.String())
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), lot.ReceivedAt.Format("2006-01-02 15:04:05"))
	}

	if summary != nil {
		total := len(lots) + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", total), "합계")
		f.SetCellValue(sheet, fmt.Sprintf("D%d", total), summary.TotalLots)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", total), summary.TotalQuantity.String())
		f.SetCellValue(sheet, fmt.Sprintf("F%d", total), summary.TotalUsed.String())
		f.SetCellValue(sheet, fmt.Sprintf("G%d", total), summary.TotalAvailable.String())
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", total), fmt.Sprintf("H%d", total), boldStyle)
	}

	return f, nil
}

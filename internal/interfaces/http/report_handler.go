package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ksyee/vietnam-mes-simple/internal/application/report"
)

// ReportHandler maneja el reporte imprimible de stock.
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// StockPDF godoc
// @Summary      Reporte PDF del stock de un proceso
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        processCode  path  string  true  "código de proceso"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/stock/{processCode} [get]
func (h *ReportHandler) StockPDF(c *fiber.Ctx) error {
	processCode := c.Params("processCode")
	pdfBytes, err := h.uc.GeneratePDF(c.Context(), processCode)
	if err != nil {
		return stockError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock_`+processCode+`.pdf"`)
	return c.Send(pdfBytes)
}

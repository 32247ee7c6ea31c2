package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/ksyee/vietnam-mes-simple/internal/application/dto"
	"github.com/ksyee/vietnam-mes-simple/internal/application/stock"
	"github.com/ksyee/vietnam-mes-simple/internal/domain"
	"github.com/ksyee/vietnam-mes-simple/internal/infrastructure/excel"
)

// StockHandler maneja las peticiones HTTP del stock por proceso y las rutas
// heredadas sin proceso del terminal antiguo.
type StockHandler struct {
	ledger *stock.Ledger
}

// NewStockHandler construye el handler.
func NewStockHandler(ledger *stock.Ledger) *StockHandler {
	return &StockHandler{ledger: ledger}
}

// stockError mapea errores de dominio a respuestas HTTP. El mensaje del
// operador viaja en coreano; el Code es estable para el cliente.
func stockError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrProcessRequired):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "PROCESS_REQUIRED", Message: dto.OperatorMessage(err)})
	case errors.Is(err, domain.ErrLotRequired):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "LOT_REQUIRED", Message: dto.OperatorMessage(err)})
	case errors.Is(err, domain.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: dto.OperatorMessage(err)})
	case errors.Is(err, domain.ErrLotExhausted):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "LOT_EXHAUSTED", Message: dto.OperatorMessage(err)})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrStorage):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORAGE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// Register godoc
// @Summary      Registrar escaneo de material en un proceso
// @Tags         stocks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterStockRequest  true  "processCode, materialCode, lotNumber, quantity"
// @Success      201   {object}  dto.RegisterStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stocks/process [post]
func (h *StockHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.ledger.Register(c.Context(), stock.RegisterInput{
		ProcessCode:  in.ProcessCode,
		MaterialID:   in.MaterialID,
		MaterialCode: in.MaterialCode,
		MaterialName: in.MaterialName,
		LotNumber:    in.LotNumber,
		Quantity:     in.Quantity,
	})
	if err != nil {
		return stockError(c, err)
	}
	msg := dto.MsgStockMerged
	if res.IsNewEntry {
		msg = dto.MsgStockRegistered
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RegisterStockResponse{
		IsNewEntry: res.IsNewEntry,
		Stock:      res.Lot,
		Message:    msg,
	})
}

// Consume godoc
// @Summary      Consumir material FIFO en un proceso
// @Tags         stocks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConsumeStockRequest  true  "processCode, materialId, quantity"
// @Success      200   {object}  dto.ConsumeStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stocks/process/consume [post]
func (h *StockHandler) Consume(c *fiber.Ctx) error {
	var in dto.ConsumeStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.ledger.Consume(c.Context(), in.ProcessCode, in.MaterialID, in.Quantity)
	if err != nil {
		return stockError(c, err)
	}
	return c.JSON(dto.ToConsumeStockResponse(res))
}

// List godoc
// @Summary      Listar stock de un proceso
// @Description  Oculta los LOTs con disponible 0 salvo showZero=true; materialCode filtra por subcadena.
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Param        processCode   path   string  true   "código de proceso"
// @Param        showZero      query  bool    false  "incluir LOTs agotados"
// @Param        materialCode  query  string  false  "filtro por subcadena"
// @Success      200  {array}  entity.StockLot
// @Router       /api/stocks/process/{processCode} [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	opts := stock.ListOptions{
		ShowZero:     c.QueryBool("showZero"),
		MaterialCode: c.Query("materialCode"),
	}
	lots, err := h.ledger.ListByProcess(c.Context(), c.Params("processCode"), opts)
	if err != nil {
		return stockError(c, err)
	}
	return c.JSON(lots)
}

// CheckStatus godoc
// @Summary      Estado de un LOT ante un nuevo escaneo
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Param        processCode  path   string  true  "código de proceso"
// @Param        lotNumber    query  string  true  "número de LOT"
// @Success      200  {object}  dto.StockStatusResponse
// @Router       /api/stocks/process/{processCode}/status [get]
func (h *StockHandler) CheckStatus(c *fiber.Ctx) error {
	res, err := h.ledger.CheckStatus(c.Context(), c.Params("processCode"), c.Query("lotNumber"))
	if err != nil {
		return stockError(c, err)
	}
	return c.JSON(dto.ToStockStatusResponse(res))
}

// Summary godoc
// @Summary      Resumen agregado del stock de un proceso
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Param        processCode  path  string  true  "código de proceso"
// @Success      200  {object}  stock.Summary
// @Router       /api/stocks/process/{processCode}/summary [get]
func (h *StockHandler) Summary(c *fiber.Ctx) error {
	res, err := h.ledger.GetSummary(c.Context(), c.Params("processCode"))
	if err != nil {
		return stockError(c, err)
	}
	return c.JSON(res)
}

// AvailableQty godoc
// @Summary      Disponible agregado de un material en un proceso
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Param        processCode  path  string  true  "código de proceso"
// @Param        materialId   path  int     true  "id del material"
// @Success      200  {object}  dto.AvailableQtyResponse
// @Router       /api/stocks/process/{processCode}/available/{materialId} [get]
func (h *StockHandler) AvailableQty(c *fiber.Ctx) error {
	materialID, err := strconv.Atoi(c.Params("materialId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "materialId debe ser numérico"})
	}
	processCode := c.Params("processCode")
	qty, err := h.ledger.AvailableQty(c.Context(), processCode, materialID)
	if err != nil {
		return stockError(c, err)
	}
	return c.JSON(dto.AvailableQtyResponse{
		ProcessCode:  processCode,
		MaterialID:   materialID,
		AvailableQty: qty,
	})
}

// TodayReceivings godoc
// @Summary      Recepciones del día
// @Description  Con processCode vacío devuelve las recepciones de hoy de todos los procesos.
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Param        processCode  query  string  false  "código de proceso"
// @Success      200  {array}  entity.StockLot
// @Router       /api/stocks/today [get]
func (h *StockHandler) TodayReceivings(c *fiber.Ctx) error {
	lots, err := h.ledger.TodayReceivings(c.Context(), c.Query("processCode"))
	if err != nil {
		return stockError(c, err)
	}
	return c.JSON(lots)
}

// Export godoc
// @Summary      Exportar el stock de un proceso a Excel
// @Tags         stocks
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        processCode  path  string  true  "código de proceso"
// @Success      200  {file}  binary
// @Router       /api/stocks/process/{processCode}/export [get]
func (h *StockHandler) Export(c *fiber.Ctx) error {
	processCode := c.Params("processCode")
	lots, err := h.ledger.ListByProcess(c.Context(), processCode, stock.ListOptions{ShowZero: true})
	if err != nil {
		return stockError(c, err)
	}
	summary, err := h.ledger.GetSummary(c.Context(), processCode)
	if err != nil {
		return stockError(c, err)
	}
	f, err := excel.BuildStockWorkbook(processCode, lots, summary)
	if err != nil {
		return stockError(c, err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return stockError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock_`+processCode+`.xlsx"`)
	return c.Send(buf.Bytes())
}

// ── Rutas heredadas (terminal sin proceso) ───────────────────────────────────

// Receive godoc
// @Summary      Recepción sin proceso (terminal antiguo)
// @Tags         stocks-legacy
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterStockRequest  true  "materialCode, lotNumber, quantity"
// @Success      201   {object}  dto.RegisterStockResponse
// @Router       /api/stocks [post]
func (h *StockHandler) Receive(c *fiber.Ctx) error {
	var in dto.RegisterStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.ledger.Receive(c.Context(), stock.ReceiveInput{
		MaterialID:   in.MaterialID,
		MaterialCode: in.MaterialCode,
		MaterialName: in.MaterialName,
		LotNumber:    in.LotNumber,
		Quantity:     in.Quantity,
	})
	if err != nil {
		return stockError(c, err)
	}
	msg := dto.MsgStockMerged
	if res.IsNewEntry {
		msg = dto.MsgStockRegistered
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RegisterStockResponse{
		IsNewEntry: res.IsNewEntry,
		Stock:      res.Lot,
		Message:    msg,
	})
}

// All godoc
// @Summary      Todo el stock, sin distinguir proceso
// @Tags         stocks-legacy
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.StockLot
// @Router       /api/stocks [get]
func (h *StockHandler) All(c *fiber.Ctx) error {
	lots, err := h.ledger.All(c.Context())
	if err != nil {
		return stockError(c, err)
	}
	return c.JSON(lots)
}

// ConsumeAllowNegative godoc
// @Summary      Consumo FIFO que permite saldo negativo (terminal antiguo)
// @Description  El faltante se carga al último LOT del material; sin LOTs no se descuenta nada.
// @Tags         stocks-legacy
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConsumeStockRequest  true  "materialId, quantity"
// @Success      200   {object}  dto.ConsumeStockResponse
// @Router       /api/stocks/consume [post]
func (h *StockHandler) ConsumeAllowNegative(c *fiber.Ctx) error {
	var in dto.ConsumeStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.ledger.ConsumeFIFOAllowNegative(c.Context(), in.MaterialID, in.Quantity)
	if err != nil {
		return stockError(c, err)
	}
	return c.JSON(dto.ToConsumeStockResponse(res))
}

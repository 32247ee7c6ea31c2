package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ksyee/vietnam-mes-simple/internal/application/dto"
	"github.com/ksyee/vietnam-mes-simple/internal/application/importer"
	"github.com/ksyee/vietnam-mes-simple/internal/application/masterdata"
	"github.com/ksyee/vietnam-mes-simple/internal/domain"
	"github.com/ksyee/vietnam-mes-simple/internal/domain/entity"
	"github.com/ksyee/vietnam-mes-simple/internal/infrastructure/excel"
)

// BOMHandler maneja las peticiones HTTP del BOM y su importación.
type BOMHandler struct {
	items *masterdata.BOMItems
	imp   *importer.BOMImporter
}

// NewBOMHandler construye el handler.
func NewBOMHandler(items *masterdata.BOMItems, imp *importer.BOMImporter) *BOMHandler {
	return &BOMHandler{items: items, imp: imp}
}

// List godoc
// @Summary      Listar todos los registros BOM
// @Tags         bom
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.BOMItem
// @Router       /api/bom [get]
func (h *BOMHandler) List(c *fiber.Ctx) error {
	items, err := h.items.List(c.Context())
	if err != nil {
		return stockError(c, err)
	}
	return c.JSON(items)
}

// Groups godoc
// @Summary      Vista agrupada del BOM
// @Description  Agrupa por producto y nivel de proceso; el nivel 4 se subdivide por código de aplicador.
// @Tags         bom
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.BOMGroup
// @Router       /api/bom/groups [get]
func (h *BOMHandler) Groups(c *fiber.Ctx) error {
	groups, err := h.items.Groups(c.Context())
	if err != nil {
		return stockError(c, err)
	}
	return c.JSON(groups)
}

// ItemsByProduct godoc
// @Summary      Registros BOM de un producto
// @Tags         bom
// @Security     Bearer
// @Produce      json
// @Param        productCode  path  string  true  "código de producto"
// @Success      200  {array}  entity.BOMItem
// @Router       /api/bom/product/{productCode} [get]
func (h *BOMHandler) ItemsByProduct(c *fiber.Ctx) error {
	items, err := h.items.ItemsByProduct(c.Context(), c.Params("productCode"))
	if err != nil {
		return stockError(c, err)
	}
	return c.JSON(items)
}

// Create godoc
// @Summary      Crear un registro BOM
// @Tags         bom
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBOMItemRequest  true  "productCode, materialCode, quantity, processCode"
// @Success      201   {object}  entity.BOMItem
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/bom [post]
func (h *BOMHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBOMItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductCode == "" || in.MaterialCode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "productCode y materialCode son requeridos"})
	}
	item, err := h.items.Add(c.Context(), entity.BOMItem{
		ProductCode:  in.ProductCode,
		ProductName:  in.ProductName,
		MaterialCode: in.MaterialCode,
		MaterialName: in.MaterialName,
		Quantity:     in.Quantity,
		Unit:         in.Unit,
		ProcessCode:  in.ProcessCode,
		CrimpCode:    in.CrimpCode,
	})
	if err != nil {
		return stockError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// DeleteByProduct godoc
// @Summary      Borrar el BOM completo de un producto
// @Tags         bom
// @Security     Bearer
// @Produce      json
// @Param        productCode  path  string  true  "código de producto"
// @Success      200  {object}  dto.CountResponse
// @Router       /api/bom/product/{productCode} [delete]
func (h *BOMHandler) DeleteByProduct(c *fiber.Ctx) error {
	count, err := h.items.DeleteByProduct(c.Context(), c.Params("productCode"))
	if err != nil {
		return stockError(c, err)
	}
	return c.JSON(dto.CountResponse{Count: count})
}

// Import godoc
// @Summary      Importar filas BOM (JSON)
// @Description  Normaliza cada fila: processCode en mayúsculas, cantidad 1 y unidad EA por defecto, crimpCode solo para CA.
// @Tags         bom
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportBOMRequest  true  "filas crudas de la hoja"
// @Success      200   {object}  dto.ImportBOMResponse
// @Router       /api/bom/import [post]
func (h *BOMHandler) Import(c *fiber.Ctx) error {
	var in dto.ImportBOMRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	rows := make([]importer.RawBOMRow, 0, len(in.Rows))
	for _, r := range in.Rows {
		rows = append(rows, importer.RawBOMRow{
			ProductCode: r.ProductCode,
			ProductName: r.ProductName,
			ItemCode:    r.ItemCode,
			ItemName:    r.ItemName,
			Quantity:    r.Quantity,
			Unit:        r.Unit,
			ProcessCode: r.ProcessCode,
			CrimpCode:   r.CrimpCode,
		})
	}
	return h.runImport(c, rows)
}

// ImportExcel godoc
// @Summary      Importar un libro Excel de BOM
// @Tags         bom
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "libro .xlsx con la hoja BOM"
// @Success      200   {object}  dto.ImportBOMResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/bom/import/excel [post]
func (h *BOMHandler) ImportExcel(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "se requiere el archivo en el campo file"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo abrir el archivo"})
	}
	defer f.Close()

	rows, err := excel.ReadBOMRows(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: err.Error()})
	}
	return h.runImport(c, rows)
}

func (h *BOMHandler) runImport(c *fiber.Ctx, rows []importer.RawBOMRow) error {
	res, err := h.imp.Import(c.Context(), rows)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return stockError(c, err)
	}
	return c.JSON(dto.ImportBOMResponse{
		Imported: res.Imported,
		Skipped:  res.Skipped,
		Errors:   res.Errors,
	})
}

// Reset godoc
// @Summary      Vaciar todos los registros BOM
// @Tags         bom
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CountResponse
// @Router       /api/bom [delete]
func (h *BOMHandler) Reset(c *fiber.Ctx) error {
	count, err := h.items.Reset(c.Context())
	if err != nil {
		return stockError(c, err)
	}
	return c.JSON(dto.CountResponse{Count: count})
}

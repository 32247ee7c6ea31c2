package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/ksyee/vietnam-mes-simple/internal/application/dto"
	"github.com/ksyee/vietnam-mes-simple/internal/application/masterdata"
	"github.com/ksyee/vietnam-mes-simple/internal/domain/entity"
)

// MasterdataHandler maneja materiales, productos y líneas de producción.
type MasterdataHandler struct {
	materials *masterdata.Materials
	products  *masterdata.Products
	lines     *masterdata.Lines
}

// NewMasterdataHandler construye el handler.
func NewMasterdataHandler(materials *masterdata.Materials, products *masterdata.Products, lines *masterdata.Lines) *MasterdataHandler {
	return &MasterdataHandler{materials: materials, products: products, lines: lines}
}

func paramID(c *fiber.Ctx) (int, error) {
	return strconv.Atoi(c.Params("id"))
}

// ── Materiales ───────────────────────────────────────────────────────────────

// ListMaterials godoc
// @Summary      Listar materiales
// @Tags         masterdata
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Material
// @Router       /api/materials [get]
func (h *MasterdataHandler) ListMaterials(c *fiber.Ctx) error {
	list, err := h.materials.List(c.Context())
	if err != nil {
		return stockError(c, err)
	}
	return c.JSON(list)
}

// CreateMaterial godoc
// @Summary      Crear material
// @Tags         masterdata
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMaterialRequest  true  "code, name"
// @Success      201   {object}  entity.Material
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/materials [post]
func (h *MasterdataHandler) CreateMaterial(c *fiber.Ctx) error {
	var in dto.CreateMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Code == "" || in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "code y name son requeridos"})
	}
	m, err := h.materials.Add(c.Context(), entity.Material{
		Code:      in.Code,
		Name:      in.Name,
		Spec:      in.Spec,
		Category:  in.Category,
		Unit:      in.Unit,
		SafeStock: in.SafeStock,
		Desc:      in.Desc,
	})
	if err != nil {
		return stockError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(m)
}

// UpdateMaterial godoc
// @Summary      Actualizar material
// @Tags         masterdata
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int              true  "id del material"
// @Param        body  body  entity.Material  true  "material completo"
// @Success      200   {object}  entity.Material
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/materials/{id} [put]
func (h *MasterdataHandler) UpdateMaterial(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id debe ser numérico"})
	}
	var in entity.Material
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.ID = id
	if err := h.materials.Update(c.Context(), in); err != nil {
		return stockError(c, err)
	}
	return c.JSON(in)
}

// DeleteMaterial godoc
// @Summary      Borrar material
// @Tags         masterdata
// @Security     Bearer
// @Param        id  path  int  true  "id del material"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materials/{id} [delete]
func (h *MasterdataHandler) DeleteMaterial(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id debe ser numérico"})
	}
	if err := h.materials.Delete(c.Context(), id); err != nil {
		return stockError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Productos ────────────────────────────────────────────────────────────────

// ListProducts godoc
// @Summary      Listar productos
// @Tags         masterdata
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Product
// @Router       /api/products [get]
func (h *MasterdataHandler) ListProducts(c *fiber.Ctx) error {
	list, err := h.products.List(c.Context())
	if err != nil {
		return stockError(c, err)
	}
	return c.JSON(list)
}

// CreateProduct godoc
// @Summary      Crear producto
// @Tags         masterdata
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "code, name"
// @Success      201   {object}  entity.Product
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *MasterdataHandler) CreateProduct(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Code == "" || in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "code y name son requeridos"})
	}
	productType := in.Type
	if productType == "" {
		productType = entity.ProductTypeFinished
	}
	p, err := h.products.Add(c.Context(), entity.Product{
		Code:        in.Code,
		Name:        in.Name,
		Spec:        in.Spec,
		Type:        productType,
		ProcessCode: in.ProcessCode,
		CrimpCode:   in.CrimpCode,
		Description: in.Description,
	})
	if err != nil {
		return stockError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// DeleteProduct godoc
// @Summary      Borrar producto
// @Tags         masterdata
// @Security     Bearer
// @Param        id  path  int  true  "id del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *MasterdataHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id debe ser numérico"})
	}
	if err := h.products.Delete(c.Context(), id); err != nil {
		return stockError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Líneas de producción ─────────────────────────────────────────────────────

// ListLines godoc
// @Summary      Listar líneas de producción
// @Description  processCode filtra por proceso (sin distinguir mayúsculas).
// @Tags         masterdata
// @Security     Bearer
// @Produce      json
// @Param        processCode  query  string  false  "código de proceso"
// @Success      200  {array}  entity.Line
// @Router       /api/lines [get]
func (h *MasterdataHandler) ListLines(c *fiber.Ctx) error {
	if processCode := c.Query("processCode"); processCode != "" {
		return c.JSON(h.lines.ListByProcess(c.Context(), processCode))
	}
	return c.JSON(h.lines.List(c.Context()))
}

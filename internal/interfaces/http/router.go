package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ksyee/vietnam-mes-simple/internal/application/auth"
	"github.com/ksyee/vietnam-mes-simple/internal/application/importer"
	"github.com/ksyee/vietnam-mes-simple/internal/application/masterdata"
	"github.com/ksyee/vietnam-mes-simple/internal/application/report"
	"github.com/ksyee/vietnam-mes-simple/internal/application/stock"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Ledger    *stock.Ledger
	Materials *masterdata.Materials
	Products  *masterdata.Products
	BOMItems  *masterdata.BOMItems
	Lines     *masterdata.Lines
	Importer  *importer.BOMImporter
	ReportUC  *report.UseCase
	AuthUC    *auth.UseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Stock por proceso + rutas heredadas del terminal antiguo
	stockHandler := NewStockHandler(deps.Ledger)
	stocks := protected.Group("/stocks")
	stocks.Post("/process", stockHandler.Register)
	stocks.Post("/process/consume", stockHandler.Consume)
	stocks.Get("/today", stockHandler.TodayReceivings)
	stocks.Get("/process/:processCode", stockHandler.List)
	stocks.Get("/process/:processCode/status", stockHandler.CheckStatus)
	stocks.Get("/process/:processCode/summary", stockHandler.Summary)
	stocks.Get("/process/:processCode/available/:materialId", stockHandler.AvailableQty)
	stocks.Get("/process/:processCode/export", stockHandler.Export)
	stocks.Post("/", stockHandler.Receive)
	stocks.Get("/", stockHandler.All)
	stocks.Post("/consume", stockHandler.ConsumeAllowNegative)

	// BOM
	bomHandler := NewBOMHandler(deps.BOMItems, deps.Importer)
	bom := protected.Group("/bom")
	bom.Get("/", bomHandler.List)
	bom.Post("/", bomHandler.Create)
	bom.Delete("/", bomHandler.Reset)
	bom.Get("/groups", bomHandler.Groups)
	bom.Post("/import", bomHandler.Import)
	bom.Post("/import/excel", bomHandler.ImportExcel)
	bom.Get("/product/:productCode", bomHandler.ItemsByProduct)
	bom.Delete("/product/:productCode", bomHandler.DeleteByProduct)

	// Datos maestros
	mdHandler := NewMasterdataHandler(deps.Materials, deps.Products, deps.Lines)
	materials := protected.Group("/materials")
	materials.Get("/", mdHandler.ListMaterials)
	materials.Post("/", mdHandler.CreateMaterial)
	materials.Put("/:id", mdHandler.UpdateMaterial)
	materials.Delete("/:id", mdHandler.DeleteMaterial)

	products := protected.Group("/products")
	products.Get("/", mdHandler.ListProducts)
	products.Post("/", mdHandler.CreateProduct)
	products.Delete("/:id", mdHandler.DeleteProduct)

	protected.Get("/lines", mdHandler.ListLines)

	// Reportes
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reports/stock/:processCode", reportHandler.StockPDF)
}

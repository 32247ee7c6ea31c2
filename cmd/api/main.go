package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ksyee/vietnam-mes-simple/internal/application/auth"
	"github.com/ksyee/vietnam-mes-simple/internal/application/importer"
	"github.com/ksyee/vietnam-mes-simple/internal/application/masterdata"
	"github.com/ksyee/vietnam-mes-simple/internal/application/report"
	"github.com/ksyee/vietnam-mes-simple/internal/application/stock"
	"github.com/ksyee/vietnam-mes-simple/internal/domain/repository"
	"github.com/ksyee/vietnam-mes-simple/internal/infrastructure/localstore"
	infrapdf "github.com/ksyee/vietnam-mes-simple/internal/infrastructure/pdf"
	httpRouter "github.com/ksyee/vietnam-mes-simple/internal/interfaces/http"
	"github.com/ksyee/vietnam-mes-simple/pkg/config"
	"github.com/ksyee/vietnam-mes-simple/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	store, closeStore, err := newBlobStore(cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento")
	}
	defer closeStore()

	ledger := stock.NewLedger(store)
	materials := masterdata.NewMaterials(store)
	products := masterdata.NewProducts(store)
	bomItems := masterdata.NewBOMItems(store)
	lines := masterdata.NewLines()
	bomImporter := importer.NewBOMImporter(bomItems)

	pdfGenerator := infrapdf.NewMarotoStockReport(cfg.App.Name)
	reportUC := report.NewUseCase(ledger, pdfGenerator)

	authUC := auth.NewUseCase(
		auth.Credentials{
			Username:     cfg.Auth.Username,
			PasswordHash: cfg.Auth.PasswordHash,
		},
		auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Vietnam MES API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Ledger:    ledger,
		Materials: materials,
		Products:  products,
		BOMItems:  bomItems,
		Lines:     lines,
		Importer:  bomImporter,
		ReportUC:  reportUC,
		AuthUC:    authUC,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// newBlobStore construye el backend de persistencia según el driver
// configurado. El segundo retorno cierra recursos (solo redis los tiene).
func newBlobStore(cfg config.StorageConfig) (repository.BlobStore, func(), error) {
	switch cfg.Driver {
	case "memory":
		return localstore.NewMemoryStore(), func() {}, nil
	case "redis":
		store, err := localstore.NewRedisStore(cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	default:
		store, err := localstore.NewFileStore(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	}
}

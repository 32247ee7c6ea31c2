// Package report arma los datos del reporte imprimible de stock por proceso
// y delega el render a un generador inyectado.
package report

import (
	"context"
	"time"

	"github.com/ksyee/vietnam-mes-simple/internal/application/stock"
	"github.com/ksyee/vietnam-mes-simple/internal/domain"
	"github.com/ksyee/vietnam-mes-simple/internal/domain/entity"
)

// StockReport datos ya calculados listos para renderizar.
type StockReport struct {
	ProcessCode string
	GeneratedAt time.Time
	Lots        []entity.StockLot
	Summary     stock.Summary
}

// PDFGenerator puerto de render. La infraestructura decide el formato final.
type PDFGenerator interface {
	Generate(ctx context.Context, data *StockReport) ([]byte, error)
}

// UseCase caso de uso del reporte de stock.
type UseCase struct {
	ledger *stock.Ledger
	gen    PDFGenerator
}

// NewUseCase construye el caso de uso con el ledger y el generador.
func NewUseCase(ledger *stock.Ledger, gen PDFGenerator) *UseCase {
	return &UseCase{ledger: ledger, gen: gen}
}

// Build arma el reporte de un proceso: todos sus LOTs (incluidos los
// agotados, que el historial impreso sí muestra) más el resumen agregado.
func (uc *UseCase) Build(ctx context.Context, processCode string) (*StockReport, error) {
	if processCode == "" {
		return nil, domain.ErrProcessRequired
	}
	lots, err := uc.ledger.ListByProcess(ctx, processCode, stock.ListOptions{ShowZero: true})
	if err != nil {
		return nil, err
	}
	summary, err := uc.ledger.GetSummary(ctx, processCode)
	if err != nil {
		return nil, err
	}
	return &StockReport{
		ProcessCode: processCode,
		GeneratedAt: time.Now(),
		Lots:        lots,
		Summary:     *summary,
	}, nil
}

// GeneratePDF arma el reporte y lo renderiza a bytes.
func (uc *UseCase) GeneratePDF(ctx context.Context, processCode string) ([]byte, error) {
	data, err := uc.Build(ctx, processCode)
	if err != nil {
		return nil, err
	}
	return uc.gen.Generate(ctx, data)
}

package report_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksyee/vietnam-mes-simple/internal/application/report"
	"github.com/ksyee/vietnam-mes-simple/internal/application/stock"
	"github.com/ksyee/vietnam-mes-simple/internal/domain"
	"github.com/ksyee/vietnam-mes-simple/internal/infrastructure/localstore"
)

type captureGenerator struct {
	last *report.StockReport
}

func (g *captureGenerator) Generate(_ context.Context, data *report.StockReport) ([]byte, error) {
	g.last = data
	return []byte("%PDF-fake"), nil
}

func TestBuild_IncluyeAgotadosYResumen(t *testing.T) {
	ctx := context.Background()
	ledger := stock.NewLedger(localstore.NewMemoryStore())

	_, err := ledger.Register(ctx, stock.RegisterInput{
		ProcessCode: "CA", MaterialID: 1, MaterialCode: "WIRE001",
		LotNumber: "LOT-001", Quantity: decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	_, err = ledger.Consume(ctx, "CA", 1, decimal.NewFromInt(100))
	require.NoError(t, err)

	uc := report.NewUseCase(ledger, &captureGenerator{})
	data, err := uc.Build(ctx, "CA")
	require.NoError(t, err)

	require.Len(t, data.Lots, 1, "el reporte impreso muestra también los LOTs agotados")
	assert.True(t, data.Lots[0].AvailableQty.IsZero())
	assert.Equal(t, 1, data.Summary.TotalLots)
	assert.True(t, decimal.NewFromInt(100).Equal(data.Summary.TotalUsed))
	assert.False(t, data.GeneratedAt.IsZero())
}

func TestBuild_ProcesoObligatorio(t *testing.T) {
	uc := report.NewUseCase(stock.NewLedger(localstore.NewMemoryStore()), &captureGenerator{})

	_, err := uc.Build(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrProcessRequired)
}

func TestGeneratePDF_DelegaAlGenerador(t *testing.T) {
	ctx := context.Background()
	ledger := stock.NewLedger(localstore.NewMemoryStore())
	gen := &captureGenerator{}
	uc := report.NewUseCase(ledger, gen)

	out, err := uc.GeneratePDF(ctx, "PA")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), out)
	require.NotNil(t, gen.last)
	assert.Equal(t, "PA", gen.last.ProcessCode)
}

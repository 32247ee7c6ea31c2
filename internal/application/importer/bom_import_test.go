package importer_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksyee/vietnam-mes-simple/internal/application/importer"
	"github.com/ksyee/vietnam-mes-simple/internal/application/masterdata"
	"github.com/ksyee/vietnam-mes-simple/internal/infrastructure/localstore"
)

func TestNormalize_ReglasDeSaneamiento(t *testing.T) {
	item, err := importer.Normalize(importer.RawBOMRow{
		ProductCode: " A001 ",
		ProductName: "하네스 A",
		ItemCode:    "WIRE001",
		ItemName:    "전선",
		Quantity:    "2.5",
		Unit:        "M",
		ProcessCode: "ca",
		CrimpCode:   "A001-001",
	})
	require.NoError(t, err)

	assert.Equal(t, "A001", item.ProductCode)
	assert.Equal(t, "CA", item.ProcessCode, "el processCode se normaliza a mayúsculas")
	assert.True(t, decimal.NewFromFloat(2.5).Equal(item.Quantity))
	assert.Equal(t, "M", item.Unit)
	assert.Equal(t, "A001-001", item.CrimpCode)
}

func TestNormalize_Defaults(t *testing.T) {
	item, err := importer.Normalize(importer.RawBOMRow{
		ProductCode: "A001",
		ItemCode:    "TERM001",
		ProcessCode: "pa",
		CrimpCode:   "A001-001",
	})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(1).Equal(item.Quantity), "cantidad ausente = 1")
	assert.Equal(t, "EA", item.Unit, "unidad ausente = EA")
	assert.Empty(t, item.CrimpCode, "crimpCode solo aplica al proceso CA")
}

func TestNormalize_CantidadIlegibleCaeAlDefault(t *testing.T) {
	item, err := importer.Normalize(importer.RawBOMRow{
		ProductCode: "A001",
		ItemCode:    "TERM001",
		Quantity:    "n/a",
		ProcessCode: "MC",
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1).Equal(item.Quantity))
}

func TestImport_FilasMalasNoAbortanElLote(t *testing.T) {
	items := masterdata.NewBOMItems(localstore.NewMemoryStore())
	imp := importer.NewBOMImporter(items)
	ctx := context.Background()

	res, err := imp.Import(ctx, []importer.RawBOMRow{
		{ProductCode: "A001", ItemCode: "WIRE001", ItemName: "전선", Quantity: "1.5", Unit: "M", ProcessCode: "CA", CrimpCode: "A001-001"},
		{ProductCode: "", ItemCode: "TERM001", ProcessCode: "MC"},
		{ProductCode: "A001", ItemCode: "HOUSING001", ItemName: "하우징", ProcessCode: "PA"},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 1, res.Skipped)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "fila 2")

	list, err := items.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 4, list[0].Level, "los niveles se derivan al persistir")
	assert.Equal(t, 1, list[1].Level)
}

func TestImport_HojaVacia(t *testing.T) {
	imp := importer.NewBOMImporter(masterdata.NewBOMItems(localstore.NewMemoryStore()))

	res, err := imp.Import(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, res.Imported)
	assert.Zero(t, res.Skipped)
}

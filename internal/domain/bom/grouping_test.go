package bom_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksyee/vietnam-mes-simple/internal/domain/bom"
	"github.com/ksyee/vietnam-mes-simple/internal/domain/entity"
)

// item construye una fila BOM de prueba con valores por defecto razonables.
func item(id int, productCode, processCode string, level int, overrides ...func(*entity.BOMItem)) entity.BOMItem {
	it := entity.BOMItem{
		ID:           id,
		ProductCode:  productCode,
		ProductName:  "테스트 제품",
		MaterialCode: "MAT001",
		MaterialName: "테스트 자재",
		Quantity:     decimal.NewFromInt(1),
		Unit:         "EA",
		ProcessCode:  processCode,
		Level:        level,
		RegDate:      "2025-01-01",
	}
	for _, fn := range overrides {
		fn(&it)
	}
	return it
}

func withCrimp(code string) func(*entity.BOMItem) {
	return func(it *entity.BOMItem) { it.CrimpCode = code }
}

func withMaterial(code string) func(*entity.BOMItem) {
	return func(it *entity.BOMItem) { it.MaterialCode = code }
}

func TestGroupItems_AgrupaPorProducto(t *testing.T) {
	groups := bom.GroupItems([]entity.BOMItem{
		item(1, "A001", "PA", 1),
		item(2, "A001", "PA", 1),
		item(3, "B002", "PA", 1),
	})

	require.Len(t, groups, 2)
	assert.Equal(t, "A001", groups[0].ProductCode)
	assert.Equal(t, 2, groups[0].TotalItems)
	assert.Equal(t, "B002", groups[1].ProductCode)
	assert.Equal(t, 1, groups[1].TotalItems)
}

func TestGroupItems_NivelesAscendentes(t *testing.T) {
	// El orden de entrada no importa: los niveles salen siempre 1..4.
	groups := bom.GroupItems([]entity.BOMItem{
		item(1, "A001", "CA", 4),
		item(2, "A001", "PA", 1),
		item(3, "A001", "SB", 3),
		item(4, "A001", "MC", 2),
	})

	require.Len(t, groups, 1)
	levels := make([]int, 0, 4)
	for _, lg := range groups[0].LevelGroups {
		levels = append(levels, lg.Level)
	}
	assert.Equal(t, []int{1, 2, 3, 4}, levels)
}

func TestGroupItems_SoloNivelesConFilas(t *testing.T) {
	groups := bom.GroupItems([]entity.BOMItem{
		item(1, "A001", "PA", 1),
		item(2, "A001", "MC", 2),
		item(3, "A001", "CA", 4),
	})

	require.Len(t, groups, 1)
	require.Len(t, groups[0].LevelGroups, 3, "el nivel 3 no se emite vacío")
	assert.Equal(t, 1, groups[0].LevelGroups[0].Level)
	assert.Equal(t, 2, groups[0].LevelGroups[1].Level)
	assert.Equal(t, 4, groups[0].LevelGroups[2].Level)
}

func TestGroupItems_NombresDeProcesoPorNivel(t *testing.T) {
	groups := bom.GroupItems([]entity.BOMItem{
		item(1, "A001", "PA", 1),
		item(2, "A001", "MC", 2),
		item(3, "A001", "MS", 3),
		item(4, "A001", "CA", 4),
	})

	require.Len(t, groups, 1)
	lg := groups[0].LevelGroups
	require.Len(t, lg, 4)
	assert.Equal(t, "제품조립", lg[0].ProcessName)
	assert.Equal(t, "수동압착", lg[1].ProcessName)
	assert.Equal(t, "중간탈피", lg[2].ProcessName, "MS también clasifica al nivel 3")
	assert.Equal(t, "자동절단압착", lg[3].ProcessName)
}

func TestGroupItems_ProcessCodeEnMayusculas(t *testing.T) {
	groups := bom.GroupItems([]entity.BOMItem{
		item(1, "A001", "ca", 4),
	})

	require.Len(t, groups, 1)
	assert.Equal(t, "CA", groups[0].LevelGroups[0].ProcessCode, "el código del grupo sale en mayúsculas")
}

func TestGroupItems_CrimpSoloEnNivel4(t *testing.T) {
	groups := bom.GroupItems([]entity.BOMItem{
		item(1, "A001", "PA", 1),
		item(2, "A001", "MC", 2),
		item(3, "A001", "SB", 3),
	})

	for _, lg := range groups[0].LevelGroups {
		assert.Nil(t, lg.CrimpGroups, "los niveles 1..3 nunca llevan subgrupos de crimpado")
	}
}

func TestGroupItems_CrimpAgrupaYOrdena(t *testing.T) {
	groups := bom.GroupItems([]entity.BOMItem{
		item(1, "A001", "CA", 4, withCrimp("00315452-003")),
		item(2, "A001", "CA", 4, withCrimp("00315452-001")),
		item(3, "A001", "CA", 4, withCrimp("00315452-001")),
		item(4, "A001", "CA", 4, withCrimp("00315452-002")),
	})

	require.Len(t, groups, 1)
	lv4 := groups[0].LevelGroups[0]
	require.Len(t, lv4.CrimpGroups, 3)
	assert.Equal(t, "00315452-001", lv4.CrimpGroups[0].CrimpCode)
	assert.Len(t, lv4.CrimpGroups[0].Items, 2)
	assert.Equal(t, "00315452-002", lv4.CrimpGroups[1].CrimpCode)
	assert.Equal(t, "00315452-003", lv4.CrimpGroups[2].CrimpCode)
}

func TestGroupItems_CrimpSinCodigoUsaCentinela(t *testing.T) {
	groups := bom.GroupItems([]entity.BOMItem{
		item(1, "A001", "CA", 4),
		item(2, "A001", "CA", 4, withCrimp("00315452-001")),
	})

	lv4 := groups[0].LevelGroups[0]
	require.Len(t, lv4.CrimpGroups, 2)

	// "(" ordena antes que los dígitos, así que el centinela va primero.
	assert.Equal(t, bom.CrimpUnassigned, lv4.CrimpGroups[0].CrimpCode)
	assert.Equal(t, "00315452-001", lv4.CrimpGroups[1].CrimpCode)
}

func TestGroupItems_EscenarioRealista(t *testing.T) {
	// Estructura BOM real de un arnés: producto 00315452 con los cuatro
	// niveles y tres grupos de crimpado en el nivel 4.
	groups := bom.GroupItems([]entity.BOMItem{
		item(1, "00315452", "PA", 1, withMaterial("HOUSING001")),
		item(2, "00315452", "PA", 1, withMaterial("COVER001")),
		item(3, "00315452", "PA", 1, withMaterial("LABEL001")),
		item(4, "00315452", "MC", 2, withMaterial("TERM001")),
		item(5, "00315452", "MC", 2, withMaterial("TERM002")),
		item(6, "00315452", "SB", 3, withMaterial("SUB001")),
		item(7, "00315452", "CA", 4, withCrimp("00315452-001"), withMaterial("WIRE001")),
		item(8, "00315452", "CA", 4, withCrimp("00315452-001"), withMaterial("SEAL001")),
		item(9, "00315452", "CA", 4, withCrimp("00315452-002"), withMaterial("WIRE002")),
		item(10, "00315452", "CA", 4, withCrimp("00315452-002"), withMaterial("SEAL002")),
		item(11, "00315452", "CA", 4, withCrimp("00315452-003"), withMaterial("WIRE003")),
	})

	require.Len(t, groups, 1)
	assert.Equal(t, "00315452", groups[0].ProductCode)
	assert.Equal(t, 11, groups[0].TotalItems)
	require.Len(t, groups[0].LevelGroups, 4)

	lg := groups[0].LevelGroups
	assert.Len(t, lg[0].Items, 3)
	assert.Len(t, lg[1].Items, 2)
	assert.Len(t, lg[2].Items, 1)
	assert.Len(t, lg[3].Items, 5)

	require.Len(t, lg[3].CrimpGroups, 3)
	assert.Len(t, lg[3].CrimpGroups[0].Items, 2)
	assert.Len(t, lg[3].CrimpGroups[1].Items, 2)
	assert.Len(t, lg[3].CrimpGroups[2].Items, 1)
}

func TestGroupItems_CasosBorde(t *testing.T) {
	assert.Empty(t, bom.GroupItems(nil), "lista vacía produce cero grupos")

	groups := bom.GroupItems([]entity.BOMItem{item(1, "A001", "PA", 1)})
	require.Len(t, groups, 1)
	require.Len(t, groups[0].LevelGroups, 1)
	assert.Equal(t, 1, groups[0].TotalItems)

	// Varios productos con los mismos niveles: un árbol por producto.
	groups = bom.GroupItems([]entity.BOMItem{
		item(1, "A001", "PA", 1),
		item(2, "A001", "CA", 4, withCrimp("A001-001")),
		item(3, "B002", "PA", 1),
		item(4, "B002", "CA", 4, withCrimp("B002-001")),
	})
	require.Len(t, groups, 2)
	assert.Len(t, groups[0].LevelGroups, 2)
	assert.Len(t, groups[1].LevelGroups, 2)
}

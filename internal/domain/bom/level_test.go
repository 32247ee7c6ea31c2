package bom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ksyee/vietnam-mes-simple/internal/domain/bom"
)

func TestDetermineLevel_MapaCerrado(t *testing.T) {
	cases := []struct {
		processCode string
		expected    int
	}{
		{"PA", 1},
		{"MC", 2},
		{"SB", 3},
		{"MS", 3},
		{"CA", 4},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expected, bom.DetermineLevel(tc.processCode), "processCode=%s", tc.processCode)
	}
}

func TestDetermineLevel_NoDistingueMayusculas(t *testing.T) {
	assert.Equal(t, 1, bom.DetermineLevel("pa"))
	assert.Equal(t, 1, bom.DetermineLevel("Pa"))
	assert.Equal(t, 2, bom.DetermineLevel("mc"))
	assert.Equal(t, 3, bom.DetermineLevel("sb"))
	assert.Equal(t, 3, bom.DetermineLevel("ms"))
	assert.Equal(t, 4, bom.DetermineLevel("ca"))
}

func TestDetermineLevel_DesconocidosCaenAlNivel1(t *testing.T) {
	// Los procesos sin profundidad BOM (inspección, termocontracción, etc.)
	// no son un caso de error: todos valen 1.
	for _, code := range []string{"", "XX", "SP", "HS", "CQ", "CI", "VI"} {
		assert.Equal(t, 1, bom.DetermineLevel(code), "processCode=%q", code)
	}
}

func TestProcessName_CodigosConocidos(t *testing.T) {
	assert.Equal(t, "제품조립", bom.ProcessName("PA"))
	assert.Equal(t, "수동압착", bom.ProcessName("MC"))
	assert.Equal(t, "서브조립", bom.ProcessName("SB"))
	assert.Equal(t, "중간탈피", bom.ProcessName("MS"))
	assert.Equal(t, "자동절단압착", bom.ProcessName("CA"))
}

func TestProcessName_NoDistingueMayusculas(t *testing.T) {
	assert.Equal(t, "제품조립", bom.ProcessName("pa"))
	assert.Equal(t, "수동압착", bom.ProcessName("Mc"))
	assert.Equal(t, "자동절단압착", bom.ProcessName("ca"))
}

func TestProcessName_DesconocidoYVacio(t *testing.T) {
	// Un código desconocido se muestra tal cual; el vacío lleva la
	// etiqueta fija de "otros".
	assert.Equal(t, "XX", bom.ProcessName("XX"))
	assert.Equal(t, "SP", bom.ProcessName("SP"))
	assert.Equal(t, "기타", bom.ProcessName(""))
}

// Package bom contiene los servicios de dominio puros de la lista de
// materiales: clasificación de nivel por proceso y agrupación en árbol
// producto → nivel → grupo de crimpado.
package bom

import "strings"

// Códigos de proceso con nivel BOM propio. El resto de procesos de planta
// (SP, HS, CQ, CI, VI, ...) no aporta profundidad y cae al nivel 1.
const (
	ProcessAssembly   = "PA" // 제품조립
	ProcessManualCrim = "MC" // 수동압착
	ProcessSubAssy    = "SB" // 서브조립
	ProcessMidStrip   = "MS" // 중간탈피
	ProcessAutoCrimp  = "CA" // 자동절단압착
)

// CrimpUnassigned es la etiqueta centinela para materiales de nivel 4 sin
// código de crimpado.
const CrimpUnassigned = "(미지정)"

// processLevels es una regla de negocio cerrada: no se deriva de datos.
var processLevels = map[string]int{
	ProcessAssembly:   1,
	ProcessManualCrim: 2,
	ProcessSubAssy:    3,
	ProcessMidStrip:   3,
	ProcessAutoCrimp:  4,
}

var processNames = map[string]string{
	ProcessAssembly:   "제품조립",
	ProcessManualCrim: "수동압착",
	ProcessSubAssy:    "서브조립",
	ProcessMidStrip:   "중간탈피",
	ProcessAutoCrimp:  "자동절단압착",
}

// DetermineLevel devuelve el nivel BOM (1..4) de un código de proceso, sin
// distinguir mayúsculas. Todo código desconocido o vacío vale 1; no es un
// caso de error.
func DetermineLevel(processCode string) int {
	if level, ok := processLevels[strings.ToUpper(processCode)]; ok {
		return level
	}
	return 1
}

// ProcessName devuelve el nombre de pantalla de un código de proceso, sin
// distinguir mayúsculas. Un código desconocido no vacío se devuelve tal
// cual; el vacío se etiqueta como "기타" (otros).
func ProcessName(processCode string) string {
	if processCode == "" {
		return "기타"
	}
	if name, ok := processNames[strings.ToUpper(processCode)]; ok {
		return name
	}
	return processCode
}

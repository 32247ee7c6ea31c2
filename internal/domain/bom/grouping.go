package bom

import (
	"sort"
	"strings"

	"github.com/ksyee/vietnam-mes-simple/internal/domain/entity"
)

// GroupItems transforma la lista plana de filas BOM en el árbol
// producto → nivel → grupo de crimpado:
//
//   - un BOMGroup por productCode, ordenados lexicográficamente;
//   - dentro de cada producto, un LevelGroup por nivel en orden fijo 1..4,
//     emitido solo si tiene al menos una fila; usa el level almacenado en la
//     fila, no lo re-deriva;
//   - solo el nivel 4 se subdivide por crimpCode (centinela CrimpUnassigned
//     para filas sin código), con los subgrupos ordenados lexicográficamente.
func GroupItems(items []entity.BOMItem) []entity.BOMGroup {
	type productBucket struct {
		productCode string
		productName string
		items       []entity.BOMItem
	}

	productMap := make(map[string]*productBucket)
	order := make([]string, 0)

	for _, item := range items {
		bucket, ok := productMap[item.ProductCode]
		if !ok {
			bucket = &productBucket{
				productCode: item.ProductCode,
				productName: item.ProductName,
			}
			productMap[item.ProductCode] = bucket
			order = append(order, item.ProductCode)
		}
		bucket.items = append(bucket.items, item)
	}

	groups := make([]entity.BOMGroup, 0, len(productMap))
	for _, code := range order {
		bucket := productMap[code]
		groups = append(groups, entity.BOMGroup{
			ProductCode: bucket.productCode,
			ProductName: bucket.productName,
			LevelGroups: buildLevelGroups(bucket.items),
			TotalItems:  len(bucket.items),
		})
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].ProductCode < groups[j].ProductCode
	})
	return groups
}

func buildLevelGroups(items []entity.BOMItem) []entity.LevelGroup {
	levelMap := make(map[int][]entity.BOMItem)
	for _, item := range items {
		levelMap[item.Level] = append(levelMap[item.Level], item)
	}

	levelGroups := make([]entity.LevelGroup, 0, 4)
	for level := 1; level <= 4; level++ {
		levelItems := levelMap[level]
		if len(levelItems) == 0 {
			continue
		}
		group := entity.LevelGroup{
			Level:       level,
			ProcessCode: strings.ToUpper(levelItems[0].ProcessCode),
			Items:       levelItems,
		}
		group.ProcessName = ProcessName(group.ProcessCode)
		if level == 4 {
			group.CrimpGroups = buildCrimpGroups(levelItems)
		}
		levelGroups = append(levelGroups, group)
	}
	return levelGroups
}

func buildCrimpGroups(items []entity.BOMItem) []entity.CrimpGroup {
	crimpMap := make(map[string][]entity.BOMItem)
	for _, item := range items {
		code := item.CrimpCode
		if code == "" {
			code = CrimpUnassigned
		}
		crimpMap[code] = append(crimpMap[code], item)
	}

	crimpGroups := make([]entity.CrimpGroup, 0, len(crimpMap))
	for code, crimpItems := range crimpMap {
		crimpGroups = append(crimpGroups, entity.CrimpGroup{CrimpCode: code, Items: crimpItems})
	}
	sort.Slice(crimpGroups, func(i, j int) bool {
		return crimpGroups[i].CrimpCode < crimpGroups[j].CrimpCode
	})
	return crimpGroups
}

// Package repository define los puertos de persistencia del dominio.
package repository

import "context"

// BlobStore es el puerto de persistencia: un almacén clave-valor que guarda
// cada colección completa serializada en JSON bajo una clave propia. No hay
// persistencia parcial ni log de append; cada escritura reemplaza el blob.
//
// Read devuelve (nil, nil) si la clave no existe: la ausencia no es un error.
type BlobStore interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

// Claves de colección persistidas.
const (
	KeyStocks    = "vietnam_mes_stocks"
	KeyMaterials = "vietnam_mes_materials"
	KeyProducts  = "vietnam_mes_products"
	KeyBOM       = "vietnam_mes_bom"
)

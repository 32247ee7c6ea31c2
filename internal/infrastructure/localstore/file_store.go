// Package localstore implementa el puerto repository.BlobStore sobre
// distintos medios: archivos JSON locales, memoria y Redis.
package localstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore guarda cada colección como <dataDir>/<clave>.json. La escritura
// pasa por un archivo temporal y rename para que un fallo a mitad de
// escritura no deje un blob truncado.
type FileStore struct {
	dataDir string
}

// NewFileStore crea el directorio de datos si no existe.
func NewFileStore(dataDir string) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de datos %s: %w", dataDir, err)
	}
	return &FileStore{dataDir: dataDir}, nil
}

// Read devuelve el blob de la clave, o (nil, nil) si no existe.
func (s *FileStore) Read(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", key, err)
	}
	return data, nil
}

// Write reemplaza el blob completo de la clave de forma atómica. El archivo
// temporal lleva nombre único para que dos escritores sobre el mismo
// directorio no se pisen el borrador.
func (s *FileStore) Write(_ context.Context, key string, data []byte) error {
	target := s.path(key)
	tmp, err := os.CreateTemp(s.dataDir, filepath.Base(target)+".*.tmp")
	if err != nil {
		return fmt.Errorf("escribir %s: %w", key, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("escribir %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("escribir %s: %w", key, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("escribir %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("publicar %s: %w", key, err)
	}
	return nil
}

// Delete elimina el blob; borrar una clave inexistente no es un error.
func (s *FileStore) Delete(_ context.Context, key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("eliminar %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) path(key string) string {
	// Las claves son identificadores internos; se sanea por si alguna
	// llegara con separadores.
	safe := strings.ReplaceAll(key, string(os.PathSeparator), "_")
	return filepath.Join(s.dataDir, safe+".json")
}

package localstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore es un BlobStore respaldado por Redis, para instalaciones donde
// varios puestos de escaneo comparten el mismo estado. Cada colección vive
// en una clave string; no hay TTL.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore conecta a Redis a partir de una URL
// (redis://[:password@]host:port/db) y verifica la conexión con un Ping.
func NewRedisStore(redisURL string) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parsear URL de Redis: %w", err)
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("conectar a Redis: %w", err)
	}
	return &RedisStore{client: client}, nil
}

// Read devuelve el blob de la clave, o (nil, nil) si no existe.
func (s *RedisStore) Read(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", key, err)
	}
	return data, nil
}

// Write reemplaza el blob completo de la clave.
func (s *RedisStore) Write(ctx context.Context, key string, data []byte) error {
	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("escribir %s: %w", key, err)
	}
	return nil
}

// Delete elimina la clave; la ausencia no es un error.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("eliminar %s: %w", key, err)
	}
	return nil
}

// Close cierra la conexión subyacente.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

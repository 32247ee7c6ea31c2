package localstore_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksyee/vietnam-mes-simple/internal/infrastructure/localstore"
)

func TestFileStore_RoundTrip(t *testing.T) {
	store, err := localstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	// Clave ausente: nil sin error
	data, err := store.Read(ctx, "vietnam_mes_stocks")
	require.NoError(t, err)
	assert.Nil(t, data)

	require.NoError(t, store.Write(ctx, "vietnam_mes_stocks", []byte(`[{"id":"1"}]`)))

	data, err = store.Read(ctx, "vietnam_mes_stocks")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1"}]`, string(data))

	require.NoError(t, store.Delete(ctx, "vietnam_mes_stocks"))
	data, err = store.Read(ctx, "vietnam_mes_stocks")
	require.NoError(t, err)
	assert.Nil(t, data, "tras borrar, la clave vuelve a estar ausente")
}

func TestFileStore_CreaElDirectorio(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "anidado", "data")
	_, err := localstore.NewFileStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestFileStore_EscrituraSobrescribeCompleto(t *testing.T) {
	store, err := localstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, "k", []byte(`[1,2,3]`)))
	require.NoError(t, store.Write(ctx, "k", []byte(`[4]`)))

	data, err := store.Read(ctx, "k")
	require.NoError(t, err)
	assert.JSONEq(t, `[4]`, string(data))
}

func TestFileStore_NoDejaTemporalesYSoportaEscritoresConcurrentes(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	// Dos stores sobre el mismo directorio, como dos procesos compartiendo
	// el data dir: cada escritura usa un borrador de nombre único.
	a, err := localstore.NewFileStore(dir)
	require.NoError(t, err)
	b, err := localstore.NewFileStore(dir)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, a.Write(ctx, "k", []byte(`["a"]`)))
		}()
		go func() {
			defer wg.Done()
			assert.NoError(t, b.Write(ctx, "k", []byte(`["b"]`)))
		}()
	}
	wg.Wait()

	// El resultado es una de las dos escrituras completas, nunca una mezcla.
	data, err := a.Read(ctx, "k")
	require.NoError(t, err)
	assert.Contains(t, []string{`["a"]`, `["b"]`}, string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no deben quedar archivos temporales")
	assert.Equal(t, "k.json", entries[0].Name())
}

func TestMemoryStore_CopiasDefensivas(t *testing.T) {
	store := localstore.NewMemoryStore()
	ctx := context.Background()

	src := []byte(`[1]`)
	require.NoError(t, store.Write(ctx, "k", src))
	src[1] = '9' // mutar el slice original no debe afectar lo guardado

	data, err := store.Read(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[1]`, string(data))

	data[1] = '9' // mutar lo leído tampoco
	again, err := store.Read(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[1]`, string(again))
}

func TestMemoryStore_DeleteDeClaveAusenteNoFalla(t *testing.T) {
	store := localstore.NewMemoryStore()
	assert.NoError(t, store.Delete(context.Background(), "nada"))
}

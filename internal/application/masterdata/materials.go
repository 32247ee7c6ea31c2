// Package masterdata contiene las colecciones CRUD de datos maestros
// (materiales, productos, BOM y líneas). Cada colección es dueña de su
// slice en memoria, se hidrata perezosamente desde el BlobStore y
// re-serializa la colección completa tras cada mutación. No se aplica
// integridad referencial entre colecciones.
package masterdata

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/ksyee/vietnam-mes-simple/internal/domain"
	"github.com/ksyee/vietnam-mes-simple/internal/domain/entity"
	"github.com/ksyee/vietnam-mes-simple/internal/domain/repository"
)

const regDateLayout = "2006-01-02"

func today() string { return time.Now().Format(regDateLayout) }

// Materials es la colección maestra de materiales.
type Materials struct {
	mu     sync.Mutex
	store  repository.BlobStore
	items  []entity.Material
	loaded bool
}

// NewMaterials construye la colección sobre el puerto de persistencia.
func NewMaterials(store repository.BlobStore) *Materials {
	return &Materials{store: store}
}

// Add inserta un material. El ID y la fecha de alta del valor de entrada se
// ignoran: el id es max(existentes, 0)+1 y regDate la fecha del día.
func (c *Materials) Add(ctx context.Context, in entity.Material) (*entity.Material, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(ctx); err != nil {
		return nil, err
	}
	in.ID = c.maxID() + 1
	in.RegDate = today()
	c.items = append(c.items, in)
	return &in, c.persist(ctx)
}

// AddMany inserta un lote con un único id inicial calculado una sola vez,
// para que las inserciones intercaladas no pisen ids.
func (c *Materials) AddMany(ctx context.Context, ins []entity.Material) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(ctx); err != nil {
		return 0, err
	}
	startID := c.maxID() + 1
	regDate := today()
	for i, in := range ins {
		in.ID = startID + i
		in.RegDate = regDate
		c.items = append(c.items, in)
	}
	return len(ins), c.persist(ctx)
}

// Update reemplaza el material con el mismo id.
func (c *Materials) Update(ctx context.Context, m entity.Material) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(ctx); err != nil {
		return err
	}
	for i := range c.items {
		if c.items[i].ID == m.ID {
			c.items[i] = m
			return c.persist(ctx)
		}
	}
	return domain.ErrNotFound
}

// Delete elimina el material por id.
func (c *Materials) Delete(ctx context.Context, id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(ctx); err != nil {
		return err
	}
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return c.persist(ctx)
		}
	}
	return domain.ErrNotFound
}

// Reset vacía la colección y devuelve cuántos registros había.
func (c *Materials) Reset(ctx context.Context) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(ctx); err != nil {
		return 0, err
	}
	count := len(c.items)
	c.items = nil
	return count, c.persist(ctx)
}

// List devuelve una copia de todos los materiales.
func (c *Materials) List(ctx context.Context) ([]entity.Material, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(ctx); err != nil {
		return nil, err
	}
	out := make([]entity.Material, len(c.items))
	copy(out, c.items)
	return out, nil
}

// GetByCode busca por código exacto; (nil, nil) si no existe.
func (c *Materials) GetByCode(ctx context.Context, code string) (*entity.Material, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(ctx); err != nil {
		return nil, err
	}
	for i := range c.items {
		if c.items[i].Code == code {
			cp := c.items[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (c *Materials) maxID() int {
	max := 0
	for i := range c.items {
		if c.items[i].ID > max {
			max = c.items[i].ID
		}
	}
	return max
}

func (c *Materials) load(ctx context.Context) error {
	if c.loaded {
		return nil
	}
	data, err := c.store.Read(ctx, repository.KeyMaterials)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &c.items); err != nil {
			return fmt.Errorf("%w: colección de materiales corrupta: %v", domain.ErrStorage, err)
		}
	}
	c.loaded = true
	return nil
}

func (c *Materials) persist(ctx context.Context) error {
	data, err := json.Marshal(c.items)
	if err != nil {
		return fmt.Errorf("%w: serializar materiales: %v", domain.ErrStorage, err)
	}
	if err := c.store.Write(ctx, repository.KeyMaterials, data); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	return nil
}

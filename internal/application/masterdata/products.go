package masterdata

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/ksyee/vietnam-mes-simple/internal/domain"
	"github.com/ksyee/vietnam-mes-simple/internal/domain/entity"
	"github.com/ksyee/vietnam-mes-simple/internal/domain/repository"
)

// Products es la colección maestra de productos (completos y semielaborados).
type Products struct {
	mu     sync.Mutex
	store  repository.BlobStore
	items  []entity.Product
	loaded bool
}

// NewProducts construye la colección sobre el puerto de persistencia.
func NewProducts(store repository.BlobStore) *Products {
	return &Products{store: store}
}

// Add inserta un producto con id autoincremental y regDate del día.
func (c *Products) Add(ctx context.Context, in entity.Product) (*entity.Product, error) {
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

// AddMany inserta un lote con un único id inicial.
func (c *Products) AddMany(ctx context.Context, ins []entity.Product) (int, error) {
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

// Update reemplaza el producto con el mismo id.
func (c *Products) Update(ctx context.Context, p entity.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(ctx); err != nil {
		return err
	}
	for i := range c.items {
		if c.items[i].ID == p.ID {
			c.items[i] = p
			return c.persist(ctx)
		}
	}
	return domain.ErrNotFound
}

// Delete elimina el producto por id.
func (c *Products) Delete(ctx context.Context, id int) error {
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
func (c *Products) Reset(ctx context.Context) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(ctx); err != nil {
		return 0, err
	}
	count := len(c.items)
	c.items = nil
	return count, c.persist(ctx)
}

// List devuelve una copia de todos los productos.
func (c *Products) List(ctx context.Context) ([]entity.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(ctx); err != nil {
		return nil, err
	}
	out := make([]entity.Product, len(c.items))
	copy(out, c.items)
	return out, nil
}

// GetByCode busca por código exacto; (nil, nil) si no existe.
func (c *Products) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
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

func (c *Products) maxID() int {
	max := 0
	for i := range c.items {
		if c.items[i].ID > max {
			max = c.items[i].ID
		}
	}
	return max
}

func (c *Products) load(ctx context.Context) error {
	if c.loaded {
		return nil
	}
	data, err := c.store.Read(ctx, repository.KeyProducts)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &c.items); err != nil {
			return fmt.Errorf("%w: colección de productos corrupta: %v", domain.ErrStorage, err)
		}
	}
	c.loaded = true
	return nil
}

func (c *Products) persist(ctx context.Context) error {
	data, err := json.Marshal(c.items)
	if err != nil {
		return fmt.Errorf("%w: serializar productos: %v", domain.ErrStorage, err)
	}
	if err := c.store.Write(ctx, repository.KeyProducts, data); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	return nil
}

package masterdata

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/ksyee/vietnam-mes-simple/internal/domain"
	"github.com/ksyee/vietnam-mes-simple/internal/domain/bom"
	"github.com/ksyee/vietnam-mes-simple/internal/domain/entity"
	"github.com/ksyee/vietnam-mes-simple/internal/domain/repository"
)

// BOMItems es la colección de filas BOM. Además del CRUD deriva el nivel de
// cada fila a partir de su processCode al insertar, y mantiene la vista
// agrupada producto → nivel → crimpado, recomputada cuando la colección
// cambia (caché con bandera de invalidación).
type BOMItems struct {
	mu     sync.Mutex
	store  repository.BlobStore
	items  []entity.BOMItem
	loaded bool

	groups      []entity.BOMGroup
	groupsDirty bool
}

// NewBOMItems construye la colección sobre el puerto de persistencia.
func NewBOMItems(store repository.BlobStore) *BOMItems {
	return &BOMItems{store: store, groupsDirty: true}
}

// Add inserta una fila BOM; el nivel se deriva del processCode.
func (c *BOMItems) Add(ctx context.Context, in entity.BOMItem) (*entity.BOMItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(ctx); err != nil {
		return nil, err
	}
	in.ID = c.maxID() + 1
	in.RegDate = today()
	in.Level = bom.DetermineLevel(in.ProcessCode)
	c.items = append(c.items, in)
	c.groupsDirty = true
	return &in, c.persist(ctx)
}

// AddMany inserta un lote de filas con un único id inicial, derivando el
// nivel de cada una.
func (c *BOMItems) AddMany(ctx context.Context, ins []entity.BOMItem) (int, error) {
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
		in.Level = bom.DetermineLevel(in.ProcessCode)
		c.items = append(c.items, in)
	}
	c.groupsDirty = true
	return len(ins), c.persist(ctx)
}

// Update reemplaza la fila con el mismo id, re-derivando su nivel.
func (c *BOMItems) Update(ctx context.Context, item entity.BOMItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(ctx); err != nil {
		return err
	}
	for i := range c.items {
		if c.items[i].ID == item.ID {
			item.Level = bom.DetermineLevel(item.ProcessCode)
			c.items[i] = item
			c.groupsDirty = true
			return c.persist(ctx)
		}
	}
	return domain.ErrNotFound
}

// Delete elimina la fila por id.
func (c *BOMItems) Delete(ctx context.Context, id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(ctx); err != nil {
		return err
	}
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.groupsDirty = true
			return c.persist(ctx)
		}
	}
	return domain.ErrNotFound
}

// DeleteByProduct elimina todas las filas del producto y devuelve cuántas
// había.
func (c *BOMItems) DeleteByProduct(ctx context.Context, productCode string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(ctx); err != nil {
		return 0, err
	}
	kept := c.items[:0]
	removed := 0
	for _, item := range c.items {
		if item.ProductCode == productCode {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	c.items = kept
	if removed == 0 {
		return 0, nil
	}
	c.groupsDirty = true
	return removed, c.persist(ctx)
}

// ItemsByProduct devuelve las filas del producto.
func (c *BOMItems) ItemsByProduct(ctx context.Context, productCode string) ([]entity.BOMItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(ctx); err != nil {
		return nil, err
	}
	out := make([]entity.BOMItem, 0)
	for _, item := range c.items {
		if item.ProductCode == productCode {
			out = append(out, item)
		}
	}
	return out, nil
}

// Reset vacía la colección y devuelve cuántos registros había.
func (c *BOMItems) Reset(ctx context.Context) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(ctx); err != nil {
		return 0, err
	}
	count := len(c.items)
	c.items = nil
	c.groupsDirty = true
	return count, c.persist(ctx)
}

// List devuelve una copia de todas las filas BOM.
func (c *BOMItems) List(ctx context.Context) ([]entity.BOMItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(ctx); err != nil {
		return nil, err
	}
	out := make([]entity.BOMItem, len(c.items))
	copy(out, c.items)
	return out, nil
}

// Groups devuelve la vista agrupada, recomputándola solo si la colección
// cambió desde la última consulta.
func (c *BOMItems) Groups(ctx context.Context) ([]entity.BOMGroup, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(ctx); err != nil {
		return nil, err
	}
	if c.groupsDirty {
		c.groups = bom.GroupItems(c.items)
		c.groupsDirty = false
	}
	return c.groups, nil
}

func (c *BOMItems) maxID() int {
	max := 0
	for i := range c.items {
		if c.items[i].ID > max {
			max = c.items[i].ID
		}
	}
	return max
}

func (c *BOMItems) load(ctx context.Context) error {
	if c.loaded {
		return nil
	}
	data, err := c.store.Read(ctx, repository.KeyBOM)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &c.items); err != nil {
			return fmt.Errorf("%w: colección BOM corrupta: %v", domain.ErrStorage, err)
		}
	}
	c.loaded = true
	return nil
}

func (c *BOMItems) persist(ctx context.Context) error {
	data, err := json.Marshal(c.items)
	if err != nil {
		return fmt.Errorf("%w: serializar BOM: %v", domain.ErrStorage, err)
	}
	if err := c.store.Write(ctx, repository.KeyBOM, data); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	return nil
}

// Package stock implementa el ledger de stock de materiales por proceso:
// registro de LOTs escaneados, consumo FIFO determinista y consultas de
// estado para las pantallas de escaneo y los reportes.
package stock

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ksyee/vietnam-mes-simple/internal/domain"
	"github.com/ksyee/vietnam-mes-simple/internal/domain/entity"
	"github.com/ksyee/vietnam-mes-simple/internal/domain/repository"
)

// Ledger es el dueño de la colección de StockLot. Un único mutex garantiza
// que registro y consumo observan un snapshot consistente y aplican su
// mutación de forma atómica entre sí; cada mutación re-serializa la
// colección completa en el BlobStore bajo repository.KeyStocks.
//
// La colección se hidrata de forma perezosa en la primera operación.
type Ledger struct {
	mu     sync.Mutex
	store  repository.BlobStore
	lots   []*entity.StockLot
	loaded bool
}

// NewLedger construye el ledger sobre el puerto de persistencia.
func NewLedger(store repository.BlobStore) *Ledger {
	return &Ledger{store: store}
}

// RegisterInput es la entrada de un escaneo de recepción en proceso.
// ReceivedAt en cero usa el instante del registro; un valor explícito
// permite cargar recepciones históricas manteniendo el orden FIFO.
type RegisterInput struct {
	ProcessCode  string
	MaterialID   int
	MaterialCode string
	MaterialName string
	LotNumber    string
	Quantity     decimal.Decimal
	ReceivedAt   time.Time
}

// RegisterResult devuelve el LOT resultante y si el escaneo creó un
// registro nuevo o acumuló sobre uno existente.
type RegisterResult struct {
	Lot        entity.StockLot
	IsNewEntry bool
}

// LotUsage es una línea de auditoría del consumo: cuánto se drenó de cada
// LOT, en orden de encuentro.
type LotUsage struct {
	LotNumber string          `json:"lotNumber"`
	UsedQty   decimal.Decimal `json:"usedQty"`
}

// ConsumeResult resume un consumo FIFO.
type ConsumeResult struct {
	DeductedQty decimal.Decimal `json:"deductedQty"`
	Lots        []LotUsage      `json:"lots"`
}

// StatusResult describe el estado de un LOT ante un nuevo escaneo.
type StatusResult struct {
	Exists       bool            `json:"exists"`
	AvailableQty decimal.Decimal `json:"availableQty"`
	UsedQty      decimal.Decimal `json:"usedQty"`
	IsExhausted  bool            `json:"isExhausted"`
	CanRegister  bool            `json:"canRegister"`
}

// ListOptions filtra ListByProcess. Por defecto se ocultan los LOTs con
// disponible 0; MaterialCode filtra por subcadena del código de material.
type ListOptions struct {
	ShowZero     bool
	MaterialCode string
}

// Summary agrega el stock de un proceso, incluidos los LOTs agotados.
type Summary struct {
	TotalLots      int             `json:"totalLots"`
	TotalQuantity  decimal.Decimal `json:"totalQuantity"`
	TotalUsed      decimal.Decimal `json:"totalUsed"`
	TotalAvailable decimal.Decimal `json:"totalAvailable"`
	MaterialCount  int             `json:"materialCount"`
}

// Register registra un escaneo de material en un proceso.
//
//   - LOT nuevo en el proceso: crea el registro (IsNewEntry=true).
//   - LOT existente con disponible > 0: acumula la cantidad sobre el mismo
//     registro (IsNewEntry=false); una cantidad 0 es una acumulación inerte
//     pero legal.
//   - LOT agotado (disponible 0 y usado > 0): falla con ErrLotExhausted sea
//     cual sea la cantidad pedida; es la protección anti doble escaneo.
//
// Si la mutación se aplicó pero la persistencia falló, el resultado sigue
// siendo válido y el error envuelve ErrStorage: el estado en memoria manda
// y el snapshot persistido puede quedar rezagado.
func (l *Ledger) Register(ctx context.Context, in RegisterInput) (*RegisterResult, error) {
	if in.ProcessCode == "" {
		return nil, domain.ErrProcessRequired
	}
	if in.LotNumber == "" {
		return nil, domain.ErrLotRequired
	}
	if in.Quantity.IsNegative() {
		return nil, domain.ErrInvalidQuantity
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.load(ctx); err != nil {
		return nil, err
	}

	lot := l.findLot(in.ProcessCode, in.LotNumber)
	if lot != nil {
		if lot.IsExhausted() {
			return nil, domain.ErrLotExhausted
		}
		lot.Quantity = lot.Quantity.Add(in.Quantity)
		lot.Recompute()
		res := &RegisterResult{Lot: *lot, IsNewEntry: false}
		return res, l.persist(ctx)
	}

	receivedAt := in.ReceivedAt
	if receivedAt.IsZero() {
		receivedAt = time.Now()
	}
	lot = &entity.StockLot{
		ID:           uuid.New().String(),
		ProcessCode:  in.ProcessCode,
		MaterialID:   in.MaterialID,
		MaterialCode: in.MaterialCode,
		MaterialName: in.MaterialName,
		LotNumber:    in.LotNumber,
		Quantity:     in.Quantity,
		UsedQty:      decimal.Zero,
		ReceivedAt:   receivedAt,
	}
	lot.Recompute()
	l.lots = append(l.lots, lot)
	res := &RegisterResult{Lot: *lot, IsNewEntry: true}
	return res, l.persist(ctx)
}

// Consume drena requestedQty del material en el proceso indicado, LOT más
// antiguo primero (ReceivedAt ascendente; a igual instante, orden de
// registro). Si el disponible total no alcanza, deduce lo alcanzable y lo
// informa en DeductedQty: el sobre-consumo no es un error y nunca genera
// stock negativo en esta ruta. El proceso es obligatorio: los registros
// legados sin proceso solo se drenan por ConsumeFIFOAllowNegative.
func (l *Ledger) Consume(ctx context.Context, processCode string, materialID int, requestedQty decimal.Decimal) (*ConsumeResult, error) {
	if processCode == "" {
		return nil, domain.ErrProcessRequired
	}
	if requestedQty.IsNegative() {
		return nil, domain.ErrInvalidQuantity
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.load(ctx); err != nil {
		return nil, err
	}

	candidates := l.fifoCandidates(processCode, materialID)

	res := &ConsumeResult{DeductedQty: decimal.Zero, Lots: []LotUsage{}}
	remaining := requestedQty
	for _, lot := range candidates {
		if !remaining.IsPositive() {
			break
		}
		drain := decimal.Min(lot.AvailableQty, remaining)
		lot.UsedQty = lot.UsedQty.Add(drain)
		lot.Recompute()
		res.Lots = append(res.Lots, LotUsage{LotNumber: lot.LotNumber, UsedQty: drain})
		remaining = remaining.Sub(drain)
	}
	res.DeductedQty = requestedQty.Sub(remaining)

	if res.DeductedQty.IsPositive() {
		return res, l.persist(ctx)
	}
	return res, nil
}

// GetByLot busca un LOT por (proceso, número de LOT) exactos; devuelve
// (nil, nil) si no existe.
func (l *Ledger) GetByLot(ctx context.Context, processCode, lotNumber string) (*entity.StockLot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.load(ctx); err != nil {
		return nil, err
	}
	lot := l.findLot(processCode, lotNumber)
	if lot == nil {
		return nil, nil
	}
	cp := *lot
	return &cp, nil
}

// LotExists indica si el LOT ya existe en el proceso.
func (l *Ledger) LotExists(ctx context.Context, processCode, lotNumber string) (bool, error) {
	lot, err := l.GetByLot(ctx, processCode, lotNumber)
	return lot != nil, err
}

// CheckStatus evalúa un LOT ante un nuevo escaneo: existe, cuánto queda y
// si admite más registros. Solo un LOT totalmente drenado (agotado) bloquea
// el registro; un LOT inexistente o con disponible restante siempre puede
// registrarse.
func (l *Ledger) CheckStatus(ctx context.Context, processCode, lotNumber string) (*StatusResult, error) {
	lot, err := l.GetByLot(ctx, processCode, lotNumber)
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return &StatusResult{
			Exists:       false,
			AvailableQty: decimal.Zero,
			UsedQty:      decimal.Zero,
			IsExhausted:  false,
			CanRegister:  true,
		}, nil
	}
	exhausted := lot.IsExhausted()
	return &StatusResult{
		Exists:       true,
		AvailableQty: lot.AvailableQty,
		UsedQty:      lot.UsedQty,
		IsExhausted:  exhausted,
		CanRegister:  !exhausted,
	}, nil
}

// ListByProcess devuelve los LOTs del proceso. Por defecto oculta los de
// disponible 0; opts.MaterialCode filtra por subcadena.
func (l *Ledger) ListByProcess(ctx context.Context, processCode string, opts ListOptions) ([]entity.StockLot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.load(ctx); err != nil {
		return nil, err
	}
	out := make([]entity.StockLot, 0)
	for _, lot := range l.lots {
		if lot.ProcessCode != processCode {
			continue
		}
		if !opts.ShowZero && lot.AvailableQty.IsZero() {
			continue
		}
		if opts.MaterialCode != "" && !strings.Contains(lot.MaterialCode, opts.MaterialCode) {
			continue
		}
		out = append(out, *lot)
	}
	return out, nil
}

// GetSummary agrega todos los LOTs del proceso, incluidos los agotados.
// Un proceso sin registros devuelve todo en cero, no un error.
func (l *Ledger) GetSummary(ctx context.Context, processCode string) (*Summary, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.load(ctx); err != nil {
		return nil, err
	}
	sum := &Summary{
		TotalQuantity:  decimal.Zero,
		TotalUsed:      decimal.Zero,
		TotalAvailable: decimal.Zero,
	}
	materials := make(map[int]struct{})
	for _, lot := range l.lots {
		if lot.ProcessCode != processCode {
			continue
		}
		sum.TotalLots++
		sum.TotalQuantity = sum.TotalQuantity.Add(lot.Quantity)
		sum.TotalUsed = sum.TotalUsed.Add(lot.UsedQty)
		sum.TotalAvailable = sum.TotalAvailable.Add(lot.AvailableQty)
		materials[lot.MaterialID] = struct{}{}
	}
	sum.MaterialCount = len(materials)
	return sum, nil
}

// AvailableQty suma el disponible del material en el proceso.
func (l *Ledger) AvailableQty(ctx context.Context, processCode string, materialID int) (decimal.Decimal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.load(ctx); err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, lot := range l.lots {
		if lot.ProcessCode == processCode && lot.MaterialID == materialID {
			total = total.Add(lot.AvailableQty)
		}
	}
	return total, nil
}

// TodayReceivings devuelve los LOTs registrados en el día calendario en
// curso. processCode vacío devuelve los de todos los procesos, incluidos
// los registros legados sin proceso.
func (l *Ledger) TodayReceivings(ctx context.Context, processCode string) ([]entity.StockLot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.load(ctx); err != nil {
		return nil, err
	}
	now := time.Now()
	out := make([]entity.StockLot, 0)
	for _, lot := range l.lots {
		if processCode != "" && lot.ProcessCode != processCode {
			continue
		}
		if sameDay(lot.ReceivedAt, now) {
			out = append(out, *lot)
		}
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Superficie legada sin proceso (recepción general de almacén)
// ─────────────────────────────────────────────────────────────────────────────

// ReceiveInput es la entrada de la ruta de recepción legada, sin proceso.
type ReceiveInput struct {
	MaterialID   int
	MaterialCode string
	MaterialName string
	LotNumber    string
	Quantity     decimal.Decimal
	ReceivedAt   time.Time
}

// Receive registra una recepción sin proceso. El registro queda con
// processCode ausente y es independiente de cualquier LOT con proceso que
// comparta número. La semántica de acumulación y la protección de LOT
// agotado son las mismas que en Register.
func (l *Ledger) Receive(ctx context.Context, in ReceiveInput) (*RegisterResult, error) {
	if in.LotNumber == "" {
		return nil, domain.ErrLotRequired
	}
	if in.Quantity.IsNegative() {
		return nil, domain.ErrInvalidQuantity
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.load(ctx); err != nil {
		return nil, err
	}

	lot := l.findLot("", in.LotNumber)
	if lot != nil {
		if lot.IsExhausted() {
			return nil, domain.ErrLotExhausted
		}
		lot.Quantity = lot.Quantity.Add(in.Quantity)
		lot.Recompute()
		res := &RegisterResult{Lot: *lot, IsNewEntry: false}
		return res, l.persist(ctx)
	}

	receivedAt := in.ReceivedAt
	if receivedAt.IsZero() {
		receivedAt = time.Now()
	}
	lot = &entity.StockLot{
		ID:           uuid.New().String(),
		MaterialID:   in.MaterialID,
		MaterialCode: in.MaterialCode,
		MaterialName: in.MaterialName,
		LotNumber:    in.LotNumber,
		Quantity:     in.Quantity,
		UsedQty:      decimal.Zero,
		ReceivedAt:   receivedAt,
	}
	lot.Recompute()
	l.lots = append(l.lots, lot)
	res := &RegisterResult{Lot: *lot, IsNewEntry: true}
	return res, l.persist(ctx)
}

// All devuelve todos los LOTs de la colección, con y sin proceso.
func (l *Ledger) All(ctx context.Context) ([]entity.StockLot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.load(ctx); err != nil {
		return nil, err
	}
	out := make([]entity.StockLot, 0, len(l.lots))
	for _, lot := range l.lots {
		out = append(out, *lot)
	}
	return out, nil
}

// ConsumeFIFOAllowNegative drena FIFO los registros legados (sin proceso)
// del material y, a diferencia de Consume, satisface el pedido completo:
// el faltante se carga al último LOT del material dejando su disponible en
// negativo. Con ningún LOT del material la deducción es 0.
func (l *Ledger) ConsumeFIFOAllowNegative(ctx context.Context, materialID int, requestedQty decimal.Decimal) (*ConsumeResult, error) {
	if requestedQty.IsNegative() {
		return nil, domain.ErrInvalidQuantity
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.load(ctx); err != nil {
		return nil, err
	}

	res := &ConsumeResult{DeductedQty: decimal.Zero, Lots: []LotUsage{}}
	remaining := requestedQty
	for _, lot := range l.fifoCandidates("", materialID) {
		if !remaining.IsPositive() {
			break
		}
		drain := decimal.Min(lot.AvailableQty, remaining)
		lot.UsedQty = lot.UsedQty.Add(drain)
		lot.Recompute()
		res.Lots = append(res.Lots, LotUsage{LotNumber: lot.LotNumber, UsedQty: drain})
		remaining = remaining.Sub(drain)
	}

	if remaining.IsPositive() {
		if last := l.lastLot("", materialID); last != nil {
			last.UsedQty = last.UsedQty.Add(remaining)
			last.Recompute()
			res.Lots = appendUsage(res.Lots, last.LotNumber, remaining)
			remaining = decimal.Zero
		}
	}
	res.DeductedQty = requestedQty.Sub(remaining)

	if res.DeductedQty.IsPositive() {
		return res, l.persist(ctx)
	}
	return res, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Internos
// ─────────────────────────────────────────────────────────────────────────────

// load hidrata la colección desde el BlobStore una sola vez.
func (l *Ledger) load(ctx context.Context) error {
	if l.loaded {
		return nil
	}
	data, err := l.store.Read(ctx, repository.KeyStocks)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	if len(data) > 0 {
		var lots []*entity.StockLot
		if err := json.Unmarshal(data, &lots); err != nil {
			return fmt.Errorf("%w: colección de stock corrupta: %v", domain.ErrStorage, err)
		}
		l.lots = lots
	}
	l.loaded = true
	return nil
}

// persist re-serializa la colección completa. Un fallo aquí no revierte la
// mutación en memoria: el snapshot persistido queda rezagado.
func (l *Ledger) persist(ctx context.Context) error {
	data, err := json.Marshal(l.lots)
	if err != nil {
		return fmt.Errorf("%w: serializar stock: %v", domain.ErrStorage, err)
	}
	if err := l.store.Write(ctx, repository.KeyStocks, data); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	return nil
}

func (l *Ledger) findLot(processCode, lotNumber string) *entity.StockLot {
	for _, lot := range l.lots {
		if lot.ProcessCode == processCode && lot.LotNumber == lotNumber {
			return lot
		}
	}
	return nil
}

// fifoCandidates devuelve los LOTs con disponible > 0 del material en el
// proceso, por ReceivedAt ascendente. El orden de registro desempata los
// instantes iguales (sort estable sobre el orden de inserción).
func (l *Ledger) fifoCandidates(processCode string, materialID int) []*entity.StockLot {
	candidates := make([]*entity.StockLot, 0)
	for _, lot := range l.lots {
		if lot.ProcessCode == processCode && lot.MaterialID == materialID && lot.AvailableQty.IsPositive() {
			candidates = append(candidates, lot)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].ReceivedAt.Before(candidates[j].ReceivedAt)
	})
	return candidates
}

// lastLot devuelve el LOT más reciente del material (por ReceivedAt, con el
// orden de registro como desempate), exista o no disponible.
func (l *Ledger) lastLot(processCode string, materialID int) *entity.StockLot {
	all := make([]*entity.StockLot, 0)
	for _, lot := range l.lots {
		if lot.ProcessCode == processCode && lot.MaterialID == materialID {
			all = append(all, lot)
		}
	}
	if len(all) == 0 {
		return nil
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].ReceivedAt.Before(all[j].ReceivedAt)
	})
	return all[len(all)-1]
}

func appendUsage(usages []LotUsage, lotNumber string, qty decimal.Decimal) []LotUsage {
	for i := range usages {
		if usages[i].LotNumber == lotNumber {
			usages[i].UsedQty = usages[i].UsedQty.Add(qty)
			return usages
		}
	}
	return append(usages, LotUsage{LotNumber: lotNumber, UsedQty: qty})
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Package inmemory holds stateful test doubles for the repositories. Unlike the mockery
// mocks they keep data between calls, so several application services can be driven
// against one store and the resulting ledger checked as a whole.
package inmemory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory-service/model"
	movementrepo "github.com/muhammadheryan/inventory-service/repository/movement"
)

// Ledger implements the tx, stock and movement repositories. ForUpdate reads block until
// the holding transaction ends, like InnoDB row locks. Counter writes are undone and
// pending movements dropped on rollback; movements become visible on commit.
type Ledger struct {
	mu        sync.Mutex
	levels    map[model.StockKey]*model.StockLevel
	rows      map[model.StockKey]*sync.Mutex
	held      map[*sqlx.Tx]map[model.StockKey]*sync.Mutex
	undo      map[*sqlx.Tx][]func()
	pending   map[*sqlx.Tx][]model.Movement
	movements []model.Movement
	nextID    uint64
}

func NewLedger(levels ...model.StockLevel) *Ledger {
	l := &Ledger{
		levels:  make(map[model.StockKey]*model.StockLevel),
		rows:    make(map[model.StockKey]*sync.Mutex),
		held:    make(map[*sqlx.Tx]map[model.StockKey]*sync.Mutex),
		undo:    make(map[*sqlx.Tx][]func()),
		pending: make(map[*sqlx.Tx][]model.Movement),
	}
	for i := range levels {
		level := levels[i]
		l.levels[keyOf(level.VariantID, level.WarehouseID)] = &level
	}
	return l
}

func keyOf(variantID, warehouseID uint64) model.StockKey {
	return model.StockKey{VariantID: variantID, WarehouseID: warehouseID}
}

func (l *Ledger) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	return &sqlx.Tx{}, nil
}

func (l *Ledger) CommitTx(tx *sqlx.Tx) error {
	l.mu.Lock()
	for _, m := range l.pending[tx] {
		l.nextID++
		m.ID = l.nextID
		l.movements = append(l.movements, m)
	}
	delete(l.pending, tx)
	delete(l.undo, tx)
	l.mu.Unlock()

	l.unlockAll(tx)
	return nil
}

func (l *Ledger) RollbackTx(tx *sqlx.Tx) error {
	l.mu.Lock()
	undo := l.undo[tx]
	for i := len(undo) - 1; i >= 0; i-- {
		undo[i]()
	}
	delete(l.pending, tx)
	delete(l.undo, tx)
	l.mu.Unlock()

	l.unlockAll(tx)
	return nil
}

func (l *Ledger) unlockAll(tx *sqlx.Tx) {
	l.mu.Lock()
	held := l.held[tx]
	delete(l.held, tx)
	l.mu.Unlock()
	for _, m := range held {
		m.Unlock()
	}
}

// lock is re-entrant per transaction.
func (l *Ledger) lock(tx *sqlx.Tx, key model.StockKey) {
	l.mu.Lock()
	if _, ok := l.held[tx][key]; ok {
		l.mu.Unlock()
		return
	}
	row, ok := l.rows[key]
	if !ok {
		row = &sync.Mutex{}
		l.rows[key] = row
	}
	l.mu.Unlock()

	row.Lock()

	l.mu.Lock()
	if l.held[tx] == nil {
		l.held[tx] = make(map[model.StockKey]*sync.Mutex)
	}
	l.held[tx][key] = row
	l.mu.Unlock()
}

// Level returns a copy of the committed-or-locked row, or nil.
func (l *Ledger) Level(variantID, warehouseID uint64) *model.StockLevel {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshotLocked(keyOf(variantID, warehouseID))
}

func (l *Ledger) snapshotLocked(key model.StockKey) *model.StockLevel {
	level, ok := l.levels[key]
	if !ok {
		return nil
	}
	cp := *level
	return &cp
}

// Movements returns the committed movements for a key in insertion order.
func (l *Ledger) Movements(variantID, warehouseID uint64) []model.Movement {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]model.Movement, 0)
	for _, m := range l.movements {
		if m.VariantID == variantID && m.WarehouseID == warehouseID {
			out = append(out, m)
		}
	}
	return out
}

func (l *Ledger) GetOrCreateForUpdateTx(ctx context.Context, tx *sqlx.Tx, variantID, warehouseID uint64) (*model.StockLevel, error) {
	key := keyOf(variantID, warehouseID)
	l.lock(tx, key)

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.levels[key]; !ok {
		l.levels[key] = &model.StockLevel{VariantID: variantID, WarehouseID: warehouseID}
		l.undo[tx] = append(l.undo[tx], func() { delete(l.levels, key) })
	}
	return l.snapshotLocked(key), nil
}

func (l *Ledger) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, variantID, warehouseID uint64) (*model.StockLevel, error) {
	key := keyOf(variantID, warehouseID)
	l.lock(tx, key)

	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshotLocked(key), nil
}

func (l *Ledger) ApplyDeltaTx(ctx context.Context, tx *sqlx.Tx, variantID, warehouseID uint64, onHandDelta, reservedDelta int64) (*model.StockLevel, error) {
	key := keyOf(variantID, warehouseID)

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.held[tx][key]; !ok {
		return nil, fmt.Errorf("stock level %d/%d is not locked by this transaction", variantID, warehouseID)
	}
	level, ok := l.levels[key]
	if !ok {
		return nil, fmt.Errorf("stock level %d/%d not found", variantID, warehouseID)
	}
	level.OnHand += onHandDelta
	level.Reserved += reservedDelta
	level.Version++
	l.undo[tx] = append(l.undo[tx], func() {
		level.OnHand -= onHandDelta
		level.Reserved -= reservedDelta
		level.Version--
	})
	return l.snapshotLocked(key), nil
}

func (l *Ledger) Get(ctx context.Context, variantID, warehouseID uint64) (*model.StockLevel, error) {
	return l.Level(variantID, warehouseID), nil
}

func (l *Ledger) ListByVariant(ctx context.Context, variantID uint64) ([]model.StockLevel, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]model.StockLevel, 0)
	for key, level := range l.levels {
		if key.VariantID == variantID {
			out = append(out, *level)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WarehouseID < out[j].WarehouseID })
	return out, nil
}

func (l *Ledger) CountByWarehouseTx(ctx context.Context, tx *sqlx.Tx, warehouseID uint64) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var n int64
	for key := range l.levels {
		if key.WarehouseID == warehouseID {
			n++
		}
	}
	return n, nil
}

func (l *Ledger) SumReservedByWarehouseTx(ctx context.Context, tx *sqlx.Tx, warehouseID uint64) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var sum int64
	for key, level := range l.levels {
		if key.WarehouseID == warehouseID {
			sum += level.Reserved
		}
	}
	return sum, nil
}

// InsertTx applies the same movement type rules as the SQL repository.
func (l *Ledger) InsertTx(ctx context.Context, tx *sqlx.Tx, m *model.Movement) (uint64, error) {
	if !m.MovementType.Valid() {
		return 0, movementrepo.ErrUnknownMovementType
	}
	if !m.MovementType.MovesOnHand() && m.QtyChange != 0 {
		return 0, movementrepo.ErrHoldMovesOnHand
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.pending[tx] = append(l.pending[tx], *m)
	return uint64(len(l.movements) + len(l.pending[tx])), nil
}

func (l *Ledger) List(ctx context.Context, filter *model.MovementFilter) ([]model.Movement, int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	matched := make([]model.Movement, 0)
	for i := len(l.movements) - 1; i >= 0; i-- {
		m := l.movements[i]
		if filter.VariantID != 0 && m.VariantID != filter.VariantID {
			continue
		}
		if filter.WarehouseID != 0 && m.WarehouseID != filter.WarehouseID {
			continue
		}
		if filter.ReferenceType != "" {
			if m.Reference == nil || string(m.Reference.Kind) != filter.ReferenceType {
				continue
			}
			if filter.ReferenceID != 0 && m.Reference.ID != filter.ReferenceID {
				continue
			}
		}
		matched = append(matched, m)
	}

	total := int64(len(matched))
	start := (filter.Page - 1) * filter.PerPage
	if start < 0 || start >= len(matched) {
		return []model.Movement{}, total, nil
	}
	end := start + filter.PerPage
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (l *Ledger) SumQtyChange(ctx context.Context, variantID, warehouseID uint64) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var sum int64
	for _, m := range l.movements {
		if m.VariantID == variantID && m.WarehouseID == warehouseID {
			sum += m.QtyChange
		}
	}
	return sum, nil
}

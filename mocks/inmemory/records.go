package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory-service/model"
)

// Transfers implements the transfer repository. Writes apply immediately and are not
// undone on rollback; the services only write a transfer after every check has passed.
type Transfers struct {
	mu        sync.Mutex
	transfers map[uint64]*model.Transfer
	nextID    uint64
	nextItem  uint64
}

func NewTransfers() *Transfers {
	return &Transfers{transfers: make(map[uint64]*model.Transfer)}
}

func (r *Transfers) InsertTx(ctx context.Context, tx *sqlx.Tx, t *model.Transfer) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	t.ID = r.nextID
	t.CreatedAt = time.Now().UTC()
	cp := *t
	cp.Items = nil
	r.transfers[t.ID] = &cp
	return t.ID, nil
}

func (r *Transfers) InsertItemsTx(ctx context.Context, tx *sqlx.Tx, transferID uint64, items []model.TransferItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := r.transfers[transferID]
	for i := range items {
		r.nextItem++
		items[i].ID = r.nextItem
		items[i].TransferID = transferID
		if t != nil {
			t.Items = append(t.Items, items[i])
		}
	}
	return nil
}

func (r *Transfers) DeleteItemsTx(ctx context.Context, tx *sqlx.Tx, transferID uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t := r.transfers[transferID]; t != nil {
		t.Items = nil
	}
	return nil
}

func (r *Transfers) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.Transfer, error) {
	return r.GetByID(ctx, id)
}

// UpdateTx stores the header fields; items are managed by InsertItemsTx and DeleteItemsTx.
func (r *Transfers) UpdateTx(ctx context.Context, tx *sqlx.Tx, t *model.Transfer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.transfers[t.ID]
	if !ok {
		return nil
	}
	items := stored.Items
	cp := *t
	cp.Items = items
	r.transfers[t.ID] = &cp
	return nil
}

func (r *Transfers) GetByID(ctx context.Context, id uint64) (*model.Transfer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.transfers[id]
	if !ok {
		return nil, nil
	}
	return copyTransfer(t), nil
}

func (r *Transfers) List(ctx context.Context, filter *model.TransferFilter) ([]model.Transfer, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Transfer, 0, len(r.transfers))
	for _, t := range r.transfers {
		if filter.Status != "" && string(t.Status) != filter.Status {
			continue
		}
		cp := *t
		cp.Items = nil
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, int64(len(out)), nil
}

func copyTransfer(t *model.Transfer) *model.Transfer {
	cp := *t
	cp.Items = append([]model.TransferItem{}, t.Items...)
	return &cp
}

// Adjustments implements the adjustment repository.
type Adjustments struct {
	mu          sync.Mutex
	adjustments map[uint64]model.Adjustment
	nextID      uint64
}

func NewAdjustments() *Adjustments {
	return &Adjustments{adjustments: make(map[uint64]model.Adjustment)}
}

func (r *Adjustments) InsertTx(ctx context.Context, tx *sqlx.Tx, adj *model.Adjustment) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	adj.ID = r.nextID
	r.adjustments[adj.ID] = *adj
	return adj.ID, nil
}

func (r *Adjustments) GetByID(ctx context.Context, id uint64) (*model.Adjustment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	adj, ok := r.adjustments[id]
	if !ok {
		return nil, nil
	}
	return &adj, nil
}

package model_test

import (
	"testing"

	"github.com/muhammadheryan/inventory-service/constant"
	"github.com/muhammadheryan/inventory-service/model"
	"github.com/stretchr/testify/assert"
)

func TestParseReference(t *testing.T) {
	tests := []struct {
		name   string
		kind   string
		id     uint64
		want   model.Reference
		wantOK bool
	}{
		{name: "no reference", wantOK: true},
		{name: "order", kind: "order", id: 9, want: model.Reference{Kind: constant.ReferenceOrder, ID: 9}, wantOK: true},
		{name: "transfer", kind: "transfer", id: 3, want: model.Reference{Kind: constant.ReferenceTransfer, ID: 3}, wantOK: true},
		{name: "kind without id", kind: "order"},
		{name: "id without kind", id: 9},
		{name: "unknown kind", kind: "invoice", id: 9},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, ok := model.ParseReference(tt.kind, tt.id)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		page, perPage         int
		wantPage, wantPerPage int
	}{
		{0, 0, 1, model.DefaultPerPage},
		{-3, 20, 1, 20},
		{4, 1000, 4, model.MaxPerPage},
		{2, model.MaxPerPage, 2, model.MaxPerPage},
	}
	for _, tt := range tests {
		page, perPage := model.Paginate(tt.page, tt.perPage)
		assert.Equal(t, tt.wantPage, page)
		assert.Equal(t, tt.wantPerPage, perPage)
	}
}

func TestStockLevel(t *testing.T) {
	tests := []struct {
		name          string
		level         model.StockLevel
		wantAvailable int64
		wantReorder   bool
	}{
		{name: "healthy", level: model.StockLevel{OnHand: 20, Reserved: 5, ReorderPoint: 10}, wantAvailable: 15},
		{name: "at reorder point", level: model.StockLevel{OnHand: 15, Reserved: 5, ReorderPoint: 10}, wantAvailable: 10, wantReorder: true},
		{name: "negative after adjustment", level: model.StockLevel{OnHand: -2, ReorderPoint: 1}, wantAvailable: -2, wantReorder: true},
		{name: "no reorder point", level: model.StockLevel{OnHand: 0}, wantAvailable: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantAvailable, tt.level.Available())
			assert.Equal(t, tt.wantReorder, tt.level.BelowReorderPoint())
			assert.Equal(t, tt.wantAvailable, tt.level.Balance().Available)
		})
	}
}

package model

import (
	"time"

	"github.com/muhammadheryan/inventory-service/constant"
)

type Warehouse struct {
	ID           uint64                   `db:"id" json:"id"`
	Name         string                   `db:"name" json:"name"`
	Code         string                   `db:"code" json:"code"`
	AddressLine1 string                   `db:"address_line1" json:"address_line1,omitempty"`
	AddressLine2 string                   `db:"address_line2" json:"address_line2,omitempty"`
	City         string                   `db:"city" json:"city,omitempty"`
	Region       string                   `db:"region" json:"region,omitempty"`
	PostalCode   string                   `db:"postal_code" json:"postal_code,omitempty"`
	Country      string                   `db:"country" json:"country,omitempty"`
	IsDefault    bool                     `db:"is_default" json:"is_default"`
	Status       constant.WarehouseStatus `db:"status" json:"status"`
	CreatedAt    time.Time                `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time               `db:"updated_at" json:"updated_at,omitempty"`
}

func (w Warehouse) Active() bool {
	return w.Status == constant.WarehouseStatusActive
}

type WarehouseRequest struct {
	Name         string `json:"name" validate:"required,max=128"`
	Code         string `json:"code" validate:"required,max=32"`
	AddressLine1 string `json:"address_line1" validate:"max=255"`
	AddressLine2 string `json:"address_line2" validate:"max=255"`
	City         string `json:"city" validate:"max=128"`
	Region       string `json:"region" validate:"max=128"`
	PostalCode   string `json:"postal_code" validate:"max=32"`
	Country      string `json:"country" validate:"omitempty,len=2"`
	IsDefault    bool   `json:"is_default"`
}

type WarehouseListResponse struct {
	Items      []Warehouse `json:"items"`
	TotalCount int64       `json:"total_count"`
	Page       int         `json:"page"`
	PerPage    int         `json:"per_page"`
}

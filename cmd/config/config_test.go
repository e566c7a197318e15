package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-number")
	t.Setenv("STOCK_CACHE_TTL", "15s")

	cfg := Load()

	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, 15*time.Second, cfg.Inventory.StockCacheTTL)
	assert.Equal(t, time.Duration(0), cfg.Inventory.DefaultReservationTTL)
}

func TestConfig_GetDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{User: "inv", Password: "secret", Host: "db", Port: 3307, Name: "stock"}}

	assert.Equal(t, "inv:secret@tcp(db:3307)/stock?parseTime=true&loc=UTC&charset=utf8mb4", cfg.GetDSN())
}

package repository

import (
	"github.com/fleetwatch/cw-fleet/internal/domain/entity"
)

// InventoryRepository loads and filters the account inventory file.
type InventoryRepository interface {
	// LoadInventory parses the inventory at path. A missing or unreadable file
	// returns (nil, nil); a present but malformed file returns an error.
	LoadInventory(path string) (*entity.Inventory, error)

	// FilterInventory keeps the records whose namespace contains pattern as a
	// substring, preserving order. An empty pattern keeps everything. A nil
	// inventory is an error.
	FilterInventory(pattern string, inv *entity.Inventory) ([]entity.AccountRecord, error)
}

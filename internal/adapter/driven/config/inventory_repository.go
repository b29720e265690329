package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fleetwatch/cw-fleet/internal/domain/entity"
	"github.com/fleetwatch/cw-fleet/internal/domain/repository"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// InventoryRepositoryImpl implements the InventoryRepository.
type InventoryRepositoryImpl struct{}

// NewInventoryRepository creates a new InventoryRepository implementation.
func NewInventoryRepository() repository.InventoryRepository {
	return &InventoryRepositoryImpl{}
}

// LoadInventory loads a TOML, YAML or JSON account inventory. A missing or
// unreadable file is a soft failure and returns (nil, nil); a file that is
// present but malformed returns an error.
func (r *InventoryRepositoryImpl) LoadInventory(filePath string) (*entity.Inventory, error) {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, nil
	}

	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, nil
	}

	var inventory entity.Inventory

	// TOML is the primary format; unknown extensions are parsed as TOML so
	// extensionless inventory files still work.
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &inventory); err != nil {
			return nil, fmt.Errorf("error parsing YAML inventory: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &inventory); err != nil {
			return nil, fmt.Errorf("error parsing JSON inventory: %w", err)
		}
	default:
		if err := toml.Unmarshal(fileData, &inventory); err != nil {
			return nil, fmt.Errorf("error parsing TOML inventory: %w", err)
		}
	}

	return &inventory, nil
}

// FilterInventory keeps the records whose namespace contains pattern as a
// substring, preserving inventory order. An empty pattern keeps everything.
func (r *InventoryRepositoryImpl) FilterInventory(pattern string, inv *entity.Inventory) ([]entity.AccountRecord, error) {
	if inv == nil {
		return nil, fmt.Errorf("cannot filter a nil inventory")
	}

	if pattern == "" {
		return inv.Accounts, nil
	}

	filtered := make([]entity.AccountRecord, 0, len(inv.Accounts))
	for _, account := range inv.Accounts {
		if strings.Contains(account.Namespace, pattern) {
			filtered = append(filtered, account)
		}
	}
	return filtered, nil
}

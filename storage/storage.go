// Package storage implements the console's durable key-value storage, the
// equivalent of the browser's local storage for the session manager.
package storage

import (
	"errors"
	"fmt"
	"sync"

	"github.com/andrewpaige1/questionbank-console/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DB persists values in the stored_values table.
type DB struct {
	db *gorm.DB
}

func NewDB(db *gorm.DB) *DB {
	return &DB{db: db}
}

func (s *DB) Get(key string) (string, bool, error) {
	var row models.StoredValue
	err := s.db.Where("storage_key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: get %q: %w", key, err)
	}
	return row.Value, true, nil
}

func (s *DB) Set(key, value string) error {
	row := models.StoredValue{Key: key, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "storage_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("storage: set %q: %w", key, err)
	}
	return nil
}

func (s *DB) Delete(keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.db.Where("storage_key IN ?", keys).Delete(&models.StoredValue{}).Error; err != nil {
		return fmt.Errorf("storage: delete %v: %w", keys, err)
	}
	return nil
}

// Memory keeps values in a map. Nothing survives the process.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: map[string]string{}}
}

func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *Memory) Delete(keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.values, k)
	}
	return nil
}

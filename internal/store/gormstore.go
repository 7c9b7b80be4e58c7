package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// recordRow is the relational shape of a stored record: one row per record,
// payload kept as a JSON document so every collection shares one table.
type recordRow struct {
	ID         uint   `gorm:"primaryKey"`
	Collection string `gorm:"size:64;not null;uniqueIndex:idx_records_collection_record,priority:1"`
	RecordID   string `gorm:"size:64;not null;uniqueIndex:idx_records_collection_record,priority:2"`
	Data       []byte `gorm:"type:jsonb;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (recordRow) TableName() string {
	return "records"
}

// GormStore persists records in PostgreSQL via GORM. Unlike the file store it
// writes per record rather than rewriting a whole document; the Store
// contract is unchanged.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a PostgreSQL-backed record store.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// AutoMigrate creates the records table.
func (s *GormStore) AutoMigrate() error {
	return s.db.AutoMigrate(&recordRow{})
}

// List implements Store.
func (s *GormStore) List(ctx context.Context, collection string) ([]Record, error) {
	var rows []recordRow
	err := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}

	out := make([]Record, 0, len(rows))
	for _, row := range rows {
		var rec Record
		if err := json.Unmarshal(row.Data, &rec); err != nil {
			return nil, fmt.Errorf("parse record %s/%s: %w", collection, row.RecordID, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

// Append implements Store.
func (s *GormStore) Append(ctx context.Context, collection string, rec Record) (Record, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("serialize record: %w", err)
	}

	row := recordRow{
		Collection: collection,
		RecordID:   rec.ID(),
		Data:       data,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("append to %s: %w", collection, err)
	}
	return rec.Clone(), nil
}

// UpdateByID implements Store.
func (s *GormStore) UpdateByID(ctx context.Context, collection string, patch Record) (Record, error) {
	var merged Record

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row recordRow
		err := tx.Where("collection = ? AND record_id = ?", collection, patch.ID()).
			First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("find record %s/%s: %w", collection, patch.ID(), err)
		}

		var rec Record
		if err := json.Unmarshal(row.Data, &rec); err != nil {
			return fmt.Errorf("parse record %s/%s: %w", collection, row.RecordID, err)
		}

		merged = merge(rec, patch)
		data, err := json.Marshal(merged)
		if err != nil {
			return fmt.Errorf("serialize record: %w", err)
		}

		row.Data = data
		if err := tx.Save(&row).Error; err != nil {
			return fmt.Errorf("update record %s/%s: %w", collection, row.RecordID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return merged, nil
}

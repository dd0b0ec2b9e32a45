package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CollectionRecord is the row backing one namespaced collection.
type CollectionRecord struct {
	Namespace  string    `gorm:"primaryKey;size:100"`
	Collection string    `gorm:"primaryKey;size:50"`
	Payload    string    `gorm:"type:text;not null"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

// TableName keeps the table name stable across gorm naming strategies.
func (CollectionRecord) TableName() string { return "collections" }

// SQLStore keeps collections in a relational database through gorm.
type SQLStore struct {
	db *gorm.DB
}

// NewSQLStore wraps an open gorm connection. Call Migrate before first use.
func NewSQLStore(db *gorm.DB) *SQLStore {
	return &SQLStore{db: db}
}

// Migrate creates or updates the collections table.
func (s *SQLStore) Migrate() error {
	if err := s.db.AutoMigrate(&CollectionRecord{}); err != nil {
		return fmt.Errorf("automigrate collections: %w", err)
	}
	return nil
}

func (s *SQLStore) Get(ctx context.Context, namespace, collection string) ([]byte, error) {
	if err := checkKey(namespace, collection); err != nil {
		return nil, err
	}
	var rec CollectionRecord
	err := s.db.WithContext(ctx).
		Where("namespace = ? AND collection = ?", namespace, collection).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s/%s: %w", namespace, collection, err)
	}
	return []byte(rec.Payload), nil
}

func (s *SQLStore) Put(ctx context.Context, namespace, collection string, records []byte) error {
	if err := checkKey(namespace, collection); err != nil {
		return err
	}
	rec := CollectionRecord{Namespace: namespace, Collection: collection, Payload: string(records)}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "namespace"}, {Name: "collection"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&rec).Error
	if err != nil {
		return fmt.Errorf("save %s/%s: %w", namespace, collection, err)
	}
	return nil
}

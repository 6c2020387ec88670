package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/scrubkh/invoice-api/internal/domain/entity"
	"github.com/scrubkh/invoice-api/internal/domain/repository"
)

type draftRepository struct {
	db *gorm.DB
}

// NewDraftRepository creates a new draft repository backed by the
// single fixed slot row.
func NewDraftRepository(db *gorm.DB) repository.DraftRepository {
	return &draftRepository{db: db}
}

// Load reads the saved draft, or nil when the slot is empty.
func (r *draftRepository) Load(ctx context.Context) (*entity.Draft, error) {
	var record entity.DraftRecord
	err := r.db.WithContext(ctx).Where("key = ?", entity.DraftSlotKey).First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	var draft entity.Draft
	if err := json.Unmarshal(record.Payload, &draft); err != nil {
		return nil, fmt.Errorf("corrupt draft payload: %w", err)
	}
	return &draft, nil
}

// Save overwrites the slot. Last write wins.
func (r *draftRepository) Save(ctx context.Context, draft *entity.Draft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	record := entity.DraftRecord{Key: entity.DraftSlotKey, Payload: payload}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&record).Error
}

// Clear deletes the slot row. Clearing an empty slot is a no-op.
func (r *draftRepository) Clear(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("key = ?", entity.DraftSlotKey).
		Delete(&entity.DraftRecord{}).Error
}

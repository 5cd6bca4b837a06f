package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/smallbiznis/billcanvas/internal/sampledata/domain"
)

type gormRepository struct{}

// Provide constructs the gorm-backed repository.
func Provide() domain.Repository {
	return gormRepository{}
}

func (gormRepository) Find(ctx context.Context, db *gorm.DB, orgID snowflake.ID, name string) (*domain.SamplePayload, error) {
	var payload domain.SamplePayload
	err := db.WithContext(ctx).
		Where("org_id = ? AND name = ?", orgID, name).
		First(&payload).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &payload, nil
}

func (gormRepository) Upsert(ctx context.Context, db *gorm.DB, payload *domain.SamplePayload) error {
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "org_id"}, {Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(payload).Error
}

func (gormRepository) Names(ctx context.Context, db *gorm.DB, orgID snowflake.ID) ([]string, error) {
	var names []string
	err := db.WithContext(ctx).
		Model(&domain.SamplePayload{}).
		Where("org_id = ?", orgID).
		Order("name ASC").
		Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

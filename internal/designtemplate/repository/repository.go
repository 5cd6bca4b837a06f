package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	"github.com/smallbiznis/billcanvas/internal/designtemplate/domain"
)

type gormRepository struct{}

// Provide constructs the gorm-backed repository.
func Provide() domain.Repository {
	return gormRepository{}
}

func (gormRepository) Insert(ctx context.Context, db *gorm.DB, tmpl *domain.DesignTemplate) error {
	return db.WithContext(ctx).Create(tmpl).Error
}

func (gormRepository) Update(ctx context.Context, db *gorm.DB, tmpl *domain.DesignTemplate) error {
	return db.WithContext(ctx).Save(tmpl).Error
}

func (gormRepository) Delete(ctx context.Context, db *gorm.DB, orgID, id snowflake.ID) error {
	result := db.WithContext(ctx).
		Where("org_id = ? AND id = ?", orgID, id).
		Delete(&domain.DesignTemplate{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (gormRepository) FindByID(ctx context.Context, db *gorm.DB, orgID, id snowflake.ID) (*domain.DesignTemplate, error) {
	var tmpl domain.DesignTemplate
	err := db.WithContext(ctx).
		Where("org_id = ? AND id = ?", orgID, id).
		First(&tmpl).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &tmpl, nil
}

func (gormRepository) FindDefault(ctx context.Context, db *gorm.DB, orgID snowflake.ID, documentType string) (*domain.DesignTemplate, error) {
	var tmpl domain.DesignTemplate
	err := db.WithContext(ctx).
		Where("org_id = ? AND document_type = ? AND is_default = ?", orgID, documentType, true).
		First(&tmpl).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &tmpl, nil
}

func (gormRepository) List(ctx context.Context, db *gorm.DB, orgID snowflake.ID, filter domain.ListRequest) ([]domain.DesignTemplate, error) {
	query := db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Order("created_at DESC")
	if filter.Name != "" {
		query = query.Where("name LIKE ?", "%"+filter.Name+"%")
	}
	if filter.DocumentType != "" {
		query = query.Where("document_type = ?", filter.DocumentType)
	}
	if filter.IsDefault != nil {
		query = query.Where("is_default = ?", *filter.IsDefault)
	}

	var templates []domain.DesignTemplate
	if err := query.Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

func (gormRepository) ClearDefault(ctx context.Context, db *gorm.DB, orgID snowflake.ID, documentType string) error {
	return db.WithContext(ctx).
		Model(&domain.DesignTemplate{}).
		Where("org_id = ? AND document_type = ?", orgID, documentType).
		Update("is_default", false).Error
}

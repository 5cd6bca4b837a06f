package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, tmpl *DesignTemplate) error
	Update(ctx context.Context, db *gorm.DB, tmpl *DesignTemplate) error
	Delete(ctx context.Context, db *gorm.DB, orgID, id snowflake.ID) error
	FindByID(ctx context.Context, db *gorm.DB, orgID, id snowflake.ID) (*DesignTemplate, error)
	FindDefault(ctx context.Context, db *gorm.DB, orgID snowflake.ID, documentType string) (*DesignTemplate, error)
	List(ctx context.Context, db *gorm.DB, orgID snowflake.ID, filter ListRequest) ([]DesignTemplate, error)
	ClearDefault(ctx context.Context, db *gorm.DB, orgID snowflake.ID, documentType string) error
}

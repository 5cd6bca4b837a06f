package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	"github.com/smallbiznis/billcanvas/internal/template/sample"
)

type UpsertRequest struct {
	Name    string            `json:"name"`
	Payload sample.RawPayload `json:"payload"`
}

type Service interface {
	// Get returns the normalized payload stored under name.
	Get(ctx context.Context, name string) (sample.Payload, error)
	// Upsert stores or replaces the raw payload under name and drops any
	// cached normalized copy.
	Upsert(ctx context.Context, req UpsertRequest) (sample.Payload, error)
	// Names lists the stored payload names for the calling organization.
	Names(ctx context.Context) ([]string, error)
}

type Repository interface {
	Find(ctx context.Context, db *gorm.DB, orgID snowflake.ID, name string) (*SamplePayload, error)
	Upsert(ctx context.Context, db *gorm.DB, payload *SamplePayload) error
	Names(ctx context.Context, db *gorm.DB, orgID snowflake.ID) ([]string, error)
}

var (
	ErrInvalidOrganization = errors.New("invalid_organization")
	ErrInvalidName         = errors.New("invalid_name")
	ErrInvalidPayload      = errors.New("invalid_payload")
	ErrNotFound            = errors.New("not_found")
)

package domain

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"

	templatedomain "github.com/smallbiznis/billcanvas/internal/template/domain"
)

type ListRequest struct {
	Name         string `form:"name"`
	DocumentType string `form:"document_type"`
	IsDefault    *bool  `form:"is_default"`
}

type CreateRequest struct {
	Name         string                   `json:"name"`
	DocumentType string                   `json:"document_type"`
	IsDefault    bool                     `json:"is_default"`
	Document     *templatedomain.Template `json:"document"`
}

type UpdateRequest struct {
	ID       string                   `json:"id"`
	Name     *string                  `json:"name"`
	Document *templatedomain.Template `json:"document"`
}

type Response struct {
	ID           string                   `json:"id"`
	OrgID        string                   `json:"organization_id"`
	Name         string                   `json:"name"`
	DocumentType string                   `json:"document_type"`
	IsDefault    bool                     `json:"is_default"`
	Document     *templatedomain.Template `json:"document"`
	Warnings     []string                 `json:"warnings,omitempty"`
	CreatedAt    time.Time                `json:"created_at"`
	UpdatedAt    time.Time                `json:"updated_at"`
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	List(ctx context.Context, req ListRequest) ([]Response, error)
	GetByID(ctx context.Context, id string) (*Response, error)
	Update(ctx context.Context, req UpdateRequest) (*Response, error)
	Delete(ctx context.Context, id string) error
	SetDefault(ctx context.Context, id string) (*Response, error)
}

func ParseID(raw string) (snowflake.ID, error) {
	return snowflake.ParseString(strings.TrimSpace(raw))
}

var (
	ErrInvalidOrganization = errors.New("invalid_organization")
	ErrInvalidID           = errors.New("invalid_id")
	ErrInvalidName         = errors.New("invalid_name")
	ErrInvalidDocumentType = errors.New("invalid_document_type")
	ErrInvalidDocument     = errors.New("invalid_document")
	ErrNotFound            = errors.New("not_found")
)

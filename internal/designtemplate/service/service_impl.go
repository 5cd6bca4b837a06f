package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/smallbiznis/billcanvas/internal/designtemplate/domain"
	"github.com/smallbiznis/billcanvas/internal/observability/metrics"
	"github.com/smallbiznis/billcanvas/internal/orgcontext"
	templatedomain "github.com/smallbiznis/billcanvas/internal/template/domain"
)

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func NewService(p ServiceParam, repo domain.Repository) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("designtemplate.service"),
		genID: p.GenID,
		repo:  repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	orgID, err := s.orgIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		metrics.Designer().ObserveSave("invalid")
		return nil, domain.ErrInvalidName
	}
	documentType := strings.TrimSpace(req.DocumentType)
	if documentType == "" {
		documentType = domain.DocumentTypeBill
	}
	if !domain.IsAllowedDocumentType(documentType) {
		metrics.Designer().ObserveSave("invalid")
		return nil, domain.ErrInvalidDocumentType
	}

	tpl := req.Document
	if tpl == nil {
		tpl = templatedomain.New(templatedomain.Page{
			Size:        templatedomain.PageA4,
			Orientation: templatedomain.Portrait,
		})
	}
	document, err := json.Marshal(tpl)
	if err != nil {
		metrics.Designer().ObserveSave("invalid")
		return nil, domain.ErrInvalidDocument
	}

	now := time.Now().UTC()
	record := &domain.DesignTemplate{
		ID:           s.genID.Generate(),
		OrgID:        orgID,
		Name:         name,
		DocumentType: documentType,
		IsDefault:    req.IsDefault,
		Document:     datatypes.JSON(document),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if record.IsDefault {
			if err := s.repo.ClearDefault(ctx, tx, orgID, documentType); err != nil {
				return err
			}
		}
		return s.repo.Insert(ctx, tx, record)
	})
	if err != nil {
		metrics.Designer().ObserveSave("error")
		return nil, err
	}

	metrics.Designer().ObserveSave("ok")
	s.log.Info("template created",
		zap.String("template_id", record.ID.String()),
		zap.String("document_type", documentType),
	)
	return s.toResponse(record)
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) ([]domain.Response, error) {
	orgID, err := s.orgIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.List(ctx, s.db, orgID, req)
	if err != nil {
		return nil, err
	}
	responses := make([]domain.Response, 0, len(records))
	for i := range records {
		resp, err := s.toResponse(&records[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Response, error) {
	orgID, err := s.orgIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	templateID, err := domain.ParseID(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	record, err := s.repo.FindByID(ctx, s.db, orgID, templateID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(record)
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Response, error) {
	orgID, err := s.orgIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	templateID, err := domain.ParseID(req.ID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	record, err := s.repo.FindByID(ctx, s.db, orgID, templateID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			metrics.Designer().ObserveSave("invalid")
			return nil, domain.ErrInvalidName
		}
		record.Name = name
	}
	if req.Document != nil {
		document, err := json.Marshal(req.Document)
		if err != nil {
			metrics.Designer().ObserveSave("invalid")
			return nil, domain.ErrInvalidDocument
		}
		record.Document = datatypes.JSON(document)
	}
	record.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, record); err != nil {
		metrics.Designer().ObserveSave("error")
		return nil, err
	}
	metrics.Designer().ObserveSave("ok")
	return s.toResponse(record)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	orgID, err := s.orgIDFromContext(ctx)
	if err != nil {
		return err
	}
	templateID, err := domain.ParseID(id)
	if err != nil {
		return domain.ErrInvalidID
	}
	return s.repo.Delete(ctx, s.db, orgID, templateID)
}

func (s *Service) SetDefault(ctx context.Context, id string) (*domain.Response, error) {
	orgID, err := s.orgIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	templateID, err := domain.ParseID(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	var record *domain.DesignTemplate
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := s.repo.FindByID(ctx, tx, orgID, templateID)
		if err != nil {
			return err
		}
		if err := s.repo.ClearDefault(ctx, tx, orgID, found.DocumentType); err != nil {
			return err
		}
		found.IsDefault = true
		found.UpdatedAt = time.Now().UTC()
		if err := s.repo.Update(ctx, tx, found); err != nil {
			return err
		}
		record = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.toResponse(record)
}

func (s *Service) orgIDFromContext(ctx context.Context) (snowflake.ID, error) {
	orgID, ok := orgcontext.OrgID(ctx)
	if !ok {
		return 0, domain.ErrInvalidOrganization
	}
	return orgID, nil
}

// toResponse decodes the stored document and re-runs the advisory structural
// validation so stale warnings surface on every read.
func (s *Service) toResponse(record *domain.DesignTemplate) (*domain.Response, error) {
	var tpl templatedomain.Template
	if len(record.Document) > 0 {
		if err := json.Unmarshal(record.Document, &tpl); err != nil {
			return nil, domain.ErrInvalidDocument
		}
	}

	var warnings []string
	for _, err := range tpl.Validate() {
		warnings = append(warnings, err.Error())
	}

	return &domain.Response{
		ID:           record.ID.String(),
		OrgID:        record.OrgID.String(),
		Name:         record.Name,
		DocumentType: record.DocumentType,
		IsDefault:    record.IsDefault,
		Document:     &tpl,
		Warnings:     warnings,
		CreatedAt:    record.CreatedAt,
		UpdatedAt:    record.UpdatedAt,
	}, nil
}

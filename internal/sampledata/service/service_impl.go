package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/smallbiznis/billcanvas/internal/cache"
	"github.com/smallbiznis/billcanvas/internal/config"
	"github.com/smallbiznis/billcanvas/internal/orgcontext"
	"github.com/smallbiznis/billcanvas/internal/sampledata/domain"
	"github.com/smallbiznis/billcanvas/internal/template/sample"
)

type ServiceParam struct {
	fx.In

	Config config.Config
	DB     *gorm.DB
	Log    *zap.Logger
	GenID  *snowflake.Node
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	repo     domain.Repository
	payloads cache.Cache[string, sample.Payload]
	cacheTTL time.Duration
}

func NewService(p ServiceParam, repo domain.Repository) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("sampledata.service"),
		genID:    p.GenID,
		repo:     repo,
		payloads: cache.NewTTLCache[string, sample.Payload](),
		cacheTTL: time.Duration(p.Config.SampleCacheTTLSeconds) * time.Second,
	}
}

func (s *Service) Get(ctx context.Context, name string) (sample.Payload, error) {
	orgID, ok := orgcontext.OrgID(ctx)
	if !ok {
		return sample.Payload{}, domain.ErrInvalidOrganization
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return sample.Payload{}, domain.ErrInvalidName
	}

	key := cacheKey(orgID, name)
	if payload, ok := s.payloads.Get(key); ok {
		return payload, nil
	}

	record, err := s.repo.Find(ctx, s.db, orgID, name)
	if err != nil {
		return sample.Payload{}, err
	}
	payload, err := sample.ParseRaw(record.Payload)
	if err != nil {
		s.log.Warn("stored sample payload does not parse",
			zap.String("name", name),
			zap.Error(err),
		)
		return sample.Payload{}, domain.ErrInvalidPayload
	}

	s.payloads.Set(key, payload, s.cacheTTL)
	return payload, nil
}

func (s *Service) Upsert(ctx context.Context, req domain.UpsertRequest) (sample.Payload, error) {
	orgID, ok := orgcontext.OrgID(ctx)
	if !ok {
		return sample.Payload{}, domain.ErrInvalidOrganization
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return sample.Payload{}, domain.ErrInvalidName
	}

	raw, err := json.Marshal(req.Payload)
	if err != nil {
		return sample.Payload{}, domain.ErrInvalidPayload
	}

	now := time.Now().UTC()
	record := &domain.SamplePayload{
		ID:        s.genID.Generate(),
		OrgID:     orgID,
		Name:      name,
		Payload:   datatypes.JSON(raw),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Upsert(ctx, s.db, record); err != nil {
		return sample.Payload{}, err
	}

	payload := sample.Normalize(req.Payload)
	s.payloads.Set(cacheKey(orgID, name), payload, s.cacheTTL)
	return payload, nil
}

func (s *Service) Names(ctx context.Context) ([]string, error) {
	orgID, ok := orgcontext.OrgID(ctx)
	if !ok {
		return nil, domain.ErrInvalidOrganization
	}
	return s.repo.Names(ctx, s.db, orgID)
}

func cacheKey(orgID snowflake.ID, name string) string {
	return fmt.Sprintf("%d/%s", orgID, name)
}

package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/workroster/workroster-api/internal/dto"
	"github.com/workroster/workroster-api/internal/models"
	appErrors "github.com/workroster/workroster-api/pkg/errors"
)

const defaultBackgroundColor = "#ffffff"

type configurationRepository interface {
	Get(ctx context.Context) (*models.Configuration, error)
	Upsert(ctx context.Context, cfg *models.Configuration) error
}

// ConfigurationService manages the single application settings record.
type ConfigurationService struct {
	repo      configurationRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewConfigurationService constructs the service.
func NewConfigurationService(repo configurationRepository, validate *validator.Validate, logger *zap.Logger) *ConfigurationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &ConfigurationService{repo: repo, validator: validate, logger: logger}
}

// Get returns the settings record, creating the default on first use.
func (s *ConfigurationService) Get(ctx context.Context) (*models.Configuration, error) {
	cfg, err := s.repo.Get(ctx)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load configuration")
	}

	cfg = &models.Configuration{BackgroundColor: defaultBackgroundColor}
	if err := s.repo.Upsert(ctx, cfg); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create default configuration")
	}
	return cfg, nil
}

// Update writes the settings record. Coordinator/admin only.
func (s *ConfigurationService) Update(ctx context.Context, req dto.UpdateConfigurationRequest, actor *models.JWTClaims) (*models.Configuration, error) {
	if err := requireReviewer(actor); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid configuration payload")
	}

	cfg, err := s.repo.Get(ctx)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load configuration")
		}
		cfg = &models.Configuration{}
	}
	cfg.BackgroundColor = req.BackgroundColor
	if err := s.repo.Upsert(ctx, cfg); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save configuration")
	}
	return cfg, nil
}

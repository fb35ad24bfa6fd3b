package service

import (
	"context"

	"github.com/project/ticket-service/internal/config"
	"github.com/project/ticket-service/internal/logger"
	"github.com/project/ticket-service/models"
)

type appInfoService struct {
	serviceName string
	instanceID  string
	appVersion  string

	logger *logger.Logger
}

// NewAppInfoService describes the running instance. instanceID is the id the
// process registers under in discovery.
func NewAppInfoService(cfg config.App, instanceID string, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		serviceName: cfg.ServiceName,
		instanceID:  instanceID,
		appVersion:  cfg.Version,
		logger:      logger,
	}, nil
}

func (s *appInfoService) Health(ctx context.Context) models.HealthResult {
	s.logger.Ctx(ctx).Debug().Str("func", "appInfoService.Health").Str("instance", s.instanceID).Msg("reporting instance health")
	return models.HealthResult{
		Service:  s.serviceName,
		Instance: s.instanceID,
		Version:  s.appVersion,
	}
}

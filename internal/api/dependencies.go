package api

import (
	"os"

	"skyshield/bastion/internal/common"
	"skyshield/bastion/internal/db"
	"skyshield/bastion/internal/db/repositories"
	"skyshield/bastion/internal/logging"
	"skyshield/bastion/internal/metrics"
	"skyshield/bastion/internal/services"
)

type Repositories struct {
	Stations      *repositories.StationRepository
	Operators     *repositories.OperatorRepository
	Rules         *repositories.RuleRepository
	Detections    *repositories.DetectionRepository
	Threats       *repositories.ThreatRepository
	Missiles      *repositories.MissileRepository
	Interceptions *repositories.InterceptionRepository
	Alerts        *repositories.AlertRepository
	Surveillance  *repositories.SurveillanceRepository
}

type Services struct {
	Cache         common.CacheInterface
	Auth          *services.AuthService
	Rules         *services.RuleService
	Detections    *services.DetectionService
	Threats       *services.ThreatService
	Interceptions *services.InterceptionService
	Alerts        *services.AlertService
	Missiles      *services.MissileService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Metrics  *metrics.MetricsRegistry
}

func InitDependencies(metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {

	repos := &Repositories{
		Stations:      repositories.NewStationRepository(db.DB),
		Operators:     repositories.NewOperatorRepository(db.DB),
		Rules:         repositories.NewRuleRepository(db.DB),
		Detections:    repositories.NewDetectionRepository(db.DB),
		Threats:       repositories.NewThreatRepository(db.DB),
		Missiles:      repositories.NewMissileRepository(db.DB),
		Interceptions: repositories.NewInterceptionRepository(db.DB),
		Alerts:        repositories.NewAlertRepository(db.DB),
		Surveillance:  repositories.NewSurveillanceRepository(db.DB),
	}

	cacheSvc := newCacheService()
	ruleSvc := services.NewRuleService(repos.Rules, cacheSvc)

	svcs := &Services{
		Cache:         cacheSvc,
		Auth:          services.NewAuthService(repos.Operators),
		Rules:         ruleSvc,
		Detections:    services.NewDetectionService(repos.Detections, repos.Threats, ruleSvc),
		Threats:       services.NewThreatService(repos.Threats),
		Interceptions: services.NewInterceptionService(repos.Interceptions, repos.Missiles),
		Alerts:        services.NewAlertService(repos.Alerts),
		Missiles:      services.NewMissileService(repos.Missiles),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Metrics:  metricsReg,
	}, nil
}

// newCacheService picks the cache backend: Redis when CACHE_BACKEND is
// "redis" and reachable, in-memory otherwise.
func newCacheService() common.CacheInterface {
	if os.Getenv("CACHE_BACKEND") == "redis" {
		redisCache, err := common.NewRedisCacheService()
		if err == nil {
			logging.Info("Using Redis cache backend")
			return redisCache
		}
		logging.Warn("Redis cache unavailable, falling back to in-memory", "error", err.Error())
	}
	return common.NewCacheService(60, 600)
}

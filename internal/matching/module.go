// Package matching provides the brand-creator matching domain module.
package matching

import (
	"creatorhub_backend/internal/events"
	apphttp "creatorhub_backend/internal/http"
	"creatorhub_backend/internal/matching/handler"
	"creatorhub_backend/internal/matching/ports"
	"creatorhub_backend/internal/matching/repository"
	"creatorhub_backend/internal/matching/scoring"
	"creatorhub_backend/internal/matching/service"
	"creatorhub_backend/platform/logger"
	"creatorhub_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module represents the matching domain module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates a matching module with all dependencies wired. The
// profile reader and brand source come from internal/adapters so this module
// never imports another bounded context directly.
func NewModule(pool *pgxpool.Pool, profiles ports.ProfileReader, brands ports.BrandSource, eventBus events.Bus, val *validator.Validator, log *logger.Logger, defaults service.Defaults) *Module {
	repo := repository.New(pool)
	svc := service.New(profiles, brands, repo, scoring.NewEngine(), eventBus, log, defaults)
	h := handler.New(svc, val)

	return &Module{handler: h, service: svc}
}

// Name returns the module name for logging.
func (m *Module) Name() string {
	return "matching"
}

// Service returns the service layer for external use (the background worker
// runs refreshes through it).
func (m *Module) Service() *service.Service {
	return m.service
}

// SetRefreshEnqueuer injects the scheduler client backing the async refresh
// endpoint.
func (m *Module) SetRefreshEnqueuer(enq handler.RefreshEnqueuer) {
	m.handler.SetRefreshEnqueuer(enq)
}

// RegisterRoutes registers the module's routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterCreatorRoutes(ctx.Protected.Group("/creators"), ctx.RefreshRateLimiter.RateLimit())
	m.handler.RegisterMatchRoutes(ctx.Protected.Group("/matches"))
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)

// Package brands provides the brand records domain module.
package brands

import (
	"creatorhub_backend/internal/brands/handler"
	"creatorhub_backend/internal/brands/repository"
	"creatorhub_backend/internal/brands/service"
	"creatorhub_backend/internal/events"
	apphttp "creatorhub_backend/internal/http"
	"creatorhub_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module represents the brands domain module.
type Module struct {
	handler    *handler.Handler
	service    *service.Service
	repository *repository.Repository
}

// NewModule creates a brands module with all dependencies wired.
func NewModule(pool *pgxpool.Pool, eventBus events.Bus, val *validator.Validator) *Module {
	repo := repository.New(pool)
	svc := service.New(repo)
	svc.SetEventBus(eventBus)
	h := handler.New(svc, val)

	return &Module{handler: h, service: svc, repository: repo}
}

// Name returns the module name for logging.
func (m *Module) Name() string {
	return "brands"
}

// Repository returns the repository for cross-module adapters.
func (m *Module) Repository() *repository.Repository {
	return m.repository
}

// RegisterRoutes registers the module's routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.Protected.Group("/brands"))
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)

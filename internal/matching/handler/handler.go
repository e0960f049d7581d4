package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"creatorhub_backend/internal/matching/repository"
	"creatorhub_backend/internal/matching/service"
	"creatorhub_backend/internal/matching/transport"
	"creatorhub_backend/platform/httpkit"
	"creatorhub_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// RefreshEnqueuer schedules a background match refresh for one creator.
// Implemented by the scheduler client; nil disables the async endpoint.
type RefreshEnqueuer interface {
	EnqueueMatchRefresh(ctx context.Context, creatorID uuid.UUID) error
}

// Handler handles HTTP requests for brand matching.
type Handler struct {
	svc      *service.Service
	val      *validator.Validator
	enqueuer RefreshEnqueuer
}

// New creates a new matching handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// SetRefreshEnqueuer injects the background scheduler client (set after
// construction, the worker stack boots separately from the HTTP stack).
func (h *Handler) SetRefreshEnqueuer(enq RefreshEnqueuer) {
	h.enqueuer = enq
}

// RegisterCreatorRoutes registers the creator-scoped match routes. Refresh
// routes take the stricter limiter: each synchronous call fans out a full
// scoring run.
func (h *Handler) RegisterCreatorRoutes(rg *gin.RouterGroup, refreshLimit gin.HandlerFunc) {
	rg.GET("/:id/matches", h.ListMatches)
	rg.POST("/:id/matches/refresh", refreshLimit, h.RefreshMatches)
	rg.POST("/:id/matches/refresh-async", refreshLimit, h.RefreshMatchesAsync)
}

// RegisterMatchRoutes registers the match-scoped routes.
func (h *Handler) RegisterMatchRoutes(rg *gin.RouterGroup) {
	rg.PATCH("/:id/status", h.UpdateStatus)
}

// ListMatches returns persisted matches for a creator, or runs the full
// pipeline when ?refresh=true is set.
func (h *Handler) ListMatches(c *gin.Context) {
	creatorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	opts, ok := h.parseQueryOptions(c)
	if !ok {
		return
	}

	if c.Query("refresh") == "true" {
		h.runAndRespond(c, creatorID, opts)
		return
	}

	minScore := 0
	if opts.MinScore != nil {
		minScore = *opts.MinScore
	}
	matches, err := h.svc.ListPersistedMatches(c.Request.Context(), creatorID, repository.ListParams{
		MinScore: minScore,
		Statuses: parseStatuses(c.Query("status")),
		Limit:    opts.Limit,
	})
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.MatchListResponse{
		Matches: transport.MatchesFromDomain(matches),
		Total:   len(matches),
	})
}

// RefreshMatches runs the full pipeline synchronously.
func (h *Handler) RefreshMatches(c *gin.Context) {
	creatorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	var req transport.RefreshMatchesRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
			return
		}
		if err := h.val.Struct(req); err != nil {
			httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
			return
		}
	}

	h.runAndRespond(c, creatorID, service.Options{
		Limit:          req.Limit,
		MinScore:       req.MinScore,
		ExcludeMatched: req.ExcludeMatched,
	})
}

// RefreshMatchesAsync queues a background refresh and returns immediately.
func (h *Handler) RefreshMatchesAsync(c *gin.Context) {
	creatorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	if h.enqueuer == nil {
		httpkit.Error(c, http.StatusServiceUnavailable, "background refresh unavailable", nil)
		return
	}

	if err := h.enqueuer.EnqueueMatchRefresh(c.Request.Context(), creatorID); httpkit.HandleError(c, err) {
		return
	}

	c.JSON(http.StatusAccepted, transport.RefreshQueuedResponse{
		CreatorID: creatorID,
		Status:    "queued",
	})
}

// UpdateStatus advances the outreach lifecycle of a match. The match id is
// the composite "{creatorId}-{brandId}" string.
func (h *Handler) UpdateStatus(c *gin.Context) {
	creatorID, brandID, ok := parseMatchID(c.Param("id"))
	if !ok {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	var req transport.UpdateMatchStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	match, err := h.svc.UpdateMatchStatus(c.Request.Context(), creatorID, brandID, req.Status)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.MatchFromDomain(match))
}

func (h *Handler) runAndRespond(c *gin.Context, creatorID uuid.UUID, opts service.Options) {
	result, err := h.svc.GetMatchesForCreator(c.Request.Context(), creatorID, opts)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.MatchRunResponse{
		Matches:             transport.MatchesFromDomain(result.Matches),
		TotalBrandsAnalyzed: result.TotalBrandsAnalyzed,
		TotalMatches:        len(result.Matches),
		MatchStats:          transport.MatchStatsResponse(result.Stats),
	})
}

func (h *Handler) parseQueryOptions(c *gin.Context) (service.Options, bool) {
	var opts service.Options
	if v := c.Query("limit"); v != "" {
		n, err := parsePositiveInt(v)
		if err != nil {
			httpkit.Error(c, http.StatusBadRequest, "invalid limit", nil)
			return opts, false
		}
		opts.Limit = n
	}
	if v := c.Query("minScore"); v != "" {
		n, err := parsePositiveInt(v)
		if err != nil {
			httpkit.Error(c, http.StatusBadRequest, "invalid minScore", nil)
			return opts, false
		}
		opts.MinScore = &n
	}
	if v := c.Query("excludeMatched"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			httpkit.Error(c, http.StatusBadRequest, "invalid excludeMatched", nil)
			return opts, false
		}
		opts.ExcludeMatched = &b
	}
	return opts, true
}

// parseMatchID splits "{creatorId}-{brandId}". Both halves are canonical
// 36-character UUIDs, so the split point is fixed.
func parseMatchID(id string) (uuid.UUID, uuid.UUID, bool) {
	const uuidLen = 36
	if len(id) != uuidLen*2+1 || id[uuidLen] != '-' {
		return uuid.Nil, uuid.Nil, false
	}
	creatorID, err := uuid.Parse(id[:uuidLen])
	if err != nil {
		return uuid.Nil, uuid.Nil, false
	}
	brandID, err := uuid.Parse(id[uuidLen+1:])
	if err != nil {
		return uuid.Nil, uuid.Nil, false
	}
	return creatorID, brandID, true
}

func parsePositiveInt(v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, strconv.ErrRange
	}
	return n, nil
}

func parseStatuses(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	statuses := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			statuses = append(statuses, p)
		}
	}
	return statuses
}

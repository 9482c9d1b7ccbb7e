// Package transport exposes the pool engine over HTTP and gRPC.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/giftpool-backend/internal/pool/alias"
	"github.com/goodnatureofminers/giftpool-backend/internal/pool/model"
	"github.com/goodnatureofminers/giftpool-backend/internal/pool/service"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
)

// PoolHandler serves the pool REST API.
type PoolHandler struct {
	pools  PoolService
	names  alias.Resolver
	logger *zap.Logger
}

// NewPoolHandler builds a PoolHandler. names may be nil; addresses are then shown as is.
func NewPoolHandler(pools PoolService, names alias.Resolver, logger *zap.Logger) *PoolHandler {
	return &PoolHandler{pools: pools, names: names, logger: logger.Named("http")}
}

// Register mounts every route on mux.
func (h *PoolHandler) Register(mux *gwruntime.ServeMux) error {
	routes := []struct {
		method  string
		pattern string
		handler gwruntime.HandlerFunc
	}{
		{http.MethodPost, "/pools", h.createPool},
		{http.MethodGet, "/pools", h.listPools},
		{http.MethodGet, "/pools/{id}", h.getPool},
		{http.MethodPost, "/pools/{id}/join", h.joinPool},
		{http.MethodPost, "/pools/{id}/finalize", h.finalizePool},
		{http.MethodPost, "/pools/{id}/refresh", h.refreshAggregate},
		{http.MethodPost, "/pools/{id}/cancel", h.cancelPool},
		{http.MethodGet, "/pools/{id}/events", h.poolEvents},
	}
	for _, rt := range routes {
		if err := mux.HandlePath(rt.method, rt.pattern, rt.handler); err != nil {
			return err
		}
	}
	return nil
}

func (h *PoolHandler) createPool(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var req createPoolRequest
	if err := decodeRequest(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	mode, err := model.ParsePrivacyMode(req.PrivacyMode)
	if err != nil {
		h.fail(w, r, &requestError{message: err.Error()})
		return
	}

	p, err := h.pools.CreatePool(r.Context(), service.CreatePoolInput{
		Name:             req.Name,
		RecipientAddress: req.RecipientAddress,
		Threshold:        req.Threshold,
		CreatorAddress:   req.CreatorAddress,
		SelfAmount:       req.SelfAmount,
		Suggestion:       req.GiftSuggestion,
		PrivacyMode:      mode,
	})
	h.respondPool(w, r, http.StatusCreated, p, err)
}

func (h *PoolHandler) listPools(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var (
		pools []model.Pool
		err   error
	)
	if contributor := strings.TrimSpace(r.URL.Query().Get("contributor")); contributor != "" {
		pools, err = h.pools.ContributorPools(r.Context(), contributor)
	} else {
		pools, err = h.pools.ListPools(r.Context())
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, map[string]any{"pools": newPoolViews(r.Context(), h.names, pools)})
}

func (h *PoolHandler) getPool(w http.ResponseWriter, r *http.Request, params map[string]string) {
	p, err := h.pools.GetPool(r.Context(), params["id"])
	h.respondPool(w, r, http.StatusOK, p, err)
}

func (h *PoolHandler) joinPool(w http.ResponseWriter, r *http.Request, params map[string]string) {
	var req joinPoolRequest
	if err := decodeRequest(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	p, err := h.pools.JoinPool(r.Context(), service.JoinPoolInput{
		PoolID:             params["id"],
		ContributorAddress: req.ContributorAddress,
		Amount:             req.Amount,
		Suggestion:         req.GiftSuggestion,
	})
	h.respondPool(w, r, http.StatusOK, p, err)
}

func (h *PoolHandler) finalizePool(w http.ResponseWriter, r *http.Request, params map[string]string) {
	h.creatorOnly(w, r, params["id"], h.pools.FinalizePool)
}

func (h *PoolHandler) cancelPool(w http.ResponseWriter, r *http.Request, params map[string]string) {
	h.creatorOnly(w, r, params["id"], h.pools.CancelPool)
}

func (h *PoolHandler) creatorOnly(
	w http.ResponseWriter,
	r *http.Request,
	poolID string,
	op func(ctx context.Context, poolID, requester string) (model.Pool, error),
) {
	var req creatorRequest
	if err := decodeRequest(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	p, err := op(r.Context(), poolID, req.RequesterAddress)
	h.respondPool(w, r, http.StatusOK, p, err)
}

func (h *PoolHandler) refreshAggregate(w http.ResponseWriter, r *http.Request, params map[string]string) {
	p, err := h.pools.RefreshAggregate(r.Context(), params["id"])
	h.respondPool(w, r, http.StatusOK, p, err)
}

func (h *PoolHandler) poolEvents(w http.ResponseWriter, r *http.Request, params map[string]string) {
	var limit uint32
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			h.fail(w, r, &requestError{message: "limit must be a positive integer"})
			return
		}
		limit = uint32(n)
	}
	events, err := h.pools.PoolEvents(r.Context(), params["id"], limit)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, map[string]any{"events": events})
}

func (h *PoolHandler) respondPool(w http.ResponseWriter, r *http.Request, code int, p model.Pool, err error) {
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, code, map[string]any{"pool": newPoolView(r.Context(), h.names, p)})
}

func (h *PoolHandler) respond(w http.ResponseWriter, code int, payload map[string]any) {
	payload["success"] = true
	h.writeJSON(w, code, payload)
}

func (h *PoolHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	code := httpStatus(err)
	body := map[string]any{"success": false, "error": err.Error()}
	var reqErr *requestError
	if errors.As(err, &reqErr) && len(reqErr.details) > 0 {
		body["details"] = reqErr.details
	}

	logger := h.logger.With(zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.Int("code", code))
	if code >= http.StatusInternalServerError {
		logger.Error("request failed", zap.Error(err))
		if code == http.StatusInternalServerError {
			body["error"] = "internal error"
		}
	} else {
		logger.Debug("request rejected", zap.Error(err))
	}
	h.writeJSON(w, code, body)
}

func (h *PoolHandler) writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Warn("write response", zap.Error(err))
	}
}

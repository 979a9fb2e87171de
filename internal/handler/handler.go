// Package handler exposes the engine over HTTP.
package handler

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"mortgage-engine/internal/benchmarks"
	"mortgage-engine/internal/engine"
	"mortgage-engine/internal/model"
)

type Handler struct {
	registry   *benchmarks.Registry
	log        zerolog.Logger
	evaluators sync.Map // regime name -> *engine.Evaluator
	now        func() time.Time
}

func New(registry *benchmarks.Registry, log zerolog.Logger) *Handler {
	return &Handler{
		registry: registry,
		log:      log,
		now:      time.Now,
	}
}

// Handle routes a request and logs its outcome.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	start := h.now()
	h.route(ctx)

	h.log.Info().
		Str("method", string(ctx.Method())).
		Str("path", string(ctx.Path())).
		Int("status", ctx.Response.StatusCode()).
		Dur("duration", h.now().Sub(start)).
		Msg("request")
}

func (h *Handler) route(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/health":
		if h.allow(ctx, fasthttp.MethodGet) {
			h.writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
		}
	case "/v1/regimes":
		if h.allow(ctx, fasthttp.MethodGet) {
			h.writeJSON(ctx, fasthttp.StatusOK, model.RegimesResponse{
				Default: h.registry.DefaultName(),
				Regimes: h.registry.Names(),
			})
		}
	case "/v1/feasibility":
		if h.allow(ctx, fasthttp.MethodPost) {
			h.handleFeasibility(ctx)
		}
	case "/v1/offers":
		if h.allow(ctx, fasthttp.MethodPost) {
			h.handleOffers(ctx)
		}
	case "/v1/payment":
		if h.allow(ctx, fasthttp.MethodPost) {
			h.handlePayment(ctx, false)
		}
	case "/v1/schedule":
		if h.allow(ctx, fasthttp.MethodPost) {
			h.handlePayment(ctx, true)
		}
	default:
		h.writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func (h *Handler) allow(ctx *fasthttp.RequestCtx, method string) bool {
	if string(ctx.Method()) == method {
		return true
	}
	ctx.Response.Header.Set("Allow", method)
	h.writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
	return false
}

// evaluator returns the cached evaluator of a regime, building it on first use.
func (h *Handler) evaluator(regime benchmarks.Regime) *engine.Evaluator {
	if ev, ok := h.evaluators.Load(regime.Name); ok {
		return ev.(*engine.Evaluator)
	}
	ev, _ := h.evaluators.LoadOrStore(regime.Name, engine.New(regime.Benchmarks, regime.Rules()...))
	return ev.(*engine.Evaluator)
}

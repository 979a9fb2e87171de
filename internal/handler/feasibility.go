package handler

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"mortgage-engine/internal/benchmarks"
	"mortgage-engine/internal/engine"
	"mortgage-engine/internal/format"
	"mortgage-engine/internal/model"
)

// defaultLoanToPrice sets the loan amount when a request leaves it out.
const defaultLoanToPrice = 0.80

func (h *Handler) handleFeasibility(ctx *fasthttp.RequestCtx) {
	started := h.now()
	regime, profile, ok := h.profileRequest(ctx)
	if !ok {
		return
	}

	ev := h.evaluator(regime)
	result := ev.Evaluate(profile)

	h.log.Debug().
		Str("regime", regime.Name).
		Str("status", string(result.Status)).
		Int("findings", len(result.Findings)).
		Msg("feasibility evaluated")

	h.writeJSON(ctx, fasthttp.StatusOK, model.FeasibilityResponse{
		Metadata:  h.metadata(regime.Name, started),
		Result:    result,
		Breakdown: engine.Breakdown(profile, result),
		Offers:    ev.CompareBanks(profile, regime.Roster()),
	})
}

func (h *Handler) handleOffers(ctx *fasthttp.RequestCtx) {
	started := h.now()
	regime, profile, ok := h.profileRequest(ctx)
	if !ok {
		return
	}

	offers := h.evaluator(regime).CompareBanks(profile, regime.Roster())
	h.writeJSON(ctx, fasthttp.StatusOK, model.OffersResponse{
		Metadata: h.metadata(regime.Name, started),
		Offers:   offers,
	})
}

// profileRequest resolves the regime and decodes and validates the
// borrower profile. It writes the error response itself when it fails.
func (h *Handler) profileRequest(ctx *fasthttp.RequestCtx) (benchmarks.Regime, model.BorrowerProfile, bool) {
	regime, err := h.registry.Lookup(string(ctx.QueryArgs().Peek("regime")))
	if err != nil {
		if errors.Is(err, benchmarks.ErrUnknownRegime) {
			h.writeError(ctx, fasthttp.StatusNotFound, err.Error())
		} else {
			h.writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
		}
		return benchmarks.Regime{}, model.BorrowerProfile{}, false
	}

	var profile model.BorrowerProfile
	if !h.decode(ctx, &profile) {
		return benchmarks.Regime{}, model.BorrowerProfile{}, false
	}
	if profile.LoanAmount == 0 {
		profile.LoanAmount = format.Round(profile.PropertyPrice*defaultLoanToPrice, 0)
	}
	if !h.validateRequest(ctx, &profile) {
		return benchmarks.Regime{}, model.BorrowerProfile{}, false
	}

	return regime, profile, true
}

func (h *Handler) metadata(regime string, started time.Time) model.EvaluationMetadata {
	completed := h.now()
	return model.EvaluationMetadata{
		EvaluationID: uuid.New().String(),
		Regime:       regime,
		StartedAt:    started.UTC().Format(time.RFC3339),
		CompletedAt:  completed.UTC().Format(time.RFC3339),
		DurationMs:   completed.Sub(started).Milliseconds(),
	}
}

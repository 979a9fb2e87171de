package handler

import (
	"github.com/valyala/fasthttp"

	"mortgage-engine/internal/amortization"
	"mortgage-engine/internal/model"
)

func (h *Handler) handlePayment(ctx *fasthttp.RequestCtx, withSchedule bool) {
	var req model.PaymentRequest
	if !h.decode(ctx, &req) || !h.validateRequest(ctx, &req) {
		return
	}

	resp := model.PaymentResponse{
		Summary: amortization.Summary(req.Principal, req.AnnualRate, req.TermYears),
	}
	if withSchedule {
		resp.Schedule = amortization.Schedule(req.Principal, req.AnnualRate, req.TermYears)
	}
	h.writeJSON(ctx, fasthttp.StatusOK, resp)
}

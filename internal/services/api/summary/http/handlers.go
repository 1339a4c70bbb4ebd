// Package http provides http transport for commit summaries
package http

import (
	"encoding/json"
	stdhttp "net/http"

	"gitpulse/internal/modkit/httpkit"
	perr "gitpulse/internal/platform/errors"
	svc "gitpulse/internal/services/api/summary/service"
)

// Register mounts summary endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// compute activity stats for a window
	r.Post("/", httpkit.Handle(h.summarize))

	// dry run the validation pipeline
	r.Post("/validate", httpkit.Handle(h.validate))
}

type handlers struct{ svc svc.Service }

// swagger:route POST /summary Summary summarize
// @Summary Commit activity summary for selected repositories
// @Tags Summary
// @Accept json
// @Produce json
// @Param payload body domain.SummaryRequest true "Query"
// @Success 200 {object} domain.SummaryResponse "ok"
// @Failure 400 {object} httpkit.Envelope "validation failed"
// @Router /summary [post]
func (h *handlers) summarize(r *stdhttp.Request) httpkit.Response {
	payload, err := decodeBody(r)
	if err != nil {
		return httpkit.Error(err)
	}
	out, err := h.svc.Summarize(r.Context(), payload)
	if err != nil {
		return httpkit.Error(err)
	}
	return httpkit.OK(out)
}

// swagger:route POST /summary/validate Summary summaryValidate
// @Summary Validate a summary request without calling GitHub
// @Tags Summary
// @Accept json
// @Produce json
// @Param payload body domain.SummaryRequest true "Query"
// @Success 200 {object} domain.ValidateResponse "ok"
// @Router /summary/validate [post]
func (h *handlers) validate(r *stdhttp.Request) httpkit.Response {
	payload, err := decodeBody(r)
	if err != nil {
		return httpkit.Error(err)
	}
	out, err := h.svc.Validate(r.Context(), payload)
	if err != nil {
		return httpkit.Error(err)
	}
	return httpkit.OK(out)
}

// decodeBody reads the body as untyped JSON. The shape itself is judged by
// the validation pipeline, so only genuinely malformed JSON errors here
func decodeBody(r *stdhttp.Request) (any, error) {
	var payload any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeJSON, "request body must be valid JSON")
	}
	return payload, nil
}

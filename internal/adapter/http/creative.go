package httpadapter

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// handleGetCreative serves GET /api/v1/creatives/{adID}?account_id=&force_refresh=.
func (h *Handler) handleGetCreative(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	accountID := q.Get("account_id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, "account_id is required")
		return
	}
	force := false
	if v := q.Get("force_refresh"); v != "" {
		var err error
		if force, err = strconv.ParseBool(v); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequest, "invalid force_refresh")
			return
		}
	}

	res, err := h.svc.FetchCreative(r.Context(), identityFrom(r.Context()), chi.URLParam(r, "adID"), accountID, force)
	if err != nil {
		h.fail(w, r, "fetch creative", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleBatch serves POST /api/v1/creatives/batch. Per-ad failures are part
// of a 200 response.
func (h *Handler) handleBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if !h.decode(w, r, &req) {
		return
	}
	res, err := h.svc.FetchCreativesBatch(r.Context(), identityFrom(r.Context()), req.AdIDs, req.AccountID)
	if err != nil {
		h.fail(w, r, "fetch creatives batch", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleRefresh serves POST /api/v1/creatives/refresh and answers 202 once
// the job is queued.
func (h *Handler) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if !h.decode(w, r, &req) {
		return
	}
	job, err := h.svc.ScheduleRefresh(r.Context(), identityFrom(r.Context()), req.AdIDs, req.AccountID, req.Force)
	if err != nil {
		h.fail(w, r, "schedule refresh", err)
		return
	}
	writeJSON(w, http.StatusAccepted, refreshResponse{JobID: job.JobID.String(), Queued: len(job.AdIDs)})
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, code := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error(op+" error", slog.String("path", r.URL.Path), slog.Any("error", err))
	} else {
		h.logger.Warn(op+" rejected", slog.String("path", r.URL.Path), slog.String("code", code), slog.Any("error", err))
	}
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal error"
	}
	writeError(w, status, code, msg)
}

package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// maxRequestBody bounds JSON request bodies.
const maxRequestBody = 1 << 20

// batchRequest is the body of POST /api/v1/creatives/batch.
type batchRequest struct {
	AccountID string   `json:"account_id" validate:"required,max=64"`
	AdIDs     []string `json:"ad_ids" validate:"required,max=1000"`
}

// refreshRequest is the body of POST /api/v1/creatives/refresh.
type refreshRequest struct {
	AccountID string   `json:"account_id" validate:"required,max=64"`
	AdIDs     []string `json:"ad_ids" validate:"required,min=1,max=1000,dive,required,max=64"`
	Force     bool     `json:"force"`
}

type refreshResponse struct {
	JobID  string `json:"job_id"`
	Queued int    `json:"queued"`
}

// decode reads a JSON body into dst and validates it. On failure the error
// response has been written and false is returned.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, "invalid JSON body")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		var details []string
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, e := range verrs {
				details = append(details, e.Error())
			}
		}
		writeError(w, http.StatusBadRequest, codeInvalidRequest, "validation failed", details...)
		return false
	}
	return true
}

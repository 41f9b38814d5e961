package domain

import "fmt"

// UpstreamError is an error payload returned by the ad platform. Code is the
// machine-readable error code; Status is the HTTP status of the call or, for
// batched requests, of the individual item.
type UpstreamError struct {
	Status    int    `json:"-"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	Code      int    `json:"code"`
	Subcode   int    `json:"error_subcode"`
	FBTraceID string `json:"fbtrace_id"`
}

func (e *UpstreamError) Error() string {
	if e.Subcode != 0 {
		return fmt.Sprintf("upstream error %d/%d (%s): %s", e.Code, e.Subcode, e.Type, e.Message)
	}
	return fmt.Sprintf("upstream error %d (%s): %s", e.Code, e.Type, e.Message)
}

// RateLimited reports whether the code is one of the platform throttling codes.
func (e *UpstreamError) RateLimited() bool {
	switch e.Code {
	case 4, 17, 32, 613, 80004:
		return true
	}
	return false
}

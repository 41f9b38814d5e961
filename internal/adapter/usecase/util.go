package usecase

import (
	"strings"

	"adpulse/internal/core/domain"
)

// strPtr returns nil for blank strings.
func strPtr(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// intPtr returns nil for non-positive values.
func intPtr(v int) *int {
	if v <= 0 {
		return nil
	}
	return &v
}

// firstNonEmpty returns the first non-blank value as a pointer.
func firstNonEmpty(values ...string) *string {
	for _, v := range values {
		if p := strPtr(v); p != nil {
			return p
		}
	}
	return nil
}

func emptyResolution() domain.ImageResolution {
	return domain.ImageResolution{Quality: domain.QualityUnknown, Provenance: domain.ProvenanceNone}
}

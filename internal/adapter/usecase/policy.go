package usecase

import (
	"time"

	"adpulse/internal/core/domain"
)

// Decision reasons, reported in debug logs.
const (
	ReasonMissing          = "missing"
	ReasonFresh            = "fresh"
	ReasonExhausted        = "exhausted"
	ReasonCacheExpired     = "cache_expired"
	ReasonUpgrade          = "upgrade"
	ReasonIncomplete       = "incomplete"
	ReasonUpgradeExhausted = "upgrade_exhausted"
)

// Decision says what to do with one requested ad. Serve returns the stored
// record to the caller; Fetch queues the ad for an upstream attempt. Both
// may be set, in which case the stored record is provisional.
type Decision struct {
	Serve  bool
	Fetch  bool
	Reason string
}

// ValidityPolicy decides whether a stored record is good enough to skip
// re-fetching.
type ValidityPolicy struct {
	MaxAttempts int
}

// Evaluate inspects rec, which may be nil. A record with usable image and
// text is final when its image is not low quality or it has a live durable
// copy. A failed record that exhausted its attempts is final too. Anything
// else is fetched, and served meanwhile if it carries any data.
//
// Provisional records stop being upgraded once they reach MaxAttempts; they
// stay served at their current quality rather than turning failed.
func (p ValidityPolicy) Evaluate(rec *domain.CreativeRecord, now time.Time) Decision {
	if rec == nil {
		return Decision{Fetch: true, Reason: ReasonMissing}
	}
	exhausted := rec.FetchAttempts >= p.maxAttempts()
	if rec.FetchStatus == domain.FetchStatusFailed && exhausted {
		return Decision{Serve: true, Reason: ReasonExhausted}
	}

	usable := rec.HasAsset() && rec.HasText()
	cacheLive := rec.CacheLive(now)
	if usable && rec.HasCachedCopy() && !cacheLive {
		return Decision{Serve: true, Fetch: true, Reason: ReasonCacheExpired}
	}
	if usable && (rec.Quality != domain.QualityLow || cacheLive) {
		return Decision{Serve: true, Reason: ReasonFresh}
	}

	provisional := rec.HasAsset() || rec.HasText()
	if provisional && exhausted {
		return Decision{Serve: true, Reason: ReasonUpgradeExhausted}
	}
	reason := ReasonIncomplete
	if usable {
		reason = ReasonUpgrade
	}
	return Decision{Serve: provisional, Fetch: true, Reason: reason}
}

func (p ValidityPolicy) maxAttempts() int {
	if p.MaxAttempts <= 0 {
		return domain.MaxFetchAttempts
	}
	return p.MaxAttempts
}

package types

import "time"

// Career page result sources, in order of preference.
const (
	SourceCache          = "cache"
	SourceTargetedSearch = "targeted_google_clearbit"
	SourceBroadSearch    = "broad_google"
)

// CareerPageResult describes a discovered company careers page.
// Results are persisted keyed by company name and treated as stale
// after 30 days.
type CareerPageResult struct {
	Domain          string    `json:"domain,omitempty"`
	CareerURL       string    `json:"career_url"`
	Source          string    `json:"source"`
	ConfidenceScore int       `json:"confidence_score"`
	LastVerified    time.Time `json:"last_verified"`
}

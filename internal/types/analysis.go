// Package types provides type definitions for structured data used throughout the job scanner system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JobPostingRequest represents an incoming analysis request.
// Content is the only required field; URL, RawHTML and the two hint
// fields are supplied opportunistically by the browser extension.
type JobPostingRequest struct {
	Content      string `json:"content" validate:"required"`
	URL          string `json:"url,omitempty"`
	RawHTML      string `json:"rawHTML,omitempty"`
	Title        string `json:"title,omitempty"`
	CompanyGuess string `json:"companyGuess,omitempty"`
}

// Skill represents a single technology skill extracted from a posting,
// with an optional years-of-experience requirement.
type Skill struct {
	Name            string `json:"name"`
	YearsExperience string `json:"years_experience,omitempty"`
	IsRequired      bool   `json:"is_required"`
}

// JobAnalysisResult is the structured output of analyzing one job posting.
// It is produced either by a site-specific parser or by the generic
// analyzer; the HTTP layer may backfill JobTitle/CompanyName from caller
// hints and set CompanyURL from career-page enrichment.
type JobAnalysisResult struct {
	Success           bool               `json:"success"`
	CompanyName       string             `json:"company_name,omitempty"`
	CompanyURL        string             `json:"companyUrl,omitempty"`
	JobTitle          string             `json:"job_title,omitempty"`
	Keywords          []string           `json:"keywords"`
	Skills            []Skill            `json:"skills"`
	ExperienceLevel   string             `json:"experience_level,omitempty"`
	AdditionalDetails map[string]any     `json:"additional_details"`
	ConfidenceScores  map[string]float64 `json:"confidence_scores"`
}

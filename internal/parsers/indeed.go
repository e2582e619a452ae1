package parsers

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Jeffawe/JobScanner/internal/types"
)

var indeedCompanySelectors = []string{
	`[data-testid="inlineHeader-companyName"]`,
	".jobsearch-InlineCompanyRating div",
	`[class*="company-name"]`,
	`[data-testid*="company"]`,
}

const indeedDescriptionSelector = "#jobDescriptionText, .jobsearch-jobDescriptionText"

// IndeedParser parses Indeed job posting pages.
type IndeedParser struct {
	company *companyLocator
}

func NewIndeedParser() *IndeedParser {
	return &IndeedParser{
		company: newCompanyLocator("Indeed", indeedCompanySelectors),
	}
}

func (p *IndeedParser) Name() string { return "indeed" }

func (p *IndeedParser) CanHandle(rawURL string) bool {
	return hostContains(rawURL, "indeed.com")
}

func (p *IndeedParser) Parse(rawHTML string, rawURL string) (*types.JobAnalysisResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, &ParseError{Message: "failed to parse Indeed markup", Cause: err}
	}

	description := strings.ToLower(doc.Find(indeedDescriptionSelector).Text())

	details := make(map[string]any)
	if location := strings.TrimSpace(doc.Find(`[data-testid="job-location"]`).First().Text()); location != "" {
		details["location"] = location
	}
	if salary := strings.TrimSpace(doc.Find(`[data-testid="attribute_snippet_testid"]`).First().Text()); salary != "" {
		details["salary"] = salary
	}
	if employmentType := employmentTypeFromText(description); employmentType != "" {
		details["employment_type"] = employmentType
	}

	return &types.JobAnalysisResult{
		Success:           true,
		CompanyName:       p.company.resolve(doc),
		JobTitle:          strings.TrimSpace(doc.Find(`h1[data-testid="jobsearch-JobInfoHeader-title"]`).First().Text()),
		Keywords:          keywordsFromText(description),
		Skills:            skillsFromText(description),
		ExperienceLevel:   experienceLevelFromText(description),
		AdditionalDetails: details,
		ConfidenceScores:  map[string]float64{"parsing": structuredParsingConfidence},
	}, nil
}

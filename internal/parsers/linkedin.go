package parsers

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Jeffawe/JobScanner/internal/types"
)

// linkedInTitleSelectors locate the job title, newest page layout first.
var linkedInTitleSelectors = []string{
	"h1.top-card-layout__title",
	".job-details-jobs-unified-top-card__job-title h1",
	".jobs-unified-top-card__job-title h1",
}

// linkedInCompanySelectors feed the company fallback chain, most
// specific first, generic attribute wildcards last.
var linkedInCompanySelectors = []string{
	`[data-test-id="job-details-header-company-name"]`,
	`[data-test-id="company-name"]`,
	".job-details-jobs-unified-top-card__company-name a",
	".jobs-unified-top-card__company-name a",
	".jobs-unified-top-card__company-name",
	".job-details__company-link",
	".jobs-company-name",
	`[data-tracking-control-name="public_jobs_topcard-org-name"]`,
	`[data-tracking-control-name="public_jobs_topcard_org_name"]`,
	".topcard__org-name-redirect",
	".job-details-jobs-unified-top-card__primary-description-container a",
	`[class*="company-name"]`,
	`[class*="employer-name"]`,
	`[data-test*="company"]`,
	`[data-testid*="company"]`,
}

const linkedInDescriptionSelector = ".jobs-box__html-content, .job-details-jobs-unified-top-card__job-description"

var linkedInLocationSelectors = []string{
	".job-details-jobs-unified-top-card__bullet",
	".jobs-unified-top-card__bullet",
}

// LinkedInParser parses LinkedIn job posting pages.
type LinkedInParser struct {
	company *companyLocator
}

func NewLinkedInParser() *LinkedInParser {
	return &LinkedInParser{
		company: newCompanyLocator("LinkedIn", linkedInCompanySelectors),
	}
}

func (p *LinkedInParser) Name() string { return "linkedin" }

func (p *LinkedInParser) CanHandle(rawURL string) bool {
	return hostContains(rawURL, "linkedin.com")
}

func (p *LinkedInParser) Parse(rawHTML string, rawURL string) (*types.JobAnalysisResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, &ParseError{Message: "failed to parse LinkedIn markup", Cause: err}
	}

	description := strings.ToLower(doc.Find(linkedInDescriptionSelector).Text())
	pageText := strings.ToLower(doc.Text())

	details := make(map[string]any)
	if location := p.extractLocation(doc); location != "" {
		details["location"] = location
	}
	if employmentType := employmentTypeFromText(pageText); employmentType != "" {
		details["employment_type"] = employmentType
	}
	if seniority := p.extractSeniorityInsight(doc); seniority != "" {
		details["seniority_level"] = seniority
	}

	return &types.JobAnalysisResult{
		Success:           true,
		CompanyName:       p.company.resolve(doc),
		JobTitle:          firstSelectorText(doc, linkedInTitleSelectors),
		Keywords:          keywordsFromText(description),
		Skills:            skillsFromText(description),
		ExperienceLevel:   experienceLevelFromText(pageText),
		AdditionalDetails: details,
		ConfidenceScores:  map[string]float64{"parsing": structuredParsingConfidence},
	}, nil
}

// extractLocation accepts the first top-card bullet that looks like a
// location: either a remote/hybrid label or a "City, Region" string.
func (p *LinkedInParser) extractLocation(doc *goquery.Document) string {
	location := ""
	for _, selector := range linkedInLocationSelectors {
		doc.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			text := strings.TrimSpace(s.Text())
			lower := strings.ToLower(text)
			if strings.Contains(lower, "remote") || strings.Contains(lower, "hybrid") || strings.Contains(text, ",") {
				location = text
				return false
			}
			return true
		})
		if location != "" {
			break
		}
	}
	return location
}

// extractSeniorityInsight reads the "Seniority level: X" job insight
// when the page carries one.
func (p *LinkedInParser) extractSeniorityInsight(doc *goquery.Document) string {
	seniority := ""
	doc.Find(".job-details-jobs-unified-top-card__job-insight").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		if strings.Contains(strings.ToLower(text), "seniority level") {
			parts := strings.Split(text, ":")
			seniority = strings.TrimSpace(parts[len(parts)-1])
			return false
		}
		return true
	})
	return seniority
}

// firstSelectorText tries selectors in order and returns the first
// non-empty trimmed element text.
func firstSelectorText(doc *goquery.Document, selectors []string) string {
	for _, selector := range selectors {
		if text := strings.TrimSpace(doc.Find(selector).First().Text()); text != "" {
			return text
		}
	}
	return ""
}

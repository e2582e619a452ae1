package parsers

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// companyLocator resolves a company name from parsed markup via an
// ordered fallback chain: JSON-LD structured data, then site CSS
// selectors, then meta tags and the page title, then free-text
// patterns. Each step runs only when the prior one produced nothing.
type companyLocator struct {
	selectors  []string
	noiseWords []string

	siteSuffix *regexp.Regexp
	titleSplit *regexp.Regexp
}

// newCompanyLocator builds a locator for one site. siteName is the
// display name appearing in page-title suffixes (e.g. "LinkedIn");
// selectors are the site's CSS locators in most-specific-first order.
func newCompanyLocator(siteName string, selectors []string) *companyLocator {
	quoted := regexp.QuoteMeta(siteName)
	return &companyLocator{
		selectors:  selectors,
		noiseWords: []string{strings.ToLower(siteName), "job", "career", "position"},
		siteSuffix: regexp.MustCompile(`\s*[|\-]\s*` + quoted + `.*$`),
		titleSplit: regexp.MustCompile(`-\s*([^|]+?)\s*\|\s*` + quoted),
	}
}

func (l *companyLocator) resolve(doc *goquery.Document) string {
	if name := companyFromJSONLD(doc); name != "" {
		return name
	}
	if name := l.fromSelectors(doc); name != "" {
		return name
	}
	if name := l.fromMetaTags(doc); name != "" {
		return name
	}
	return l.fromTextPatterns(doc)
}

// companyJSONPaths are known object-graph paths inside job posting
// JSON-LD blocks, most reliable first.
var companyJSONPaths = []string{
	"hiringOrganization.name",
	"hiringOrganization.legalName",
	"employmentType.hiringOrganization.name",
	"publisher.name",
	"author.name",
	"organization.name",
	"company.name",
	"employer.name",
}

// companyJSONKeys are top-level keys tried after the paths; each may
// hold a plain string or an object with a "name" field.
var companyJSONKeys = []string{"companyName", "company", "employer", "organization"}

func companyFromJSONLD(doc *goquery.Document) string {
	name := ""
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var data any
		if err := json.Unmarshal([]byte(s.Text()), &data); err != nil {
			return true
		}
		switch v := data.(type) {
		case map[string]any:
			name = companyFromJSONObject(v)
		case []any:
			for _, item := range v {
				if obj, ok := item.(map[string]any); ok {
					if name = companyFromJSONObject(obj); name != "" {
						break
					}
				}
			}
		}
		return name == ""
	})
	return name
}

func companyFromJSONObject(data map[string]any) string {
	for _, path := range companyJSONPaths {
		if value := nestedString(data, path); value != "" {
			return value
		}
	}
	for _, key := range companyJSONKeys {
		switch v := data[key].(type) {
		case string:
			return strings.TrimSpace(v)
		case map[string]any:
			if name, ok := v["name"].(string); ok {
				return strings.TrimSpace(name)
			}
		}
	}
	return ""
}

// nestedString walks a dot-separated path through nested JSON objects,
// returning "" when any hop is missing or the leaf is not a string.
func nestedString(data map[string]any, path string) string {
	current := any(data)
	for _, key := range strings.Split(path, ".") {
		obj, ok := current.(map[string]any)
		if !ok {
			return ""
		}
		if current, ok = obj[key]; !ok {
			return ""
		}
	}
	if s, ok := current.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

func (l *companyLocator) fromSelectors(doc *goquery.Document) string {
	for _, selector := range l.selectors {
		text := strings.TrimSpace(doc.Find(selector).First().Text())
		if len(text) > 1 && len(text) < 100 {
			return text
		}
	}
	return ""
}

var companyMetaSelectors = []string{
	`meta[property="og:site_name"]`,
	`meta[name="author"]`,
	`meta[property="article:author"]`,
	`meta[name="company"]`,
	`meta[property="og:title"]`,
}

func (l *companyLocator) fromMetaTags(doc *goquery.Document) string {
	for _, selector := range companyMetaSelectors {
		content, _ := doc.Find(selector).First().Attr("content")
		if len(content) > 1 && len(content) < 100 {
			cleaned := strings.TrimSpace(l.siteSuffix.ReplaceAllString(content, ""))
			if cleaned != "" {
				return cleaned
			}
		}
	}

	// Page titles often follow "Job Title - Company Name | SiteName".
	title := strings.TrimSpace(doc.Find("title").First().Text())
	if m := l.titleSplit.FindStringSubmatch(title); m != nil {
		if company := strings.TrimSpace(m[1]); len(company) > 1 {
			return company
		}
	}
	return ""
}

var companyTextPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)company:\s*([^\n\r,]+)`),
	regexp.MustCompile(`(?i)employer:\s*([^\n\r,]+)`),
	regexp.MustCompile(`(?i)organization:\s*([^\n\r,]+)`),
	regexp.MustCompile(`(?i)hiring\s+company:\s*([^\n\r,]+)`),
}

func (l *companyLocator) fromTextPatterns(doc *goquery.Document) string {
	pageText := doc.Text()
	for _, pattern := range companyTextPatterns {
		for _, m := range pattern.FindAllStringSubmatch(pageText, -1) {
			candidate := strings.TrimSpace(m[1])
			if len(candidate) <= 1 || len(candidate) >= 100 {
				continue
			}
			if containsNoiseWord(candidate, l.noiseWords) {
				continue
			}
			return candidate
		}
	}
	return ""
}

func containsNoiseWord(candidate string, noiseWords []string) bool {
	lower := strings.ToLower(candidate)
	for _, word := range noiseWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

package research

import (
	"regexp"
	"strings"
)

// jobBoardDomains are aggregator hosts the resolver must never return:
// the goal is the company's own page, not a listing.
var jobBoardDomains = []string{
	"indeed.com", "linkedin.com", "glassdoor.com", "ziprecruiter.com",
	"monster.com", "careerbuilder.com", "simplyhired.com",
}

// careerKeywords gate scoring: a result with none of these in its URL
// or title is rejected outright.
var careerKeywords = []string{"career", "jobs", "hiring", "employment", "work", "join"}

var careerURLTerms = []string{"career", "jobs", "hiring"}

var careerPathPatterns = []string{"/careers", "/jobs", "/hiring", "careers.", "jobs."}

var officialTitlePhrases = []string{"careers at", "jobs at", "work at", "join our team"}

// legalSuffixPatterns strip legal-entity suffixes off a company name
// before substring comparisons. Applied in order, each against the
// already-cleaned remainder.
var legalSuffixPatterns = func() []*regexp.Regexp {
	suffixes := []string{"Inc", "Inc.", "LLC", "Corp", "Corp.", "Corporation", "Ltd", "Limited", "Co"}
	patterns := make([]*regexp.Regexp, 0, len(suffixes))
	for _, suffix := range suffixes {
		patterns = append(patterns, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(suffix)+`\b\s*$`))
	}
	return patterns
}()

// CleanCompanyName strips trailing legal-entity suffixes, so
// "Acme Inc" compares as "Acme".
func CleanCompanyName(companyName string) string {
	cleaned := companyName
	for _, pattern := range legalSuffixPatterns {
		cleaned = pattern.ReplaceAllString(cleaned, "")
	}
	return strings.TrimSpace(cleaned)
}

// ScoreCareerURL scores one search result as a candidate career page.
// Job-board hosts and results without any career keyword score 0
// regardless of other signals. Point values are multiplied by 1.2 in
// targeted mode, which also adds a flat domain-trust bonus.
func ScoreCareerURL(resultURL, title, companyName string, targeted bool) int {
	if resultURL == "" {
		return 0
	}

	urlLower := strings.ToLower(resultURL)
	titleLower := strings.ToLower(title)
	companyLower := strings.ToLower(CleanCompanyName(companyName))

	for _, board := range jobBoardDomains {
		if strings.Contains(urlLower, board) {
			return 0
		}
	}

	hasCareerKeyword := false
	for _, keyword := range careerKeywords {
		if strings.Contains(urlLower, keyword) || strings.Contains(titleLower, keyword) {
			hasCareerKeyword = true
			break
		}
	}
	if !hasCareerKeyword {
		return 0
	}

	multiplier := 1.0
	if targeted {
		multiplier = 1.2
	}

	score := 0
	if containsAnyTerm(urlLower, careerURLTerms) {
		score += int(50 * multiplier)
	}
	if companyLower != "" && strings.Contains(titleLower, companyLower) {
		score += int(75 * multiplier)
	}
	if containsAnyTerm(urlLower, careerPathPatterns) {
		score += int(40 * multiplier)
	}
	if containsAnyTerm(titleLower, officialTitlePhrases) {
		score += int(60 * multiplier)
	}
	if targeted {
		score += 30
	}
	return score
}

type scoredCandidate struct {
	url   string
	title string
	score int
}

// bestCareerURL scores every result and returns the single best
// candidate when it clears the mode's threshold. Ties keep the
// first-seen result.
func bestCareerURL(results []SearchResult, companyName string, targeted bool) (scoredCandidate, bool) {
	var best scoredCandidate
	for _, r := range results {
		score := ScoreCareerURL(r.URL, r.Title, companyName, targeted)
		if score > best.score {
			best = scoredCandidate{url: r.URL, title: r.Title, score: score}
		}
	}

	threshold := broadScoreThreshold
	if targeted {
		threshold = targetedScoreThreshold
	}
	if best.score >= threshold {
		return best, true
	}
	return scoredCandidate{}, false
}

func containsAnyTerm(haystack string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(haystack, term) {
			return true
		}
	}
	return false
}

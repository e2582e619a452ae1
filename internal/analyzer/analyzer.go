package analyzer

import (
	"fmt"
	"math"

	"github.com/Jeffawe/JobScanner/internal/nlp"
	"github.com/Jeffawe/JobScanner/internal/types"
)

// Analyzer extracts structured job posting data from unstructured text.
// It holds references to the process-wide NLP resources and carries no
// mutable state, so a single instance serves concurrent requests.
type Analyzer struct {
	ranker nlp.KeywordRanker
	ner    nlp.EntityRecognizer
}

// New creates an Analyzer using the given keyword ranker and entity
// recognizer.
func New(ranker nlp.KeywordRanker, ner nlp.EntityRecognizer) *Analyzer {
	return &Analyzer{ranker: ranker, ner: ner}
}

// Analyze extracts company, title, skills, keywords, experience level
// and additional details from job posting text. Caller-supplied hints
// backfill only the fields extraction could not derive. Individual field
// misses are represented as absent fields; only an unexpected fault in
// the analysis path returns an error.
func (a *Analyzer) Analyze(content, sourceURL, titleHint, companyHint string) (result *types.JobAnalysisResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = &AnalysisError{Message: fmt.Sprintf("unexpected fault: %v", r)}
		}
	}()

	jobTitle := a.extractJobTitle(content)
	if jobTitle == "" && titleHint != "" {
		jobTitle = titleHint
	}

	companyName := a.extractCompanyName(content)
	if companyName == "" && companyHint != "" {
		companyName = companyHint
	}

	skills := a.extractSkills(content)
	keywords := a.extractKeywords(content)
	experienceLevel := extractExperienceLevel(content)

	details := extractAdditionalDetails(content, sourceURL)
	if titleHint != "" {
		details["page_title"] = titleHint
	}
	if companyHint != "" {
		details["company_guess"] = companyHint
	}

	return &types.JobAnalysisResult{
		Success:           true,
		CompanyName:       companyName,
		JobTitle:          jobTitle,
		Keywords:          keywords,
		Skills:            skills,
		ExperienceLevel:   experienceLevel,
		AdditionalDetails: details,
		ConfidenceScores:  confidenceScores(companyName, jobTitle, len(skills), len(keywords)),
	}, nil
}

// extractKeywords returns the ranked keyphrase list for the full
// content. The ranked order is preserved as-is; keywords are not
// deduplicated against skills.
func (a *Analyzer) extractKeywords(content string) []string {
	phrases := a.ranker.Rank(content, 1, 2, 15)
	keywords := make([]string, 0, len(phrases))
	for _, p := range phrases {
		keywords = append(keywords, p.Text)
	}
	return keywords
}

// confidenceScores derives per-field confidence. Present fields get a
// fixed score; skills and keywords accumulate per-item trust capped at
// 0.9. No field ever reaches 1.0.
func confidenceScores(companyName, jobTitle string, numSkills, numKeywords int) map[string]float64 {
	scores := map[string]float64{
		"company_name": 0.0,
		"job_title":    0.0,
	}
	if companyName != "" {
		scores["company_name"] = 0.8
	}
	if jobTitle != "" {
		scores["job_title"] = 0.9
	}
	scores["skills"] = math.Min(0.9, float64(numSkills)*0.1)
	scores["keywords"] = math.Min(0.9, float64(numKeywords)*0.05)
	return scores
}

package analyzer

import (
	"strings"

	"github.com/Jeffawe/JobScanner/internal/nlp"
	"github.com/Jeffawe/JobScanner/internal/types"
)

// companyNameScanWords bounds the named-entity scan to the head of the
// posting, where the company is almost always introduced.
const companyNameScanWords = 100

// skillContextWindow is the number of words kept on each side of a
// skill mention when searching for experience and requirement cues.
const skillContextWindow = 50

// extractJobTitle tries the ordered title patterns, accepting a capture
// only when it contains a job-title vocabulary word, then falls back to
// the first line or sentence when that contains a vocabulary word.
// Returns "" when nothing matches.
func (a *Analyzer) extractJobTitle(content string) string {
	for _, pattern := range titlePatterns {
		m := pattern.FindStringSubmatch(content)
		if m == nil {
			continue
		}
		title := strings.TrimSpace(m[1])
		lower := strings.ToLower(title)
		for word := range jobTitleVocabulary {
			if strings.Contains(lower, word) {
				return title
			}
		}
	}

	// Fallback: first line (or first sentence for single-line content)
	// if it mentions any title vocabulary word verbatim.
	firstLine := content
	if idx := strings.Index(content, "\n"); idx >= 0 {
		firstLine = content[:idx]
	} else if idx := strings.Index(content, "."); idx >= 0 {
		firstLine = content[:idx]
	}
	for _, word := range strings.Fields(strings.ToLower(firstLine)) {
		if jobTitleVocabulary[word] {
			return strings.TrimSpace(firstLine)
		}
	}

	return ""
}

// extractCompanyName unions organization entities from the first
// companyNameScanWords words with regex pattern matches over the full
// text, returning the first candidate in that order.
func (a *Analyzer) extractCompanyName(content string) string {
	var candidates []string

	words := strings.Fields(content)
	if len(words) > companyNameScanWords {
		words = words[:companyNameScanWords]
	}
	head := strings.Join(words, " ")

	for _, ent := range a.ner.Entities(head) {
		if ent.Label == nlp.LabelOrg && len(strings.Fields(ent.Text)) <= 4 {
			candidates = append(candidates, ent.Text)
		}
	}

	for _, pattern := range companyPatterns {
		for _, m := range pattern.FindAllStringSubmatch(content, -1) {
			candidates = append(candidates, m[1])
		}
	}

	if len(candidates) == 0 {
		return ""
	}
	return strings.TrimSpace(candidates[0])
}

// extractSkills ranks multi-word keyphrases over the content and keeps
// those overlapping the skill vocabulary. Years-of-experience and the
// required flag are derived independently per skill from its context
// window. Duplicate and synonym mentions are kept as-is.
func (a *Analyzer) extractSkills(content string) []types.Skill {
	phrases := a.ranker.Rank(content, 1, 3, 20)

	skills := make([]types.Skill, 0)
	for _, p := range phrases {
		if !overlapsSkillVocabulary(p.Text) {
			continue
		}
		context := contextAroundSkill(content, p.Text, skillContextWindow)
		skills = append(skills, types.Skill{
			Name:            p.Text,
			YearsExperience: yearsFromContext(context),
			IsRequired:      isSkillRequired(context),
		})
	}
	return skills
}

// overlapsSkillVocabulary reports whether any vocabulary skill appears
// inside the phrase (case-insensitive).
func overlapsSkillVocabulary(phrase string) bool {
	lower := strings.ToLower(phrase)
	for _, skill := range skillVocabulary {
		if strings.Contains(lower, skill) {
			return true
		}
	}
	return false
}

// contextAroundSkill returns up to window words on each side of the
// first word containing the skill. Returns "" when the skill is never
// mentioned as a single word (multi-word phrases yield no context).
func contextAroundSkill(content, skill string, window int) string {
	words := strings.Fields(content)
	skillLower := strings.ToLower(skill)

	idx := -1
	for i, word := range words {
		if strings.Contains(strings.ToLower(word), skillLower) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ""
	}

	start := max(0, idx-window)
	end := min(len(words), idx+window)
	return strings.Join(words[start:end], " ")
}

// yearsFromContext extracts a years-of-experience requirement from a
// skill's context window, formatted as "n+ years" or "n-m years".
func yearsFromContext(context string) string {
	for _, pattern := range experiencePatterns {
		m := pattern.FindStringSubmatch(context)
		if m == nil {
			continue
		}
		if len(m) > 2 && m[2] != "" {
			return m[1] + "-" + m[2] + " years"
		}
		return m[1] + "+ years"
	}
	return ""
}

// isSkillRequired reports whether the context window contains a required
// indicator. There is deliberately no preferred-indicator check: a skill
// is optional unless a required indicator appears.
func isSkillRequired(context string) bool {
	lower := strings.ToLower(context)
	for _, indicator := range requiredIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}

// extractExperienceLevel scans for an explicit seniority label first,
// then a bare years figure. The first capture is returned verbatim,
// without normalization; "" means no level was stated.
func extractExperienceLevel(content string) string {
	for _, pattern := range experienceLevelPatterns {
		if m := pattern.FindStringSubmatch(content); m != nil {
			return m[1]
		}
	}
	return ""
}

package parsers

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/Jeffawe/JobScanner/internal/types"
)

// techSkills is the fixed skill vocabulary shared by the site parsers.
// Matching is lower-cased substring presence.
var techSkills = []string{
	"python", "javascript", "java", "react", "angular", "vue", "node.js",
	"sql", "postgresql", "mysql", "mongodb", "redis", "docker", "kubernetes",
	"aws", "azure", "gcp", "git", "jenkins", "ci/cd", "rest api", "graphql",
}

// skillRequiredIndicators mark every matched skill required when any of
// them appears in the description text.
var skillRequiredIndicators = []string{"required", "must have", "essential"}

// skillYearsPatterns is one compiled years-of-experience pattern per
// vocabulary skill, anchored on the skill name itself.
var skillYearsPatterns = func() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(techSkills))
	for _, skill := range techSkills {
		patterns[skill] = regexp.MustCompile(
			`(?i)(\d+)\+?\s*years?\s*(?:of\s*)?(?:experience\s*)?(?:with\s*|in\s*)?` + regexp.QuoteMeta(skill))
	}
	return patterns
}()

// skillsFromText matches the skill vocabulary against lower-cased
// description text. Years of experience are looked up per skill; the
// required flag is a property of the whole description, shared by every
// matched skill.
func skillsFromText(text string) []types.Skill {
	skills := make([]types.Skill, 0)

	required := false
	for _, indicator := range skillRequiredIndicators {
		if strings.Contains(text, indicator) {
			required = true
			break
		}
	}

	for _, skill := range techSkills {
		if !strings.Contains(text, skill) {
			continue
		}
		years := ""
		if m := skillYearsPatterns[skill].FindStringSubmatch(text); m != nil {
			years = m[1] + "+ years"
		}
		skills = append(skills, types.Skill{
			Name:            titleCase(skill),
			YearsExperience: years,
			IsRequired:      required,
		})
	}
	return skills
}

var seniorityTiers = []struct {
	label      string
	indicators []string
}{
	{"Senior", []string{"senior", "sr.", "lead", "principal"}},
	{"Junior", []string{"junior", "jr.", "entry level", "graduate"}},
	{"Mid-Level", []string{"mid-level", "intermediate", "3-5 years"}},
}

// experienceLevelFromText classifies seniority by fixed tier precedence:
// senior indicators beat junior, junior beat mid-level. Text containing
// none of the indicators reports "Not specified".
func experienceLevelFromText(text string) string {
	for _, tier := range seniorityTiers {
		for _, indicator := range tier.indicators {
			if strings.Contains(text, indicator) {
				return tier.label
			}
		}
	}
	return "Not specified"
}

// keywordVocabulary is checked by presence; output order is vocabulary
// order, not occurrence order.
var keywordVocabulary = []string{
	"remote", "hybrid", "full-time", "part-time", "contract",
	"startup", "enterprise", "agile", "scrum", "team lead",
}

func keywordsFromText(text string) []string {
	keywords := make([]string, 0)
	for _, keyword := range keywordVocabulary {
		if strings.Contains(text, keyword) {
			keywords = append(keywords, keyword)
		}
	}
	return keywords
}

// employmentTypeFromText returns the first matching employment type
// label, or "" when none is mentioned.
func employmentTypeFromText(text string) string {
	switch {
	case strings.Contains(text, "full-time"):
		return "Full-time"
	case strings.Contains(text, "part-time"):
		return "Part-time"
	case strings.Contains(text, "contract"):
		return "Contract"
	case strings.Contains(text, "internship"):
		return "Internship"
	}
	return ""
}

// titleCase canonicalizes a vocabulary skill name: the first letter of
// every alphabetic run is upper-cased, the rest lower-cased, so
// "node.js" becomes "Node.Js" and "rest api" becomes "Rest Api".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		switch {
		case !unicode.IsLetter(r):
			b.WriteRune(r)
			prevLetter = false
		case prevLetter:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(unicode.ToUpper(r))
			prevLetter = true
		}
	}
	return b.String()
}

package analyzer

import "regexp"

// Process-wide read-only vocabularies and patterns. Compiled once at
// startup and never mutated, so they are safe for concurrent reads.

// jobTitleVocabulary is the set of words that validate a candidate
// job title.
var jobTitleVocabulary = map[string]bool{
	"software": true, "engineer": true, "developer": true,
	"programmer": true, "architect": true, "manager": true,
	"lead": true, "senior": true, "junior": true, "analyst": true,
	"scientist": true, "designer": true, "consultant": true,
	"specialist": true, "coordinator": true, "director": true,
}

// titlePatterns are tried in order; the first whose captured phrase also
// contains a jobTitleVocabulary word wins.
var titlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)(?:position|role|job)\s*:?\s*([A-Z][a-zA-Z \t\-/]+(?:Engineer|Developer|Manager|Analyst|Designer|Lead|Director))`),
	regexp.MustCompile(`(?im)(?:hiring|seeking)\s+(?:a|an)?\s*([A-Z][a-zA-Z \t\-/]+(?:Engineer|Developer|Manager|Analyst|Designer|Lead|Director))`),
	regexp.MustCompile(`(?im)^([A-Z][a-zA-Z \t\-/]+(?:Engineer|Developer|Manager|Analyst|Designer|Lead|Director))`),
}

// companyPatterns complement named-entity candidates.
var companyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:at|@)\s+([A-Z][a-zA-Z &]+(?:Inc|LLC|Corp|Ltd|Company)?)`),
	regexp.MustCompile(`(?i)([A-Z][a-zA-Z &]+(?:Inc|LLC|Corp|Ltd|Company))\s+is\s+(?:hiring|looking)`),
}

// skillVocabulary is the fixed skill vocabulary, grouped by category.
// Ranked keyphrases are kept only when they overlap one of these.
var skillVocabulary = []string{
	// programming
	"python", "java", "javascript", "c++", "c#", "ruby", "go", "rust",
	// web
	"html", "css", "react", "angular", "vue", "node.js", "express",
	// database
	"sql", "mysql", "postgresql", "mongodb", "redis",
	// cloud
	"aws", "azure", "gcp", "docker", "kubernetes",
	// tools
	"git", "jenkins", "jira", "confluence",
}

// experiencePatterns match years-of-experience requirements within a
// skill's context window.
var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)[+\-\s]*(?:to|-|–)?\s*(\d+)?\s*(?:years?|yrs?)\s+(?:of\s+)?experience`),
	regexp.MustCompile(`(?i)(\d+)[+\s]*(?:years?|yrs?)\s+(?:of\s+)?(?:experience|exp)`),
	regexp.MustCompile(`(?i)minimum\s+(\d+)\s+(?:years?|yrs?)`),
	regexp.MustCompile(`(?i)at\s+least\s+(\d+)\s+(?:years?|yrs?)`),
}

// requiredIndicators mark a skill as required when present in its
// context window. There is no preferred-indicator counterpart: absence
// of a required indicator leaves the skill optional.
var requiredIndicators = []string{"required", "must have", "essential", "mandatory"}

// experienceLevelPatterns classify overall seniority. The explicit label
// pattern is tried before the numeric one; the raw capture is reported
// verbatim.
var experienceLevelPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(entry.level|junior|senior|lead|principal|staff)`),
	regexp.MustCompile(`(?i)(\d+)[+\s]*(?:years?|yrs?)\s+(?:of\s+)?(?:total\s+)?experience`),
}

var salaryPattern = regexp.MustCompile(`\$[\d,]+(?:\s*-\s*\$?[\d,]+)?(?:\s*(?:per\s+)?(?:year|annually|k|K))?`)

var remoteKeywords = []string{"remote", "work from home", "distributed", "telecommute"}

var companySizePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+[+\-\s]*(?:to|-)?\s*\d*)\s+employees`),
	regexp.MustCompile(`(?i)(?:startup|small|medium|large|enterprise)\s+(?:company|organization)`),
}

var educationKeywords = []string{"bachelor", "master", "phd", "degree", "university", "college"}

package nlp

import (
	"strings"
	"unicode"
)

// OrgRecognizer is a local EntityRecognizer that detects organization
// names as spans of consecutive capitalized words anchored by a
// legal-entity or company-noun marker (Inc, LLC, Labs, Technologies...).
// It deliberately over-requires the marker rather than over-reporting:
// company extraction has regex fallbacks for unmarked names.
type OrgRecognizer struct {
	markers      map[string]bool
	leadingNoise map[string]bool
}

// NewOrgRecognizer creates a recognizer with the built-in marker set.
func NewOrgRecognizer() *OrgRecognizer {
	markers := []string{
		"inc", "llc", "corp", "ltd", "co", "company", "corporation",
		"limited", "group", "labs", "technologies", "systems",
		"solutions", "software", "studio", "studios", "ventures",
	}
	set := make(map[string]bool, len(markers))
	for _, m := range markers {
		set[m] = true
	}

	// Capitalized sentence-starters and verbs that precede a company
	// name but are not part of it.
	noise := []string{
		"join", "we", "the", "about", "our", "at", "as", "a", "an",
		"in", "on", "to", "is", "are", "welcome", "why", "who",
		"apply", "now", "today", "hiring", "work", "working", "with",
	}
	noiseSet := make(map[string]bool, len(noise))
	for _, n := range noise {
		noiseSet[n] = true
	}

	return &OrgRecognizer{markers: set, leadingNoise: noiseSet}
}

// Entities returns ORG-labeled spans of up to five capitalized words
// ending in a company marker, in order of appearance.
func (r *OrgRecognizer) Entities(text string) []Entity {
	words := strings.Fields(text)
	var entities []Entity

	var span []string
	flush := func() {
		for len(span) > 0 && r.leadingNoise[strings.ToLower(span[0])] {
			span = span[1:]
		}
		if len(span) >= 2 && len(span) <= 5 && r.isMarker(span[len(span)-1]) {
			entities = append(entities, Entity{
				Text:  strings.Join(span, " "),
				Label: LabelOrg,
			})
		}
		span = nil
	}

	for _, w := range words {
		if isCapitalizedWord(w) {
			span = append(span, strings.TrimRight(w, ".,;:!?"))
			// A marker closes the span even mid-sentence.
			if r.isMarker(span[len(span)-1]) {
				flush()
			}
			continue
		}
		flush()
	}
	flush()

	return entities
}

func (r *OrgRecognizer) isMarker(word string) bool {
	return r.markers[strings.ToLower(strings.TrimRight(word, "."))]
}

func isCapitalizedWord(word string) bool {
	runes := []rune(word)
	if len(runes) == 0 {
		return false
	}
	return unicode.IsUpper(runes[0])
}

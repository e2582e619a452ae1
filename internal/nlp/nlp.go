// Package nlp provides the keyword-ranking and named-entity interfaces
// used by the generic analyzer, along with lightweight local
// implementations. The implementations are immutable after construction
// and safe for concurrent use; they are built once at startup and passed
// by reference into the analyzer.
package nlp

// Phrase is a ranked keyphrase produced by a KeywordRanker.
type Phrase struct {
	Text  string
	Score float64
}

// Entity is a labeled span produced by an EntityRecognizer.
type Entity struct {
	Text  string
	Label string
}

// KeywordRanker extracts the topN highest-scoring keyphrases from text,
// considering n-grams between minGram and maxGram words. Results are
// ordered by descending score.
type KeywordRanker interface {
	Rank(text string, minGram, maxGram, topN int) []Phrase
}

// EntityRecognizer finds named entities in text. Organization entities
// carry the label "ORG".
type EntityRecognizer interface {
	Entities(text string) []Entity
}

// LabelOrg is the entity label for organizations.
const LabelOrg = "ORG"

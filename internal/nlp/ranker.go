package nlp

import (
	"sort"
	"strings"
	"unicode"
)

// TermFrequencyRanker is a local KeywordRanker built on normalized term
// frequency over stopword-filtered n-grams. It approximates the ranked
// phrase lists of an embedding-based keyphrase model closely enough for
// vocabulary-filtered skill extraction, without an external model runtime.
type TermFrequencyRanker struct {
	stopwords map[string]bool
}

// NewTermFrequencyRanker creates a ranker using the built-in English
// stopword list.
func NewTermFrequencyRanker() *TermFrequencyRanker {
	return &TermFrequencyRanker{stopwords: englishStopwords()}
}

// Rank extracts the topN highest-scoring n-gram phrases from text.
// Phrases never start or end with a stopword. Longer phrases receive a
// small length bonus so that multi-word terms are not drowned out by
// their constituent unigrams. Ties are broken by first occurrence.
func (r *TermFrequencyRanker) Rank(text string, minGram, maxGram, topN int) []Phrase {
	if topN <= 0 || minGram <= 0 || maxGram < minGram {
		return nil
	}

	tokens := tokenize(text)
	if len(tokens) == 0 {
		return nil
	}

	type candidate struct {
		count     int
		length    int
		firstSeen int
	}
	counts := make(map[string]*candidate)

	for n := minGram; n <= maxGram; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			gram := tokens[i : i+n]
			if r.stopwords[gram[0]] || r.stopwords[gram[n-1]] {
				continue
			}
			phrase := strings.Join(gram, " ")
			if c, ok := counts[phrase]; ok {
				c.count++
			} else {
				counts[phrase] = &candidate{count: 1, length: n, firstSeen: i}
			}
		}
	}

	if len(counts) == 0 {
		return nil
	}

	maxCount := 0
	for _, c := range counts {
		if c.count > maxCount {
			maxCount = c.count
		}
	}

	phrases := make([]Phrase, 0, len(counts))
	order := make(map[string]int, len(counts))
	for phraseText, c := range counts {
		// Length bonus rewards multi-word phrases that repeat.
		score := (float64(c.count) / float64(maxCount)) * (1.0 + 0.1*float64(c.length-1))
		phrases = append(phrases, Phrase{Text: phraseText, Score: score})
		order[phraseText] = c.firstSeen
	}

	sort.SliceStable(phrases, func(i, j int) bool {
		if phrases[i].Score != phrases[j].Score {
			return phrases[i].Score > phrases[j].Score
		}
		return order[phrases[i].Text] < order[phrases[j].Text]
	})

	if len(phrases) > topN {
		phrases = phrases[:topN]
	}
	return phrases
}

// tokenize lowercases text and splits it into word tokens, stripping
// surrounding punctuation but keeping interior characters such as the
// dot in "node.js" or the plus signs in "c++".
func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimFunc(f, func(r rune) bool {
			return unicode.IsPunct(r) && r != '+' && r != '#'
		})
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func englishStopwords() map[string]bool {
	words := []string{
		"a", "an", "and", "are", "as", "at", "be", "but", "by", "for",
		"from", "has", "have", "if", "in", "into", "is", "it", "its",
		"of", "on", "or", "our", "such", "that", "the", "their", "then",
		"there", "these", "they", "this", "to", "was", "we", "were",
		"will", "with", "you", "your", "i", "he", "she", "his", "her",
		"not", "no", "do", "does", "did", "can", "could", "would",
		"should", "about", "also", "been", "being", "more", "most",
		"other", "some", "who", "what", "when", "where", "which", "while",
		"than", "them", "us", "all", "any", "each", "both", "so", "too",
	}
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

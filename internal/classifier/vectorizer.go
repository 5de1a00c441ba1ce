package classifier

import (
	"errors"
	"math"
	"regexp"
	"sort"
	"strings"
)

// tokenPattern matches word tokens of two or more characters, the same
// shape the vocabulary is built from.
var tokenPattern = regexp.MustCompile(`\w\w+`)

// Vectorizer turns source text into tf-idf weighted bag-of-n-grams
// vectors (word unigrams through trigrams) over a capped vocabulary.
// Fit selects the vocabulary once; Transform is read-only afterwards
// and safe for concurrent use.
type Vectorizer struct {
	nGramMin    int
	nGramMax    int
	maxFeatures int

	vocabulary map[string]int
	idf        []float64
}

// NewVectorizer creates an unfitted vectorizer with the given
// vocabulary cap.
func NewVectorizer(maxFeatures int) *Vectorizer {
	return &Vectorizer{
		nGramMin:    1,
		nGramMax:    3,
		maxFeatures: maxFeatures,
	}
}

// ErrEmptyVocabulary is returned by Fit when the corpus yields no
// usable terms.
var ErrEmptyVocabulary = errors.New("empty vocabulary: corpus contains no usable terms")

// Fit builds the capped vocabulary and inverse-document-frequency
// weights from the corpus. Vocabulary selection is deterministic: terms
// are ranked by corpus frequency with lexicographic tie-breaks.
func (v *Vectorizer) Fit(docs []string) error {
	termCounts := make(map[string]int)
	docFreq := make(map[string]int)

	for _, doc := range docs {
		terms := v.terms(doc)
		seen := make(map[string]bool, len(terms))
		for _, term := range terms {
			termCounts[term]++
			if !seen[term] {
				seen[term] = true
				docFreq[term]++
			}
		}
	}

	if len(termCounts) == 0 {
		return ErrEmptyVocabulary
	}

	ranked := make([]string, 0, len(termCounts))
	for term := range termCounts {
		ranked = append(ranked, term)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if termCounts[ranked[i]] != termCounts[ranked[j]] {
			return termCounts[ranked[i]] > termCounts[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})
	if len(ranked) > v.maxFeatures {
		ranked = ranked[:v.maxFeatures]
	}

	v.vocabulary = make(map[string]int, len(ranked))
	v.idf = make([]float64, len(ranked))
	n := float64(len(docs))
	for i, term := range ranked {
		v.vocabulary[term] = i
		// Smoothed idf, so unseen-in-corpus never divides by zero.
		v.idf[i] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}
	return nil
}

// Transform maps one document to its l2-normalized tf-idf vector.
func (v *Vectorizer) Transform(doc string) []float64 {
	vec := make([]float64, len(v.idf))
	for _, term := range v.terms(doc) {
		if idx, ok := v.vocabulary[term]; ok {
			vec[idx]++
		}
	}

	norm := 0.0
	for i := range vec {
		vec[i] *= v.idf[i]
		norm += vec[i] * vec[i]
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// FeatureCount returns the fitted vocabulary size.
func (v *Vectorizer) FeatureCount() int {
	return len(v.idf)
}

// terms expands a document into its word n-grams.
func (v *Vectorizer) terms(doc string) []string {
	tokens := tokenPattern.FindAllString(strings.ToLower(doc), -1)
	var terms []string
	for n := v.nGramMin; n <= v.nGramMax; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			terms = append(terms, strings.Join(tokens[i:i+n], " "))
		}
	}
	return terms
}

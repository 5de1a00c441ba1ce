// Package classifier holds a statistical defect classifier: a tf-idf
// bag-of-n-grams vectorizer feeding a random forest, trained once at
// construction from a synthetic labeled corpus. No external data is
// fetched and nothing is persisted.
package classifier

import (
	"math/rand"
	"sync"
)

const (
	// DefaultSeed makes training reproducible across process starts.
	DefaultSeed = 42

	vocabularyCap = 500
	numTrees      = 100

	neutralProbability  = 0.5
	trainedConfidence   = 0.8
	untrainedConfidence = 0.5
)

// Classifier estimates the probability that a code sample is defective.
// Training happens exactly once, eagerly, in the constructor; the
// classifier is read-only afterwards and safe for unlimited concurrent
// Classify calls. A failed training run degrades the classifier to a
// neutral constant instead of erroring.
type Classifier struct {
	vectorizer *Vectorizer
	forest     *Forest
	trained    bool
}

// NewClassifier trains a classifier with the default seed.
func NewClassifier() *Classifier {
	return NewClassifierWithSeed(DefaultSeed)
}

// NewClassifierWithSeed trains a classifier from the synthetic corpus
// generated with the given seed. The same seed always yields the same
// trained model.
func NewClassifierWithSeed(seed int64) *Classifier {
	c := &Classifier{}
	rng := rand.New(rand.NewSource(seed))

	docs, labels := trainingCorpus(rng)

	vectorizer := NewVectorizer(vocabularyCap)
	if err := vectorizer.Fit(docs); err != nil {
		// Degenerate vocabulary: stay untrained, classify neutrally.
		return c
	}

	samples := make([][]float64, len(docs))
	for i, doc := range docs {
		samples[i] = vectorizer.Transform(doc)
	}

	c.vectorizer = vectorizer
	c.forest = TrainForest(samples, labels, numTrees, rng)
	c.trained = true
	return c
}

// Classify returns the probability in [0, 1] that the code sample is
// defective. An untrained classifier returns the neutral constant 0.5.
func (c *Classifier) Classify(code string) float64 {
	if !c.trained {
		return neutralProbability
	}
	return c.forest.PredictProba(c.vectorizer.Transform(code))
}

// Trained reports whether the training step completed.
func (c *Classifier) Trained() bool {
	return c.trained
}

// Confidence is the confidence attached to this classifier's estimates:
// 0.8 once trained, 0.5 otherwise.
func (c *Classifier) Confidence() float64 {
	if c.trained {
		return trainedConfidence
	}
	return untrainedConfidence
}

var (
	defaultOnce       sync.Once
	defaultClassifier *Classifier
)

// Default returns the process-wide classifier, training it on first
// use. The once barrier only avoids duplicate training work; training
// itself is idempotent.
func Default() *Classifier {
	defaultOnce.Do(func() {
		defaultClassifier = NewClassifier()
	})
	return defaultClassifier
}

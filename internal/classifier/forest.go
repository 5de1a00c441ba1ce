package classifier

import (
	"math"
	"math/rand"
	"sort"
)

const (
	maxTreeDepth    = 10
	minSamplesSplit = 2
)

// Forest is a random forest of binary classification trees. Read-only
// after training.
type Forest struct {
	trees []*treeNode
}

type treeNode struct {
	leaf      bool
	prob      float64
	feature   int
	threshold float64
	left      *treeNode
	right     *treeNode
}

// TrainForest grows numTrees trees on bootstrap samples of the labeled
// vectors, considering sqrt(features) candidate features per split.
// Labels are 0 (clean) and 1 (defective).
func TrainForest(samples [][]float64, labels []int, numTrees int, rng *rand.Rand) *Forest {
	forest := &Forest{trees: make([]*treeNode, 0, numTrees)}
	n := len(samples)

	for t := 0; t < numTrees; t++ {
		bootstrap := make([]int, n)
		for i := range bootstrap {
			bootstrap[i] = rng.Intn(n)
		}
		forest.trees = append(forest.trees, growTree(samples, labels, bootstrap, 0, rng))
	}
	return forest
}

// PredictProba returns the forest's class-1 probability for one vector:
// the mean of the per-tree leaf probabilities.
func (f *Forest) PredictProba(vec []float64) float64 {
	total := 0.0
	for _, tree := range f.trees {
		total += tree.predict(vec)
	}
	return total / float64(len(f.trees))
}

func (t *treeNode) predict(vec []float64) float64 {
	node := t
	for !node.leaf {
		if vec[node.feature] <= node.threshold {
			node = node.left
		} else {
			node = node.right
		}
	}
	return node.prob
}

func growTree(samples [][]float64, labels []int, indices []int, depth int, rng *rand.Rand) *treeNode {
	positives := 0
	for _, idx := range indices {
		positives += labels[idx]
	}
	prob := float64(positives) / float64(len(indices))

	if depth >= maxTreeDepth || len(indices) < minSamplesSplit || positives == 0 || positives == len(indices) {
		return &treeNode{leaf: true, prob: prob}
	}

	feature, threshold, ok := bestSplit(samples, labels, indices, rng)
	if !ok {
		return &treeNode{leaf: true, prob: prob}
	}

	var left, right []int
	for _, idx := range indices {
		if samples[idx][feature] <= threshold {
			left = append(left, idx)
		} else {
			right = append(right, idx)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return &treeNode{leaf: true, prob: prob}
	}

	return &treeNode{
		feature:   feature,
		threshold: threshold,
		left:      growTree(samples, labels, left, depth+1, rng),
		right:     growTree(samples, labels, right, depth+1, rng),
	}
}

// bestSplit searches a random sqrt-sized feature subset for the
// threshold with the lowest weighted gini impurity.
func bestSplit(samples [][]float64, labels []int, indices []int, rng *rand.Rand) (int, float64, bool) {
	numFeatures := len(samples[0])
	if numFeatures == 0 {
		return 0, 0, false
	}
	k := int(math.Sqrt(float64(numFeatures)))
	if k < 1 {
		k = 1
	}

	bestGini := math.Inf(1)
	bestFeature := -1
	bestThreshold := 0.0

	for _, feature := range rng.Perm(numFeatures)[:k] {
		values := make([]float64, 0, len(indices))
		for _, idx := range indices {
			values = append(values, samples[idx][feature])
		}
		sort.Float64s(values)

		for i := 1; i < len(values); i++ {
			if values[i] == values[i-1] {
				continue
			}
			threshold := (values[i] + values[i-1]) / 2
			gini := splitGini(samples, labels, indices, feature, threshold)
			if gini < bestGini {
				bestGini = gini
				bestFeature = feature
				bestThreshold = threshold
			}
		}
	}

	if bestFeature == -1 {
		return 0, 0, false
	}
	return bestFeature, bestThreshold, true
}

func splitGini(samples [][]float64, labels []int, indices []int, feature int, threshold float64) float64 {
	var leftN, leftPos, rightN, rightPos int
	for _, idx := range indices {
		if samples[idx][feature] <= threshold {
			leftN++
			leftPos += labels[idx]
		} else {
			rightN++
			rightPos += labels[idx]
		}
	}
	total := float64(leftN + rightN)
	return float64(leftN)/total*gini(leftPos, leftN) + float64(rightN)/total*gini(rightPos, rightN)
}

func gini(positives, n int) float64 {
	if n == 0 {
		return 0
	}
	p := float64(positives) / float64(n)
	return 2 * p * (1 - p)
}

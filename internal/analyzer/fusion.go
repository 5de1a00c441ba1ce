package analyzer

import (
	"math"

	"github.com/revguard/cli/internal/domain"
)

// Fixed fusion policy. The weights are tunable constants, not learned;
// keep the formula exact for reproducibility.
const (
	mlWeight      = 0.4
	patternWeight = 0.6

	// Pattern-score normalization divisor.
	patternScale = 5.0

	highRiskThreshold   = 0.7
	mediumRiskThreshold = 0.4
)

// severityWeights converts a qualitative severity tag into its
// quantitative pattern-score contribution.
var severityWeights = map[domain.Severity]float64{
	domain.SeverityError:      1.0,
	domain.SeveritySecurity:   0.9,
	domain.SeverityWarning:    0.5,
	domain.SeverityInfo:       0.2,
	domain.SeveritySuggestion: 0.1,
}

// PatternScore reduces flagged sections to a bounded severity-weighted
// scalar in [0, 1].
func PatternScore(flagged []domain.FlaggedSection) float64 {
	score := 0.0
	for _, section := range flagged {
		score += severityWeights[section.Severity]
	}
	return math.Min(1.0, score/patternScale)
}

// FuseScores combines the pattern score and the classifier probability
// into the final risk score, rounded to 3 decimal places, and its risk
// level. Pure function: identical inputs always yield identical output.
func FuseScores(patternScore, mlProbability float64) (float64, domain.RiskLevel) {
	risk := mlWeight*mlProbability + patternWeight*patternScore
	risk = math.Max(0.0, math.Min(1.0, risk))
	risk = math.Round(risk*1000) / 1000

	switch {
	case risk >= highRiskThreshold:
		return risk, domain.RiskHigh
	case risk >= mediumRiskThreshold:
		return risk, domain.RiskMedium
	default:
		return risk, domain.RiskLow
	}
}

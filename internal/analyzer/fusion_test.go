package analyzer

import (
	"math"
	"testing"

	"github.com/revguard/cli/internal/domain"
)

func TestPatternScore(t *testing.T) {
	testCases := []struct {
		name     string
		flagged  []domain.FlaggedSection
		expected float64
	}{
		{"no_findings", nil, 0},
		{
			"single_error",
			[]domain.FlaggedSection{{Severity: domain.SeverityError}},
			0.2, // 1.0 / 5
		},
		{
			"mixed_severities",
			[]domain.FlaggedSection{
				{Severity: domain.SeverityError},
				{Severity: domain.SeveritySecurity},
				{Severity: domain.SeverityInfo},
			},
			0.42, // (1.0 + 0.9 + 0.2) / 5
		},
		{
			"saturates_at_one",
			[]domain.FlaggedSection{
				{Severity: domain.SeverityError},
				{Severity: domain.SeverityError},
				{Severity: domain.SeverityError},
				{Severity: domain.SeverityError},
				{Severity: domain.SeverityError},
				{Severity: domain.SeverityError},
			},
			1.0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := PatternScore(tc.flagged)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("PatternScore() = %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestFuseScores(t *testing.T) {
	testCases := []struct {
		name      string
		pattern   float64
		ml        float64
		wantScore float64
		wantLevel domain.RiskLevel
	}{
		{"all_zero", 0, 0, 0, domain.RiskLow},
		{"all_one", 1, 1, 1, domain.RiskHigh},
		{"pattern_only", 0.5, 0, 0.3, domain.RiskLow},
		{"ml_only", 0, 0.5, 0.2, domain.RiskLow},
		{"medium_boundary", 0.4, 0.4, 0.4, domain.RiskMedium},
		{"just_below_medium", 0.5, 0.245, 0.398, domain.RiskLow},
		{"high_boundary", 0.7, 0.7, 0.7, domain.RiskHigh},
		{"just_below_high", 0.89, 0.4, 0.694, domain.RiskMedium},
		{"rounding_three_decimals", 0.333, 0.333, 0.333, domain.RiskLow},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			score, level := FuseScores(tc.pattern, tc.ml)
			if math.Abs(score-tc.wantScore) > 1e-9 {
				t.Errorf("score = %v, want %v", score, tc.wantScore)
			}
			if level != tc.wantLevel {
				t.Errorf("level = %v, want %v", level, tc.wantLevel)
			}
		})
	}
}

func TestFuseScoresProperties(t *testing.T) {
	for pi := 0; pi <= 10; pi++ {
		for mi := 0; mi <= 10; mi++ {
			pattern := float64(pi) / 10
			ml := float64(mi) / 10

			score, level := FuseScores(pattern, ml)
			if score < 0 || score > 1 {
				t.Fatalf("FuseScores(%v, %v) = %v, out of bounds", pattern, ml, score)
			}
			if math.Abs(score*1000-math.Round(score*1000)) > 1e-9 {
				t.Fatalf("FuseScores(%v, %v) = %v, not rounded to 3 decimals", pattern, ml, score)
			}

			wantLevel := domain.RiskLow
			switch {
			case score >= 0.7:
				wantLevel = domain.RiskHigh
			case score >= 0.4:
				wantLevel = domain.RiskMedium
			}
			if level != wantLevel {
				t.Fatalf("FuseScores(%v, %v) level = %v, want %v for score %v", pattern, ml, level, wantLevel, score)
			}

			again, _ := FuseScores(pattern, ml)
			if again != score {
				t.Fatalf("FuseScores(%v, %v) not deterministic", pattern, ml)
			}
		}
	}
}

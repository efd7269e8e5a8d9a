// Package scoring computes a completeness score for a parsed resume.
package scoring

import (
	"fmt"

	"github.com/jonathan/resume-scanner/internal/types"
)

// Weights per field. The weights sum to MaxScore.
const (
	nameWeight       = 10
	emailWeight      = 10
	phoneWeight      = 10
	educationWeight  = 20
	experienceWeight = 25
	skillsWeight     = 25

	// MaxScore is the score of a fully populated profile.
	MaxScore = 100
)

// Score rates how complete a parsed profile is. Contact fields count when
// they carry a real value, list fields when they are non-empty.
func Score(profile types.ParsedProfile) types.ScoreReport {
	score := 0
	if present(profile.ContactDetails.Name) {
		score += nameWeight
	}
	if present(profile.ContactDetails.Email) {
		score += emailWeight
	}
	if present(profile.ContactDetails.Phone) {
		score += phoneWeight
	}
	if len(profile.Education) > 0 {
		score += educationWeight
	}
	if len(profile.Experience) > 0 {
		score += experienceWeight
	}
	if len(profile.Skills) > 0 {
		score += skillsWeight
	}

	return types.ScoreReport{
		Score:      score,
		MaxScore:   MaxScore,
		Percentage: fmt.Sprintf("%d%%", score),
	}
}

func present(value string) bool {
	return value != "" && value != types.NotFound
}

package scoring

import (
	"math"
	"strings"

	"github.com/andrescamacho/studiosim-go/pkg/utils"
)

// GenreRequirement is the stat threshold a genre expects from its staff.
type GenreRequirement struct {
	Technical int `yaml:"technical"`
	Creative  int `yaml:"creative"`
}

// DefaultRequirement applies to any genre without an explicit entry.
var DefaultRequirement = GenreRequirement{Technical: 60, Creative: 60}

// GenreRequirements maps lower-case genre names to thresholds.
type GenreRequirements map[string]GenreRequirement

// DefaultGenreRequirements returns the built-in threshold table.
func DefaultGenreRequirements() GenreRequirements {
	return GenreRequirements{
		"rock":       {Technical: 70, Creative: 60},
		"pop":        {Technical: 60, Creative: 70},
		"electronic": {Technical: 80, Creative: 50},
	}
}

// For returns the requirement for a genre, falling back to DefaultRequirement.
func (r GenreRequirements) For(genre string) GenreRequirement {
	if req, ok := r[strings.ToLower(genre)]; ok {
		return req
	}
	return DefaultRequirement
}

// MatchInput is the slice of a staff member the match score looks at.
type MatchInput struct {
	Creativity    int
	Technical     int
	Energy        int
	GenreSkill    int
	HasGenreSkill bool
}

// StaffProjectMatch scores how well a staff member fits a project, 0..100.
//
// Skill match is worth up to 60 (30 technical, 30 creative, each proportional to
// the genre threshold and capped), genre match up to 20 (half credit without a
// genre skill) and energy up to 20.
func StaffProjectMatch(in MatchInput, req GenreRequirement) int {
	skill := ratioPoints(in.Technical, req.Technical) + ratioPoints(in.Creativity, req.Creative)

	genre := 10.0
	if in.HasGenreSkill {
		genre = float64(utils.Clamp(in.GenreSkill, 0, 100)) / 100 * 20
	}

	energy := float64(utils.Clamp(in.Energy, 0, 100)) / 100 * 20

	return utils.Clamp(int(math.Round(skill+genre+energy)), 0, 100)
}

func ratioPoints(stat, required int) float64 {
	if stat <= 0 {
		return 0
	}
	if required <= 0 {
		return 30
	}
	return math.Min(float64(stat)/float64(required)*30, 30)
}

// MatchRating buckets a match score for display.
func MatchRating(score int) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	case score >= 40:
		return "Fair"
	default:
		return "Poor"
	}
}

package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/studiosim-go/internal/domain/scoring"
)

func TestStageQuality_FullProgressNoBonus(t *testing.T) {
	assert.Equal(t, 150, scoring.StageQuality(100, 100, scoring.StageBonuses{}))
	assert.Equal(t, 130, scoring.StageEfficiency(100, 100, scoring.StageBonuses{}))
}

func TestStageQuality_Bonuses(t *testing.T) {
	b := scoring.StageBonuses{Creativity: 2, Technical: 2}

	// 150 * 1.4 and 130 * 1.3
	assert.Equal(t, 210, scoring.StageQuality(50, 50, b))
	assert.Equal(t, 169, scoring.StageEfficiency(50, 50, b))
}

func TestStageQuality_PartialProgress(t *testing.T) {
	// p = 0.5: 100*0.5*1.25 = 62.5, 100*0.5*1.15 = 57.5
	assert.Equal(t, 62, scoring.StageQuality(50, 100, scoring.StageBonuses{}))
	assert.Equal(t, 57, scoring.StageEfficiency(50, 100, scoring.StageBonuses{}))
	assert.Equal(t, 0, scoring.StageQuality(0, 100, scoring.StageBonuses{}))
}

func TestPointsBonus(t *testing.T) {
	assert.Equal(t, 0, scoring.PointsBonus(-3))
	assert.Equal(t, 0, scoring.PointsBonus(19))
	assert.Equal(t, 2, scoring.PointsBonus(45))
	assert.Equal(t, 5, scoring.PointsBonus(1000))
}

func TestPointsSynergy(t *testing.T) {
	assert.Equal(t, scoring.StageBonuses{Creativity: 2}, scoring.PointsSynergy(70, 25))
	assert.Equal(t, scoring.StageBonuses{Technical: 5}, scoring.PointsSynergy(0, 300))
	assert.Equal(t, scoring.StageBonuses{}, scoring.PointsSynergy(40, 40))
}

func TestStageBonuses_AddCaps(t *testing.T) {
	got := scoring.StageBonuses{Creativity: 4, Technical: 1}.Add(scoring.StageBonuses{Creativity: 3, Technical: 1})

	assert.Equal(t, scoring.StageBonuses{Creativity: 5, Technical: 2}, got)
}

func TestSettle(t *testing.T) {
	s := scoring.Settle(80, 61, 1000, 10, 2)

	assert.Equal(t, 70, s.FinalScore)
	assert.Equal(t, 700, s.Payout)
	assert.Equal(t, 7, s.RepGain)
	assert.Equal(t, 49, s.XPGain)
}

package scoring

import "math"

// StageBonuses counts the creativity/technical bonus levels active while a
// stage is finished.
type StageBonuses struct {
	Creativity int
	Technical  int
}

const maxBonusLevel = 5

// Add sums two bonus sets, capping each side at 5 levels.
func (b StageBonuses) Add(other StageBonuses) StageBonuses {
	return StageBonuses{
		Creativity: int(math.Min(maxBonusLevel, float64(b.Creativity+other.Creativity))),
		Technical:  int(math.Min(maxBonusLevel, float64(b.Technical+other.Technical))),
	}
}

// PointsBonus turns accumulated project points into bonus levels, one per 20
// points, at most 5.
func PointsBonus(points int) int {
	if points <= 0 {
		return 0
	}
	return int(math.Min(maxBonusLevel, float64(points/20)))
}

// PointsSynergy rewards a project whose point pools lean one way: the
// dominant side gets PointsBonus of the difference.
func PointsSynergy(creativity, technical int) StageBonuses {
	switch {
	case creativity > technical:
		return StageBonuses{Creativity: PointsBonus(creativity - technical)}
	case technical > creativity:
		return StageBonuses{Technical: PointsBonus(technical - creativity)}
	default:
		return StageBonuses{}
	}
}

// StageQuality scores a finished stage. Progress is completed/required.
func StageQuality(completed, required int, b StageBonuses) int {
	p := progress(completed, required)
	bonus := 1 + float64(b.Creativity)*0.1 + float64(b.Technical)*0.1
	return int(math.Floor(100 * p * (1 + p*0.5) * bonus))
}

// StageEfficiency scores how efficiently a stage was produced. Technical
// bonuses weigh more here than in StageQuality.
func StageEfficiency(completed, required int, b StageBonuses) int {
	p := progress(completed, required)
	bonus := 1 + float64(b.Technical)*0.15
	return int(math.Floor(100 * p * (1 + p*0.3) * bonus))
}

func progress(completed, required int) float64 {
	if required <= 0 {
		return 1
	}
	if completed <= 0 {
		return 0
	}
	return float64(completed) / float64(required)
}

// Settlement figures for a finished project.
type Settlement struct {
	FinalScore int
	Payout     int
	RepGain    int
	XPGain     int
}

// Settle computes final score and rewards from cumulative quality/efficiency.
func Settle(quality, efficiency float64, payoutBase, repGainBase, difficulty int) Settlement {
	final := int(math.Floor((quality + efficiency) / 2))
	return Settlement{
		FinalScore: final,
		Payout:     int(math.Floor(float64(payoutBase) * float64(final) / 100)),
		RepGain:    int(math.Floor(float64(repGainBase) * float64(final) / 100)),
		XPGain:     int(math.Floor(float64(50+10*difficulty) * float64(final) / 100)),
	}
}

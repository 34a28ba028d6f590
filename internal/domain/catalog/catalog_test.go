package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/studiosim-go/internal/domain/catalog"
	"github.com/andrescamacho/studiosim-go/internal/domain/scoring"
)

func TestStudioBonuses_AggregatesEquipmentAndSkill(t *testing.T) {
	c := catalog.Default()

	b := c.StudioBonuses([]string{"dynamic_mic", "console_eq", "unknown"}, map[string]int{"Rock": 2}, "rock")

	assert.InDelta(t, 8+12+2, b.QualityPct, 1e-9)
	assert.InDelta(t, 4, b.CreativityPct, 1e-9)
	assert.InDelta(t, 18+3, b.TechnicalPct, 1e-9)
	assert.InDelta(t, 5, b.SpeedPct, 1e-9)
	assert.Equal(t, 2, b.GenreLevels)
}

func TestBonuses_ApplyToWork(t *testing.T) {
	b := catalog.Bonuses{CreativityPct: 50, TechnicalPct: 0, SpeedPct: 100}

	c, tech := b.ApplyToWork(10, 7)

	assert.Equal(t, 30, c)
	assert.Equal(t, 14, tech)
}

func TestBonuses_StageBonusesCapped(t *testing.T) {
	b := catalog.Bonuses{CreativityPct: 30, QualityPct: 25, TechnicalPct: 90, GenreLevels: 2}

	assert.Equal(t, scoring.StageBonuses{Creativity: 5, Technical: 5}, b.StageBonuses())
	assert.Equal(t, scoring.StageBonuses{}, catalog.Bonuses{}.StageBonuses())
}

func TestCoursePlan(t *testing.T) {
	course, ok := catalog.Default().FindCourse("basic_audio_engineering")
	assert.True(t, ok)

	plan := course.Plan(4)

	assert.Equal(t, 7, plan.EndDay)
	assert.Equal(t, "basic_audio_engineering", plan.CourseID)
	assert.Equal(t, 10, plan.Boost.Technical)
}

func TestFindEquipment_Missing(t *testing.T) {
	_, ok := catalog.Default().FindEquipment("theremin")
	assert.False(t, ok)
}

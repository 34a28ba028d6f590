package catalog

import (
	"github.com/andrescamacho/studiosim-go/internal/domain/minigame"
	"github.com/andrescamacho/studiosim-go/internal/domain/progression"
	"github.com/andrescamacho/studiosim-go/internal/domain/scoring"
	"github.com/andrescamacho/studiosim-go/internal/domain/staff"
)

// Default returns the built-in catalog.
func Default() Catalog {
	return Catalog{
		Equipment:         defaultEquipment(),
		Courses:           defaultCourses(),
		Milestones:        progression.DefaultMilestones(),
		Minigames:         minigame.DefaultRegistry(),
		GenreRequirements: scoring.DefaultGenreRequirements(),
	}
}

func defaultEquipment() []Equipment {
	return []Equipment{
		{
			ID: "condenser_mic", Name: "Professional Condenser Mic", Category: "microphone", Price: 450,
			Description: "High-quality condenser microphone for vocals and acoustic instruments",
			Bonuses:     EquipmentBonuses{Quality: 10, Genre: map[string]int{"acoustic": 2, "pop": 1}},
		},
		{
			ID: "dynamic_mic", Name: "Dynamic Recording Mic", Category: "microphone", Price: 320,
			Description: "Robust dynamic microphone ideal for rock and live recordings",
			Bonuses:     EquipmentBonuses{Quality: 8, Genre: map[string]int{"rock": 2, "hip-hop": 1}},
		},
		{
			ID: "reverb_unit", Name: "Spring Reverb Unit", Category: "outboard", Price: 950,
			Description: "Spacious and warm; adds character during mixing",
			Bonuses:     EquipmentBonuses{Creativity: 20, Quality: 15, Genre: map[string]int{"acoustic": 2, "electronic": 1}},
		},
		{
			ID: "console_eq", Name: "Console EQ", Category: "outboard", Price: 750,
			Description: "Boosts clarity and punch during mixing",
			Bonuses:     EquipmentBonuses{Technical: 18, Quality: 12, Speed: 5},
		},
		{
			ID: "bus_compressor", Name: "Bus Compressor", Category: "outboard", Price: 1200,
			Description: "Glues tracks together and tightens the technical score",
			Bonuses:     EquipmentBonuses{Technical: 25, Quality: 10},
		},
		{
			ID: "studio_monitors", Name: "Near-field Monitors", Category: "monitoring", Price: 600,
			Description: "Honest monitoring speeds up every decision",
			Bonuses:     EquipmentBonuses{Technical: 8, Speed: 10},
		},
	}
}

func defaultCourses() []Course {
	return []Course{
		{
			ID: "basic_audio_engineering", Name: "Basic Audio Engineering Workshop", Cost: 500, Duration: 3,
			Description: "Signal flow, microphone placement and recording technique",
			Boost:       staff.Stats{Technical: 10, Creativity: 5},
			SkillGenre:  "rock", SkillGain: 5,
		},
		{
			ID: "pop_arrangement_seminar", Name: "Pop Song Arrangement Seminar", Cost: 700, Duration: 5,
			Description: "Catchy hooks and commercial arrangements",
			Boost:       staff.Stats{Creativity: 15, Speed: 5},
			SkillGenre:  "pop", SkillGain: 8,
		},
		{
			ID: "electronic_production", Name: "Electronic Music Production Bootcamp", Cost: 900, Duration: 7,
			Description: "Synthesis, sampling and digital audio manipulation",
			Boost:       staff.Stats{Creativity: 10, Technical: 10, Speed: 5},
			SkillGenre:  "electronic", SkillGain: 10,
		},
		{
			ID: "mixing_masterclass", Name: "Advanced Mixing Masterclass", Cost: 1200, Duration: 6,
			Description: "Professional mixing techniques and industry secrets",
			Boost:       staff.Stats{Technical: 20, Creativity: 10},
		},
		{
			ID: "improv_jamming", Name: "Improv Jamming", Cost: 550, Duration: 1,
			Description: "Spontaneous musical creativity and collaboration",
			Boost:       staff.Stats{Creativity: 5},
		},
	}
}

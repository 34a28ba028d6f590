package minigame

import (
	"context"
	"fmt"
)

// Type identifies a minigame. Stages reference it through MinigameTriggerID.
type Type string

const (
	TypeRhythmTiming        Type = "rhythm_timing"
	TypeMixingBoard         Type = "mixing_board"
	TypeSoundWave           Type = "sound_wave"
	TypeBeatMaking          Type = "beat_making"
	TypeVocalRecording      Type = "vocal_recording"
	TypeMastering           Type = "mastering"
	TypeMicrophonePlacement Type = "microphone_placement"
	TypeEffectChain         Type = "effect_chain"
)

// RewardType decides how a score is converted.
type RewardType string

const (
	// RewardQuality adds the score to the project's creativity/technical points.
	RewardQuality RewardType = "quality"
	// RewardSpeed adds the score to the current stage's completed work.
	RewardSpeed RewardType = "speed"
	// RewardXP adds the score to the player's XP.
	RewardXP RewardType = "xp"
)

// IsValid checks the reward type is known
func (r RewardType) IsValid() bool {
	switch r {
	case RewardQuality, RewardSpeed, RewardXP:
		return true
	default:
		return false
	}
}

// Definition is the catalog entry for a minigame trigger. CreativeShare is the
// percentage of a quality reward credited to creativity; the rest goes to
// technical.
type Definition struct {
	Type          Type       `yaml:"type"`
	Name          string     `yaml:"name"`
	Difficulty    int        `yaml:"difficulty"`
	Reward        RewardType `yaml:"reward"`
	CreativeShare int        `yaml:"creativeShare"`
	Reason        string     `yaml:"reason"`
}

// Validate checks a definition loaded from configuration
func (d Definition) Validate() error {
	if d.Type == "" {
		return fmt.Errorf("minigame type is required")
	}
	if !d.Reward.IsValid() {
		return fmt.Errorf("minigame %s: invalid reward type %q", d.Type, d.Reward)
	}
	if d.CreativeShare < 0 || d.CreativeShare > 100 {
		return fmt.Errorf("minigame %s: creative share %d out of range", d.Type, d.CreativeShare)
	}
	return nil
}

// Registry maps minigame types to their definitions
type Registry map[Type]Definition

// Lookup finds the definition behind a stage trigger ID
func (r Registry) Lookup(triggerID string) (Definition, bool) {
	def, ok := r[Type(triggerID)]
	return def, ok
}

// DefaultRegistry is the built-in set of minigames.
func DefaultRegistry() Registry {
	defs := []Definition{
		{Type: TypeRhythmTiming, Name: "Rhythm Timing", Difficulty: 2, Reward: RewardQuality, CreativeShare: 70, Reason: "Lock the take to the groove"},
		{Type: TypeMixingBoard, Name: "Mixing Board", Difficulty: 3, Reward: RewardQuality, CreativeShare: 40, Reason: "A mixing challenge has been triggered"},
		{Type: TypeSoundWave, Name: "Sound Wave", Difficulty: 2, Reward: RewardSpeed, CreativeShare: 50, Reason: "Shape the waveform to speed up editing"},
		{Type: TypeBeatMaking, Name: "Beat Making", Difficulty: 2, Reward: RewardXP, CreativeShare: 60, Reason: "Program a beat to learn the craft"},
		{Type: TypeVocalRecording, Name: "Vocal Recording", Difficulty: 3, Reward: RewardQuality, CreativeShare: 80, Reason: "Coach the vocalist through a great take"},
		{Type: TypeMastering, Name: "Mastering", Difficulty: 4, Reward: RewardQuality, CreativeShare: 20, Reason: "A mastering challenge awaits"},
		{Type: TypeMicrophonePlacement, Name: "Microphone Placement", Difficulty: 1, Reward: RewardSpeed, CreativeShare: 30, Reason: "Find the sweet spot before tracking"},
		{Type: TypeEffectChain, Name: "Effect Chain", Difficulty: 3, Reward: RewardXP, CreativeShare: 50, Reason: "Build an effect chain from scratch"},
	}
	reg := make(Registry, len(defs))
	for _, d := range defs {
		reg[d.Type] = d
	}
	return reg
}

// Runner plays a minigame and returns its raw score, normally 0..100.
type Runner interface {
	Run(ctx context.Context, t Type, difficulty int) (int, error)
}

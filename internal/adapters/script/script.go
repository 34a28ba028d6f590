// Package script runs scripted play sessions: a YAML list of steps executed
// against the studio through the mediator, plus canned minigame scores.
package script

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/andrescamacho/studiosim-go/internal/domain/minigame"
)

// Verb names a script step.
type Verb string

const (
	VerbHire           Verb = "hire"
	VerbAssign         Verb = "assign"
	VerbUnassign       Verb = "unassign"
	VerbRest           Verb = "rest"
	VerbTrain          Verb = "train"
	VerbPractice       Verb = "practice"
	VerbStart          Verb = "start"
	VerbFocus          Verb = "focus"
	VerbRecommend      Verb = "recommended_focus"
	VerbWork           Verb = "work"
	VerbAdvance        Verb = "advance"
	VerbDay            Verb = "day"
	VerbMinigame       Verb = "minigame"
	VerbDismiss        Verb = "dismiss"
	VerbSpendAttribute Verb = "spend_attribute"
	VerbSpendPerk      Verb = "spend_perk"
	VerbBuy            Verb = "buy"
	VerbAddXP          Verb = "add_xp"
	VerbFinish         Verb = "finish"
)

var knownVerbs = map[Verb]bool{
	VerbHire: true, VerbAssign: true, VerbUnassign: true, VerbRest: true, VerbTrain: true,
	VerbPractice: true, VerbStart: true, VerbFocus: true, VerbRecommend: true, VerbWork: true,
	VerbAdvance: true, VerbDay: true, VerbMinigame: true, VerbDismiss: true,
	VerbSpendAttribute: true, VerbSpendPerk: true, VerbBuy: true, VerbAddXP: true, VerbFinish: true,
}

// Target selectors understood in addition to literal IDs.
const (
	TargetFirst = "first"
	TargetBest  = "best"
	TargetAll   = "all"
)

// Script is a scripted session.
type Script struct {
	Name      string         `yaml:"name"`
	Seed      int64          `yaml:"seed"`
	Minigames MinigameScores `yaml:"minigames"`
	Steps     []Step         `yaml:"steps"`
}

// MinigameScores are the scores the scripted runner hands out. Queued scores
// for a type are used first, then Default.
type MinigameScores struct {
	Default int                     `yaml:"default"`
	Scores  map[minigame.Type][]int `yaml:"scores"`
}

// FocusSpec is a focus split in percent.
type FocusSpec struct {
	Performance  int `yaml:"performance"`
	SoundCapture int `yaml:"soundCapture"`
	Layering     int `yaml:"layering"`
}

// Step is one scripted instruction. Which fields matter depends on Do.
type Step struct {
	Do        Verb       `yaml:"do"`
	Target    string     `yaml:"target,omitempty"`
	Course    string     `yaml:"course,omitempty"`
	Attribute string     `yaml:"attribute,omitempty"`
	Times     int        `yaml:"times,omitempty"`
	Days      int        `yaml:"days,omitempty"`
	Amount    int        `yaml:"amount,omitempty"`
	Focus     *FocusSpec `yaml:"focus,omitempty"`
}

// Repeat is how many times the step runs
func (s Step) Repeat() int {
	if s.Times < 1 {
		return 1
	}
	return s.Times
}

func (s Step) String() string {
	var b strings.Builder
	b.WriteString(string(s.Do))
	if s.Target != "" {
		fmt.Fprintf(&b, " %s", s.Target)
	}
	if s.Course != "" {
		fmt.Fprintf(&b, " course=%s", s.Course)
	}
	if s.Attribute != "" {
		fmt.Fprintf(&b, " attribute=%s", s.Attribute)
	}
	if s.Times > 1 {
		fmt.Fprintf(&b, " x%d", s.Times)
	}
	if s.Days > 0 {
		fmt.Fprintf(&b, " days=%d", s.Days)
	}
	if s.Amount != 0 {
		fmt.Fprintf(&b, " amount=%d", s.Amount)
	}
	if s.Focus != nil {
		fmt.Fprintf(&b, " %d/%d/%d", s.Focus.Performance, s.Focus.SoundCapture, s.Focus.Layering)
	}
	return b.String()
}

// Validate checks every step is well formed before anything runs
func (s Script) Validate() error {
	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, step.Do, err)
		}
	}
	for t, scores := range s.Minigames.Scores {
		for _, v := range scores {
			if v < 0 {
				return fmt.Errorf("minigame %s: negative score %d", t, v)
			}
		}
	}
	return nil
}

func (s Step) validate() error {
	if !knownVerbs[s.Do] {
		return fmt.Errorf("unknown verb %q", s.Do)
	}
	switch s.Do {
	case VerbTrain:
		if s.Course == "" {
			return fmt.Errorf("course is required")
		}
	case VerbFocus:
		if s.Focus == nil {
			return fmt.Errorf("focus is required")
		}
	case VerbSpendAttribute, VerbSpendPerk:
		if s.Attribute == "" {
			return fmt.Errorf("attribute is required")
		}
	case VerbBuy:
		if s.Target == "" {
			return fmt.Errorf("target equipment is required")
		}
	case VerbAddXP:
		if s.Amount <= 0 {
			return fmt.Errorf("amount must be positive")
		}
	}
	return nil
}

// Parse decodes and validates a script
func Parse(data []byte) (Script, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Script{}, fmt.Errorf("script: payload is empty")
	}
	var s Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Script{}, fmt.Errorf("script: decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Script{}, fmt.Errorf("script: %w", err)
	}
	return s, nil
}

// Load reads a script file
func Load(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("script: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return Script{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Marshal renders a script back to YAML
func Marshal(s Script) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("script: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package game

import (
	"github.com/andrescamacho/studiosim-go/internal/domain/minigame"
	"github.com/andrescamacho/studiosim-go/internal/domain/notification"
	"github.com/andrescamacho/studiosim-go/internal/domain/shared"
)

// MinigameOffer returns the minigame the current stage can offer, if any.
func (s *State) MinigameOffer() (minigame.Key, minigame.Definition, bool) {
	key, ok := s.CurrentStageKey()
	if !ok {
		return minigame.Key{}, minigame.Definition{}, false
	}
	stage, ok := s.ActiveProject.CurrentStage()
	if !ok || !s.Minigames.IsEligible(stage.MinigameTriggerID, key) {
		return minigame.Key{}, minigame.Definition{}, false
	}
	def, ok := s.Catalog.Minigames.Lookup(stage.MinigameTriggerID)
	if !ok {
		return minigame.Key{}, minigame.Definition{}, false
	}
	return key, def, true
}

func (r *reduction) openMinigame() error {
	if r.state.ActiveProject == nil {
		return shared.NewNoActiveProjectError()
	}
	key, def, ok := r.state.MinigameOffer()
	if !ok {
		current, _ := r.state.CurrentStageKey()
		return shared.NewNotFoundError("minigame", current.String())
	}
	board, offer, err := r.state.Minigames.Open(key, def)
	if err != nil {
		return err
	}
	r.state.Minigames = board
	r.emit(notification.KindMinigameAvailable, offer.Definition.Name, "%s", offer.Definition.Reason)
	return nil
}

// minigameCompleted converts a finished minigame into its reward. The offer
// must belong to the stage currently in production.
func (r *reduction) minigameCompleted(act MinigameCompleted) error {
	if r.state.ActiveProject == nil {
		return shared.NewNoActiveProjectError()
	}
	current, _ := r.state.CurrentStageKey()
	board, offer, reward, err := r.state.Minigames.Resolve(act.Type, act.Score, current)
	if err != nil {
		return err
	}
	r.state.Minigames = board

	p := *r.state.ActiveProject
	switch reward.Kind {
	case minigame.RewardQuality:
		p = p.AddPoints(reward.Creativity, reward.Technical)
		r.emit(notification.KindMinigameResolved, offer.Definition.Name, "+%d creativity, +%d technical", reward.Creativity, reward.Technical)
	case minigame.RewardSpeed:
		p = p.AddStageWork(reward.WorkUnits)
		r.emit(notification.KindMinigameResolved, offer.Definition.Name, "+%d work units", reward.WorkUnits)
	case minigame.RewardXP:
		r.emit(notification.KindMinigameResolved, offer.Definition.Name, "+%d XP", reward.XP)
		r.grantPlayerXP(reward.XP)
	}
	r.state.ActiveProject = &p
	return nil
}

func (r *reduction) minigameDismissed() error {
	r.state.Minigames = r.state.Minigames.Dismiss()
	return nil
}

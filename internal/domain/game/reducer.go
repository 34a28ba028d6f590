package game

import (
	"fmt"

	"github.com/andrescamacho/studiosim-go/internal/domain/notification"
	"github.com/andrescamacho/studiosim-go/internal/domain/progression"
	"github.com/andrescamacho/studiosim-go/internal/domain/shared"
)

// Event is re-exported so callers of Reduce need only this package.
type Event = notification.Event

// Reduce applies one action to a snapshot. On success it returns a new
// snapshot plus the events and money movements the action produced. On error
// the input snapshot is returned unchanged together with the rejection; every
// precondition is checked before anything is written.
func Reduce(s *State, a Action) (Result, error) {
	if s == nil {
		return Result{}, fmt.Errorf("reduce %T: nil state", a)
	}

	r := &reduction{state: s.Clone()}
	var err error

	switch act := a.(type) {
	case HireStaff:
		err = r.hireStaff(act)
	case AssignStaff:
		err = r.assignStaff(act)
	case UnassignStaff:
		err = r.unassignStaff(act)
	case ToggleStaffRest:
		err = r.toggleStaffRest(act)
	case AddStaffXP:
		err = r.addStaffXP(act)
	case SendStaffToTraining:
		err = r.sendStaffToTraining(act)
	case StartStaffPractice:
		err = r.startStaffPractice(act)
	case OfferProjects:
		err = r.offerProjects(act)
	case OfferCandidates:
		err = r.offerCandidates(act)
	case StartProject:
		err = r.startProject(act)
	case SetFocus:
		err = r.setFocus(act)
	case PerformWork:
		err = r.performWork()
	case AddWork:
		err = r.addWork(act)
	case AdvanceStage:
		err = r.advanceStage()
	case AdvanceDay:
		err = r.advanceDay()
	case OpenMinigame:
		err = r.openMinigame()
	case MinigameCompleted:
		err = r.minigameCompleted(act)
	case MinigameDismissed:
		err = r.minigameDismissed()
	case AddXP:
		err = r.addXP(act)
	case SpendAttributePoint:
		err = r.spendAttributePoint(act)
	case SpendPerkPoint:
		err = r.spendPerkPoint(act)
	case PurchaseEquipment:
		err = r.purchaseEquipment(act)
	default:
		err = shared.NewValidationError("action", fmt.Sprintf("unsupported action %T", a))
	}

	if err != nil {
		return Result{State: s}, err
	}
	return Result{State: r.state, Events: r.events, Movements: r.movements}, nil
}

// reduction accumulates the output of a single Reduce call against a private
// clone of the input state.
type reduction struct {
	state     *State
	events    []Event
	movements []Movement
}

func (r *reduction) emit(kind notification.Kind, title, format string, args ...interface{}) {
	r.events = append(r.events, notification.New(kind, r.state.Day, title, format, args...))
}

func (r *reduction) record(m Movement) {
	r.movements = append(r.movements, m)
}

func (r *reduction) requireFunds(amount int) error {
	if r.state.Money < amount {
		return shared.NewInsufficientFundsError(amount, r.state.Money)
	}
	return nil
}

// grantPlayerXP applies XP and emits level and milestone events.
func (r *reduction) grantPlayerXP(amount int) {
	player, report := r.state.Player.AddXP(amount, r.state.Catalog.Milestones)
	r.state.Player = player
	for _, level := range report.LevelsReached {
		r.emit(notification.KindLevelUp, "Level Up!", "You reached level %d", level)
	}
	for _, m := range report.Milestones {
		r.emit(notification.KindMilestoneAchieved, m.Name, "%s (+%d attribute, +%d perk points)", m.Description, m.AttributePoints, m.PerkPoints)
	}
}

func (r *reduction) addXP(act AddXP) error {
	if act.Amount < 0 {
		return shared.NewValidationError("amount", "xp cannot be negative")
	}
	r.grantPlayerXP(act.Amount)
	return nil
}

func (r *reduction) spendAttributePoint(act SpendAttributePoint) error {
	player, err := r.state.Player.SpendAttributePoint(progression.Attribute(act.Attribute))
	if err != nil {
		return err
	}
	r.state.Player = player
	return nil
}

func (r *reduction) spendPerkPoint(act SpendPerkPoint) error {
	player, err := r.state.Player.SpendPerkPoint(progression.Attribute(act.Attribute))
	if err != nil {
		return err
	}
	r.state.Player = player
	return nil
}

// requireUnlocked rejects catalog items a milestone has not released yet.
func (r *reduction) requireUnlocked(name, id string) error {
	if ok, level := r.state.Player.Unlocked(r.state.Catalog.Milestones, id); !ok {
		return shared.NewFeatureLockedError(name, level)
	}
	return nil
}

func (r *reduction) purchaseEquipment(act PurchaseEquipment) error {
	item, ok := r.state.Catalog.FindEquipment(act.EquipmentID)
	if !ok {
		return shared.NewNotFoundError("equipment", act.EquipmentID)
	}
	if r.state.Owns(item.ID) {
		return nil
	}
	if err := r.requireUnlocked(item.Name, item.ID); err != nil {
		return err
	}
	if err := r.requireFunds(item.Price); err != nil {
		return err
	}
	r.record(r.state.spend(MovementEquipment, item.Price, "Purchased "+item.Name, "equipment", item.ID))
	r.state.OwnedEquipment = append(r.state.OwnedEquipment, item.ID)
	r.emit(notification.KindEquipmentPurchased, "Equipment Purchased", "%s added to your studio", item.Name)
	return nil
}

package game

// MovementKind classifies a change to the studio's money.
type MovementKind string

const (
	MovementSigningFee MovementKind = "SIGNING_FEE"
	MovementTraining   MovementKind = "TRAINING"
	MovementEquipment  MovementKind = "EQUIPMENT"
	MovementSalaries   MovementKind = "SALARIES"
	MovementPayout     MovementKind = "PROJECT_PAYOUT"
)

// Movement is one money change produced by an action. Amount is negative for
// expenses and BalanceAfter always equals BalanceBefore + Amount.
type Movement struct {
	Kind          MovementKind
	Amount        int
	BalanceBefore int
	BalanceAfter  int
	Description   string
	EntityType    string
	EntityID      string
}

// Result is the outcome of reducing one action.
type Result struct {
	State     *State
	Events    []Event
	Movements []Movement
}

// spend moves money out of the studio and records it. Callers check funds
// beforehand.
func (s *State) spend(kind MovementKind, amount int, description, entityType, entityID string) Movement {
	return s.move(kind, -amount, description, entityType, entityID)
}

func (s *State) move(kind MovementKind, amount int, description, entityType, entityID string) Movement {
	before := s.Money
	s.Money += amount
	return Movement{
		Kind:          kind,
		Amount:        amount,
		BalanceBefore: before,
		BalanceAfter:  s.Money,
		Description:   description,
		EntityType:    entityType,
		EntityID:      entityID,
	}
}

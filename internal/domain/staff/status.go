package staff

import "fmt"

// Status is the closed set of states a staff member can be in.
type Status string

const (
	StatusIdle       Status = "Idle"
	StatusWorking    Status = "Working"
	StatusResting    Status = "Resting"
	StatusTraining   Status = "Training"
	StatusPracticing Status = "Practicing"
)

// AllStatuses returns every valid status
func AllStatuses() []Status {
	return []Status{StatusIdle, StatusWorking, StatusResting, StatusTraining, StatusPracticing}
}

func (s Status) String() string {
	return string(s)
}

// IsValid checks the status is one of the known values
func (s Status) IsValid() bool {
	switch s {
	case StatusIdle, StatusWorking, StatusResting, StatusTraining, StatusPracticing:
		return true
	default:
		return false
	}
}

// IsAvailable reports whether the member can take on a new activity.
func (s Status) IsAvailable() bool {
	switch s {
	case StatusIdle:
		return true
	case StatusWorking, StatusResting, StatusTraining, StatusPracticing:
		return false
	default:
		return false
	}
}

// dailyEnergyDelta is the energy change applied on each day advance.
func (s Status) dailyEnergyDelta() int {
	switch s {
	case StatusIdle:
		return 10
	case StatusResting:
		return 30
	case StatusWorking:
		return -5
	case StatusPracticing:
		return -5
	case StatusTraining:
		return 0
	default:
		return 0
	}
}

// ParseStatus parses a string into a Status
func ParseStatus(v string) (Status, error) {
	s := Status(v)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid staff status: %s", v)
	}
	return s, nil
}

// Role is the job a staff member fills on a project. A project holds at most
// one member per role.
type Role string

const (
	RoleEngineer   Role = "Engineer"
	RoleProducer   Role = "Producer"
	RoleSongwriter Role = "Songwriter"
)

// AllRoles returns every valid role
func AllRoles() []Role {
	return []Role{RoleEngineer, RoleProducer, RoleSongwriter}
}

func (r Role) String() string {
	return string(r)
}

// IsValid checks the role is one of the known values
func (r Role) IsValid() bool {
	switch r {
	case RoleEngineer, RoleProducer, RoleSongwriter:
		return true
	default:
		return false
	}
}

// ParseRole parses a role name, case-sensitively
func ParseRole(v string) (Role, error) {
	r := Role(v)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid staff role: %s", v)
	}
	return r, nil
}

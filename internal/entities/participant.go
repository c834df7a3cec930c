package entities

import (
	"fmt"
	"time"
)

// Role determines which secret a participant receives
type Role string

const (
	RoleUnassigned   Role = "unassigned"
	RoleSpy          Role = "spy"
	RoleMole         Role = "mole"
	RoleInvestigator Role = "investigator"
)

func (r Role) String() string {
	return string(r)
}

// IsValid reports whether r is one of the known roles
func (r Role) IsValid() bool {
	switch r {
	case RoleUnassigned, RoleSpy, RoleMole, RoleInvestigator:
		return true
	}
	return false
}

// DisplayName is the capitalized role name shown to players
func (r Role) DisplayName() string {
	switch r {
	case RoleSpy:
		return "Spy"
	case RoleMole:
		return "Mole"
	case RoleInvestigator:
		return "Investigator"
	default:
		return "Unassigned"
	}
}

// ParseRole converts a stored value back into a Role
func ParseRole(value string) (Role, error) {
	role := Role(value)
	if !role.IsValid() {
		return "", fmt.Errorf("unknown role %q", value)
	}
	return role, nil
}

// Participant is a user seated in a game
type Participant struct {
	GameID   string    `json:"game_id"`
	UserID   string    `json:"user_id"`
	Role     Role      `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

// Roster is the ordered participant list of a game, oldest join first
type Roster []*Participant

// UserIDs returns the user ids in join order
func (r Roster) UserIDs() []string {
	ids := make([]string, len(r))
	for i, p := range r {
		ids[i] = p.UserID
	}
	return ids
}

// Find returns the participant for userID, or nil
func (r Roster) Find(userID string) *Participant {
	for _, p := range r {
		if p.UserID == userID {
			return p
		}
	}
	return nil
}

// Contains checks if userID is seated
func (r Roster) Contains(userID string) bool {
	return r.Find(userID) != nil
}

// WithRole returns the user ids holding role, in join order
func (r Roster) WithRole(role Role) []string {
	var ids []string
	for _, p := range r {
		if p.Role == role {
			ids = append(ids, p.UserID)
		}
	}
	return ids
}

// Clone copies every participant
func (r Roster) Clone() Roster {
	out := make(Roster, len(r))
	for i, p := range r {
		cp := *p
		out[i] = &cp
	}
	return out
}

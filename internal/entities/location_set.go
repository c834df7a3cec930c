package entities

// LocationSet is the secret content distributed when a game starts
type LocationSet struct {
	// SpyLocations is the full catalog draw, shown to every Spy
	SpyLocations []string `json:"spy_locations"`

	// MoleLocations is a 3 element subset of SpyLocations, empty without a Mole
	MoleLocations []string `json:"mole_locations,omitempty"`

	// SelectedLocation is the answer, shown to every Investigator
	SelectedLocation string `json:"selected_location"`
}

// Clone returns a deep copy
func (l *LocationSet) Clone() *LocationSet {
	if l == nil {
		return nil
	}
	return &LocationSet{
		SpyLocations:     append([]string(nil), l.SpyLocations...),
		MoleLocations:    append([]string(nil), l.MoleLocations...),
		SelectedLocation: l.SelectedLocation,
	}
}

// Assignment is a proposed role and location distribution for one roster.
// The store commits it together with the Open to Running transition.
type Assignment struct {
	Roles        map[string]Role `json:"roles"`
	Locations    *LocationSet    `json:"locations"`
	FirstAskerID string          `json:"first_asker_id,omitempty"`
}

// RoleCount returns how many users received role
func (a *Assignment) RoleCount(role Role) int {
	count := 0
	for _, r := range a.Roles {
		if r == role {
			count++
		}
	}
	return count
}

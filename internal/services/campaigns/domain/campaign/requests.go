package campaign

// CreateRequest carries the fields supplied when creating a campaign.
type CreateRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Setting     string     `json:"setting"`
	DMNotes     string     `json:"dmNotes,omitempty"`
	Difficulty  Difficulty `json:"difficultyLevel"`
	// PlayerCount is nil when the caller did not supply it.
	PlayerCount *int `json:"playerCount,omitempty"`
}

// UpdateRequest is a partial update. Nil fields are left untouched and are
// never validated; non-nil fields are validated even when empty.
type UpdateRequest struct {
	Name        *string     `json:"name,omitempty"`
	Description *string     `json:"description,omitempty"`
	Setting     *string     `json:"setting,omitempty"`
	DMNotes     *string     `json:"dmNotes,omitempty"`
	Difficulty  *Difficulty `json:"difficultyLevel,omitempty"`
	PlayerCount *int        `json:"playerCount,omitempty"`
	IsActive    *bool       `json:"isActive,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (r UpdateRequest) IsEmpty() bool {
	return r.Name == nil &&
		r.Description == nil &&
		r.Setting == nil &&
		r.DMNotes == nil &&
		r.Difficulty == nil &&
		r.PlayerCount == nil &&
		r.IsActive == nil
}

// StatsUpdate carries the roll-up counters edited from the stats screen.
// Nil world counters are left untouched.
type StatsUpdate struct {
	ActiveCharacters int     `json:"activeCharacters"`
	TotalCharacters  int     `json:"totalCharacters"`
	AverageLevel     float64 `json:"averageLevel"`

	TotalNPCs       *int `json:"totalNpcs,omitempty"`
	TotalLocations  *int `json:"totalLocations,omitempty"`
	TotalQuests     *int `json:"totalQuests,omitempty"`
	CompletedQuests *int `json:"completedQuests,omitempty"`
	TotalEncounters *int `json:"totalEncounters,omitempty"`
}

package campaign

import "time"

// Field limits for campaign input.
const (
	MaxNameLength        = 100
	MaxDescriptionLength = 500
	MinPlayerCount       = 1
	MaxPlayerCount       = 10
	MinLevel             = 1
	MaxLevel             = 20
)

// Defaults applied by New.
const (
	DefaultPlayerCount  = 4
	DefaultAverageLevel = 1
)

// Info is the statistical snapshot kept alongside a campaign.
// CompletedQuests never exceeds TotalQuests.
type Info struct {
	TotalSessions   int        `json:"totalSessions"`
	TotalCharacters int        `json:"totalCharacters"`
	TotalNPCs       int        `json:"totalNpcs"`
	TotalLocations  int        `json:"totalLocations"`
	TotalQuests     int        `json:"totalQuests"`
	CompletedQuests int        `json:"completedQuests"`
	TotalEncounters int        `json:"totalEncounters"`
	Difficulty      Difficulty `json:"difficultyLevel"`
}

// Campaign is a single tabletop campaign record.
type Campaign struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Setting     string `json:"setting"`
	DMNotes     string `json:"dmNotes"`
	Status      Status `json:"status"`
	// IsActive is independent of Status: a Planning campaign may be active.
	IsActive       bool `json:"isActive"`
	CurrentSession int  `json:"currentSession"`
	Info           Info `json:"info"`

	// Roll-ups duplicated at the top level for list rendering.
	PlayerCount      int `json:"playerCount"`
	ActiveCharacters int `json:"activeCharacters"`
	// AverageLevel is 0 when unset, otherwise between MinLevel and MaxLevel.
	AverageLevel float64 `json:"averageLevel"`

	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
	LastSessionDate *time.Time `json:"lastSessionDate,omitempty"`
}

// Summary is the list-view projection of a Campaign.
type Summary struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	Setting          string     `json:"setting"`
	Status           Status     `json:"status"`
	IsActive         bool       `json:"isActive"`
	CurrentSession   int        `json:"currentSession"`
	PlayerCount      int        `json:"playerCount"`
	ActiveCharacters int        `json:"activeCharacters"`
	AverageLevel     float64    `json:"averageLevel"`
	Difficulty       Difficulty `json:"difficultyLevel"`
	LastSessionDate  *time.Time `json:"lastSessionDate,omitempty"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// Summary projects c for list views.
func (c Campaign) Summary() Summary {
	return Summary{
		ID:               c.ID,
		Name:             c.Name,
		Description:      c.Description,
		Setting:          c.Setting,
		Status:           c.Status,
		IsActive:         c.IsActive,
		CurrentSession:   c.CurrentSession,
		PlayerCount:      c.PlayerCount,
		ActiveCharacters: c.ActiveCharacters,
		AverageLevel:     c.AverageLevel,
		Difficulty:       c.Info.Difficulty,
		LastSessionDate:  cloneTime(c.LastSessionDate),
		UpdatedAt:        c.UpdatedAt,
	}
}

// Clone returns a deep copy of c.
func (c Campaign) Clone() Campaign {
	c.LastSessionDate = cloneTime(c.LastSessionDate)
	return c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

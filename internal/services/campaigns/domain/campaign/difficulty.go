package campaign

import "fmt"

// Difficulty is the campaign challenge level.
type Difficulty int

const (
	DifficultyCasual Difficulty = iota
	DifficultyNormal
	DifficultyHard
	DifficultyDeadly

	difficultyCount
)

var difficultyNames = [...]string{
	DifficultyCasual: "Casual",
	DifficultyNormal: "Normal",
	DifficultyHard:   "Hard",
	DifficultyDeadly: "Deadly",
}

var difficultyMultipliers = [...]float64{
	DifficultyCasual: 0.75,
	DifficultyNormal: 1.0,
	DifficultyHard:   1.25,
	DifficultyDeadly: 1.5,
}

var (
	_ [len(difficultyNames) - int(difficultyCount)]struct{}
	_ [int(difficultyCount) - len(difficultyNames)]struct{}
	_ [len(difficultyMultipliers) - int(difficultyCount)]struct{}
	_ [int(difficultyCount) - len(difficultyMultipliers)]struct{}
)

// Difficulties lists every difficulty from easiest to hardest.
func Difficulties() []Difficulty {
	out := make([]Difficulty, 0, difficultyCount)
	for d := DifficultyCasual; d < difficultyCount; d++ {
		out = append(out, d)
	}
	return out
}

// Valid reports whether d is one of the declared difficulties.
func (d Difficulty) Valid() bool {
	return d >= DifficultyCasual && d < difficultyCount
}

func (d Difficulty) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
	return difficultyNames[d]
}

// Label returns the English display label.
func (d Difficulty) Label() string {
	return d.String()
}

// DifficultyLabel returns the display label for d.
func DifficultyLabel(d Difficulty) string {
	return d.Label()
}

// EncounterMultiplier scales encounter budgets for the difficulty.
func (d Difficulty) EncounterMultiplier() float64 {
	if !d.Valid() {
		return 1.0
	}
	return difficultyMultipliers[d]
}

func (d Difficulty) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid difficulty %d", int(d))
	}
	return []byte(difficultyNames[d]), nil
}

func (d *Difficulty) UnmarshalText(text []byte) error {
	parsed, ok := ParseDifficulty(string(text))
	if !ok {
		return fmt.Errorf("unknown difficulty %q", string(text))
	}
	*d = parsed
	return nil
}

// ParseDifficulty accepts names case-insensitively, with an optional
// DIFFICULTY_ prefix.
func ParseDifficulty(value string) (Difficulty, bool) {
	key := normalizeEnumKey(value, "DIFFICULTY_")
	if key == "" {
		return 0, false
	}
	for d := DifficultyCasual; d < difficultyCount; d++ {
		if key == normalizeEnumKey(difficultyNames[d], "") {
			return d, true
		}
	}
	return 0, false
}

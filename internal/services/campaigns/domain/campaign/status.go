package campaign

import (
	"fmt"
	"strings"
)

// Status is the campaign lifecycle stage.
type Status int

const (
	StatusPlanning Status = iota
	StatusActive
	StatusOnHold
	StatusCompleted
	StatusArchived

	statusCount
)

var statusNames = [...]string{
	StatusPlanning:  "Planning",
	StatusActive:    "Active",
	StatusOnHold:    "OnHold",
	StatusCompleted: "Completed",
	StatusArchived:  "Archived",
}

var statusLabels = [...]string{
	StatusPlanning:  "Planning",
	StatusActive:    "Active",
	StatusOnHold:    "On Hold",
	StatusCompleted: "Completed",
	StatusArchived:  "Archived",
}

// Each table must have exactly one entry per status.
var (
	_ [len(statusNames) - int(statusCount)]struct{}
	_ [int(statusCount) - len(statusNames)]struct{}
	_ [len(statusLabels) - int(statusCount)]struct{}
	_ [int(statusCount) - len(statusLabels)]struct{}
)

// Statuses lists every status in lifecycle order.
func Statuses() []Status {
	out := make([]Status, 0, statusCount)
	for s := StatusPlanning; s < statusCount; s++ {
		out = append(out, s)
	}
	return out
}

// Valid reports whether s is one of the declared statuses.
func (s Status) Valid() bool {
	return s >= StatusPlanning && s < statusCount
}

// String returns the wire name of the status.
func (s Status) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}

// Label returns the English display label; it doubles as the catalog key.
func (s Status) Label() string {
	if !s.Valid() {
		return s.String()
	}
	return statusLabels[s]
}

// StatusLabel returns the display label for s.
func StatusLabel(s Status) string {
	return s.Label()
}

// MarshalText encodes the wire name.
func (s Status) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid campaign status %d", int(s))
	}
	return []byte(statusNames[s]), nil
}

// UnmarshalText decodes a wire name, rejecting anything outside the set.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, ok := ParseStatus(string(text))
	if !ok {
		return fmt.Errorf("unknown campaign status %q", string(text))
	}
	*s = parsed
	return nil
}

// ParseStatus accepts wire names, display labels and upper snake variants
// such as ON_HOLD or CAMPAIGN_STATUS_ACTIVE.
func ParseStatus(value string) (Status, bool) {
	key := normalizeEnumKey(value, "CAMPAIGN_STATUS_")
	if key == "" {
		return 0, false
	}
	for s := StatusPlanning; s < statusCount; s++ {
		if key == normalizeEnumKey(statusNames[s], "") {
			return s, true
		}
	}
	return 0, false
}

// normalizeEnumKey upper-cases value and strips prefix, spaces, dashes and
// underscores so "On Hold", "on-hold" and "ON_HOLD" compare equal.
func normalizeEnumKey(value, prefix string) string {
	upper := strings.ToUpper(strings.TrimSpace(value))
	if prefix != "" {
		upper = strings.TrimPrefix(upper, prefix)
	}
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(upper)
}

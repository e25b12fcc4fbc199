package value_objects

import (
	"errors"
	"strings"
)

// Priority represents task urgency level. The numeric values are part of
// the on-disk format and must not be reordered.
type Priority int

const (
	PriorityHigh   Priority = 1
	PriorityMedium Priority = 2
	PriorityLow    Priority = 3
)

var (
	ErrInvalidPriority = errors.New("invalid priority value")
)

var priorityNames = map[Priority]string{
	PriorityHigh:   "High",
	PriorityMedium: "Medium",
	PriorityLow:    "Low",
}

var priorityValues = map[string]Priority{
	"high":   PriorityHigh,
	"1":      PriorityHigh,
	"medium": PriorityMedium,
	"2":      PriorityMedium,
	"low":    PriorityLow,
	"3":      PriorityLow,
}

// ParsePriority creates a Priority from a string. It accepts both names
// ("high", "medium", "low") and digits ("1", "2", "3").
func ParsePriority(s string) (Priority, error) {
	p, ok := priorityValues[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return PriorityMedium, ErrInvalidPriority
	}
	return p, nil
}

// Normalize coerces any out-of-domain value to PriorityMedium. Task
// construction never fails on a bad priority.
func (p Priority) Normalize() Priority {
	if !p.IsValid() {
		return PriorityMedium
	}
	return p
}

// String returns the display label for the priority.
func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return "Medium"
}

// IsValid returns true if the priority is a valid value.
func (p Priority) IsValid() bool {
	_, ok := priorityNames[p]
	return ok
}

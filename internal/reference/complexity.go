package reference

import (
	"fmt"
	"strings"
)

// Complexity is the qualitative risk tier of a migration or a service.
type Complexity string

const (
	Low    Complexity = "Low"
	Medium Complexity = "Medium"
	High   Complexity = "High"
)

var complexities = []Complexity{Low, Medium, High}

// Complexities returns the tiers ordered from lowest to highest.
func Complexities() []Complexity {
	return append([]Complexity(nil), complexities...)
}

func (c Complexity) Valid() bool {
	for _, known := range complexities {
		if c == known {
			return true
		}
	}
	return false
}

func (c Complexity) String() string { return string(c) }

// ParseComplexity accepts a tier name in any letter case.
func ParseComplexity(s string) (Complexity, error) {
	for _, c := range complexities {
		if strings.EqualFold(strings.TrimSpace(s), string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownComplexityTier, s)
}

// Timeline is the project pace preference. It is carried with an assessment
// but does not change any estimate.
type Timeline string

const (
	Aggressive   Timeline = "Aggressive"
	Standard     Timeline = "Standard"
	Conservative Timeline = "Conservative"
)

var timelines = []Timeline{Aggressive, Standard, Conservative}

func Timelines() []Timeline {
	return append([]Timeline(nil), timelines...)
}

func (t Timeline) Valid() bool {
	for _, known := range timelines {
		if t == known {
			return true
		}
	}
	return false
}

func ParseTimeline(s string) (Timeline, error) {
	for _, t := range timelines {
		if strings.EqualFold(strings.TrimSpace(s), string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTimeline, s)
}

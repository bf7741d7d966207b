package estimation

import (
	"errors"

	"github.com/kubev2v/vdi-migration-planner/internal/reference"
)

// MaxUsersPerType bounds each population count so that totals and derived
// quantities stay within int range.
const MaxUsersPerType = 1_000_000

var (
	// ErrEmptyPopulation is returned when the population counts sum to zero.
	// It is distinct from a zero-valued result so callers can ask for input.
	ErrEmptyPopulation = errors.New("population is empty")
	// ErrNegativeCount is returned when a user type has a negative count.
	ErrNegativeCount = errors.New("user count must be non-negative")
	// ErrCountTooLarge is returned when a user type exceeds MaxUsersPerType.
	ErrCountTooLarge = errors.New("user count exceeds the supported maximum")

	ErrUnknownUserType       = reference.ErrUnknownUserType
	ErrUnknownComplexityTier = reference.ErrUnknownComplexityTier
	ErrUnknownService        = reference.ErrUnknownService
	ErrUnknownTimeline       = reference.ErrUnknownTimeline
)

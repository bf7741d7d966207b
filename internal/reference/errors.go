package reference

import "errors"

var (
	ErrUnknownUserType       = errors.New("unknown user type")
	ErrUnknownComplexityTier = errors.New("unknown complexity tier")
	ErrUnknownService        = errors.New("unknown service")
	ErrUnknownTimeline       = errors.New("unknown timeline preference")
)

package carousel

import "fmt"

// ConfigurationError reports options or item sets the engine cannot work
// with. A carousel built from a configuration error is inert: it keeps its
// items visible at the initial position and ignores navigation.
type ConfigurationError struct {
	Field  string
	Value  int
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("carousel: invalid %s (%d): %s", e.Field, e.Value, e.Reason)
}

// OutOfRangeError reports a position outside the padded sequence. It means
// the layout and the position space disagree, which is a programming error
// rather than a user-facing condition.
type OutOfRangeError struct {
	Position     int
	PaddedLength int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("carousel: position %d outside padded sequence [0, %d)", e.Position, e.PaddedLength)
}

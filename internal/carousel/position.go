package carousel

import "fmt"

// Zone classifies a position of the padded sequence.
type Zone int

const (
	Real Zone = iota
	TailClone
	HeadClone
)

func (z Zone) String() string {
	switch z {
	case Real:
		return "real"
	case TailClone:
		return "tail-clone"
	case HeadClone:
		return "head-clone"
	default:
		return fmt.Sprintf("Zone(%d)", int(z))
	}
}

func checkRange(position, cloneCount, itemCount int) error {
	padded := itemCount + 2*cloneCount
	if position < 0 || position >= padded {
		return &OutOfRangeError{Position: position, PaddedLength: padded}
	}
	return nil
}

// Classify returns the zone of position.
func Classify(position, cloneCount, itemCount int) (Zone, error) {
	if err := checkRange(position, cloneCount, itemCount); err != nil {
		return Real, err
	}
	switch {
	case position < cloneCount:
		return TailClone, nil
	case position >= cloneCount+itemCount:
		return HeadClone, nil
	default:
		return Real, nil
	}
}

// ToRealIndex maps a position to its real index. ok is false for clone
// positions; callers classify first when they need the equivalent item.
func ToRealIndex(position, cloneCount, itemCount int) (index int, ok bool, err error) {
	if err := checkRange(position, cloneCount, itemCount); err != nil {
		return 0, false, err
	}
	if position < cloneCount || position >= cloneCount+itemCount {
		return 0, false, nil
	}
	return min(max(position-cloneCount, 0), itemCount-1), true, nil
}

// EquivalentRealPosition returns the real position rendering the same item
// as a clone position. A tail clone k steps before the first real slot maps
// to k steps before the end of the real range; a head clone k steps past the
// last real slot maps to k steps past the start. Positions one step outside
// the padded sequence map the same way.
func EquivalentRealPosition(position int, zone Zone, cloneCount, itemCount int) int {
	if zone == Real || itemCount == 0 {
		return position
	}
	return cloneCount + mod(position-cloneCount, itemCount)
}

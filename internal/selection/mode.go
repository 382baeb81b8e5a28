package selection

import "fmt"

// Mode determines which selection container is active and how picks mutate
// it. Exactly one container is meaningful at a time; switching modes resets
// the others.
type Mode int

const (
	// ModeSingle keeps at most one selected date.
	ModeSingle Mode = iota
	// ModeMultiple keeps an ordered set of dates; picking toggles membership.
	ModeMultiple
	// ModeRange builds one inclusive date span from consecutive picks.
	ModeRange
	// ModeMultiRange builds a sequence of spans; overlapping older spans are
	// removed as new ones are drawn.
	ModeMultiRange
	// ModeExtendableRange grows an existing span towards each new pick
	// instead of starting over.
	ModeExtendableRange
)

func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeMultiple:
		return "multiple"
	case ModeRange:
		return "range"
	case ModeMultiRange:
		return "multirange"
	case ModeExtendableRange:
		return "extendable"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode reads a mode name as written in configuration files.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "single":
		return ModeSingle, nil
	case "multiple":
		return ModeMultiple, nil
	case "range":
		return ModeRange, nil
	case "multirange":
		return ModeMultiRange, nil
	case "extendable":
		return ModeExtendableRange, nil
	default:
		return ModeSingle, fmt.Errorf("unknown selection mode %q", name)
	}
}

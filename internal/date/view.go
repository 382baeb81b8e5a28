package date

import "fmt"

// View is the zoom level of the picker: which calendar granularity a window
// of visible dates represents.
type View int

const (
	ViewMonth View = iota
	ViewYear
	ViewDecade
	ViewCentury
)

// String returns the lowercase name used in configuration files and logs.
func (v View) String() string {
	switch v {
	case ViewMonth:
		return "month"
	case ViewYear:
		return "year"
	case ViewDecade:
		return "decade"
	case ViewCentury:
		return "century"
	default:
		return fmt.Sprintf("View(%d)", int(v))
	}
}

// ParseView reads a view name as written in configuration files.
func ParseView(name string) (View, error) {
	switch name {
	case "month":
		return ViewMonth, nil
	case "year":
		return ViewYear, nil
	case "decade":
		return ViewDecade, nil
	case "century":
		return ViewCentury, nil
	default:
		return ViewMonth, fmt.Errorf("unknown view %q", name)
	}
}

// Valid reports whether v is one of the four defined levels.
func (v View) Valid() bool {
	return v >= ViewMonth && v <= ViewCentury
}

// ZoomIn returns the next finer level (century -> decade -> year -> month).
// ok is false when v is already the month level.
func (v View) ZoomIn() (View, bool) {
	if v <= ViewMonth {
		return v, false
	}
	return v - 1, true
}

// ZoomOut returns the next coarser level. ok is false when v is already the
// century level.
func (v View) ZoomOut() (View, bool) {
	if v >= ViewCentury {
		return v, false
	}
	return v + 1, true
}

package drawable

// ColorEntry maps a state specification to a color. A set matches when it
// contains every state in On and none of the states in Off.
type ColorEntry struct {
	On    StateSet
	Off   StateSet
	Color ARGB
}

func (e ColorEntry) matches(s StateSet) bool {
	return s&e.On == e.On && s&e.Off == 0
}

// ColorList resolves a color from a state set. Entries are checked in order
// and the first match wins, so specific specifications belong before general
// ones; an empty specification matches every set and usually comes last as
// the default.
//
// A ColorList is immutable after construction and safe to share between
// drawable instances.
type ColorList struct {
	entries []ColorEntry
}

// NewColorList creates a list resolving every state to a single color.
func NewColorList(c ARGB) *ColorList {
	return &ColorList{entries: []ColorEntry{{Color: c}}}
}

// NewStatefulColorList creates a list from explicit entries, matched in the
// order given.
func NewStatefulColorList(entries ...ColorEntry) *ColorList {
	l := &ColorList{entries: make([]ColorEntry, len(entries))}
	copy(l.entries, entries)
	return l
}

// ColorForState returns the color of the first entry matching s, or fallback
// when nothing matches.
func (l *ColorList) ColorForState(s StateSet, fallback ARGB) ARGB {
	for _, e := range l.entries {
		if e.matches(s) {
			return e.Color
		}
	}
	return fallback
}

// DefaultColor returns the color of the first entry with an empty state
// specification, or the first entry's color when every entry is
// state-specific.
func (l *ColorList) DefaultColor() ARGB {
	for _, e := range l.entries {
		if e.On == 0 && e.Off == 0 {
			return e.Color
		}
	}
	if len(l.entries) > 0 {
		return l.entries[0].Color
	}
	return 0
}

// IsStateful reports whether the resolved color can vary by state.
func (l *ColorList) IsStateful() bool {
	if len(l.entries) > 1 {
		return true
	}
	for _, e := range l.entries {
		if e.On != 0 || e.Off != 0 {
			return true
		}
	}
	return false
}

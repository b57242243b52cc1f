package drawable

import "strings"

// StateSet is a bitmask describing the interaction state a drawable is
// rendered in. State-dependent appearance (tint color lists) resolves
// against the active set.
type StateSet uint32

const (
	// StateEnabled marks the drawable's owner as enabled.
	StateEnabled StateSet = 1 << iota
	// StatePressed marks an active press.
	StatePressed
	// StateFocused marks keyboard focus.
	StateFocused
	// StateSelected marks selection within a group.
	StateSelected
	// StateHovered marks pointer hover.
	StateHovered
	// StateChecked marks a checked toggle.
	StateChecked
	// StateActivated marks persistent activation.
	StateActivated
	// StateWindowFocused marks the owning window as focused.
	StateWindowFocused
)

// Has reports whether every state in q is present in s.
func (s StateSet) Has(q StateSet) bool { return s&q == q }

// With returns s with the states in q added.
func (s StateSet) With(q StateSet) StateSet { return s | q }

// Without returns s with the states in q removed.
func (s StateSet) Without(q StateSet) StateSet { return s &^ q }

var stateNames = []struct {
	bit  StateSet
	name string
}{
	{StateEnabled, "enabled"},
	{StatePressed, "pressed"},
	{StateFocused, "focused"},
	{StateSelected, "selected"},
	{StateHovered, "hovered"},
	{StateChecked, "checked"},
	{StateActivated, "activated"},
	{StateWindowFocused, "window_focused"},
}

// String formats the set as a "+"-joined list of state names.
func (s StateSet) String() string {
	if s == 0 {
		return "none"
	}
	var parts []string
	for _, sn := range stateNames {
		if s.Has(sn.bit) {
			parts = append(parts, sn.name)
		}
	}
	return strings.Join(parts, "+")
}

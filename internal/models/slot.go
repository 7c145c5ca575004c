package models

// Slot names collected over the course of a conversation.
const (
	SlotLocation       = "location"
	SlotCuisine        = "cuisine"
	SlotDate           = "date"
	SlotTime           = "time"
	SlotNumberOfPeople = "numberOfPeople"
	SlotEmail          = "email"
)

// SlotValue carries the raw user text and the runtime's normalized reading of it.
type SlotValue struct {
	OriginalValue    string `json:"originalValue"`
	InterpretedValue string `json:"interpretedValue"`
}

// Slot is one named field of a conversational order. A nil *Slot means unset.
type Slot struct {
	Value SlotValue `json:"value"`
}

// Slots is the slot set for one conversation at a given turn. The dialog
// runtime owns and mutates it between turns; this codebase only reads it.
type Slots map[string]*Slot

// IsSet reports whether the named slot is present.
func (s Slots) IsSet(name string) bool {
	return s[name] != nil
}

// Original returns the raw user text for a slot, if set.
func (s Slots) Original(name string) (string, bool) {
	slot := s[name]
	if slot == nil {
		return "", false
	}
	return slot.Value.OriginalValue, true
}

// Interpreted returns the runtime-normalized value for a slot, if set.
func (s Slots) Interpreted(name string) (string, bool) {
	slot := s[name]
	if slot == nil {
		return "", false
	}
	return slot.Value.InterpretedValue, true
}

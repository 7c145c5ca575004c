// internal/workers/dialog/turn-handler/validator_test.go
package turnhandler

import (
	"testing"
	"time"

	"dining-concierge/internal/models"

	"github.com/stretchr/testify/assert"
)

// ==========================
// Test Helper Functions
// ==========================

func slot(value string) *models.Slot {
	return &models.Slot{Value: models.SlotValue{OriginalValue: value, InterpretedValue: value}}
}

// fixedValidator pins "now" to 2025-06-15 10:00 UTC so date and hour rules
// are deterministic.
func fixedValidator() *Validator {
	v := NewValidator(time.UTC)
	v.now = func() time.Time {
		return time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	}
	return v
}

func validSlots() models.Slots {
	return models.Slots{
		models.SlotLocation:       slot("Brooklyn"),
		models.SlotCuisine:        slot("Italian"),
		models.SlotDate:           slot("2025-06-16"),
		models.SlotTime:           slot("18"),
		models.SlotNumberOfPeople: slot("4"),
		models.SlotEmail:          slot("x@y.com"),
	}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestValidator_ValidOrders(t *testing.T) {
	v := fixedValidator()

	tests := []struct {
		name  string
		slots models.Slots
	}{
		{
			name:  "all slots set and valid",
			slots: validSlots(),
		},
		{
			name:  "no slots set yet",
			slots: models.Slots{},
		},
		{
			name: "partial order mid-conversation",
			slots: models.Slots{
				models.SlotLocation: slot("manhattan"),
				models.SlotCuisine:  slot("chinese"),
			},
		},
		{
			name: "mixed-case values are accepted",
			slots: models.Slots{
				models.SlotLocation: slot("NEW YORK"),
				models.SlotCuisine:  slot("French"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := v.Validate(tt.slots)
			assert.True(t, result.Valid)
			assert.Empty(t, result.Slot)
			assert.Empty(t, result.Message)
		})
	}
}

func TestValidator_InvalidSlots(t *testing.T) {
	v := fixedValidator()

	tests := []struct {
		name        string
		mutate      func(slots models.Slots)
		wantSlot    string
		wantMessage string
	}{
		{
			name:        "unknown location",
			mutate:      func(s models.Slots) { s[models.SlotLocation] = slot("Boston") },
			wantSlot:    models.SlotLocation,
			wantMessage: MsgInvalidLocation,
		},
		{
			name:        "unknown cuisine",
			mutate:      func(s models.Slots) { s[models.SlotCuisine] = slot("Greek") },
			wantSlot:    models.SlotCuisine,
			wantMessage: MsgInvalidCuisine,
		},
		{
			name:        "date in the past",
			mutate:      func(s models.Slots) { s[models.SlotDate] = slot("2025-06-14") },
			wantSlot:    models.SlotDate,
			wantMessage: MsgInvalidDate,
		},
		{
			name:        "unparseable date",
			mutate:      func(s models.Slots) { s[models.SlotDate] = slot("tomorrow") },
			wantSlot:    models.SlotDate,
			wantMessage: MsgInvalidDate,
		},
		{
			name:        "hour above range",
			mutate:      func(s models.Slots) { s[models.SlotTime] = slot("24") },
			wantSlot:    models.SlotTime,
			wantMessage: MsgInvalidTime,
		},
		{
			name:        "negative hour",
			mutate:      func(s models.Slots) { s[models.SlotTime] = slot("-1") },
			wantSlot:    models.SlotTime,
			wantMessage: MsgInvalidTime,
		},
		{
			name:        "fractional hour",
			mutate:      func(s models.Slots) { s[models.SlotTime] = slot("18.5") },
			wantSlot:    models.SlotTime,
			wantMessage: MsgInvalidTime,
		},
		{
			name:        "unparseable hour",
			mutate:      func(s models.Slots) { s[models.SlotTime] = slot("evening") },
			wantSlot:    models.SlotTime,
			wantMessage: MsgInvalidTime,
		},
		{
			name:        "zero people",
			mutate:      func(s models.Slots) { s[models.SlotNumberOfPeople] = slot("0") },
			wantSlot:    models.SlotNumberOfPeople,
			wantMessage: MsgInvalidNumberOfPeople,
		},
		{
			name:        "fractional people",
			mutate:      func(s models.Slots) { s[models.SlotNumberOfPeople] = slot("2.5") },
			wantSlot:    models.SlotNumberOfPeople,
			wantMessage: MsgInvalidNumberOfPeople,
		},
		{
			name:        "unparseable people",
			mutate:      func(s models.Slots) { s[models.SlotNumberOfPeople] = slot("four") },
			wantSlot:    models.SlotNumberOfPeople,
			wantMessage: MsgInvalidNumberOfPeople,
		},
		{
			name:        "email without at sign",
			mutate:      func(s models.Slots) { s[models.SlotEmail] = slot("xy.com") },
			wantSlot:    models.SlotEmail,
			wantMessage: MsgInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := validSlots()
			tt.mutate(slots)

			result := v.Validate(slots)
			assert.False(t, result.Valid)
			assert.Equal(t, tt.wantSlot, result.Slot)
			assert.Equal(t, tt.wantMessage, result.Message)
		})
	}
}

func TestValidator_FirstViolationWins(t *testing.T) {
	v := fixedValidator()

	// location and email are both invalid; location is checked first
	slots := validSlots()
	slots[models.SlotLocation] = slot("Boston")
	slots[models.SlotEmail] = slot("not-an-email")

	result := v.Validate(slots)
	assert.False(t, result.Valid)
	assert.Equal(t, models.SlotLocation, result.Slot)
	assert.Equal(t, MsgInvalidLocation, result.Message)
}

func TestValidator_DateBoundary(t *testing.T) {
	v := fixedValidator()

	slots := models.Slots{models.SlotDate: slot("2025-06-15")}
	assert.True(t, v.Validate(slots).Valid, "today is valid")

	slots[models.SlotDate] = slot("2025-06-14")
	assert.False(t, v.Validate(slots).Valid, "yesterday is invalid")
}

func TestValidator_SameDayHourBoundary(t *testing.T) {
	// pinned now is 10:00
	v := fixedValidator()

	tests := []struct {
		name  string
		date  string
		hour  string
		valid bool
	}{
		{name: "same day, current hour", date: "2025-06-15", hour: "10", valid: false},
		{name: "same day, one hour from now", date: "2025-06-15", hour: "11", valid: true},
		{name: "same day, earlier hour", date: "2025-06-15", hour: "8", valid: false},
		{name: "future date, earlier hour", date: "2025-06-16", hour: "8", valid: true},
		{name: "hour with no date set", date: "", hour: "8", valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := models.Slots{models.SlotTime: slot(tt.hour)}
			if tt.date != "" {
				slots[models.SlotDate] = slot(tt.date)
			}
			assert.Equal(t, tt.valid, v.Validate(slots).Valid)
		})
	}
}

func TestValidator_WeakEmailCheck(t *testing.T) {
	v := fixedValidator()

	slots := models.Slots{models.SlotEmail: slot("a@b")}
	assert.True(t, v.Validate(slots).Valid, "any string containing @ passes")
}

func TestValidator_Idempotent(t *testing.T) {
	v := fixedValidator()

	slots := validSlots()
	slots[models.SlotCuisine] = slot("Greek")

	first := v.Validate(slots)
	second := v.Validate(slots)
	assert.Equal(t, first, second)
}

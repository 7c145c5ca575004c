// internal/workers/dialog/turn-handler/validator.go
package turnhandler

import (
	"strconv"
	"strings"
	"time"

	"dining-concierge/internal/common/metrics"
	"dining-concierge/internal/models"
)

const dateLayout = "2006-01-02"

var (
	allowedLocations = []string{"manhattan", "new york", "brooklyn", "queens"}
	allowedCuisines  = []string{"chinese", "japanese", "italian", "french", "spanish", "indian"}
)

// Validator runs the slot rules in a fixed order and reports the first
// violation. Unset slots pass trivially; the dialog runtime elicits them on
// its own. The rules never mutate the slot set.
type Validator struct {
	tz  *time.Location
	now func() time.Time
}

func NewValidator(tz *time.Location) *Validator {
	return &Validator{tz: tz, now: time.Now}
}

// Validate checks location, cuisine, date, time, numberOfPeople and email, in
// that order, against the raw user text of each slot.
func (v *Validator) Validate(slots models.Slots) ValidationResult {
	if raw, ok := slots.Original(models.SlotLocation); ok {
		if !contains(allowedLocations, strings.ToLower(raw)) {
			return v.invalid(models.SlotLocation, MsgInvalidLocation)
		}
	}

	if raw, ok := slots.Original(models.SlotCuisine); ok {
		if !contains(allowedCuisines, strings.ToLower(raw)) {
			return v.invalid(models.SlotCuisine, MsgInvalidCuisine)
		}
	}

	if raw, ok := slots.Original(models.SlotDate); ok {
		day, err := time.ParseInLocation(dateLayout, raw, v.tz)
		if err != nil || day.Before(v.today()) {
			return v.invalid(models.SlotDate, MsgInvalidDate)
		}
	}

	if raw, ok := slots.Original(models.SlotTime); ok {
		if !v.validHour(raw, slots) {
			return v.invalid(models.SlotTime, MsgInvalidTime)
		}
	}

	if raw, ok := slots.Original(models.SlotNumberOfPeople); ok {
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil || n != float64(int64(n)) || n <= 0 {
			return v.invalid(models.SlotNumberOfPeople, MsgInvalidNumberOfPeople)
		}
	}

	if raw, ok := slots.Original(models.SlotEmail); ok {
		if !strings.Contains(raw, "@") {
			return v.invalid(models.SlotEmail, MsgInvalidEmail)
		}
	}

	return ValidationResult{Valid: true}
}

// validHour checks the reservation hour: a whole number in [0, 23], and when
// the date slot resolves to today, strictly after the current hour.
func (v *Validator) validHour(raw string, slots models.Slots) bool {
	hour, err := strconv.ParseFloat(raw, 64)
	if err != nil || hour != float64(int64(hour)) || hour < 0 || hour > 23 {
		return false
	}

	dateRaw, ok := slots.Original(models.SlotDate)
	if !ok {
		return true
	}
	day, err := time.ParseInLocation(dateLayout, dateRaw, v.tz)
	if err != nil {
		return true
	}
	if day.Equal(v.today()) && int(hour) <= v.now().In(v.tz).Hour() {
		return false
	}
	return true
}

func (v *Validator) today() time.Time {
	now := v.now().In(v.tz)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, v.tz)
}

func (v *Validator) invalid(slot, message string) ValidationResult {
	metrics.SlotValidationFailures.WithLabelValues(slot).Inc()
	return ValidationResult{Valid: false, Slot: slot, Message: message}
}

func contains(values []string, candidate string) bool {
	for _, value := range values {
		if value == candidate {
			return true
		}
	}
	return false
}

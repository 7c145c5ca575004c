// internal/workers/dialog/turn-handler/models.go
package turnhandler

// ValidationResult is the outcome of running the slot rules over one turn's
// slot set. When Valid is false, Slot names the first violated slot and
// Message is the user-facing re-prompt for it.
type ValidationResult struct {
	Valid   bool   `json:"isValid"`
	Slot    string `json:"invalidSlot,omitempty"`
	Message string `json:"message,omitempty"`
}

// User-facing re-prompts, one per slot rule.
const (
	MsgInvalidLocation       = "Please select a location from manhattan, new york, brooklyn, queens."
	MsgInvalidCuisine        = "Please select cuisine from chinese, japanese, italian, french, spanish, indian."
	MsgInvalidDate           = "Please choose a future date or today"
	MsgInvalidTime           = "Please choose a valid future time between 0 and 23 inclusive"
	MsgInvalidNumberOfPeople = "Please select a positive number of people."
	MsgInvalidEmail          = "Please select a valid email."
)

// MsgRequestQueued closes the conversation after the job is enqueued.
const MsgRequestQueued = "Your request is processed. You will receive an email with the suggestions."

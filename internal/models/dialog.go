package models

// Invocation phases supplied by the dialog runtime on every turn.
const (
	PhaseClarify = "Clarify"
	PhaseFulfill = "Fulfill"
)

// Dialog actions the turn handler can instruct the runtime to take.
const (
	ActionElicitSlot = "ElicitSlot"
	ActionDelegate   = "Delegate"
	ActionClose      = "Close"
)

// IntentStateFulfilled marks a closed conversation whose job was dispatched.
const IntentStateFulfilled = "Fulfilled"

// TurnEvent is one dialog-runtime invocation of the turn handler.
type TurnEvent struct {
	Phase      string `json:"phase"`
	IntentName string `json:"intentName"`
	Slots      Slots  `json:"slots"`
}

// DialogAction tells the runtime what to do next with the conversation.
type DialogAction struct {
	Type         string `json:"type"`
	SlotToElicit string `json:"slotToElicit,omitempty"`
}

// TurnResponse is the turn handler's answer to a TurnEvent. Slots are always
// echoed back unchanged.
type TurnResponse struct {
	DialogAction DialogAction `json:"dialogAction"`
	IntentName   string       `json:"intentName"`
	IntentState  string       `json:"intentState,omitempty"`
	Slots        Slots        `json:"slots"`
	Message      string       `json:"message,omitempty"`
}

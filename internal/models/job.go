package models

// Job is the finalized order enqueued for asynchronous fulfillment. All values
// are string-encoded on the wire; the worker treats the record as immutable.
type Job struct {
	Location       string `json:"location"`
	Cuisine        string `json:"cuisine"`
	NumberOfPeople string `json:"numberOfPeople"`
	Time           string `json:"time"`
	Email          string `json:"email"`
}

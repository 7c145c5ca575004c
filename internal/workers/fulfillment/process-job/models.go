// internal/workers/fulfillment/process-job/models.go
package processjob

import "dining-concierge/internal/models"

// Outcome classifies one worker invocation.
type Outcome string

const (
	// OutcomeNoMessage means the queue had nothing visible.
	OutcomeNoMessage Outcome = "NoMessage"
	// OutcomeProcessed means a notification was sent and the job acknowledged.
	OutcomeProcessed Outcome = "Processed"
	// OutcomeDiscarded means a malformed job was drained without processing.
	OutcomeDiscarded Outcome = "Discarded"
	// OutcomeDuplicate means the dedup guard had already seen this job.
	OutcomeDuplicate Outcome = "Duplicate"
	// OutcomeFailed labels errored runs in metrics only; errored runs return
	// a nil RunResult alongside the error.
	OutcomeFailed Outcome = "Failed"
)

// RunResult is the report of one successful worker invocation. Results is
// populated only for Processed runs so the invocation boundary can echo the
// recommendations back.
type RunResult struct {
	Outcome   Outcome                    `json:"outcome"`
	MessageID string                     `json:"messageId,omitempty"`
	Results   []models.RestaurantDetails `json:"results,omitempty"`
}

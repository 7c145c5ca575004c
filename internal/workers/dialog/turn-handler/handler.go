// internal/workers/dialog/turn-handler/handler.go
package turnhandler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dining-concierge/internal/common/logger"
	"dining-concierge/internal/common/metrics"
	"dining-concierge/internal/models"
)

const TaskType = "dialog-turn"

var (
	ErrUnknownPhase = errors.New("UNKNOWN_PHASE")
)

// JobDispatcher hands a finalized order to the fulfillment queue.
type JobDispatcher interface {
	Dispatch(ctx context.Context, job models.Job) (string, error)
}

// Handler drives one dialog turn. In the Clarify phase it re-prompts for the
// first invalid slot or delegates back to the runtime; in the Fulfill phase it
// enqueues the order and closes the conversation. Slots are echoed back
// unchanged in every response.
type Handler struct {
	validator  *Validator
	dispatcher JobDispatcher
	logger     logger.Logger
}

func NewHandler(config *Config, dispatcher JobDispatcher, log logger.Logger) (*Handler, error) {
	tz, err := time.LoadLocation(config.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", config.Timezone, err)
	}
	return &Handler{
		validator:  NewValidator(tz),
		dispatcher: dispatcher,
		logger:     log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}, nil
}

func (h *Handler) Execute(ctx context.Context, event *models.TurnEvent) (*models.TurnResponse, error) {
	h.logger.Info("processing turn", map[string]interface{}{
		"phase":  event.Phase,
		"intent": event.IntentName,
	})

	switch event.Phase {
	case models.PhaseClarify:
		return h.clarify(event), nil
	case models.PhaseFulfill:
		return h.fulfill(ctx, event)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownPhase, event.Phase)
	}
}

func (h *Handler) clarify(event *models.TurnEvent) *models.TurnResponse {
	result := h.validator.Validate(event.Slots)
	if !result.Valid {
		h.logger.Info("slot invalid", map[string]interface{}{
			"slot": result.Slot,
		})
		metrics.DialogTurnsTotal.WithLabelValues(models.ActionElicitSlot).Inc()
		return &models.TurnResponse{
			DialogAction: models.DialogAction{
				Type:         models.ActionElicitSlot,
				SlotToElicit: result.Slot,
			},
			IntentName: event.IntentName,
			Slots:      event.Slots,
			Message:    result.Message,
		}
	}

	metrics.DialogTurnsTotal.WithLabelValues(models.ActionDelegate).Inc()
	return &models.TurnResponse{
		DialogAction: models.DialogAction{Type: models.ActionDelegate},
		IntentName:   event.IntentName,
		Slots:        event.Slots,
	}
}

func (h *Handler) fulfill(ctx context.Context, event *models.TurnEvent) (*models.TurnResponse, error) {
	job := jobFromSlots(event.Slots)

	messageID, err := h.dispatcher.Dispatch(ctx, job)
	if err != nil {
		return nil, err
	}

	metrics.DialogTurnsTotal.WithLabelValues(models.ActionClose).Inc()
	h.logger.Info("conversation closed", map[string]interface{}{
		"messageId": messageID,
		"intent":    event.IntentName,
	})
	return &models.TurnResponse{
		DialogAction: models.DialogAction{Type: models.ActionClose},
		IntentName:   event.IntentName,
		IntentState:  models.IntentStateFulfilled,
		Slots:        event.Slots,
		Message:      MsgRequestQueued,
	}, nil
}

// jobFromSlots reads the runtime-normalized value of each slot. By the time
// the Fulfill phase fires, the runtime has already elicited every slot.
func jobFromSlots(slots models.Slots) models.Job {
	location, _ := slots.Interpreted(models.SlotLocation)
	cuisine, _ := slots.Interpreted(models.SlotCuisine)
	people, _ := slots.Interpreted(models.SlotNumberOfPeople)
	hour, _ := slots.Interpreted(models.SlotTime)
	email, _ := slots.Interpreted(models.SlotEmail)

	return models.Job{
		Location:       location,
		Cuisine:        cuisine,
		NumberOfPeople: people,
		Time:           hour,
		Email:          email,
	}
}

// internal/workers/dialog/turn-handler/dispatcher.go
package turnhandler

import (
	"context"
	"encoding/json"

	commonerrors "dining-concierge/internal/common/errors"
	"dining-concierge/internal/common/logger"
	"dining-concierge/internal/common/metrics"
	"dining-concierge/internal/models"
)

// QueueDispatcher enqueues one serialized job body.
type QueueDispatcher interface {
	SendMessage(ctx context.Context, body string) (string, error)
}

// Dispatcher serializes finalized orders onto the fulfillment queue. It does
// not retry; enqueue failures propagate to the dialog transport.
type Dispatcher struct {
	queue  QueueDispatcher
	logger logger.Logger
}

func NewDispatcher(queue QueueDispatcher, log logger.Logger) *Dispatcher {
	return &Dispatcher{
		queue:  queue,
		logger: log.WithFields(map[string]interface{}{"component": "dispatcher"}),
	}
}

// Dispatch enqueues the job and returns the queue message id.
func (d *Dispatcher) Dispatch(ctx context.Context, job models.Job) (string, error) {
	body, err := json.Marshal(job)
	if err != nil {
		return "", commonerrors.NewJobDispatchError(err)
	}

	messageID, err := d.queue.SendMessage(ctx, string(body))
	if err != nil {
		d.logger.Error("job enqueue failed", map[string]interface{}{
			"error":   err.Error(),
			"cuisine": job.Cuisine,
		})
		return "", commonerrors.NewJobDispatchError(err)
	}

	metrics.JobsDispatched.Inc()
	d.logger.Info("job enqueued", map[string]interface{}{
		"messageId": messageID,
		"cuisine":   job.Cuisine,
		"location":  job.Location,
	})
	return messageID, nil
}

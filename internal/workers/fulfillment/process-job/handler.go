// internal/workers/fulfillment/process-job/handler.go
package processjob

import (
	"context"
	"encoding/json"
	"time"

	commonaws "dining-concierge/internal/common/aws"
	commonerrors "dining-concierge/internal/common/errors"
	"dining-concierge/internal/common/logger"
	"dining-concierge/internal/common/metrics"
	"dining-concierge/internal/models"
)

const TaskType = "process-job"

// QueueService receives and acknowledges fulfillment jobs.
type QueueService interface {
	ReceiveOne(ctx context.Context) (*commonaws.QueueMessage, error)
	DeleteMessage(ctx context.Context, receiptHandle string) error
}

// SearchService queries the restaurant index for a cuisine term.
type SearchService interface {
	SearchCuisine(ctx context.Context, term string, limit int) ([]models.SearchHit, error)
}

// DetailsService resolves a search hit to the full stored record.
type DetailsService interface {
	GetRestaurant(ctx context.Context, businessID string) (*models.RestaurantRecord, error)
}

// MailService delivers the rendered notification.
type MailService interface {
	SendText(ctx context.Context, to, subject, body string) (string, error)
}

// Handler consumes one fulfillment job per invocation: receive, validate,
// search, join details, notify, acknowledge. The message is deleted only
// after the notification is sent, so any failure before that point leaves it
// on the queue for a later poll.
type Handler struct {
	config  *Config
	queue   QueueService
	search  SearchService
	details DetailsService
	mail    MailService
	dedup   DedupGuard
	logger  logger.Logger
}

func NewHandler(config *Config, queue QueueService, search SearchService, details DetailsService, mail MailService, dedup DedupGuard, log logger.Logger) *Handler {
	return &Handler{
		config:  config,
		queue:   queue,
		search:  search,
		details: details,
		mail:    mail,
		dedup:   dedup,
		logger:  log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

// RunOnce performs one poll of the queue. A nil error always carries a
// RunResult; an error means the run aborted without acknowledging the
// message, so the job retries.
func (h *Handler) RunOnce(ctx context.Context) (*RunResult, error) {
	start := time.Now()
	result, err := h.runOnce(ctx)

	outcome := OutcomeFailed
	if err == nil {
		outcome = result.Outcome
	}
	metrics.FulfillmentRuns.WithLabelValues(string(outcome)).Inc()
	metrics.FulfillmentDuration.Observe(time.Since(start).Seconds())

	return result, err
}

func (h *Handler) runOnce(ctx context.Context) (*RunResult, error) {
	msg, err := h.queue.ReceiveOne(ctx)
	if err != nil {
		return nil, commonerrors.NewQueueReceiveError(err)
	}
	if msg == nil {
		h.logger.Debug("queue empty", nil)
		return &RunResult{Outcome: OutcomeNoMessage}, nil
	}

	h.logger.Info("processing job", map[string]interface{}{
		"messageId": msg.MessageID,
	})

	if err := validateJobBody(msg.Body); err != nil {
		return h.discard(ctx, msg, err)
	}

	var job models.Job
	if err := json.Unmarshal([]byte(msg.Body), &job); err != nil {
		return h.discard(ctx, msg, err)
	}

	if h.dedup != nil {
		seen, err := h.dedup.Seen(ctx, jobKey(msg.Body))
		if err != nil {
			// best-effort guard: an unreachable store must not block fulfillment
			h.logger.Warn("dedup check failed, continuing", map[string]interface{}{
				"error": err.Error(),
			})
		} else if seen {
			h.logger.Info("duplicate job, draining", map[string]interface{}{
				"messageId": msg.MessageID,
			})
			if err := h.queue.DeleteMessage(ctx, msg.ReceiptHandle); err != nil {
				return nil, commonerrors.NewQueueDeleteError(err)
			}
			return &RunResult{Outcome: OutcomeDuplicate, MessageID: msg.MessageID}, nil
		}
	}

	hits, err := h.search.SearchCuisine(ctx, job.Cuisine, h.config.MaxResults)
	if err != nil {
		return nil, commonerrors.NewSearchQueryError(job.Cuisine, err)
	}

	results := make([]models.RestaurantDetails, 0, len(hits))
	for _, hit := range hits {
		record, err := h.details.GetRestaurant(ctx, hit.RestaurantID)
		if err != nil {
			return nil, commonerrors.NewRestaurantLookupError(hit.RestaurantID, err)
		}
		results = append(results, models.RestaurantDetails{
			Name:    record.Name,
			Address: assembleAddress(record.Location),
		})
	}

	messageID, err := h.mail.SendText(ctx, job.Email, renderSubject(job.Cuisine), renderBody(results))
	if err != nil {
		return nil, commonerrors.NewNotificationSendError(err)
	}
	metrics.NotificationsSent.Inc()
	h.logger.Info("notification sent", map[string]interface{}{
		"mailId":  messageID,
		"cuisine": job.Cuisine,
		"results": len(results),
	})

	// mark only after the send succeeded: a failed run must stay retryable
	if h.dedup != nil {
		if err := h.dedup.Mark(ctx, jobKey(msg.Body)); err != nil {
			h.logger.Warn("dedup mark failed, continuing", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	if err := h.queue.DeleteMessage(ctx, msg.ReceiptHandle); err != nil {
		return nil, commonerrors.NewQueueDeleteError(err)
	}

	return &RunResult{
		Outcome:   OutcomeProcessed,
		MessageID: msg.MessageID,
		Results:   results,
	}, nil
}

// discard drains a malformed message: it can never become well-formed, so
// retrying is pointless.
func (h *Handler) discard(ctx context.Context, msg *commonaws.QueueMessage, cause error) (*RunResult, error) {
	malformed := commonerrors.NewMalformedJobError(cause.Error())
	h.logger.Warn("malformed job, draining", map[string]interface{}{
		"messageId": msg.MessageID,
		"error":     malformed.Details,
	})

	if err := h.queue.DeleteMessage(ctx, msg.ReceiptHandle); err != nil {
		return nil, commonerrors.NewQueueDeleteError(err)
	}
	return &RunResult{Outcome: OutcomeDiscarded, MessageID: msg.MessageID}, nil
}

// internal/common/aws/sqs.go
package aws

import (
	"context"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// QueueMessage is one received queue message. Receiving does not remove it;
// DeleteMessage with the receipt handle is the acknowledgment.
type QueueMessage struct {
	MessageID     string
	Body          string
	ReceiptHandle string
}

// SQSQueue wraps the SQS client for a single queue URL. Delivery is
// at-least-once with no ordering guarantee.
type SQSQueue struct {
	client   *sqs.Client
	queueURL string
}

func NewSQSQueue(ctx context.Context, region, queueURL string) (*SQSQueue, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &SQSQueue{client: sqs.NewFromConfig(cfg), queueURL: queueURL}, nil
}

// SendMessage appends one message and returns its id.
func (q *SQSQueue) SendMessage(ctx context.Context, body string) (string, error) {
	out, err := q.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    awssdk.String(q.queueURL),
		MessageBody: awssdk.String(body),
	})
	if err != nil {
		return "", err
	}
	return awssdk.ToString(out.MessageId), nil
}

// ReceiveOne fetches at most one message. A nil message means the queue had
// nothing visible.
func (q *SQSQueue) ReceiveOne(ctx context.Context) (*QueueMessage, error) {
	out, err := q.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:            awssdk.String(q.queueURL),
		MaxNumberOfMessages: 1,
	})
	if err != nil {
		return nil, err
	}
	if len(out.Messages) == 0 {
		return nil, nil
	}

	msg := out.Messages[0]
	return &QueueMessage{
		MessageID:     awssdk.ToString(msg.MessageId),
		Body:          awssdk.ToString(msg.Body),
		ReceiptHandle: awssdk.ToString(msg.ReceiptHandle),
	}, nil
}

// DeleteMessage acknowledges a received message.
func (q *SQSQueue) DeleteMessage(ctx context.Context, receiptHandle string) error {
	_, err := q.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      awssdk.String(q.queueURL),
		ReceiptHandle: awssdk.String(receiptHandle),
	})
	return err
}

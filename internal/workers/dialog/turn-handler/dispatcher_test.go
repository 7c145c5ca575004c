// internal/workers/dialog/turn-handler/dispatcher_test.go
package turnhandler

import (
	"context"
	"errors"
	"testing"

	commonerrors "dining-concierge/internal/common/errors"
	"dining-concierge/internal/common/logger"
	"dining-concierge/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockQueue struct {
	bodies []string
	err    error
}

func (m *mockQueue) SendMessage(_ context.Context, body string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.bodies = append(m.bodies, body)
	return "msg-456", nil
}

func TestDispatcher_WireFormat(t *testing.T) {
	queue := &mockQueue{}
	d := NewDispatcher(queue, logger.NewTestLogger(t))

	messageID, err := d.Dispatch(context.Background(), models.Job{
		Location:       "Brooklyn",
		Cuisine:        "Italian",
		NumberOfPeople: "4",
		Time:           "18",
		Email:          "x@y.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "msg-456", messageID)

	require.Len(t, queue.bodies, 1)
	assert.JSONEq(t,
		`{"location":"Brooklyn","cuisine":"Italian","numberOfPeople":"4","time":"18","email":"x@y.com"}`,
		queue.bodies[0],
	)
}

func TestDispatcher_QueueError(t *testing.T) {
	queue := &mockQueue{err: errors.New("connection refused")}
	d := NewDispatcher(queue, logger.NewTestLogger(t))

	_, err := d.Dispatch(context.Background(), models.Job{Cuisine: "french", Email: "x@y.com"})
	require.Error(t, err)
	assert.Equal(t, commonerrors.ErrCodeJobDispatchFailed, commonerrors.CodeOf(err))
	assert.True(t, commonerrors.IsRetryable(err))
}

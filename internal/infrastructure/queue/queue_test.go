package queue_test

import (
	"context"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"

	"github.com/enfash/PrintSwift-sub000/internal/domain/value"
	"github.com/enfash/PrintSwift-sub000/internal/infrastructure/queue"
)

func TestQuoteCreatedTask(t *testing.T) {
	rq := require.New(t)
	id := value.NewQuoteID()

	task, err := queue.NewQuoteCreatedTask(id)
	rq.NoError(err)
	rq.Equal(queue.TypeQuoteCreated, task.Type())
	rq.JSONEq(`{"quoteId":"`+id.String()+`"}`, string(task.Payload()))

	parsed, err := queue.ParseQuoteCreated(task)
	rq.NoError(err)
	rq.Equal(id, parsed)
}

func TestParseQuoteCreatedMalformed(t *testing.T) {
	testCases := []struct {
		name    string
		payload string
	}{
		{name: "Not JSON", payload: "quote"},
		{name: "Empty id", payload: `{"quoteId":""}`},
		{name: "Bad id", payload: `{"quoteId":"not-an-xid"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			_, err := queue.ParseQuoteCreated(asynq.NewTask(queue.TypeQuoteCreated, []byte(tc.payload)))
			rq.Error(err)
		})
	}
}

func TestNop(t *testing.T) {
	require.NoError(t, queue.Nop{}.EnqueueQuoteCreated(context.Background(), value.NewQuoteID()))
}

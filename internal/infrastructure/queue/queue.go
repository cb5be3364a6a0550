package queue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
	jsoniter "github.com/json-iterator/go"

	"github.com/enfash/PrintSwift-sub000/internal/domain/value"
	"github.com/enfash/PrintSwift-sub000/pkg/contextx"
)

const (
	TypeQuoteCreated   = "quote:created"
	QueueNotifications = "notifications"

	notificationMaxRetry = 5
	notificationTimeout  = 30 * time.Second
)

//nolint:gochecknoglobals
var (
	json   = jsoniter.ConfigCompatibleWithStandardLibrary
	logger = contextx.LoggerFromContextOrDefault
)

type QuoteCreatedPayload struct {
	QuoteID string `json:"quoteId"`
}

func NewQuoteCreatedTask(id value.QuoteID) (*asynq.Task, error) {
	payload, err := json.Marshal(QuoteCreatedPayload{QuoteID: id.String()})
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return asynq.NewTask(TypeQuoteCreated, payload), nil
}

// ParseQuoteCreated читает id сметы из задачи. Ошибка означает битый payload,
// повторять такую задачу бессмысленно.
func ParseQuoteCreated(task *asynq.Task) (value.QuoteID, error) {
	var payload QuoteCreatedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return value.QuoteID{}, fmt.Errorf("json.Unmarshal: %w", err)
	}

	id, err := value.ParseQuoteID(payload.QuoteID)
	if err != nil {
		return value.QuoteID{}, fmt.Errorf("value.ParseQuoteID: %w", err)
	}

	return id, nil
}

type Enqueuer struct {
	client *asynq.Client
}

func NewEnqueuer(client *asynq.Client) *Enqueuer {
	return &Enqueuer{client: client}
}

func (e *Enqueuer) EnqueueQuoteCreated(ctx context.Context, id value.QuoteID) error {
	task, err := NewQuoteCreatedTask(id)
	if err != nil {
		return err
	}

	info, err := e.client.EnqueueContext(ctx, task,
		asynq.Queue(QueueNotifications),
		asynq.MaxRetry(notificationMaxRetry),
		asynq.Timeout(notificationTimeout),
	)
	if err != nil {
		return fmt.Errorf("client.EnqueueContext: %w", err)
	}

	logger(ctx).Debug("task enqueued",
		slog.String("task-id", info.ID),
		slog.String("type", TypeQuoteCreated),
		slog.String("quote-id", id.String()),
	)

	return nil
}

// Nop используется, когда уведомления выключены.
type Nop struct{}

func (Nop) EnqueueQuoteCreated(context.Context, value.QuoteID) error {
	return nil
}

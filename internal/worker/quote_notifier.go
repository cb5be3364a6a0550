package worker

import (
	"context"
	"fmt"
	"log/slog"

	"git.appkode.ru/pub/go/failure"
	"github.com/hibiken/asynq"

	"github.com/enfash/PrintSwift-sub000/internal/domain/entity"
	"github.com/enfash/PrintSwift-sub000/internal/domain/value"
	"github.com/enfash/PrintSwift-sub000/internal/infrastructure/queue"
	"github.com/enfash/PrintSwift-sub000/pkg/logx"
)

type QuoteGetter interface {
	Get(ctx context.Context, id value.QuoteID) (entity.Quote, error)
}

type QuoteSender interface {
	SendQuote(ctx context.Context, quote entity.Quote) error
}

// QuoteNotifier обрабатывает задачи quote:created: загружает смету и
// отправляет её администраторам.
type QuoteNotifier struct {
	quotes QuoteGetter
	sender QuoteSender
}

func NewQuoteNotifier(quotes QuoteGetter, sender QuoteSender) *QuoteNotifier {
	return &QuoteNotifier{
		quotes: quotes,
		sender: sender,
	}
}

func (n *QuoteNotifier) Handle(ctx context.Context, task *asynq.Task) error {
	id, err := queue.ParseQuoteCreated(task)
	if err != nil {
		logger(ctx).Error("malformed quote task", logx.Error(err))
		return fmt.Errorf("queue.ParseQuoteCreated: %w: %w", err, asynq.SkipRetry)
	}

	quote, err := n.quotes.Get(ctx, id)
	if err != nil {
		if failure.IsNotFoundError(err) {
			logger(ctx).Warn("quote to notify about is gone", slog.String("quote-id", id.String()))
			return fmt.Errorf("quotes.Get: %w: %w", err, asynq.SkipRetry)
		}

		return fmt.Errorf("quotes.Get: %w", err)
	}

	if err := n.sender.SendQuote(ctx, quote); err != nil {
		return fmt.Errorf("sender.SendQuote: %w", err)
	}

	return nil
}

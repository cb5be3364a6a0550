package bot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"github.com/enfash/PrintSwift-sub000/internal/transport/bot/handler"
	"github.com/enfash/PrintSwift-sub000/pkg/contextx"
	"github.com/enfash/PrintSwift-sub000/pkg/logx"
)

const longPollingTimeout = 60

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Bot — админский Telegram-бот для работы со сметами.
type Bot struct {
	bot      *telego.Bot
	handler  *handler.Handler
	adminIDs []int64
}

func New(bot *telego.Bot, h *handler.Handler, adminIDs ...int64) *Bot {
	return &Bot{
		bot:      bot,
		handler:  h,
		adminIDs: adminIDs,
	}
}

// Run читает обновления long polling до отмены ctx.
func (b *Bot) Run(ctx context.Context) error {
	updates, err := b.bot.UpdatesViaLongPolling(ctx, &telego.GetUpdatesParams{
		Timeout: longPollingTimeout,
	})
	if err != nil {
		return fmt.Errorf("bot.UpdatesViaLongPolling: %w", err)
	}

	botHandler, err := th.NewBotHandler(b.bot, updates)
	if err != nil {
		return fmt.Errorf("th.NewBotHandler: %w", err)
	}

	b.handler.RegisterRoutes(botHandler, logger(ctx), b.adminIDs...)

	go func() {
		<-ctx.Done()

		if err := botHandler.Stop(); err != nil {
			logger(ctx).Error("botHandler.Stop", logx.Error(err))
		}
	}()

	logger(ctx).Info("admin bot started", slog.Int("admins", len(b.adminIDs)))

	if err := botHandler.Start(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("botHandler.Start: %w", err)
	}

	logger(ctx).Info("admin bot stopped")

	return nil
}

// Logger адаптирует slog под интерфейс логгера telego.
type Logger struct {
	Log *slog.Logger
}

func (l Logger) Debugf(format string, args ...any) {
	l.Log.Debug(fmt.Sprintf(format, args...))
}

func (l Logger) Errorf(format string, args ...any) {
	l.Log.Error(fmt.Sprintf(format, args...))
}

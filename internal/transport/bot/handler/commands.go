package handler

import (
	"fmt"
	"log/slog"

	"git.appkode.ru/pub/go/failure"
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"github.com/enfash/PrintSwift-sub000/internal/domain/entity"
	"github.com/enfash/PrintSwift-sub000/internal/domain/value"
	"github.com/enfash/PrintSwift-sub000/internal/infrastructure/notifier"
	"github.com/enfash/PrintSwift-sub000/internal/transport/bot/view"
	"github.com/enfash/PrintSwift-sub000/pkg/logx"
)

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.StartMessage)
}

func (h *Handler) OnQuotes(ctx *th.Context, msg telego.Message) error {
	quotes, err := h.quotes.List(ctx, latestQuotesLimit, 0)
	if err != nil {
		logger(ctx).Error("quotes.List", logx.Error(err))
		return h.sendHTML(ctx, msg.Chat.ID, view.QuotesError)
	}

	return h.sendHTML(ctx, msg.Chat.ID, view.QuoteList(quotes))
}

// OnQuote показывает смету с кнопками смены статуса.
// Использование: /quote d5hbq2o6n88g00a3r1s0
func (h *Handler) OnQuote(ctx *th.Context, msg telego.Message) error {
	id, err := parseQuoteArg(msg.Text)
	if err != nil {
		return h.sendHTML(ctx, msg.Chat.ID, usageOrInvalid(err, view.QuoteUsage))
	}

	quote, err := h.quotes.Get(ctx, id)
	if err != nil {
		return h.sendError(ctx, msg.Chat.ID, id, err)
	}

	params := tu.Message(tu.ID(msg.Chat.ID), notifier.FormatQuote(quote)).
		WithParseMode(telego.ModeHTML)

	if keyboard := statusKeyboard(quote); keyboard != nil {
		params = params.WithReplyMarkup(keyboard)
	}

	_, err = ctx.Bot().SendMessage(ctx, params)

	return err
}

// OnPrice считает цену товара из каталога без опций.
// Использование: /price 3f1c... 250
func (h *Handler) OnPrice(ctx *th.Context, msg telego.Message) error {
	productID, quantity, err := parsePriceArgs(msg.Text)
	if err != nil {
		return h.sendHTML(ctx, msg.Chat.ID, usageOrInvalid(err, view.PriceUsage))
	}

	product, err := h.products.Get(ctx, productID)
	if err != nil {
		return h.sendHTML(ctx, msg.Chat.ID, "❌ "+describe(err))
	}

	resolution, err := h.quotes.PriceProduct(ctx, productID, quantity, nil)
	if err != nil {
		return h.sendHTML(ctx, msg.Chat.ID, "❌ "+describe(err))
	}

	check, err := h.quotes.CheckQuantity(ctx, productID, quantity)
	if err != nil {
		return h.sendHTML(ctx, msg.Chat.ID, "❌ "+describe(err))
	}

	return h.sendHTML(ctx, msg.Chat.ID, view.Price(product.Name, resolution, check))
}

func (h *Handler) OnAccept(ctx *th.Context, msg telego.Message) error {
	return h.changeStatus(ctx, msg, value.QuoteStatusAccepted, "accept")
}

func (h *Handler) OnDecline(ctx *th.Context, msg telego.Message) error {
	return h.changeStatus(ctx, msg, value.QuoteStatusDeclined, "decline")
}

func (h *Handler) changeStatus(ctx *th.Context, msg telego.Message, status value.QuoteStatus, command string) error {
	id, err := parseQuoteArg(msg.Text)
	if err != nil {
		return h.sendHTML(ctx, msg.Chat.ID, usageOrInvalid(err, fmt.Sprintf(view.StatusUsage, command)))
	}

	quote, err := h.quotes.UpdateStatus(ctx, id, status)
	if err != nil {
		return h.sendError(ctx, msg.Chat.ID, id, err)
	}

	logger(ctx).Info("quote status changed by admin",
		slog.String("quote-id", id.String()),
		slog.String("status", status.String()),
	)

	return h.sendHTML(ctx, msg.Chat.ID, fmt.Sprintf(view.StatusUpdated, quote.Number, quote.Status))
}

func (h *Handler) sendError(ctx *th.Context, chatID int64, id value.QuoteID, err error) error {
	switch {
	case failure.IsNotFoundError(err):
		return h.sendHTML(ctx, chatID, fmt.Sprintf(view.QuoteMissing, id))
	case failure.IsConflictError(err), failure.IsUnprocessableEntityError(err):
		return h.sendHTML(ctx, chatID, fmt.Sprintf(view.StatusNotAllowed, describe(err)))
	default:
		logger(ctx).Error("quote command failed", slog.String("quote-id", id.String()), logx.Error(err))
		return h.sendHTML(ctx, chatID, view.QuotesError)
	}
}

func statusKeyboard(quote entity.Quote) *telego.InlineKeyboardMarkup {
	var buttons []telego.InlineKeyboardButton

	for _, next := range []value.QuoteStatus{value.QuoteStatusSent, value.QuoteStatusAccepted, value.QuoteStatusDeclined} {
		if !quote.Status.CanTransitionTo(next) {
			continue
		}

		buttons = append(buttons, tu.InlineKeyboardButton(statusLabel(next)).
			WithCallbackData(statusCallbackData(quote.ID, next)))
	}

	if len(buttons) == 0 {
		return nil
	}

	return tu.InlineKeyboard(tu.InlineKeyboardRow(buttons...))
}

func statusLabel(status value.QuoteStatus) string {
	switch status {
	case value.QuoteStatusSent:
		return "📤 Отправлена"
	case value.QuoteStatusAccepted:
		return "✅ Принять"
	case value.QuoteStatusDeclined:
		return "❌ Отклонить"
	default:
		return status.String()
	}
}

func usageOrInvalid(err error, usage string) string {
	if err == errUsage { //nolint:errorlint // sentinel
		return usage
	}

	return view.InvalidID
}

func describe(err error) string {
	if description := failure.Description(err); description != "" {
		return description
	}

	return "внутренняя ошибка"
}

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, tu.Message(tu.ID(chatID), text).WithParseMode(telego.ModeHTML))
	return err
}

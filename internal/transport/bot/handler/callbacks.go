package handler

import (
	"fmt"
	"log/slog"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"github.com/enfash/PrintSwift-sub000/internal/infrastructure/notifier"
	"github.com/enfash/PrintSwift-sub000/internal/transport/bot/view"
	"github.com/enfash/PrintSwift-sub000/pkg/logx"
)

// OnStatusCallback меняет статус сметы по кнопке под сообщением
// и перерисовывает сообщение. Формат: "quote_status:<id>:<status>".
func (h *Handler) OnStatusCallback(ctx *th.Context, query telego.CallbackQuery) error {
	id, status, err := parseStatusCallback(query.Data)
	if err != nil {
		logger(ctx).Warn("bad callback data", slog.String("data", query.Data), logx.Error(err))
		return ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID))
	}

	quote, err := h.quotes.UpdateStatus(ctx, id, status)
	if err != nil {
		return ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID).
			WithText(fmt.Sprintf("%s: %s", view.CallbackNotAllowed, describe(err))).WithShowAlert())
	}

	if query.Message != nil {
		params := &telego.EditMessageTextParams{
			ChatID:    tu.ID(query.Message.GetChat().ID),
			MessageID: query.Message.GetMessageID(),
			Text:      notifier.FormatQuote(quote),
			ParseMode: telego.ModeHTML,
		}

		if keyboard := statusKeyboard(quote); keyboard != nil {
			params.ReplyMarkup = keyboard
		}

		// сообщение могло быть удалено, статус уже сменён
		if _, err := ctx.Bot().EditMessageText(ctx, params); err != nil {
			logger(ctx).Warn("failed to edit quote message", logx.Error(err))
		}
	}

	return ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID).
		WithText(fmt.Sprintf(view.StatusUpdated, quote.Number, quote.Status)))
}

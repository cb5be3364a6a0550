package handler

import (
	"log/slog"

	th "github.com/mymmrac/telego/telegohandler"

	"github.com/enfash/PrintSwift-sub000/internal/transport/bot/middleware"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler, log *slog.Logger, adminIDs ...int64) {
	adminGroup := bh.Group(th.AnyMessage())
	adminGroup.Use(middleware.AdminOnly(log, adminIDs...))

	adminGroup.HandleMessage(h.OnStart, th.CommandEqual("start"))
	adminGroup.HandleMessage(h.OnQuotes, th.CommandEqual("quotes"))
	adminGroup.HandleMessage(h.OnQuote, th.CommandEqual("quote"))
	adminGroup.HandleMessage(h.OnPrice, th.CommandEqual("price"))
	adminGroup.HandleMessage(h.OnAccept, th.CommandEqual("accept"))
	adminGroup.HandleMessage(h.OnDecline, th.CommandEqual("decline"))

	cbGroup := bh.Group(th.AnyCallbackQuery())
	cbGroup.Use(middleware.AdminOnly(log, adminIDs...))

	cbGroup.HandleCallbackQuery(h.OnStatusCallback, th.CallbackDataPrefix(statusCallbackPrefix))
}

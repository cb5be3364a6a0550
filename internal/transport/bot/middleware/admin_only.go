package middleware

import (
	"log/slog"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	"github.com/samber/lo"

	"github.com/enfash/PrintSwift-sub000/pkg/contextx"
	"github.com/enfash/PrintSwift-sub000/pkg/logx"
)

// AdminOnly пропускает дальше только обновления от администраторов.
// Контекст обработчика telego не наследует контекст приложения,
// поэтому логгер и id пользователя кладутся в него здесь.
func AdminOnly(log *slog.Logger, adminIDs ...int64) th.Handler {
	return func(ctx *th.Context, update telego.Update) error {
		var userID int64

		switch {
		case update.Message != nil && update.Message.From != nil:
			userID = update.Message.From.ID
		case update.CallbackQuery != nil:
			userID = update.CallbackQuery.From.ID
		default:
			return nil
		}

		if !lo.Contains(adminIDs, userID) {
			log.Debug("update from non-admin ignored", slog.Int64(logx.FieldUserID, userID))
			return nil
		}

		base := contextx.WithUserID(ctx.Context(), contextx.UserID(userID))
		base = contextx.WithLogger(base, log.With(
			slog.Int64(logx.FieldUserID, userID),
			slog.Int("update-id", update.UpdateID),
		))

		return ctx.WithContext(base).Next(update)
	}
}

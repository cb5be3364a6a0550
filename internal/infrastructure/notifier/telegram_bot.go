package notifier

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"github.com/enfash/PrintSwift-sub000/internal/domain/entity"
	"github.com/enfash/PrintSwift-sub000/internal/domain/value"
)

// TelegramBot шлёт уведомления о сметах в чат администраторов.
type TelegramBot struct {
	bot    *telego.Bot
	chatID int64
}

func NewTelegramBot(bot *telego.Bot, chatID int64) *TelegramBot {
	return &TelegramBot{
		bot:    bot,
		chatID: chatID,
	}
}

func (b *TelegramBot) SendQuote(ctx context.Context, quote entity.Quote) error {
	msg := tu.Message(
		tu.ID(b.chatID),
		FormatQuote(quote),
	).WithParseMode(telego.ModeHTML)

	if _, err := b.bot.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("bot.SendMessage: %w", err)
	}

	logger(ctx).Info("quote notification sent",
		slog.String("quote-id", quote.ID.String()),
		slog.Int64("chat-id", b.chatID),
	)

	return nil
}

// SendText отправляет простое текстовое сообщение.
func (b *TelegramBot) SendText(ctx context.Context, text string) error {
	msg := tu.Message(tu.ID(b.chatID), text)

	if _, err := b.bot.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("bot.SendMessage: %w", err)
	}

	return nil
}

// FormatQuote рендерит смету в HTML-разметке Telegram.
func FormatQuote(quote entity.Quote) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "🧾 <b>Quote %s</b> (%s)\n", html.EscapeString(quote.Number), quote.Status)
	fmt.Fprintf(&sb, "👤 %s", html.EscapeString(quote.Customer.Name))

	if contact := customerContact(quote.Customer); contact != "" {
		fmt.Fprintf(&sb, " · %s", html.EscapeString(contact))
	}

	sb.WriteString("\n\n")

	for i, line := range quote.Lines {
		fmt.Fprintf(&sb, "%d. %s × %d: %s\n",
			i+1, html.EscapeString(line.ProductName), line.Quantity, line.LinePrice)

		for _, selection := range line.Selections {
			fmt.Fprintf(&sb, "    %s: %s\n", html.EscapeString(selection.Label), html.EscapeString(selection.Value))
		}
	}

	summary := quote.Summary

	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Subtotal: %s\n", value.FormatMoney(summary.Subtotal))

	if summary.Discount > 0 {
		fmt.Fprintf(&sb, "Discount: -%s\n", value.FormatMoney(summary.Discount))
	}

	if summary.DeliveryFee > 0 {
		fmt.Fprintf(&sb, "Delivery: %s\n", value.FormatMoney(summary.DeliveryFee))
	}

	if summary.TaxAmount > 0 {
		fmt.Fprintf(&sb, "Tax (%v%%): %s\n", quote.Adjustments.TaxRatePercent, value.FormatMoney(summary.TaxAmount))
	}

	fmt.Fprintf(&sb, "<b>Total: %s</b>\n", value.FormatMoney(summary.Total))

	if summary.DepositAmount > 0 {
		fmt.Fprintf(&sb, "Deposit: %s, balance %s\n",
			value.FormatMoney(summary.DepositAmount), value.FormatMoney(summary.RemainingBalance))
	}

	if summary.Partial() {
		fmt.Fprintf(&sb, "⚠️ %d of %d lines have no price\n",
			summary.UnpricedLines, summary.UnpricedLines+summary.PricedLines)
	}

	if quote.Notes != "" {
		fmt.Fprintf(&sb, "\n📝 %s\n", html.EscapeString(quote.Notes))
	}

	return sb.String()
}

func customerContact(c entity.Customer) string {
	switch {
	case c.Email != "" && c.Phone != "":
		return c.Email + ", " + c.Phone
	case c.Email != "":
		return c.Email
	default:
		return c.Phone
	}
}

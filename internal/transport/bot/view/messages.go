package view

const (
	StartMessage = `👋 <b>PrintSwift admin</b>

/quotes — последние сметы
/quote <code>ID</code> — смета целиком
/price <code>PRODUCT_ID</code> <code>QTY</code> — цена товара
/accept <code>ID</code> — принять смету
/decline <code>ID</code> — отклонить смету`

	QuoteUsage   = "❌ Использование: /quote <code>ID</code>"
	PriceUsage   = "❌ Использование: /price <code>PRODUCT_ID</code> <code>QTY</code>"
	StatusUsage  = "❌ Использование: /%s <code>ID</code>"
	InvalidID    = "❌ Неверный формат ID"
	QuotesEmpty  = "📭 Смет пока нет"
	QuotesError  = "❌ Ошибка получения смет"
	QuoteMissing = "⚠️ Смета <code>%s</code> не найдена"

	QuotesHeader       = "🧾 <b>Последние сметы</b>\n\n"
	QuoteItemTemplate  = "%s · %s · %s · <code>%s</code>\n"
	PriceTemplate      = "💰 <b>%s</b> × %d: %s\n"
	PriceStepTemplate  = "⚠️ Количество не кратно шагу: ближайшие %d или %d\n"
	StatusUpdated      = "✅ Смета %s: %s"
	StatusNotAllowed   = "⚠️ %s"
	CallbackNotAllowed = "Переход недоступен"
)

package quote

import (
	"github.com/shopspring/decimal"

	"github.com/enfash/PrintSwift-sub000/internal/domain"
	"github.com/enfash/PrintSwift-sub000/internal/domain/entity"
	"github.com/enfash/PrintSwift-sub000/internal/domain/value"
	"github.com/enfash/PrintSwift-sub000/pkg/errcodes"
)

// Aggregate сводит позиции и корректировки в итоги сметы.
//
// Позиции без цены дают 0 и учитываются в UnpricedLines: частичная смета —
// нормальное состояние, пока клиент настраивает товар. Некорректные
// корректировки отклоняют расчёт целиком. Арифметика точная (decimal),
// округление до копеек только на выходе.
func Aggregate(lines []entity.PricedLine, adjustments entity.QuoteAdjustments) (entity.QuoteSummary, error) {
	if err := ValidateAdjustments(adjustments); err != nil {
		return entity.QuoteSummary{}, err
	}

	var summary entity.QuoteSummary

	subtotal := decimal.Zero

	for i, line := range lines {
		if line.Quantity < 1 {
			return entity.QuoteSummary{}, domain.NewInvalidInputError(
				errcodes.InvalidLineItem, "line #%d: quantity must be positive, got %d", i, line.Quantity,
			)
		}

		unitPrice, ok := line.UnitPrice.Amount()
		if !ok {
			summary.UnpricedLines++
			continue
		}

		if !value.IsFinite(unitPrice) || unitPrice < 0 {
			return entity.QuoteSummary{}, domain.NewInvalidInputError(
				errcodes.InvalidLineItem, "line #%d: unit price must be a finite non-negative number", i,
			)
		}

		subtotal = subtotal.Add(decimal.NewFromInt(int64(line.Quantity)).Mul(decimal.NewFromFloat(unitPrice)))
		summary.PricedLines++
	}

	// скидка отдаётся как пришла, отсечение по нулю только в discountedSubtotal
	discount := decimal.NewFromFloat(adjustments.Discount)
	discountedSubtotal := decimal.Max(decimal.Zero, subtotal.Sub(discount))
	taxAmount := discountedSubtotal.Mul(percent(adjustments.TaxRatePercent))
	deliveryFee := decimal.NewFromFloat(adjustments.DeliveryFee)
	total := discountedSubtotal.Add(taxAmount).Add(deliveryFee)

	roundedTotal := value.RoundDecimal(total)
	depositAmount := value.RoundDecimal(total.Mul(percent(adjustments.DepositPercent)))

	summary.Subtotal = money(subtotal)
	summary.Discount = money(discount)
	summary.DiscountedSubtotal = money(discountedSubtotal)
	summary.DeliveryFee = money(deliveryFee)
	summary.TaxAmount = money(taxAmount)
	summary.Total = money(roundedTotal)
	summary.DepositAmount = money(depositAmount)
	summary.RemainingBalance = money(roundedTotal.Sub(depositAmount))

	return summary, nil
}

// ValidateAdjustments отклоняет отрицательные суммы и проценты вне диапазона.
// Значения не подрезаются.
func ValidateAdjustments(adjustments entity.QuoteAdjustments) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"discount", adjustments.Discount},
		{"delivery fee", adjustments.DeliveryFee},
		{"tax rate percent", adjustments.TaxRatePercent},
		{"deposit percent", adjustments.DepositPercent},
	}

	for _, field := range fields {
		if !value.IsFinite(field.value) || field.value < 0 {
			return domain.NewInvalidInputError(
				errcodes.InvalidAdjustment, "%s must be a finite non-negative number, got %v", field.name, field.value,
			)
		}
	}

	if adjustments.DepositPercent > 100 {
		return domain.NewInvalidInputError(
			errcodes.InvalidAdjustment, "deposit percent must be within [0, 100], got %v", adjustments.DepositPercent,
		)
	}

	return nil
}

func percent(p float64) decimal.Decimal {
	return decimal.NewFromFloat(p).Shift(-2)
}

func money(d decimal.Decimal) float64 {
	return value.RoundDecimal(d).InexactFloat64()
}

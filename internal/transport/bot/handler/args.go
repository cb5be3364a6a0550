package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tu "github.com/mymmrac/telego/telegoutil"

	"github.com/enfash/PrintSwift-sub000/internal/domain/value"
)

const statusCallbackPrefix = "quote_status:"

var errUsage = errors.New("usage")

func parseQuoteArg(text string) (value.QuoteID, error) {
	_, _, args := tu.ParseCommand(text)
	if len(args) != 1 {
		return value.QuoteID{}, errUsage
	}

	id, err := value.ParseQuoteID(args[0])
	if err != nil {
		return value.QuoteID{}, fmt.Errorf("value.ParseQuoteID: %w", err)
	}

	return id, nil
}

func parsePriceArgs(text string) (value.ProductID, int, error) {
	_, _, args := tu.ParseCommand(text)
	if len(args) != 2 { //nolint:mnd // productId qty
		return value.ProductID{}, 0, errUsage
	}

	productID, err := value.ParseProductID(args[0])
	if err != nil {
		return value.ProductID{}, 0, fmt.Errorf("value.ParseProductID: %w", err)
	}

	quantity, err := strconv.Atoi(args[1])
	if err != nil {
		return value.ProductID{}, 0, fmt.Errorf("strconv.Atoi: %w", err)
	}

	return productID, quantity, nil
}

func statusCallbackData(id value.QuoteID, status value.QuoteStatus) string {
	return statusCallbackPrefix + id.String() + ":" + status.String()
}

func parseStatusCallback(data string) (value.QuoteID, value.QuoteStatus, error) {
	rawID, rawStatus, ok := strings.Cut(strings.TrimPrefix(data, statusCallbackPrefix), ":")
	if !ok || !strings.HasPrefix(data, statusCallbackPrefix) {
		return value.QuoteID{}, "", fmt.Errorf("malformed callback %q", data)
	}

	id, err := value.ParseQuoteID(rawID)
	if err != nil {
		return value.QuoteID{}, "", fmt.Errorf("value.ParseQuoteID: %w", err)
	}

	status, err := value.ParseQuoteStatus(rawStatus)
	if err != nil {
		return value.QuoteID{}, "", fmt.Errorf("value.ParseQuoteStatus: %w", err)
	}

	return id, status, nil
}

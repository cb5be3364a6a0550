package handler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/enfash/PrintSwift-sub000/internal/domain/entity"
	"github.com/enfash/PrintSwift-sub000/internal/domain/value"
)

func TestParseQuoteArg(t *testing.T) {
	id := value.NewQuoteID()

	testCases := []struct {
		name    string
		text    string
		usage   bool
		invalid bool
	}{
		{name: "Valid", text: "/quote " + id.String()},
		{name: "With bot username", text: "/quote@printswift_bot " + id.String()},
		{name: "Missing id", text: "/quote", usage: true},
		{name: "Extra args", text: "/quote " + id.String() + " now", usage: true},
		{name: "Malformed id", text: "/quote 12345", invalid: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			parsed, err := parseQuoteArg(tc.text)

			switch {
			case tc.usage:
				rq.ErrorIs(err, errUsage)
			case tc.invalid:
				rq.Error(err)
				rq.NotErrorIs(err, errUsage)
			default:
				rq.NoError(err)
				rq.Equal(id, parsed)
			}
		})
	}
}

func TestParsePriceArgs(t *testing.T) {
	rq := require.New(t)
	productID := value.NewProductID()

	parsed, quantity, err := parsePriceArgs("/price " + productID.String() + " 250")
	rq.NoError(err)
	rq.Equal(productID, parsed)
	rq.Equal(250, quantity)

	_, _, err = parsePriceArgs("/price " + productID.String())
	rq.ErrorIs(err, errUsage)

	_, _, err = parsePriceArgs("/price " + productID.String() + " many")
	rq.Error(err)
	rq.NotErrorIs(err, errUsage)

	_, _, err = parsePriceArgs("/price flyers 250")
	rq.Error(err)
}

func TestStatusCallback(t *testing.T) {
	rq := require.New(t)
	id := value.NewQuoteID()

	data := statusCallbackData(id, value.QuoteStatusAccepted)
	rq.LessOrEqual(len(data), 64)

	parsedID, status, err := parseStatusCallback(data)
	rq.NoError(err)
	rq.Equal(id, parsedID)
	rq.Equal(value.QuoteStatusAccepted, status)

	for _, bad := range []string{
		"quote_status:" + id.String(),
		"quote_status:" + id.String() + ":paid",
		"catalog_page:2",
		"quote_status:nope:sent",
	} {
		_, _, err := parseStatusCallback(bad)
		rq.Error(err, bad)
	}
}

func TestStatusKeyboard(t *testing.T) {
	testCases := []struct {
		status  value.QuoteStatus
		buttons int
	}{
		{status: value.QuoteStatusDraft, buttons: 2},
		{status: value.QuoteStatusSent, buttons: 2},
		{status: value.QuoteStatusAccepted},
		{status: value.QuoteStatusDeclined},
	}

	for _, tc := range testCases {
		t.Run(tc.status.String(), func(t *testing.T) {
			rq := require.New(t)

			keyboard := statusKeyboard(entity.Quote{ID: value.NewQuoteID(), Status: tc.status})
			if tc.buttons == 0 {
				rq.Nil(keyboard)
				return
			}

			rq.Len(keyboard.InlineKeyboard, 1)
			rq.Len(keyboard.InlineKeyboard[0], tc.buttons)
		})
	}
}

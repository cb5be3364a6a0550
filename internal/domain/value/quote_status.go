package value

import "fmt"

type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusDeclined QuoteStatus = "declined"
)

//nolint:gochecknoglobals
var quoteTransitions = map[QuoteStatus][]QuoteStatus{
	QuoteStatusDraft:    {QuoteStatusSent, QuoteStatusDeclined},
	QuoteStatusSent:     {QuoteStatusAccepted, QuoteStatusDeclined},
	QuoteStatusAccepted: nil,
	QuoteStatusDeclined: nil,
}

func (s QuoteStatus) String() string {
	return string(s)
}

func ParseQuoteStatus(s string) (QuoteStatus, error) {
	status := QuoteStatus(s)
	if _, ok := quoteTransitions[status]; !ok {
		return "", fmt.Errorf("unknown quote status %q", s)
	}

	return status, nil
}

// CanTransitionTo сообщает, допустим ли переход статуса.
func (s QuoteStatus) CanTransitionTo(next QuoteStatus) bool {
	for _, allowed := range quoteTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

func (s QuoteStatus) Final() bool {
	return len(quoteTransitions[s]) == 0
}

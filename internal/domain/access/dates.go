package access

import (
	"time"

	"feedback-app/internal/domain/subscriptions"
)

// The legacy store spreads subscription dates over redundant columns. Each
// chain below is evaluated in order and the first resolvable value wins.
// Malformed upstream values never reach this package: the row scanner leaves
// them nil (or zero), which the chains treat as absent.

type dateField func(*subscriptions.Subscription) *time.Time

var subscriptionStartFields = []dateField{
	func(s *subscriptions.Subscription) *time.Time { return s.CurrentPeriodStart },
	func(s *subscriptions.Subscription) *time.Time { return s.StartDate },
	func(s *subscriptions.Subscription) *time.Time { return nonZero(s.CreatedAt) },
	func(s *subscriptions.Subscription) *time.Time { return s.CreatedDate },
}

var subscriptionEndFields = []dateField{
	func(s *subscriptions.Subscription) *time.Time { return s.CurrentPeriodEnd },
	func(s *subscriptions.Subscription) *time.Time { return s.EndDate },
}

func firstDate(s *subscriptions.Subscription, chain []dateField) *time.Time {
	for _, field := range chain {
		if v := field(s); v != nil && !v.IsZero() {
			utc := v.UTC()
			return &utc
		}
	}
	return nil
}

func nonZero(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

package subscriptions

import "time"

// recencyFields is the ordered precedence chain used to decide how "recent" a
// subscription row is when no active row exists. The first resolvable date wins
// as the row's sort key.
var recencyFields = []func(*Subscription) *time.Time{
	func(s *Subscription) *time.Time { return s.CurrentPeriodEnd },
	func(s *Subscription) *time.Time { return s.EndDate },
	func(s *Subscription) *time.Time { return s.CurrentPeriodStart },
	func(s *Subscription) *time.Time { return s.StartDate },
	func(s *Subscription) *time.Time { return nonZero(s.UpdatedAt) },
	func(s *Subscription) *time.Time { return nonZero(s.CreatedAt) },
	func(s *Subscription) *time.Time { return s.CreatedDate },
}

func nonZero(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// RecencyKey returns the first resolvable date in the fallback precedence
// chain, or nil when the row carries no usable date at all.
func RecencyKey(s *Subscription) *time.Time {
	for _, field := range recencyFields {
		if v := field(s); v != nil && !v.IsZero() {
			return v
		}
	}
	return nil
}

// SelectGoverning picks the subscription row that governs a tenant's access:
// any row with status "active" is preferred; otherwise the most recent row by
// RecencyKey, descending. Rows without a resolvable date lose to rows with one.
// Returns nil for an empty slice.
func SelectGoverning(rows []Subscription) *Subscription {
	if len(rows) == 0 {
		return nil
	}

	var best *Subscription
	var bestKey *time.Time
	bestActive := false

	for i := range rows {
		row := &rows[i]
		active := row.IsStatusActive()
		key := RecencyKey(row)

		if best == nil {
			best, bestKey, bestActive = row, key, active
			continue
		}

		// Active rows always beat inactive ones.
		if active != bestActive {
			if active {
				best, bestKey, bestActive = row, key, active
			}
			continue
		}

		if later(key, bestKey) {
			best, bestKey = row, key
		}
	}

	return best
}

func later(a, b *time.Time) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return a.After(*b)
}

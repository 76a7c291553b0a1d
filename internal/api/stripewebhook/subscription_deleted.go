package stripewebhooks

import (
	"time"

	"feedback-app/database"
	"feedback-app/internal/domain/subscriptions"
	infrastripe "feedback-app/internal/infra/stripe"

	"github.com/stripe/stripe-go/v75"
)

func handleSubscriptionDeleted(sub *stripe.Subscription) error {
	if sub.ID == "" {
		return nil
	}

	status := infrastripe.NormalizeStripeStatus(string(sub.Status))
	periodEnd := time.Unix(sub.CurrentPeriodEnd, 0).UTC()

	var row subscriptions.Subscription
	if err := database.DB.Where("stripe_subscription_id = ?", sub.ID).First(&row).Error; err != nil {
		return nil
	}

	return database.DB.Model(&subscriptions.Subscription{}).
		Where("id = ?", row.ID).
		Updates(map[string]interface{}{
			"status":             status,
			"current_period_end": periodEnd,
			"end_date":           periodEnd,
		}).Error
}

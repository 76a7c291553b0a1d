package stripewebhooks

import (
	"fmt"
	"time"

	"feedback-app/database"
	"feedback-app/internal/domain/plans"
	"feedback-app/internal/domain/subscriptions"
	infrastripe "feedback-app/internal/infra/stripe"

	"github.com/stripe/stripe-go/v75"
)

func handleSubscriptionUpdated(sub *stripe.Subscription) error {
	if sub.ID == "" || sub.Items == nil || len(sub.Items.Data) == 0 || sub.Items.Data[0].Price == nil {
		return fmt.Errorf("subscription missing id/items/price")
	}

	activePriceID := sub.Items.Data[0].Price.ID
	periodStart := time.Unix(sub.CurrentPeriodStart, 0).UTC()
	periodEnd := time.Unix(sub.CurrentPeriodEnd, 0).UTC()
	status := infrastripe.NormalizeStripeStatus(string(sub.Status))

	var row subscriptions.Subscription
	if err := database.DB.Where("stripe_subscription_id = ?", sub.ID).First(&row).Error; err != nil {
		// acknowledge to avoid Stripe retries if the row never existed
		return nil
	}

	updates := map[string]interface{}{
		"status":               status,
		"current_period_start": periodStart,
		"current_period_end":   periodEnd,
	}

	// Plan may have changed (upgrade/downgrade through the portal).
	var plan plans.Plan
	if err := database.DB.Where("stripe_price_id = ?", activePriceID).First(&plan).Error; err == nil {
		updates["plan_id"] = plan.ID
		updates["billing_cycle"] = plan.BillingCycle
	}

	return database.DB.Model(&subscriptions.Subscription{}).
		Where("id = ?", row.ID).
		Updates(updates).Error
}

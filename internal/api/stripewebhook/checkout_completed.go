package stripewebhooks

import (
	"errors"
	"fmt"
	"time"

	"feedback-app/database"
	"feedback-app/internal/domain/plans"
	"feedback-app/internal/domain/subscriptions"
	"feedback-app/internal/domain/tenants"
	infrastripe "feedback-app/internal/infra/stripe"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
	"github.com/stripe/stripe-go/v75/subscription"
)

func handleCheckoutSessionCompleted(session *stripe.CheckoutSession) error {
	// Fetch full session with expansions
	fullSession, err := checkoutsession.Get(session.ID, &stripe.CheckoutSessionParams{
		Params: stripe.Params{
			Expand: []*string{
				stripe.String("subscription"),
				stripe.String("customer"),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to fetch expanded checkout session: %w", err)
	}

	if fullSession.Subscription == nil || fullSession.Subscription.ID == "" {
		return errors.New("checkout session missing subscription")
	}
	subscriptionID := fullSession.Subscription.ID

	subData, err := subscription.Get(subscriptionID, nil)
	if err != nil || subData == nil || subData.Items == nil || len(subData.Items.Data) == 0 || subData.Items.Data[0].Price == nil {
		return fmt.Errorf("failed to fetch subscription items: %w", err)
	}

	tenantID, err := tenantIDFromSubscriptionOrRef(subData, fullSession.ClientReferenceID)
	if err != nil {
		return err
	}

	var tenant tenants.Tenant
	if err := database.DB.Where("id = ?", tenantID).First(&tenant).Error; err != nil {
		return fmt.Errorf("tenant not found: %w", err)
	}

	// Map Stripe price -> Plan
	priceID := subData.Items.Data[0].Price.ID
	var plan plans.Plan
	if err := database.DB.Where("stripe_price_id = ?", priceID).First(&plan).Error; err != nil {
		return fmt.Errorf("plan not found for stripe price_id=%s: %w", priceID, err)
	}

	now := time.Now().UTC()
	periodStart := time.Unix(subData.CurrentPeriodStart, 0).UTC()
	periodEnd := time.Unix(subData.CurrentPeriodEnd, 0).UTC()
	status := infrastripe.NormalizeStripeStatus(string(subData.Status))

	row := subscriptions.Subscription{
		TenantID:             tenant.ID,
		PlanID:               &plan.ID,
		Status:               status,
		BillingCycle:         &plan.BillingCycle,
		CurrentPeriodStart:   &periodStart,
		CurrentPeriodEnd:     &periodEnd,
		StartDate:            &now,
		StripeSubscriptionID: &subscriptionID,
	}
	if err := database.DB.Create(&row).Error; err != nil {
		return fmt.Errorf("failed to create subscription row: %w", err)
	}

	// Checkout ends the trial: the paid plan takes over.
	updates := map[string]interface{}{
		"plan_type": plan.Name,
	}
	if fullSession.Customer != nil && fullSession.Customer.ID != "" {
		updates["stripe_customer_id"] = fullSession.Customer.ID
	}
	if err := database.DB.Model(&tenants.Tenant{}).
		Where("id = ?", tenant.ID).
		Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update tenant after checkout: %w", err)
	}

	return nil
}

func tenantIDFromSubscriptionOrRef(sub *stripe.Subscription, clientRef string) (uuid.UUID, error) {
	tenantIDStr := ""
	if sub.Metadata != nil {
		tenantIDStr = sub.Metadata["tenant_id"]
	}
	if tenantIDStr == "" {
		tenantIDStr = clientRef
	}
	if tenantIDStr == "" {
		return uuid.Nil, errors.New("missing tenant_id (metadata.tenant_id or client_reference_id)")
	}

	tenantID, err := uuid.Parse(tenantIDStr)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid tenant_id %q: %w", tenantIDStr, err)
	}
	return tenantID, nil
}

package access

import (
	"errors"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"feedback-app/database"
	"feedback-app/internal/domain/access"
	"feedback-app/internal/domain/plans"
	"feedback-app/internal/domain/subscriptions"
	"feedback-app/internal/domain/tenants"
)

var resolver = access.NewResolver(
	lookupBillingCycleByPlanName,
	zerolog.New(os.Stdout).With().Timestamp().Str("component", "access").Logger(),
)

// lookupBillingCycleByPlanName is the best-effort enrichment read: callers
// swallow its errors and leave the cycle empty.
func lookupBillingCycleByPlanName(planName string) (string, error) {
	var plan plans.Plan
	if err := database.DB.Select("billing_cycle").Where("name = ?", planName).First(&plan).Error; err != nil {
		return "", err
	}
	return plan.BillingCycle, nil
}

// LoadContext fetches the tenant and its governing subscription row and runs
// the resolver. A missing tenant yields the no_tenant blocked state. Errors on
// the subscription read degrade to "no subscription" rather than failing the
// request.
func LoadContext(tenantID uuid.UUID) access.Context {
	now := time.Now().UTC()

	var tenant tenants.Tenant
	if err := database.DB.Where("id = ?", tenantID).First(&tenant).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			resolver.Log.Error().Err(err).Str("tenant_id", tenantID.String()).Msg("tenant fetch failed")
		}
		return resolver.Resolve(now, nil, nil)
	}

	return resolver.Resolve(now, &tenant, loadGoverningSubscription(tenantID))
}

func loadGoverningSubscription(tenantID uuid.UUID) *subscriptions.Subscription {
	var rows []subscriptions.Subscription
	if err := database.DB.
		Preload("Plan").
		Where("tenant_id = ?", tenantID).
		Find(&rows).Error; err != nil {
		// Treat fetch failures as "no subscription"; never abort the request.
		resolver.Log.Warn().Err(err).Str("tenant_id", tenantID.String()).Msg("subscription fetch failed")
		return nil
	}
	return subscriptions.SelectGoverning(rows)
}

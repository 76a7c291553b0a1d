package access

import (
	"time"

	"github.com/rs/zerolog"

	"feedback-app/internal/domain/subscriptions"
	"feedback-app/internal/domain/tenants"
)

// Resolver turns a tenant row plus its governing subscription row into the
// access decision served to the HTTP layer. It holds no state beyond its
// dependencies: the optional plan-name -> billing-cycle lookup and a logger.
// Resolve never returns an error; missing rows and unusable dates all map to
// well-defined states.
type Resolver struct {
	Cycles CycleLookupFunc
	Log    zerolog.Logger
}

func NewResolver(cycles CycleLookupFunc, log zerolog.Logger) *Resolver {
	return &Resolver{Cycles: cycles, Log: log}
}

// Resolve recomputes the full access context from scratch. Nothing is cached;
// every authenticated request pays the read cost for consistency.
func (r *Resolver) Resolve(now time.Time, tenant *tenants.Tenant, row *subscriptions.Subscription) Context {
	sub := r.ComputeSubscriptionState(now, row)
	trial := ComputeTrialState(now, tenant, sub)

	return Context{
		Trial:        trial,
		Access:       ComputeAccessState(tenant, trial, sub),
		Subscription: sub,
	}
}

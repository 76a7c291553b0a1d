package plans

type Plan struct {
	ID            uint   `gorm:"primaryKey"`
	Name          string `gorm:"uniqueIndex:idx_plans_name"`
	PriceEUR      float64
	StripePriceID string `gorm:"column:stripe_price_id;not null;uniqueIndex:idx_plans_stripe_price_id"`
	BillingCycle  string `gorm:"column:billing_cycle"` // "monthly" | "quarterly" | "annual"
}

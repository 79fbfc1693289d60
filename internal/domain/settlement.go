package domain

import "github.com/shopspring/decimal"

// Settlement is the financial snapshot of one subscription. Every field
// is derived from the (Strategy, Subscription) pair it was computed from.
type Settlement struct {
	GrossPnl        decimal.Decimal
	Fee             decimal.Decimal
	NetPnl          decimal.Decimal
	GrossPnlPercent decimal.Decimal
}

// SubscriptionView joins a subscription with its strategy and settlement
// for the reporting surface.
type SubscriptionView struct {
	Subscription Subscription
	Strategy     Strategy
	Settlement   Settlement
}

type PlatformRevenue struct {
	Total    decimal.Decimal
	Included int
	Skipped  int
}

type SeriesSummary struct {
	TotalReturnPercent float64
	MeanStepReturn     float64
	StdevStepReturn    float64
	MaxDrawdownPercent float64
}

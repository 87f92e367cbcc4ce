package models

// PricingTier labels a class of weeks (e.g. high season) with a display color.
type PricingTier struct {
	ID    string `firestore:"id" json:"id"`
	Name  string `firestore:"name" json:"name"`
	Color []int  `firestore:"color" json:"color"`
}

// UnitPricing sets the weekly and daily price of one unit within one tier for
// a season.
type UnitPricing struct {
	Year        int     `firestore:"year" json:"year"`
	TierID      string  `firestore:"tierId" json:"tierId"`
	UnitID      string  `firestore:"unitId" json:"unitId"`
	WeeklyPrice float64 `firestore:"weeklyPrice" json:"weeklyPrice"`
	DailyPrice  float64 `firestore:"dailyPrice" json:"dailyPrice"`
}

// UnitPricingMap groups unit pricings by unit ID.
type UnitPricingMap map[string][]UnitPricing

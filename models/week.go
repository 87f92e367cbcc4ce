package models

// ReservableWeek is one bookable calendar week of a season, tagged with the
// pricing tier that applies to it.
type ReservableWeek struct {
	StartDate     string `firestore:"startDate" json:"startDate"`
	PricingTierID string `firestore:"pricingTierId" json:"pricingTierId"`
}

// SeasonConfig is the per-year week table plus the filename of the annual
// information document kept in blob storage. One document per year.
type SeasonConfig struct {
	Year                   int              `firestore:"year" json:"year"`
	Weeks                  []ReservableWeek `firestore:"weeks" json:"weeks"`
	AnnualDocumentFilename string           `firestore:"annualDocumentFilename,omitempty" json:"annualDocumentFilename,omitempty"`
}

package models

// BookableUnit is one reservable property unit (cabin, apartment, boathouse).
type BookableUnit struct {
	ID            string `firestore:"id" json:"id"`
	Name          string `firestore:"name" json:"name"`
	FloorPlanFile string `firestore:"floorPlanFile,omitempty" json:"floorPlanFile,omitempty"`
}

package models

// Booker is a household member eligible to hold reservations. It is distinct
// from the authentication identity; UserID maps the signed-in user to at most
// one booker.
type Booker struct {
	ID     string `firestore:"id" json:"id"`
	Name   string `firestore:"name" json:"name"`
	UserID string `firestore:"userId" json:"userId"`
}

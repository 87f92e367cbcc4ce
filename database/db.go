package database

import (
	"cloud.google.com/go/firestore"

	"lakehouse/utils"
)

// Client is the shared Firestore client. InitDB must run after
// utils.FirebaseInit.
var Client *firestore.Client

func InitDB() {
	Client = utils.FirestoreClient
	if Client == nil {
		utils.GetLogger().Sugar().Fatal("database: Firestore client not initialized; call utils.FirebaseInit first")
	}
}

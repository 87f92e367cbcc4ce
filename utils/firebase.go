// File: utils/firebase.go
package utils

import (
	"context"
	"log"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"lakehouse/config"
)

var (
	AuthClient      *auth.Client
	FirestoreClient *firestore.Client
	StorageBucket   *storage.BucketHandle
)

// FirebaseInit initializes the Firebase App and the Auth, Firestore and
// Storage clients backed by it.
func FirebaseInit() {
	ctx := context.Background()
	opt := option.WithCredentialsFile(config.AppConfig.FirebaseCredentialsKey)

	fbConfig := &firebase.Config{
		ProjectID:     config.AppConfig.FirebaseProjectID,
		StorageBucket: config.AppConfig.FirebaseStorageBucket,
	}
	app, err := firebase.NewApp(ctx, fbConfig, opt)
	if err != nil {
		log.Fatalf("firebase: error initializing app: %v", err)
	}

	AuthClient, err = app.Auth(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Auth client: %v", err)
	}

	FirestoreClient, err = app.Firestore(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Firestore client: %v", err)
	}

	storageClient, err := app.Storage(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Storage client: %v", err)
	}
	StorageBucket, err = storageClient.DefaultBucket()
	if err != nil {
		log.Fatalf("firebase: error getting default bucket: %v", err)
	}
}

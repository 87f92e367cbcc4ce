// File: database/repository/permissions/permissions.go
package permissionsRepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/go-redis/redis/v8"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"lakehouse/database"
	"lakehouse/models"
)

// ErrPermissionsMissing is returned when the singleton permissions document
// does not exist. Admin-gated operations must fail in that case.
var ErrPermissionsMissing = errors.New("permissions document not found")

const (
	permissionsDocID = "singleton"
	cacheKey         = "permissions"
	cacheTTL         = 30 * time.Second
)

// Repository fetches the singleton admin permissions document.
type Repository interface {
	Get(ctx context.Context) (models.Permissions, error)
}

type firestorePermissionsRepo struct {
	coll  *firestore.CollectionRef
	cache *redis.Client
}

// NewFirestorePermissionsRepo constructs a Repository over the "permissions"
// collection with a short-lived Redis cache in front of it. Pass a nil cache
// to read through on every call.
func NewFirestorePermissionsRepo(cache *redis.Client) Repository {
	return &firestorePermissionsRepo{
		coll:  database.Client.Collection("permissions"),
		cache: cache,
	}
}

func (r *firestorePermissionsRepo) Get(ctx context.Context) (models.Permissions, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if r.cache != nil {
		if cached, err := r.cache.Get(ctx, cacheKey).Result(); err == nil {
			var perms models.Permissions
			if err := json.Unmarshal([]byte(cached), &perms); err == nil {
				return perms, nil
			}
		}
	}

	snap, err := r.coll.Doc(permissionsDocID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return models.Permissions{}, ErrPermissionsMissing
		}
		return models.Permissions{}, err
	}
	var perms models.Permissions
	if err := snap.DataTo(&perms); err != nil {
		return models.Permissions{}, err
	}

	if r.cache != nil {
		if data, err := json.Marshal(perms); err == nil {
			r.cache.Set(ctx, cacheKey, data, cacheTTL)
		}
	}
	return perms, nil
}

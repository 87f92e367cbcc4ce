// File: services/admin/service.go
package admin

import (
	"context"

	"firebase.google.com/go/v4/auth"
	"go.uber.org/zap"

	permissionsRepo "lakehouse/database/repository/permissions"
	"lakehouse/utils"
)

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Auth        *auth.Client
	Permissions permissionsRepo.Repository
}

func (s *DefaultAdminService) IsAdmin(ctx context.Context, userID string) (bool, error) {
	perms, err := s.Permissions.Get(ctx)
	if err != nil {
		return false, err
	}
	return perms.IsAdminUser(userID), nil
}

func (s *DefaultAdminService) SetPassword(ctx context.Context, actorUserID, targetUserID, password string) error {
	perms, err := s.Permissions.Get(ctx)
	if err != nil {
		// Includes the missing-document case; password changes are
		// impossible until the permissions document exists.
		return err
	}
	if !perms.IsAdminUser(actorUserID) {
		return ErrNotAuthorized
	}

	params := (&auth.UserToUpdate{}).Password(password)
	if _, err := s.Auth.UpdateUser(ctx, targetUserID, params); err != nil {
		return err
	}

	utils.GetLogger().Info("Password updated by admin",
		zap.String("actor", actorUserID),
		zap.String("target", targetUserID))
	return nil
}

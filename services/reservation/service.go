// File: services/reservation/service.go
package reservation

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go.uber.org/zap"

	bookerRepo "lakehouse/database/repository/booker"
	permissionsRepo "lakehouse/database/repository/permissions"
	reservationRepo "lakehouse/database/repository/reservation"
	"lakehouse/models"
	"lakehouse/services/audit"
	"lakehouse/services/eligibility"
	"lakehouse/services/rounds"
	"lakehouse/utils"
)

// DefaultReservationService is the production implementation.
type DefaultReservationService struct {
	Repo        reservationRepo.Repository
	Bookers     bookerRepo.Repository
	Permissions permissionsRepo.Repository
	Rounds      rounds.Service
	Audit       audit.Writer
}

func (s *DefaultReservationService) ListForYear(ctx context.Context, year int) ([]models.Reservation, error) {
	return s.Repo.ListForYear(ctx, year)
}

func (s *DefaultReservationService) WatchYear(ctx context.Context, year int) (<-chan []models.Reservation, error) {
	return s.Repo.WatchYear(ctx, year)
}

func (s *DefaultReservationService) Create(ctx context.Context, actor Actor, today time.Time, res models.Reservation) (string, error) {
	res.ID = ""
	if err := res.Validate(); err != nil {
		return "", err
	}

	isAdmin, booker, err := s.resolveActor(ctx, actor)
	if err != nil {
		return "", err
	}
	if booker == nil && !isAdmin {
		return "", NotEligibleError{Reason: "No booker is linked to your account."}
	}
	if booker == nil {
		booker = &models.Booker{}
	}
	// Non-admins book on their own behalf only.
	if !isAdmin {
		res.BookerID = booker.ID
	}

	year := seasonYearOf(res.StartDate)
	timeline, err := s.Rounds.TimelineForYear(ctx, year, today)
	if err != nil {
		return "", err
	}
	count, err := s.Repo.CountForBookerInYear(ctx, booker.ID, year)
	if err != nil {
		return "", err
	}

	if !eligibility.CanAddReservation(*booker, isAdmin, timeline.Current, timeline.SubRoundBookerID, count) {
		return "", NotEligibleError{Reason: "Booking is not currently open for this booker."}
	}

	id, err := s.Repo.Create(ctx, res)
	if err != nil {
		return "", err
	}
	res.ID = id
	s.Audit.RecordChange(ctx, nil, &res, actor.UserID, actor.System)

	utils.GetLogger().Info("Reservation created",
		zap.String("id", id),
		zap.String("bookerId", res.BookerID),
		zap.String("unitId", res.UnitID))
	return id, nil
}

func (s *DefaultReservationService) Update(ctx context.Context, actor Actor, res models.Reservation) error {
	if err := res.Validate(); err != nil {
		return err
	}

	existing, err := s.Repo.GetByID(ctx, res.ID)
	if err != nil {
		return err
	}
	if err := s.gateEdit(ctx, actor, *existing); err != nil {
		return err
	}

	if err := s.Repo.Update(ctx, res); err != nil {
		return err
	}
	s.Audit.RecordChange(ctx, existing, &res, actor.UserID, actor.System)
	return nil
}

func (s *DefaultReservationService) Delete(ctx context.Context, actor Actor, id string) error {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.gateEdit(ctx, actor, *existing); err != nil {
		return err
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.Audit.RecordChange(ctx, existing, nil, actor.UserID, actor.System)
	return nil
}

// gateEdit applies the edit/delete gate: admins or the owning booker only.
// Round state is deliberately not consulted.
func (s *DefaultReservationService) gateEdit(ctx context.Context, actor Actor, existing models.Reservation) error {
	isAdmin, booker, err := s.resolveActor(ctx, actor)
	if err != nil {
		return err
	}
	if booker == nil {
		booker = &models.Booker{}
	}
	if !eligibility.CanEditReservation(existing, *booker, isAdmin) {
		return NotEligibleError{Reason: "Only the reservation's booker may change it."}
	}
	return nil
}

// resolveActor maps the requesting identity to its admin status and booker.
// A missing permissions document means nobody is admin; it does not block
// regular bookings.
func (s *DefaultReservationService) resolveActor(ctx context.Context, actor Actor) (bool, *models.Booker, error) {
	perms, err := s.Permissions.Get(ctx)
	if err != nil {
		if !errors.Is(err, permissionsRepo.ErrPermissionsMissing) {
			return false, nil, err
		}
		perms = models.Permissions{}
	}
	isAdmin := eligibility.IsAdmin(actor.UserID, perms, actor.BookerIDOverride)

	var booker *models.Booker
	if actor.BookerIDOverride != "" {
		booker, err = s.Bookers.GetByID(ctx, actor.BookerIDOverride)
		if err != nil {
			return false, nil, err
		}
	} else if actor.UserID != "" {
		booker, err = s.Bookers.GetByUserID(ctx, actor.UserID)
		if err != nil {
			return false, nil, err
		}
	}
	return isAdmin, booker, nil
}

// seasonYearOf mirrors the audit log's year derivation: the first four
// characters of the ISO start date.
func seasonYearOf(startDate string) int {
	if len(startDate) < 4 {
		return 1900
	}
	year, err := strconv.Atoi(startDate[:4])
	if err != nil {
		return 1900
	}
	return year
}

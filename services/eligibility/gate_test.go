package eligibility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lakehouse/models"
)

func weekRound(limit int, subRoundBookers ...string) *models.Round {
	return &models.Round{
		Position:          1,
		Name:              "round",
		StartDate:         time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		EndDate:           time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC),
		SubRoundBookerIDs: subRoundBookers,
		BookedWeeksLimit:  limit,
	}
}

func TestIsAdmin(t *testing.T) {
	perms := models.Permissions{AdminUserIDs: []string{"admin-uid"}}

	tests := []struct {
		name     string
		userID   string
		override string
		want     bool
	}{
		{"listed admin", "admin-uid", "", true},
		{"unlisted user", "other-uid", "", false},
		{"admin while impersonating", "admin-uid", "b1", false},
		{"no user", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAdmin(tt.userID, perms, tt.override))
		})
	}
}

func TestIsAdmin_NoPermissions(t *testing.T) {
	assert.False(t, IsAdmin("anyone", models.Permissions{}, ""))
}

func TestCanAddReservation(t *testing.T) {
	b1 := models.Booker{ID: "b1", Name: "One"}
	b2 := models.Booker{ID: "b2", Name: "Two"}

	tests := []struct {
		name           string
		booker         models.Booker
		isAdmin        bool
		round          *models.Round
		subRoundBooker string
		existingCount  int
		want           bool
	}{
		{
			name:   "no active round denies",
			booker: b1, round: nil,
			want: false,
		},
		{
			name:    "admin bypasses missing round",
			booker:  b1,
			isAdmin: true,
			round:   nil,
			want:    true,
		},
		{
			name:   "open round permits",
			booker: b1, round: weekRound(0),
			want: true,
		},
		{
			name:   "own sub-round week permits",
			booker: b1, round: weekRound(0, "b1", "b2"), subRoundBooker: "b1",
			want: true,
		},
		{
			name:   "someone else's sub-round week denies",
			booker: b2, round: weekRound(0, "b1", "b2"), subRoundBooker: "b1",
			want: false,
		},
		{
			name:    "admin bypasses sub-round priority",
			booker:  b2,
			isAdmin: true,
			round:   weekRound(0, "b1", "b2"), subRoundBooker: "b1",
			want: true,
		},
		{
			name:   "under the booking limit permits",
			booker: b1, round: weekRound(2), existingCount: 1,
			want: true,
		},
		{
			name:   "at the booking limit denies",
			booker: b1, round: weekRound(2), existingCount: 2,
			want: false,
		},
		{
			name:   "over the booking limit denies",
			booker: b1, round: weekRound(2), existingCount: 5,
			want: false,
		},
		{
			name:   "zero limit means unlimited",
			booker: b1, round: weekRound(0), existingCount: 40,
			want: true,
		},
		{
			name:    "admin bypasses the limit",
			booker:  b1,
			isAdmin: true,
			round:   weekRound(1), existingCount: 3,
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanAddReservation(tt.booker, tt.isAdmin, tt.round, tt.subRoundBooker, tt.existingCount)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanEditReservation(t *testing.T) {
	res := models.Reservation{ID: "r1", BookerID: "b1"}

	tests := []struct {
		name    string
		booker  models.Booker
		isAdmin bool
		want    bool
	}{
		{"owning booker", models.Booker{ID: "b1"}, false, true},
		{"different booker", models.Booker{ID: "b2"}, false, false},
		{"admin", models.Booker{}, true, true},
		{"nobody", models.Booker{}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanEditReservation(res, tt.booker, tt.isAdmin))
		})
	}
}

// Editing is deliberately not round-gated: the owner may always change an
// existing reservation even with no round active.
func TestCanEditReservation_IgnoresRoundState(t *testing.T) {
	res := models.Reservation{ID: "r1", BookerID: "b1"}
	assert.True(t, CanEditReservation(res, models.Booker{ID: "b1"}, false))
}

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDateRange_Overlaps(t *testing.T) {
	base := DateRange{Start: date("2024-03-05"), End: date("2024-03-10")}

	tests := []struct {
		name  string
		other DateRange
		want  bool
	}{
		{"identical", base, true},
		{"inside", DateRange{Start: date("2024-03-06"), End: date("2024-03-07")}, true},
		{"covers", DateRange{Start: date("2024-03-01"), End: date("2024-03-20")}, true},
		{"starts before ends inside", DateRange{Start: date("2024-03-01"), End: date("2024-03-06")}, true},
		{"starts inside ends after", DateRange{Start: date("2024-03-09"), End: date("2024-03-12")}, true},
		{"back-to-back after", DateRange{Start: date("2024-03-10"), End: date("2024-03-12")}, false},
		{"back-to-back before", DateRange{Start: date("2024-03-01"), End: date("2024-03-05")}, false},
		{"disjoint", DateRange{Start: date("2024-04-01"), End: date("2024-04-05")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base), "overlap must be symmetric")
		})
	}
}

func TestNewDateRange(t *testing.T) {
	r, err := NewDateRange(date("2024-03-05").Add(15*time.Hour), date("2024-03-07"))
	require.NoError(t, err)
	assert.Equal(t, date("2024-03-05"), r.Start)
	assert.Equal(t, 2, r.Nights())

	_, err = NewDateRange(date("2024-03-05"), date("2024-03-05"))
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = NewDateRange(date("2024-03-06"), date("2024-03-05"))
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestBookingStatus_Transitions(t *testing.T) {
	assert.True(t, StatusPrebooked.CanTransitionTo(StatusConfirmed))
	assert.True(t, StatusPrebooked.CanTransitionTo(StatusCancelled))
	assert.True(t, StatusConfirmed.CanTransitionTo(StatusCheckedIn))
	assert.True(t, StatusCheckedIn.CanTransitionTo(StatusCheckedOut))
	assert.True(t, StatusConfirmed.CanTransitionTo(StatusCheckedOut))

	assert.False(t, StatusCheckedIn.CanTransitionTo(StatusCancelled))
	assert.False(t, StatusConfirmed.CanTransitionTo(StatusPrebooked))

	for _, terminal := range TerminalStatuses {
		assert.True(t, terminal.IsTerminal())
		for _, next := range []BookingStatus{StatusPrebooked, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled} {
			assert.False(t, terminal.CanTransitionTo(next), "%s -> %s", terminal, next)
		}
	}
}

func TestBookingStatus_Blocking(t *testing.T) {
	assert.True(t, StatusPrebooked.IsBlocking())
	assert.True(t, StatusConfirmed.IsBlocking())
	assert.True(t, StatusCheckedIn.IsBlocking())
	assert.False(t, StatusCheckedOut.IsBlocking())
	assert.False(t, StatusCancelled.IsBlocking())
}

func TestParseBookingStatus(t *testing.T) {
	s, err := ParseBookingStatus("checked_in")
	require.NoError(t, err)
	assert.Equal(t, StatusCheckedIn, s)

	_, err = ParseBookingStatus("CHECKED_IN")
	assert.ErrorIs(t, err, ErrUnknownStatus)

	_, err = ParsePaymentStatus("paid")
	assert.NoError(t, err)
	_, err = ParsePaymentStatus("free")
	assert.ErrorIs(t, err, ErrUnknownPaymentStatus)
}

func TestBooking_TransitionTo(t *testing.T) {
	created := date("2024-03-01")
	now := created.Add(48 * time.Hour)

	b := &Booking{Status: StatusCheckedOut, UpdatedAt: created}
	err := b.TransitionTo(StatusCancelled, now)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, StatusCheckedOut, b.Status)
	assert.Equal(t, created, b.UpdatedAt)

	b = &Booking{Status: StatusPrebooked, UpdatedAt: created}
	require.NoError(t, b.TransitionTo(StatusCancelled, now))
	assert.Equal(t, StatusCancelled, b.Status)
	assert.Equal(t, now, b.UpdatedAt)
}

func TestCustomer_ProofImageKey(t *testing.T) {
	c := &Customer{ID: 42}
	assert.Equal(t, "customer_proofs/42/passport.jpg", c.ProofImageKey("passport.jpg"))
}

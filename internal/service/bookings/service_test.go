package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-HotelService/internal/service/bookings/models"
	"github.com/m04kA/SMC-HotelService/pkg/logger"
	"github.com/m04kA/SMC-HotelService/pkg/ptr"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) Update(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

var (
	createdAt = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	testNow   = time.Date(2024, 3, 10, 11, 30, 0, 0, time.UTC)
)

func newBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:                7,
		RoomID:            1,
		CustomerID:        2,
		ScheduledCheckIn:  time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		ScheduledCheckOut: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Status:            status,
		PaymentStatus:     domain.PaymentPaid,
		TotalAmount:       decimal.NewFromInt(500),
		AmountPaid:        decimal.NewFromInt(500),
		AdditionalCharges: decimal.Zero,
		BookingDate:       createdAt,
		UpdatedAt:         createdAt,
	}
}

func newTestService(repo *mockBookingRepo, policy ChargePolicy) *Service {
	return NewService(repo, passthroughTx{}, policy, logger.NewNop()).
		WithTimeProvider(fixedClock{now: testNow})
}

func TestCancel_Prebooked(t *testing.T) {
	repo := &mockBookingRepo{}
	booking := newBooking(domain.StatusPrebooked)
	repo.On("GetByID", mock.Anything, int64(7)).Return(booking, nil)
	repo.On("Update", mock.Anything, booking).Return(nil)

	resp, err := newTestService(repo, nil).Cancel(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.BookingStatus)
	assert.Equal(t, testNow, resp.UpdatedAt)
	assert.True(t, resp.UpdatedAt.After(createdAt))
	repo.AssertExpectations(t)
}

func TestCancel_RejectedStatuses(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.StatusCheckedOut, domain.StatusCheckedIn, domain.StatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			repo := &mockBookingRepo{}
			booking := newBooking(status)
			repo.On("GetByID", mock.Anything, int64(7)).Return(booking, nil)

			_, err := newTestService(repo, nil).Cancel(context.Background(), 7)

			assert.ErrorIs(t, err, ErrCannotCancel)
			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Equal(t, status, booking.Status)
			assert.Equal(t, createdAt, booking.UpdatedAt)
			repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})
	}
}

func TestCancel_NotFound(t *testing.T) {
	repo := &mockBookingRepo{}
	repo.On("GetByID", mock.Anything, int64(7)).Return(nil, bookingRepo.ErrBookingNotFound)

	_, err := newTestService(repo, nil).Cancel(context.Background(), 7)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCheckIn(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.StatusPrebooked, domain.StatusConfirmed} {
		t.Run(string(status), func(t *testing.T) {
			repo := &mockBookingRepo{}
			booking := newBooking(status)
			repo.On("GetByID", mock.Anything, int64(7)).Return(booking, nil)
			repo.On("Update", mock.Anything, booking).Return(nil)

			resp, err := newTestService(repo, nil).CheckIn(context.Background(), 7)

			require.NoError(t, err)
			assert.Equal(t, "checked_in", resp.BookingStatus)
			require.NotNil(t, resp.ActualCheckIn)
			assert.Equal(t, testNow, *resp.ActualCheckIn)
			assert.Equal(t, testNow, resp.UpdatedAt)
		})
	}
}

func TestCheckIn_RejectedStatuses(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.StatusCheckedIn, domain.StatusCheckedOut, domain.StatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			repo := &mockBookingRepo{}
			booking := newBooking(status)
			repo.On("GetByID", mock.Anything, int64(7)).Return(booking, nil)

			_, err := newTestService(repo, nil).CheckIn(context.Background(), 7)

			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Nil(t, booking.ActualCheckIn)
			repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})
	}
}

func TestCheckOut_FromNonTerminal(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.StatusPrebooked, domain.StatusConfirmed, domain.StatusCheckedIn} {
		t.Run(string(status), func(t *testing.T) {
			repo := &mockBookingRepo{}
			booking := newBooking(status)
			repo.On("GetByID", mock.Anything, int64(7)).Return(booking, nil)
			repo.On("Update", mock.Anything, booking).Return(nil)

			resp, err := newTestService(repo, nil).CheckOut(context.Background(), 7)

			require.NoError(t, err)
			assert.Equal(t, "checked_out", resp.Booking.BookingStatus)
			require.NotNil(t, resp.Booking.ActualCheckOut)
			assert.Equal(t, testNow, *resp.Booking.ActualCheckOut)
			assert.True(t, resp.AdditionalCharges.IsZero())
		})
	}
}

func TestCheckOut_Terminal(t *testing.T) {
	repo := &mockBookingRepo{}
	booking := newBooking(domain.StatusCancelled)
	repo.On("GetByID", mock.Anything, int64(7)).Return(booking, nil)

	_, err := newTestService(repo, nil).CheckOut(context.Background(), 7)

	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Nil(t, booking.ActualCheckOut)
}

func TestCheckOut_ChargePolicy(t *testing.T) {
	repo := &mockBookingRepo{}
	booking := newBooking(domain.StatusCheckedIn)
	booking.AdditionalCharges = decimal.NewFromInt(20)
	repo.On("GetByID", mock.Anything, int64(7)).Return(booking, nil)
	repo.On("Update", mock.Anything, booking).Return(nil)

	var seenAt time.Time
	lateFee := func(b *domain.Booking, at time.Time) decimal.Decimal {
		seenAt = at
		return decimal.RequireFromString("35.50")
	}

	resp, err := newTestService(repo, lateFee).CheckOut(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, testNow, seenAt)
	assert.True(t, resp.AdditionalCharges.Equal(decimal.RequireFromString("35.50")))
	assert.True(t, resp.Booking.AdditionalCharges.Equal(decimal.RequireFromString("55.50")))
}

func TestCheckOut_NegativeChargeRejected(t *testing.T) {
	repo := &mockBookingRepo{}
	booking := newBooking(domain.StatusCheckedIn)
	repo.On("GetByID", mock.Anything, int64(7)).Return(booking, nil)

	refund := func(*domain.Booking, time.Time) decimal.Decimal { return decimal.NewFromInt(-5) }

	_, err := newTestService(repo, refund).CheckOut(context.Background(), 7)

	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, domain.StatusCheckedIn, booking.Status)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestConfirm(t *testing.T) {
	repo := &mockBookingRepo{}
	booking := newBooking(domain.StatusPrebooked)
	repo.On("GetByID", mock.Anything, int64(7)).Return(booking, nil)
	repo.On("Update", mock.Anything, booking).Return(nil)

	resp, err := newTestService(repo, nil).Confirm(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.BookingStatus)

	// Повторное подтверждение недопустимо
	_, err = newTestService(repo, nil).Confirm(context.Background(), 7)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateFailure(t *testing.T) {
	repo := &mockBookingRepo{}
	booking := newBooking(domain.StatusConfirmed)
	repo.On("GetByID", mock.Anything, int64(7)).Return(booking, nil)
	repo.On("Update", mock.Anything, booking).Return(errors.New("connection reset"))

	_, err := newTestService(repo, nil).CheckIn(context.Background(), 7)

	assert.ErrorIs(t, err, ErrInternal)
}

func TestList(t *testing.T) {
	repo := &mockBookingRepo{}
	status := domain.StatusConfirmed
	repo.On("List", mock.Anything, domain.BookingsFilter{
		RoomID: ptr.Ptr(int64(1)),
		Status: &status,
		Limit:  domain.DefaultListLimit,
	}).Return([]*domain.Booking{newBooking(domain.StatusConfirmed)}, nil)

	resp, err := newTestService(repo, nil).List(context.Background(), &models.ListBookingsRequest{
		RoomID: ptr.Ptr(int64(1)),
		Status: ptr.Ptr("confirmed"),
	})

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "2024-03-05", resp.Bookings[0].ScheduledCheckIn)
}

func TestList_InvalidStatus(t *testing.T) {
	repo := &mockBookingRepo{}

	_, err := newTestService(repo, nil).List(context.Background(), &models.ListBookingsRequest{
		Status: ptr.Ptr("unknown"),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

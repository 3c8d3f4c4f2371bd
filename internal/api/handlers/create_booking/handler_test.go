package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-HotelService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-HotelService/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*createBooking.Response), args.Error(1)
}

const validBody = `{
	"roomId": 1,
	"customerId": 2,
	"scheduledCheckIn": "2030-03-05",
	"scheduledCheckOut": "2030-03-08",
	"totalAmount": "300.00"
}`

func TestHandle_Created(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *createBooking.Request) bool {
		return r.RoomID == 1 &&
			r.ScheduledCheckIn.Equal(time.Date(2030, 3, 5, 0, 0, 0, 0, time.UTC)) &&
			r.TotalAmount.Equal(decimal.NewFromInt(300)) &&
			r.AmountPaid.IsZero()
	})).Return(&createBooking.Response{
		ID:                10,
		RoomID:            1,
		CustomerID:        2,
		ScheduledCheckIn:  time.Date(2030, 3, 5, 0, 0, 0, 0, time.UTC),
		ScheduledCheckOut: time.Date(2030, 3, 8, 0, 0, 0, 0, time.UTC),
		BookingStatus:     "prebooked",
		PaymentStatus:     "pending",
		TotalAmount:       decimal.NewFromInt(300),
	}, nil)

	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(validBody)))

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, "2030-03-08", resp.ScheduledCheckOut)
	assert.Equal(t, "prebooked", resp.BookingStatus)
}

func TestHandle_ValidationMessage(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: amountPaid exceeds totalAmount", createBooking.ErrInvalidInput))

	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(validBody)))

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, msgInvalidBooking, resp.Message)
	assert.NotContains(t, resp.Message, "amountPaid")
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		ucErr      error
		wantStatus int
		wantCode   string
	}{
		{"malformed body", `{"roomId":`, nil, http.StatusBadRequest, handlers.CodeValidation},
		{"unknown field", `{"roomId":1,"extra":true}`, nil, http.StatusBadRequest, handlers.CodeValidation},
		{"bad date", strings.Replace(validBody, "2030-03-05", "05.03.2030", 1), nil, http.StatusBadRequest, handlers.CodeValidation},
		{"validation", validBody, fmt.Errorf("%w: amountPaid exceeds totalAmount", createBooking.ErrInvalidInput), http.StatusBadRequest, handlers.CodeValidation},
		{"room not found", validBody, createBooking.ErrRoomNotFound, http.StatusNotFound, handlers.CodeNotFound},
		{"customer not found", validBody, createBooking.ErrCustomerNotFound, http.StatusNotFound, handlers.CodeNotFound},
		{"room unavailable", validBody, createBooking.ErrRoomUnavailable, http.StatusConflict, handlers.CodeConflict},
		{"serialization conflict", validBody, createBooking.ErrConflict, http.StatusConflict, handlers.CodeConflict},
		{"internal", validBody, createBooking.ErrInternal, http.StatusInternalServerError, handlers.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			if tt.ucErr != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.ucErr)
			}

			rec := httptest.NewRecorder()
			NewHandler(uc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.NotContains(t, resp.Message, "create_booking:")
			if tt.ucErr == nil {
				uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
			}
		})
	}
}

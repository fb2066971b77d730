package cancelBooking

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tableBooker/internal/auth"
	"tableBooker/internal/booking"
	"tableBooker/internal/http-server/handlers/booking/cancelBooking/mocks"
	"tableBooker/internal/http-server/middleware/mwauth"
	"tableBooker/internal/lib/logger/handlers/slogdiscard"
	"tableBooker/internal/models"
	"tableBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCancelBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	identity := auth.Identity{UserID: 7, Role: models.RoleUser}

	testCases := []struct {
		name           string
		bookingID      string
		mockSetup      func(m *mocks.BookingCanceller)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:      "Success",
			bookingID: "3",
			mockSetup: func(m *mocks.BookingCanceller) {
				m.On("Cancel", int64(7), int64(3)).Return(&models.Booking{
					ID:     3,
					UserID: 7,
					Date:   "2030-06-15",
					Time:   "18:00",
					Guests: 4,
					Status: models.StatusCancelled,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"cancelled"`)
			},
		},
		{
			name:           "Invalid booking ID format",
			bookingID:      "abc",
			mockSetup:      func(m *mocks.BookingCanceller) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid booking id format"}`,
		},
		{
			name:      "Booking not found",
			bookingID: "999",
			mockSetup: func(m *mocks.BookingCanceller) {
				m.On("Cancel", int64(7), int64(999)).Return(nil, storage.ErrBookingNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"booking not found"}`,
		},
		{
			name:      "Past booking",
			bookingID: "3",
			mockSetup: func(m *mocks.BookingCanceller) {
				m.On("Cancel", int64(7), int64(3)).Return(nil, booking.ErrPastBooking)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"cannot cancel past bookings"}`,
		},
		{
			name:      "Already finished",
			bookingID: "3",
			mockSetup: func(m *mocks.BookingCanceller) {
				m.On("Cancel", int64(7), int64(3)).Return(nil, booking.ErrAlreadyFinished)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"booking is already finished or cancelled"}`,
		},
		{
			name:      "Internal server error",
			bookingID: "3",
			mockSetup: func(m *mocks.BookingCanceller) {
				m.On("Cancel", int64(7), int64(3)).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to cancel booking"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCanceller := mocks.NewBookingCanceller(t)
			tc.mockSetup(mockCanceller)

			handler := New(logger, mockCanceller)

			req, err := http.NewRequest("DELETE", "/bookings/"+tc.bookingID, nil)
			require.NoError(t, err)

			req = req.WithContext(mwauth.WithIdentity(req.Context(), identity))

			router := chi.NewRouter()
			router.Delete("/bookings/{id}", handler)

			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}

func TestCancelBookingHandler_NoIdentity(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	mockCanceller := mocks.NewBookingCanceller(t)
	handler := New(logger, mockCanceller)

	req, err := http.NewRequest("DELETE", "/bookings/3", nil)
	require.NoError(t, err)

	router := chi.NewRouter()
	router.Delete("/bookings/{id}", handler)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"status":"Error","error":"authorization required"}`, rr.Body.String())
}

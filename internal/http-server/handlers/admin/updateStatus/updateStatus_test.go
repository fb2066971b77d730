package updateStatus

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tableBooker/internal/booking"
	"tableBooker/internal/http-server/handlers/admin/updateStatus/mocks"
	"tableBooker/internal/lib/logger/handlers/slogdiscard"
	"tableBooker/internal/models"
	"tableBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateStatusHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		bookingID      string
		requestBody    string
		mockSetup      func(m *mocks.StatusSetter)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Confirm pending booking",
			bookingID:   "3",
			requestBody: `{"status": "confirmed"}`,
			mockSetup: func(m *mocks.StatusSetter) {
				m.On("SetStatus", int64(3), models.StatusConfirmed).Return(&models.Booking{
					ID:     3,
					UserID: 7,
					Date:   "2030-06-15",
					Time:   "18:00",
					Guests: 4,
					Status: models.StatusConfirmed,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"confirmed"`)
			},
		},
		{
			name:        "Reject booking",
			bookingID:   "3",
			requestBody: `{"status": "rejected"}`,
			mockSetup: func(m *mocks.StatusSetter) {
				m.On("SetStatus", int64(3), models.StatusRejected).Return(&models.Booking{
					ID:     3,
					Status: models.StatusRejected,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"rejected"`)
			},
		},
		{
			name:           "Invalid booking ID format",
			bookingID:      "abc",
			requestBody:    `{"status": "confirmed"}`,
			mockSetup:      func(m *mocks.StatusSetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid booking id format"}`,
		},
		{
			name:           "Invalid JSON",
			bookingID:      "3",
			requestBody:    `not json`,
			mockSetup:      func(m *mocks.StatusSetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Unknown status value",
			bookingID:      "3",
			requestBody:    `{"status": "archived"}`,
			mockSetup:      func(m *mocks.StatusSetter) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Status")
			},
		},
		{
			name:           "Missing status",
			bookingID:      "3",
			requestBody:    `{}`,
			mockSetup:      func(m *mocks.StatusSetter) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Status")
			},
		},
		{
			name:        "Booking not found",
			bookingID:   "999",
			requestBody: `{"status": "confirmed"}`,
			mockSetup: func(m *mocks.StatusSetter) {
				m.On("SetStatus", int64(999), models.StatusConfirmed).
					Return(nil, storage.ErrBookingNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"booking not found"}`,
		},
		{
			name:        "Service rejects status",
			bookingID:   "3",
			requestBody: `{"status": "confirmed"}`,
			mockSetup: func(m *mocks.StatusSetter) {
				m.On("SetStatus", int64(3), models.StatusConfirmed).
					Return(nil, booking.ErrUnknownStatus)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"unknown booking status"}`,
		},
		{
			name:        "Internal server error",
			bookingID:   "3",
			requestBody: `{"status": "confirmed"}`,
			mockSetup: func(m *mocks.StatusSetter) {
				m.On("SetStatus", int64(3), models.StatusConfirmed).
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to update booking status"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockSetter := mocks.NewStatusSetter(t)
			tc.mockSetup(mockSetter)

			handler := New(logger, mockSetter)

			req, err := http.NewRequest("PUT", "/admin/bookings/"+tc.bookingID+"/status", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			router := chi.NewRouter()
			router.Put("/admin/bookings/{id}/status", handler)

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

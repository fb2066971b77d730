package createBooking

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tableBooker/internal/auth"
	"tableBooker/internal/booking"
	"tableBooker/internal/http-server/handlers/booking/createBooking/mocks"
	"tableBooker/internal/http-server/middleware/mwauth"
	"tableBooker/internal/lib/api/response"
	"tableBooker/internal/lib/logger/handlers/slogdiscard"
	"tableBooker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		identity       *auth.Identity
		requestBody    string
		mockSetup      func(mock *mocks.BookingCreator)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			identity:    &auth.Identity{UserID: 7, Role: models.RoleUser},
			requestBody: `{"date": "2030-06-15", "time": "18:00", "guests": 4, "special_requests": "window seat"}`,
			mockSetup: func(mock *mocks.BookingCreator) {
				mock.On("Create", int64(7), "2030-06-15", "18:00", 4, "window seat").
					Return(&models.Booking{
						ID:     1,
						UserID: 7,
						Date:   "2030-06-15",
						Time:   "18:00",
						Guests: 4,
						Status: models.StatusPending,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"pending"`)
				assert.Contains(t, body, `"18:00"`)
			},
		},
		{
			name:           "No identity",
			identity:       nil,
			requestBody:    `{"date": "2030-06-15", "time": "18:00", "guests": 4}`,
			mockSetup:      func(mock *mocks.BookingCreator) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"authorization required"}`,
		},
		{
			name:           "Invalid JSON",
			identity:       &auth.Identity{UserID: 7, Role: models.RoleUser},
			requestBody:    `invalid json`,
			mockSetup:      func(mock *mocks.BookingCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Missing date",
			identity:       &auth.Identity{UserID: 7, Role: models.RoleUser},
			requestBody:    `{"time": "18:00", "guests": 4}`,
			mockSetup:      func(mock *mocks.BookingCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Date")
			},
		},
		{
			name:           "Malformed time",
			identity:       &auth.Identity{UserID: 7, Role: models.RoleUser},
			requestBody:    `{"date": "2030-06-15", "time": "25:99", "guests": 4}`,
			mockSetup:      func(mock *mocks.BookingCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Time")
			},
		},
		{
			name:           "Too many guests",
			identity:       &auth.Identity{UserID: 7, Role: models.RoleUser},
			requestBody:    `{"date": "2030-06-15", "time": "18:00", "guests": 21}`,
			mockSetup:      func(mock *mocks.BookingCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Guests")
			},
		},
		{
			name:           "Date in the past",
			identity:       &auth.Identity{UserID: 7, Role: models.RoleUser},
			requestBody:    `{"date": "2020-01-01", "time": "18:00", "guests": 4}`,
			mockSetup:      func(mock *mocks.BookingCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"date must not be in the past"}`,
		},
		{
			name:        "Slot unavailable",
			identity:    &auth.Identity{UserID: 7, Role: models.RoleUser},
			requestBody: `{"date": "2030-06-15", "time": "18:00", "guests": 4}`,
			mockSetup: func(mock *mocks.BookingCreator) {
				mock.On("Create", int64(7), "2030-06-15", "18:00", 4, "").
					Return(nil, booking.ErrSlotUnavailable)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"the selected time slot is not available"}`,
		},
		{
			name:        "Internal server error",
			identity:    &auth.Identity{UserID: 7, Role: models.RoleUser},
			requestBody: `{"date": "2030-06-15", "time": "18:00", "guests": 4}`,
			mockSetup: func(mock *mocks.BookingCreator) {
				mock.On("Create", int64(7), "2030-06-15", "18:00", 4, "").
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to create booking"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCreator := mocks.NewBookingCreator(t)
			tc.mockSetup(mockCreator)

			handler := New(logger, mockCreator)

			req, err := http.NewRequest("POST", "/bookings", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			if tc.identity != nil {
				req = req.WithContext(mwauth.WithIdentity(req.Context(), *tc.identity))
			}

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}

func TestResponseOK(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()

	b := &models.Booking{ID: 5, Date: "2030-06-15", Time: "18:00", Guests: 2, Status: models.StatusPending}

	responseOK(rr, req, b)

	assert.Equal(t, http.StatusOK, rr.Code)

	var actual BookingResponse
	err := json.Unmarshal(rr.Body.Bytes(), &actual)
	require.NoError(t, err)

	assert.Equal(t, response.StatusOK, actual.Status)
	assert.Empty(t, actual.Error)
	require.NotNil(t, actual.Booking)
	assert.Equal(t, int64(5), actual.Booking.ID)
}

func TestPastDate(t *testing.T) {
	t.Parallel()

	assert.True(t, pastDate("2020-01-01"))
	assert.False(t, pastDate("2100-01-01"))
	assert.False(t, pastDate("not-a-date"))
}
